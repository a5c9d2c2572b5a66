package mazeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beka-birhanu/maze-solver/api"
	api_i "github.com/beka-birhanu/maze-solver/api/i"
	"github.com/beka-birhanu/maze-solver/api/identity"
	"github.com/beka-birhanu/maze-solver/codec"
	dmn "github.com/beka-birhanu/maze-solver/domain"
	"github.com/beka-birhanu/maze-solver/maze"
	"github.com/beka-birhanu/maze-solver/service"
	"github.com/beka-birhanu/maze-solver/solver"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const operatorToken = "operator"

type nopLogger struct{}

func (nopLogger) Info(string)  {}
func (nopLogger) Warn(string)  {}
func (nopLogger) Error(string) {}

type stubTokenizer struct{}

func (stubTokenizer) Generate(map[string]interface{}, time.Duration) (string, error) {
	return operatorToken, nil
}

func (stubTokenizer) Decode(token string) (map[string]interface{}, error) {
	if token != operatorToken {
		return nil, errors.New("bad token")
	}
	return map[string]interface{}{}, nil
}

type memoryRepo struct {
	records map[uuid.UUID]*dmn.MazeRecord
	reads   int
}

func (r *memoryRepo) Save(_ context.Context, record *dmn.MazeRecord) error {
	r.records[record.ID] = record
	return nil
}

func (r *memoryRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	r.reads++
	record, ok := r.records[id]
	if !ok {
		return nil, dmn.ErrMazeNotFound
	}
	return record, nil
}

type memoryStore struct {
	scores map[string]float64
}

func (s *memoryStore) KeepLowest(_ context.Context, _ string, score float64, member string) (bool, error) {
	if old, ok := s.scores[member]; ok && old <= score {
		return false, nil
	}
	s.scores[member] = score
	return true, nil
}

func (s *memoryStore) Lowest(_ context.Context, _ string, amount int64) ([]string, []float64, error) {
	var members []string
	var scores []float64
	for member, score := range s.scores {
		if int64(len(members)) == amount {
			break
		}
		members = append(members, member)
		scores = append(scores, score)
	}
	return members, scores, nil
}

func (s *memoryStore) Count(context.Context, string) int64 {
	return int64(len(s.scores))
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	h, _ := newTestServerWithRepo(t)
	return h
}

func newTestServerWithRepo(t *testing.T) (http.Handler, *memoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &memoryRepo{records: make(map[uuid.UUID]*dmn.MazeRecord)}
	svc, err := service.NewSolver(
		repo,
		&memoryStore{scores: make(map[string]float64)},
		nopLogger{},
		&service.Options{Seed: 1},
	)
	require.NoError(t, err)

	controller, err := NewController(svc, nopLogger{})
	require.NoError(t, err)

	router := api.NewRouter(api.Config{
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{controller},
		AuthorizationMiddleware: identity.Authorize(stubTokenizer{}),
	})
	return router.Handler(), repo
}

func do(t *testing.T, h http.Handler, method, path string, body []byte, authorized bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if authorized {
		req.Header.Set("Authorization", "Bearer "+operatorToken)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func corridorFile(t *testing.T) []byte {
	t.Helper()
	m, err := maze.New([]maze.Square{
		maze.NewSquare(0, 0, 3, maze.Top|maze.Bottom|maze.Left, maze.RoleNone),
		maze.NewSquare(0, 1, 3, maze.Top|maze.Bottom, maze.RoleNone),
		maze.NewSquare(0, 2, 3, maze.Top|maze.Bottom|maze.Right, maze.RoleNone),
	})
	require.NoError(t, err)
	data, err := codec.Marshal(m)
	require.NoError(t, err)
	return data
}

func TestAlgorithms(t *testing.T) {
	h := newTestServer(t)

	w := do(t, h, http.MethodGet, "/api/v1/algorithms", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[struct {
		Algorithms []AlgorithmResponse `json:"algorithms"`
		Generators []string            `json:"generators"`
	}](t, w)
	assert.Len(t, body.Algorithms, len(solver.Names()))
	assert.Contains(t, body.Generators, "wilson")
}

func TestUploadAndSolve(t *testing.T) {
	h := newTestServer(t)

	w := do(t, h, http.MethodPost, "/api/v1/mazes?name=corridor", corridorFile(t), false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, h, http.MethodPost, "/api/v1/mazes?name=corridor", corridorFile(t), true)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[MazeResponse](t, w)
	assert.Equal(t, "corridor", created.Name)
	assert.Equal(t, 3, created.Width)

	w = do(t, h, http.MethodGet, "/api/v1/mazes/"+created.ID, nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	info := decode[MazeResponse](t, w)
	assert.Contains(t, info.Drawing, " S ")
	assert.Contains(t, info.Drawing, " E ")

	w = do(t, h, http.MethodGet, "/api/v1/mazes/"+created.ID+"/solution?algorithm=a-star&steps=true", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	solution := decode[SolutionResponse](t, w)
	assert.True(t, solution.Found)
	assert.Equal(t, []Position{{0, 0}, {0, 1}, {0, 2}}, solution.Path)
	assert.Len(t, solution.Steps, 3)
	assert.Contains(t, solution.Drawing, " o ")

	w = do(t, h, http.MethodGet, "/api/v1/mazes/"+created.ID+"/ranking", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	ranking := decode[[]RankingResponse](t, w)
	require.Len(t, ranking, 1)
	assert.Equal(t, "a-star", ranking[0].Algorithm)
	assert.Equal(t, 1, ranking[0].Rank)
}

func TestSolutionReadsTheMazeOnce(t *testing.T) {
	h, repo := newTestServerWithRepo(t)

	w := do(t, h, http.MethodPost, "/api/v1/mazes?name=corridor", corridorFile(t), true)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[MazeResponse](t, w)

	repo.reads = 0
	w = do(t, h, http.MethodGet, "/api/v1/mazes/"+created.ID+"/solution", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, repo.reads)
	assert.Contains(t, decode[SolutionResponse](t, w).Drawing, " o ")
}

func TestGenerateAndBenchmark(t *testing.T) {
	h := newTestServer(t)

	request, _ := json.Marshal(GenerateRequest{Name: "g", Width: 5, Height: 4, Generator: "prim", Seed: 9})
	w := do(t, h, http.MethodPost, "/api/v1/mazes/generate", request, true)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[MazeResponse](t, w)
	assert.Equal(t, 4, created.Height)

	benchmark, _ := json.Marshal(BenchmarkRequest{Algorithms: []string{"bfs", "dfs"}})
	w = do(t, h, http.MethodPost, "/api/v1/mazes/"+created.ID+"/benchmark", benchmark, true)
	require.Equal(t, http.StatusOK, w.Code)
	results := decode[[]SolutionResponse](t, w)
	assert.Len(t, results, 2)

	w = do(t, h, http.MethodPost, "/api/v1/mazes/"+created.ID+"/benchmark", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]SolutionResponse](t, w), len(solver.Names()))
}

func TestErrors(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       []byte
		authorized bool
		status     int
	}{
		{"bad id", http.MethodGet, "/api/v1/mazes/nope", nil, false, http.StatusBadRequest},
		{"unknown maze", http.MethodGet, "/api/v1/mazes/" + uuid.NewString(), nil, false, http.StatusNotFound},
		{"malformed file", http.MethodPost, "/api/v1/mazes", []byte{1, 2, 3}, true, http.StatusBadRequest},
		{"bad dimensions", http.MethodPost, "/api/v1/mazes/generate", []byte(`{"width":5000,"height":2}`), true, http.StatusBadRequest},
		{"unknown generator", http.MethodPost, "/api/v1/mazes/generate", []byte(`{"width":5,"height":2,"generator":"eller"}`), true, http.StatusBadRequest},
		{"missing fields", http.MethodPost, "/api/v1/mazes/generate", []byte(`{}`), true, http.StatusBadRequest},
		{"no token", http.MethodPost, "/api/v1/mazes/generate", []byte(`{"width":5,"height":2}`), false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, tt.method, tt.path, tt.body, tt.authorized)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestUnknownAlgorithm(t *testing.T) {
	h := newTestServer(t)

	w := do(t, h, http.MethodPost, "/api/v1/mazes", corridorFile(t), true)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[MazeResponse](t, w)

	w = do(t, h, http.MethodGet, "/api/v1/mazes/"+created.ID+"/solution?algorithm=teleport", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodGet, "/api/v1/mazes/"+created.ID+"/solution?steps=maybe", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
