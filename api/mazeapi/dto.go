package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/maze-solver/domain"
	"github.com/beka-birhanu/maze-solver/maze"
	"github.com/beka-birhanu/maze-solver/render"
	"github.com/beka-birhanu/maze-solver/service"
	"github.com/beka-birhanu/maze-solver/solver"
)

// GenerateRequest asks the server to carve and store a new maze.
type GenerateRequest struct {
	Name      string `json:"name"`
	Width     int    `json:"width" binding:"required,min=1"`
	Height    int    `json:"height" binding:"required,min=1"`
	Generator string `json:"generator"`
	Seed      int64  `json:"seed"`
}

// BenchmarkRequest lists the algorithms to time; empty means all of them.
type BenchmarkRequest struct {
	Algorithms []string `json:"algorithms"`
}

// MazeResponse describes a stored maze.
type MazeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	CreatedAt time.Time `json:"created_at"`
	Drawing   string    `json:"drawing,omitempty"`
}

// Position is a [row, column] pair.
type Position [2]int

// SolutionResponse is the outcome of one solve.
type SolutionResponse struct {
	RunID     string       `json:"run_id"`
	Algorithm string       `json:"algorithm"`
	Found     bool         `json:"found"`
	ElapsedMS float64      `json:"elapsed_ms"`
	Path      []Position   `json:"path"`
	Steps     [][]Position `json:"steps,omitempty"`
	Drawing   string       `json:"drawing,omitempty"`
}

// RankingResponse is one leaderboard entry.
type RankingResponse struct {
	Rank      int     `json:"rank"`
	Algorithm string  `json:"algorithm"`
	ElapsedMS float64 `json:"elapsed_ms"`
}

// AlgorithmResponse describes one catalog entry.
type AlgorithmResponse struct {
	Name       string `json:"name"`
	Stochastic bool   `json:"stochastic"`
}

func newMazeResponse(record *dmn.MazeRecord, m *maze.Maze) *MazeResponse {
	response := &MazeResponse{
		ID:        record.ID.String(),
		Name:      record.Name,
		Width:     record.Width,
		Height:    record.Height,
		CreatedAt: record.CreatedAt,
	}
	if m != nil {
		response.Drawing = m.String()
	}
	return response
}

func newSolutionResponse(result *service.Result, m *maze.Maze, withSteps bool) *SolutionResponse {
	response := &SolutionResponse{
		RunID:     result.RunID.String(),
		Algorithm: result.Algorithm,
		Found:     result.Found,
		ElapsedMS: milliseconds(result.Elapsed),
		Path:      positions(result.Path()),
	}
	if result.Found && m != nil {
		response.Drawing = render.Text(m, result.Path())
	}
	if withSteps {
		response.Steps = make([][]Position, len(result.Steps))
		for idx, state := range result.Steps {
			response.Steps[idx] = positions(state)
		}
	}
	return response
}

func positions(path solver.Path) []Position {
	out := make([]Position, len(path))
	for idx, sq := range path {
		out[idx] = Position{sq.Row, sq.Column}
	}
	return out
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
