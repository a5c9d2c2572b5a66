package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/beka-birhanu/maze-solver/codec"
	dmn "github.com/beka-birhanu/maze-solver/domain"
	"github.com/beka-birhanu/maze-solver/maze"
	"github.com/beka-birhanu/maze-solver/service/i"
	"github.com/beka-birhanu/maze-solver/solver"
	"github.com/google/uuid"
)

const (
	defaultPrefix = "maze-solver"
	rankingKeyFmt = "%s:ranking:%s"
)

var (
	ErrNilLogger = errors.New("logger is required")
	ErrNilMaze   = errors.New("maze is required")
	ErrNoRepo    = errors.New("maze repository is not configured")
	ErrNoRanking = errors.New("ranking store is not configured")
)

// Options tunes a Solver. The zero value is usable.
type Options struct {
	Prefix string       // Key prefix of the ranking sorted sets
	Seed   int64        // Seed handed to stochastic strategies on every run
	Policy codec.Policy // Role policy applied to uploaded maze files
}

// Result describes one run of one algorithm.
type Result struct {
	RunID     uuid.UUID
	Algorithm string
	Steps     solver.Steps
	Found     bool
	Elapsed   time.Duration
}

// Path returns the final route, nil when nothing was found.
func (r *Result) Path() solver.Path {
	return r.Steps.Final()
}

// Solver runs the strategy catalog against mazes, stores mazes and keeps a
// per-maze leaderboard of algorithm timings.
type Solver struct {
	repo    i.MazeRepo
	ranking i.SortedStore
	logger  i.Logger
	opts    *Options
}

// NewSolver creates a Solver. repo and ranking may be nil; operations that
// need them then fail with ErrNoRepo or ErrNoRanking.
func NewSolver(repo i.MazeRepo, ranking i.SortedStore, logger i.Logger, opts *Options) (*Solver, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}
	if opts == nil {
		opts = &Options{}
	}
	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}
	if opts.Policy == "" {
		opts.Policy = codec.PolicyNormalize
	}

	return &Solver{
		repo:    repo,
		ranking: ranking,
		logger:  logger,
		opts:    opts,
	}, nil
}

// Solve runs algorithm from the maze entrance to its exit. A search that
// finds nothing is not an error; the Result reports Found false.
func (s *Solver) Solve(ctx context.Context, m *maze.Maze, algorithm string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNilMaze
	}

	strategy, err := solver.Lookup(algorithm, rand.New(rand.NewSource(s.opts.Seed)))
	if err != nil {
		return nil, err
	}
	start, err := m.Entrance()
	if err != nil {
		return nil, err
	}
	goal, err := m.Exit()
	if err != nil {
		return nil, err
	}

	began := time.Now()
	steps, found := strategy(m, start, goal)
	result := &Result{
		RunID:     uuid.New(),
		Algorithm: algorithm,
		Steps:     steps,
		Found:     found,
		Elapsed:   time.Since(began),
	}

	s.logger.Info(fmt.Sprintf("Run %s: algorithm=%s found=%t length=%d elapsed=%s",
		result.RunID, algorithm, found, len(result.Path()), result.Elapsed))
	return result, nil
}

// Benchmark solves m with every named algorithm, or the whole catalog when
// algorithms is empty. Results come back fastest first; failed searches go
// last.
func (s *Solver) Benchmark(ctx context.Context, m *maze.Maze, algorithms []string) ([]*Result, error) {
	if len(algorithms) == 0 {
		algorithms = solver.Names()
	}

	results := make([]*Result, 0, len(algorithms))
	for _, algorithm := range algorithms {
		result, err := s.Solve(ctx, m, algorithm)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(a, b int) bool {
		if results[a].Found != results[b].Found {
			return results[a].Found
		}
		return results[a].Elapsed < results[b].Elapsed
	})
	return results, nil
}

// SolveStored loads a stored maze, solves it and records the time on the
// maze's leaderboard. The decoded maze that was solved is returned with the
// result.
func (s *Solver) SolveStored(ctx context.Context, id uuid.UUID, algorithm string) (*Result, *maze.Maze, error) {
	_, m, err := s.Maze(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	result, err := s.Solve(ctx, m, algorithm)
	if err != nil {
		return nil, nil, err
	}
	s.record(ctx, id, result)
	return result, m, nil
}

// BenchmarkStored benchmarks a stored maze and records every successful run.
func (s *Solver) BenchmarkStored(ctx context.Context, id uuid.UUID, algorithms []string) ([]*Result, error) {
	_, m, err := s.Maze(ctx, id)
	if err != nil {
		return nil, err
	}

	results, err := s.Benchmark(ctx, m, algorithms)
	if err != nil {
		return nil, err
	}
	for _, result := range results {
		s.record(ctx, id, result)
	}
	return results, nil
}

// Ranking returns the n fastest algorithms recorded for a maze, fastest
// first. n <= 0 asks for the whole leaderboard.
func (s *Solver) Ranking(ctx context.Context, id uuid.UUID, n int) ([]dmn.Ranking, error) {
	if s.ranking == nil {
		return nil, ErrNoRanking
	}

	key := s.rankingKey(id)
	amount := int64(n)
	if amount <= 0 {
		amount = s.ranking.Count(ctx, key)
	}
	if amount == 0 {
		return []dmn.Ranking{}, nil
	}

	members, scores, err := s.ranking.Lowest(ctx, key, amount)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Reading ranking of maze %s: %s", id, err))
		return nil, err
	}

	rankings := make([]dmn.Ranking, len(members))
	for idx, member := range members {
		rankings[idx] = dmn.Ranking{
			Algorithm: member,
			Elapsed:   time.Duration(scores[idx] * float64(time.Second)),
		}
	}
	return rankings, nil
}

// Store validates a maze file, applies the configured role policy and saves
// the result.
func (s *Solver) Store(ctx context.Context, name string, data []byte) (*dmn.MazeRecord, error) {
	m, err := codec.Unmarshal(data, codec.WithPolicy(s.opts.Policy))
	if err != nil {
		return nil, err
	}
	return s.save(ctx, name, m)
}

// Generate carves a new maze and saves it.
func (s *Solver) Generate(ctx context.Context, name string, width, height int, gen maze.Generator, seed int64) (*dmn.MazeRecord, error) {
	m, err := maze.Generate(width, height, gen, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	return s.save(ctx, name, m)
}

// Maze loads and decodes a stored maze.
func (s *Solver) Maze(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, *maze.Maze, error) {
	if s.repo == nil {
		return nil, nil, ErrNoRepo
	}

	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	m, err := codec.Unmarshal(record.Data, codec.WithPolicy(s.opts.Policy))
	if err != nil {
		s.logger.Error(fmt.Sprintf("Stored maze %s does not decode: %s", id, err))
		return nil, nil, err
	}
	return record, m, nil
}

func (s *Solver) save(ctx context.Context, name string, m *maze.Maze) (*dmn.MazeRecord, error) {
	if s.repo == nil {
		return nil, ErrNoRepo
	}

	data, err := codec.Marshal(m)
	if err != nil {
		return nil, err
	}
	record := &dmn.MazeRecord{
		ID:        uuid.New(),
		Name:      name,
		Width:     m.Width(),
		Height:    m.Height(),
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error(fmt.Sprintf("Saving maze %s: %s", record.ID, err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Maze saved: ID=%s size=%dx%d", record.ID, record.Width, record.Height))
	return record, nil
}

// record keeps the best time of a successful run. Leaderboard failures are
// logged and never fail the run itself.
func (s *Solver) record(ctx context.Context, id uuid.UUID, result *Result) {
	if s.ranking == nil || !result.Found {
		return
	}

	improved, err := s.ranking.KeepLowest(ctx, s.rankingKey(id), result.Elapsed.Seconds(), result.Algorithm)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("Recording %s on maze %s: %s", result.Algorithm, id, err))
		return
	}
	if improved {
		s.logger.Info(fmt.Sprintf("New best for %s on maze %s: %s", result.Algorithm, id, result.Elapsed))
	}
}

func (s *Solver) rankingKey(id uuid.UUID) string {
	return fmt.Sprintf(rankingKeyFmt, s.opts.Prefix, id)
}
