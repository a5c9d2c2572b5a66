// Package mazeapi exposes maze storage, solving and benchmarking over HTTP.
package mazeapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/maze-solver/codec"
	dmn "github.com/beka-birhanu/maze-solver/domain"
	"github.com/beka-birhanu/maze-solver/maze"
	"github.com/beka-birhanu/maze-solver/service"
	"github.com/beka-birhanu/maze-solver/service/i"
	"github.com/beka-birhanu/maze-solver/solver"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	maxUploadBytes   = codec.HeaderSize + 1024*1024
	defaultAlgorithm = "bfs"
	defaultGenerator = maze.GenWilson
)

// Solver is the service the controller drives.
type Solver interface {
	Store(ctx context.Context, name string, data []byte) (*dmn.MazeRecord, error)
	Generate(ctx context.Context, name string, width, height int, gen maze.Generator, seed int64) (*dmn.MazeRecord, error)
	Maze(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, *maze.Maze, error)
	SolveStored(ctx context.Context, id uuid.UUID, algorithm string) (*service.Result, *maze.Maze, error)
	BenchmarkStored(ctx context.Context, id uuid.UUID, algorithms []string) ([]*service.Result, error)
	Ranking(ctx context.Context, id uuid.UUID, n int) ([]dmn.Ranking, error)
}

// Controller manages the maze routes.
type Controller struct {
	solver Solver
	logger i.Logger
}

// NewController initializes a Controller.
func NewController(s Solver, logger i.Logger) (*Controller, error) {
	if s == nil {
		return nil, errors.New("solver service is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	return &Controller{
		solver: s,
		logger: logger,
	}, nil
}

// RegisterPublic registers public routes.
func (c *Controller) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/algorithms", c.algorithms)
	mazes := route.Group("/mazes")
	{
		mazes.GET("/:ID", c.mazeInfo)
		mazes.GET("/:ID/solution", c.solution)
		mazes.GET("/:ID/ranking", c.ranking)
	}
}

// RegisterProtected registers protected routes.
func (c *Controller) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", c.upload)
		mazes.POST("/generate", c.generate)
		mazes.POST("/:ID/benchmark", c.benchmark)
	}
}

// algorithms lists the solving catalog and the maze generators.
func (c *Controller) algorithms(ctx *gin.Context) {
	names := solver.Names()
	algorithms := make([]AlgorithmResponse, len(names))
	for idx, name := range names {
		algorithms[idx] = AlgorithmResponse{Name: name, Stochastic: solver.Stochastic(name)}
	}
	ctx.JSON(http.StatusOK, gin.H{
		"algorithms": algorithms,
		"generators": maze.Generators(),
	})
}

// upload stores the binary maze file sent as the request body.
func (c *Controller) upload(ctx *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxUploadBytes+1))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(data) > maxUploadBytes {
		ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "maze file too large"})
		return
	}

	record, err := c.solver.Store(ctx, ctx.Query("name"), data)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newMazeResponse(record, nil))
}

// generate carves and stores a new maze.
func (c *Controller) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gen := maze.Generator(request.Generator)
	if gen == "" {
		gen = defaultGenerator
	}
	record, err := c.solver.Generate(ctx, request.Name, request.Width, request.Height, gen, request.Seed)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newMazeResponse(record, nil))
}

// mazeInfo returns a stored maze with its drawing.
func (c *Controller) mazeInfo(ctx *gin.Context) {
	id, ok := c.mazeID(ctx)
	if !ok {
		return
	}

	record, m, err := c.solver.Maze(ctx, id)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(record, m))
}

// solution solves a stored maze. ?steps=true adds every path-state.
func (c *Controller) solution(ctx *gin.Context) {
	id, ok := c.mazeID(ctx)
	if !ok {
		return
	}
	withSteps, err := strconv.ParseBool(ctx.DefaultQuery("steps", "false"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "steps must be a boolean"})
		return
	}

	result, m, err := c.solver.SolveStored(ctx, id, ctx.DefaultQuery("algorithm", defaultAlgorithm))
	if err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newSolutionResponse(result, m, withSteps))
}

// benchmark times the requested algorithms on a stored maze.
func (c *Controller) benchmark(ctx *gin.Context) {
	id, ok := c.mazeID(ctx)
	if !ok {
		return
	}
	var request BenchmarkRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	results, err := c.solver.BenchmarkStored(ctx, id, request.Algorithms)
	if err != nil {
		c.fail(ctx, err)
		return
	}

	response := make([]*SolutionResponse, len(results))
	for idx, result := range results {
		response[idx] = newSolutionResponse(result, nil, false)
	}
	ctx.JSON(http.StatusOK, response)
}

// ranking returns the fastest algorithms recorded for a maze.
func (c *Controller) ranking(ctx *gin.Context) {
	id, ok := c.mazeID(ctx)
	if !ok {
		return
	}
	n, err := strconv.Atoi(ctx.DefaultQuery("n", "0"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "n must be an integer"})
		return
	}

	rankings, err := c.solver.Ranking(ctx, id, n)
	if err != nil {
		c.fail(ctx, err)
		return
	}

	response := make([]RankingResponse, len(rankings))
	for idx, r := range rankings {
		response[idx] = RankingResponse{Rank: idx + 1, Algorithm: r.Algorithm, ElapsedMS: milliseconds(r.Elapsed)}
	}
	ctx.JSON(http.StatusOK, response)
}

func (c *Controller) mazeID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}

// fail maps service errors to HTTP statuses.
func (c *Controller) fail(ctx *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		c.logger.Error(fmt.Sprintf("%s %s: %s", ctx.Request.Method, ctx.Request.URL.Path, err))
		ctx.JSON(status, gin.H{"error": "internal error"})
		return
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, dmn.ErrMazeNotFound):
		return http.StatusNotFound
	case errors.Is(err, solver.ErrUnknownAlgorithm),
		errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, maze.ErrUnknownGenerator),
		errors.Is(err, maze.ErrEmptyMaze),
		errors.Is(err, maze.ErrNotRectangular),
		errors.Is(err, maze.ErrInvalidRole),
		errors.Is(err, maze.ErrMissingRole),
		errors.Is(err, codec.ErrMalformedFile),
		errors.Is(err, codec.ErrUnsupportedVersion):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNoRanking), errors.Is(err, service.ErrNoRepo):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
