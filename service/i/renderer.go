package i

import (
	"github.com/beka-birhanu/maze-solver/maze"
	"github.com/beka-birhanu/maze-solver/solver"
)

// Renderer turns a maze and a route into a displayable frame.
type Renderer interface {
	// Render draws a complete route.
	Render(m *maze.Maze, path solver.Path) string

	// RenderStep draws one path-state of a search in progress.
	RenderStep(m *maze.Maze, prefix solver.Path) string
}
