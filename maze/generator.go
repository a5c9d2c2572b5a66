package maze

import (
	"errors"
	"fmt"
	"math/rand"
)

// Generator names a maze carving algorithm.
type Generator string

// Available generators.
const (
	GenBacktracker Generator = "backtracker"
	GenKruskal     Generator = "kruskal"
	GenPrim        Generator = "prim"
	GenWilson      Generator = "wilson"
)

const (
	minDimension = 1
	maxDimension = 1024
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrUnknownGenerator  = errors.New("unknown maze generator")
	ErrNilRandom         = errors.New("random source is required")
)

// Generators lists every generator in a stable order.
func Generators() []Generator {
	return []Generator{GenBacktracker, GenKruskal, GenPrim, GenWilson}
}

// Generate carves a perfect maze (every square reachable, no loops) of the
// given size. The top-left square becomes the entrance and the bottom-right
// square the exit. All randomness comes from rng.
func Generate(width, height int, gen Generator, rng *rand.Rand) (*Maze, error) {
	if min(width, height) < minDimension || max(width, height) > maxDimension || width*height < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if rng == nil {
		return nil, ErrNilRandom
	}

	c := newCarver(width, height)
	switch gen {
	case GenBacktracker:
		carveBacktracker(c, rng)
	case GenKruskal:
		carveKruskal(c, rng)
	case GenPrim:
		carvePrim(c, rng)
	case GenWilson:
		carveWilson(c, rng)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, gen)
	}

	return c.maze()
}

// carver is the mutable grid the generators knock walls out of. It starts
// with every wall standing.
type carver struct {
	width   int
	height  int
	borders []Border
}

func newCarver(width, height int) *carver {
	borders := make([]Border, width*height)
	for i := range borders {
		borders[i] = allBorders
	}
	return &carver{width: width, height: height, borders: borders}
}

func (c *carver) size() int {
	return len(c.borders)
}

// neighbor returns the index next to index in direction dir, ignoring walls.
func (c *carver) neighbor(index int, dir Border) (int, bool) {
	dr, dc := dir.delta()
	row, col := index/c.width+dr, index%c.width+dc
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return 0, false
	}
	return row*c.width + col, true
}

// open removes the wall between index and its neighbour towards dir.
func (c *carver) open(index int, dir Border) {
	next, ok := c.neighbor(index, dir)
	if !ok {
		return
	}
	c.borders[index] = c.borders[index].Without(dir)
	c.borders[next] = c.borders[next].Without(dir.Opposite())
}

func (c *carver) maze() (*Maze, error) {
	squares := make([]Square, c.size())
	for i, b := range c.borders {
		squares[i] = NewSquare(i/c.width, i%c.width, c.width, b, RoleNone)
	}
	squares[0].Role = RoleEntrance
	squares[len(squares)-1].Role = RoleExit
	return New(squares)
}
