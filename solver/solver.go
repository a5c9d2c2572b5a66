/*
Package solver holds the catalog of maze search strategies.

Every strategy shares one contract: given a maze, a start and a goal square it
returns the ordered path-states of its search, or false when no path exists.
A path-state is a route from the start towards the search frontier; the last
state is the complete route from start to goal. Renderers replay the states
to animate a search.

Deterministic strategies are pure functions of their arguments. The genetic
and ant colony strategies draw every random number from the *rand.Rand they
are built with.
*/
package solver

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/beka-birhanu/maze-solver/maze"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrNilRandom        = errors.New("stochastic algorithm needs a random source")
)

// Path is an ordered route of squares.
type Path []maze.Square

// Steps is the sequence of path-states produced by a search.
type Steps []Path

// Strategy searches m for a route from start to goal.
type Strategy func(m *maze.Maze, start, goal maze.Square) (Steps, bool)

// Final returns the last path-state, the full route.
func (s Steps) Final() Path {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

// Reversed returns the states in reverse order, for bottom-up playback.
func (s Steps) Reversed() Steps {
	out := make(Steps, len(s))
	for i, p := range s {
		out[len(s)-1-i] = p
	}
	return out
}

// Start returns the first square of the path.
func (p Path) Start() (maze.Square, bool) {
	if len(p) == 0 {
		return maze.Square{}, false
	}
	return p[0], true
}

// End returns the last square of the path.
func (p Path) End() (maze.Square, bool) {
	if len(p) == 0 {
		return maze.Square{}, false
	}
	return p[len(p)-1], true
}

// Valid reports whether p runs from start to goal through legal moves only.
func (p Path) Valid(m *maze.Maze, start, goal maze.Square) bool {
	first, ok := p.Start()
	if !ok || !first.SamePosition(start) {
		return false
	}
	last, _ := p.End()
	if !last.SamePosition(goal) {
		return false
	}
	for i := 1; i < len(p); i++ {
		if !m.CanMove(p[i-1], p[i]) {
			return false
		}
	}
	return true
}

type entry struct {
	name       string
	stochastic bool
	build      func(rng *rand.Rand) Strategy
}

func fixed(s Strategy) func(*rand.Rand) Strategy {
	return func(*rand.Rand) Strategy { return s }
}

var catalog = []entry{
	{name: "bfs", build: fixed(BreadthFirst)},
	{name: "a-star", build: fixed(AStar)},
	{name: "dfs", build: fixed(DepthFirst)},
	{name: "dijkstra", build: fixed(Dijkstra)},
	{name: "greedy", build: fixed(GreedyBestFirst)},
	{name: "wall-follower", build: fixed(WallFollower)},
	{name: "dead-end", build: fixed(DeadEndFilling)},
	{name: "recursive-bt", build: fixed(RecursiveBacktracking)},
	{name: "tremaux", build: fixed(Tremaux)},
	{name: "bellman-ford", build: fixed(BellmanFord)},
	{name: "lee", build: fixed(Lee)},
	{name: "genetic", stochastic: true, build: func(rng *rand.Rand) Strategy {
		return Genetic(rng, DefaultGeneticOptions())
	}},
	{name: "ant-colony", stochastic: true, build: func(rng *rand.Rand) Strategy {
		return AntColony(rng, DefaultAntColonyOptions())
	}},
	{name: "best-first", build: fixed(BestFirst)},
	{name: "wavefront", build: fixed(Wavefront)},
	{name: "jump-point", build: fixed(JumpPoint)},
	{name: "fringe", build: fixed(Fringe)},
	{name: "iddfs", build: fixed(IterativeDeepening)},
}

// Names lists every algorithm name in catalog order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, e := range catalog {
		names[i] = e.name
	}
	return names
}

// Stochastic reports whether the named algorithm consumes randomness.
func Stochastic(name string) bool {
	for _, e := range catalog {
		if e.name == name {
			return e.stochastic
		}
	}
	return false
}

// Lookup returns the strategy registered under name. rng is only used, and
// only required, by stochastic strategies.
func Lookup(name string, rng *rand.Rand) (Strategy, error) {
	for _, e := range catalog {
		if e.name != name {
			continue
		}
		if e.stochastic && rng == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilRandom, name)
		}
		return e.build(rng), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
