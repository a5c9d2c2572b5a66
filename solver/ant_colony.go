package solver

import (
	"math/rand"

	"github.com/beka-birhanu/maze-solver/maze"
)

// AntColonyOptions tunes the ant colony search.
type AntColonyOptions struct {
	Ants       int     // Ants released per iteration
	Iterations int     // Number of release rounds
	Decay      float64 // Fraction of pheromone evaporating per round, in [0, 1)
	WalkFactor int     // An ant gives up after WalkFactor*|V| moves
}

// DefaultAntColonyOptions returns the settings used by the catalog.
func DefaultAntColonyOptions() AntColonyOptions {
	return AntColonyOptions{
		Ants:       100,
		Iterations: 10,
		Decay:      0.1,
		WalkFactor: 8,
	}
}

type edge struct {
	from int
	to   int
}

const initialPheromone = 1.0

// AntColony releases ants that pick each move with probability proportional
// to the pheromone on that passage. Ants reaching goal deposit 1/length on
// their loop-erased route; all pheromone evaporates after each round. An ant
// stuck on a sealed square or out of moves simply dies. The shortest route
// any ant found is returned.
func AntColony(rng *rand.Rand, opts AntColonyOptions) Strategy {
	opts.Ants = max(opts.Ants, 1)
	opts.Iterations = max(opts.Iterations, 1)
	opts.WalkFactor = max(opts.WalkFactor, 1)
	if opts.Decay < 0 || opts.Decay >= 1 {
		opts.Decay = DefaultAntColonyOptions().Decay
	}

	return func(m *maze.Maze, start, goal maze.Square) (Steps, bool) {
		if !usable(m, start, goal) {
			return nil, false
		}

		pheromones := make(map[edge]float64)
		for _, sq := range m.Squares() {
			for _, next := range m.Neighbors(sq) {
				pheromones[edge{sq.Index, next.Index}] = initialPheromone
			}
		}
		level := func(from, to maze.Square) float64 {
			return pheromones[edge{from.Index, to.Index}]
		}
		limit := opts.WalkFactor * m.Len()

		var best Path
		for iteration := 0; iteration < opts.Iterations; iteration++ {
			var arrived []Path
			for ant := 0; ant < opts.Ants; ant++ {
				if route, ok := forage(m, start, goal, rng, level, limit); ok {
					arrived = append(arrived, route)
					if best == nil || len(route) < len(best) {
						best = route
					}
				}
			}

			for e, p := range pheromones {
				pheromones[e] = p * (1 - opts.Decay)
			}
			for _, route := range arrived {
				deposit := 1.0 / float64(len(route))
				for i := 1; i < len(route); i++ {
					e := edge{route[i-1].Index, route[i].Index}
					pheromones[e] = level(route[i-1], route[i]) + deposit
				}
			}
		}

		if best == nil {
			return nil, false
		}
		return prefixes(best), true
	}
}

// forage walks one ant from start and returns its loop-erased route when it
// reaches goal within limit moves.
func forage(m *maze.Maze, start, goal maze.Square, rng *rand.Rand, level func(from, to maze.Square) float64, limit int) (Path, bool) {
	route := Path{start}
	current := start
	for steps := 0; current != goal; steps++ {
		if steps == limit {
			return nil, false
		}
		options := m.Neighbors(current)
		if len(options) == 0 {
			return nil, false
		}

		total := 0.0
		for _, next := range options {
			total += level(current, next)
		}
		choice := options[len(options)-1]
		if total <= 0 {
			choice = options[rng.Intn(len(options))]
		} else {
			r := rng.Float64() * total
			for _, next := range options {
				r -= level(current, next)
				if r < 0 {
					choice = next
					break
				}
			}
		}

		current = choice
		route = append(route, current)
	}
	return eraseLoops(route), true
}
