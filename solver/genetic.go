package solver

import (
	"math"
	"math/rand"
	"sort"

	"github.com/beka-birhanu/maze-solver/maze"
)

// GeneticOptions tunes the genetic search.
type GeneticOptions struct {
	PopulationSize int     // Number of routes per generation, at least 2
	Generations    int     // Number of breeding rounds
	MutationRate   float64 // Chance for a child to get its tail re-walked
	WalkFactor     int     // Random walks stop after WalkFactor*|V| moves
}

// DefaultGeneticOptions returns the settings used by the catalog.
func DefaultGeneticOptions() GeneticOptions {
	return GeneticOptions{
		PopulationSize: 100,
		Generations:    10,
		MutationRate:   0.1,
		WalkFactor:     8,
	}
}

// Genetic evolves a population of loop-erased random walks. Fitness is the
// route length, infinite for walks that never reached goal. The fitter half
// survives each generation and breeds the other half: crossover splices two
// parents at a square they share, mutation re-walks a child's tail from a
// random square. The best route after the last generation is returned when
// it reaches goal.
func Genetic(rng *rand.Rand, opts GeneticOptions) Strategy {
	opts.PopulationSize = max(opts.PopulationSize, 2)
	opts.Generations = max(opts.Generations, 0)
	opts.WalkFactor = max(opts.WalkFactor, 1)

	return func(m *maze.Maze, start, goal maze.Square) (Steps, bool) {
		if !usable(m, start, goal) {
			return nil, false
		}

		g := &genetics{m: m, goal: goal, rng: rng, opts: opts, limit: opts.WalkFactor * m.Len()}

		population := make([]Path, opts.PopulationSize)
		for i := range population {
			population[i] = g.walk(Path{start})
		}

		for generation := 0; generation < opts.Generations; generation++ {
			g.rank(population)
			survivors := population[:opts.PopulationSize/2]
			next := append(make([]Path, 0, opts.PopulationSize), survivors...)
			for len(next) < opts.PopulationSize {
				a, b := g.pick(survivors)
				for _, child := range g.crossover(a, b) {
					if len(next) == opts.PopulationSize {
						break
					}
					next = append(next, g.mutate(child))
				}
			}
			population = next
		}

		g.rank(population)
		best := population[0]
		if g.fitness(best) == math.MaxInt {
			return nil, false
		}
		return prefixes(best), true
	}
}

type genetics struct {
	m     *maze.Maze
	goal  maze.Square
	rng   *rand.Rand
	opts  GeneticOptions
	limit int
}

func (g *genetics) fitness(p Path) int {
	if end, ok := p.End(); !ok || end != g.goal {
		return math.MaxInt
	}
	return len(p)
}

// rank sorts the population fittest first. Ties keep their order.
func (g *genetics) rank(population []Path) {
	sort.SliceStable(population, func(i, j int) bool {
		return g.fitness(population[i]) < g.fitness(population[j])
	})
}

// walk extends prefix with random moves until goal, a sealed square or the
// move budget, and erases the loops of the result.
func (g *genetics) walk(prefix Path) Path {
	route := snapshot(prefix)
	current := route[len(route)-1]
	for steps := 0; current != g.goal && steps < g.limit; steps++ {
		options := g.m.Neighbors(current)
		if len(options) == 0 {
			break
		}
		current = options[g.rng.Intn(len(options))]
		route = append(route, current)
	}
	return eraseLoops(route)
}

func (g *genetics) pick(pool []Path) (Path, Path) {
	if len(pool) < 2 {
		return pool[0], pool[0]
	}
	order := g.rng.Perm(len(pool))
	return pool[order[0]], pool[order[1]]
}

// crossover joins the head of one parent to the tail of the other at a
// randomly chosen shared square, both ways round.
func (g *genetics) crossover(a, b Path) []Path {
	at := make(map[maze.Square]int, len(b))
	for j, sq := range b {
		if _, seen := at[sq]; !seen {
			at[sq] = j
		}
	}

	var shared [][2]int
	for i, sq := range a {
		if j, ok := at[sq]; ok {
			shared = append(shared, [2]int{i, j})
		}
	}

	cut := shared[g.rng.Intn(len(shared))]
	i, j := cut[0], cut[1]
	first := append(snapshot(a[:i]), b[j:]...)
	second := append(snapshot(b[:j]), a[i:]...)
	return []Path{eraseLoops(first), eraseLoops(second)}
}

func (g *genetics) mutate(p Path) Path {
	if g.rng.Float64() >= g.opts.MutationRate {
		return p
	}
	point := g.rng.Intn(len(p))
	return g.walk(p[:point+1])
}
