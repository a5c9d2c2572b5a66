package solver

import (
	"slices"

	"github.com/beka-birhanu/maze-solver/maze"
)

// heuristic is the Manhattan distance between two squares.
func heuristic(a, b maze.Square) int {
	return abs(a.Row-b.Row) + abs(a.Column-b.Column)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// usable reports whether start and goal are squares of m.
func usable(m *maze.Maze, start, goal maze.Square) bool {
	return m != nil && m.Contains(start) && m.Contains(goal)
}

// reconstruct walks cameFrom back from goal to start and returns the growing
// prefixes of the route, shortest first.
func reconstruct(cameFrom map[maze.Square]maze.Square, start, goal maze.Square) (Steps, bool) {
	path := Path{goal}
	for current := goal; current != start; {
		prev, ok := cameFrom[current]
		if !ok {
			return nil, false
		}
		path = append(path, prev)
		current = prev
	}
	slices.Reverse(path)
	return prefixes(path), true
}

// prefixes returns path[:1], path[:2], ..., path. The prefixes share the
// backing array of path; their capacity is clipped so appends never write
// through.
func prefixes(path Path) Steps {
	steps := make(Steps, len(path))
	for i := range path {
		steps[i] = path[: i+1 : i+1]
	}
	return steps
}

// snapshot copies a route that is still being mutated.
func snapshot(route Path) Path {
	return slices.Clone(route)
}

// eraseLoops removes cycles from a walk, keeping the first visit of every
// square and the moves that lead out of its last visit.
func eraseLoops(walk Path) Path {
	at := make(map[maze.Square]int, len(walk))
	out := make(Path, 0, len(walk))
	for _, sq := range walk {
		if i, seen := at[sq]; seen {
			for _, dropped := range out[i+1:] {
				delete(at, dropped)
			}
			out = out[:i+1]
			continue
		}
		at[sq] = len(out)
		out = append(out, sq)
	}
	return out
}
