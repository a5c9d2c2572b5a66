package solver

import (
	"github.com/beka-birhanu/maze-solver/maze"
	"github.com/zyedidia/generic/mapset"
)

// DepthFirst expands the most recently discovered square first. The route is
// not necessarily the shortest.
func DepthFirst(m *maze.Maze, start, goal maze.Square) (Steps, bool) {
	if !usable(m, start, goal) {
		return nil, false
	}

	stack := []maze.Square{start}
	cameFrom := make(map[maze.Square]maze.Square)
	discovered := mapset.New[maze.Square]()
	discovered.Put(start)

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current == goal {
			return reconstruct(cameFrom, start, goal)
		}

		for _, next := range m.Neighbors(current) {
			if discovered.Has(next) {
				continue
			}
			discovered.Put(next)
			cameFrom[next] = current
			stack = append(stack, next)
		}
	}

	return nil, false
}

// RecursiveBacktracking runs a depth-first search over an explicit stack of
// candidate routes. Each expanded route becomes a path-state, so the trace
// jumps between branches as the search backtracks. The first route reaching
// goal wins.
func RecursiveBacktracking(m *maze.Maze, start, goal maze.Square) (Steps, bool) {
	if !usable(m, start, goal) {
		return nil, false
	}

	stack := []Path{{start}}
	visited := mapset.New[maze.Square]()
	visited.Put(start)

	var steps Steps
	for len(stack) > 0 {
		route := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		current := route[len(route)-1]

		steps = append(steps, route)
		if current == goal {
			return steps, true
		}

		for _, next := range m.Neighbors(current) {
			if visited.Has(next) {
				continue
			}
			visited.Put(next)
			extended := make(Path, len(route), len(route)+1)
			copy(extended, route)
			stack = append(stack, append(extended, next))
		}
	}

	return nil, false
}

// IterativeDeepening repeats a depth-limited search with limits 0, 1, ...
// up to the number of squares, so it always terminates. The first limit that
// reaches goal yields a shortest route.
func IterativeDeepening(m *maze.Maze, start, goal maze.Square) (Steps, bool) {
	if !usable(m, start, goal) {
		return nil, false
	}

	for limit := 0; limit < m.Len(); limit++ {
		route, exhausted := depthLimited(m, start, goal, limit)
		if route != nil {
			return prefixes(route), true
		}
		if exhausted {
			// Nothing was cut off by the limit: deeper searches see the same squares.
			return nil, false
		}
	}
	return nil, false
}

// depthLimited searches routes of at most limit moves with an explicit stack.
// Squares on the current route are never re-entered, and a square is only
// re-expanded when reached through a strictly shorter route than before.
// exhausted reports that no branch was cut by the limit.
func depthLimited(m *maze.Maze, start, goal maze.Square, limit int) (route Path, exhausted bool) {
	if start == goal {
		return Path{start}, false
	}

	onPath := mapset.New[maze.Square]()
	onPath.Put(start)
	bestDepth := map[maze.Square]int{start: 0}
	exhausted = true

	route = Path{start}
	options := [][]maze.Square{m.Neighbors(start)}
	next := []int{0}

	for len(route) > 0 {
		depth := len(route) - 1
		if depth == limit || next[depth] >= len(options[depth]) {
			if depth == limit && len(options[depth]) > 0 {
				exhausted = false
			}
			onPath.Remove(route[depth])
			route, options, next = route[:depth], options[:depth], next[:depth]
			continue
		}

		candidate := options[depth][next[depth]]
		next[depth]++
		if onPath.Has(candidate) {
			continue
		}
		if best, seen := bestDepth[candidate]; seen && best <= depth+1 {
			continue
		}
		bestDepth[candidate] = depth + 1

		route = append(route, candidate)
		if candidate == goal {
			return route, false
		}
		onPath.Put(candidate)
		options = append(options, m.Neighbors(candidate))
		next = append(next, 0)
	}

	return nil, exhausted
}
