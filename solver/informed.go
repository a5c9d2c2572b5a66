package solver

import (
	"github.com/beka-birhanu/maze-solver/maze"
	"github.com/zyedidia/generic/mapset"
)

// neighborFunc enumerates the legal moves out of a square.
type neighborFunc func(maze.Square) []maze.Square

// costSearch is the shared engine of Dijkstra and A*. Squares are popped in
// order of cost plus estimate; a square whose cost improves is pushed again
// and stale entries are skipped when popped.
func costSearch(start, goal maze.Square, neighbors neighborFunc, estimate func(maze.Square) int) (Steps, bool) {
	open := &frontier{}
	open.push(start, estimate(start), 0)
	cost := map[maze.Square]int{start: 0}
	cameFrom := make(map[maze.Square]maze.Square)
	closed := mapset.New[maze.Square]()

	for open.Len() > 0 {
		item := open.pop()
		current := item.square
		if closed.Has(current) || item.cost > cost[current] {
			continue
		}
		closed.Put(current)

		if current == goal {
			return reconstruct(cameFrom, start, goal)
		}

		for _, next := range neighbors(current) {
			tentative := item.cost + 1
			if known, seen := cost[next]; seen && tentative >= known {
				continue
			}
			cost[next] = tentative
			cameFrom[next] = current
			open.push(next, tentative+estimate(next), tentative)
		}
	}

	return nil, false
}

// Dijkstra is a uniform cost search. With unit moves it finds the same
// route length as BreadthFirst.
func Dijkstra(m *maze.Maze, start, goal maze.Square) (Steps, bool) {
	if !usable(m, start, goal) {
		return nil, false
	}
	return costSearch(start, goal, m.Neighbors, func(maze.Square) int { return 0 })
}

// AStar orders the frontier by cost so far plus the Manhattan distance to
// goal. The heuristic is admissible, so the route is a shortest one.
func AStar(m *maze.Maze, start, goal maze.Square) (Steps, bool) {
	if !usable(m, start, goal) {
		return nil, false
	}
	return costSearch(start, goal, m.Neighbors, func(sq maze.Square) int { return heuristic(sq, goal) })
}

// JumpPoint is served by A*; on a four-connected grid with unit moves the
// pruning rules do not change the route.
func JumpPoint(m *maze.Maze, start, goal maze.Square) (Steps, bool) {
	return AStar(m, start, goal)
}

// Fringe is served by A* as well; it returns the same route an iterative
// fringe would.
func Fringe(m *maze.Maze, start, goal maze.Square) (Steps, bool) {
	return AStar(m, start, goal)
}

// greedySearch orders the frontier by the distance estimate alone and never
// revisits a discovered square.
func greedySearch(m *maze.Maze, start, goal maze.Square) (Steps, bool) {
	if !usable(m, start, goal) {
		return nil, false
	}

	open := &frontier{}
	open.push(start, heuristic(start, goal), 0)
	cameFrom := make(map[maze.Square]maze.Square)
	discovered := mapset.New[maze.Square]()
	discovered.Put(start)

	for open.Len() > 0 {
		current := open.pop().square
		if current == goal {
			return reconstruct(cameFrom, start, goal)
		}

		for _, next := range m.Neighbors(current) {
			if discovered.Has(next) {
				continue
			}
			discovered.Put(next)
			cameFrom[next] = current
			open.push(next, heuristic(next, goal), 0)
		}
	}

	return nil, false
}

// GreedyBestFirst heads for the square closest to goal. Fast, not optimal.
func GreedyBestFirst(m *maze.Maze, start, goal maze.Square) (Steps, bool) {
	return greedySearch(m, start, goal)
}

// BestFirst is the graph-search name of GreedyBestFirst.
func BestFirst(m *maze.Maze, start, goal maze.Square) (Steps, bool) {
	return greedySearch(m, start, goal)
}
