package solver

import (
	"github.com/beka-birhanu/maze-solver/maze"
	"github.com/zyedidia/generic/mapset"
)

// BreadthFirst expands squares in FIFO order and returns a route with the
// fewest moves.
func BreadthFirst(m *maze.Maze, start, goal maze.Square) (Steps, bool) {
	if !usable(m, start, goal) {
		return nil, false
	}

	queue := []maze.Square{start}
	cameFrom := make(map[maze.Square]maze.Square)
	visited := mapset.New[maze.Square]()
	visited.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == goal {
			return reconstruct(cameFrom, start, goal)
		}

		for _, next := range m.Neighbors(current) {
			if visited.Has(next) {
				continue
			}
			visited.Put(next)
			cameFrom[next] = current
			queue = append(queue, next)
		}
	}

	return nil, false
}

// unreached marks squares missing from a distance grid.
const unreached = -1

func newDistanceGrid(m *maze.Maze) []int {
	grid := make([]int, m.Len())
	for i := range grid {
		grid[i] = unreached
	}
	return grid
}

// Lee labels every square with its distance from start using an explicit
// distance grid, then follows the labels back.
func Lee(m *maze.Maze, start, goal maze.Square) (Steps, bool) {
	if !usable(m, start, goal) {
		return nil, false
	}

	distance := newDistanceGrid(m)
	distance[start.Index] = 0
	cameFrom := make(map[maze.Square]maze.Square)
	queue := []maze.Square{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == goal {
			return reconstruct(cameFrom, start, goal)
		}

		for _, next := range m.Neighbors(current) {
			if distance[next.Index] != unreached {
				continue
			}
			distance[next.Index] = distance[current.Index] + 1
			cameFrom[next] = current
			queue = append(queue, next)
		}
	}

	return nil, false
}

// Wavefront grows the reached region one full distance layer at a time and
// stops at the layer that contains goal.
func Wavefront(m *maze.Maze, start, goal maze.Square) (Steps, bool) {
	if !usable(m, start, goal) {
		return nil, false
	}

	distance := newDistanceGrid(m)
	distance[start.Index] = 0
	cameFrom := make(map[maze.Square]maze.Square)
	wave := []maze.Square{start}

	for len(wave) > 0 {
		var next []maze.Square
		for _, current := range wave {
			if current == goal {
				return reconstruct(cameFrom, start, goal)
			}
			for _, n := range m.Neighbors(current) {
				if distance[n.Index] != unreached {
					continue
				}
				distance[n.Index] = distance[current.Index] + 1
				cameFrom[n] = current
				next = append(next, n)
			}
		}
		wave = next
	}

	return nil, false
}
