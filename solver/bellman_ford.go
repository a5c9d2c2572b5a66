package solver

import "github.com/beka-birhanu/maze-solver/maze"

// BellmanFord relaxes every passage once per pass for at most |V|-1 passes,
// stopping early when a pass changes nothing.
func BellmanFord(m *maze.Maze, start, goal maze.Square) (Steps, bool) {
	if !usable(m, start, goal) {
		return nil, false
	}

	distance := newDistanceGrid(m)
	distance[start.Index] = 0
	cameFrom := make(map[maze.Square]maze.Square)
	squares := m.Squares()

	for pass := 0; pass < len(squares)-1; pass++ {
		changed := false
		for _, current := range squares {
			if distance[current.Index] == unreached {
				continue
			}
			for _, next := range m.Neighbors(current) {
				candidate := distance[current.Index] + 1
				if distance[next.Index] != unreached && candidate >= distance[next.Index] {
					continue
				}
				distance[next.Index] = candidate
				cameFrom[next] = current
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	if distance[goal.Index] == unreached {
		return nil, false
	}
	return reconstruct(cameFrom, start, goal)
}
