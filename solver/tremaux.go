package solver

import "github.com/beka-birhanu/maze-solver/maze"

// Tremaux walks the maze keeping a visit counter on every square. It always
// prefers a neighbour that was never entered, in Top, Right, Bottom, Left
// order, and otherwise backs up one square. Each move, forward or back, adds
// the current route as a path-state.
func Tremaux(m *maze.Maze, start, goal maze.Square) (Steps, bool) {
	if !usable(m, start, goal) {
		return nil, false
	}

	visits := map[maze.Square]int{start: 1}
	route := Path{start}
	steps := Steps{snapshot(route)}

	for len(route) > 0 {
		current := route[len(route)-1]
		if current == goal {
			return steps, true
		}

		next, found := unvisited(m.Neighbors(current), visits)
		if found {
			visits[next]++
			route = append(route, next)
		} else {
			// Dead end: leave the square for good and step back.
			visits[current]++
			route = route[:len(route)-1]
			if len(route) == 0 {
				break
			}
			visits[route[len(route)-1]]++
		}
		steps = append(steps, snapshot(route))
	}

	return nil, false
}

func unvisited(candidates []maze.Square, visits map[maze.Square]int) (maze.Square, bool) {
	for _, sq := range candidates {
		if visits[sq] == 0 {
			return sq, true
		}
	}
	return maze.Square{}, false
}
