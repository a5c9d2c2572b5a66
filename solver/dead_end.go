package solver

import (
	"github.com/beka-birhanu/maze-solver/maze"
)

// DeadEndFilling walls off dead ends before searching. A dead end is a
// square other than start or goal with at most one open passage to a square
// that is not filled yet, which on the first pass means the squares with
// three border bits. Filling repeats until nothing changes. The filled
// squares become RoleWall in a derived maze and A* runs on it, never
// entering a wall. Squares already tagged as walls stay passable, as they
// are for every other strategy.
func DeadEndFilling(m *maze.Maze, start, goal maze.Square) (Steps, bool) {
	if !usable(m, start, goal) {
		return nil, false
	}

	derived, err := withDeadEndsWalled(m, fillDeadEnds(m, start, goal))
	if err != nil {
		return nil, false
	}

	open := func(sq maze.Square) []maze.Square {
		var result []maze.Square
		for _, next := range derived.Neighbors(sq) {
			if next.Role != maze.RoleWall {
				result = append(result, original(m, next))
			}
		}
		return result
	}

	return costSearch(start, goal, open, func(sq maze.Square) int { return heuristic(sq, goal) })
}

// withDeadEndsWalled derives a maze where exactly the filled squares hold
// RoleWall.
func withDeadEndsWalled(m *maze.Maze, filled []bool) (*maze.Maze, error) {
	var changed []maze.Square
	for _, sq := range m.Squares() {
		switch {
		case filled[sq.Index]:
			changed = append(changed, sq.WithRole(maze.RoleWall))
		case sq.Role == maze.RoleWall:
			changed = append(changed, sq.WithRole(maze.RoleNone))
		}
	}
	return m.Replace(changed...)
}

// original maps a square of a derived maze back to m, so the route is made
// of the caller's squares.
func original(m *maze.Maze, sq maze.Square) maze.Square {
	stored, _ := m.Square(sq.Index)
	return stored
}

// fillDeadEnds returns, per square index, whether the square was filled.
func fillDeadEnds(m *maze.Maze, start, goal maze.Square) []bool {
	filled := make([]bool, m.Len())

	passages := func(sq maze.Square) []maze.Square {
		var result []maze.Square
		for _, next := range m.Neighbors(sq) {
			if !filled[next.Index] {
				result = append(result, next)
			}
		}
		return result
	}

	pending := m.Squares()
	for len(pending) > 0 {
		sq := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if filled[sq.Index] || sq.SamePosition(start) || sq.SamePosition(goal) {
			continue
		}
		open := passages(sq)
		if len(open) > 1 {
			continue
		}
		filled[sq.Index] = true
		pending = append(pending, open...)
	}

	return filled
}
