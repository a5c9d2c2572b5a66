package solver

import "github.com/beka-birhanu/maze-solver/maze"

// turnLeft and turnRight rotate a heading a quarter turn.
func turnLeft(heading maze.Border) maze.Border {
	switch heading {
	case maze.Top:
		return maze.Left
	case maze.Left:
		return maze.Bottom
	case maze.Bottom:
		return maze.Right
	default:
		return maze.Top
	}
}

func turnRight(heading maze.Border) maze.Border {
	switch heading {
	case maze.Top:
		return maze.Right
	case maze.Right:
		return maze.Bottom
	case maze.Bottom:
		return maze.Left
	default:
		return maze.Top
	}
}

type walkerState struct {
	index   int
	heading maze.Border
}

// WallFollower keeps its left hand on the wall: turn left when open, else go
// forward, else rotate right until a legal move appears. The walk starts
// heading right. It gives up when it re-enters a square with a heading it
// already had there, which happens when goal is not on the followed wall.
func WallFollower(m *maze.Maze, start, goal maze.Square) (Steps, bool) {
	if !usable(m, start, goal) {
		return nil, false
	}

	current, heading := start, maze.Right
	walk := Path{start}
	seen := map[walkerState]struct{}{{index: start.Index, heading: heading}: {}}

	for current != goal {
		moved := false
		for turn, dir := 0, turnLeft(heading); turn < 4; turn, dir = turn+1, turnRight(dir) {
			if next, ok := m.Step(current, dir); ok {
				current, heading, moved = next, dir, true
				break
			}
		}
		if !moved {
			return nil, false
		}

		state := walkerState{index: current.Index, heading: heading}
		if _, loop := seen[state]; loop {
			return nil, false
		}
		seen[state] = struct{}{}
		walk = append(walk, current)
	}

	return prefixes(walk), true
}
