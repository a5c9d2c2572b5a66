package maze

import "math/rand"

// carveWilson builds a uniform spanning tree with loop-erased random walks.
// Each walk starts from the lowest unvisited square and wanders until it
// touches the tree; only the loop-erased route is carved.
func carveWilson(c *carver, rng *rand.Rand) {
	visited := make([]bool, c.size())
	visited[rng.Intn(c.size())] = true
	remaining := c.size() - 1

	next := 0
	for remaining > 0 {
		for visited[next] {
			next++
		}

		exits := c.randomWalk(next, visited, rng)

		// Retrace the walk following the last exit taken from each square.
		// Revisited squares keep only their final exit, which erases loops.
		for cell := next; !visited[cell]; {
			dir := exits[cell]
			c.open(cell, dir)
			visited[cell] = true
			remaining--
			cell, _ = c.neighbor(cell, dir)
		}
	}
}

// randomWalk wanders from start until it reaches a visited square and
// returns the last direction taken out of every square it crossed.
func (c *carver) randomWalk(start int, visited []bool, rng *rand.Rand) map[int]Border {
	exits := make(map[int]Border)
	cell := start
	for !visited[cell] {
		moves := c.candidates(cell)
		dir := moves[rng.Intn(len(moves))]
		exits[cell] = dir
		cell, _ = c.neighbor(cell, dir)
	}
	return exits
}

// candidates lists the in-bound directions out of index, walls ignored.
func (c *carver) candidates(index int) []Border {
	result := make([]Border, 0, 4)
	for _, dir := range Directions {
		if _, ok := c.neighbor(index, dir); ok {
			result = append(result, dir)
		}
	}
	return result
}
