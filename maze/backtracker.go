package maze

import "math/rand"

// carveBacktracker is a depth-first carve driven by an explicit stack.
func carveBacktracker(c *carver, rng *rand.Rand) {
	visited := make([]bool, c.size())
	start := rng.Intn(c.size())
	visited[start] = true
	stack := []int{start}

	for len(stack) > 0 {
		cell := stack[len(stack)-1]

		var options []Border
		for _, dir := range Directions {
			if next, ok := c.neighbor(cell, dir); ok && !visited[next] {
				options = append(options, dir)
			}
		}
		if len(options) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		dir := options[rng.Intn(len(options))]
		next, _ := c.neighbor(cell, dir)
		c.open(cell, dir)
		visited[next] = true
		stack = append(stack, next)
	}
}
