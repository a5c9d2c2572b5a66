package maze

import "math/rand"

// carvePrim grows the maze from a random square, repeatedly opening a random
// frontier wall that leads outside the carved region.
func carvePrim(c *carver, rng *rand.Rand) {
	inMaze := make([]bool, c.size())
	var frontier []wall

	add := func(index int) {
		inMaze[index] = true
		for _, dir := range Directions {
			if next, ok := c.neighbor(index, dir); ok && !inMaze[next] {
				frontier = append(frontier, wall{index: index, dir: dir})
			}
		}
	}

	add(rng.Intn(c.size()))
	for len(frontier) > 0 {
		i := rng.Intn(len(frontier))
		w := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		next, _ := c.neighbor(w.index, w.dir)
		if inMaze[next] {
			continue
		}
		c.open(w.index, w.dir)
		add(next)
	}
}
