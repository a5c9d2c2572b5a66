package maze

import "math/rand"

// disjointSet is a union-find forest over square indices.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &disjointSet{parent: parent, rank: make([]int, n)}
}

// find returns the root of x, compressing the path iteratively.
func (s *disjointSet) find(x int) int {
	root := x
	for s.parent[root] != root {
		root = s.parent[root]
	}
	for s.parent[x] != root {
		s.parent[x], x = root, s.parent[x]
	}
	return root
}

// union merges the sets of a and b. It reports false when they were already
// joined.
func (s *disjointSet) union(a, b int) bool {
	x, y := s.find(a), s.find(b)
	if x == y {
		return false
	}
	if s.rank[x] > s.rank[y] {
		s.parent[y] = x
		return true
	}
	s.parent[x] = y
	if s.rank[x] == s.rank[y] {
		s.rank[y]++
	}
	return true
}

type wall struct {
	index int
	dir   Border
}

// carveKruskal removes walls in random order whenever they separate two
// disjoint regions.
func carveKruskal(c *carver, rng *rand.Rand) {
	walls := make([]wall, 0, 2*c.size())
	for i := 0; i < c.size(); i++ {
		for _, dir := range []Border{Right, Bottom} {
			if _, ok := c.neighbor(i, dir); ok {
				walls = append(walls, wall{index: i, dir: dir})
			}
		}
	}
	rng.Shuffle(len(walls), func(i, j int) {
		walls[i], walls[j] = walls[j], walls[i]
	})

	sets := newDisjointSet(c.size())
	for _, w := range walls {
		other, _ := c.neighbor(w.index, w.dir)
		if sets.union(w.index, other) {
			c.open(w.index, w.dir)
		}
	}
}
