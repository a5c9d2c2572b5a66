package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reachable counts the squares connected to the entrance.
func reachable(m *Maze) int {
	start, _ := m.Entrance()
	seen := map[int]struct{}{start.Index: {}}
	stack := []Square{start}
	for len(stack) > 0 {
		sq := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range m.Neighbors(sq) {
			if _, ok := seen[n.Index]; !ok {
				seen[n.Index] = struct{}{}
				stack = append(stack, n)
			}
		}
	}
	return len(seen)
}

// passages counts open edges between adjacent squares.
func passages(m *Maze) int {
	n := 0
	for _, sq := range m.Squares() {
		for _, next := range m.Neighbors(sq) {
			if sq.Less(next) {
				n++
			}
		}
	}
	return n
}

func TestGenerateProducesPerfectMazes(t *testing.T) {
	for _, gen := range Generators() {
		t.Run(string(gen), func(t *testing.T) {
			m, err := Generate(12, 7, gen, rand.New(rand.NewSource(42)))
			require.NoError(t, err)

			assert.Equal(t, 12, m.Width())
			assert.Equal(t, 7, m.Height())
			assert.NoError(t, m.Validate())
			assert.Equal(t, m.Len(), reachable(m), "every square reachable")
			assert.Equal(t, m.Len()-1, passages(m), "spanning tree has no loops")

			entrance, _ := m.Entrance()
			exit, _ := m.Exit()
			assert.Equal(t, 0, entrance.Index)
			assert.Equal(t, m.Len()-1, exit.Index)
		})
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	for _, gen := range Generators() {
		a, err := Generate(9, 9, gen, rand.New(rand.NewSource(7)))
		require.NoError(t, err)
		b, err := Generate(9, 9, gen, rand.New(rand.NewSource(7)))
		require.NoError(t, err)
		assert.Equal(t, a.Squares(), b.Squares(), string(gen))
	}
}

func TestGenerateSingleRow(t *testing.T) {
	m, err := Generate(5, 1, GenWilson, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 5, reachable(m))
}

func TestGenerateRejectsBadInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := Generate(0, 5, GenPrim, rng)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = Generate(1, 1, GenPrim, rng)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = Generate(maxDimension+1, 2, GenPrim, rng)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = Generate(3, 3, Generator("eller"), rng)
	assert.ErrorIs(t, err, ErrUnknownGenerator)
	_, err = Generate(3, 3, GenPrim, nil)
	assert.ErrorIs(t, err, ErrNilRandom)
}

func TestDisjointSet(t *testing.T) {
	s := newDisjointSet(5)
	assert.True(t, s.union(0, 1))
	assert.True(t, s.union(1, 2))
	assert.False(t, s.union(0, 2))
	assert.Equal(t, s.find(0), s.find(2))
	assert.NotEqual(t, s.find(0), s.find(4))
}
