package render

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/beka-birhanu/maze-solver/maze"
	"github.com/beka-birhanu/maze-solver/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corridor is a 3x1 maze: entrance, plain square, exit.
func corridor(t *testing.T) (*maze.Maze, solver.Steps) {
	t.Helper()
	squares := []maze.Square{
		maze.NewSquare(0, 0, 3, maze.Top|maze.Bottom|maze.Left, maze.RoleEntrance),
		maze.NewSquare(0, 1, 3, maze.Top|maze.Bottom, maze.RoleNone),
		maze.NewSquare(0, 2, 3, maze.Top|maze.Bottom|maze.Right, maze.RoleExit),
	}
	m, err := maze.New(squares)
	require.NoError(t, err)

	start, _ := m.Entrance()
	goal, _ := m.Exit()
	steps, ok := solver.BreadthFirst(m, start, goal)
	require.True(t, ok)
	return m, steps
}

func TestText(t *testing.T) {
	m, steps := corridor(t)

	want := "" +
		"+---+---+---+\n" +
		"| S   o   E |\n" +
		"+---+---+---+\n"
	assert.Equal(t, want, Text(m, steps.Final()))
	assert.Equal(t, m.String(), Text(m, nil))
}

func TestTextRendererStep(t *testing.T) {
	m, steps := corridor(t)
	r := TextRenderer{}

	assert.Equal(t, Text(m, steps.Final()), r.Render(m, steps.Final()))
	assert.Contains(t, r.RenderStep(m, steps[1]), "| S   @   E |")
	// The exit keeps its glyph when the search reaches it.
	assert.Contains(t, r.RenderStep(m, steps[2]), "| S   o   E |")
	assert.Equal(t, m.String(), r.RenderStep(m, nil))
}

func TestTextRendererHints(t *testing.T) {
	squares := []maze.Square{
		maze.NewSquare(0, 0, 3, maze.Top|maze.Left, maze.RoleEntrance),
		maze.NewSquare(0, 1, 3, maze.Top, maze.RoleNone),
		maze.NewSquare(0, 2, 3, maze.Top|maze.Right|maze.Bottom, maze.RoleNone),
		maze.NewSquare(1, 0, 3, maze.Left|maze.Bottom, maze.RoleNone),
		maze.NewSquare(1, 1, 3, maze.Bottom, maze.RoleNone),
		maze.NewSquare(1, 2, 3, maze.Top|maze.Right|maze.Bottom, maze.RoleExit),
	}
	m, err := maze.New(squares)
	require.NoError(t, err)
	path := solver.Path{squares[0], squares[1], squares[4], squares[5]}

	plain := TextRenderer{}.Render(m, path)
	assert.Contains(t, plain, "| S   o     |")
	assert.Contains(t, plain, "|     o   E |")

	hinted := TextRenderer{Hints: true}.Render(m, path)
	assert.Contains(t, hinted, "| S   o   x |")
	assert.Contains(t, hinted, "| ~   o   E |")

	step := TextRenderer{Hints: true}.RenderStep(m, path[:2])
	assert.Contains(t, step, "| S   @   x |")

	g, ok := hint(maze.NewSquare(0, 0, 1, maze.Left, maze.RoleNone))
	assert.True(t, ok)
	assert.Equal(t, junctionGlyph, g)
	_, ok = hint(maze.NewSquare(0, 0, 1, maze.Top|maze.Left|maze.Right, maze.RoleWall))
	assert.False(t, ok)
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("")
	require.NoError(t, err)
	assert.Equal(t, TopDown, d)

	d, err = ParseDirection(" Bottom-Up ")
	require.NoError(t, err)
	assert.Equal(t, BottomUp, d)

	_, err = ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrUnknownDirection)
}

func TestAnimatorPlay(t *testing.T) {
	m, steps := corridor(t)

	t.Run("top-down", func(t *testing.T) {
		var buf bytes.Buffer
		a, err := NewAnimator(&buf, TextRenderer{}, AnimatorOptions{})
		require.NoError(t, err)
		require.NoError(t, a.Play(context.Background(), m, steps))

		out := buf.String()
		assert.Equal(t, 3, strings.Count(out, "step "))
		assert.Less(t, strings.Index(out, "step 1/3"), strings.Index(out, "step 3/3"))
		assert.NotContains(t, out, clearScreen)
		// The last frame shows the complete route.
		assert.True(t, strings.HasSuffix(out, TextRenderer{}.RenderStep(m, steps.Final())))
		assert.Contains(t, out, "| S   @   E |")
	})

	t.Run("bottom-up starts from the full route", func(t *testing.T) {
		var buf bytes.Buffer
		a, err := NewAnimator(&buf, TextRenderer{}, AnimatorOptions{Direction: BottomUp, Clear: true})
		require.NoError(t, err)
		require.NoError(t, a.Play(context.Background(), m, steps))

		out := buf.String()
		assert.Equal(t, 3, strings.Count(out, clearScreen))
		assert.True(t, strings.HasSuffix(out, TextRenderer{}.RenderStep(m, steps[0])))
	})

	t.Run("cancelled while waiting", func(t *testing.T) {
		var buf bytes.Buffer
		a, err := NewAnimator(&buf, TextRenderer{}, AnimatorOptions{Delay: time.Hour})
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		err = a.Play(ctx, m, steps)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, 1, strings.Count(buf.String(), "step "))
	})

	t.Run("bad options", func(t *testing.T) {
		_, err := NewAnimator(nil, TextRenderer{}, AnimatorOptions{})
		assert.ErrorIs(t, err, ErrNilWriter)
		_, err = NewAnimator(&bytes.Buffer{}, nil, AnimatorOptions{})
		assert.ErrorIs(t, err, ErrNilRenderer)
		_, err = NewAnimator(&bytes.Buffer{}, TextRenderer{}, AnimatorOptions{Direction: "sideways"})
		assert.ErrorIs(t, err, ErrUnknownDirection)
	})
}
