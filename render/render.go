// Package render draws mazes and search traces as text.
package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/beka-birhanu/maze-solver/maze"
	"github.com/beka-birhanu/maze-solver/service/i"
	"github.com/beka-birhanu/maze-solver/solver"
)

// Direction is the playback order of an animation.
type Direction string

const (
	TopDown  Direction = "top-down"
	BottomUp Direction = "bottom-up"
)

const (
	pathGlyph     = " o "
	headGlyph     = " @ "
	deadEndGlyph  = " x "
	cornerGlyph   = " ~ "
	junctionGlyph = " + "
	clearScreen   = "\033[H\033[2J"
)

var (
	ErrUnknownDirection = errors.New("unknown animation direction")
	ErrNilWriter        = errors.New("animator needs a writer")
	ErrNilRenderer      = errors.New("animator needs a renderer")
)

// ParseDirection maps a configuration string to a Direction. Empty means
// top-down.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case TopDown, BottomUp:
		return d, nil
	case "":
		return TopDown, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}

// Text draws m with path overlaid. Entrance and exit keep their glyphs.
func Text(m *maze.Maze, path solver.Path) string {
	return m.Draw(overlay(path))
}

func overlay(path solver.Path) map[int]string {
	labels := make(map[int]string, len(path))
	for _, sq := range path {
		if sq.Role == maze.RoleEntrance || sq.Role == maze.RoleExit {
			continue
		}
		labels[sq.Index] = pathGlyph
	}
	return labels
}

// hint classifies a plain square by its walls: "x" for a dead end, "~" for
// a corner, "+" for a junction.
func hint(sq maze.Square) (string, bool) {
	switch {
	case sq.Role != maze.RoleNone:
		return "", false
	case sq.Border.IsDeadEnd():
		return deadEndGlyph, true
	case sq.Border.IsCorner():
		return cornerGlyph, true
	case sq.Border.IsIntersection():
		return junctionGlyph, true
	default:
		return "", false
	}
}

// TextRenderer draws ASCII frames. Steps mark the square the search is
// standing on with "@". With Hints set, squares off the path are labelled
// by the shape of their walls.
type TextRenderer struct {
	Hints bool
}

func (r TextRenderer) Render(m *maze.Maze, path solver.Path) string {
	return m.Draw(r.labels(m, path))
}

func (r TextRenderer) RenderStep(m *maze.Maze, prefix solver.Path) string {
	labels := r.labels(m, prefix)
	if head, ok := prefix.End(); ok && head.Role != maze.RoleEntrance && head.Role != maze.RoleExit {
		labels[head.Index] = headGlyph
	}
	return m.Draw(labels)
}

func (r TextRenderer) labels(m *maze.Maze, path solver.Path) map[int]string {
	labels := overlay(path)
	if !r.Hints {
		return labels
	}
	onPath := make(map[int]bool, len(path))
	for _, sq := range path {
		onPath[sq.Index] = true
	}
	for _, sq := range m.Squares() {
		if onPath[sq.Index] {
			continue
		}
		if g, ok := hint(sq); ok {
			labels[sq.Index] = g
		}
	}
	return labels
}

// AnimatorOptions tunes an Animator.
type AnimatorOptions struct {
	Delay     time.Duration // Pause after each frame
	Direction Direction     // Playback order
	Clear     bool          // Clear the terminal before each frame
}

// Animator replays the path-states of a search one frame at a time.
type Animator struct {
	w        io.Writer
	renderer i.Renderer
	opts     AnimatorOptions
}

// NewAnimator creates an Animator drawing frames with r and writing them to w.
func NewAnimator(w io.Writer, r i.Renderer, opts AnimatorOptions) (*Animator, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	if r == nil {
		return nil, ErrNilRenderer
	}
	if opts.Direction == "" {
		opts.Direction = TopDown
	}
	if opts.Direction != TopDown && opts.Direction != BottomUp {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDirection, opts.Direction)
	}
	if opts.Delay < 0 {
		opts.Delay = 0
	}
	return &Animator{w: w, renderer: r, opts: opts}, nil
}

// Play writes one frame per path-state. It stops early when ctx is done.
func (a *Animator) Play(ctx context.Context, m *maze.Maze, steps solver.Steps) error {
	frames := steps
	if a.opts.Direction == BottomUp {
		frames = steps.Reversed()
	}

	for idx, frame := range frames {
		if err := ctx.Err(); err != nil {
			return err
		}

		var sb strings.Builder
		if a.opts.Clear {
			sb.WriteString(clearScreen)
		}
		fmt.Fprintf(&sb, "step %d/%d\n", idx+1, len(frames))
		sb.WriteString(a.renderer.RenderStep(m, frame))
		if _, err := io.WriteString(a.w, sb.String()); err != nil {
			return err
		}

		if a.opts.Delay == 0 || idx == len(frames)-1 {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(a.opts.Delay):
		}
	}
	return nil
}
