/*
Package maze provides the grid model shared by the codec, the generators and
the solvers.

A Maze is an immutable, row-major sequence of Square values. Every square
carries its wall bits (Border) and a semantic tag (Role). Width and height are
derived from the squares themselves, so a maze must be dense and rectangular.

Squares are never modified in place: Replace builds a new Maze around a copy
of the square slice, which lets algorithms derive variants (for instance with
dead ends reclassified as walls) without touching the original.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyMaze       = errors.New("maze has no squares")
	ErrNotRectangular  = errors.New("squares do not form a dense row-major rectangle")
	ErrInvalidRole     = errors.New("square has an unknown role")
	ErrMissingRole     = errors.New("maze must have exactly one entrance and one exit")
	ErrSquareNotInMaze = errors.New("square does not belong to the maze")
)

// Maze is a rectangular grid of squares.
type Maze struct {
	squares []Square
	width   int
	height  int
}

// New builds a maze from squares laid out row-major. The slice is copied.
// Entrance and exit are not required here; use Validate for that.
func New(squares []Square) (*Maze, error) {
	if len(squares) == 0 {
		return nil, ErrEmptyMaze
	}

	width, height := 0, 0
	for _, sq := range squares {
		if sq.Row < 0 || sq.Column < 0 {
			return nil, fmt.Errorf("%w: negative coordinates at %s", ErrNotRectangular, sq)
		}
		width = max(width, sq.Column+1)
		height = max(height, sq.Row+1)
	}

	if width*height != len(squares) {
		return nil, fmt.Errorf("%w: %d squares for a %dx%d grid", ErrNotRectangular, len(squares), width, height)
	}

	owned := make([]Square, len(squares))
	for i, sq := range squares {
		if sq.Index != i || sq.Row != i/width || sq.Column != i%width {
			return nil, fmt.Errorf("%w: square %s has index %d at position %d", ErrNotRectangular, sq, sq.Index, i)
		}
		if !sq.Role.Valid() {
			return nil, fmt.Errorf("%w: %s at %s", ErrInvalidRole, sq.Role, sq)
		}
		owned[i] = sq
	}

	return &Maze{
		squares: owned,
		width:   width,
		height:  height,
	}, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.height
}

// Len returns the number of squares.
func (m *Maze) Len() int {
	return len(m.squares)
}

// Squares returns a copy of the squares in row-major order.
func (m *Maze) Squares() []Square {
	out := make([]Square, len(m.squares))
	copy(out, m.squares)
	return out
}

// Square returns the square stored at index.
func (m *Maze) Square(index int) (Square, bool) {
	if index < 0 || index >= len(m.squares) {
		return Square{}, false
	}
	return m.squares[index], true
}

// At returns the square at (row, column).
func (m *Maze) At(row, column int) (Square, bool) {
	if !m.InBound(row, column) {
		return Square{}, false
	}
	return m.squares[row*m.width+column], true
}

// InBound reports whether (row, column) lies inside the grid.
func (m *Maze) InBound(row, column int) bool {
	return row >= 0 && row < m.height && column >= 0 && column < m.width
}

// Contains reports whether sq is exactly the square stored at its position.
func (m *Maze) Contains(sq Square) bool {
	stored, ok := m.At(sq.Row, sq.Column)
	return ok && stored == sq
}

// Entrance returns the first square holding RoleEntrance.
func (m *Maze) Entrance() (Square, error) {
	return m.byRole(RoleEntrance)
}

// Exit returns the first square holding RoleExit.
func (m *Maze) Exit() (Square, error) {
	return m.byRole(RoleExit)
}

func (m *Maze) byRole(role Role) (Square, error) {
	for _, sq := range m.squares {
		if sq.Role == role {
			return sq, nil
		}
	}
	return Square{}, fmt.Errorf("%w: no square with role %s", ErrMissingRole, role)
}

// Validate checks that the maze holds exactly one entrance and one exit.
func (m *Maze) Validate() error {
	entrances, exits := m.CountRole(RoleEntrance), m.CountRole(RoleExit)
	if entrances != 1 || exits != 1 {
		return fmt.Errorf("%w: found %d entrances and %d exits", ErrMissingRole, entrances, exits)
	}
	return nil
}

// CountRole returns how many squares hold role.
func (m *Maze) CountRole(role Role) int {
	n := 0
	for _, sq := range m.squares {
		if sq.Role == role {
			n++
		}
	}
	return n
}

// Replace returns a new maze where each given square substitutes the one at
// its index. The receiver is left untouched.
func (m *Maze) Replace(squares ...Square) (*Maze, error) {
	next := m.Squares()
	for _, sq := range squares {
		stored, ok := m.Square(sq.Index)
		if !ok || !stored.SamePosition(sq) {
			return nil, fmt.Errorf("%w: %s", ErrSquareNotInMaze, sq)
		}
		next[sq.Index] = sq
	}
	return New(next)
}

// Neighbors returns the squares reachable from sq in one move, in the order
// Top, Right, Bottom, Left. A move is legal only when sq has no wall on that
// side and the neighbour has no wall on the facing side.
func (m *Maze) Neighbors(sq Square) []Square {
	result := make([]Square, 0, 4)
	for _, dir := range Directions {
		if next, ok := m.step(sq, dir); ok {
			result = append(result, next)
		}
	}
	return result
}

// Step returns the square reached by moving from sq towards dir, if legal.
func (m *Maze) Step(sq Square, dir Border) (Square, bool) {
	return m.step(sq, dir)
}

func (m *Maze) step(sq Square, dir Border) (Square, bool) {
	dr, dc := dir.delta()
	if dr == 0 && dc == 0 {
		return Square{}, false
	}

	next, ok := m.At(sq.Row+dr, sq.Column+dc)
	if !ok {
		return Square{}, false
	}
	if sq.Border.Has(dir) || next.Border.Has(dir.Opposite()) {
		return Square{}, false
	}
	return next, true
}

// CanMove reports whether from and to are orthogonally adjacent with the
// shared wall open on both sides.
func (m *Maze) CanMove(from, to Square) bool {
	for _, dir := range Directions {
		if next, ok := m.step(from, dir); ok && next.SamePosition(to) {
			return true
		}
	}
	return false
}

// Draw renders the maze as ASCII art. Labels, keyed by square index, replace
// the role glyph of a square and should be three characters wide.
func (m *Maze) Draw(labels map[int]string) string {
	var sb strings.Builder

	// Top boundary
	sb.WriteString("+")
	for col := 0; col < m.width; col++ {
		if m.squares[col].Border.Has(Top) {
			sb.WriteString("---+")
		} else {
			sb.WriteString("   +")
		}
	}
	sb.WriteString("\n")

	for row := 0; row < m.height; row++ {
		// Cell rows
		first := m.squares[row*m.width]
		if first.Border.Has(Left) {
			sb.WriteString("|")
		} else {
			sb.WriteString(" ")
		}
		for col := 0; col < m.width; col++ {
			sq := m.squares[row*m.width+col]
			if label, ok := labels[sq.Index]; ok {
				sb.WriteString(label)
			} else {
				sb.WriteString(glyph(sq.Role))
			}

			walled := sq.Border.Has(Right)
			if col+1 < m.width {
				walled = walled || m.squares[sq.Index+1].Border.Has(Left)
			}
			if walled {
				sb.WriteString("|")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")

		// Wall rows
		sb.WriteString("+")
		for col := 0; col < m.width; col++ {
			sq := m.squares[row*m.width+col]
			walled := sq.Border.Has(Bottom)
			if row+1 < m.height {
				walled = walled || m.squares[sq.Index+m.width].Border.Has(Top)
			}
			if walled {
				sb.WriteString("---+")
			} else {
				sb.WriteString("   +")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	return m.Draw(nil)
}

func glyph(role Role) string {
	switch role {
	case RoleEntrance:
		return " S "
	case RoleExit:
		return " E "
	case RoleWall:
		return "###"
	case RoleEnemy:
		return " ! "
	case RoleReward:
		return " * "
	case RoleExterior:
		return " . "
	default:
		return "   "
	}
}
