package maze

import "fmt"

// Square is a single cell of the grid. It is a plain value: two squares with
// the same fields are interchangeable, and squares can be used as map keys.
type Square struct {
	Index  int    // Index is Row*width+Column, the position in the maze.
	Row    int    // Row index of the square
	Column int    // Column index of the square
	Border Border // Border holds the walled edges.
	Role   Role   // Role is the semantic tag of the square.
}

// NewSquare builds a square at (row, column) of a maze that is width wide.
func NewSquare(row, column, width int, border Border, role Role) Square {
	return Square{
		Index:  row*width + column,
		Row:    row,
		Column: column,
		Border: border,
		Role:   role,
	}
}

// WithRole returns a copy of s carrying role.
func (s Square) WithRole(role Role) Square {
	s.Role = role
	return s
}

// WithBorder returns a copy of s carrying border.
func (s Square) WithBorder(border Border) Square {
	s.Border = border
	return s
}

// Less orders squares by row, then column.
func (s Square) Less(other Square) bool {
	if s.Row != other.Row {
		return s.Row < other.Row
	}
	return s.Column < other.Column
}

// SamePosition reports whether both squares sit at the same coordinates.
func (s Square) SamePosition(other Square) bool {
	return s.Row == other.Row && s.Column == other.Column
}

func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Column)
}
