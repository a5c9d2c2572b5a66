package maze

import (
	"math/bits"
	"strings"
)

// Border is a bit-set of the walled edges of a square.
type Border uint8

// Border directions. Each one occupies a single bit so they can be combined.
const (
	Top Border = 1 << iota
	Right
	Bottom
	Left

	None Border = 0

	allBorders = Top | Right | Bottom | Left
)

// Directions lists the single-bit borders in neighbour enumeration order.
var Directions = [4]Border{Top, Right, Bottom, Left}

// Has reports whether every bit of d is set in b.
func (b Border) Has(d Border) bool {
	return d != None && b&d == d
}

// Without returns b with the bits of d cleared.
func (b Border) Without(d Border) Border {
	return b &^ d
}

// Count returns how many edges are walled.
func (b Border) Count() int {
	return bits.OnesCount8(uint8(b & allBorders))
}

// IsCorner reports whether exactly two adjacent edges are walled.
func (b Border) IsCorner() bool {
	switch b & allBorders {
	case Top | Left, Top | Right, Bottom | Left, Bottom | Right:
		return true
	default:
		return false
	}
}

// IsDeadEnd reports whether exactly three edges are walled.
func (b Border) IsDeadEnd() bool {
	return b.Count() == 3
}

// IsIntersection reports whether at least three edges are open.
func (b Border) IsIntersection() bool {
	return b.Count() < 2
}

// Opposite returns the facing direction of a single-bit border.
// Composite values map to None.
func (b Border) Opposite() Border {
	switch b {
	case Top:
		return Bottom
	case Right:
		return Left
	case Bottom:
		return Top
	case Left:
		return Right
	default:
		return None
	}
}

// delta returns the (row, column) offset of a single-bit border.
func (b Border) delta() (int, int) {
	switch b {
	case Top:
		return -1, 0
	case Right:
		return 0, 1
	case Bottom:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 0
	}
}

// String renders the set bits, e.g. "TOP|LEFT", or "NONE".
func (b Border) String() string {
	if b&allBorders == None {
		return "NONE"
	}

	names := make([]string, 0, 4)
	for _, d := range Directions {
		if b.Has(d) {
			switch d {
			case Top:
				names = append(names, "TOP")
			case Right:
				names = append(names, "RIGHT")
			case Bottom:
				names = append(names, "BOTTOM")
			case Left:
				names = append(names, "LEFT")
			}
		}
	}
	return strings.Join(names, "|")
}
