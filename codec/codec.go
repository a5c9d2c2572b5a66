/*
Package codec reads and writes the binary maze file format.

A file is a 9-byte header (format version, then width and height as
little-endian uint32) followed by width*height bytes, one per square in
row-major order. Each square byte stores the role ordinal in its high nibble
and the border bits in its low nibble.

Loading either fails as a whole or returns a maze holding exactly one entrance
and one exit. Whether a missing entrance or exit is repaired or rejected is
controlled by a Policy.
*/
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beka-birhanu/maze-solver/maze"
)

var (
	ErrMalformedFile      = errors.New("malformed maze file")
	ErrUnsupportedVersion = errors.New("unsupported maze file version")
	ErrMissingRole        = maze.ErrMissingRole
	ErrUnknownPolicy      = errors.New("unknown role policy")
)

// Policy decides what happens when a loaded maze lacks an entrance or exit.
type Policy string

const (
	// PolicyNormalize assigns the entrance to the first square and the exit to
	// the last square when they are missing.
	PolicyNormalize Policy = "normalize"
	// PolicyStrict rejects such files with ErrMissingRole.
	PolicyStrict Policy = "strict"
)

// ParsePolicy maps a configuration string to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyNormalize, PolicyStrict:
		return p, nil
	case "":
		return PolicyNormalize, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

type options struct {
	policy Policy
}

// Option configures decoding.
type Option func(*options)

// WithPolicy selects the role policy applied after decoding.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// Serialize turns squares into a header and a body.
func Serialize(width, height uint32, squares []maze.Square) (FileHeader, FileBody) {
	values := make([]byte, len(squares))
	for i, sq := range squares {
		values[i] = Pack(sq)
	}
	return FileHeader{FormatVersion: FormatVersion, Width: width, Height: height}, FileBody{SquareValues: values}
}

// Deserialize rebuilds squares from a header and a body. Row and column come
// from each byte's position.
func Deserialize(header FileHeader, body FileBody) ([]maze.Square, error) {
	if header.FormatVersion != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, header.FormatVersion)
	}
	if header.Squares() == 0 {
		return nil, fmt.Errorf("%w: zero squares (%dx%d)", ErrMalformedFile, header.Width, header.Height)
	}
	if uint64(len(body.SquareValues)) != header.Squares() {
		return nil, fmt.Errorf("%w: body has %d bytes, want %d", ErrMalformedFile, len(body.SquareValues), header.Squares())
	}

	width := int(header.Width)
	squares := make([]maze.Square, len(body.SquareValues))
	for i, value := range body.SquareValues {
		border, role := Unpack(value)
		if !role.Valid() {
			return nil, fmt.Errorf("%w: square %d has role ordinal %d", ErrMalformedFile, i, uint8(role))
		}
		squares[i] = maze.NewSquare(i/width, i%width, width, border, role)
	}
	return squares, nil
}

// Marshal encodes m in the canonical file layout.
func Marshal(m *maze.Maze) ([]byte, error) {
	var buf bytes.Buffer
	if err := Dump(m, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a complete maze file.
func Unmarshal(data []byte, opts ...Option) (*maze.Maze, error) {
	o := options{policy: PolicyNormalize}
	for _, opt := range opts {
		opt(&o)
	}

	header, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}

	squares, err := Deserialize(header, FileBody{SquareValues: data[HeaderSize:]})
	if err != nil {
		return nil, err
	}

	m, err := maze.New(squares)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}

	return applyPolicy(m, o.policy)
}

// Dump writes m to w.
func Dump(m *maze.Maze, w io.Writer) error {
	header, body := Serialize(uint32(m.Width()), uint32(m.Height()), m.Squares())
	if err := header.Write(w); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := body.Write(w); err != nil {
		return fmt.Errorf("writing body: %w", err)
	}
	return nil
}

// Load reads a whole maze file from r.
func Load(r io.Reader, opts ...Option) (*maze.Maze, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading maze: %w", err)
	}
	return Unmarshal(data, opts...)
}

// DumpFile writes m to path, replacing any existing file.
func DumpFile(m *maze.Maze, path string) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadFile reads the maze stored at path.
func LoadFile(path string, opts ...Option) (*maze.Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, opts...)
}

func applyPolicy(m *maze.Maze, policy Policy) (*maze.Maze, error) {
	switch policy {
	case PolicyStrict:
	case PolicyNormalize:
		fixed, err := normalizeRoles(m)
		if err != nil {
			return nil, err
		}
		m = fixed
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// normalizeRoles gives a missing entrance to the first square and a missing
// exit to the last one. A lone role pushed off an end by the other moves to
// the opposite end, so both ends end up assigned together.
func normalizeRoles(m *maze.Maze) (*maze.Maze, error) {
	entrances := m.CountRole(maze.RoleEntrance)
	exits := m.CountRole(maze.RoleExit)
	if entrances > 0 && exits > 0 {
		return m, nil
	}

	first, _ := m.Square(0)
	last, _ := m.Square(m.Len() - 1)
	if first.Index == last.Index {
		return m, nil
	}

	if entrances == 0 {
		if first.Role == maze.RoleExit {
			exits--
		}
		first = first.WithRole(maze.RoleEntrance)
		entrances++
	}
	if exits == 0 {
		if last.Role == maze.RoleEntrance {
			entrances--
		}
		last = last.WithRole(maze.RoleExit)
	}
	if entrances == 0 {
		first = first.WithRole(maze.RoleEntrance)
	}

	return m.Replace(first, last)
}
