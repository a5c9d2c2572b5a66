package codec

import (
	"bytes"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/beka-birhanu/maze-solver/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTwoByTwo(entrance, exit byte) []byte {
	return []byte{
		0x01,
		0x02, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00,
		entrance, 0x00, 0x00, exit,
	}
}

func TestUnmarshalHeaderExample(t *testing.T) {
	data := openTwoByTwo(byte(maze.RoleEntrance)<<4, byte(maze.RoleExit)<<4)

	m, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Width())
	assert.Equal(t, 2, m.Height())
	assert.Equal(t, 4, m.Len())

	sq, ok := m.At(1, 0)
	require.True(t, ok)
	assert.Equal(t, 2, sq.Index)
	assert.Equal(t, maze.None, sq.Border)
}

func TestPackLayout(t *testing.T) {
	sq := maze.NewSquare(0, 0, 1, maze.Top|maze.Left, maze.RoleWall)
	assert.Equal(t, byte(0x49), Pack(sq))

	border, role := Unpack(0x49)
	assert.Equal(t, maze.Top|maze.Left, border)
	assert.Equal(t, maze.RoleWall, role)
}

func TestRoundTrip(t *testing.T) {
	for _, gen := range maze.Generators() {
		original, err := maze.Generate(13, 6, gen, rand.New(rand.NewSource(3)))
		require.NoError(t, err)

		reward, _ := original.At(2, 2)
		original, err = original.Replace(reward.WithRole(maze.RoleReward))
		require.NoError(t, err)

		data, err := Marshal(original)
		require.NoError(t, err)
		assert.Len(t, data, HeaderSize+13*6)

		decoded, err := Unmarshal(data, WithPolicy(PolicyStrict))
		require.NoError(t, err)
		assert.Equal(t, original.Width(), decoded.Width())
		assert.Equal(t, original.Height(), decoded.Height())
		assert.Equal(t, original.Squares(), decoded.Squares())
	}
}

func TestDumpAndLoadFile(t *testing.T) {
	original, err := maze.Generate(5, 4, maze.GenKruskal, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "example.maze")
	require.NoError(t, DumpFile(original, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original.Squares(), loaded.Squares())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.maze"))
	assert.Error(t, err)
}

func TestUnmarshalErrors(t *testing.T) {
	valid := openTwoByTwo(byte(maze.RoleEntrance)<<4, byte(maze.RoleExit)<<4)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{name: "empty", data: nil, want: ErrMalformedFile},
		{name: "short header", data: valid[:5], want: ErrMalformedFile},
		{name: "short body", data: valid[:len(valid)-1], want: ErrMalformedFile},
		{name: "no body", data: valid[:HeaderSize], want: ErrMalformedFile},
		{name: "trailing bytes", data: append(append([]byte{}, valid...), 0x00), want: ErrMalformedFile},
		{name: "zero width", data: []byte{1, 0, 0, 0, 0, 1, 0, 0, 0}, want: ErrMalformedFile},
		{name: "version", data: append([]byte{2}, valid[1:]...), want: ErrUnsupportedVersion},
		{name: "unknown role", data: openTwoByTwo(0x70, byte(maze.RoleExit)<<4), want: ErrMalformedFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Unmarshal(tt.data)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, m)
		})
	}
}

func TestRolePolicies(t *testing.T) {
	bare := openTwoByTwo(0x00, 0x00)

	_, err := Unmarshal(bare, WithPolicy(PolicyStrict))
	assert.ErrorIs(t, err, ErrMissingRole)

	m, err := Unmarshal(bare, WithPolicy(PolicyNormalize))
	require.NoError(t, err)
	entrance, err := m.Entrance()
	require.NoError(t, err)
	exit, err := m.Exit()
	require.NoError(t, err)
	assert.Equal(t, 0, entrance.Index)
	assert.Equal(t, 3, exit.Index)

	// An existing exit elsewhere is kept.
	custom := openTwoByTwo(0x00, 0x00)
	custom[HeaderSize+1] = byte(maze.RoleExit) << 4
	m, err = Unmarshal(custom)
	require.NoError(t, err)
	exit, _ = m.Exit()
	assert.Equal(t, 1, exit.Index)

	// A lone exit on the first square moves to the last one.
	exitFirst := openTwoByTwo(byte(maze.RoleExit)<<4, 0x00)
	m, err = Unmarshal(exitFirst, WithPolicy(PolicyNormalize))
	require.NoError(t, err)
	entrance, _ = m.Entrance()
	exit, _ = m.Exit()
	assert.Equal(t, 0, entrance.Index)
	assert.Equal(t, 3, exit.Index)

	// A lone entrance on the last square moves to the first one.
	entranceLast := openTwoByTwo(0x00, byte(maze.RoleEntrance)<<4)
	m, err = Unmarshal(entranceLast, WithPolicy(PolicyNormalize))
	require.NoError(t, err)
	entrance, _ = m.Entrance()
	exit, _ = m.Exit()
	assert.Equal(t, 0, entrance.Index)
	assert.Equal(t, 3, exit.Index)

	// Both ends swapped are left alone: each role is present once.
	swapped := openTwoByTwo(byte(maze.RoleExit)<<4, byte(maze.RoleEntrance)<<4)
	m, err = Unmarshal(swapped, WithPolicy(PolicyNormalize))
	require.NoError(t, err)
	entrance, _ = m.Entrance()
	assert.Equal(t, 3, entrance.Index)

	// Strict mode does not repair either file.
	_, err = Unmarshal(exitFirst, WithPolicy(PolicyStrict))
	assert.ErrorIs(t, err, ErrMissingRole)

	// Two entrances are rejected whatever the policy.
	double := openTwoByTwo(byte(maze.RoleEntrance)<<4, byte(maze.RoleExit)<<4)
	double[HeaderSize+1] = byte(maze.RoleEntrance) << 4
	_, err = Unmarshal(double)
	assert.ErrorIs(t, err, ErrMissingRole)

	_, err = Unmarshal(bare, WithPolicy(Policy("lenient")))
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy(" Strict ")
	require.NoError(t, err)
	assert.Equal(t, PolicyStrict, p)

	p, err = ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyNormalize, p)

	_, err = ParsePolicy("loose")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestHeaderWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FileHeader{FormatVersion: 1, Width: 2, Height: 258}.Write(&buf))
	assert.Equal(t, []byte{1, 2, 0, 0, 0, 2, 1, 0, 0}, buf.Bytes())
}
