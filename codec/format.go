package codec

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/beka-birhanu/maze-solver/maze"
)

// FormatVersion is the only file version this package reads and writes.
const FormatVersion uint8 = 1

// HeaderSize is the encoded size of FileHeader: version, width and height.
const HeaderSize = 1 + 4 + 4

// FileHeader is the fixed-size prefix of a maze file.
type FileHeader struct {
	FormatVersion uint8
	Width         uint32
	Height        uint32
}

// FileBody holds one packed byte per square, row-major.
type FileBody struct {
	SquareValues []byte
}

// Pack folds a square into a single byte: role in the high nibble, border
// bits in the low nibble.
func Pack(sq maze.Square) byte {
	return byte(sq.Role)<<4 | byte(sq.Border)&0x0f
}

// Unpack splits a packed byte into its border bits and role.
func Unpack(value byte) (maze.Border, maze.Role) {
	return maze.Border(value & 0x0f), maze.Role(value >> 4)
}

// Write encodes the header in its little-endian wire layout.
func (h FileHeader) Write(w io.Writer) error {
	var buf [HeaderSize]byte
	buf[0] = h.FormatVersion
	binary.LittleEndian.PutUint32(buf[1:5], h.Width)
	binary.LittleEndian.PutUint32(buf[5:9], h.Height)
	_, err := w.Write(buf[:])
	return err
}

// ReadHeader decodes a header from the first HeaderSize bytes of data.
func ReadHeader(data []byte) (FileHeader, error) {
	if len(data) < HeaderSize {
		return FileHeader{}, fmt.Errorf("%w: header needs %d bytes, got %d", ErrMalformedFile, HeaderSize, len(data))
	}
	return FileHeader{
		FormatVersion: data[0],
		Width:         binary.LittleEndian.Uint32(data[1:5]),
		Height:        binary.LittleEndian.Uint32(data[5:9]),
	}, nil
}

// Squares returns width*height, the number of body bytes the header promises.
func (h FileHeader) Squares() uint64 {
	return uint64(h.Width) * uint64(h.Height)
}

// Write emits the body bytes as they are.
func (b FileBody) Write(w io.Writer) error {
	_, err := w.Write(b.SquareValues)
	return err
}
