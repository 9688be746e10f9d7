// Compiled entry header.
//
// A compiled entry starts with six little-endian 16 bit integers: the
// magic number, the size of the names section, the number of booleans,
// the number of numbers, the number of string offsets and the size of the
// string table. The names section follows immediately.
//
// The whole entry is validated by xo/terminfo's decoder. Its errors are
// folded into ErrBadMagic, ErrTruncated and ErrMalformed and stay
// reachable through errors.Is.
package terminfo

import (
	"encoding/binary"
	"errors"
	"fmt"

	xoterminfo "github.com/xo/terminfo"
)

// HeaderSize is the size of the fixed header in bytes.
const HeaderSize = 12

// Magic numbers.
const (
	MagicLegacy   = 0o432  // 16 bit numbers
	MagicExtended = 0o1036 // 32 bit numbers
)

// Header holds the fixed header fields and the names of an entry.
type Header struct {
	Magic     int16
	NamesSize int16
	BoolCount int16
	NumCount  int16
	StrCount  int16
	TableSize int16
	names     []string
}

// Decode validates a compiled entry and returns its header and names.
func Decode(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncated, len(data))
	}

	var f [6]int16
	for i := range f {
		f[i] = int16(binary.LittleEndian.Uint16(data[2*i:]))
	}
	hdr := &Header{
		Magic:     f[0],
		NamesSize: f[1],
		BoolCount: f[2],
		NumCount:  f[3],
		StrCount:  f[4],
		TableSize: f[5],
	}
	if hdr.Magic != MagicLegacy && hdr.Magic != MagicExtended {
		return nil, fmt.Errorf("%w: %#o", ErrBadMagic, hdr.Magic)
	}
	// xo/terminfo slices by these sizes without checking the sign.
	for _, n := range f[1:] {
		if n < 0 {
			return nil, fmt.Errorf("%w: negative section size", ErrTruncated)
		}
	}

	ti, err := xoterminfo.Decode(data)
	if err != nil {
		return nil, decodeError(err)
	}
	if len(ti.Names) > 1 || ti.Names[0] != "" {
		hdr.names = ti.Names
	}
	return hdr, nil
}

// decodeError maps an xo/terminfo error onto the package sentinels.
func decodeError(err error) error {
	switch {
	case errors.Is(err, xoterminfo.ErrInvalidMagic):
		return fmt.Errorf("%w: %w", ErrBadMagic, err)
	case errors.Is(err, xoterminfo.ErrUnexpectedFileEnd),
		errors.Is(err, xoterminfo.ErrInvalidFileSize):
		return fmt.Errorf("%w: %w", ErrTruncated, err)
	default:
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
}

// Extended reports whether numbers are stored as 32 bit integers.
func (h *Header) Extended() bool {
	return h.Magic == MagicExtended
}

// Names returns the '|' separated names, primary name first and the
// long description last.
func (h *Header) Names() []string {
	return h.names
}
