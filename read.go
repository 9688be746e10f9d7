// Bounded reads of compiled terminfo files.
//
// A compiled entry is small: anything beyond MaxSize bytes is not part of
// a valid legacy entry and is dropped rather than reported. Two read
// disciplines exist. Descriptor reads stop at the first zero-length read,
// as read(2) does at end of file. Stream reads tolerate transient empty
// reads and stop only when the source reports io.EOF.
package terminfo

import (
	"errors"
	"io"
)

// MaxSize is the largest number of bytes read from a single entry.
const MaxSize = 4096

// maxEmptyReads bounds consecutive (0, nil) reads in stream mode, the
// same limit bufio uses before giving up with io.ErrNoProgress.
const maxEmptyReads = 100

// ReadBounded reads r into a MaxSize buffer with descriptor semantics:
// reading stops when the buffer is full, at io.EOF, or on a zero-length
// read. A source longer than MaxSize is truncated without error.
func ReadBounded(r io.Reader) ([]byte, error) {
	return readBounded(r, false)
}

// ReadStream is ReadBounded with stream semantics: a zero-length read is
// not end of data, only io.EOF is.
func ReadStream(r io.Reader) ([]byte, error) {
	return readBounded(r, true)
}

func readBounded(r io.Reader, stream bool) ([]byte, error) {
	buf := make([]byte, MaxSize)
	n, empty := 0, 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &Error{Op: "read", Kind: KindHard, Err: errors.Join(ErrRead, err)}
		}
		if m > 0 {
			empty = 0
			continue
		}
		if !stream {
			break
		}
		if empty++; empty >= maxEmptyReads {
			return nil, &Error{Op: "read", Kind: KindHard, Err: errors.Join(ErrRead, io.ErrNoProgress)}
		}
	}
	return buf[:n], nil
}

// load opens path read-only, reads it with descriptor semantics and
// closes it on every path out. Open failures are returned unwrapped so
// the caller can classify them.
func (r *Resolver) load(path string) ([]byte, error) {
	f, err := r.open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := ReadBounded(f)
	if err != nil {
		var te *Error
		if errors.As(err, &te) {
			te.Path = path
		}
		return nil, err
	}
	return data, nil
}
