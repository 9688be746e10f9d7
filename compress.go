// Printable snapshots of loaded entries.
//
// A snapshot is the entry's raw data, Zstd-compressed and Ascii85-encoded,
// so a terminal description can be carried inside a config file or an
// environment variable and loaded later without a terminfo tree. The
// decoded payload is held to MaxSize like any other source.
package terminfo

import (
	"encoding/ascii85"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Snapshots are single-segment frames with a window no larger than an
// entry, so the decoder can refuse anything over MaxSize from the frame
// header before it allocates.
var (
	zstdEncoder, _ = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedBestCompression),
		zstd.WithWindowSize(MaxSize),
		zstd.WithSingleSegment(true),
	)
	zstdDecoder, _ = zstd.NewReader(nil,
		zstd.WithDecoderMaxMemory(MaxSize),
		zstd.WithDecoderConcurrency(1),
	)
)

// maxEncoded bounds the Ascii85 text read for one snapshot: an
// incompressible entry plus frame overhead, expanded by 5/4.
const maxEncoded = (MaxSize + 64) * 5 / 4

// Snapshot returns the printable snapshot of the record's data.
func (rec *Record) Snapshot() string {
	return compress(rec.Data)
}

// FromSnapshot loads an entry from a string produced by Snapshot.
func FromSnapshot(s string) (*Record, error) {
	data, err := decompress(s)
	if err != nil {
		return nil, &Error{Op: "snapshot", Kind: KindHard, Err: err}
	}
	return &Record{Data: data}, nil
}

func compress(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	frame := zstdEncoder.EncodeAll(data, make([]byte, 0, len(data)/2+32))

	var b strings.Builder
	b.Grow(ascii85.MaxEncodedLen(len(frame)))
	enc := ascii85.NewEncoder(&b)
	// strings.Builder never fails; Close flushes the last partial group.
	_, _ = enc.Write(frame)
	_ = enc.Close()
	return b.String()
}

func decompress(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, nil
	}
	if len(encoded) > maxEncoded {
		return nil, fmt.Errorf("%w: %d characters exceeds %d", ErrSnapshot, len(encoded), maxEncoded)
	}

	frame, err := io.ReadAll(ascii85.NewDecoder(strings.NewReader(encoded)))
	if err != nil {
		return nil, fmt.Errorf("%w: ascii85: %w", ErrSnapshot, err)
	}

	data, err := zstdDecoder.DecodeAll(frame, make([]byte, 0, MaxSize))
	switch {
	case errors.Is(err, zstd.ErrDecoderSizeExceeded), errors.Is(err, zstd.ErrWindowSizeExceeded):
		return nil, fmt.Errorf("%w: payload exceeds %d bytes", ErrSnapshot, MaxSize)
	case err != nil:
		return nil, fmt.Errorf("%w: zstd: %w", ErrSnapshot, err)
	case len(data) == 0:
		return nil, fmt.Errorf("%w: empty payload", ErrSnapshot)
	}
	return data, nil
}
