// Content fingerprints for loaded entries.
//
// Two entries found under different names or directories are often the
// same file (xterm-color and xterm-16color on many systems). A fingerprint
// is a 16 hex character digest of the raw data that makes such duplicates
// easy to spot. Three algorithms are supported.
package terminfo

import (
	"fmt"
	"hash/fnv"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Fingerprint algorithm constants.
const (
	AlgXXHash3 = 1 // Default, fastest
	AlgFNV1a   = 2 // No external dependencies
	AlgBlake2b = 3 // Best distribution
)

// Fingerprint returns a 16 hex character digest of the record's data,
// or "" for an unknown algorithm.
func (rec *Record) Fingerprint(alg int) string {
	return fingerprint(rec.Data, alg)
}

func fingerprint(data []byte, alg int) string {
	switch alg {
	case AlgXXHash3:
		return fmt.Sprintf("%016x", xxh3.Hash(data))
	case AlgFNV1a:
		h := fnv.New64a()
		h.Write(data)
		return fmt.Sprintf("%016x", h.Sum64())
	case AlgBlake2b:
		h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
		h.Write(data)
		return fmt.Sprintf("%016x", h.Sum(nil))
	default:
		return ""
	}
}
