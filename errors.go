// Package terminfo locates and loads compiled terminfo entries.
//
// A name such as "xterm-256color" is resolved by probing, in order,
// $TERMINFO, $HOME/.terminfo, every directory in $TERMINFO_DIRS and
// finally a fallback directory list fixed at build time. Each directory
// is searched with the conventional first-letter layout (x/xterm) and, when
// that entry is missing, the hexadecimal layout some systems use
// (78/xterm). The first entry found is read through a bounded buffer and
// returned as a Record.
//
// Capability tables are not exposed. Decode validates an entry and
// returns its header and names.
package terminfo

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic handling. Callers use errors.Is to
// tell misuse (ErrInvalidName) from an absent entry (ErrNotFound) and
// from failures that stopped the search (ErrOutOfMemory, ErrRead).
var (
	ErrInvalidName = errors.New("invalid terminfo name")
	ErrNotFound    = errors.New("terminfo entry not found")
	ErrOutOfMemory = errors.New("path size overflows")
	ErrRead        = errors.New("read failed")
	ErrBadMagic    = errors.New("bad terminfo magic")
	ErrTruncated   = errors.New("truncated terminfo entry")
	ErrMalformed   = errors.New("malformed terminfo entry")
	ErrSnapshot    = errors.New("invalid snapshot")
)

// Kind classifies a resolution failure.
type Kind int

const (
	KindHard         Kind = iota // Aborts the whole search
	KindInvalidInput             // Malformed name, no filesystem access made
	KindNotFound                 // Every candidate exhausted
	KindSoft                     // One candidate failed, search continues
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindNotFound:
		return "not found"
	case KindSoft:
		return "soft"
	default:
		return "hard"
	}
}

// Error describes a failed lookup step.
type Error struct {
	Op   string // "resolve", "load", "read", ...
	Name string // Terminfo name, if known
	Path string // Candidate path, if any
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Path != "":
		return fmt.Sprintf("terminfo: %s %s: %v", e.Op, e.Path, e.Err)
	case e.Name != "":
		return fmt.Sprintf("terminfo: %s %q: %v", e.Op, e.Name, e.Err)
	default:
		return fmt.Sprintf("terminfo: %s: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the kind carried by err. Errors that are not *Error are
// hard unless they wrap one of the package sentinels.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	switch {
	case errors.Is(err, ErrInvalidName):
		return KindInvalidInput
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	}
	return KindHard
}

func notFound(name string) error {
	return &Error{Op: "resolve", Name: name, Kind: KindNotFound, Err: ErrNotFound}
}
