// Candidate path construction for a single directory.
//
// Terminfo trees come in two shapes. Most systems file "xterm" under a
// directory named after its first character (x/xterm); macOS uses the
// first byte in lowercase hex (78/xterm). The letter layout is tried
// first. The hex layout is only tried when the letter entry does not
// exist, so a permission error on x/xterm is never masked by a lookup
// elsewhere.
package terminfo

import (
	"errors"
	"io/fs"
)

// Layout identifies the subdirectory naming an entry was found under.
type Layout int

const (
	LayoutNone   Layout = iota // No entry found
	LayoutLetter               // <first character>/<name>
	LayoutHex                  // <two lowercase hex digits>/<name>
)

func (l Layout) String() string {
	switch l {
	case LayoutLetter:
		return "letter"
	case LayoutHex:
		return "hex"
	default:
		return "none"
	}
}

const hexDigits = "0123456789abcdef"

// appendSuffix appends the layout-specific "<dir>/<name>" tail.
func appendSuffix(buf []byte, layout Layout, name string) []byte {
	switch layout {
	case LayoutHex:
		buf = append(buf, hexDigits[name[0]>>4], hexDigits[name[0]&0x0f])
	default:
		buf = append(buf, name[0])
	}
	buf = append(buf, '/')
	return append(buf, name...)
}

// fromDir looks in dir for name under both layouts. mid, when not empty, is
// inserted between dir and the layout directory (".terminfo" for $HOME).
// The returned error is an *Error whose Kind is KindSoft when the
// classifier lets the search continue.
func (r *Resolver) fromDir(dir, mid, name string) (*Record, error) {
	midLen := 0
	if mid != "" {
		midLen = len(mid) + 1
	}
	size, err := pathSize(len(dir), midLen, len(name))
	if err != nil {
		r.logger.Warn("path size overflow", "dir_len", len(dir), "name", name)
		return nil, err
	}

	buf := make([]byte, 0, size)
	buf = append(buf, dir...)
	buf = append(buf, '/')
	if mid != "" {
		buf = append(buf, mid...)
		buf = append(buf, '/')
	}
	prefix := len(buf)

	var rec *Record
	for _, layout := range []Layout{LayoutLetter, LayoutHex} {
		buf = appendSuffix(buf[:prefix], layout, name)
		path := string(buf)

		rec, err = r.attempt(path, layout, name)
		if err == nil || !errors.Is(err, fs.ErrNotExist) {
			break
		}
	}
	return rec, err
}

// attempt loads a single candidate path. Every successful resolution
// passes through here, whichever source it came from.
func (r *Resolver) attempt(path string, layout Layout, name string) (*Record, error) {
	data, err := r.load(path)
	if err == nil && r.check != nil {
		if cerr := r.check(data); cerr != nil {
			err = &Error{Op: "check", Name: name, Path: path, Kind: KindHard, Err: cerr}
		}
	}
	if r.onAttempt != nil {
		r.onAttempt(Attempt{Path: path, Layout: layout, Err: err})
	}
	if err != nil {
		r.logger.Debug("candidate rejected", "path", path, "layout", layout, "err", err)
		return nil, r.classify("load", name, path, err)
	}
	r.logger.Debug("resolved", "name", name, "path", path, "layout", layout)
	return &Record{Name: name, Path: path, Layout: layout, Data: data}, nil
}

// classify wraps err in an *Error, marking it soft when the classifier
// allows the search to continue past it.
func (r *Resolver) classify(op, name, path string, err error) error {
	var te *Error
	if errors.As(err, &te) {
		if te.Kind == KindHard && r.soft.Soft(te.Err) {
			te.Kind = KindSoft
		}
		if te.Name == "" {
			te.Name = name
		}
		return te
	}
	kind := KindHard
	if r.soft.Soft(err) {
		kind = KindSoft
	}
	return &Error{Op: op, Name: name, Path: path, Kind: kind, Err: err}
}
