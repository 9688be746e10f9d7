package terminfo

import "strings"

// substitution tracks whether an empty list entry has already stood in
// for the fallback directory during one list walk.
type substitution int

const (
	notSubstituted substitution = iota
	substituted
)

// initialSubstitution is substituted when there is no fallback directory
// to stand in, so empty entries never trigger a lookup.
func (r *Resolver) initialSubstitution() substitution {
	if r.terminfo == "" {
		return substituted
	}
	return notSubstituted
}

// fromDirs searches every directory of a colon-separated list in order.
// An empty entry means the fallback directory, honoured once per walk.
// The walk stops at the first record or at the first error that is not
// soft. An empty list contributes nothing.
func (r *Resolver) fromDirs(list, name string) (*Record, error) {
	if list == "" {
		return nil, notFound(name)
	}

	state := r.initialSubstitution()
	for {
		entry, rest, more := strings.Cut(list, ":")

		var (
			rec *Record
			err error
		)
		rec, state, err = r.fromEntry(entry, name, state)
		if rec != nil {
			return rec, nil
		}
		if err != nil && KindOf(err) != KindSoft {
			r.logger.Warn("search aborted", "dir", entry, "err", err)
			return nil, err
		}

		if !more {
			return nil, notFound(name)
		}
		list = rest
	}
}

// fromEntry searches one list entry and returns the substitution state for
// the next one. A nil record with a nil error means no attempt was made.
func (r *Resolver) fromEntry(entry, name string, state substitution) (*Record, substitution, error) {
	switch {
	case entry != "":
		rec, err := r.fromDir(entry, "", name)
		return rec, state, err
	case state == notSubstituted:
		rec, err := r.fromDir(r.terminfo, "", name)
		return rec, substituted, err
	default:
		return nil, state, nil
	}
}
