// Top-level resolution.
//
// Sources are consulted in a fixed order and the first record found wins:
//
//  1. $TERMINFO, a single directory. Any failure moves on.
//  2. $HOME/.terminfo. A failure that is not soft stops the search.
//  3. $TERMINFO_DIRS, a colon-separated list walked by fromDirs.
//  4. The fallback list from Config.TerminfoDirs.
//
// Only exhaustion of the last step is reported as ErrNotFound.
package terminfo

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Resolver locates terminfo entries. It holds no mutable state, so a
// single Resolver may be shared between goroutines.
type Resolver struct {
	terminfo  string
	dirs      string
	soft      Classifier
	lookupEnv func(string) (string, bool)
	open      func(string) (io.ReadCloser, error)
	logger    *log.Logger
	onAttempt func(Attempt)
	check     func([]byte) error
}

// Attempt describes one tried candidate path.
type Attempt struct {
	Path   string
	Layout Layout
	Err    error // nil when the entry was loaded
}

// New returns a Resolver for cfg.
func New(cfg Config) *Resolver {
	if cfg.Soft == nil {
		cfg.Soft = DefaultSoft
	}
	if cfg.LookupEnv == nil {
		cfg.LookupEnv = os.LookupEnv
	}
	if cfg.Open == nil {
		cfg.Open = openFile
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return &Resolver{
		terminfo:  cfg.Terminfo,
		dirs:      cfg.TerminfoDirs,
		soft:      cfg.Soft,
		lookupEnv: cfg.LookupEnv,
		open:      cfg.Open,
		logger:    cfg.Logger,
		onAttempt: cfg.OnAttempt,
		check:     cfg.Check,
	}
}

// ValidName rejects names that could escape a terminfo directory or that
// no file can carry: the empty name, names starting with '.', and names
// containing a path separator or a NUL byte.
func ValidName(name string) error {
	if name == "" || name[0] == '.' || strings.ContainsFunc(name, isSeparator) || strings.IndexByte(name, 0) >= 0 {
		return &Error{Op: "resolve", Name: name, Kind: KindInvalidInput, Err: ErrInvalidName}
	}
	return nil
}

func isSeparator(c rune) bool {
	return c < 0x80 && (c == '/' || os.IsPathSeparator(uint8(c)))
}

// FromTerm resolves name through the environment and fallback list.
func (r *Resolver) FromTerm(name string) (*Record, error) {
	if err := ValidName(name); err != nil {
		return nil, err
	}

	if dir, ok := r.lookupEnv(EnvTerminfo); ok {
		if rec, err := r.fromDir(dir, "", name); err == nil {
			return rec, nil
		}
	}

	if home, ok := r.lookupEnv(EnvHome); ok {
		rec, err := r.fromDir(home, ".terminfo", name)
		if err == nil {
			return rec, nil
		}
		if KindOf(err) != KindSoft {
			r.logger.Warn("search aborted", "dir", home, "err", err)
			return nil, err
		}
	}

	if list, ok := r.lookupEnv(EnvTerminfoDirs); ok {
		rec, err := r.fromDirs(list, name)
		if err == nil || KindOf(err) != KindNotFound {
			return rec, err
		}
	}

	return r.fromDirs(r.dirs, name)
}

// FromEnv resolves the name held in $TERM.
func (r *Resolver) FromEnv() (*Record, error) {
	name, ok := r.lookupEnv(EnvTerm)
	if !ok {
		return nil, &Error{Op: "resolve", Name: "$" + EnvTerm, Kind: KindNotFound, Err: ErrNotFound}
	}
	return r.FromTerm(name)
}

// FromTerm resolves name with DefaultConfig.
func FromTerm(name string) (*Record, error) {
	return New(DefaultConfig()).FromTerm(name)
}

// FromEnv resolves $TERM with DefaultConfig.
func FromEnv() (*Record, error) {
	return New(DefaultConfig()).FromEnv()
}
