package terminfo

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
)

// Build-time fallback locations. Packagers override them with
//
//	-ldflags "-X github.com/jpl-au/terminfo.buildTerminfo=/usr/share/terminfo"
//
// They are only read by DefaultConfig; a Resolver never looks at them.
var (
	buildTerminfo     = "/usr/share/terminfo"
	buildTerminfoDirs = "/etc/terminfo:/lib/terminfo:/usr/share/terminfo"
)

// Environment variables consulted during resolution.
const (
	EnvTerminfo     = "TERMINFO"
	EnvHome         = "HOME"
	EnvTerminfoDirs = "TERMINFO_DIRS"
	EnvTerm         = "TERM"
)

// Config holds resolver configuration. Terminfo and TerminfoDirs are used
// verbatim, including when empty; start from DefaultConfig to get the
// build-time locations. Nil function fields fall back to the OS.
type Config struct {
	Terminfo     string // Fallback directory substituted for an empty list entry
	TerminfoDirs string // Fallback colon-separated directory list

	Soft      Classifier                          // Default DefaultSoft
	LookupEnv func(string) (string, bool)         // Default os.LookupEnv
	Open      func(string) (io.ReadCloser, error) // Default os.Open
	Logger    *log.Logger                         // Default discards
	OnAttempt func(Attempt)                       // Called after every attempt

	// Check, when set, is run on every loaded entry. A non-nil error
	// rejects the candidate as a hard failure, so a corrupt entry stops
	// the search instead of being returned. CheckEntry is the usual
	// choice.
	Check func([]byte) error
}

// DefaultConfig returns the build-time fallback locations with default
// classification and OS access.
func DefaultConfig() Config {
	return Config{
		Terminfo:     buildTerminfo,
		TerminfoDirs: buildTerminfoDirs,
		Soft:         DefaultSoft,
	}
}

// Classifier lists the failures that only disqualify a single candidate.
// A failure matching any entry under errors.Is lets the search continue;
// everything else aborts it.
type Classifier []error

// DefaultSoft treats a missing entry and permission problems as soft.
// On Unix fs.ErrPermission matches both EACCES and EPERM.
var DefaultSoft = Classifier{fs.ErrNotExist, fs.ErrPermission}

// Soft reports whether err lets the search continue.
func (c Classifier) Soft(err error) bool {
	for _, target := range c {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// CheckEntry reports whether data decodes as a compiled entry.
func CheckEntry(data []byte) error {
	_, err := Decode(data)
	return err
}

func openFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}
