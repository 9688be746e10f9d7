package terminfo

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestErrors(t *testing.T) {
	// Verify all errors are defined and distinct
	errs := []error{
		ErrInvalidName,
		ErrNotFound,
		ErrOutOfMemory,
		ErrRead,
		ErrBadMagic,
		ErrTruncated,
		ErrMalformed,
		ErrSnapshot,
	}

	seen := make(map[string]int)
	for i, err := range errs {
		if err == nil {
			t.Fatalf("error at index %d is nil", i)
		}
		msg := err.Error()
		if prev, ok := seen[msg]; ok {
			t.Errorf("error at index %d has same message as index %d: %q", i, prev, msg)
		}
		seen[msg] = i
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := &Error{Op: "load", Path: "/d/x/xterm", Kind: KindSoft, Err: fs.ErrPermission}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("errors.Is does not reach the wrapped error")
	}
	wrapped := fmt.Errorf("outer: %w", err)
	if KindOf(wrapped) != KindSoft {
		t.Errorf("KindOf(wrapped) = %v, want soft", KindOf(wrapped))
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{&Error{Op: "load", Path: "/d/x/xterm", Err: ErrRead}, "terminfo: load /d/x/xterm: read failed"},
		{&Error{Op: "resolve", Name: "xterm", Err: ErrNotFound}, `terminfo: resolve "xterm": terminfo entry not found`},
		{&Error{Op: "snapshot", Err: ErrSnapshot}, "terminfo: snapshot: invalid snapshot"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want Kind
	}{
		{ErrInvalidName, KindInvalidInput},
		{fmt.Errorf("x: %w", ErrNotFound), KindNotFound},
		{errors.New("other"), KindHard},
		{&Error{Kind: KindSoft, Err: fs.ErrNotExist}, KindSoft},
	}
	for _, tt := range tests {
		if got := KindOf(tt.err); got != tt.want {
			t.Errorf("KindOf(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
