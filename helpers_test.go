// Shared fixtures for resolver tests.
//
// Most resolver tests run against memFS, an in-memory opener that records
// every path it is asked for. The order of recorded paths is how the
// tests observe search precedence, layout retry and the once-per-list
// substitution of the fallback directory. Tests that need real files
// build a tree under t.TempDir with writeEntry.
package terminfo

import (
	"bytes"
	"encoding/binary"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// entry builds a minimal legacy compiled entry whose names section is
// names followed by a NUL, padded so the empty tables start on an even
// offset.
func entry(names string) []byte {
	var buf bytes.Buffer
	hdr := [6]int16{MagicLegacy, int16(len(names) + 1), 0, 0, 0, 0}
	binary.Write(&buf, binary.LittleEndian, hdr)
	buf.WriteString(names)
	buf.WriteByte(0)
	if buf.Len()%2 != 0 {
		buf.WriteByte(0)
	}
	return buf.Bytes()
}

type memFS struct {
	files  map[string][]byte
	errs   map[string]error
	opened []string
}

func newMemFS() *memFS {
	return &memFS{files: map[string][]byte{}, errs: map[string]error{}}
}

func (m *memFS) open(path string) (io.ReadCloser, error) {
	m.opened = append(m.opened, path)
	if err, ok := m.errs[path]; ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: err}
	}
	if data, ok := m.files[path]; ok {
		return io.NopCloser(bytes.NewReader(data)), nil
	}
	return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
}

// env returns a LookupEnv over a fixed map.
func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

// newTestResolver builds a Resolver over m with the given fallback
// directory, fallback list and environment.
func newTestResolver(m *memFS, terminfo, dirs string, vars map[string]string) *Resolver {
	return New(Config{
		Terminfo:     terminfo,
		TerminfoDirs: dirs,
		LookupEnv:    env(vars),
		Open:         m.open,
	})
}

func assertOpened(t *testing.T, m *memFS, want ...string) {
	t.Helper()
	if len(m.opened) != len(want) {
		t.Fatalf("opened %q, want %q", m.opened, want)
	}
	for i := range want {
		if m.opened[i] != want[i] {
			t.Fatalf("opened %q, want %q", m.opened, want)
		}
	}
}

// writeEntry writes data to dir/rel, creating parent directories.
func writeEntry(t testing.TB, dir, rel string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write entry: %v", err)
	}
	return path
}
