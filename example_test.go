package terminfo_test

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jpl-au/terminfo"
)

// buildTree writes a tiny compiled vt100 entry under dir in the hex
// layout and returns dir.
func buildTree(dir string) string {
	names := "vt100|dec vt100\x00"
	data := []byte{0x1a, 0x01, byte(len(names)), 0, 0, 0, 0, 0, 0, 0, 0, 0}
	data = append(data, names...)
	os.MkdirAll(filepath.Join(dir, "76"), 0755)
	os.WriteFile(filepath.Join(dir, "76", "vt100"), data, 0644)
	return dir
}

func Example() {
	dir, _ := os.MkdirTemp("", "terminfo-example")
	defer os.RemoveAll(dir)
	buildTree(dir)

	cfg := terminfo.DefaultConfig()
	cfg.TerminfoDirs = dir
	cfg.LookupEnv = func(string) (string, bool) { return "", false }

	rec, err := terminfo.New(cfg).FromTerm("vt100")
	if err != nil {
		log.Fatal(err)
	}
	hdr, _ := rec.Header()
	fmt.Println(rec.Layout, hdr.Names()[1])
	// Output: hex dec vt100
}

func ExampleResolver_FromTerm() {
	cfg := terminfo.DefaultConfig()
	cfg.TerminfoDirs = ""
	cfg.LookupEnv = func(string) (string, bool) { return "", false }
	r := terminfo.New(cfg)

	_, err := r.FromTerm("../etc/passwd")
	fmt.Println(errors.Is(err, terminfo.ErrInvalidName))

	_, err = r.FromTerm("no-such-terminal")
	fmt.Println(errors.Is(err, terminfo.ErrNotFound))
	// Output:
	// true
	// true
}

func ExampleRecord_Snapshot() {
	dir, _ := os.MkdirTemp("", "terminfo-example")
	defer os.RemoveAll(dir)
	buildTree(dir)

	rec, err := terminfo.FromFile(filepath.Join(dir, "76", "vt100"))
	if err != nil {
		log.Fatal(err)
	}

	restored, err := terminfo.FromSnapshot(rec.Snapshot())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(restored.Fingerprint(terminfo.AlgXXHash3) == rec.Fingerprint(terminfo.AlgXXHash3))
	// Output: true
}
