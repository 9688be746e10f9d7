// Loaded entries.
//
// A Record is the raw content of one compiled terminfo file together with
// where it was found. Resolution never decodes the content; Header does
// that on demand.
package terminfo

import (
	"bytes"
	"errors"
	"io"
	"io/fs"

	json "github.com/goccy/go-json"
)

// Record is a loaded terminfo entry. Data holds at most MaxSize bytes and
// belongs to the caller.
type Record struct {
	Name   string // Requested name
	Path   string // File the data was read from
	Layout Layout // Layout the entry was found under
	Data   []byte // Raw file content
}

// Header decodes the entry's header and names section.
func (rec *Record) Header() (*Header, error) {
	return Decode(rec.Data)
}

// summary is the JSON shape of a Record. Data is omitted in favour of a
// fingerprint and the decoded names.
type summary struct {
	Name        string   `json:"name"`
	Path        string   `json:"path,omitempty"`
	Layout      string   `json:"layout"`
	Size        int      `json:"size"`
	Fingerprint string   `json:"fingerprint"`
	Names       []string `json:"names,omitempty"`
	Extended    bool     `json:"extended,omitempty"`
}

// MarshalJSON encodes a summary of the record.
func (rec *Record) MarshalJSON() ([]byte, error) {
	s := summary{
		Name:        rec.Name,
		Path:        rec.Path,
		Layout:      rec.Layout.String(),
		Size:        len(rec.Data),
		Fingerprint: rec.Fingerprint(AlgXXHash3),
	}
	if hdr, err := rec.Header(); err == nil {
		s.Names = hdr.Names()
		s.Extended = hdr.Extended()
	}
	return json.Marshal(s)
}

// FromFile loads the entry at path without any search.
func FromFile(path string) (*Record, error) {
	data, err := New(Config{}).load(path)
	if err != nil {
		var te *Error
		if errors.As(err, &te) {
			return nil, te
		}
		kind := KindHard
		if errors.Is(err, fs.ErrNotExist) {
			kind = KindNotFound
		}
		return nil, &Error{Op: "load", Path: path, Kind: kind, Err: err}
	}
	return &Record{Path: path, Data: data}, nil
}

// FromReader loads an entry from a stream. Reading stops at io.EOF or
// after MaxSize bytes.
func FromReader(src io.Reader) (*Record, error) {
	data, err := ReadStream(src)
	if err != nil {
		return nil, err
	}
	return &Record{Data: data}, nil
}

// FromBytes wraps data already in memory, keeping at most MaxSize bytes.
// The slice is copied.
func FromBytes(data []byte) *Record {
	if len(data) > MaxSize {
		data = data[:MaxSize]
	}
	return &Record{Data: bytes.Clone(data)}
}
