package cli

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/jpl-au/terminfo"
)

func field(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render(label), value)
}

func printRecord(w io.Writer, rec *terminfo.Record, alg string) {
	title := rec.Name
	if title == "" {
		title = "(unnamed)"
	}
	fmt.Fprintln(w, titleStyle.Render(title))
	if rec.Path != "" {
		field(w, "path", rec.Path)
	}
	if rec.Layout != terminfo.LayoutNone {
		field(w, "layout", rec.Layout.String())
	}
	field(w, "size", fmt.Sprintf("%d bytes", len(rec.Data)))
	if hdr, err := rec.Header(); err == nil {
		field(w, "names", strings.Join(hdr.Names(), ", "))
		format := "legacy"
		if hdr.Extended() {
			format = "extended"
		}
		field(w, "format", format)
	}
	field(w, "fingerprint", alg+":"+rec.Fingerprint(fingerprintAlgs[alg]))
}

func printTrace(w io.Writer, attempts []terminfo.Attempt) {
	for _, a := range attempts {
		if a.Err == nil {
			fmt.Fprintf(w, "%s %s\n", foundStyle.Render("found"), a.Path)
			continue
		}
		fmt.Fprintf(w, "%s %s\n", missStyle.Render("miss "), a.Path)
	}
}

func printJSON(w io.Writer, rec *terminfo.Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
