// Package serialize renders an ordered change list into a single runnable
// SQL script (C9), in the pg_dump-flavored comment-header style the
// catalog differ's changes are meant to read like once concatenated.
package serialize

import (
	"fmt"
	"strings"

	"github.com/pgschema/pgdiffcore/internal/change"
)

// Writer accumulates SQL statements, one per Change, separated by blank
// lines and preceded by a "-- Name: ...; Type: ...; Op: ..." header
// comment when comments are enabled.
type Writer struct {
	opts            change.SerializeOptions
	includeComments bool
	output          strings.Builder
}

// NewWriter returns a Writer with comments enabled, matching the default
// CLI output.
func NewWriter(opts change.SerializeOptions) *Writer {
	return &Writer{opts: opts, includeComments: true}
}

// NewWriterWithComments returns a Writer with comment headers on or off.
func NewWriterWithComments(opts change.SerializeOptions, includeComments bool) *Writer {
	return &Writer{opts: opts, includeComments: includeComments}
}

func (w *Writer) writeSeparator() {
	if w.output.Len() == 0 {
		return
	}
	w.output.WriteString("\n")
	if w.opts.Pretty {
		w.output.WriteString("\n")
	}
}

// WriteChange appends one Change's rendered statement, with its header
// comment when enabled.
func (w *Writer) WriteChange(c change.Change) {
	w.writeSeparator()
	if w.includeComments {
		w.output.WriteString("--\n")
		w.output.WriteString(fmt.Sprintf("-- Name: %s; Type: %s; Op: %s\n", c.StableID(), c.ObjectType(), c.Operation()))
		w.output.WriteString("--\n")
		if w.opts.Pretty {
			w.output.WriteString("\n")
		}
	}
	w.output.WriteString(c.Serialize(w.opts))
	w.output.WriteString(";\n")
}

// WriteHeader appends a free-form banner comment (e.g. tool/version) at
// the very top of the script, before any statements.
func (w *Writer) WriteHeader(lines ...string) {
	for _, l := range lines {
		if l == "" {
			w.output.WriteString("--\n")
		} else {
			w.output.WriteString(fmt.Sprintf("-- %s\n", l))
		}
	}
}

// String returns the accumulated script.
func (w *Writer) String() string {
	return w.output.String()
}
