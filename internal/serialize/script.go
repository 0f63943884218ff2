package serialize

import (
	"fmt"

	"github.com/pgschema/pgdiffcore/internal/change"
	"github.com/pgschema/pgdiffcore/internal/schema"
	"github.com/pgschema/pgdiffcore/internal/version"
)

// Script renders a resolved, ordered change list into one SQL script
// ready to run against the target database, with a banner comment
// identifying the tool and target server version.
func Script(changes []change.Change, opts change.SerializeOptions, ctx schema.Context) string {
	w := NewWriter(opts)
	w.WriteHeader(
		fmt.Sprintf("pgdiffcore %s migration", version.Version()),
		fmt.Sprintf("Target server version: %d", ctx.ServerVersion),
		"",
	)
	for _, c := range changes {
		w.WriteChange(c)
	}
	return w.String()
}

// ScriptWithoutComments renders the same script with per-statement
// header comments suppressed, for callers that only want runnable SQL
// (e.g. piping into psql -q).
func ScriptWithoutComments(changes []change.Change, opts change.SerializeOptions) string {
	w := NewWriterWithComments(opts, false)
	for _, c := range changes {
		w.WriteChange(c)
	}
	return w.String()
}
