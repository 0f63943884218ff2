package change

import (
	"strings"

	"github.com/pgschema/pgdiffcore/internal/catalogid"
)

// Quote and QuoteLiteral re-export the shared quoting routines so every
// change file in this package can build SQL text without importing
// catalogid directly under a different name.
var (
	Quote        = catalogid.Quote
	QuoteLiteral = catalogid.QuoteLiteral
)

// QualifiedName renders "schema"."name".
func QualifiedName(schemaName, name string) string {
	return Quote(schemaName) + "." + Quote(name)
}

// joinIdents quotes and comma-joins a column/argument name list.
func joinIdents(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = Quote(n)
	}
	return strings.Join(quoted, ", ")
}

// joinRaw comma-joins already-rendered fragments (type names, expressions)
// without quoting them as identifiers.
func joinRaw(parts []string) string {
	return strings.Join(parts, ", ")
}
