// Package catalogid builds the canonical stable-ID strings that name every
// catalog object and sub-entity, and the one identifier-quoting routine
// every producer of those strings must route through.
package catalogid

import "strings"

// Quote applies PostgreSQL identifier quoting: wraps name in double quotes
// and doubles any embedded double quote. Every identifier that becomes part
// of a stable ID or of generated DDL goes through this, never through an
// ad-hoc fmt.Sprintf(`"%s"`, name) — see DESIGN.md, quoting is the single
// largest source of silent diff bugs when two producers disagree.
func Quote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// QuoteQualified quotes and dot-joins a schema-qualified name.
func QuoteQualified(schema, name string) string {
	return Quote(schema) + "." + Quote(name)
}

// QuoteLiteral produces a single-quoted SQL string literal, doubling
// embedded single quotes per PostgreSQL's standard-conforming-strings rule.
// No E'...' escaping is used unless the caller explicitly needs a backslash
// (QuoteEscapeLiteral covers that case).
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// QuoteEscapeLiteral produces an E'...' literal for strings containing a
// backslash, which plain quoting would otherwise leave ambiguous under
// standard_conforming_strings=off.
func QuoteEscapeLiteral(s string) string {
	if !strings.Contains(s, `\`) {
		return QuoteLiteral(s)
	}
	escaped := strings.ReplaceAll(s, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, "'", "''")
	return "E'" + escaped + "'"
}
