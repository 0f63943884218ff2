package schema

import "github.com/pgschema/pgdiffcore/internal/catalogid"

// Collation is a user-defined collation (CREATE COLLATION).
type Collation struct {
	Schema   string
	Name     string
	Locale   string
	Provider string // icu, libc, builtin
	Deterministic bool
	Comment  string
}

func (c *Collation) StableID() string {
	return catalogid.Collation(c.Schema, c.Name)
}
