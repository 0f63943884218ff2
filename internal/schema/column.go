package schema

import "github.com/pgschema/pgdiffcore/internal/catalogid"

// Column is one column of a table, view, or composite type.
type Column struct {
	Name         string
	Position     int // ordinal_position; a data field, never identity — see SPEC_FULL.md Open Question 2
	DataType     string
	IsNullable   bool
	DefaultValue *string
	MaxLength    *int
	Precision    *int
	Scale        *int
	Comment      string
	Identity     *Identity
	Generated    *GeneratedExpr // GENERATED ALWAYS AS (...) STORED
	CollationName string
}

// Identity models PostgreSQL identity column configuration
// (GENERATED {ALWAYS|BY DEFAULT} AS IDENTITY).
type Identity struct {
	Generation string // ALWAYS or BY DEFAULT
	Start      BigInt
	Increment  BigInt
	Minimum    BigInt
	Maximum    BigInt
	Cycle      bool
}

// GeneratedExpr models a generated (computed) column.
type GeneratedExpr struct {
	Expression string
	Stored     bool
}

// StableID builds a column's stable ID given its owning table's stable ID.
// Columns don't carry their own schema/table fields in this model — the
// owning Table is always the caller's context — so StableID takes it as
// a parameter instead of implementing Identified directly.
func (c *Column) StableID(ownerStableID string) string {
	return catalogid.Column(ownerStableID, c.Name)
}
