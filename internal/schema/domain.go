package schema

import "github.com/pgschema/pgdiffcore/internal/catalogid"

// Domain is a user-defined domain type (CREATE DOMAIN).
type Domain struct {
	Schema      string
	Name        string
	BaseType    string
	NotNull     bool
	Default     *string
	Constraints []DomainConstraint
	Comment     string
}

func (d *Domain) StableID() string {
	return catalogid.Domain(d.Schema, d.Name)
}

// DomainConstraint is a CHECK constraint attached to a domain.
type DomainConstraint struct {
	Name       string
	Definition string
}

// Enum is a user-defined enumerated type (CREATE TYPE ... AS ENUM). Values
// are ordered; order is a data field (ALTER TYPE ... ADD VALUE can insert
// BEFORE/AFTER) but reordering existing values is not alterable in
// PostgreSQL, so a values-order change (not just an appended value) forces
// drop+create.
type Enum struct {
	Schema  string
	Name    string
	Values  []string
	Comment string
}

func (e *Enum) StableID() string {
	return catalogid.Enum(e.Schema, e.Name)
}

// Composite is a user-defined composite (row) type (CREATE TYPE ... AS (...)).
type Composite struct {
	Schema  string
	Name    string
	Columns []CompositeColumn
	Comment string
}

func (c *Composite) StableID() string {
	return catalogid.CompositeType(c.Schema, c.Name)
}

type CompositeColumn struct {
	Name     string
	DataType string
	Position int
}

// Range is a user-defined range type (CREATE TYPE ... AS RANGE).
type Range struct {
	Schema        string
	Name          string
	Subtype       string
	SubtypeOpClass string
	Collation     string
	Canonical     string
	Subdiff       string
	Comment       string
}

func (r *Range) StableID() string {
	return catalogid.Range(r.Schema, r.Name)
}
