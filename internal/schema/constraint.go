package schema

import "github.com/pgschema/pgdiffcore/internal/catalogid"

type ConstraintType string

const (
	ConstraintPrimaryKey ConstraintType = "PRIMARY_KEY"
	ConstraintUnique     ConstraintType = "UNIQUE"
	ConstraintForeignKey ConstraintType = "FOREIGN_KEY"
	ConstraintCheck      ConstraintType = "CHECK"
	ConstraintExclusion  ConstraintType = "EXCLUSION"
)

// Constraint is a table or domain constraint. Identity is (schema, table,
// name) — constraint names are unique per table, not per schema.
type Constraint struct {
	Schema            string
	Table             string
	Name              string
	Type              ConstraintType
	Columns           []string // ordered, per the constraint's own column order
	ReferencedSchema  string
	ReferencedTable   string
	ReferencedColumns []string
	DeleteRule        string
	UpdateRule        string
	CheckClause       string
	ExclusionElements []string // "expr WITH operator" pairs, for EXCLUDE constraints
	Deferrable        bool
	InitiallyDeferred bool
	Comment           string
}

func (c *Constraint) StableID() string {
	return catalogid.Constraint(c.Schema, c.Table, c.Name)
}

func (c *Constraint) TableStableID() string {
	return catalogid.Table(c.Schema, c.Table)
}

func (c *Constraint) ReferencedTableStableID() string {
	if c.ReferencedTable == "" {
		return ""
	}
	return catalogid.Table(c.ReferencedSchema, c.ReferencedTable)
}
