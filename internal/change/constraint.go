package change

import (
	"fmt"
	"strings"

	"github.com/pgschema/pgdiffcore/internal/schema"
)

// Constraints have no ALTER form in PostgreSQL beyond validation and
// deferrability, which the differ encodes as distinct Alter changes; any
// other field difference forces drop+create (spec §4.6).

type CreateConstraint struct {
	base
	Constraint *schema.Constraint
}

func NewCreateConstraint(c *schema.Constraint, requires []string) *CreateConstraint {
	id := c.StableID()
	return &CreateConstraint{
		base:       base{op: OpCreate, scope: ScopeConstraint, objectType: schema.KindConstraint, stableID: id, requires: append(requires, c.TableStableID()), creates: []string{id}},
		Constraint: c,
	}
}

func (c *CreateConstraint) Serialize(opts SerializeOptions) string {
	cons := c.Constraint
	var clause string
	switch cons.Type {
	case schema.ConstraintPrimaryKey:
		clause = fmt.Sprintf("%s (%s)", opts.kw("PRIMARY KEY"), joinIdents(cons.Columns))
	case schema.ConstraintUnique:
		clause = fmt.Sprintf("%s (%s)", opts.kw("UNIQUE"), joinIdents(cons.Columns))
	case schema.ConstraintForeignKey:
		clause = fmt.Sprintf("%s (%s) %s %s (%s)", opts.kw("FOREIGN KEY"), joinIdents(cons.Columns),
			opts.kw("REFERENCES"), QualifiedName(cons.ReferencedSchema, cons.ReferencedTable), joinIdents(cons.ReferencedColumns))
		if cons.UpdateRule != "" {
			clause += " " + opts.kw("ON UPDATE") + " " + opts.kw(cons.UpdateRule)
		}
		if cons.DeleteRule != "" {
			clause += " " + opts.kw("ON DELETE") + " " + opts.kw(cons.DeleteRule)
		}
	case schema.ConstraintCheck:
		clause = fmt.Sprintf("%s (%s)", opts.kw("CHECK"), cons.CheckClause)
	case schema.ConstraintExclusion:
		clause = fmt.Sprintf("%s (%s)", opts.kw("EXCLUDE"), strings.Join(cons.ExclusionElements, ", "))
	}
	if cons.Deferrable {
		clause += " " + opts.kw("DEFERRABLE")
		if cons.InitiallyDeferred {
			clause += " " + opts.kw("INITIALLY DEFERRED")
		}
	}
	return fmt.Sprintf("%s %s %s %s %s", opts.kw("ALTER TABLE"), QualifiedName(cons.Schema, cons.Table), opts.kw("ADD CONSTRAINT"), Quote(cons.Name), clause)
}

type DropConstraint struct {
	base
	Schema, Table, Name string
}

func NewDropConstraint(c *schema.Constraint) *DropConstraint {
	id := c.StableID()
	return &DropConstraint{
		base:   base{op: OpDrop, scope: ScopeConstraint, objectType: schema.KindConstraint, stableID: id, drops: []string{id}},
		Schema: c.Schema, Table: c.Table, Name: c.Name,
	}
}

func (d *DropConstraint) Serialize(opts SerializeOptions) string {
	return fmt.Sprintf("%s %s %s %s", opts.kw("ALTER TABLE"), QualifiedName(d.Schema, d.Table), opts.kw("DROP CONSTRAINT"), Quote(d.Name))
}
