package change

import (
	"fmt"

	"github.com/pgschema/pgdiffcore/internal/schema"
)

// CreateSequence never includes OWNED BY — that link is always a
// separate AlterSequenceSetOwnedBy change ordered after the owning
// table is created (spec §4.8 sequence-table special case), so a
// sequence can be created before the table that will own it.
type CreateSequence struct {
	base
	Sequence *schema.Sequence
}

func NewCreateSequence(s *schema.Sequence, requires []string) *CreateSequence {
	id := s.StableID()
	return &CreateSequence{
		base:     base{op: OpCreate, scope: ScopeObject, objectType: schema.KindSequence, stableID: id, requires: requires, creates: []string{id}},
		Sequence: s,
	}
}

func (c *CreateSequence) Serialize(opts SerializeOptions) string {
	s := c.Sequence
	out := fmt.Sprintf("%s %s", opts.kw("CREATE SEQUENCE"), QualifiedName(s.Schema, s.Name))
	if s.DataType != "" && s.DataType != "bigint" {
		out += " " + opts.kw("AS") + " " + s.DataType
	}
	out += fmt.Sprintf(" %s %s", opts.kw("INCREMENT BY"), s.Increment.String())
	out += fmt.Sprintf(" %s %s", opts.kw("MINVALUE"), s.MinValue.String())
	out += fmt.Sprintf(" %s %s", opts.kw("MAXVALUE"), s.MaxValue.String())
	out += fmt.Sprintf(" %s %s", opts.kw("START WITH"), s.StartValue.String())
	out += fmt.Sprintf(" %s %s", opts.kw("CACHE"), s.CacheSize.String())
	if s.Cycle {
		out += " " + opts.kw("CYCLE")
	}
	return out
}

type DropSequence struct {
	base
	Schema, Name string
}

func NewDropSequence(s *schema.Sequence) *DropSequence {
	id := s.StableID()
	return &DropSequence{base: base{op: OpDrop, scope: ScopeObject, objectType: schema.KindSequence, stableID: id, drops: []string{id}}, Schema: s.Schema, Name: s.Name}
}

func (d *DropSequence) Serialize(opts SerializeOptions) string {
	return opts.kw("DROP SEQUENCE ") + QualifiedName(d.Schema, d.Name)
}

// AlterSequenceSetOwnedBy links a sequence to its owning column; requires
// the table's stableId so the resolver places it after table creation.
type AlterSequenceSetOwnedBy struct {
	base
	Schema, Name, OwnedByTable, OwnedByColumn string
}

func NewAlterSequenceSetOwnedBy(s *schema.Sequence, tableStableID string) *AlterSequenceSetOwnedBy {
	return &AlterSequenceSetOwnedBy{
		base:          base{op: OpAlter, scope: ScopeObject, objectType: schema.KindSequence, stableID: s.StableID(), requires: []string{tableStableID}, creates: []string{s.StableID()}},
		Schema:        s.Schema,
		Name:          s.Name,
		OwnedByTable:  s.OwnedByTable,
		OwnedByColumn: s.OwnedByColumn,
	}
}

func (a *AlterSequenceSetOwnedBy) Serialize(opts SerializeOptions) string {
	return fmt.Sprintf("%s %s %s %s.%s", opts.kw("ALTER SEQUENCE"), QualifiedName(a.Schema, a.Name),
		opts.kw("OWNED BY"), QualifiedName(a.Schema, a.OwnedByTable), Quote(a.OwnedByColumn))
}

// AlterSequence covers the remaining alterable numeric fields as one
// combined statement (Postgres accepts multiple SET clauses in one
// ALTER SEQUENCE).
type AlterSequence struct {
	base
	Schema, Name string
	clause       string
}

func NewAlterSequence(s *schema.Sequence, clause string) *AlterSequence {
	id := s.StableID()
	return &AlterSequence{base: base{op: OpAlter, scope: ScopeObject, objectType: schema.KindSequence, stableID: id, creates: []string{id}}, Schema: s.Schema, Name: s.Name, clause: clause}
}

func (a *AlterSequence) Serialize(opts SerializeOptions) string {
	return fmt.Sprintf("%s %s %s", opts.kw("ALTER SEQUENCE"), QualifiedName(a.Schema, a.Name), a.clause)
}
