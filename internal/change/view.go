package change

import (
	"fmt"

	"github.com/pgschema/pgdiffcore/internal/schema"
)

// CreateView emits CREATE [OR REPLACE] VIEW. OrReplace is how this
// taxonomy realizes operation=replace for views: the differ sets it when
// a view's definition changed (non-alterable field, spec §4.6) rather
// than emitting a separate ReplaceView type (SPEC_FULL.md open question 1).
type CreateView struct {
	base
	View      *schema.View
	OrReplace bool
}

func NewCreateView(v *schema.View, orReplace bool, requires []string) *CreateView {
	id := v.StableID()
	op := OpCreate
	if orReplace {
		op = OpReplace
	}
	return &CreateView{
		base:      base{op: op, scope: ScopeObject, objectType: schema.KindView, stableID: id, requires: requires, creates: []string{id}},
		View:      v,
		OrReplace: orReplace,
	}
}

func (c *CreateView) Serialize(opts SerializeOptions) string {
	kw := "CREATE VIEW "
	if c.OrReplace {
		kw = "CREATE OR REPLACE VIEW "
	}
	return fmt.Sprintf("%s%s %s (%s)", opts.kw(kw), QualifiedName(c.View.Schema, c.View.Name), opts.kw("AS"), c.View.Definition)
}

type DropView struct {
	base
	Schema, Name string
}

func NewDropView(v *schema.View) *DropView {
	id := v.StableID()
	return &DropView{base: base{op: OpDrop, scope: ScopeObject, objectType: schema.KindView, stableID: id, drops: []string{id}}, Schema: v.Schema, Name: v.Name}
}

func (d *DropView) Serialize(opts SerializeOptions) string {
	return opts.kw("DROP VIEW ") + QualifiedName(d.Schema, d.Name)
}

// CreateMaterializedView emits CREATE MATERIALIZED VIEW. Unlike plain
// views, Postgres has no CREATE OR REPLACE MATERIALIZED VIEW, so a
// changed definition always forces drop+create.
type CreateMaterializedView struct {
	base
	View *schema.MaterializedView
}

func NewCreateMaterializedView(v *schema.MaterializedView, requires []string) *CreateMaterializedView {
	id := v.StableID()
	return &CreateMaterializedView{
		base: base{op: OpCreate, scope: ScopeObject, objectType: schema.KindMaterializedView, stableID: id, requires: requires, creates: []string{id}},
		View: v,
	}
}

func (c *CreateMaterializedView) Serialize(opts SerializeOptions) string {
	s := fmt.Sprintf("%s %s %s (%s)", opts.kw("CREATE MATERIALIZED VIEW"), QualifiedName(c.View.Schema, c.View.Name), opts.kw("AS"), c.View.Definition)
	if c.View.WithNoData {
		s += " " + opts.kw("WITH NO DATA")
	}
	return s
}

type DropMaterializedView struct {
	base
	Schema, Name string
}

func NewDropMaterializedView(v *schema.MaterializedView) *DropMaterializedView {
	id := v.StableID()
	return &DropMaterializedView{base: base{op: OpDrop, scope: ScopeObject, objectType: schema.KindMaterializedView, stableID: id, drops: []string{id}}, Schema: v.Schema, Name: v.Name}
}

func (d *DropMaterializedView) Serialize(opts SerializeOptions) string {
	return opts.kw("DROP MATERIALIZED VIEW ") + QualifiedName(d.Schema, d.Name)
}
