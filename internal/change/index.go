package change

import (
	"fmt"
	"strings"

	"github.com/pgschema/pgdiffcore/internal/schema"
)

// CreateIndex emits CREATE [UNIQUE] INDEX. An index's method, column
// list, and predicate are all non-alterable (spec §4.6): any change
// forces drop+create, so there is no AlterIndex type.
type CreateIndex struct {
	base
	Index *schema.Index
}

func NewCreateIndex(idx *schema.Index, requires []string) *CreateIndex {
	id := idx.StableID()
	return &CreateIndex{
		base:  base{op: OpCreate, scope: ScopeObject, objectType: schema.KindIndex, stableID: id, requires: append(requires, idx.TableStableID()), creates: []string{id}},
		Index: idx,
	}
}

func (c *CreateIndex) Serialize(opts SerializeOptions) string {
	idx := c.Index
	var b strings.Builder
	b.WriteString(opts.kw("CREATE "))
	if idx.Unique {
		b.WriteString(opts.kw("UNIQUE "))
	}
	b.WriteString(opts.kw("INDEX "))
	b.WriteString(Quote(idx.Name))
	b.WriteString(" " + opts.kw("ON") + " ")
	b.WriteString(QualifiedName(idx.Schema, idx.Table))
	if idx.Method != "" {
		b.WriteString(" " + opts.kw("USING") + " " + idx.Method)
	}
	b.WriteString(" (")
	cols := make([]string, len(idx.Columns))
	for i, c := range idx.Columns {
		col := c.Expression
		if col == "" {
			col = Quote(c.Name)
		}
		if c.OpClass != "" {
			col += " " + c.OpClass
		}
		if c.Descending {
			col += " " + opts.kw("DESC")
		}
		if c.NullsFirst {
			col += " " + opts.kw("NULLS FIRST")
		}
		cols[i] = col
	}
	b.WriteString(strings.Join(cols, ", "))
	b.WriteString(")")
	if idx.Where != "" {
		b.WriteString(" " + opts.kw("WHERE") + " " + idx.Where)
	}
	return b.String()
}

// DropIndex emits DROP INDEX.
type DropIndex struct {
	base
	Schema, Name string
}

func NewDropIndex(idx *schema.Index) *DropIndex {
	id := idx.StableID()
	return &DropIndex{base: base{op: OpDrop, scope: ScopeObject, objectType: schema.KindIndex, stableID: id, drops: []string{id}}, Schema: idx.Schema, Name: idx.Name}
}

func (d *DropIndex) Serialize(opts SerializeOptions) string {
	return fmt.Sprintf("%s %s", opts.kw("DROP INDEX"), QualifiedName(d.Schema, d.Name))
}
