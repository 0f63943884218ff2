package schema

import "github.com/pgschema/pgdiffcore/internal/catalogid"

// Index is a table or materialized-view index (CREATE INDEX). Its
// expression set (column list, predicate, method) is non-alterable per
// spec §4.6 — any difference there forces drop+create.
type Index struct {
	Schema     string
	Table      string // owning table or materialized view name
	Name       string
	Method     string // btree, hash, gin, gist, brin, ...
	Columns    []IndexColumn
	Unique     bool
	Primary    bool
	Concurrent bool
	Where      string // partial index predicate, "" if none
	Definition string // full CREATE INDEX text as reported by pg_get_indexdef, used verbatim on create
	Comment    string
}

type IndexColumn struct {
	Name       string // empty when Expression is set (expression index)
	Expression string
	Position   int
	Descending bool
	NullsFirst bool
	OpClass    string
}

func (i *Index) StableID() string {
	return catalogid.Index(i.Schema, i.Name)
}

func (i *Index) TableStableID() string {
	return catalogid.Table(i.Schema, i.Table)
}

// IsExpression reports whether any key column is an expression rather than
// a plain column reference.
func (i *Index) IsExpression() bool {
	for _, c := range i.Columns {
		if c.Expression != "" {
			return true
		}
	}
	return false
}
