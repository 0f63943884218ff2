package schema

import "github.com/pgschema/pgdiffcore/internal/catalogid"

// View is a plain view (CREATE VIEW). Definition is non-alterable (spec
// §4.6): any change emits CREATE OR REPLACE VIEW rather than an ALTER.
type View struct {
	Schema     string
	Name       string
	Owner      string
	Definition string // the view's SELECT body, as pg_get_viewdef reports it
	Columns    []*Column
	Comment    string
}

func (v *View) StableID() string {
	return catalogid.View(v.Schema, v.Name)
}

func (v *View) OwnerStableID() string {
	return catalogid.Role(v.Owner)
}

// MaterializedView is CREATE MATERIALIZED VIEW. Unlike View it has its own
// indexes, so it participates in Catalog.TableLike() alongside Table.
type MaterializedView struct {
	Schema       string
	Name         string
	Owner        string
	Definition   string
	Columns      []*Column
	WithNoData   bool
	TablespaceName string
	Comment      string
}

func (m *MaterializedView) StableID() string {
	return catalogid.MaterializedView(m.Schema, m.Name)
}

func (m *MaterializedView) OwnerStableID() string {
	return catalogid.Role(m.Owner)
}
