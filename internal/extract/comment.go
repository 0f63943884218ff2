package extract

import (
	"context"

	"github.com/pgschema/pgdiffcore/internal/catalogid"
	"github.com/pgschema/pgdiffcore/internal/schema"
)

// buildComments has no query of its own: every prior builder already
// captured each object's comment inline via obj_description/col_description,
// so this just collects the non-empty ones into the stableId-keyed map the
// differ needs for comment diffing (spec §3.2 treats a comment as its own
// sub-entity, independent of the object it documents).
func (c *Collector) buildComments(ctx context.Context, cat *schema.Catalog) error {
	add := func(parentStableID, text string) {
		if text == "" {
			return
		}
		cm := &schema.Comment{ParentStableID: parentStableID, Text: text}
		cat.Comments[cm.StableID()] = cm
	}

	for _, s := range cat.Schemas {
		add(s.StableID(), s.Comment)
	}
	for _, e := range cat.Extensions {
		add(e.StableID(), e.Comment)
	}
	for _, l := range cat.Languages {
		add(l.StableID(), l.Comment)
	}
	for _, d := range cat.Domains {
		add(d.StableID(), d.Comment)
	}
	for _, e := range cat.Enums {
		add(e.StableID(), e.Comment)
	}
	for _, cm := range cat.Composites {
		add(cm.StableID(), cm.Comment)
	}
	for _, r := range cat.Ranges {
		add(r.StableID(), r.Comment)
	}
	for _, co := range cat.Collations {
		add(co.StableID(), co.Comment)
	}
	for _, s := range cat.Sequences {
		add(s.StableID(), s.Comment)
	}
	for _, t := range cat.Tables {
		add(t.StableID(), t.Comment)
		for _, col := range t.Columns {
			add(catalogid.Column(t.StableID(), col.Name), col.Comment)
		}
	}
	for _, v := range cat.Views {
		add(v.StableID(), v.Comment)
	}
	for _, m := range cat.MaterializedViews {
		add(m.StableID(), m.Comment)
		for _, col := range m.Columns {
			add(catalogid.Column(m.StableID(), col.Name), col.Comment)
		}
	}
	for _, i := range cat.Indexes {
		add(i.StableID(), i.Comment)
	}
	for _, con := range cat.Constraints {
		add(con.StableID(), con.Comment)
	}
	for _, p := range cat.Procedures {
		add(p.StableID(), p.Comment)
	}
	for _, a := range cat.Aggregates {
		add(a.StableID(), a.Comment)
	}
	for _, t := range cat.Triggers {
		add(t.StableID(), t.Comment)
	}
	for _, e := range cat.EventTriggers {
		add(e.StableID(), e.Comment)
	}
	for _, r := range cat.Rules {
		add(r.StableID(), r.Comment)
	}
	for _, p := range cat.RLSPolicies {
		add(p.StableID(), p.Comment)
	}
	for _, p := range cat.Publications {
		add(p.StableID(), p.Comment)
	}
	for _, s := range cat.Subscriptions {
		add(s.StableID(), s.Comment)
	}
	return nil
}
