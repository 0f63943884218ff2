package differ

import (
	"github.com/pgschema/pgdiffcore/internal/change"
	"github.com/pgschema/pgdiffcore/internal/schema"
)

func diffViews(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.Views, branch.Views)
	for _, v := range p.Created {
		out = append(out, change.NewCreateView(v, false, nil))
	}
	for _, v := range p.Dropped {
		out = append(out, change.NewDropView(v))
	}
	for _, pair := range p.Common {
		if pair.Main.Definition != pair.Branch.Definition {
			out = append(out, change.NewCreateView(pair.Branch, true, nil))
		}
		if pair.Main.Owner != pair.Branch.Owner {
			ref := change.QualifiedName(pair.Branch.Schema, pair.Branch.Name)
			out = append(out, change.NewAlterOwner(schema.KindView, "VIEW", pair.Branch.StableID(), ref, pair.Branch.Owner))
		}
	}
	return out
}

func diffMaterializedViews(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.MaterializedViews, branch.MaterializedViews)
	for _, v := range p.Created {
		out = append(out, change.NewCreateMaterializedView(v, nil))
	}
	for _, v := range p.Dropped {
		out = append(out, change.NewDropMaterializedView(v))
	}
	for _, pair := range p.Common {
		if pair.Main.Definition != pair.Branch.Definition || pair.Main.WithNoData != pair.Branch.WithNoData {
			out = append(out, change.NewDropMaterializedView(pair.Main), change.NewCreateMaterializedView(pair.Branch, nil))
		}
	}
	return out
}
