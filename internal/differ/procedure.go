package differ

import (
	"strings"

	"github.com/pgschema/pgdiffcore/internal/change"
	"github.com/pgschema/pgdiffcore/internal/schema"
)

func diffProcedures(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.Procedures, branch.Procedures)
	for _, pr := range p.Created {
		out = append(out, change.NewCreateProcedure(pr, false, nil))
	}
	for _, pr := range p.Dropped {
		out = append(out, change.NewDropProcedure(pr))
	}
	for _, pair := range p.Common {
		if pair.Main.Definition != pair.Branch.Definition || pair.Main.ReturnType != pair.Branch.ReturnType ||
			pair.Main.Language != pair.Branch.Language || pair.Main.IsProcedure != pair.Branch.IsProcedure {
			if pair.Branch.IsProcedure {
				out = append(out, change.NewDropProcedure(pair.Main), change.NewCreateProcedure(pair.Branch, false, nil))
			} else {
				out = append(out, change.NewCreateProcedure(pair.Branch, true, nil))
			}
			continue
		}
		if pair.Main.Owner != pair.Branch.Owner {
			ref := procedureRef(pair.Branch)
			kw := "FUNCTION"
			if pair.Branch.IsProcedure {
				kw = "PROCEDURE"
			}
			out = append(out, change.NewAlterOwner(schema.KindProcedure, kw, pair.Branch.StableID(), ref, pair.Branch.Owner))
		}
	}
	return out
}

func procedureRef(p *schema.Procedure) string {
	return change.QualifiedName(p.Schema, p.Name) + "(" + strings.Join(p.ArgTypes, ", ") + ")"
}

func diffAggregates(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.Aggregates, branch.Aggregates)
	for _, a := range p.Created {
		out = append(out, change.NewCreateAggregate(a, nil))
	}
	for _, a := range p.Dropped {
		out = append(out, change.NewDropAggregate(a))
	}
	for _, pair := range p.Common {
		if !aggregateEqual(pair.Main, pair.Branch) {
			out = append(out, change.NewDropAggregate(pair.Main), change.NewCreateAggregate(pair.Branch, nil))
		}
	}
	return out
}

func aggregateEqual(a, b *schema.Aggregate) bool {
	return a.TransitionFunction == b.TransitionFunction &&
		a.TransitionFunctionSchema == b.TransitionFunctionSchema &&
		a.StateType == b.StateType &&
		a.InitialCondition == b.InitialCondition &&
		a.FinalFunction == b.FinalFunction &&
		a.FinalFunctionSchema == b.FinalFunctionSchema &&
		strings.Join(a.ArgTypes, ",") == strings.Join(b.ArgTypes, ",")
}
