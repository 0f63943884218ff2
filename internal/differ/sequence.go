package differ

import (
	"github.com/pgschema/pgdiffcore/internal/catalogid"
	"github.com/pgschema/pgdiffcore/internal/change"
	"github.com/pgschema/pgdiffcore/internal/schema"
)

func diffSequences(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.Sequences, branch.Sequences)
	for _, s := range p.Created {
		out = append(out, change.NewCreateSequence(s, nil))
		if s.HasOwner() {
			out = append(out, change.NewAlterSequenceSetOwnedBy(s, catalogid.Table(s.Schema, s.OwnedByTable)))
		}
	}
	for _, s := range p.Dropped {
		out = append(out, change.NewDropSequence(s))
	}
	for _, pair := range p.Common {
		if pair.Main.DataType != pair.Branch.DataType {
			out = append(out, change.NewDropSequence(pair.Main), change.NewCreateSequence(pair.Branch, nil))
			if pair.Branch.HasOwner() {
				out = append(out, change.NewAlterSequenceSetOwnedBy(pair.Branch, catalogid.Table(pair.Branch.Schema, pair.Branch.OwnedByTable)))
			}
			continue
		}
		if !pair.Main.Increment.Equal(pair.Branch.Increment) || !pair.Main.MinValue.Equal(pair.Branch.MinValue) ||
			!pair.Main.MaxValue.Equal(pair.Branch.MaxValue) || !pair.Main.CacheSize.Equal(pair.Branch.CacheSize) ||
			pair.Main.Cycle != pair.Branch.Cycle {
			out = append(out, sequenceAlterClause(pair.Branch))
		}
		if pair.Main.OwnedByTable != pair.Branch.OwnedByTable || pair.Main.OwnedByColumn != pair.Branch.OwnedByColumn {
			if pair.Branch.HasOwner() {
				out = append(out, change.NewAlterSequenceSetOwnedBy(pair.Branch, catalogid.Table(pair.Branch.Schema, pair.Branch.OwnedByTable)))
			}
		}
	}
	return out
}

func sequenceAlterClause(s *schema.Sequence) change.Change {
	clause := "INCREMENT BY " + s.Increment.String() +
		" MINVALUE " + s.MinValue.String() +
		" MAXVALUE " + s.MaxValue.String() +
		" CACHE " + s.CacheSize.String()
	if s.Cycle {
		clause += " CYCLE"
	} else {
		clause += " NO CYCLE"
	}
	return change.NewAlterSequence(s, clause)
}
