package differ

import (
	"sort"
	"strings"

	"github.com/pgschema/pgdiffcore/internal/change"
	"github.com/pgschema/pgdiffcore/internal/schema"
)

func diffTables(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.Tables, branch.Tables)
	for _, t := range p.Created {
		out = append(out, change.NewCreateTable(t, nil))
	}
	for _, t := range p.Dropped {
		out = append(out, change.NewDropTable(t))
	}
	for _, pair := range p.Common {
		if pair.Main.IsPartitioned != pair.Branch.IsPartitioned ||
			pair.Main.PartitionStrategy != pair.Branch.PartitionStrategy ||
			pair.Main.PartitionKey != pair.Branch.PartitionKey {
			out = append(out, change.NewDropTable(pair.Main), change.NewCreateTable(pair.Branch, nil))
			continue
		}
		out = append(out, diffTableAltered(pair.Main, pair.Branch)...)
		out = append(out, diffColumns(pair.Main, pair.Branch)...)
	}
	return out
}

func diffTableAltered(main, branch *schema.Table) []change.Change {
	var out []change.Change
	if main.Owner != branch.Owner {
		out = append(out, change.NewAlterTableChangeOwner(branch, branch.Owner))
	}
	if main.Unlogged != branch.Unlogged {
		out = append(out, change.NewAlterTableSetLogged(branch, branch.Unlogged))
	}
	if main.ReplicaIdentity != branch.ReplicaIdentity {
		out = append(out, change.NewAlterTableSetReplicaIdentity(branch, branch.ReplicaIdentity))
	}
	if main.RLSEnabled != branch.RLSEnabled {
		out = append(out, change.NewAlterTableEnableRowSecurity(branch, branch.RLSEnabled))
	}
	if main.RLSForced != branch.RLSForced {
		out = append(out, change.NewAlterTableForceRowSecurity(branch, branch.RLSForced))
	}
	if !reloptionsEqual(main.Reloptions, branch.Reloptions) {
		out = append(out, change.NewAlterTableSetReloptions(branch, branch.Reloptions))
	}
	return out
}

// reloptionsEqual compares "key=value" option lists as sets, since
// Postgres doesn't order them meaningfully (spec §4.6).
func reloptionsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	sa, sb := append([]string{}, a...), append([]string{}, b...)
	sort.Strings(sa)
	sort.Strings(sb)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

// diffColumns diffs two tables' column lists by name, per spec §4.6.
func diffColumns(main, branch *schema.Table) []change.Change {
	var out []change.Change
	mainCols, branchCols := main.ColumnsByName(), branch.ColumnsByName()

	names := make([]string, 0, len(mainCols)+len(branchCols))
	seen := map[string]bool{}
	for _, c := range branch.Columns {
		if !seen[c.Name] {
			seen[c.Name] = true
			names = append(names, c.Name)
		}
	}
	for _, c := range main.Columns {
		if !seen[c.Name] {
			seen[c.Name] = true
			names = append(names, c.Name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		mc, inMain := mainCols[name]
		bc, inBranch := branchCols[name]
		switch {
		case inBranch && !inMain:
			out = append(out, change.NewAlterTableAddColumn(branch, bc))
		case inMain && !inBranch:
			out = append(out, change.NewAlterTableDropColumn(main, name))
		default:
			out = append(out, diffColumnAltered(branch, mc, bc)...)
		}
	}
	return out
}

func diffColumnAltered(table *schema.Table, main, branch *schema.Column) []change.Change {
	var out []change.Change
	if main.DataType != branch.DataType || main.CollationName != branch.CollationName {
		out = append(out, change.NewAlterTableAlterColumnType(table, branch.Name, branch.DataType, ""))
	}
	if main.IsNullable != branch.IsNullable {
		if branch.IsNullable {
			out = append(out, change.NewAlterTableDropNotNull(table, branch.Name))
		} else {
			out = append(out, change.NewAlterTableSetNotNull(table, branch.Name))
		}
	}
	if !strPtrEqual(main.DefaultValue, branch.DefaultValue) {
		if branch.DefaultValue == nil {
			out = append(out, change.NewAlterTableDropDefault(table, branch.Name))
		} else {
			out = append(out, change.NewAlterTableSetDefault(table, branch.Name, *branch.DefaultValue))
		}
	}
	return out
}

func diffIndexes(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.Indexes, branch.Indexes)
	for _, idx := range p.Created {
		out = append(out, change.NewCreateIndex(idx, nil))
	}
	for _, idx := range p.Dropped {
		out = append(out, change.NewDropIndex(idx))
	}
	for _, pair := range p.Common {
		if !indexEqual(pair.Main, pair.Branch) {
			out = append(out, change.NewDropIndex(pair.Main), change.NewCreateIndex(pair.Branch, nil))
		}
	}
	return out
}

func indexEqual(a, b *schema.Index) bool {
	if a.Method != b.Method || a.Unique != b.Unique || a.Where != b.Where || len(a.Columns) != len(b.Columns) {
		return false
	}
	for i := range a.Columns {
		if a.Columns[i] != b.Columns[i] {
			return false
		}
	}
	return true
}

func diffConstraints(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.Constraints, branch.Constraints)
	for _, c := range p.Created {
		out = append(out, change.NewCreateConstraint(c, nil))
	}
	for _, c := range p.Dropped {
		out = append(out, change.NewDropConstraint(c))
	}
	for _, pair := range p.Common {
		if !constraintEqual(pair.Main, pair.Branch) {
			out = append(out, change.NewDropConstraint(pair.Main), change.NewCreateConstraint(pair.Branch, nil))
		}
	}
	return out
}

func constraintEqual(a, b *schema.Constraint) bool {
	if a.Type != b.Type || strings.Join(a.Columns, ",") != strings.Join(b.Columns, ",") ||
		a.ReferencedSchema != b.ReferencedSchema || a.ReferencedTable != b.ReferencedTable ||
		strings.Join(a.ReferencedColumns, ",") != strings.Join(b.ReferencedColumns, ",") ||
		a.DeleteRule != b.DeleteRule || a.UpdateRule != b.UpdateRule || a.CheckClause != b.CheckClause ||
		a.Deferrable != b.Deferrable || a.InitiallyDeferred != b.InitiallyDeferred {
		return false
	}
	return strings.Join(a.ExclusionElements, ",") == strings.Join(b.ExclusionElements, ",")
}
