package change

import (
	"fmt"
	"strings"

	"github.com/pgschema/pgdiffcore/internal/catalogid"
	"github.com/pgschema/pgdiffcore/internal/schema"
)

// CreateTable emits CREATE [UNLOGGED] TABLE with its full column list.
// Constraints and indexes are separate top-level changes (spec §3.2), so
// this never emits inline PRIMARY KEY/CHECK/etc. clauses.
type CreateTable struct {
	base
	Table *schema.Table
}

func NewCreateTable(t *schema.Table, requires []string) *CreateTable {
	id := t.StableID()
	return &CreateTable{
		base:  base{op: OpCreate, scope: ScopeObject, objectType: schema.KindTable, stableID: id, requires: requires, creates: []string{id}},
		Table: t,
	}
}

func (c *CreateTable) Serialize(opts SerializeOptions) string {
	var b strings.Builder
	b.WriteString(opts.kw("CREATE "))
	if c.Table.Unlogged {
		b.WriteString(opts.kw("UNLOGGED "))
	}
	b.WriteString(opts.kw("TABLE "))
	b.WriteString(QualifiedName(c.Table.Schema, c.Table.Name))
	b.WriteString(" (")
	if opts.Pretty {
		b.WriteString("\n")
	}
	for i, col := range c.Table.Columns {
		if opts.Pretty {
			b.WriteString(opts.indent())
		}
		b.WriteString(columnDefinition(col, opts))
		if i < len(c.Table.Columns)-1 {
			b.WriteString(",")
		}
		if opts.Pretty {
			b.WriteString("\n")
		} else if i < len(c.Table.Columns)-1 {
			b.WriteString(" ")
		}
	}
	b.WriteString(")")
	if c.Table.IsPartitioned {
		b.WriteString(fmt.Sprintf(" %s %s (%s)", opts.kw("PARTITION BY"), opts.kw(c.Table.PartitionStrategy), c.Table.PartitionKey))
	}
	if len(c.Table.Reloptions) > 0 {
		b.WriteString(" " + opts.kw("WITH") + " (" + strings.Join(c.Table.Reloptions, ", ") + ")")
	}
	return b.String()
}

func columnDefinition(col *schema.Column, opts SerializeOptions) string {
	var b strings.Builder
	b.WriteString(Quote(col.Name))
	b.WriteString(" ")
	b.WriteString(col.DataType)
	if col.Generated != nil {
		b.WriteString(fmt.Sprintf(" %s %s (%s) %s", opts.kw("GENERATED ALWAYS AS"), "", col.Generated.Expression, opts.kw("STORED")))
	}
	if col.Identity != nil {
		b.WriteString(" " + opts.kw(fmt.Sprintf("GENERATED %s AS IDENTITY", col.Identity.Generation)))
	}
	if !col.IsNullable {
		b.WriteString(" " + opts.kw("NOT NULL"))
	}
	if col.DefaultValue != nil {
		b.WriteString(" " + opts.kw("DEFAULT") + " " + *col.DefaultValue)
	}
	if col.CollationName != "" {
		b.WriteString(" " + opts.kw("COLLATE") + " " + Quote(col.CollationName))
	}
	return b.String()
}

// DropTable emits DROP TABLE.
type DropTable struct {
	base
	Schema, Name string
}

func NewDropTable(t *schema.Table) *DropTable {
	id := t.StableID()
	return &DropTable{base: base{op: OpDrop, scope: ScopeObject, objectType: schema.KindTable, stableID: id, drops: []string{id}}, Schema: t.Schema, Name: t.Name}
}

func (d *DropTable) Serialize(opts SerializeOptions) string {
	return opts.kw("DROP TABLE ") + QualifiedName(d.Schema, d.Name)
}

// alterTable is the shared shape for every ALTER TABLE ... sub-clause; the
// clause text itself is supplied by the caller since PostgreSQL's grammar
// for each sub-clause differs too much to generalize further.
type alterTable struct {
	base
	Schema, Table string
	clause        func(opts SerializeOptions) string
}

func (a *alterTable) Serialize(opts SerializeOptions) string {
	return opts.kw("ALTER TABLE ") + QualifiedName(a.Schema, a.Table) + " " + a.clause(opts)
}

func newAlterTable(t *schema.Table, scope Scope, stableID string, requires []string, clause func(SerializeOptions) string) *alterTable {
	return &alterTable{
		base:   base{op: OpAlter, scope: scope, objectType: schema.KindTable, stableID: stableID, requires: requires, creates: []string{stableID}},
		Schema: t.Schema, Table: t.Name, clause: clause,
	}
}

func NewAlterTableAddColumn(t *schema.Table, col *schema.Column) Change {
	id := catalogidColumn(t.StableID(), col.Name)
	return newAlterTable(t, ScopeColumn, id, nil, func(opts SerializeOptions) string {
		return opts.kw("ADD COLUMN ") + columnDefinition(col, opts)
	})
}

func NewAlterTableDropColumn(t *schema.Table, colName string) Change {
	id := catalogidColumn(t.StableID(), colName)
	a := newAlterTable(t, ScopeColumn, id, nil, func(opts SerializeOptions) string {
		return opts.kw("DROP COLUMN ") + Quote(colName)
	})
	a.creates = nil
	a.drops = []string{id}
	return a
}

func NewAlterTableSetNotNull(t *schema.Table, colName string) Change {
	id := catalogidColumn(t.StableID(), colName)
	return newAlterTable(t, ScopeColumn, id, nil, func(opts SerializeOptions) string {
		return opts.kw("ALTER COLUMN ") + Quote(colName) + " " + opts.kw("SET NOT NULL")
	})
}

func NewAlterTableDropNotNull(t *schema.Table, colName string) Change {
	id := catalogidColumn(t.StableID(), colName)
	return newAlterTable(t, ScopeColumn, id, nil, func(opts SerializeOptions) string {
		return opts.kw("ALTER COLUMN ") + Quote(colName) + " " + opts.kw("DROP NOT NULL")
	})
}

func NewAlterTableSetDefault(t *schema.Table, colName, expr string) Change {
	id := catalogidColumn(t.StableID(), colName)
	return newAlterTable(t, ScopeColumn, id, nil, func(opts SerializeOptions) string {
		return opts.kw("ALTER COLUMN ") + Quote(colName) + " " + opts.kw("SET DEFAULT") + " " + expr
	})
}

func NewAlterTableDropDefault(t *schema.Table, colName string) Change {
	id := catalogidColumn(t.StableID(), colName)
	return newAlterTable(t, ScopeColumn, id, nil, func(opts SerializeOptions) string {
		return opts.kw("ALTER COLUMN ") + Quote(colName) + " " + opts.kw("DROP DEFAULT")
	})
}

func NewAlterTableAlterColumnType(t *schema.Table, colName, newType, usingExpr string) Change {
	id := catalogidColumn(t.StableID(), colName)
	return newAlterTable(t, ScopeColumn, id, nil, func(opts SerializeOptions) string {
		s := opts.kw("ALTER COLUMN ") + Quote(colName) + " " + opts.kw("TYPE") + " " + newType
		if usingExpr != "" {
			s += " " + opts.kw("USING") + " " + usingExpr
		}
		return s
	})
}

func NewAlterTableChangeOwner(t *schema.Table, newOwner string) Change {
	return newAlterTable(t, ScopeObject, t.StableID(), []string{catalogid.Role(newOwner)}, func(opts SerializeOptions) string {
		return opts.kw("OWNER TO ") + Quote(newOwner)
	})
}

func NewAlterTableSetLogged(t *schema.Table, unlogged bool) Change {
	return newAlterTable(t, ScopeObject, t.StableID(), nil, func(opts SerializeOptions) string {
		if unlogged {
			return opts.kw("SET UNLOGGED")
		}
		return opts.kw("SET LOGGED")
	})
}

func NewAlterTableSetReplicaIdentity(t *schema.Table, mode string) Change {
	return newAlterTable(t, ScopeObject, t.StableID(), nil, func(opts SerializeOptions) string {
		rep := opts.kw("REPLICA IDENTITY") + " " + opts.kw(mode)
		return rep
	})
}

func NewAlterTableEnableRowSecurity(t *schema.Table, enable bool) Change {
	return newAlterTable(t, ScopeObject, t.StableID(), nil, func(opts SerializeOptions) string {
		if enable {
			return opts.kw("ENABLE ROW LEVEL SECURITY")
		}
		return opts.kw("DISABLE ROW LEVEL SECURITY")
	})
}

func NewAlterTableForceRowSecurity(t *schema.Table, force bool) Change {
	return newAlterTable(t, ScopeObject, t.StableID(), nil, func(opts SerializeOptions) string {
		if force {
			return opts.kw("FORCE ROW LEVEL SECURITY")
		}
		return opts.kw("NO FORCE ROW LEVEL SECURITY")
	})
}

func NewAlterTableSetReloptions(t *schema.Table, opts []string) Change {
	return newAlterTable(t, ScopeObject, t.StableID(), nil, func(o SerializeOptions) string {
		return o.kw("SET") + " (" + strings.Join(opts, ", ") + ")"
	})
}

// NewAlterTableAttachPartition and NewAlterTableDetachPartition create or
// drop a "<parent stableId>/<child stableId>" ID rather than either
// table's own stableId, because the partition attachment itself — not the
// child table's existence — is what's being created or dropped here (spec
// §4.6). Attach also requires the child table's stableId.
func NewAlterTableAttachPartition(p *schema.PartitionAttachment) Change {
	parentID := p.ParentStableID()
	childID := p.ChildStableID()
	a := newAlterTable(&schema.Table{Schema: p.ParentSchema, Name: p.ParentTable}, ScopeObject, parentID+"/"+childID, []string{childID}, func(opts SerializeOptions) string {
		return opts.kw("ATTACH PARTITION ") + QualifiedName(p.ChildSchema, p.ChildTable) + " " + p.PartitionBound
	})
	a.creates = []string{parentID + "/" + childID}
	return a
}

func NewAlterTableDetachPartition(p *schema.PartitionAttachment) Change {
	parentID := p.ParentStableID()
	childID := p.ChildStableID()
	a := newAlterTable(&schema.Table{Schema: p.ParentSchema, Name: p.ParentTable}, ScopeObject, parentID+"/"+childID, nil, func(opts SerializeOptions) string {
		return opts.kw("DETACH PARTITION ") + QualifiedName(p.ChildSchema, p.ChildTable)
	})
	a.creates = nil
	a.drops = []string{parentID + "/" + childID}
	return a
}

func catalogidColumn(tableStableID, colName string) string {
	return catalogid.Column(tableStableID, colName)
}
