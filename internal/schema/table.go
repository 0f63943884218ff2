package schema

import "github.com/pgschema/pgdiffcore/internal/catalogid"

// Table is a base table (CREATE TABLE), including partitioned tables and
// partitions. Indexes, triggers, and RLS policies are modeled as
// first-class top-level objects keyed by their own stable ID (so they can
// be ordered independently in the dependency graph per spec §3.2) but are
// also reachable here for convenience during extraction and column-level
// diffing.
type Table struct {
	Schema            string
	Name              string
	Owner             string
	Columns           []*Column
	Unlogged          bool
	RLSEnabled        bool
	RLSForced         bool
	ReplicaIdentity   string // DEFAULT, FULL, NOTHING, INDEX
	IsPartitioned     bool
	PartitionStrategy string // RANGE, LIST, HASH
	PartitionKey      string
	Reloptions        []string // "key=value" pairs; set-equality, see differ.reloptionsEqual
	Comment           string
}

func (t *Table) StableID() string {
	return catalogid.Table(t.Schema, t.Name)
}

func (t *Table) OwnerStableID() string {
	return catalogid.Role(t.Owner)
}

// Column returns the column named name, or nil.
func (t *Table) Column(name string) *Column {
	for _, c := range t.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ColumnsByName indexes Columns by name for diffing.
func (t *Table) ColumnsByName() map[string]*Column {
	m := make(map[string]*Column, len(t.Columns))
	for _, c := range t.Columns {
		m[c.Name] = c
	}
	return m
}

// PartitionAttachment records a partition child's attachment to its parent
// (ALTER TABLE ... ATTACH PARTITION), modeled separately from Table because
// the attachment itself — not the child table's existence — is what the
// differ treats as non-alterable (spec §4.6: a changed partition bound
// forces detach+reattach, not an ALTER).
type PartitionAttachment struct {
	ParentSchema   string
	ParentTable    string
	ChildSchema    string
	ChildTable     string
	PartitionBound string
}

func (p *PartitionAttachment) ParentStableID() string {
	return catalogid.Table(p.ParentSchema, p.ParentTable)
}

func (p *PartitionAttachment) ChildStableID() string {
	return catalogid.Table(p.ChildSchema, p.ChildTable)
}
