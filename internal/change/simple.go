package change

import "github.com/pgschema/pgdiffcore/internal/schema"

// Simple is a Change whose DDL is a single statement computed once at
// construction time. It covers every kind whose create/drop/alter-field
// shape doesn't need bespoke per-field logic (extensions, languages,
// collations, domains, enums, composite types, ranges, triggers, event
// triggers, rules, policies, publications, subscriptions, role
// memberships, schemas, roles) —
// the differ builds the SQL text with the kind's own knowledge of its
// fields and hands it here.
type Simple struct {
	base
	sql string
}

func (s *Simple) Serialize(opts SerializeOptions) string {
	return s.sql
}

// NewSimple builds a Simple change. requires/creates/drops follow the
// usual convention: a create adds stableID to creates and (for
// dependents) requires its referenced objects; a drop adds stableID to
// drops.
func NewSimple(op Operation, scope Scope, kind schema.ObjectKind, stableID string, requires []string, sql string) *Simple {
	s := &Simple{base: base{op: op, scope: scope, objectType: kind, stableID: stableID, requires: requires}, sql: sql}
	switch op {
	case OpCreate, OpAlter, OpReplace:
		s.creates = []string{stableID}
	case OpDrop:
		s.drops = []string{stableID}
	}
	return s
}
