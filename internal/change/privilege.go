package change

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pgschema/pgdiffcore/internal/schema"
)

func privilegeList(privs map[schema.Privilege]bool) string {
	names := make([]string, 0, len(privs))
	for p := range privs {
		names = append(names, string(p))
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func granteeClause(opts SerializeOptions, grantee string) string {
	if grantee == "" || strings.EqualFold(grantee, "PUBLIC") {
		return opts.kw("PUBLIC")
	}
	return Quote(grantee)
}

// Grant emits GRANT ... ON <targetKind> <target> TO <grantee>, one
// change per (target, grantee) privilege delta added (spec §4.6).
type Grant struct {
	base
	TargetKind   schema.ObjectKind
	TargetRef    string // already-qualified object reference, e.g. `"s"."t"`
	Privileges   map[schema.Privilege]bool
	Grantee      string
	ColumnName   string // non-empty for column-level grants
}

func NewGrant(kind schema.ObjectKind, stableID, targetRef, grantee, column string, privs map[schema.Privilege]bool, requires []string) *Grant {
	scope := ScopePrivilege
	return &Grant{
		base:       base{op: OpCreate, scope: scope, objectType: kind, stableID: stableID, requires: requires, creates: []string{stableID}},
		TargetKind: kind,
		TargetRef:  targetRef,
		Privileges: privs,
		Grantee:    grantee,
		ColumnName: column,
	}
}

func (g *Grant) Serialize(opts SerializeOptions) string {
	onClause := g.TargetRef
	if g.ColumnName != "" {
		onClause = fmt.Sprintf("%s (%s)", g.TargetRef, Quote(g.ColumnName))
	}
	return fmt.Sprintf("%s %s %s %s %s %s", opts.kw("GRANT"), privilegeList(g.Privileges), opts.kw("ON"), onClause, opts.kw("TO"), granteeClause(opts, g.Grantee))
}

// Revoke is Grant's inverse.
type Revoke struct {
	base
	TargetKind schema.ObjectKind
	TargetRef  string
	Privileges map[schema.Privilege]bool
	Grantee    string
	ColumnName string
}

func NewRevoke(kind schema.ObjectKind, stableID, targetRef, grantee, column string, privs map[schema.Privilege]bool) *Revoke {
	return &Revoke{
		base:       base{op: OpDrop, scope: ScopePrivilege, objectType: kind, stableID: stableID, drops: []string{stableID}},
		TargetKind: kind,
		TargetRef:  targetRef,
		Privileges: privs,
		Grantee:    grantee,
		ColumnName: column,
	}
}

func (r *Revoke) Serialize(opts SerializeOptions) string {
	onClause := r.TargetRef
	if r.ColumnName != "" {
		onClause = fmt.Sprintf("%s (%s)", r.TargetRef, Quote(r.ColumnName))
	}
	return fmt.Sprintf("%s %s %s %s %s %s", opts.kw("REVOKE"), privilegeList(r.Privileges), opts.kw("ON"), onClause, opts.kw("FROM"), granteeClause(opts, r.Grantee))
}

// AlterDefaultPrivileges emits ALTER DEFAULT PRIVILEGES [FOR ROLE
// grantor] [IN SCHEMA schema] GRANT|REVOKE ... ON <objectKind>S TO
// grantee.
type AlterDefaultPrivileges struct {
	base
	Grantor, Grantee, Schema, ObjectKindName string
	Privileges                               map[schema.Privilege]bool
	Revoking                                 bool
}

func NewAlterDefaultPrivileges(stableID, grantor, grantee, schemaName, objectKind string, privs map[schema.Privilege]bool, revoking bool) *AlterDefaultPrivileges {
	b := base{op: OpAlter, scope: ScopePrivilege, objectType: schema.KindDefaultPrivilegeSet, stableID: stableID}
	if revoking {
		b.drops = []string{stableID}
	} else {
		b.creates = []string{stableID}
	}
	return &AlterDefaultPrivileges{base: b, Grantor: grantor, Grantee: grantee, Schema: schemaName, ObjectKindName: objectKind, Privileges: privs, Revoking: revoking}
}

func (a *AlterDefaultPrivileges) Serialize(opts SerializeOptions) string {
	var b strings.Builder
	b.WriteString(opts.kw("ALTER DEFAULT PRIVILEGES"))
	if a.Grantor != "" {
		b.WriteString(" " + opts.kw("FOR ROLE") + " " + Quote(a.Grantor))
	}
	if a.Schema != "" {
		b.WriteString(" " + opts.kw("IN SCHEMA") + " " + Quote(a.Schema))
	}
	if a.Revoking {
		b.WriteString(" " + opts.kw("REVOKE") + " " + privilegeList(a.Privileges) + " " + opts.kw("ON") + " " + opts.kw(a.ObjectKindName) + " " + opts.kw("FROM") + " " + granteeClause(opts, a.Grantee))
	} else {
		b.WriteString(" " + opts.kw("GRANT") + " " + privilegeList(a.Privileges) + " " + opts.kw("ON") + " " + opts.kw(a.ObjectKindName) + " " + opts.kw("TO") + " " + granteeClause(opts, a.Grantee))
	}
	return b.String()
}
