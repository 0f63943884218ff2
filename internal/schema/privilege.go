package schema

import "github.com/pgschema/pgdiffcore/internal/catalogid"

// Privilege is one ACL right, e.g. SELECT, INSERT, USAGE, EXECUTE.
type Privilege string

// ObjectPrivilegeSet is the set of privileges one grantee holds on one
// target object, keyed by (target, grantee) per spec §4.6. Diffing reduces
// to a GRANT of added privileges and a REVOKE of removed ones.
type ObjectPrivilegeSet struct {
	TargetStableID string
	TargetKind     ObjectKind
	Grantee        string
	Privileges     map[Privilege]bool // value records WITH GRANT OPTION
}

func (p *ObjectPrivilegeSet) StableID() string {
	return catalogid.ObjectPrivilegeSet(p.TargetStableID, p.Grantee)
}

func (p *ObjectPrivilegeSet) GranteeStableID() string {
	if p.Grantee == "" || p.Grantee == "PUBLIC" {
		return ""
	}
	return catalogid.Role(p.Grantee)
}

// ColumnPrivilegeSet is an ObjectPrivilegeSet scoped to one column
// (GRANT SELECT (col) ON t TO ...).
type ColumnPrivilegeSet struct {
	TargetStableID string
	Column         string
	Grantee        string
	Privileges     map[Privilege]bool
}

func (p *ColumnPrivilegeSet) StableID() string {
	return catalogid.ColumnPrivilegeSet(p.TargetStableID, p.Column, p.Grantee)
}

// DefaultPrivilegeSet is one ALTER DEFAULT PRIVILEGES entry, keyed by
// (grantor, grantee, schema, objectKind). Schema is "" for a global
// (not schema-scoped) default.
type DefaultPrivilegeSet struct {
	Grantor    string
	Grantee    string
	Schema     string
	ObjectKind string // tables, sequences, functions, types, schemas
	Privileges map[Privilege]bool
}

func (p *DefaultPrivilegeSet) StableID() string {
	return catalogid.DefaultPrivilegeSet(p.Grantor, p.Grantee, p.Schema, p.ObjectKind)
}

// Comment is a COMMENT ON ... sub-entity, attached to any object or
// column. It has its own stable ID derived from the parent's so it orders
// independently (spec §3.2).
type Comment struct {
	ParentStableID string
	Text           string
}

func (c *Comment) StableID() string {
	return catalogid.Comment(c.ParentStableID)
}
