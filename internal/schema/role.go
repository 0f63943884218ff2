package schema

import "github.com/pgschema/pgdiffcore/internal/catalogid"

// Role is a database role (CREATE ROLE); covers both login roles ("users")
// and group roles in PostgreSQL's unified role model.
type Role struct {
	Name            string
	Superuser       bool
	CreateDB        bool
	CreateRole      bool
	Inherit         bool
	Login           bool
	Replication     bool
	BypassRLS       bool
	ConnectionLimit int // -1 means unlimited
	ValidUntil      *string
}

func (r *Role) StableID() string {
	return catalogid.Role(r.Name)
}

// RoleMembership is one GRANT role TO member edge (pg_auth_members).
type RoleMembership struct {
	Role       string
	Member     string
	AdminOption bool
	GrantedBy  string
}

func (m *RoleMembership) StableID() string {
	return catalogid.RoleMembership(m.Role, m.Member)
}
