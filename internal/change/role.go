package change

import (
	"fmt"
	"strings"

	"github.com/pgschema/pgdiffcore/internal/catalogid"
	schemapkg "github.com/pgschema/pgdiffcore/internal/schema"
)

func roleOptionClause(r *schemapkg.Role) string {
	flag := func(on bool, yes, no string) string {
		if on {
			return yes
		}
		return no
	}
	parts := []string{
		flag(r.Superuser, "SUPERUSER", "NOSUPERUSER"),
		flag(r.CreateDB, "CREATEDB", "NOCREATEDB"),
		flag(r.CreateRole, "CREATEROLE", "NOCREATEROLE"),
		flag(r.Inherit, "INHERIT", "NOINHERIT"),
		flag(r.Login, "LOGIN", "NOLOGIN"),
		flag(r.Replication, "REPLICATION", "NOREPLICATION"),
		flag(r.BypassRLS, "BYPASSRLS", "NOBYPASSRLS"),
		fmt.Sprintf("CONNECTION LIMIT %d", r.ConnectionLimit),
	}
	if r.ValidUntil != nil {
		parts = append(parts, "VALID UNTIL "+QuoteLiteral(*r.ValidUntil))
	}
	return strings.Join(parts, " ")
}

func NewCreateRole(r *schemapkg.Role) *Simple {
	sql := fmt.Sprintf("CREATE ROLE %s WITH %s", Quote(r.Name), roleOptionClause(r))
	return NewSimple(OpCreate, ScopeObject, schemapkg.KindRole, r.StableID(), nil, sql)
}

func NewDropRole(r *schemapkg.Role) *Simple {
	return NewSimple(OpDrop, ScopeObject, schemapkg.KindRole, r.StableID(), nil, fmt.Sprintf("DROP ROLE %s", Quote(r.Name)))
}

func NewAlterRole(r *schemapkg.Role) *Simple {
	sql := fmt.Sprintf("ALTER ROLE %s WITH %s", Quote(r.Name), roleOptionClause(r))
	return NewSimple(OpAlter, ScopeObject, schemapkg.KindRole, r.StableID(), nil, sql)
}

func NewGrantRoleMembership(m *schemapkg.RoleMembership) *Simple {
	sql := fmt.Sprintf("GRANT %s TO %s", Quote(m.Role), Quote(m.Member))
	if m.AdminOption {
		sql += " WITH ADMIN OPTION"
	}
	id := m.StableID()
	requires := []string{catalogid.Role(m.Role), catalogid.Role(m.Member)}
	return NewSimple(OpCreate, ScopeMembership, schemapkg.KindRoleMembership, id, requires, sql)
}

func NewRevokeRoleMembership(m *schemapkg.RoleMembership) *Simple {
	sql := fmt.Sprintf("REVOKE %s FROM %s", Quote(m.Role), Quote(m.Member))
	return NewSimple(OpDrop, ScopeMembership, schemapkg.KindRoleMembership, m.StableID(), nil, sql)
}
