package extract

import (
	"context"
	"database/sql"

	"github.com/pgschema/pgdiffcore/internal/schema"
)

func (c *Collector) buildSchemas(ctx context.Context, cat *schema.Catalog) error {
	where, args := c.schemaFilter("nspname")
	query := `
		SELECT n.nspname, pg_get_userbyid(n.nspowner), obj_description(n.oid, 'pg_namespace')
		FROM pg_namespace n
		WHERE ` + where
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		s := &schema.Schema{}
		var comment sql.NullString
		if err := rows.Scan(&s.Name, &s.Owner, &comment); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		s.Comment = comment.String
		cat.Schemas[s.StableID()] = s
	}
	return rows.Err()
}

func (c *Collector) buildRoles(ctx context.Context, cat *schema.Catalog) error {
	query := `
		SELECT rolname, rolsuper, rolcreatedb, rolcreaterole, rolinherit, rolcanlogin,
		       rolreplication, rolbypassrls, rolconnlimit, rolvaliduntil::text
		FROM pg_roles
		WHERE rolname NOT LIKE 'pg_%'`
	rows, err := c.DB.QueryContext(ctx, query)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		r := &schema.Role{}
		var validUntil sql.NullString
		if err := rows.Scan(&r.Name, &r.Superuser, &r.CreateDB, &r.CreateRole, &r.Inherit, &r.Login,
			&r.Replication, &r.BypassRLS, &r.ConnectionLimit, &validUntil); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		if validUntil.Valid {
			r.ValidUntil = &validUntil.String
		}
		cat.Roles[r.StableID()] = r
	}
	return rows.Err()
}

func (c *Collector) buildRoleMemberships(ctx context.Context, cat *schema.Catalog) error {
	query := `
		SELECT r.rolname, m.rolname, am.admin_option, g.rolname
		FROM pg_auth_members am
		JOIN pg_roles r ON r.oid = am.roleid
		JOIN pg_roles m ON m.oid = am.member
		LEFT JOIN pg_roles g ON g.oid = am.grantor`
	rows, err := c.DB.QueryContext(ctx, query)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		mem := &schema.RoleMembership{}
		var grantedBy sql.NullString
		if err := rows.Scan(&mem.Role, &mem.Member, &mem.AdminOption, &grantedBy); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		mem.GrantedBy = grantedBy.String
		cat.RoleMemberships[mem.StableID()] = mem
	}
	return rows.Err()
}
