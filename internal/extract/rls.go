package extract

import (
	"context"
	"database/sql"

	"github.com/pgschema/pgdiffcore/internal/schema"
)

func (c *Collector) buildRLSPolicies(ctx context.Context, cat *schema.Catalog) error {
	where, args := c.schemaFilter("n.nspname")
	query := `
		SELECT n.nspname, cl.relname, pol.polname, pol.polcmd::text, pol.polpermissive,
		       (SELECT array_agg(rolname ORDER BY rolname)
		          FROM unnest(pol.polroles) AS r(roleoid)
		          JOIN pg_roles ON pg_roles.oid = r.roleoid)::text,
		       pg_get_expr(pol.polqual, pol.polrelid), pg_get_expr(pol.polwithcheck, pol.polrelid),
		       obj_description(pol.oid, 'pg_policy')
		FROM pg_policy pol
		JOIN pg_class cl ON cl.oid = pol.polrelid
		JOIN pg_namespace n ON n.oid = cl.relnamespace
		WHERE ` + where
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		p := &schema.RLSPolicy{}
		var cmd string
		var roles, using, withCheck, comment sql.NullString
		if err := rows.Scan(&p.Schema, &p.Table, &p.Name, &cmd, &p.Permissive, &roles, &using, &withCheck, &comment); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		p.Roles = textArray(roles)
		if len(p.Roles) == 0 {
			p.Roles = []string{"public"}
		}
		p.Using = using.String
		p.WithCheck = withCheck.String
		p.Comment = comment.String
		switch cmd {
		case "r":
			p.Command = schema.PolicySelect
		case "a":
			p.Command = schema.PolicyInsert
		case "w":
			p.Command = schema.PolicyUpdate
		case "d":
			p.Command = schema.PolicyDelete
		default:
			p.Command = schema.PolicyAll
		}
		cat.RLSPolicies[p.StableID()] = p
	}
	return rows.Err()
}
