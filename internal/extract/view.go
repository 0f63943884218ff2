package extract

import (
	"context"
	"database/sql"

	"github.com/pgschema/pgdiffcore/internal/schema"
)

func (c *Collector) buildViews(ctx context.Context, cat *schema.Catalog) error {
	where, args := c.schemaFilter("n.nspname")
	query := `
		SELECT n.nspname, cl.relname, pg_get_userbyid(cl.relowner), pg_get_viewdef(cl.oid),
		       obj_description(cl.oid, 'pg_class')
		FROM pg_class cl
		JOIN pg_namespace n ON n.oid = cl.relnamespace
		WHERE cl.relkind = 'v' AND ` + where
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		v := &schema.View{}
		var comment sql.NullString
		if err := rows.Scan(&v.Schema, &v.Name, &v.Owner, &v.Definition, &comment); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		v.Comment = comment.String
		cat.Views[v.StableID()] = v
	}
	return rows.Err()
}

func (c *Collector) buildMaterializedViews(ctx context.Context, cat *schema.Catalog) error {
	where, args := c.schemaFilter("n.nspname")
	query := `
		SELECT n.nspname, cl.relname, pg_get_userbyid(cl.relowner), pg_get_viewdef(cl.oid),
		       NOT cl.relispopulated, COALESCE(ts.spcname, ''), obj_description(cl.oid, 'pg_class')
		FROM pg_class cl
		JOIN pg_namespace n ON n.oid = cl.relnamespace
		LEFT JOIN pg_tablespace ts ON ts.oid = cl.reltablespace
		WHERE cl.relkind = 'm' AND ` + where
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		v := &schema.MaterializedView{}
		var comment sql.NullString
		if err := rows.Scan(&v.Schema, &v.Name, &v.Owner, &v.Definition, &v.WithNoData, &v.TablespaceName, &comment); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		v.Comment = comment.String
		cat.MaterializedViews[v.StableID()] = v
	}
	return rows.Err()
}
