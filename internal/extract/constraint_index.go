package extract

import (
	"context"
	"database/sql"

	"github.com/pgschema/pgdiffcore/internal/schema"
)

func (c *Collector) buildConstraints(ctx context.Context, cat *schema.Catalog) error {
	where, args := c.schemaFilter("n.nspname")
	query := `
		SELECT n.nspname, cl.relname, con.conname, con.contype::text,
		       (SELECT array_agg(a.attname ORDER BY k.ord)
		          FROM unnest(con.conkey) WITH ORDINALITY AS k(attnum, ord)
		          JOIN pg_attribute a ON a.attrelid = con.conrelid AND a.attnum = k.attnum)::text,
		       rn.nspname, rcl.relname,
		       (SELECT array_agg(a.attname ORDER BY k.ord)
		          FROM unnest(con.confkey) WITH ORDINALITY AS k(attnum, ord)
		          JOIN pg_attribute a ON a.attrelid = con.confrelid AND a.attnum = k.attnum)::text,
		       con.confdeltype::text, con.confupdtype::text,
		       pg_get_expr(con.conbin, con.conrelid), con.condeferrable, con.condeferred,
		       obj_description(con.oid, 'pg_constraint')
		FROM pg_constraint con
		JOIN pg_class cl ON cl.oid = con.conrelid
		JOIN pg_namespace n ON n.oid = cl.relnamespace
		LEFT JOIN pg_class rcl ON rcl.oid = con.confrelid
		LEFT JOIN pg_namespace rn ON rn.oid = rcl.relnamespace
		WHERE con.contype IN ('p', 'u', 'f', 'c', 'x') AND ` + where
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		con := &schema.Constraint{}
		var contype string
		var columns, refColumns sql.NullString
		var refSchema, refTable, deleteRule, updateRule, checkClause sql.NullString
		var comment sql.NullString
		if err := rows.Scan(&con.Schema, &con.Table, &con.Name, &contype, &columns,
			&refSchema, &refTable, &refColumns, &deleteRule, &updateRule, &checkClause,
			&con.Deferrable, &con.InitiallyDeferred, &comment); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		con.Columns = textArray(columns)
		con.ReferencedSchema = refSchema.String
		con.ReferencedTable = refTable.String
		con.ReferencedColumns = textArray(refColumns)
		con.CheckClause = checkClause.String
		con.Comment = comment.String
		switch contype {
		case "p":
			con.Type = schema.ConstraintPrimaryKey
		case "u":
			con.Type = schema.ConstraintUnique
		case "f":
			con.Type = schema.ConstraintForeignKey
			con.DeleteRule = foreignKeyActionName(deleteRule.String)
			con.UpdateRule = foreignKeyActionName(updateRule.String)
		case "c":
			con.Type = schema.ConstraintCheck
		case "x":
			con.Type = schema.ConstraintExclusion
		}
		cat.Constraints[con.StableID()] = con
	}
	return rows.Err()
}

func foreignKeyActionName(code string) string {
	switch code {
	case "c":
		return "CASCADE"
	case "n":
		return "SET NULL"
	case "d":
		return "SET DEFAULT"
	case "r":
		return "RESTRICT"
	default:
		return "NO ACTION"
	}
}

func (c *Collector) buildIndexes(ctx context.Context, cat *schema.Catalog) error {
	where, args := c.schemaFilter("n.nspname")
	query := `
		SELECT n.nspname, cl.relname, ic.relname, am.amname, ix.indisunique, ix.indisprimary,
		       pg_get_expr(ix.indpred, ix.indrelid), pg_get_indexdef(ix.indexrelid),
		       obj_description(ic.oid, 'pg_class')
		FROM pg_index ix
		JOIN pg_class cl ON cl.oid = ix.indrelid
		JOIN pg_class ic ON ic.oid = ix.indexrelid
		JOIN pg_namespace n ON n.oid = cl.relnamespace
		JOIN pg_am am ON am.oid = ic.relam
		WHERE cl.relkind IN ('r', 'p', 'm') AND NOT ix.indisexclusion AND ` + where
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		idx := &schema.Index{}
		var predicate, comment sql.NullString
		if err := rows.Scan(&idx.Schema, &idx.Table, &idx.Name, &idx.Method, &idx.Unique, &idx.Primary,
			&predicate, &idx.Definition, &comment); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		idx.Where = predicate.String
		idx.Comment = comment.String
		cat.Indexes[idx.StableID()] = idx
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return c.buildIndexColumns(ctx, cat)
}

func (c *Collector) buildIndexColumns(ctx context.Context, cat *schema.Catalog) error {
	query := `
		SELECT n.nspname, cl.relname, ic.relname, k.ord,
		       a.attname, pg_get_indexdef(ix.indexrelid, k.ord::int, true),
		       (ix.indoption[k.ord - 1] & 1) <> 0, (ix.indoption[k.ord - 1] & 2) <> 0,
		       opc.opcname
		FROM pg_index ix
		JOIN pg_class cl ON cl.oid = ix.indrelid
		JOIN pg_class ic ON ic.oid = ix.indexrelid
		JOIN pg_namespace n ON n.oid = cl.relnamespace
		CROSS JOIN LATERAL unnest(ix.indkey) WITH ORDINALITY AS k(attnum, ord)
		LEFT JOIN pg_attribute a ON a.attrelid = cl.oid AND a.attnum = k.attnum AND k.attnum <> 0
		LEFT JOIN pg_opclass opc ON opc.oid = ix.indclass[k.ord - 1]
		WHERE NOT ix.indisexclusion
		ORDER BY n.nspname, cl.relname, ic.relname, k.ord`
	rows, err := c.DB.QueryContext(ctx, query)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		var schemaName, tableName, indexName string
		var pos int
		var colName, expr sql.NullString
		var desc, nullsFirst bool
		var opclass sql.NullString
		if err := rows.Scan(&schemaName, &tableName, &indexName, &pos, &colName, &expr, &desc, &nullsFirst, &opclass); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		id := (&schema.Index{Schema: schemaName, Name: indexName}).StableID()
		idx, ok := cat.Indexes[id]
		if !ok {
			continue
		}
		col := schema.IndexColumn{Position: pos, Descending: desc, NullsFirst: nullsFirst, OpClass: opclass.String}
		if colName.Valid {
			col.Name = colName.String
		} else {
			col.Expression = expr.String
		}
		idx.Columns = append(idx.Columns, col)
	}
	return rows.Err()
}
