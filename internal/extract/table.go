package extract

import (
	"context"
	"database/sql"

	"github.com/pgschema/pgdiffcore/internal/schema"
)

func (c *Collector) buildTables(ctx context.Context, cat *schema.Catalog) error {
	where, args := c.schemaFilter("n.nspname")
	query := `
		SELECT n.nspname, cl.relname, pg_get_userbyid(cl.relowner), cl.relpersistence = 'u',
		       cl.relrowsecurity, cl.relforcerowsecurity, cl.relreplident::text,
		       cl.relispartition, pt.partstrat::text, pg_get_expr(pt.partexprs, cl.oid),
		       cl.reloptions, obj_description(cl.oid, 'pg_class')
		FROM pg_class cl
		JOIN pg_namespace n ON n.oid = cl.relnamespace
		LEFT JOIN pg_partitioned_table pt ON pt.partrelid = cl.oid
		WHERE cl.relkind IN ('r', 'p') AND ` + where
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		t := &schema.Table{}
		var replident sql.NullString
		var strategy, partKey sql.NullString
		var reloptions sql.NullString
		var comment sql.NullString
		if err := rows.Scan(&t.Schema, &t.Name, &t.Owner, &t.Unlogged, &t.RLSEnabled, &t.RLSForced, &replident,
			&t.IsPartitioned, &strategy, &partKey, &reloptions, &comment); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		switch replident.String {
		case "f":
			t.ReplicaIdentity = "FULL"
		case "n":
			t.ReplicaIdentity = "NOTHING"
		case "i":
			t.ReplicaIdentity = "INDEX"
		default:
			t.ReplicaIdentity = "DEFAULT"
		}
		if strategy.Valid {
			switch strategy.String {
			case "r":
				t.PartitionStrategy = "RANGE"
			case "l":
				t.PartitionStrategy = "LIST"
			case "h":
				t.PartitionStrategy = "HASH"
			}
			t.PartitionKey = partKey.String
		}
		t.Reloptions = textArray(reloptions)
		t.Comment = comment.String
		cat.Tables[t.StableID()] = t
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return c.buildPartitionAttachments(ctx, cat)
}

func (c *Collector) buildPartitionAttachments(ctx context.Context, cat *schema.Catalog) error {
	query := `
		SELECT pn.nspname, p.relname, cn.nspname, ch.relname, pg_get_expr(ch.relpartbound, ch.oid)
		FROM pg_inherits i
		JOIN pg_class ch ON ch.oid = i.inhrelid
		JOIN pg_class p ON p.oid = i.inhparent
		JOIN pg_namespace pn ON pn.oid = p.relnamespace
		JOIN pg_namespace cn ON cn.oid = ch.relnamespace
		WHERE ch.relispartition`
	rows, err := c.DB.QueryContext(ctx, query)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		a := &schema.PartitionAttachment{}
		if err := rows.Scan(&a.ParentSchema, &a.ParentTable, &a.ChildSchema, &a.ChildTable, &a.PartitionBound); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		cat.PartitionAttachments = append(cat.PartitionAttachments, a)
	}
	return rows.Err()
}

func (c *Collector) buildColumns(ctx context.Context, cat *schema.Catalog) error {
	where, args := c.schemaFilter("n.nspname")
	query := `
		SELECT n.nspname, cl.relname, a.attname, a.attnum,
		       format_type(a.atttypid, a.atttypmod), NOT a.attnotnull,
		       pg_get_expr(ad.adbin, ad.adrelid),
		       a.attidentity::text, seq.seqstart::text, seq.seqincrement::text, seq.seqmin::text, seq.seqmax::text, seq.seqcycle,
		       a.attgenerated::text, pg_get_expr(ad.adbin, ad.adrelid),
		       co.collname,
		       col_description(cl.oid, a.attnum)
		FROM pg_attribute a
		JOIN pg_class cl ON cl.oid = a.attrelid
		JOIN pg_namespace n ON n.oid = cl.relnamespace
		LEFT JOIN pg_attrdef ad ON ad.adrelid = a.attrelid AND ad.adnum = a.attnum
		LEFT JOIN pg_depend dep ON dep.refobjid = cl.oid AND dep.refobjsubid = a.attnum AND dep.deptype = 'i'
		LEFT JOIN pg_sequence seq ON seq.seqrelid = dep.objid
		LEFT JOIN pg_collation co ON co.oid = a.attcollation AND co.collname <> 'default'
		WHERE a.attnum > 0 AND NOT a.attisdropped AND cl.relkind IN ('r', 'p') AND ` + where + `
		ORDER BY n.nspname, cl.relname, a.attnum`
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		var schemaName, tableName string
		col := &schema.Column{}
		var defaultExpr, identityKind, idStart, idIncr, idMin, idMax, generatedKind, generatedExpr, collation, comment sql.NullString
		var idCycle sql.NullBool
		if err := rows.Scan(&schemaName, &tableName, &col.Name, &col.Position, &col.DataType, &col.IsNullable,
			&defaultExpr, &identityKind, &idStart, &idIncr, &idMin, &idMax, &idCycle,
			&generatedKind, &generatedExpr, &collation, &comment); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		col.CollationName = collation.String
		col.Comment = comment.String
		if generatedKind.String == "s" {
			col.Generated = &schema.GeneratedExpr{Expression: generatedExpr.String, Stored: true}
		} else {
			col.DefaultValue = nullStringPtr(defaultExpr)
		}
		if identityKind.String == "a" || identityKind.String == "d" {
			generation := "BY DEFAULT"
			if identityKind.String == "a" {
				generation = "ALWAYS"
			}
			col.Identity = &schema.Identity{
				Generation: generation,
				Start:      bigInt(idStart),
				Increment:  bigInt(idIncr),
				Minimum:    bigInt(idMin),
				Maximum:    bigInt(idMax),
				Cycle:      idCycle.Valid && idCycle.Bool,
			}
		}
		tableID := (&schema.Table{Schema: schemaName, Name: tableName}).StableID()
		if t, ok := cat.Tables[tableID]; ok {
			t.Columns = append(t.Columns, col)
		}
	}
	return rows.Err()
}
