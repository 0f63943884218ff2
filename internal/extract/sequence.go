package extract

import (
	"context"
	"database/sql"

	"github.com/pgschema/pgdiffcore/internal/schema"
)

func (c *Collector) buildSequences(ctx context.Context, cat *schema.Catalog) error {
	where, args := c.schemaFilter("n.nspname")
	query := `
		SELECT n.nspname, s.relname, seq.seqtypid::regtype::text,
		       seq.seqstart::text, seq.seqmin::text, seq.seqmax::text,
		       seq.seqincrement::text, seq.seqcycle, seq.seqcache::text,
		       dn.nspname, dep.relname, a.attname, obj_description(s.oid, 'pg_class')
		FROM pg_sequence seq
		JOIN pg_class s ON s.oid = seq.seqrelid
		JOIN pg_namespace n ON n.oid = s.relnamespace
		LEFT JOIN pg_depend d ON d.objid = s.oid AND d.deptype = 'a'
		LEFT JOIN pg_class dep ON dep.oid = d.refobjid
		LEFT JOIN pg_namespace dn ON dn.oid = dep.relnamespace
		LEFT JOIN pg_attribute a ON a.attrelid = dep.oid AND a.attnum = d.refobjsubid
		WHERE s.relkind = 'S' AND ` + where
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		s := &schema.Sequence{}
		var start, min, max, increment, cache sql.NullString
		var ownedSchema, ownedTable, ownedColumn, comment sql.NullString
		if err := rows.Scan(&s.Schema, &s.Name, &s.DataType, &start, &min, &max, &increment, &s.Cycle, &cache,
			&ownedSchema, &ownedTable, &ownedColumn, &comment); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		s.Comment = comment.String
		s.StartValue = bigInt(start)
		s.MinValue = bigInt(min)
		s.MaxValue = bigInt(max)
		s.Increment = bigInt(increment)
		s.CacheSize = bigInt(cache)
		if ownedTable.Valid && ownedColumn.Valid {
			s.OwnedByTable = ownedTable.String
			s.OwnedByColumn = ownedColumn.String
		}
		cat.Sequences[s.StableID()] = s
	}
	return rows.Err()
}
