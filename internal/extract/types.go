package extract

import (
	"context"
	"database/sql"

	"github.com/pgschema/pgdiffcore/internal/schema"
)

func (c *Collector) buildExtensions(ctx context.Context, cat *schema.Catalog) error {
	query := `
		SELECT e.extname, n.nspname, e.extversion, obj_description(e.oid, 'pg_extension')
		FROM pg_extension e
		JOIN pg_namespace n ON n.oid = e.extnamespace`
	rows, err := c.DB.QueryContext(ctx, query)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		e := &schema.Extension{}
		var comment sql.NullString
		if err := rows.Scan(&e.Name, &e.Schema, &e.Version, &comment); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		e.Comment = comment.String
		cat.Extensions[e.StableID()] = e
	}
	return rows.Err()
}

func (c *Collector) buildLanguages(ctx context.Context, cat *schema.Catalog) error {
	query := `
		SELECT l.lanname, l.lanpltrusted, h.proname, v.proname, obj_description(l.oid, 'pg_language')
		FROM pg_language l
		JOIN pg_proc h ON h.oid = l.lanplcallfoid
		LEFT JOIN pg_proc v ON v.oid = l.lanvalidator
		WHERE l.lanispl`
	rows, err := c.DB.QueryContext(ctx, query)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		l := &schema.Language{}
		var validator, comment sql.NullString
		if err := rows.Scan(&l.Name, &l.Trusted, &l.Handler, &validator, &comment); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		l.Validator = validator.String
		l.Comment = comment.String
		cat.Languages[l.StableID()] = l
	}
	return rows.Err()
}

func (c *Collector) buildCollations(ctx context.Context, cat *schema.Catalog) error {
	where, args := c.schemaFilter("n.nspname")
	query := `
		SELECT n.nspname, co.collname, co.collcollate, co.collprovider::text, co.collisdeterministic,
		       obj_description(co.oid, 'pg_collation')
		FROM pg_collation co
		JOIN pg_namespace n ON n.oid = co.collnamespace
		WHERE ` + where
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		col := &schema.Collation{}
		var provider string
		var comment sql.NullString
		if err := rows.Scan(&col.Schema, &col.Name, &col.Locale, &provider, &col.Deterministic, &comment); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		col.Comment = comment.String
		switch provider {
		case "i":
			col.Provider = "icu"
		case "b":
			col.Provider = "builtin"
		default:
			col.Provider = "libc"
		}
		cat.Collations[col.StableID()] = col
	}
	return rows.Err()
}

func (c *Collector) buildDomains(ctx context.Context, cat *schema.Catalog) error {
	where, args := c.schemaFilter("n.nspname")
	query := `
		SELECT n.nspname, t.typname, format_type(t.typbasetype, t.typtypmod),
		       t.typnotnull, t.typdefault, obj_description(t.oid, 'pg_type')
		FROM pg_type t
		JOIN pg_namespace n ON n.oid = t.typnamespace
		WHERE t.typtype = 'd' AND ` + where
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		d := &schema.Domain{}
		var def, comment sql.NullString
		if err := rows.Scan(&d.Schema, &d.Name, &d.BaseType, &d.NotNull, &def, &comment); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		d.Default = nullStringPtr(def)
		d.Comment = comment.String
		cat.Domains[d.StableID()] = d
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return c.buildDomainConstraints(ctx, cat)
}

func (c *Collector) buildDomainConstraints(ctx context.Context, cat *schema.Catalog) error {
	where, args := c.schemaFilter("n.nspname")
	query := `
		SELECT n.nspname, t.typname, con.conname, pg_get_constraintdef(con.oid)
		FROM pg_constraint con
		JOIN pg_type t ON t.oid = con.contypid
		JOIN pg_namespace n ON n.oid = t.typnamespace
		WHERE ` + where
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		var schemaName, typeName, name, def string
		if err := rows.Scan(&schemaName, &typeName, &name, &def); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		id := (&schema.Domain{Schema: schemaName, Name: typeName}).StableID()
		if d, ok := cat.Domains[id]; ok {
			d.Constraints = append(d.Constraints, schema.DomainConstraint{Name: name, Definition: def})
		}
	}
	return rows.Err()
}

func (c *Collector) buildEnums(ctx context.Context, cat *schema.Catalog) error {
	where, args := c.schemaFilter("n.nspname")
	query := `
		SELECT n.nspname, t.typname, e.enumlabel, obj_description(t.oid, 'pg_type')
		FROM pg_type t
		JOIN pg_namespace n ON n.oid = t.typnamespace
		JOIN pg_enum e ON e.enumtypid = t.oid
		WHERE t.typtype = 'e' AND ` + where + `
		ORDER BY n.nspname, t.typname, e.enumsortorder`
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		var schemaName, typeName, value string
		var comment sql.NullString
		if err := rows.Scan(&schemaName, &typeName, &value, &comment); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		id := (&schema.Enum{Schema: schemaName, Name: typeName}).StableID()
		e, ok := cat.Enums[id]
		if !ok {
			e = &schema.Enum{Schema: schemaName, Name: typeName}
			cat.Enums[id] = e
		}
		e.Values = append(e.Values, value)
		e.Comment = comment.String
	}
	return rows.Err()
}

func (c *Collector) buildComposites(ctx context.Context, cat *schema.Catalog) error {
	where, args := c.schemaFilter("n.nspname")
	query := `
		SELECT n.nspname, t.typname, a.attname, format_type(a.atttypid, a.atttypmod), a.attnum,
		       obj_description(t.oid, 'pg_type')
		FROM pg_type t
		JOIN pg_namespace n ON n.oid = t.typnamespace
		JOIN pg_class cl ON cl.oid = t.typrelid
		JOIN pg_attribute a ON a.attrelid = cl.oid AND a.attnum > 0 AND NOT a.attisdropped
		WHERE t.typtype = 'c' AND ` + where + `
		ORDER BY n.nspname, t.typname, a.attnum`
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		var schemaName, typeName, colName, colType string
		var pos int
		var comment sql.NullString
		if err := rows.Scan(&schemaName, &typeName, &colName, &colType, &pos, &comment); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		id := (&schema.Composite{Schema: schemaName, Name: typeName}).StableID()
		comp, ok := cat.Composites[id]
		if !ok {
			comp = &schema.Composite{Schema: schemaName, Name: typeName}
			cat.Composites[id] = comp
		}
		comp.Columns = append(comp.Columns, schema.CompositeColumn{Name: colName, DataType: colType, Position: pos})
		comp.Comment = comment.String
	}
	return rows.Err()
}

func (c *Collector) buildRanges(ctx context.Context, cat *schema.Catalog) error {
	where, args := c.schemaFilter("n.nspname")
	query := `
		SELECT n.nspname, t.typname, format_type(r.rngsubtype, NULL), co.collname,
		       obj_description(t.oid, 'pg_type')
		FROM pg_range r
		JOIN pg_type t ON t.oid = r.rngtypid
		JOIN pg_namespace n ON n.oid = t.typnamespace
		LEFT JOIN pg_collation co ON co.oid = r.rngcollation
		WHERE ` + where
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		r := &schema.Range{}
		var collation, comment sql.NullString
		if err := rows.Scan(&r.Schema, &r.Name, &r.Subtype, &collation, &comment); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		r.Collation = collation.String
		r.Comment = comment.String
		cat.Ranges[r.StableID()] = r
	}
	return rows.Err()
}
