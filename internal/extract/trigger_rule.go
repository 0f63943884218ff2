package extract

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pgschema/pgdiffcore/internal/schema"
)

func (c *Collector) buildTriggers(ctx context.Context, cat *schema.Catalog) error {
	where, args := c.schemaFilter("n.nspname")
	query := `
		SELECT n.nspname, cl.relname, t.tgname, t.tgtype,
		       pn.nspname, p.proname, pg_get_expr(t.tgqual, t.tgrelid),
		       (SELECT array_agg(a.attname ORDER BY ord)
		          FROM unnest(t.tgattr) WITH ORDINALITY AS u(attnum, ord)
		          JOIN pg_attribute a ON a.attrelid = t.tgrelid AND a.attnum = u.attnum)::text,
		       obj_description(t.oid, 'pg_trigger')
		FROM pg_trigger t
		JOIN pg_class cl ON cl.oid = t.tgrelid
		JOIN pg_namespace n ON n.oid = cl.relnamespace
		JOIN pg_proc p ON p.oid = t.tgfoid
		JOIN pg_namespace pn ON pn.oid = p.pronamespace
		WHERE NOT t.tgisinternal AND ` + where
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		t := &schema.Trigger{}
		var tgtype int
		var condition, updateColumns, comment sql.NullString
		if err := rows.Scan(&t.Schema, &t.Table, &t.Name, &tgtype,
			&t.FunctionSchema, &t.Function, &condition, &updateColumns, &comment); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		t.Condition = condition.String
		t.UpdateColumns = textArray(updateColumns)
		t.Comment = comment.String
		decodeTriggerType(tgtype, t)
		cat.Triggers[t.StableID()] = t
	}
	return rows.Err()
}

// decodeTriggerType unpacks the tgtype bitmask documented under
// pg_trigger: bit 0 ROW, bit 1 BEFORE, bit 6 INSTEAD OF (else AFTER),
// bits 2-5 select INSERT/DELETE/UPDATE/TRUNCATE.
func decodeTriggerType(tgtype int, t *schema.Trigger) {
	const (
		row       = 1 << 0
		before    = 1 << 1
		insert    = 1 << 2
		del       = 1 << 3
		update    = 1 << 4
		truncate  = 1 << 5
		insteadOf = 1 << 6
	)
	switch {
	case tgtype&insteadOf != 0:
		t.Timing = schema.TriggerInsteadOf
	case tgtype&before != 0:
		t.Timing = schema.TriggerBefore
	default:
		t.Timing = schema.TriggerAfter
	}
	if tgtype&row != 0 {
		t.Level = schema.TriggerRow
	} else {
		t.Level = schema.TriggerStatement
	}
	if tgtype&insert != 0 {
		t.Events = append(t.Events, schema.TriggerInsert)
	}
	if tgtype&update != 0 {
		t.Events = append(t.Events, schema.TriggerUpdate)
	}
	if tgtype&del != 0 {
		t.Events = append(t.Events, schema.TriggerDelete)
	}
	if tgtype&truncate != 0 {
		t.Events = append(t.Events, schema.TriggerTruncate)
	}
}

func (c *Collector) buildRules(ctx context.Context, cat *schema.Catalog) error {
	where, args := c.schemaFilter("n.nspname")
	query := `
		SELECT n.nspname, cl.relname, r.rulename, r.ev_type::text, r.is_instead,
		       pg_get_ruledef(r.oid), obj_description(r.oid, 'pg_rewrite')
		FROM pg_rewrite r
		JOIN pg_class cl ON cl.oid = r.ev_class
		JOIN pg_namespace n ON n.oid = cl.relnamespace
		WHERE r.rulename <> '_RETURN' AND ` + where
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		r := &schema.Rule{}
		var evType string
		var comment sql.NullString
		if err := rows.Scan(&r.Schema, &r.Table, &r.Name, &evType, &r.Instead, &r.Definition, &comment); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		r.Comment = comment.String
		switch evType {
		case "1":
			r.Event = "SELECT"
		case "2":
			r.Event = "UPDATE"
		case "3":
			r.Event = "INSERT"
		case "4":
			r.Event = "DELETE"
		}
		if idx := strings.Index(r.Definition, " WHERE "); idx >= 0 {
			r.Condition = strings.TrimSpace(r.Definition[idx+len(" WHERE "):])
		}
		cat.Rules[r.StableID()] = r
	}
	return rows.Err()
}
