package extract

import (
	"context"
	"database/sql"

	"github.com/pgschema/pgdiffcore/internal/schema"
)

func (c *Collector) buildEventTriggers(ctx context.Context, cat *schema.Catalog) error {
	query := `
		SELECT e.evtname, e.evtevent, e.evttags, n.nspname, p.proname, e.evtenabled, obj_description(e.oid, 'pg_event_trigger')
		FROM pg_event_trigger e
		JOIN pg_proc p ON p.oid = e.evtfoid
		JOIN pg_namespace n ON n.oid = p.pronamespace`
	rows, err := c.DB.QueryContext(ctx, query)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		e := &schema.EventTrigger{}
		var tags sql.NullString
		var comment sql.NullString
		if err := rows.Scan(&e.Name, &e.Event, &tags, &e.FunctionSchema, &e.Function, &e.Enabled, &comment); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		e.Tags = textArray(tags)
		e.Comment = comment.String
		cat.EventTriggers[e.StableID()] = e
	}
	return rows.Err()
}

func (c *Collector) buildPublications(ctx context.Context, cat *schema.Catalog) error {
	query := `
		SELECT p.pubname, pg_get_userbyid(p.pubowner), p.puballtables,
		       p.pubinsert, p.pubupdate, p.pubdelete, p.pubtruncate,
		       obj_description(p.oid, 'pg_publication')
		FROM pg_publication p`
	rows, err := c.DB.QueryContext(ctx, query)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		p := &schema.Publication{}
		var comment sql.NullString
		if err := rows.Scan(&p.Name, &p.Owner, &p.AllTables, &p.PublishInsert, &p.PublishUpdate,
			&p.PublishDelete, &p.PublishTruncate, &comment); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		p.Comment = comment.String
		cat.Publications[p.StableID()] = p
	}
	if err := rows.Err(); err != nil {
		return err
	}

	tq := `
		SELECT p.pubname, n.nspname, cl.relname
		FROM pg_publication_rel pr
		JOIN pg_publication p ON p.oid = pr.prpubid
		JOIN pg_class cl ON cl.oid = pr.prrelid
		JOIN pg_namespace n ON n.oid = cl.relnamespace
		ORDER BY p.pubname, n.nspname, cl.relname`
	trows, err := c.DB.QueryContext(ctx, tq)
	if err != nil {
		return &ExtractionError{Query: tq, Err: err}
	}
	defer trows.Close()
	for trows.Next() {
		var pubName, tblSchema, tblName string
		if err := trows.Scan(&pubName, &tblSchema, &tblName); err != nil {
			return &ExtractionError{Query: tq, Err: err}
		}
		id := (&schema.Publication{Name: pubName}).StableID()
		if p, ok := cat.Publications[id]; ok {
			p.Tables = append(p.Tables, tblSchema+"."+tblName)
		}
	}
	return trows.Err()
}

func (c *Collector) buildSubscriptions(ctx context.Context, cat *schema.Catalog) error {
	query := `
		SELECT s.subname, pg_get_userbyid(s.subowner), s.subconninfo, s.subpublications,
		       s.subenabled, s.subslotname, obj_description(s.oid, 'pg_subscription')
		FROM pg_subscription s`
	rows, err := c.DB.QueryContext(ctx, query)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		s := &schema.Subscription{}
		var pubs, slotName, comment sql.NullString
		if err := rows.Scan(&s.Name, &s.Owner, &s.ConnectionInfo, &pubs, &s.Enabled, &slotName, &comment); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		s.Publications = textArray(pubs)
		s.SlotName = slotName.String
		s.Comment = comment.String
		cat.Subscriptions[s.StableID()] = s
	}
	return rows.Err()
}
