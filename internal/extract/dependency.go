package extract

import (
	"context"
	"database/sql"

	"github.com/pgschema/pgdiffcore/internal/schema"
)

// buildDependencyEdges resolves pg_depend into the catalog's advisory
// dependency graph (spec §3.4). The "objects" CTE maps every catalog oid
// this package knows how to extract to the exact stable-ID string its own
// builder would produce, quoted the same way catalogid.Quote does ("…"
// with embedded quotes doubled) rather than via quote_ident, so the
// strings compare equal to the map keys the rest of extraction populates.
// Endpoints the CTE doesn't recognize (shared-catalog objects, internal
// pg_depend rows, temp-table noise) are simply absent from the join and
// the edge is dropped, matching the resolver's tolerance for unknown
// dependency endpoints.
func (c *Collector) buildDependencyEdges(ctx context.Context, cat *schema.Catalog) error {
	query := `
		WITH objects AS (
			SELECT 'pg_class'::regclass::oid AS classid, cl.oid AS objid,
			       CASE cl.relkind
			           WHEN 'r' THEN 'table:'
			           WHEN 'p' THEN 'table:'
			           WHEN 'v' THEN 'view:'
			           WHEN 'm' THEN 'materializedView:'
			           WHEN 'S' THEN 'sequence:'
			           WHEN 'i' THEN 'index:'
			       END || '"' || replace(n.nspname, '"', '""') || '".' || '"' || replace(cl.relname, '"', '""') || '"' AS stableid
			FROM pg_class cl
			JOIN pg_namespace n ON n.oid = cl.relnamespace
			WHERE cl.relkind IN ('r', 'p', 'v', 'm', 'S', 'i')

			UNION ALL
			SELECT 'pg_type'::regclass::oid, t.oid,
			       CASE t.typtype
			           WHEN 'd' THEN 'domain:'
			           WHEN 'e' THEN 'enum:'
			           WHEN 'c' THEN 'compositeType:'
			           WHEN 'r' THEN 'range:'
			       END || '"' || replace(n.nspname, '"', '""') || '".' || '"' || replace(t.typname, '"', '""') || '"'
			FROM pg_type t
			JOIN pg_namespace n ON n.oid = t.typnamespace
			WHERE t.typtype IN ('d', 'e', 'c', 'r')

			UNION ALL
			SELECT 'pg_proc'::regclass::oid, p.oid,
			       (CASE WHEN EXISTS (SELECT 1 FROM pg_aggregate ag WHERE ag.aggfnoid = p.oid) THEN 'aggregate:' ELSE 'procedure:' END)
			       || '"' || replace(n.nspname, '"', '""') || '".' || '"' || replace(p.proname, '"', '""') || '"' || '('
			       || COALESCE((SELECT string_agg(format_type(u.t, NULL), ',' ORDER BY u.ord)
			                      FROM unnest(p.proargtypes) WITH ORDINALITY AS u(t, ord)), '')
			       || ')'
			FROM pg_proc p
			JOIN pg_namespace n ON n.oid = p.pronamespace

			UNION ALL
			SELECT 'pg_trigger'::regclass::oid, tg.oid,
			       'trigger:"' || replace(n.nspname, '"', '""') || '"."' || replace(cl.relname, '"', '""') || '"."' || replace(tg.tgname, '"', '""') || '"'
			FROM pg_trigger tg
			JOIN pg_class cl ON cl.oid = tg.tgrelid
			JOIN pg_namespace n ON n.oid = cl.relnamespace
			WHERE NOT tg.tgisinternal

			UNION ALL
			SELECT 'pg_rewrite'::regclass::oid, r.oid,
			       'rule:"' || replace(n.nspname, '"', '""') || '"."' || replace(cl.relname, '"', '""') || '"."' || replace(r.rulename, '"', '""') || '"'
			FROM pg_rewrite r
			JOIN pg_class cl ON cl.oid = r.ev_class
			JOIN pg_namespace n ON n.oid = cl.relnamespace
			WHERE r.rulename <> '_RETURN'

			UNION ALL
			SELECT 'pg_policy'::regclass::oid, pol.oid,
			       'rlsPolicy:"' || replace(n.nspname, '"', '""') || '"."' || replace(cl.relname, '"', '""') || '"."' || replace(pol.polname, '"', '""') || '"'
			FROM pg_policy pol
			JOIN pg_class cl ON cl.oid = pol.polrelid
			JOIN pg_namespace n ON n.oid = cl.relnamespace

			UNION ALL
			SELECT 'pg_publication'::regclass::oid, pub.oid, 'publication:"' || replace(pub.pubname, '"', '""') || '"'
			FROM pg_publication pub

			UNION ALL
			SELECT 'pg_subscription'::regclass::oid, s.oid, 'subscription:"' || replace(s.subname, '"', '""') || '"'
			FROM pg_subscription s

			UNION ALL
			SELECT 'pg_namespace'::regclass::oid, n.oid, 'schema:"' || replace(n.nspname, '"', '""') || '"'
			FROM pg_namespace n

			UNION ALL
			SELECT 'pg_collation'::regclass::oid, co.oid,
			       'collation:"' || replace(n.nspname, '"', '""') || '"."' || replace(co.collname, '"', '""') || '"'
			FROM pg_collation co
			JOIN pg_namespace n ON n.oid = co.collnamespace

			UNION ALL
			SELECT 'pg_extension'::regclass::oid, e.oid, 'extension:"' || replace(e.extname, '"', '""') || '"'
			FROM pg_extension e

			UNION ALL
			SELECT 'pg_event_trigger'::regclass::oid, et.oid, 'eventTrigger:"' || replace(et.evtname, '"', '""') || '"'
			FROM pg_event_trigger et

			UNION ALL
			SELECT 'pg_constraint'::regclass::oid, con.oid,
			       'constraint:"' || replace(n.nspname, '"', '""') || '"."' || replace(cl.relname, '"', '""') || '"."' || replace(con.conname, '"', '""') || '"'
			FROM pg_constraint con
			JOIN pg_class cl ON cl.oid = con.conrelid
			JOIN pg_namespace n ON n.oid = cl.relnamespace
			WHERE con.conrelid <> 0
		)
		SELECT d.deptype::text, o1.stableid, o2.stableid
		FROM pg_depend d
		JOIN objects o1 ON o1.classid = d.classid AND o1.objid = d.objid
		JOIN objects o2 ON o2.classid = d.refclassid AND o2.objid = d.refobjid
		WHERE d.deptype IN ('n', 'a')
		  AND NOT (o1.classid = o2.classid AND o1.objid = o2.objid)`
	rows, err := c.DB.QueryContext(ctx, query)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		var deptype string
		var dependent, referenced sql.NullString
		if err := rows.Scan(&deptype, &dependent, &referenced); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		if !dependent.Valid || !referenced.Valid {
			continue
		}
		kind := schema.EdgeNormal
		if deptype == "a" {
			kind = schema.EdgeAuto
		}
		cat.AddEdge(schema.DependencyEdge{Dependent: dependent.String, Referenced: referenced.String, Kind: kind})
	}
	return rows.Err()
}
