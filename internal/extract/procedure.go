package extract

import (
	"context"
	"database/sql"

	"github.com/pgschema/pgdiffcore/internal/schema"
)

func (c *Collector) buildProcedures(ctx context.Context, cat *schema.Catalog) error {
	where, args := c.schemaFilter("n.nspname")
	query := `
		SELECT n.nspname, p.proname, pg_get_userbyid(p.proowner), p.prokind = 'p',
		       l.lanname, pg_get_functiondef(p.oid),
		       CASE WHEN p.prokind = 'p' THEN '' ELSE format_type(p.prorettype, NULL) END,
		       (SELECT array_agg(format_type(t, NULL) ORDER BY ord)
		          FROM unnest(p.proargtypes) WITH ORDINALITY AS u(t, ord))::text,
		       p.provolatile::text, p.proisstrict, p.prosecdef,
		       obj_description(p.oid, 'pg_proc')
		FROM pg_proc p
		JOIN pg_namespace n ON n.oid = p.pronamespace
		JOIN pg_language l ON l.oid = p.prolang
		WHERE p.prokind IN ('f', 'p') AND ` + where
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		p := &schema.Procedure{}
		var argTypes, comment sql.NullString
		var volatility string
		if err := rows.Scan(&p.Schema, &p.Name, &p.Owner, &p.IsProcedure, &p.Language, &p.Definition,
			&p.ReturnType, &argTypes, &volatility, &p.IsStrict, &p.IsSecurityDefiner, &comment); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		p.ArgTypes = textArray(argTypes)
		p.Comment = comment.String
		switch volatility {
		case "i":
			p.Volatility = "IMMUTABLE"
		case "s":
			p.Volatility = "STABLE"
		default:
			p.Volatility = "VOLATILE"
		}
		cat.Procedures[p.StableID()] = p
	}
	return rows.Err()
}

func (c *Collector) buildAggregates(ctx context.Context, cat *schema.Catalog) error {
	where, args := c.schemaFilter("n.nspname")
	query := `
		SELECT n.nspname, p.proname, pg_get_userbyid(p.proowner),
		       (SELECT array_agg(format_type(t, NULL) ORDER BY ord)
		          FROM unnest(p.proargtypes) WITH ORDINALITY AS u(t, ord))::text,
		       tfn.proname, tfns.nspname, format_type(ag.aggtranstype, NULL),
		       COALESCE(ag.agginitval, ''),
		       ffn.proname, ffns.nspname,
		       obj_description(p.oid, 'pg_proc')
		FROM pg_aggregate ag
		JOIN pg_proc p ON p.oid = ag.aggfnoid
		JOIN pg_namespace n ON n.oid = p.pronamespace
		JOIN pg_proc tfn ON tfn.oid = ag.aggtransfn
		JOIN pg_namespace tfns ON tfns.oid = tfn.pronamespace
		LEFT JOIN pg_proc ffn ON ffn.oid = ag.aggfinalfn AND ag.aggfinalfn <> 0
		LEFT JOIN pg_namespace ffns ON ffns.oid = ffn.pronamespace
		WHERE ` + where
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		a := &schema.Aggregate{}
		var argTypes sql.NullString
		var finalFn, finalFnSchema, comment sql.NullString
		if err := rows.Scan(&a.Schema, &a.Name, &a.Owner, &argTypes,
			&a.TransitionFunction, &a.TransitionFunctionSchema, &a.StateType, &a.InitialCondition,
			&finalFn, &finalFnSchema, &comment); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		a.ArgTypes = textArray(argTypes)
		a.FinalFunction = finalFn.String
		a.FinalFunctionSchema = finalFnSchema.String
		a.Comment = comment.String
		cat.Aggregates[a.StableID()] = a
	}
	return rows.Err()
}
