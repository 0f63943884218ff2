// Package extract is the catalog extractor (C3): runs pg_catalog and
// information_schema queries against a live connection and assembles the
// results into a *schema.Catalog, the same snapshot shape the differ
// consumes regardless of whether it came from a live database or a
// dumped file.
package extract

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pgschema/pgdiffcore/internal/logger"
	"github.com/pgschema/pgdiffcore/internal/schema"
)

// Row is one result row from a pg_catalog/information_schema query,
// scanned into a map before type-specific coercion. Kept generic so the
// per-kind builders can share scanning helpers in rows.go.
type Row map[string]any

// ExtractionError reports a query that failed during extraction, naming
// which query so a --debug run can reproduce it directly against psql.
type ExtractionError struct {
	Query string
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction query failed: %v\nquery: %s", e.Err, e.Query)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Collector extracts one *schema.Catalog snapshot from a connected
// database. TargetSchema restricts extraction to one schema when set;
// empty means "every non-system schema".
type Collector struct {
	DB            *sql.DB
	TargetSchema  string
}

// NewCollector wraps an already-open *sql.DB (opened via pgx's stdlib
// driver by the caller, matching the teacher's connection setup).
func NewCollector(db *sql.DB) *Collector {
	return &Collector{DB: db}
}

// BuildCatalog runs every per-kind extractor concurrently via
// errgroup.WithContext, so the first failure cancels the context and
// aborts the rest rather than running every query to completion (spec
// §5: the extractor is the only concurrent entry point in the system).
func (c *Collector) BuildCatalog(ctx context.Context) (*schema.Catalog, error) {
	cat := schema.NewCatalog()

	serverVersion, currentUser, err := c.buildContext(ctx)
	if err != nil {
		return nil, err
	}
	cat.Context = schema.Context{ServerVersion: serverVersion, CurrentUser: currentUser}

	// Schemas and roles run sequentially, before the concurrent waves.
	if err := c.buildSchemas(ctx, cat); err != nil {
		return nil, err
	}
	if err := c.buildRoles(ctx, cat); err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	builders := []func(context.Context, *schema.Catalog) error{
		c.buildRoleMemberships,
		c.buildExtensions,
		c.buildLanguages,
		c.buildCollations,
		c.buildDomains,
		c.buildEnums,
		c.buildComposites,
		c.buildRanges,
		c.buildSequences,
		c.buildTables,
		c.buildProcedures,
		c.buildAggregates,
		c.buildEventTriggers,
		c.buildPublications,
		c.buildSubscriptions,
	}
	for _, b := range builders {
		b := b
		g.Go(func() error { return b(gctx, cat) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Views, indexes, triggers, RLS policies, and rules all reference
	// tables built above, so they run in a second wave.
	g2, gctx2 := errgroup.WithContext(ctx)
	for _, b := range []func(context.Context, *schema.Catalog) error{
		c.buildColumns,
		c.buildViews,
		c.buildMaterializedViews,
		c.buildIndexes,
		c.buildConstraints,
		c.buildTriggers,
		c.buildRules,
		c.buildRLSPolicies,
		c.buildPrivileges,
	} {
		b := b
		g2.Go(func() error { return b(gctx2, cat) })
	}
	if err := g2.Wait(); err != nil {
		return nil, err
	}

	// buildComments reads the Comment field every prior builder already
	// populated inline, so it must run once the full catalog is assembled
	// rather than racing with the builders that fill those fields in.
	g3, gctx3 := errgroup.WithContext(ctx)
	for _, b := range []func(context.Context, *schema.Catalog) error{
		c.buildComments,
		c.buildDependencyEdges,
	} {
		b := b
		g3.Go(func() error { return b(gctx3, cat) })
	}
	if err := g3.Wait(); err != nil {
		return nil, err
	}

	if err := cat.Validate(); err != nil {
		logger.Get().Warn("extracted catalog failed invariant validation", "error", err)
	}
	return cat, nil
}

func (c *Collector) buildContext(ctx context.Context) (int, string, error) {
	var version int
	var user string
	row := c.DB.QueryRowContext(ctx, `SELECT current_setting('server_version_num')::int, current_user`)
	if err := row.Scan(&version, &user); err != nil {
		return 0, "", &ExtractionError{Query: "current_setting(server_version_num), current_user", Err: err}
	}
	return version, user, nil
}

// schemaFilter returns the SQL fragment and args restricting a query to
// c.TargetSchema when set, or every non-system schema otherwise.
func (c *Collector) schemaFilter(column string) (string, []any) {
	if c.TargetSchema != "" {
		return column + " = $1", []any{c.TargetSchema}
	}
	return column + " NOT IN ('pg_catalog', 'information_schema') AND " + column + " NOT LIKE 'pg_toast%' AND " + column + " NOT LIKE 'pg_temp%'", nil
}
