//go:build integration

package pgdiffcore

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pgschema/pgdiffcore/internal/change"
	"github.com/pgschema/pgdiffcore/internal/differ"
	"github.com/pgschema/pgdiffcore/internal/extract"
	"github.com/pgschema/pgdiffcore/internal/resolve"
	"github.com/pgschema/pgdiffcore/internal/schema"
	"github.com/pgschema/pgdiffcore/internal/serialize"
)

// testDB wraps one ephemeral container's connection, grounded on the
// teacher's cmd/dump_integration_test.go setupPostgresContainer helper.
type testDB struct {
	container testcontainers.Container
	conn      *sql.DB
}

func startTestDB(ctx context.Context, t *testing.T) *testDB {
	t.Helper()
	c, err := postgres.Run(ctx,
		"postgres:17",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("starting container: %v", err)
	}
	dsn, err := c.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("getting connection string: %v", err)
	}
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("connecting: %v", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		t.Fatalf("pinging: %v", err)
	}
	return &testDB{container: c, conn: conn}
}

func (db *testDB) terminate(ctx context.Context, t *testing.T) {
	db.conn.Close()
	if err := db.container.Terminate(ctx); err != nil {
		t.Logf("terminating container: %v", err)
	}
}

// applyChanges executes an already-resolved change list against db, in
// order, one statement per change.
func applyChanges(ctx context.Context, t *testing.T, db *sql.DB, changes []change.Change) {
	t.Helper()
	for _, c := range changes {
		sql := c.Serialize(change.DefaultSerializeOptions)
		if _, err := db.ExecContext(ctx, sql); err != nil {
			t.Fatalf("executing %s %s: %v\nsql: %s", c.Operation(), c.StableID(), err, sql)
		}
	}
}

// extractCatalog is a thin wrapper kept mostly for readability at call
// sites below.
func extractCatalog(ctx context.Context, t *testing.T, db *sql.DB) *schema.Catalog {
	t.Helper()
	cat, err := extract.NewCollector(db).BuildCatalog(ctx)
	if err != nil {
		t.Fatalf("extracting catalog: %v", err)
	}
	return cat
}

// assertNoDiff re-extracts target and fails the test if diffing it
// against want produces any changes, i.e. the two catalogs agree up to
// the attributes the system deliberately ignores (physical OIDs, etc. —
// nothing compared here is oid-derived, since stableIds are all
// name-based).
func assertNoDiff(t *testing.T, want, got *schema.Catalog) {
	t.Helper()
	changes := differ.Catalog(want, got)
	if len(changes) != 0 {
		ids := make([]string, len(changes))
		for i, c := range changes {
			ids[i] = string(c.Operation()) + " " + c.StableID()
		}
		t.Fatalf("expected no residual diff, got %d changes: %v", len(changes), ids)
	}
}

const selfRecreateSchemaSQL = `
CREATE SCHEMA app;
CREATE TABLE app.users (
    id BIGSERIAL PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX users_email_idx ON app.users (email);
CREATE VIEW app.active_users AS SELECT id, email FROM app.users;
COMMENT ON TABLE app.users IS 'application users';
`

// TestSelfRecreateLaw exercises property 4: diff(empty, C) applied to an
// empty database reproduces C.
func TestSelfRecreateLaw(t *testing.T) {
	ctx := context.Background()

	branch := startTestDB(ctx, t)
	defer branch.terminate(ctx, t)
	if _, err := branch.conn.ExecContext(ctx, selfRecreateSchemaSQL); err != nil {
		t.Fatalf("seeding branch schema: %v", err)
	}
	branchCat := extractCatalog(ctx, t, branch.conn)

	target := startTestDB(ctx, t)
	defer target.terminate(ctx, t)
	mainCat := extractCatalog(ctx, t, target.conn)

	changes := differ.Catalog(mainCat, branchCat)
	ordered, _, err := resolve.Resolve(changes, mainCat, branchCat)
	if err != nil {
		t.Fatalf("resolving: %v", err)
	}
	applyChanges(ctx, t, target.conn, ordered)

	reExtracted := extractCatalog(ctx, t, target.conn)
	assertNoDiff(t, branchCat, reExtracted)
}

const inverseLawMainSQL = `
CREATE TABLE public.orders (
    id BIGINT PRIMARY KEY,
    total NUMERIC NOT NULL
);
`

const inverseLawBranchSQL = `
CREATE TABLE public.orders (
    id BIGINT PRIMARY KEY,
    total NUMERIC NOT NULL,
    currency TEXT NOT NULL DEFAULT 'USD'
);
CREATE TABLE public.line_items (
    id BIGINT PRIMARY KEY,
    order_id BIGINT NOT NULL REFERENCES public.orders (id),
    quantity INT NOT NULL
);
`

// TestInverseLaw exercises property 5: diff(C1, C2) applied to C1 yields
// a database whose re-extracted catalog equals C2.
func TestInverseLaw(t *testing.T) {
	ctx := context.Background()

	main := startTestDB(ctx, t)
	defer main.terminate(ctx, t)
	if _, err := main.conn.ExecContext(ctx, inverseLawMainSQL); err != nil {
		t.Fatalf("seeding main schema: %v", err)
	}

	branch := startTestDB(ctx, t)
	defer branch.terminate(ctx, t)
	if _, err := branch.conn.ExecContext(ctx, inverseLawBranchSQL); err != nil {
		t.Fatalf("seeding branch schema: %v", err)
	}

	mainCat := extractCatalog(ctx, t, main.conn)
	branchCat := extractCatalog(ctx, t, branch.conn)

	changes := differ.Catalog(mainCat, branchCat)
	ordered, runID, err := resolve.Resolve(changes, mainCat, branchCat)
	if err != nil {
		t.Fatalf("resolving: %v", err)
	}
	if runID == "" {
		t.Fatal("expected a non-empty run id from a successful resolve")
	}
	t.Logf("migration script:\n%s", serialize.Script(ordered, change.DefaultSerializeOptions, branchCat.Context))

	applyChanges(ctx, t, main.conn, ordered)

	reExtracted := extractCatalog(ctx, t, main.conn)
	assertNoDiff(t, branchCat, reExtracted)
}
