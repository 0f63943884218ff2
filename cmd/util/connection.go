// Package util is the CLI's connection layer: turning a "main"/"branch"
// command-line argument into an open *sql.DB, whether that argument is a
// live connection string or a path to an on-disk data directory that needs
// a temporary embedded server started against it first.
package util

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/pgschema/pgdiffcore/internal/logger"
)

// SourceKind distinguishes a live connection string from a local data
// directory per spec §6.2's connection-argument parsing rule.
type SourceKind int

const (
	SourceURL SourceKind = iota
	SourceDataDir
)

// Source is one resolved command-line connection argument.
type Source struct {
	Kind SourceKind
	Raw  string // the original argument, DSN or path
}

// ParseSource classifies a command-line argument: it's a connection
// string if it parses as a URL with a scheme (postgres://, postgresql://),
// a data directory path otherwise.
func ParseSource(arg string) Source {
	if u, err := url.Parse(arg); err == nil && u.Scheme != "" {
		return Source{Kind: SourceURL, Raw: arg}
	}
	return Source{Kind: SourceDataDir, Raw: arg}
}

// Connection is an open *sql.DB plus whatever teardown opening it implied
// (an embedded server to stop, nothing for a plain URL).
type Connection struct {
	DB    *sql.DB
	Close func() error
}

// Open resolves a Source into a live connection. A data directory source
// starts a temporary embedded PostgreSQL instance against the directory
// and stops it on Close. The connection is not read-only: migrate applies
// its DDL through it.
func Open(ctx context.Context, src Source) (*Connection, error) {
	log := logger.Get()
	switch src.Kind {
	case SourceURL:
		log.Debug("opening database connection", "dsn", redactDSN(src.Raw))
		db, err := sql.Open("pgx", src.Raw)
		if err != nil {
			return nil, fmt.Errorf("opening connection: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("pinging database: %w", err)
		}
		return &Connection{DB: db, Close: db.Close}, nil
	case SourceDataDir:
		ep, err := StartEmbeddedPostgres(src.Raw)
		if err != nil {
			return nil, fmt.Errorf("starting embedded postgres for %q: %w", src.Raw, err)
		}
		return &Connection{DB: ep.DB(), Close: ep.Stop}, nil
	default:
		return nil, fmt.Errorf("unrecognized connection source %q", src.Raw)
	}
}

// redactDSN replaces the password in a URL connection string with
// "REDACTED" (keeping the user name) before it is logged at debug level,
// the same precaution the teacher's connection logging takes.
func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	u.User = url.UserPassword(u.User.Username(), "REDACTED")
	return u.String()
}
