package schema

import "github.com/pgschema/pgdiffcore/internal/catalogid"

// Extension is an installed extension (CREATE EXTENSION).
type Extension struct {
	Name    string
	Schema  string
	Version string
	Comment string
}

func (e *Extension) StableID() string {
	return catalogid.Extension(e.Name)
}

// Language is a procedural language (CREATE LANGUAGE), almost always
// already present (plpgsql) but modeled for completeness and for
// third-party languages (plpython3u, plv8, ...).
type Language struct {
	Name      string
	Trusted   bool
	Handler   string
	Validator string
	Comment   string
}

func (l *Language) StableID() string {
	return catalogid.Language(l.Name)
}
