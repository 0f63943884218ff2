package schema

import "github.com/pgschema/pgdiffcore/internal/catalogid"

// Schema is a PostgreSQL namespace (CREATE SCHEMA).
type Schema struct {
	Name    string
	Owner   string
	Comment string
}

func (s *Schema) StableID() string {
	return catalogid.Schema(s.Name)
}

// OwnerStableID returns the owning role's stable ID. Owner is the only
// alterable property a schema has in this model.
func (s *Schema) OwnerStableID() string {
	return catalogid.Role(s.Owner)
}
