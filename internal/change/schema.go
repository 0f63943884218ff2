package change

import (
	"fmt"

	"github.com/pgschema/pgdiffcore/internal/catalogid"
	schemapkg "github.com/pgschema/pgdiffcore/internal/schema"
)

func NewCreateSchema(s *schemapkg.Schema) *Simple {
	id := s.StableID()
	sql := fmt.Sprintf("CREATE SCHEMA %s", Quote(s.Name))
	return NewSimple(OpCreate, ScopeObject, schemapkg.KindSchema, id, nil, sql)
}

func NewDropSchema(s *schemapkg.Schema) *Simple {
	id := s.StableID()
	return NewSimple(OpDrop, ScopeObject, schemapkg.KindSchema, id, nil, fmt.Sprintf("DROP SCHEMA %s", Quote(s.Name)))
}

func NewAlterSchemaOwner(s *schemapkg.Schema, newOwner string) *Simple {
	id := s.StableID()
	sql := fmt.Sprintf("ALTER SCHEMA %s OWNER TO %s", Quote(s.Name), Quote(newOwner))
	return NewSimple(OpAlter, ScopeObject, schemapkg.KindSchema, id, []string{catalogid.Role(newOwner)}, sql)
}
