package change

import (
	"fmt"

	"github.com/pgschema/pgdiffcore/internal/catalogid"
	"github.com/pgschema/pgdiffcore/internal/schema"
)

// NewAlterOwner covers OWNER TO for every kind besides table (which has
// its own AlterTableChangeOwner since it's one clause of ALTER TABLE).
// keyword is the ALTER <KEYWORD> Postgres expects (VIEW, MATERIALIZED
// VIEW, SEQUENCE, FUNCTION, ...).
func NewAlterOwner(kind schema.ObjectKind, keyword, stableID, ref, newOwner string) *Simple {
	sql := fmt.Sprintf("ALTER %s %s OWNER TO %s", keyword, ref, Quote(newOwner))
	return NewSimple(OpAlter, ScopeObject, kind, stableID, []string{catalogid.Role(newOwner)}, sql)
}
