package change

import "github.com/pgschema/pgdiffcore/internal/schema"

// base holds the bookkeeping fields common to every Change and is embedded
// by each concrete type, which then only needs to implement Serialize.
type base struct {
	op         Operation
	scope      Scope
	objectType schema.ObjectKind
	stableID   string
	requires   []string
	creates    []string
	drops      []string
}

func (b base) Operation() Operation          { return b.op }
func (b base) Scope() Scope                  { return b.scope }
func (b base) ObjectType() schema.ObjectKind { return b.objectType }
func (b base) StableID() string              { return b.stableID }
func (b base) Requires() []string            { return b.requires }
func (b base) Creates() []string             { return b.creates }
func (b base) Drops() []string               { return b.drops }
