package change

import (
	"fmt"

	"github.com/pgschema/pgdiffcore/internal/catalogid"
	"github.com/pgschema/pgdiffcore/internal/schema"
)

// CreateCommentOn emits COMMENT ON <onClause> IS '<text>' for any kind —
// the ON clause differs per kind (TABLE, COLUMN, FUNCTION with argument
// types, etc.) so the differ supplies it pre-rendered.
type CreateCommentOn struct {
	base
	OnClause string
	Text     string
}

func NewCreateCommentOn(kind schema.ObjectKind, parentStableID, onClause, text string) *CreateCommentOn {
	id := catalogid.Comment(parentStableID)
	return &CreateCommentOn{
		base:     base{op: OpCreate, scope: ScopeComment, objectType: kind, stableID: id, requires: []string{parentStableID}, creates: []string{id}},
		OnClause: onClause,
		Text:     text,
	}
}

func (c *CreateCommentOn) Serialize(opts SerializeOptions) string {
	return fmt.Sprintf("%s %s %s %s", opts.kw("COMMENT ON"), c.OnClause, opts.kw("IS"), QuoteLiteral(c.Text))
}

// DropCommentOn emits COMMENT ON <onClause> IS NULL.
type DropCommentOn struct {
	base
	OnClause string
}

func NewDropCommentOn(kind schema.ObjectKind, parentStableID, onClause string) *DropCommentOn {
	id := catalogid.Comment(parentStableID)
	return &DropCommentOn{
		base:     base{op: OpDrop, scope: ScopeComment, objectType: kind, stableID: id, drops: []string{id}},
		OnClause: onClause,
	}
}

func (d *DropCommentOn) Serialize(opts SerializeOptions) string {
	return fmt.Sprintf("%s %s %s %s", opts.kw("COMMENT ON"), d.OnClause, opts.kw("IS"), opts.kw("NULL"))
}
