package filter

import (
	"testing"

	"github.com/pgschema/pgdiffcore/internal/change"
	"github.com/pgschema/pgdiffcore/internal/schema"
)

func TestApplyDropsChangesInIgnoredSchema(t *testing.T) {
	branch := schema.NewCatalog()
	kept := &schema.Table{Schema: "public", Name: "widgets", Columns: []*schema.Column{{Name: "id", DataType: "int"}}}
	dropped := &schema.Table{Schema: "internal_tools", Name: "audit", Columns: []*schema.Column{{Name: "id", DataType: "int"}}}
	branch.Tables[kept.StableID()] = kept
	branch.Tables[dropped.StableID()] = dropped

	changes := []change.Change{
		change.NewCreateTable(kept, nil),
		change.NewCreateTable(dropped, nil),
	}
	cfg := Config{IgnoreSchemas: []string{"internal_tools"}}
	out := cfg.Apply(changes, schema.NewCatalog(), branch)
	if len(out) != 1 {
		t.Fatalf("expected 1 change to survive, got %d: %v", len(out), out)
	}
	if out[0].StableID() != kept.StableID() {
		t.Fatalf("expected %s to survive, got %s", kept.StableID(), out[0].StableID())
	}
}

func TestApplyDropsChangesOwnedByIgnoredRole(t *testing.T) {
	branch := schema.NewCatalog()
	tbl := &schema.Table{Schema: "public", Name: "managed", Owner: "supabase_admin", Columns: []*schema.Column{{Name: "id", DataType: "int"}}}
	branch.Tables[tbl.StableID()] = tbl

	cfg := Config{IgnoreOwners: []string{"supabase_admin"}}
	out := cfg.Apply([]change.Change{change.NewCreateTable(tbl, nil)}, schema.NewCatalog(), branch)
	if len(out) != 0 {
		t.Fatalf("expected the change to be filtered out, got %v", out)
	}
}

func TestApplyAlwaysKeepsSchemaAndExtensionCreates(t *testing.T) {
	branch := schema.NewCatalog()
	s := &schema.Schema{Name: "internal_tools"}
	ext := &schema.Extension{Name: "pgcrypto", Schema: "internal_tools"}
	changes := []change.Change{change.NewCreateSchema(s), change.NewCreateExtension(ext)}
	cfg := Config{IgnoreSchemas: []string{"internal_tools"}}
	out := cfg.Apply(changes, schema.NewCatalog(), branch)
	if len(out) != 2 {
		t.Fatalf("expected schema/extension creates to survive filtering, got %d", len(out))
	}
}

func TestApplyKeepsKindsWithNoSchemaOrOwner(t *testing.T) {
	branch := schema.NewCatalog()
	role := &schema.Role{Name: "app_user"}
	changes := []change.Change{change.NewCreateRole(role)}
	cfg := Config{IgnoreSchemas: []string{"public"}, IgnoreOwners: []string{"app_user"}}
	out := cfg.Apply(changes, schema.NewCatalog(), branch)
	if len(out) != 1 {
		t.Fatalf("role changes have no schema/owner to filter on, expected them to survive, got %d", len(out))
	}
}
