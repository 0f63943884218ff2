package differ

import (
	"testing"

	"github.com/pgschema/pgdiffcore/internal/schema"
)

func catalogWithTable(name string) *schema.Catalog {
	c := schema.NewCatalog()
	s := &schema.Schema{Name: "public"}
	c.Schemas[s.StableID()] = s
	t := &schema.Table{Schema: "public", Name: name, Columns: []*schema.Column{
		{Name: "id", DataType: "integer", IsNullable: false},
	}}
	c.Tables[t.StableID()] = t
	return c
}

func TestEmptyDiffLaw(t *testing.T) {
	c := catalogWithTable("orders")
	changes := Catalog(c, c)
	if len(changes) != 0 {
		t.Fatalf("diffing a catalog against itself should produce no changes, got %d", len(changes))
	}
}

func TestDiffDetectsCreatedTable(t *testing.T) {
	main := schema.NewCatalog()
	branch := catalogWithTable("orders")

	changes := Catalog(main, branch)
	found := false
	for _, c := range changes {
		if c.ObjectType() == schema.KindTable && c.Operation() == "create" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a CreateTable change, got %d changes: %+v", len(changes), changes)
	}
}

func TestDiffDetectsDroppedTable(t *testing.T) {
	main := catalogWithTable("orders")
	branch := schema.NewCatalog()

	changes := Catalog(main, branch)
	found := false
	for _, c := range changes {
		if c.ObjectType() == schema.KindTable && c.Operation() == "drop" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a DropTable change, got %d changes", len(changes))
	}
}

func TestDiffDetectsAddedColumn(t *testing.T) {
	main := catalogWithTable("orders")
	branch := catalogWithTable("orders")
	tID := (&schema.Table{Schema: "public", Name: "orders"}).StableID()
	branch.Tables[tID].Columns = append(branch.Tables[tID].Columns, &schema.Column{Name: "note", DataType: "text", IsNullable: true})

	changes := Catalog(main, branch)
	found := false
	for _, c := range changes {
		if c.Scope() == "column" && c.Operation() == "alter" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an AlterTableAddColumn change, got %d changes", len(changes))
	}
}
