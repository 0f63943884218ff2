package schema

import "testing"

func TestEmptyCatalogHasNoObjects(t *testing.T) {
	c := Empty()
	if len(c.Schemas) != 0 || len(c.Tables) != 0 || len(c.Edges) != 0 {
		t.Fatalf("Empty() catalog is not empty: %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Empty() catalog failed Validate: %v", err)
	}
}

func TestNewCatalogMapsAreNonNil(t *testing.T) {
	c := NewCatalog()
	if c.Schemas == nil || c.Tables == nil || c.Roles == nil || c.Comments == nil {
		t.Fatal("NewCatalog left a map nil")
	}
}

func TestAddEdgeDeduplicates(t *testing.T) {
	c := NewCatalog()
	e := DependencyEdge{Dependent: "table:\"public\".\"orders\"", Referenced: "table:\"public\".\"customers\"", Kind: EdgeNormal}
	c.AddEdge(e)
	c.AddEdge(e)
	c.AddEdge(e)
	if len(c.Edges) != 1 {
		t.Fatalf("expected 1 deduplicated edge, got %d", len(c.Edges))
	}
}

func TestValidateCatchesMiskeyedMap(t *testing.T) {
	c := NewCatalog()
	tbl := &Table{Schema: "public", Name: "orders"}
	c.Tables["table:\"public\".\"wrong_key\""] = tbl

	err := c.Validate()
	if err == nil {
		t.Fatal("expected Validate to catch a miskeyed table entry")
	}
}

func TestValidateCatchesDanglingEdge(t *testing.T) {
	c := NewCatalog()
	c.AddEdge(DependencyEdge{Dependent: "table:\"public\".\"orders\"", Referenced: "table:\"public\".\"missing\"", Kind: EdgeNormal})

	err := c.Validate()
	if err == nil {
		t.Fatal("expected Validate to catch a dangling edge reference")
	}
}

func TestValidateAllowsUnknownTombstoneEdge(t *testing.T) {
	c := NewCatalog()
	tbl := &Table{Schema: "public", Name: "orders"}
	c.Tables[tbl.StableID()] = tbl
	c.AddEdge(DependencyEdge{Dependent: tbl.StableID(), Referenced: "unknown:16532", Kind: EdgeNormal})

	if err := c.Validate(); err != nil {
		t.Fatalf("Validate should allow unknown: tombstone edges, got %v", err)
	}
}

func TestTableLikeUnionsTablesAndMaterializedViews(t *testing.T) {
	c := NewCatalog()
	tbl := &Table{Schema: "public", Name: "orders"}
	c.Tables[tbl.StableID()] = tbl
	mv := &MaterializedView{Schema: "public", Name: "summary"}
	c.MaterializedViews[mv.StableID()] = mv

	tl := c.TableLike()
	if len(tl) != 2 {
		t.Fatalf("expected 2 table-like entries, got %d", len(tl))
	}
	if _, ok := tl[tbl.StableID()]; !ok {
		t.Fatal("table missing from TableLike union")
	}
	if _, ok := tl[mv.StableID()]; !ok {
		t.Fatal("materialized view missing from TableLike union")
	}
}
