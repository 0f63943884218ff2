package resolve

import (
	"testing"

	"github.com/pgschema/pgdiffcore/internal/change"
	"github.com/pgschema/pgdiffcore/internal/schema"
)

func emptyCatalogs() (*schema.Catalog, *schema.Catalog) {
	return schema.NewCatalog(), schema.NewCatalog()
}

func TestResolveOrdersTableBeforeDependentView(t *testing.T) {
	main, branch := emptyCatalogs()
	tbl := &schema.Table{Schema: "public", Name: "orders"}
	view := &schema.View{Schema: "public", Name: "v_orders", Definition: "SELECT * FROM orders"}

	branch.Tables[tbl.StableID()] = tbl
	branch.Views[view.StableID()] = view
	branch.AddEdge(schema.DependencyEdge{Dependent: view.StableID(), Referenced: tbl.StableID(), Kind: schema.EdgeNormal})

	createTable := change.NewCreateTable(tbl, nil)
	createView := change.NewCreateView(view, false, nil)
	changes := []change.Change{createView, createTable} // deliberately out of order

	ordered, _, err := Resolve(changes, main, branch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tableIdx, viewIdx := -1, -1
	for i, c := range ordered {
		if c.StableID() == tbl.StableID() {
			tableIdx = i
		}
		if c.StableID() == view.StableID() {
			viewIdx = i
		}
	}
	if tableIdx == -1 || viewIdx == -1 || tableIdx > viewIdx {
		t.Fatalf("expected table create before view create, got order %v (table=%d view=%d)", ordered, tableIdx, viewIdx)
	}
}

func TestResolveOrdersDropsInDependentFirstOrder(t *testing.T) {
	main, branch := emptyCatalogs()
	tbl := &schema.Table{Schema: "public", Name: "orders"}
	view := &schema.View{Schema: "public", Name: "v_orders", Definition: "SELECT * FROM orders"}

	main.Tables[tbl.StableID()] = tbl
	main.Views[view.StableID()] = view
	main.AddEdge(schema.DependencyEdge{Dependent: view.StableID(), Referenced: tbl.StableID(), Kind: schema.EdgeNormal})

	dropTable := change.NewDropTable(tbl)
	dropView := change.NewDropView(view)
	changes := []change.Change{dropTable, dropView} // deliberately out of order

	ordered, _, err := Resolve(changes, main, branch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tableIdx, viewIdx := -1, -1
	for i, c := range ordered {
		if c.StableID() == tbl.StableID() {
			tableIdx = i
		}
		if c.StableID() == view.StableID() {
			viewIdx = i
		}
	}
	if viewIdx > tableIdx {
		t.Fatalf("expected dependent view dropped before its table, got order %v", ordered)
	}
}

func TestResolveDetectsCycle(t *testing.T) {
	main, branch := emptyCatalogs()
	a := &schema.Table{Schema: "public", Name: "a"}
	b := &schema.Table{Schema: "public", Name: "b"}
	branch.Tables[a.StableID()] = a
	branch.Tables[b.StableID()] = b
	branch.AddEdge(schema.DependencyEdge{Dependent: a.StableID(), Referenced: b.StableID(), Kind: schema.EdgeNormal})
	branch.AddEdge(schema.DependencyEdge{Dependent: b.StableID(), Referenced: a.StableID(), Kind: schema.EdgeNormal})

	createA := change.NewCreateTable(a, nil)
	createB := change.NewCreateTable(b, nil)

	_, runID, err := Resolve([]change.Change{createA, createB}, main, branch)
	if err == nil {
		t.Fatal("expected a cycle error")
	}
	var cycleErr *CycleError
	if !asCycleError(err, &cycleErr) {
		t.Fatalf("expected *CycleError, got %T: %v", err, err)
	}
	if len(cycleErr.Nodes) < 2 {
		t.Fatalf("expected at least 2 nodes on the reported cycle, got %d", len(cycleErr.Nodes))
	}
	if cycleErr.RunID == "" || cycleErr.RunID != runID {
		t.Fatalf("expected CycleError.RunID to match Resolve's returned run id, got %q vs %q", cycleErr.RunID, runID)
	}
}

func asCycleError(err error, target **CycleError) bool {
	if ce, ok := err.(*CycleError); ok {
		*target = ce
		return true
	}
	return false
}

func TestSameObjectConstraintOrdersDropBeforeCreate(t *testing.T) {
	main, branch := emptyCatalogs()
	v := &schema.View{Schema: "public", Name: "v", Definition: "SELECT 2"}
	mainV := &schema.View{Schema: "public", Name: "v", Definition: "SELECT 1"}
	main.Views[mainV.StableID()] = mainV
	branch.Views[v.StableID()] = v

	create := change.NewCreateView(v, false, nil)
	drop := change.NewDropView(mainV)
	ordered, _, err := Resolve([]change.Change{create, drop}, main, branch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ordered[0].Operation() != "drop" {
		t.Fatalf("expected drop before create for same stableId, got order %v", ordered)
	}
}
