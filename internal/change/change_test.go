package change

import (
	"strings"
	"testing"

	"github.com/pgschema/pgdiffcore/internal/schema"
)

func TestCreateTableSerializesColumns(t *testing.T) {
	tbl := &schema.Table{
		Schema: "public",
		Name:   "orders",
		Columns: []*schema.Column{
			{Name: "id", DataType: "integer", IsNullable: false},
			{Name: "total", DataType: "numeric", IsNullable: true},
		},
	}
	c := NewCreateTable(tbl, nil)
	sql := c.Serialize(SerializeOptions{UppercaseKeywords: true})
	if !strings.Contains(sql, `"id" integer NOT NULL`) {
		t.Fatalf("missing id column: %s", sql)
	}
	if !strings.Contains(sql, `"total" numeric`) {
		t.Fatalf("missing total column: %s", sql)
	}
	if c.Operation() != OpCreate || c.ObjectType() != schema.KindTable {
		t.Fatalf("unexpected operation/kind: %v %v", c.Operation(), c.ObjectType())
	}
	if len(c.Creates()) != 1 || c.Creates()[0] != tbl.StableID() {
		t.Fatalf("Creates() should contain the table's own stableId, got %v", c.Creates())
	}
}

func TestDropTableSerializesQualifiedName(t *testing.T) {
	tbl := &schema.Table{Schema: "public", Name: "orders"}
	d := NewDropTable(tbl)
	got := d.Serialize(SerializeOptions{UppercaseKeywords: true})
	if got != `DROP TABLE "public"."orders"` {
		t.Fatalf("got %q", got)
	}
	if len(d.Drops()) != 1 || d.Drops()[0] != tbl.StableID() {
		t.Fatalf("Drops() should contain the table's own stableId, got %v", d.Drops())
	}
}

func TestAlterTableAddColumnScopeIsColumn(t *testing.T) {
	tbl := &schema.Table{Schema: "public", Name: "orders"}
	col := &schema.Column{Name: "note", DataType: "text", IsNullable: true}
	c := NewAlterTableAddColumn(tbl, col)
	if c.Scope() != ScopeColumn {
		t.Fatalf("expected column scope, got %v", c.Scope())
	}
	sql := c.Serialize(SerializeOptions{UppercaseKeywords: true})
	if !strings.Contains(sql, "ADD COLUMN") || !strings.Contains(sql, `"note" text`) {
		t.Fatalf("got %q", sql)
	}
}

func TestCreateViewReplaceSetsOperationReplace(t *testing.T) {
	v := &schema.View{Schema: "public", Name: "active_orders", Definition: "SELECT 1"}
	c := NewCreateView(v, true, nil)
	if c.Operation() != OpReplace {
		t.Fatalf("expected replace operation, got %v", c.Operation())
	}
	sql := c.Serialize(SerializeOptions{UppercaseKeywords: true})
	if !strings.Contains(sql, "CREATE OR REPLACE VIEW") {
		t.Fatalf("got %q", sql)
	}
}

func TestGrantSerializesPrivilegeList(t *testing.T) {
	g := NewGrant(schema.KindTable, "x", `"public"."orders"`, "reporting", "", map[schema.Privilege]bool{"SELECT": false, "INSERT": false}, nil)
	sql := g.Serialize(SerializeOptions{UppercaseKeywords: true})
	if !strings.Contains(sql, "INSERT, SELECT") {
		t.Fatalf("expected sorted privilege list, got %q", sql)
	}
	if !strings.Contains(sql, `TO "reporting"`) {
		t.Fatalf("got %q", sql)
	}
}

func TestGrantToPublicUnquoted(t *testing.T) {
	g := NewGrant(schema.KindTable, "x", `"public"."orders"`, "PUBLIC", "", map[schema.Privilege]bool{"SELECT": false}, nil)
	sql := g.Serialize(SerializeOptions{UppercaseKeywords: true})
	if !strings.Contains(sql, "TO PUBLIC") {
		t.Fatalf("got %q", sql)
	}
}

func TestSequenceOwnedByRequiresTable(t *testing.T) {
	s := &schema.Sequence{Schema: "public", Name: "orders_id_seq", OwnedByTable: "orders", OwnedByColumn: "id"}
	tableID := (&schema.Table{Schema: "public", Name: "orders"}).StableID()
	a := NewAlterSequenceSetOwnedBy(s, tableID)
	if len(a.Requires()) != 1 || a.Requires()[0] != tableID {
		t.Fatalf("expected Requires() to contain the table stableId, got %v", a.Requires())
	}
}
