package catalogid

import (
	"strings"
	"testing"
)

// TestTotality checks invariant 1 from spec §8: for every kind K, every
// builder's output starts with "K:".
func TestTotality(t *testing.T) {
	cases := map[string]string{
		"schema":              Schema("app"),
		"role":                Role("alice"),
		"rolemembership":      RoleMembership("admins", "alice"),
		"extension":           Extension("pgcrypto"),
		"language":            Language("plpgsql"),
		"collation":           Collation("public", "case_insensitive"),
		"domain":              Domain("public", "us_zip"),
		"enum":                Enum("public", "status"),
		"compositeType":       CompositeType("public", "point3d"),
		"range":               Range("public", "floatrange"),
		"sequence":            Sequence("public", "users_id_seq"),
		"table":               Table("public", "users"),
		"view":                View("public", "v"),
		"materializedView":    MaterializedView("public", "mv"),
		"index":               Index("public", "users_pkey"),
		"constraint":          Constraint("public", "users", "users_pkey"),
		"procedure":           Procedure("public", "f", []string{"integer", "text"}),
		"aggregate":           Aggregate("public", "agg", []string{"integer"}),
		"trigger":             Trigger("public", "users", "t"),
		"eventTrigger":        EventTrigger("et"),
		"rule":                Rule("public", "users", "r"),
		"rlsPolicy":           RLSPolicy("public", "users", "u_policy"),
		"publication":         Publication("pub"),
		"subscription":        Subscription("sub"),
		"objectPrivilegeSet":  ObjectPrivilegeSet(Table("public", "users"), "alice"),
		"columnPrivilegeSet":  ColumnPrivilegeSet(Table("public", "users"), "email", "alice"),
		"defaultPrivilegeSet": DefaultPrivilegeSet("bob", "alice", "public", "table"),
	}

	for kind, id := range cases {
		if !strings.HasPrefix(id, kind+":") {
			t.Errorf("stable id %q does not start with kind prefix %q", id, kind+":")
		}
		if Kind(id) != kind {
			t.Errorf("Kind(%q) = %q, want %q", id, Kind(id), kind)
		}
	}
}

func TestProcedureSignatureJoinsWithoutSpaces(t *testing.T) {
	got := Procedure("public", "f", []string{"integer", "text", "boolean"})
	want := `procedure:"public"."f"(integer,text,boolean)`
	if got != want {
		t.Errorf("Procedure() = %q, want %q", got, want)
	}
}

func TestQuoteDoublesEmbeddedQuote(t *testing.T) {
	got := Quote(`my"table`)
	want := `"my""table"`
	if got != want {
		t.Errorf("Quote() = %q, want %q", got, want)
	}
}

func TestTableStableIDExample(t *testing.T) {
	got := Table("public", "users")
	want := `table:"public"."users"`
	if got != want {
		t.Errorf("Table() = %q, want %q", got, want)
	}
}

func TestInjectivityAcrossIdentityFields(t *testing.T) {
	a := Constraint("public", "orders", "fk_customer")
	b := Constraint("public", "orders", "fk_customer_id")
	if a == b {
		t.Errorf("distinct identities produced equal stable ids: %q", a)
	}
}

func TestUnknownTombstone(t *testing.T) {
	id := Unknown("16482")
	if !IsUnknown(id) {
		t.Errorf("IsUnknown(%q) = false, want true", id)
	}
	if IsUnknown(Table("public", "users")) {
		t.Error("IsUnknown() true for a well-formed table id")
	}
}
