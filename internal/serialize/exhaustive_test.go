package serialize

import (
	"testing"

	"github.com/pgschema/pgdiffcore/internal/change"
	"github.com/pgschema/pgdiffcore/internal/schema"
)

// fixtureForKind returns a minimal create Change for k, or nil if this
// test has no fixture for it yet. Every kind in schema.AllKinds must
// return non-nil: a nil here means a kind was added to the object model
// without serialize coverage, which is exactly what this test exists to
// catch.
func fixtureForKind(k schema.ObjectKind) change.Change {
	switch k {
	case schema.KindSchema:
		return change.NewCreateSchema(&schema.Schema{Name: "s"})
	case schema.KindRole:
		return change.NewCreateRole(&schema.Role{Name: "r"})
	case schema.KindRoleMembership:
		return change.NewGrantRoleMembership(&schema.RoleMembership{Role: "r1", Member: "r2"})
	case schema.KindExtension:
		return change.NewCreateExtension(&schema.Extension{Name: "pgcrypto", Schema: "public"})
	case schema.KindLanguage:
		return change.NewCreateLanguage(&schema.Language{Name: "plpgsql"})
	case schema.KindCollation:
		return change.NewCreateCollation(&schema.Collation{Schema: "public", Name: "c", Locale: "en_US"})
	case schema.KindDomain:
		return change.NewCreateDomain(&schema.Domain{Schema: "public", Name: "d", BaseType: "text"})
	case schema.KindEnum:
		return change.NewCreateEnum(&schema.Enum{Schema: "public", Name: "e", Values: []string{"a", "b"}})
	case schema.KindCompositeType:
		return change.NewCreateComposite(&schema.Composite{Schema: "public", Name: "ct", Columns: []schema.CompositeColumn{{Name: "x", DataType: "int"}}})
	case schema.KindRange:
		return change.NewCreateRange(&schema.Range{Schema: "public", Name: "rg", Subtype: "int4"})
	case schema.KindSequence:
		return change.NewCreateSequence(&schema.Sequence{Schema: "public", Name: "seq", DataType: "bigint"}, nil)
	case schema.KindTable:
		return change.NewCreateTable(&schema.Table{Schema: "public", Name: "t", Columns: []*schema.Column{{Name: "id", DataType: "int"}}}, nil)
	case schema.KindConstraint:
		return change.NewCreateConstraint(&schema.Constraint{Schema: "public", Table: "t", Name: "pk", Type: schema.ConstraintPrimaryKey, Columns: []string{"id"}}, nil)
	case schema.KindIndex:
		return change.NewCreateIndex(&schema.Index{Schema: "public", Table: "t", Name: "idx", Method: "btree", Columns: []schema.IndexColumn{{Name: "id"}}}, nil)
	case schema.KindView:
		return change.NewCreateView(&schema.View{Schema: "public", Name: "v", Definition: "SELECT 1"}, false, nil)
	case schema.KindMaterializedView:
		return change.NewCreateMaterializedView(&schema.MaterializedView{Schema: "public", Name: "mv", Definition: "SELECT 1"}, nil)
	case schema.KindProcedure:
		return change.NewCreateProcedure(&schema.Procedure{Schema: "public", Name: "f", Language: "sql", Definition: "SELECT 1", ReturnType: "int"}, false, nil)
	case schema.KindAggregate:
		return change.NewCreateAggregate(&schema.Aggregate{Schema: "public", Name: "agg", TransitionFunction: "sum", StateType: "int"}, nil)
	case schema.KindTrigger:
		return change.NewCreateTrigger(&schema.Trigger{Schema: "public", Table: "t", Name: "trg", Timing: schema.TriggerBefore, Events: []schema.TriggerEvent{schema.TriggerInsert}, Level: schema.TriggerRow, Function: "f"}, nil)
	case schema.KindEventTrigger:
		return change.NewCreateEventTrigger(&schema.EventTrigger{Name: "evt", Event: "ddl_command_start", Function: "f"})
	case schema.KindRule:
		return change.NewCreateRule(&schema.Rule{Schema: "public", Table: "t", Name: "rule", Event: "INSERT", Definition: "DO NOTHING"}, nil)
	case schema.KindRLSPolicy:
		return change.NewCreateRLSPolicy(&schema.RLSPolicy{Schema: "public", Table: "t", Name: "p", Command: schema.PolicyAll}, nil)
	case schema.KindPublication:
		return change.NewCreatePublication(&schema.Publication{Name: "pub", PublishInsert: true})
	case schema.KindSubscription:
		return change.NewCreateSubscription(&schema.Subscription{Name: "sub", ConnectionInfo: "dbname=x"})
	case schema.KindObjectPrivilegeSet:
		return change.NewGrant(schema.KindObjectPrivilegeSet, "objectPrivilegeSet:table:public.t#app", "public.t", "app", "", map[schema.Privilege]bool{schema.Privilege("SELECT"): false}, nil)
	case schema.KindColumnPrivilegeSet:
		return change.NewGrant(schema.KindColumnPrivilegeSet, "columnPrivilegeSet:table:public.t/id#app", "public.t", "app", "id", map[schema.Privilege]bool{schema.Privilege("SELECT"): false}, nil)
	case schema.KindDefaultPrivilegeSet:
		return change.NewAlterDefaultPrivileges("defaultPrivilegeSet:x", "owner", "app", "public", "tables", map[schema.Privilege]bool{schema.Privilege("SELECT"): false}, false)
	default:
		return nil
	}
}

func TestEveryObjectKindHasASerializeFixture(t *testing.T) {
	for _, k := range schema.AllKinds {
		c := fixtureForKind(k)
		if c == nil {
			t.Fatalf("kind %q has no serialize fixture; add one to fixtureForKind", k)
		}
		if c.ObjectType() != k {
			t.Fatalf("kind %q fixture reports ObjectType() = %q", k, c.ObjectType())
		}
		out := c.Serialize(change.DefaultSerializeOptions)
		if out == "" {
			t.Fatalf("kind %q serialized to an empty string", k)
		}
	}
}

func TestScriptConcatenatesChangesWithHeader(t *testing.T) {
	changes := []change.Change{
		change.NewCreateSchema(&schema.Schema{Name: "app"}),
		change.NewCreateTable(&schema.Table{Schema: "app", Name: "widgets", Columns: []*schema.Column{{Name: "id", DataType: "int"}}}, nil),
	}
	out := Script(changes, change.DefaultSerializeOptions, schema.Context{ServerVersion: 160003})
	if out == "" {
		t.Fatal("expected non-empty script")
	}
	if got := ScriptWithoutComments(changes, change.DefaultSerializeOptions); got == out {
		t.Fatal("expected ScriptWithoutComments to differ from the commented Script")
	}
}
