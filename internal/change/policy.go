package change

import (
	"fmt"
	"strings"

	"github.com/pgschema/pgdiffcore/internal/schema"
)

// Command and Permissive are non-alterable on an RLS policy (no ALTER
// POLICY ... FOR/AS in Postgres); Roles/Using/WithCheck are alterable
// in place via ALTER POLICY, so only those get a dedicated Alter type.

func NewCreateRLSPolicy(p *schema.RLSPolicy, requires []string) *Simple {
	permissive := "PERMISSIVE"
	if !p.Permissive {
		permissive = "RESTRICTIVE"
	}
	roles := "PUBLIC"
	if len(p.Roles) > 0 {
		roles = joinIdents(p.Roles)
	}
	sql := fmt.Sprintf("CREATE POLICY %s ON %s AS %s FOR %s TO %s", Quote(p.Name), QualifiedName(p.Schema, p.Table), permissive, string(p.Command), roles)
	if p.Using != "" {
		sql += " USING (" + p.Using + ")"
	}
	if p.WithCheck != "" {
		sql += " WITH CHECK (" + p.WithCheck + ")"
	}
	return NewSimple(OpCreate, ScopeObject, schema.KindRLSPolicy, p.StableID(), append(requires, p.TableStableID()), sql)
}

func NewDropRLSPolicy(p *schema.RLSPolicy) *Simple {
	sql := fmt.Sprintf("DROP POLICY %s ON %s", Quote(p.Name), QualifiedName(p.Schema, p.Table))
	return NewSimple(OpDrop, ScopeObject, schema.KindRLSPolicy, p.StableID(), nil, sql)
}

func NewAlterRLSPolicy(p *schema.RLSPolicy) *Simple {
	roles := "PUBLIC"
	if len(p.Roles) > 0 {
		roles = joinIdents(p.Roles)
	}
	sql := fmt.Sprintf("ALTER POLICY %s ON %s TO %s", Quote(p.Name), QualifiedName(p.Schema, p.Table), roles)
	if p.Using != "" {
		sql += " USING (" + p.Using + ")"
	}
	if p.WithCheck != "" {
		sql += " WITH CHECK (" + p.WithCheck + ")"
	}
	return NewSimple(OpAlter, ScopeObject, schema.KindRLSPolicy, p.StableID(), nil, sql)
}

func NewCreatePublication(p *schema.Publication) *Simple {
	sql := fmt.Sprintf("CREATE PUBLICATION %s", Quote(p.Name))
	if p.AllTables {
		sql += " FOR ALL TABLES"
	} else if len(p.Tables) > 0 {
		sql += " FOR TABLE " + strings.Join(p.Tables, ", ")
	}
	sql += publishWithClause(p)
	return NewSimple(OpCreate, ScopeObject, schema.KindPublication, p.StableID(), nil, sql)
}

func publishWithClause(p *schema.Publication) string {
	flags := []string{}
	add := func(on bool, name string) {
		if on {
			flags = append(flags, name)
		}
	}
	add(p.PublishInsert, "insert")
	add(p.PublishUpdate, "update")
	add(p.PublishDelete, "delete")
	add(p.PublishTruncate, "truncate")
	if len(flags) == 0 {
		return ""
	}
	return " WITH (publish = '" + strings.Join(flags, ",") + "')"
}

func NewDropPublication(p *schema.Publication) *Simple {
	return NewSimple(OpDrop, ScopeObject, schema.KindPublication, p.StableID(), nil, fmt.Sprintf("DROP PUBLICATION %s", Quote(p.Name)))
}

func NewCreateSubscription(s *schema.Subscription) *Simple {
	sql := fmt.Sprintf("CREATE SUBSCRIPTION %s CONNECTION %s PUBLICATION %s",
		Quote(s.Name), QuoteLiteral(s.ConnectionInfo), strings.Join(s.Publications, ", "))
	if !s.Enabled {
		sql += " WITH (enabled = false)"
	}
	return NewSimple(OpCreate, ScopeObject, schema.KindSubscription, s.StableID(), nil, sql)
}

func NewDropSubscription(s *schema.Subscription) *Simple {
	return NewSimple(OpDrop, ScopeObject, schema.KindSubscription, s.StableID(), nil, fmt.Sprintf("DROP SUBSCRIPTION %s", Quote(s.Name)))
}
