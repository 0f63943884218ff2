package change

import (
	"fmt"
	"strings"

	"github.com/pgschema/pgdiffcore/internal/schema"
)

// Triggers, event triggers, and rules have no alterable fields beyond
// what ALTER ... RENAME/OWNER would touch (not modeled here since
// renames aren't part of this taxonomy's diff surface); any functional
// change forces drop+create (spec §4.6).

func NewCreateTrigger(t *schema.Trigger, requires []string) *Simple {
	id := t.StableID()
	events := make([]string, len(t.Events))
	for i, e := range t.Events {
		events[i] = string(e)
	}
	sql := fmt.Sprintf("CREATE TRIGGER %s %s %s ON %s FOR EACH %s",
		Quote(t.Name), string(t.Timing), strings.Join(events, " OR "), QualifiedName(t.Schema, t.Table), string(t.Level))
	if len(t.UpdateColumns) > 0 {
		sql += " OF " + joinIdents(t.UpdateColumns)
	}
	if t.Condition != "" {
		sql += " WHEN (" + t.Condition + ")"
	}
	sql += fmt.Sprintf(" EXECUTE FUNCTION %s()", QualifiedName(t.FunctionSchema, t.Function))
	return NewSimple(OpCreate, ScopeObject, schema.KindTrigger, id, append(requires, t.TableStableID()), sql)
}

func NewDropTrigger(t *schema.Trigger) *Simple {
	sql := fmt.Sprintf("DROP TRIGGER %s ON %s", Quote(t.Name), QualifiedName(t.Schema, t.Table))
	return NewSimple(OpDrop, ScopeObject, schema.KindTrigger, t.StableID(), nil, sql)
}

func NewCreateEventTrigger(e *schema.EventTrigger) *Simple {
	sql := fmt.Sprintf("CREATE EVENT TRIGGER %s ON %s", Quote(e.Name), e.Event)
	if len(e.Tags) > 0 {
		tags := make([]string, len(e.Tags))
		for i, t := range e.Tags {
			tags[i] = QuoteLiteral(t)
		}
		sql += " WHEN TAG IN (" + strings.Join(tags, ", ") + ")"
	}
	sql += fmt.Sprintf(" EXECUTE FUNCTION %s()", QualifiedName(e.FunctionSchema, e.Function))
	return NewSimple(OpCreate, ScopeObject, schema.KindEventTrigger, e.StableID(), nil, sql)
}

func NewDropEventTrigger(e *schema.EventTrigger) *Simple {
	return NewSimple(OpDrop, ScopeObject, schema.KindEventTrigger, e.StableID(), nil, fmt.Sprintf("DROP EVENT TRIGGER %s", Quote(e.Name)))
}

func NewCreateRule(r *schema.Rule, requires []string) *Simple {
	instead := "ALSO"
	if r.Instead {
		instead = "INSTEAD"
	}
	sql := fmt.Sprintf("CREATE RULE %s AS ON %s TO %s", Quote(r.Name), r.Event, QualifiedName(r.Schema, r.Table))
	if r.Condition != "" {
		sql += " WHERE " + r.Condition
	}
	sql += fmt.Sprintf(" DO %s %s", instead, r.Definition)
	return NewSimple(OpCreate, ScopeObject, schema.KindRule, r.StableID(), append(requires, r.TableStableID()), sql)
}

func NewDropRule(r *schema.Rule) *Simple {
	sql := fmt.Sprintf("DROP RULE %s ON %s", Quote(r.Name), QualifiedName(r.Schema, r.Table))
	return NewSimple(OpDrop, ScopeObject, schema.KindRule, r.StableID(), nil, sql)
}
