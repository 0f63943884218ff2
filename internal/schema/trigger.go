package schema

import "github.com/pgschema/pgdiffcore/internal/catalogid"

type TriggerTiming string

const (
	TriggerBefore    TriggerTiming = "BEFORE"
	TriggerAfter     TriggerTiming = "AFTER"
	TriggerInsteadOf TriggerTiming = "INSTEAD_OF"
)

type TriggerEvent string

const (
	TriggerInsert   TriggerEvent = "INSERT"
	TriggerUpdate   TriggerEvent = "UPDATE"
	TriggerDelete   TriggerEvent = "DELETE"
	TriggerTruncate TriggerEvent = "TRUNCATE"
)

type TriggerLevel string

const (
	TriggerRow       TriggerLevel = "ROW"
	TriggerStatement TriggerLevel = "STATEMENT"
)

// Trigger is a table-level trigger (CREATE TRIGGER). Its event set and
// timing are non-alterable (spec §4.6): any change forces drop+create.
type Trigger struct {
	Schema         string
	Table          string
	Name           string
	Timing         TriggerTiming
	Events         []TriggerEvent
	Level          TriggerLevel
	FunctionSchema string
	Function       string
	Condition      string // WHEN (...) condition, "" if none
	UpdateColumns  []string
	Comment        string
}

func (t *Trigger) StableID() string {
	return catalogid.Trigger(t.Schema, t.Table, t.Name)
}

func (t *Trigger) TableStableID() string {
	return catalogid.Table(t.Schema, t.Table)
}

// EventTrigger is a database-wide event trigger (CREATE EVENT TRIGGER).
// Its event name and tag filter are non-alterable (spec §4.6).
type EventTrigger struct {
	Name           string
	Event          string // ddl_command_start, ddl_command_end, sql_drop, table_rewrite
	Tags           []string
	FunctionSchema string
	Function       string
	Enabled        string // O, D, R, A — matches pg_trigger.tgenabled convention
	Comment        string
}

func (e *EventTrigger) StableID() string {
	return catalogid.EventTrigger(e.Name)
}

// Rule is a query rewrite rule (CREATE RULE).
type Rule struct {
	Schema     string
	Table      string
	Name       string
	Event      string // SELECT, INSERT, UPDATE, DELETE
	Instead    bool
	Condition  string
	Definition string // full action list, as pg_get_ruledef reports it
	Comment    string
}

func (r *Rule) StableID() string {
	return catalogid.Rule(r.Schema, r.Table, r.Name)
}

func (r *Rule) TableStableID() string {
	return catalogid.Table(r.Schema, r.Table)
}
