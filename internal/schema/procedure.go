package schema

import "github.com/pgschema/pgdiffcore/internal/catalogid"

// Parameter is one argument of a procedure, function, or aggregate.
type Parameter struct {
	Name         string
	DataType     string
	Mode         string // IN, OUT, INOUT, VARIADIC
	Position     int
	DefaultValue *string
}

// Procedure covers both PostgreSQL FUNCTION and PROCEDURE objects — they
// share identity shape (schema, name, arg type signature), ownership, and
// CREATE OR REPLACE semantics, so spec §3.1 models them as one kind.
type Procedure struct {
	Schema            string
	Name              string
	Owner             string
	IsProcedure       bool // true for CREATE PROCEDURE, false for CREATE FUNCTION
	Language          string
	Definition        string
	ReturnType        string // empty for a procedure
	ArgTypes          []string
	Parameters        []Parameter
	Volatility        string // IMMUTABLE, STABLE, VOLATILE
	IsStrict          bool
	IsSecurityDefiner bool
	Comment           string
}

func (p *Procedure) StableID() string {
	return catalogid.Procedure(p.Schema, p.Name, p.ArgTypes)
}

func (p *Procedure) OwnerStableID() string {
	return catalogid.Role(p.Owner)
}

// Aggregate is a user-defined aggregate function (CREATE AGGREGATE).
// PostgreSQL has no CREATE OR REPLACE AGGREGATE, so any data-field change
// forces drop+create (spec §4.6).
type Aggregate struct {
	Schema                   string
	Name                     string
	Owner                    string
	ArgTypes                 []string
	TransitionFunction       string
	TransitionFunctionSchema string
	StateType                string
	InitialCondition         string
	FinalFunction            string
	FinalFunctionSchema      string
	Comment                  string
}

func (a *Aggregate) StableID() string {
	return catalogid.Aggregate(a.Schema, a.Name, a.ArgTypes)
}

func (a *Aggregate) OwnerStableID() string {
	return catalogid.Role(a.Owner)
}

func (a *Aggregate) TransitionFunctionStableID() string {
	return catalogid.Procedure(a.TransitionFunctionSchema, a.TransitionFunction, []string{a.StateType, "*"})
}
