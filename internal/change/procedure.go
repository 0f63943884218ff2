package change

import (
	"fmt"
	"strings"

	"github.com/pgschema/pgdiffcore/internal/schema"
)

// CreateProcedure covers both functions and procedures (IsProcedure
// distinguishes the two); Postgres supports CREATE OR REPLACE FUNCTION
// but not CREATE OR REPLACE PROCEDURE, so OrReplace is only honored when
// !IsProcedure.
type CreateProcedure struct {
	base
	Procedure *schema.Procedure
	OrReplace bool
}

func NewCreateProcedure(p *schema.Procedure, orReplace bool, requires []string) *CreateProcedure {
	id := p.StableID()
	op := OpCreate
	if orReplace && !p.IsProcedure {
		op = OpReplace
	}
	return &CreateProcedure{
		base:      base{op: op, scope: ScopeObject, objectType: schema.KindProcedure, stableID: id, requires: requires, creates: []string{id}},
		Procedure: p,
		OrReplace: orReplace && !p.IsProcedure,
	}
}

func (c *CreateProcedure) Serialize(opts SerializeOptions) string {
	p := c.Procedure
	kind := "FUNCTION"
	if p.IsProcedure {
		kind = "PROCEDURE"
	}
	kw := "CREATE " + kind + " "
	if c.OrReplace {
		kw = "CREATE OR REPLACE " + kind + " "
	}
	args := make([]string, len(p.Parameters))
	for i, a := range p.Parameters {
		arg := a.DataType
		if a.Mode != "" && a.Mode != "IN" {
			arg = a.Mode + " " + arg
		}
		if a.Name != "" {
			arg = Quote(a.Name) + " " + arg
		}
		if a.DefaultValue != nil {
			arg += " " + opts.kw("DEFAULT") + " " + *a.DefaultValue
		}
		args[i] = arg
	}
	var b strings.Builder
	b.WriteString(opts.kw(kw))
	b.WriteString(QualifiedName(p.Schema, p.Name))
	b.WriteString("(" + strings.Join(args, ", ") + ")")
	if !p.IsProcedure {
		b.WriteString(" " + opts.kw("RETURNS") + " " + p.ReturnType)
	}
	b.WriteString(" " + opts.kw("LANGUAGE") + " " + p.Language)
	if p.IsStrict {
		b.WriteString(" " + opts.kw("STRICT"))
	}
	if p.Volatility != "" {
		b.WriteString(" " + opts.kw(p.Volatility))
	}
	if p.IsSecurityDefiner {
		b.WriteString(" " + opts.kw("SECURITY DEFINER"))
	}
	b.WriteString(" " + opts.kw("AS") + " " + QuoteLiteral(p.Definition))
	return b.String()
}

type DropProcedure struct {
	base
	Schema, Name string
	ArgTypes     []string
	IsProcedure  bool
}

func NewDropProcedure(p *schema.Procedure) *DropProcedure {
	id := p.StableID()
	return &DropProcedure{base: base{op: OpDrop, scope: ScopeObject, objectType: schema.KindProcedure, stableID: id, drops: []string{id}}, Schema: p.Schema, Name: p.Name, ArgTypes: p.ArgTypes, IsProcedure: p.IsProcedure}
}

func (d *DropProcedure) Serialize(opts SerializeOptions) string {
	kind := "FUNCTION"
	if d.IsProcedure {
		kind = "PROCEDURE"
	}
	return fmt.Sprintf("%s %s(%s)", opts.kw("DROP "+kind), QualifiedName(d.Schema, d.Name), joinRaw(d.ArgTypes))
}

// CreateAggregate emits CREATE AGGREGATE; Postgres has no ALTER AGGREGATE
// for its transition logic, so any change forces drop+create.
type CreateAggregate struct {
	base
	Aggregate *schema.Aggregate
}

func NewCreateAggregate(a *schema.Aggregate, requires []string) *CreateAggregate {
	id := a.StableID()
	return &CreateAggregate{base: base{op: OpCreate, scope: ScopeObject, objectType: schema.KindAggregate, stableID: id, requires: requires, creates: []string{id}}, Aggregate: a}
}

func (c *CreateAggregate) Serialize(opts SerializeOptions) string {
	a := c.Aggregate
	sfunc := QualifiedName(a.TransitionFunctionSchema, a.TransitionFunction)
	parts := []string{
		"SFUNC = " + sfunc,
		"STYPE = " + a.StateType,
	}
	if a.InitialCondition != "" {
		parts = append(parts, "INITCOND = "+QuoteLiteral(a.InitialCondition))
	}
	if a.FinalFunction != "" {
		parts = append(parts, "FINALFUNC = "+QualifiedName(a.FinalFunctionSchema, a.FinalFunction))
	}
	return fmt.Sprintf("%s %s(%s) (%s)", opts.kw("CREATE AGGREGATE"), QualifiedName(a.Schema, a.Name), joinRaw(a.ArgTypes), strings.Join(parts, ", "))
}

type DropAggregate struct {
	base
	Schema, Name string
	ArgTypes     []string
}

func NewDropAggregate(a *schema.Aggregate) *DropAggregate {
	id := a.StableID()
	return &DropAggregate{base: base{op: OpDrop, scope: ScopeObject, objectType: schema.KindAggregate, stableID: id, drops: []string{id}}, Schema: a.Schema, Name: a.Name, ArgTypes: a.ArgTypes}
}

func (d *DropAggregate) Serialize(opts SerializeOptions) string {
	return fmt.Sprintf("%s %s(%s)", opts.kw("DROP AGGREGATE"), QualifiedName(d.Schema, d.Name), joinRaw(d.ArgTypes))
}
