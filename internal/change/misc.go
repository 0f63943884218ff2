package change

import (
	"fmt"
	"strings"

	"github.com/pgschema/pgdiffcore/internal/schema"
)

func NewCreateExtension(e *schema.Extension) *Simple {
	sql := fmt.Sprintf("CREATE EXTENSION %s", Quote(e.Name))
	if e.Schema != "" {
		sql += " SCHEMA " + Quote(e.Schema)
	}
	if e.Version != "" {
		sql += " VERSION " + QuoteLiteral(e.Version)
	}
	return NewSimple(OpCreate, ScopeObject, schema.KindExtension, e.StableID(), nil, sql)
}

func NewDropExtension(e *schema.Extension) *Simple {
	return NewSimple(OpDrop, ScopeObject, schema.KindExtension, e.StableID(), nil, fmt.Sprintf("DROP EXTENSION %s", Quote(e.Name)))
}

func NewAlterExtensionVersion(e *schema.Extension) *Simple {
	sql := fmt.Sprintf("ALTER EXTENSION %s UPDATE TO %s", Quote(e.Name), QuoteLiteral(e.Version))
	return NewSimple(OpAlter, ScopeObject, schema.KindExtension, e.StableID(), nil, sql)
}

func NewCreateLanguage(l *schema.Language) *Simple {
	trusted := ""
	if l.Trusted {
		trusted = "TRUSTED "
	}
	sql := fmt.Sprintf("CREATE %sLANGUAGE %s", trusted, Quote(l.Name))
	if l.Handler != "" {
		sql += fmt.Sprintf(" HANDLER %s", l.Handler)
	}
	if l.Validator != "" {
		sql += fmt.Sprintf(" VALIDATOR %s", l.Validator)
	}
	return NewSimple(OpCreate, ScopeObject, schema.KindLanguage, l.StableID(), nil, sql)
}

func NewDropLanguage(l *schema.Language) *Simple {
	return NewSimple(OpDrop, ScopeObject, schema.KindLanguage, l.StableID(), nil, fmt.Sprintf("DROP LANGUAGE %s", Quote(l.Name)))
}

func NewCreateCollation(c *schema.Collation) *Simple {
	sql := fmt.Sprintf("CREATE COLLATION %s (PROVIDER = %s, LOCALE = %s, DETERMINISTIC = %t)",
		QualifiedName(c.Schema, c.Name), c.Provider, QuoteLiteral(c.Locale), c.Deterministic)
	return NewSimple(OpCreate, ScopeObject, schema.KindCollation, c.StableID(), nil, sql)
}

func NewDropCollation(c *schema.Collation) *Simple {
	return NewSimple(OpDrop, ScopeObject, schema.KindCollation, c.StableID(), nil, fmt.Sprintf("DROP COLLATION %s", QualifiedName(c.Schema, c.Name)))
}

func NewCreateDomain(d *schema.Domain) *Simple {
	sql := fmt.Sprintf("CREATE DOMAIN %s AS %s", QualifiedName(d.Schema, d.Name), d.BaseType)
	if d.NotNull {
		sql += " NOT NULL"
	}
	if d.Default != nil {
		sql += " DEFAULT " + *d.Default
	}
	for _, c := range d.Constraints {
		sql += fmt.Sprintf(" CONSTRAINT %s %s", Quote(c.Name), c.Definition)
	}
	return NewSimple(OpCreate, ScopeObject, schema.KindDomain, d.StableID(), nil, sql)
}

func NewDropDomain(d *schema.Domain) *Simple {
	return NewSimple(OpDrop, ScopeObject, schema.KindDomain, d.StableID(), nil, fmt.Sprintf("DROP DOMAIN %s", QualifiedName(d.Schema, d.Name)))
}

func NewCreateEnum(e *schema.Enum) *Simple {
	quoted := make([]string, len(e.Values))
	for i, v := range e.Values {
		quoted[i] = QuoteLiteral(v)
	}
	sql := fmt.Sprintf("CREATE TYPE %s AS ENUM (%s)", QualifiedName(e.Schema, e.Name), strings.Join(quoted, ", "))
	return NewSimple(OpCreate, ScopeObject, schema.KindEnum, e.StableID(), nil, sql)
}

func NewDropEnum(e *schema.Enum) *Simple {
	return NewSimple(OpDrop, ScopeObject, schema.KindEnum, e.StableID(), nil, fmt.Sprintf("DROP TYPE %s", QualifiedName(e.Schema, e.Name)))
}

// NewAlterEnumAddValue is the only alterable change an enum supports;
// Postgres can't remove or reorder enum labels without a full rewrite, so
// a removed or reordered value instead forces drop+create of the type.
func NewAlterEnumAddValue(e *schema.Enum, value string) *Simple {
	sql := fmt.Sprintf("ALTER TYPE %s ADD VALUE %s", QualifiedName(e.Schema, e.Name), QuoteLiteral(value))
	return NewSimple(OpAlter, ScopeObject, schema.KindEnum, e.StableID(), nil, sql)
}

func NewCreateComposite(c *schema.Composite) *Simple {
	cols := make([]string, len(c.Columns))
	for i, col := range c.Columns {
		cols[i] = fmt.Sprintf("%s %s", Quote(col.Name), col.DataType)
	}
	sql := fmt.Sprintf("CREATE TYPE %s AS (%s)", QualifiedName(c.Schema, c.Name), strings.Join(cols, ", "))
	return NewSimple(OpCreate, ScopeObject, schema.KindCompositeType, c.StableID(), nil, sql)
}

func NewDropComposite(c *schema.Composite) *Simple {
	return NewSimple(OpDrop, ScopeObject, schema.KindCompositeType, c.StableID(), nil, fmt.Sprintf("DROP TYPE %s", QualifiedName(c.Schema, c.Name)))
}

func NewCreateRange(r *schema.Range) *Simple {
	parts := []string{"SUBTYPE = " + r.Subtype}
	if r.SubtypeOpClass != "" {
		parts = append(parts, "SUBTYPE_OPCLASS = "+r.SubtypeOpClass)
	}
	if r.Collation != "" {
		parts = append(parts, "COLLATION = "+Quote(r.Collation))
	}
	if r.Canonical != "" {
		parts = append(parts, "CANONICAL = "+r.Canonical)
	}
	if r.Subdiff != "" {
		parts = append(parts, "SUBTYPE_DIFF = "+r.Subdiff)
	}
	sql := fmt.Sprintf("CREATE TYPE %s AS RANGE (%s)", QualifiedName(r.Schema, r.Name), strings.Join(parts, ", "))
	return NewSimple(OpCreate, ScopeObject, schema.KindRange, r.StableID(), nil, sql)
}

func NewDropRange(r *schema.Range) *Simple {
	return NewSimple(OpDrop, ScopeObject, schema.KindRange, r.StableID(), nil, fmt.Sprintf("DROP TYPE %s", QualifiedName(r.Schema, r.Name)))
}
