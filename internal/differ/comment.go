package differ

import (
	"strings"

	"github.com/pgschema/pgdiffcore/internal/catalogid"
	"github.com/pgschema/pgdiffcore/internal/schema"
)

// commentKind maps a comment's parent stableId back to the ObjectKind
// COMMENT ON needs to pick the right keyword, via catalogid.Kind.
func commentKind(parentStableID string) schema.ObjectKind {
	return schema.ObjectKind(catalogid.Kind(parentStableID))
}

// commentOnClause renders the "<KEYWORD> <ref>" fragment that follows
// "COMMENT ON " for a parent stableId, looking up the owning table for
// constraint/trigger/rule/policy/column sub-entities (whose COMMENT ON
// syntax needs "... ON <table>" appended) and the catalog for the rest.
func commentOnClause(parentStableID string, cat *schema.Catalog) string {
	kind := catalogid.Kind(parentStableID)
	ident := strings.TrimPrefix(parentStableID, kind+":")

	switch schema.ObjectKind(kind) {
	case schema.KindSchema:
		return "SCHEMA " + ident
	case schema.KindRole:
		return "ROLE " + ident
	case schema.KindTable:
		return "TABLE " + ident
	case schema.KindView:
		return "VIEW " + ident
	case schema.KindMaterializedView:
		return "MATERIALIZED VIEW " + ident
	case schema.KindSequence:
		return "SEQUENCE " + ident
	case schema.KindDomain:
		return "DOMAIN " + ident
	case schema.KindEnum, schema.KindCompositeType, schema.KindRange:
		return "TYPE " + ident
	case schema.KindCollation:
		return "COLLATION " + ident
	case schema.KindIndex:
		return "INDEX " + ident
	case schema.KindProcedure:
		if p, ok := cat.Procedures[parentStableID]; ok {
			kw := "FUNCTION"
			if p.IsProcedure {
				kw = "PROCEDURE"
			}
			return kw + " " + ident
		}
		return "FUNCTION " + ident
	case schema.KindAggregate:
		return "AGGREGATE " + ident
	case schema.KindPublication:
		return "PUBLICATION " + ident
	case schema.KindSubscription:
		return "SUBSCRIPTION " + ident
	case schema.KindConstraint:
		if c, ok := cat.Constraints[parentStableID]; ok {
			return "CONSTRAINT " + catalogid.Quote(c.Name) + " ON " + catalogid.QuoteQualified(c.Schema, c.Table)
		}
	case schema.KindTrigger:
		if t, ok := cat.Triggers[parentStableID]; ok {
			return "TRIGGER " + catalogid.Quote(t.Name) + " ON " + catalogid.QuoteQualified(t.Schema, t.Table)
		}
	case schema.KindRule:
		if r, ok := cat.Rules[parentStableID]; ok {
			return "RULE " + catalogid.Quote(r.Name) + " ON " + catalogid.QuoteQualified(r.Schema, r.Table)
		}
	case schema.KindRLSPolicy:
		if p, ok := cat.RLSPolicies[parentStableID]; ok {
			return "POLICY " + catalogid.Quote(p.Name) + " ON " + catalogid.QuoteQualified(p.Schema, p.Table)
		}
	}
	if strings.HasPrefix(kind, "column") {
		return "COLUMN " + columnRefFromStableID(parentStableID)
	}
	return ident
}

// columnRefFromStableID extracts "schema"."table"."column" from a
// column:<tableStableId>.<quotedColumn> stableId for use in
// COMMENT ON COLUMN.
func columnRefFromStableID(stableID string) string {
	i := strings.LastIndex(stableID, `."`)
	if i < 0 {
		return stableID
	}
	tablePart := strings.TrimPrefix(stableID[:i], "column:")
	colPart := stableID[i+1:]
	tableIdent := strings.TrimPrefix(tablePart, "table:")
	return tableIdent + "." + colPart
}
