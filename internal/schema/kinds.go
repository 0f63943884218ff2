// Package schema is the object model (C2) and catalog (C4): one typed
// record per object kind in the closed universe enumerated in spec §3.1,
// and the Catalog that bundles a full snapshot of one database.
package schema

// ObjectKind is the closed, finite sum of catalog object kinds. Every
// value here must have a corresponding record type and stable-ID builder;
// internal/serialize's exhaustiveness test fails if one is added without
// a matching dispatch case.
type ObjectKind string

const (
	KindSchema              ObjectKind = "schema"
	KindRole                ObjectKind = "role"
	KindRoleMembership      ObjectKind = "rolemembership"
	KindExtension           ObjectKind = "extension"
	KindLanguage            ObjectKind = "language"
	KindCollation           ObjectKind = "collation"
	KindDomain              ObjectKind = "domain"
	KindEnum                ObjectKind = "enum"
	KindCompositeType       ObjectKind = "compositeType"
	KindRange               ObjectKind = "range"
	KindSequence            ObjectKind = "sequence"
	KindTable               ObjectKind = "table"
	KindView                ObjectKind = "view"
	KindMaterializedView    ObjectKind = "materializedView"
	KindIndex               ObjectKind = "index"
	KindConstraint          ObjectKind = "constraint"
	KindProcedure           ObjectKind = "procedure"
	KindAggregate           ObjectKind = "aggregate"
	KindTrigger             ObjectKind = "trigger"
	KindEventTrigger        ObjectKind = "eventTrigger"
	KindRule                ObjectKind = "rule"
	KindRLSPolicy           ObjectKind = "rlsPolicy"
	KindPublication         ObjectKind = "publication"
	KindSubscription        ObjectKind = "subscription"
	KindObjectPrivilegeSet  ObjectKind = "objectPrivilegeSet"
	KindColumnPrivilegeSet  ObjectKind = "columnPrivilegeSet"
	KindDefaultPrivilegeSet ObjectKind = "defaultPrivilegeSet"
)

// AllKinds lists every ObjectKind in the canonical C7 catalog-differ order
// (spec §4.7). Used by the catalog differ to fix iteration order and by
// the exhaustiveness test.
var AllKinds = []ObjectKind{
	KindSchema,
	KindRole,
	KindRoleMembership,
	KindExtension,
	KindCollation,
	KindLanguage,
	KindDomain,
	KindEnum,
	KindCompositeType,
	KindRange,
	KindSequence,
	KindTable,
	KindConstraint,
	KindIndex,
	KindView,
	KindMaterializedView,
	KindProcedure,
	KindAggregate,
	KindTrigger,
	KindEventTrigger,
	KindRule,
	KindRLSPolicy,
	KindPublication,
	KindSubscription,
	KindObjectPrivilegeSet,
	KindColumnPrivilegeSet,
	KindDefaultPrivilegeSet,
}

// Identified is satisfied by every object and sub-entity record: the
// contract every per-kind differ keys on.
type Identified interface {
	StableID() string
}
