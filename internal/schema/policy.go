package schema

import "github.com/pgschema/pgdiffcore/internal/catalogid"

type PolicyCommand string

const (
	PolicyAll    PolicyCommand = "ALL"
	PolicySelect PolicyCommand = "SELECT"
	PolicyInsert PolicyCommand = "INSERT"
	PolicyUpdate PolicyCommand = "UPDATE"
	PolicyDelete PolicyCommand = "DELETE"
)

// RLSPolicy is a row-level security policy (CREATE POLICY). Command and
// Permissive are non-alterable (PostgreSQL has no ALTER POLICY ... FOR/AS);
// Roles, Using, and WithCheck are alterable via ALTER POLICY.
type RLSPolicy struct {
	Schema     string
	Table      string
	Name       string
	Command    PolicyCommand
	Permissive bool
	Roles      []string
	Using      string
	WithCheck  string
	Comment    string
}

func (p *RLSPolicy) StableID() string {
	return catalogid.RLSPolicy(p.Schema, p.Table, p.Name)
}

func (p *RLSPolicy) TableStableID() string {
	return catalogid.Table(p.Schema, p.Table)
}

// Publication is a logical-replication publication (CREATE PUBLICATION).
type Publication struct {
	Name             string
	Owner            string
	AllTables        bool
	Tables           []string // schema.table, qualified, sorted
	PublishInsert    bool
	PublishUpdate    bool
	PublishDelete    bool
	PublishTruncate  bool
	Comment          string
}

func (p *Publication) StableID() string {
	return catalogid.Publication(p.Name)
}

func (p *Publication) OwnerStableID() string {
	return catalogid.Role(p.Owner)
}

// Subscription is a logical-replication subscription (CREATE SUBSCRIPTION).
// ConnectionInfo is pg_subscription.subconninfo exactly as the extractor
// reads it, credentials included; the diff engine treats it as an opaque
// alterable string field.
type Subscription struct {
	Name            string
	Owner           string
	ConnectionInfo  string
	Publications    []string
	Enabled         bool
	SlotName        string
	Comment         string
}

func (s *Subscription) StableID() string {
	return catalogid.Subscription(s.Name)
}

func (s *Subscription) OwnerStableID() string {
	return catalogid.Role(s.Owner)
}
