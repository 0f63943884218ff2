package schema

import "github.com/pgschema/pgdiffcore/internal/catalogid"

// BigInt holds a sequence bound that may exceed the 53-bit float-safe
// range; kept as a decimal string so no precision is lost round-tripping
// through JSON, and serialized back as a plain decimal literal.
type BigInt struct {
	text string
}

func NewBigInt(decimal string) BigInt { return BigInt{text: decimal} }

func (b BigInt) String() string { return b.text }
func (b BigInt) IsZero() bool   { return b.text == "" }
func (b BigInt) Equal(o BigInt) bool { return b.text == o.text }

// Sequence is a standalone or column-owned sequence (CREATE SEQUENCE).
type Sequence struct {
	Schema        string
	Name          string
	DataType      string // smallint, integer, bigint
	StartValue    BigInt
	MinValue      BigInt
	MaxValue      BigInt
	Increment     BigInt
	Cycle         bool
	CacheSize     BigInt
	OwnedByTable  string // "" if not OWNED BY a column
	OwnedByColumn string
	Comment       string
}

func (s *Sequence) StableID() string {
	return catalogid.Sequence(s.Schema, s.Name)
}

// HasOwner reports whether this sequence is tied to a column via OWNED BY.
func (s *Sequence) HasOwner() bool {
	return s.OwnedByTable != "" && s.OwnedByColumn != ""
}
