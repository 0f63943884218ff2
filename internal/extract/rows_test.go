package extract

import (
	"database/sql"
	"errors"
	"testing"
)

func TestTextArrayParsesPQLiteral(t *testing.T) {
	got := textArray(sql.NullString{String: `{a,b,"c,d"}`, Valid: true})
	want := []string{"a", "b", "c,d"}
	if len(got) != len(want) {
		t.Fatalf("textArray() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("textArray() = %v, want %v", got, want)
		}
	}
}

func TestTextArrayNilOnInvalid(t *testing.T) {
	if got := textArray(sql.NullString{}); got != nil {
		t.Fatalf("textArray(invalid) = %v, want nil", got)
	}
}

func TestTextArrayNilOnEmptyString(t *testing.T) {
	if got := textArray(sql.NullString{String: "", Valid: true}); got != nil {
		t.Fatalf("textArray(\"\") = %v, want nil", got)
	}
}

func TestNullStringPtrDistinguishesEmptyFromAbsent(t *testing.T) {
	if p := nullStringPtr(sql.NullString{}); p != nil {
		t.Fatalf("nullStringPtr(invalid) = %v, want nil", p)
	}
	p := nullStringPtr(sql.NullString{String: "", Valid: true})
	if p == nil || *p != "" {
		t.Fatalf("nullStringPtr(valid empty) = %v, want pointer to \"\"", p)
	}
}

func TestBigIntEmptyOnInvalid(t *testing.T) {
	b := bigInt(sql.NullString{})
	if b.String() != "" {
		t.Fatalf("bigInt(invalid).String() = %q, want \"\"", b.String())
	}
}

func TestBigIntParsesLargeValue(t *testing.T) {
	b := bigInt(sql.NullString{String: "9223372036854775807", Valid: true})
	if b.String() != "9223372036854775807" {
		t.Fatalf("bigInt(...).String() = %q", b.String())
	}
}

func TestExtractionErrorUnwraps(t *testing.T) {
	inner := errors.New("connection reset")
	err := &ExtractionError{Query: "SELECT 1", Err: inner}
	if !errors.Is(err, inner) {
		t.Fatalf("errors.Is(err, inner) = false, want true")
	}
	if err.Error() == "" {
		t.Fatalf("Error() returned empty string")
	}
}
