package schema

import "fmt"

// InvariantError reports a Catalog that violates one of the structural
// invariants spec §7 requires extraction to uphold: no duplicate stable
// IDs within a kind, and no dependency edge endpoint pointing at a
// stableId absent from the catalog (unless it's an catalogid.Unknown
// tombstone, which is allowed to dangle by design).
type InvariantError struct {
	Kind     string
	StableID string
	Reason   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violation: %s %q: %s", e.Kind, e.StableID, e.Reason)
}

// InvariantErrors collects every violation Validate found, rather than
// stopping at the first, so a single Validate call reports the whole
// picture.
type InvariantErrors []*InvariantError

func (es InvariantErrors) Error() string {
	if len(es) == 1 {
		return es[0].Error()
	}
	return fmt.Sprintf("%d invariant violations, first: %s", len(es), es[0].Error())
}
