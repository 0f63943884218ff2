// Package differ implements the per-kind differ (C6) and catalog differ
// (C7): partitioning two keyed object sets into created/dropped/altered,
// and invoking every per-kind differ in the fixed canonical order to
// produce one flat change list.
package differ

import (
	"github.com/pgschema/pgdiffcore/internal/schema"
)

// Partition is the result of comparing two stableId-keyed object sets:
// objects only in branch are Created, objects only in main are Dropped,
// objects in both are Common pairs for the bespoke per-kind alter logic
// to inspect.
type Partition[T schema.Identified] struct {
	Created []T
	Dropped []T
	Common  []CommonPair[T]
}

// CommonPair holds one object's main-side and branch-side records, keyed
// by the stableId they share.
type CommonPair[T schema.Identified] struct {
	StableID string
	Main     T
	Branch   T
}

// DiffObjects partitions main and branch by stableId. Iteration order
// over Created/Dropped/Common is lexicographic by stableId (spec §4.6
// tie-break rule), so downstream emission is deterministic.
func DiffObjects[T schema.Identified](main, branch map[string]T) Partition[T] {
	var p Partition[T]

	for _, id := range schema.SortedStableIDs(branch) {
		b := branch[id]
		if m, ok := main[id]; ok {
			p.Common = append(p.Common, CommonPair[T]{StableID: id, Main: m, Branch: b})
		} else {
			p.Created = append(p.Created, b)
		}
	}
	for _, id := range schema.SortedStableIDs(main) {
		if _, ok := branch[id]; !ok {
			p.Dropped = append(p.Dropped, main[id])
		}
	}
	return p
}
