// SPDX-License-Identifier: MIT
// Package: lvroute/edgecost
//
// table.go — undirected edge-cost storage keyed by canonical pairs.
//
// Contract:
//   • Insert(a,b,c) and Insert(b,a,c) address the same entry; last write wins.
//   • Lookup(a,b) tries (a,b) first, then (b,a), and fails with
//     *MissingEdgeError when neither is present.
//   • Costs are non-negative int64.
//
// Concurrency:
//   • Not goroutine-safe for writers. The solver builds a Table once and only
//     reads it afterwards, so concurrent Lookup calls need no locking.

package edgecost

import (
	"cmp"
	"maps"
	"slices"

	"github.com/katalvlaran/lvroute/symbol"
)

// EdgeKey is the canonical form of an unordered pair: Lo < Hi.
type EdgeKey struct {
	Lo, Hi symbol.Location
}

// NewEdgeKey returns the canonical key of {a, b}.
// It is pure: NewEdgeKey(a,b) == NewEdgeKey(b,a).
func NewEdgeKey(a, b symbol.Location) EdgeKey {
	if b < a {
		a, b = b, a
	}

	return EdgeKey{Lo: a, Hi: b}
}

// Reversed returns the pair with its endpoints exchanged.
// The result is not canonical unless Lo == Hi.
func (k EdgeKey) Reversed() EdgeKey { return EdgeKey{Lo: k.Hi, Hi: k.Lo} }

// Table stores the cost of undirected edges between Locations.
type Table struct {
	costs map[EdgeKey]int64
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{costs: make(map[EdgeKey]int64)}
}

// Insert records cost for the unordered pair {a, b}, overwriting any
// previous value stored under either orientation.
//
// Errors: ErrSelfLoop, ErrNegativeCost.
// Complexity: O(1) amortized.
func (t *Table) Insert(a, b symbol.Location, cost int64) error {
	if a == b {
		return ErrSelfLoop
	}
	if cost < 0 {
		return ErrNegativeCost
	}
	t.costs[NewEdgeKey(a, b)] = cost

	return nil
}

// Lookup returns the cost for {a, b}, trying (a,b) before (b,a).
// With canonical storage both probes resolve to one map entry, so the
// second probe only runs for pairs that are absent.
//
// Complexity: O(1).
func (t *Table) Lookup(a, b symbol.Location) (int64, error) {
	if c, ok := t.costs[EdgeKey{Lo: a, Hi: b}]; ok {
		return c, nil
	}
	if c, ok := t.costs[EdgeKey{Lo: b, Hi: a}]; ok {
		return c, nil
	}

	return 0, &MissingEdgeError{A: a, B: b}
}

// Has reports whether {a, b} has a recorded cost.
func (t *Table) Has(a, b symbol.Location) bool {
	_, ok := t.costs[NewEdgeKey(a, b)]
	return ok
}

// Len returns the number of stored undirected edges.
func (t *Table) Len() int { return len(t.costs) }

// Edges returns all canonical keys in ascending (Lo, Hi) order.
//
// Complexity: O(E log E).
func (t *Table) Edges() []EdgeKey {
	keys := slices.Collect(maps.Keys(t.costs))
	slices.SortFunc(keys, func(x, y EdgeKey) int {
		if c := cmp.Compare(x.Lo, y.Lo); c != 0 {
			return c
		}
		return cmp.Compare(x.Hi, y.Hi)
	})

	return keys
}

// Locations returns every distinct endpoint in ascending order.
//
// Complexity: O(E log V).
func (t *Table) Locations() []symbol.Location {
	seen := make(map[symbol.Location]struct{}, 2*len(t.costs))
	for k := range t.costs {
		seen[k.Lo] = struct{}{}
		seen[k.Hi] = struct{}{}
	}
	out := slices.Collect(maps.Keys(seen))
	slices.Sort(out)

	return out
}

// Complete checks that every pair of distinct locs has a cost.
// It returns the first missing pair in (i<j) index order of locs.
//
// Complexity: O(V²).
func (t *Table) Complete(locs []symbol.Location) error {
	var i, j int
	for i = 0; i < len(locs); i++ {
		for j = i + 1; j < len(locs); j++ {
			if locs[i] == locs[j] {
				continue
			}
			if !t.Has(locs[i], locs[j]) {
				return &MissingEdgeError{A: locs[i], B: locs[j]}
			}
		}
	}

	return nil
}

// Clone returns an independent copy of t.
func (t *Table) Clone() *Table {
	return &Table{costs: maps.Clone(t.costs)}
}
