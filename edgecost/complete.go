// SPDX-License-Identifier: MIT
// Package: lvroute/edgecost
//
// complete.go — NewComplete constructor and weight functions.
//
// Contract:
//   • Emits each unordered pair {locs[i], locs[j]} with i<j exactly once,
//     in lexicographic (i,j) order.
//   • Weights come from a WeightFn; a fixed rng seed gives a fixed table.
//
// Complexity:
//   • Time O(n²), Space O(n²) for the resulting table.

package edgecost

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvroute/symbol"
)

// WeightFn produces the cost of edge {a, b}. rng may be nil.
type WeightFn func(rng *rand.Rand, a, b symbol.Location) int64

// ConstantWeightFn always yields value.
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand, _, _ symbol.Location) int64 { return value }
}

// UniformWeightFn samples uniformly in [lo, hi]. A nil rng yields lo.
func UniformWeightFn(lo, hi int64) WeightFn {
	return func(rng *rand.Rand, _, _ symbol.Location) int64 {
		if rng == nil || hi <= lo {
			return lo
		}
		return lo + rng.Int63n(hi-lo+1)
	}
}

// NewComplete builds the complete graph over locs.
//
// Errors: ErrSelfLoop if locs repeats a location, ErrNegativeCost if fn
// yields a negative weight.
func NewComplete(locs []symbol.Location, rng *rand.Rand, fn WeightFn) (*Table, error) {
	t := NewTable()

	var (
		i, j int
		w    int64
	)
	for i = 0; i < len(locs); i++ {
		for j = i + 1; j < len(locs); j++ {
			w = fn(rng, locs[i], locs[j])
			if err := t.Insert(locs[i], locs[j], w); err != nil {
				return nil, fmt.Errorf("NewComplete: Insert(%d,%d,%d): %w", locs[i], locs[j], w, err)
			}
		}
	}

	return t, nil
}
