// Package tsp - journey cost evaluation.
//
// A journey of m locations has m-1 legs (ordering[k], ordering[k+1]). Its
// cost is the sum of the leg lookups; journeys with fewer than two
// locations cost 0. The first lookup failure aborts the evaluation: a
// journey with an unpriced leg has no defined cost.
//
// Complexity:
//   - O(m) time, O(1) extra space.
package tsp

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvroute/symbol"
)

// JourneyCost sums the cost of every consecutive leg of journey.
//
// Errors: the lookup error (e.g. *edgecost.MissingEdgeError) wrapped with
// the leg index, ErrCostOverflow.
func JourneyCost(journey []symbol.Location, table CostLookup) (int64, error) {
	if table == nil {
		return 0, ErrNilTable
	}

	var (
		sum int64
		w   int64
		k   int
		ok  bool
		err error
	)
	for k = 0; k+1 < len(journey); k++ {
		w, err = table.Lookup(journey[k], journey[k+1])
		if err != nil {
			return 0, fmt.Errorf("tsp: leg %d: %w", k, err)
		}
		if sum, ok = checkedAdd(sum, w); !ok {
			return 0, ErrCostOverflow
		}
	}

	return sum, nil
}

// Legs returns the consecutive pairs of journey, in order.
//
// Complexity: O(m).
func Legs(journey []symbol.Location) []Leg {
	if len(journey) < 2 {
		return nil
	}
	out := make([]Leg, len(journey)-1)
	for k := range out {
		out[k] = Leg{From: journey[k], To: journey[k+1]}
	}

	return out
}

// checkedAdd returns a+b and whether it stayed in range.
func checkedAdd[C constraints.Signed](a, b C) (C, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return s, false
	}

	return s, true
}
