// Package tsp_test provides lightweight helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvroute/edgecost"
	"github.com/katalvlaran/lvroute/symbol"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	locA symbol.Location = iota
	locB
	locC
	locD
	locE
)

// seedDet is a deterministic seed for random cost tables.
const seedDet = int64(42)

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

// abcTable is the three-city fixture: A-B=20, A-C=30, B-C=40.
func abcTable(t testing.TB) *edgecost.Table {
	t.Helper()
	tab := edgecost.NewTable()
	require.NoError(t, tab.Insert(locA, locB, 20))
	require.NoError(t, tab.Insert(locA, locC, 30))
	require.NoError(t, tab.Insert(locB, locC, 40))

	return tab
}

// randomTable builds a complete table over n locations with weights in
// [1, hi]. A small hi produces many ties.
func randomTable(t testing.TB, n int, seed int64, hi int64) (*edgecost.Table, []symbol.Location) {
	t.Helper()
	locs := make([]symbol.Location, n)
	for i := range locs {
		locs[i] = symbol.Location(i)
	}
	tab, err := edgecost.NewComplete(locs, rand.New(rand.NewSource(seed)), edgecost.UniformWeightFn(1, hi))
	require.NoError(t, err)

	return tab, locs
}

// -----------------------------------------------------------------------------
// Minimal CostLookup without an up-front completeness check, so missing
// edges are only discovered while enumerating.
// -----------------------------------------------------------------------------

type lazyLookup map[edgecost.EdgeKey]int64

func (m lazyLookup) Lookup(a, b symbol.Location) (int64, error) {
	if c, ok := m[edgecost.EdgeKey{Lo: a, Hi: b}]; ok {
		return c, nil
	}
	if c, ok := m[edgecost.EdgeKey{Lo: b, Hi: a}]; ok {
		return c, nil
	}

	return 0, &edgecost.MissingEdgeError{A: a, B: b}
}

// j is shorthand for a journey literal.
func j(locs ...symbol.Location) []symbol.Location { return locs }
