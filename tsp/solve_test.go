package tsp_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/katalvlaran/lvroute/edgecost"
	"github.com/katalvlaran/lvroute/permute"
	"github.com/katalvlaran/lvroute/symbol"
	"github.com/katalvlaran/lvroute/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveBruteForce_ThreeCities(t *testing.T) {
	res, err := tsp.SolveBruteForce(context.Background(), abcTable(t), j(locA, locB, locC))
	require.NoError(t, err)

	assert.Equal(t, int64(50), res.Minimum)
	assert.Equal(t, [][]symbol.Location{
		j(locB, locA, locC),
		j(locC, locA, locB),
	}, res.Winners)
	assert.Equal(t, uint64(6), res.Evaluated)
}

func TestSolveBruteForce_CollapsedReversals(t *testing.T) {
	res, err := tsp.SolveBruteForce(context.Background(), abcTable(t), j(locA, locB, locC),
		tsp.WithDistinctReversals(false))
	require.NoError(t, err)

	assert.Equal(t, int64(50), res.Minimum)
	assert.Equal(t, [][]symbol.Location{j(locB, locA, locC)}, res.Winners)
	assert.Equal(t, uint64(3), res.Evaluated)
}

func TestSolveBruteForce_Degenerate(t *testing.T) {
	ctx := context.Background()
	tab := edgecost.NewTable()

	res, err := tsp.SolveBruteForce(ctx, tab, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Minimum)
	require.Len(t, res.Winners, 1)
	assert.Empty(t, res.Winners[0])

	res, err = tsp.SolveBruteForce(ctx, tab, j(locD))
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Minimum)
	assert.Equal(t, [][]symbol.Location{j(locD)}, res.Winners)

	res, err = tsp.SolveBruteForce(ctx, tab, j(locD), tsp.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, [][]symbol.Location{j(locD)}, res.Winners)
}

func TestSolveBruteForce_MissingEdgeAborts(t *testing.T) {
	tab := edgecost.NewTable()
	require.NoError(t, tab.Insert(locA, locB, 20))
	require.NoError(t, tab.Insert(locB, locC, 40))

	res, err := tsp.SolveBruteForce(context.Background(), tab, j(locA, locB, locC))
	require.ErrorIs(t, err, edgecost.ErrMissingEdge)
	var me *edgecost.MissingEdgeError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, edgecost.EdgeKey{Lo: locA, Hi: locC}, me.Key())
	assert.Zero(t, res.Evaluated)
	assert.Nil(t, res.Winners)
}

func TestSolveBruteForce_MissingEdgeDuringEnumeration(t *testing.T) {
	// lazyLookup has no completeness check: the first journey (A,B,C) is
	// priced fine and the second (B,A,C) hits the missing A-C leg.
	lookup := lazyLookup{
		{Lo: locA, Hi: locB}: 20,
		{Lo: locB, Hi: locC}: 40,
	}
	for _, workers := range []int{1, 3} {
		res, err := tsp.SolveBruteForce(context.Background(), lookup, j(locA, locB, locC), tsp.WithWorkers(workers))
		require.ErrorIs(t, err, edgecost.ErrMissingEdge, "workers=%d", workers)
		var me *edgecost.MissingEdgeError
		require.True(t, errors.As(err, &me))
		assert.Equal(t, edgecost.EdgeKey{Lo: locA, Hi: locC}, me.Key())
		assert.Equal(t, tsp.Result{}, res)
	}
}

func TestSolveBruteForce_Validation(t *testing.T) {
	ctx := context.Background()
	tab := abcTable(t)

	_, err := tsp.SolveBruteForce(ctx, nil, j(locA))
	require.ErrorIs(t, err, tsp.ErrNilTable)

	_, err = tsp.SolveBruteForce(ctx, tab, j(locA, locB, locA))
	require.ErrorIs(t, err, tsp.ErrDuplicateLocation)

	_, err = tsp.SolveBruteForce(ctx, tab, j(locA, locB), tsp.WithWorkers(0))
	require.ErrorIs(t, err, tsp.ErrInvalidOptions)

	many := make([]symbol.Location, tsp.MaxLocations+1)
	for i := range many {
		many[i] = symbol.Location(i)
	}
	_, err = tsp.SolveBruteForce(ctx, lazyLookup{}, many, tsp.WithWorkers(2))
	require.ErrorIs(t, err, permute.ErrTooLarge)
}

func TestSolveBruteForce_Cancelled(t *testing.T) {
	tab, locs := randomTable(t, 8, seedDet, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tsp.SolveBruteForce(ctx, tab, locs)
	require.ErrorIs(t, err, context.Canceled)

	_, err = tsp.SolveBruteForce(ctx, tab, locs, tsp.WithWorkers(4))
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolveBruteForce_ShardedMatchesSequential(t *testing.T) {
	ctx := context.Background()
	for _, seed := range []int64{1, 2, 3, seedDet} {
		tab, locs := randomTable(t, 7, seed, 6)

		want, err := tsp.SolveBruteForce(ctx, tab, locs)
		require.NoError(t, err)
		require.Equal(t, uint64(5040), want.Evaluated)

		for _, workers := range []int{2, 3, 8, 64} {
			got, err := tsp.SolveBruteForce(ctx, tab, locs, tsp.WithWorkers(workers))
			require.NoError(t, err)
			require.Equal(t, want, got, "seed=%d workers=%d", seed, workers)
		}

		half, err := tsp.SolveBruteForce(ctx, tab, locs, tsp.WithWorkers(3), tsp.WithDistinctReversals(false))
		require.NoError(t, err)
		assert.Equal(t, want.Minimum, half.Minimum)
		assert.Equal(t, uint64(2520), half.Evaluated)
		assert.Len(t, want.Winners, 2*len(half.Winners))
	}
}

func TestSolveBruteForce_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tab, locs := randomTable(t, 5, seedDet, 9)

	_, err := tsp.SolveBruteForce(context.Background(), tab, locs,
		tsp.WithLogger(logger), tsp.WithProgressEvery(40), tsp.WithWorkers(2))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "shard started")
	assert.Contains(t, out, "new minimum")
	assert.Contains(t, out, "progress")
	assert.Contains(t, out, "shard finished")
}
