// Package tsp - brute-force search driver.
//
// SolveBruteForce wires the pieces into a producer → transform → reduce
// pipeline:
//
//	permute.Generator ──journey──▶ JourneyCost ──CostedJourney──▶ OptimalSet
//
// Sequential mode (workers == 1) pulls the whole minimal-change sequence from
// one generator. Sharded mode splits [0, n!) into contiguous ranges, seeks a
// generator to each range start with permute.NewAt, searches the shards
// concurrently (errgroup), then merges the per-shard OptimalSets in shard
// order, which yields the same Result as the sequential run.
//
// Failure policy:
//   - A missing edge aborts the whole run; there is no partial result.
//   - Context cancellation aborts with ctx.Err(), checked every
//     cancelCheckEvery journeys.
package tsp

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvroute/permute"
	"github.com/katalvlaran/lvroute/symbol"
)

// cancelCheckEvery spaces out ctx.Err() polls in the hot loop.
const cancelCheckEvery = 1 << 10

// SolveBruteForce enumerates every ordering of locs and returns the minimum
// total cost together with all orderings achieving it.
//
// Contracts:
//   - locs holds distinct Locations; their order seeds the enumeration.
//   - table must price every pair of distinct locs (complete graph).
//   - Fewer than two locations yield Minimum 0 and a single winner.
//
// Errors: ErrNilTable, ErrInvalidOptions, ErrDuplicateLocation,
// permute.ErrTooLarge (sharded mode), edgecost.ErrMissingEdge (wrapped),
// ErrCostOverflow, ctx.Err().
//
// Complexity: O(n·n!) time; O(n) memory plus the winners.
func SolveBruteForce(ctx context.Context, table CostLookup, locs []symbol.Location, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateAll(table, locs, o); err != nil {
		return Result{}, err
	}

	if o.workers == 1 {
		var (
			set = NewOptimalSet()
			gen = permute.New(locs)
		)
		evaluated, err := searchShard(ctx, table, gen, math.MaxUint64, set, o, o.logger)
		if err != nil {
			return Result{}, err
		}

		return resultOf(set, evaluated), nil
	}

	return solveSharded(ctx, table, locs, o)
}

// solveSharded runs one searchShard per permute.Range and merges in order.
func solveSharded(ctx context.Context, table CostLookup, locs []symbol.Location, o options) (Result, error) {
	ranges, err := permute.Split(len(locs), o.workers)
	if err != nil {
		return Result{}, fmt.Errorf("tsp: split search space: %w", err)
	}

	var (
		sets      = make([]*OptimalSet, len(ranges))
		evaluated = make([]uint64, len(ranges))
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.workers)

	for s, r := range ranges {
		eg.Go(func() error {
			gen, err := permute.NewAt(locs, r.Start)
			if err != nil {
				return fmt.Errorf("tsp: shard %d: %w", s, err)
			}
			log := o.logger.With(slog.Int("shard", s))
			log.Debug("shard started", slog.Uint64("start", r.Start), slog.Uint64("end", r.End))

			sets[s] = NewOptimalSet()
			evaluated[s], err = searchShard(egCtx, table, gen, r.Len(), sets[s], o, log)
			if err != nil {
				return err
			}
			log.Debug("shard finished", slog.Uint64("evaluated", evaluated[s]), slog.Int("winners", sets[s].Len()))

			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return Result{}, err
	}

	var (
		merged = NewOptimalSet()
		total  uint64
	)
	for s := range sets {
		merged.Merge(sets[s])
		total += evaluated[s]
	}

	return resultOf(merged, total), nil
}

// searchShard pulls at most limit journeys from gen, costs them and feeds
// set. It returns how many journeys were evaluated.
func searchShard(
	ctx context.Context,
	table CostLookup,
	gen *permute.Generator[symbol.Location],
	limit uint64,
	set *OptimalSet,
	o options,
	log *slog.Logger,
) (uint64, error) {
	var (
		pulled    uint64
		evaluated uint64
		journey   []symbol.Location
		cost      int64
		ok        bool
		err       error
	)
	for pulled = 0; pulled < limit; pulled++ {
		if pulled%cancelCheckEvery == 0 {
			if err = ctx.Err(); err != nil {
				return evaluated, err
			}
		}
		if journey, ok = gen.Next(); !ok {
			break
		}
		if !o.distinctReversals && !IsCanonicalDirection(journey) {
			continue
		}

		if cost, err = JourneyCost(journey, table); err != nil {
			return evaluated, err
		}
		if set.Observe(CostedJourney{Journey: journey, Cost: cost}) == Improved {
			log.Debug("new minimum", slog.Int64("cost", cost), slog.String("journey", DebugString(journey)))
		}
		evaluated++

		if o.progressEvery > 0 && evaluated%o.progressEvery == 0 {
			minimum, _ := set.Minimum()
			log.Debug("progress", slog.Uint64("evaluated", evaluated), slog.Int64("minimum", minimum))
		}
	}

	return evaluated, nil
}

func resultOf(set *OptimalSet, evaluated uint64) Result {
	minimum, _ := set.Minimum()

	return Result{
		Minimum:   minimum,
		Winners:   set.Winners(),
		Evaluated: evaluated,
	}
}
