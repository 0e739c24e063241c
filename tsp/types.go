// Package tsp - shared types and sentinel errors.
//
// Error policy:
//   - Only sentinel variables are exported; callers branch with errors.Is.
//   - A missing edge surfaces as *edgecost.MissingEdgeError, wrapped with the
//     position of the leg that needed it.
//   - No panics on user input.
package tsp

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvroute/permute"
	"github.com/katalvlaran/lvroute/symbol"
)

var (
	// ErrDuplicateLocation indicates the location set repeats a Location.
	ErrDuplicateLocation = errors.New("tsp: duplicate location")

	// ErrInvalidOptions indicates an option value out of its domain.
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrCostOverflow indicates a journey cost that does not fit in int64.
	ErrCostOverflow = errors.New("tsp: journey cost overflows int64")

	// ErrNilTable indicates a nil cost table.
	ErrNilTable = errors.New("tsp: nil cost table")
)

// Unbounded is the minimum reported before any journey has been observed.
const Unbounded int64 = math.MaxInt64

// MaxLocations bounds the location count for sharded searches: shard
// boundaries are indices into [0, n!) and must fit in uint64.
const MaxLocations = permute.MaxSeekable

// CostLookup resolves the cost of the undirected edge {a, b}.
// *edgecost.Table implements it.
type CostLookup interface {
	Lookup(a, b symbol.Location) (int64, error)
}

// completenessChecker is implemented by tables that can validate the whole
// location set up front (see edgecost.Table.Complete).
type completenessChecker interface {
	Complete(locs []symbol.Location) error
}

// Leg is one consecutive pair of a journey.
type Leg struct {
	From, To symbol.Location
}

// CostedJourney pairs an ordering with its total cost.
type CostedJourney struct {
	Journey []symbol.Location
	Cost    int64
}

// Result holds the outcome of a brute-force search.
type Result struct {
	// Minimum is the lowest total cost found.
	Minimum int64

	// Winners lists every journey achieving Minimum, in discovery order.
	Winners [][]symbol.Location

	// Evaluated counts the journeys whose cost was computed.
	Evaluated uint64
}
