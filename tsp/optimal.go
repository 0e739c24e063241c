// Package tsp - tie-preserving minimum tracker.
//
// OptimalSet consumes CostedJourney values and keeps every journey tied for
// the lowest cost seen so far:
//
//	cost <  minimum → minimum = cost, winners = [journey]
//	cost == minimum → winners = append(winners, journey)
//	cost >  minimum → ignored
//
// Winners keep first-observed order. Merging two sets applies the same rule,
// so merging per-shard sets in shard order reproduces the sequential result.
package tsp

import "github.com/katalvlaran/lvroute/symbol"

// Outcome describes what Observe did with a journey.
type Outcome int

const (
	// Rejected means the journey cost more than the current minimum.
	Rejected Outcome = iota
	// Tied means the journey was appended to the winners.
	Tied
	// Improved means the journey set a new minimum.
	Improved
)

func (o Outcome) String() string {
	switch o {
	case Improved:
		return "improved"
	case Tied:
		return "tied"
	default:
		return "rejected"
	}
}

// OptimalSet tracks the journeys tied for the minimum cost.
// The zero value is ready to use.
type OptimalSet struct {
	minimum int64
	seen    bool
	winners [][]symbol.Location
}

// NewOptimalSet returns an empty set with an unbounded minimum.
func NewOptimalSet() *OptimalSet {
	return &OptimalSet{}
}

// Observe feeds one costed journey into the set.
// The journey slice is retained, not copied.
func (s *OptimalSet) Observe(cj CostedJourney) Outcome {
	switch {
	case !s.seen || cj.Cost < s.minimum:
		s.seen = true
		s.minimum = cj.Cost
		s.winners = append(s.winners[:0:0], cj.Journey)
		return Improved
	case cj.Cost == s.minimum:
		s.winners = append(s.winners, cj.Journey)
		return Tied
	default:
		return Rejected
	}
}

// Merge folds other into s with the Observe rule, keeping s's winners ahead
// of other's on a tie. other is left unchanged.
func (s *OptimalSet) Merge(other *OptimalSet) {
	if other == nil || !other.seen {
		return
	}
	switch {
	case !s.seen || other.minimum < s.minimum:
		s.seen = true
		s.minimum = other.minimum
		s.winners = append([][]symbol.Location(nil), other.winners...)
	case other.minimum == s.minimum:
		s.winners = append(s.winners, other.winners...)
	}
}

// Minimum returns the current minimum and whether any journey was observed.
// Before the first observation it returns (Unbounded, false).
func (s *OptimalSet) Minimum() (int64, bool) {
	if !s.seen {
		return Unbounded, false
	}

	return s.minimum, true
}

// Winners returns the tied journeys in discovery order.
// The outer slice is a copy; the journeys themselves are shared.
func (s *OptimalSet) Winners() [][]symbol.Location {
	return append([][]symbol.Location(nil), s.winners...)
}

// Len returns the number of tied journeys.
func (s *OptimalSet) Len() int { return len(s.winners) }
