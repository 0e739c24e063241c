// Package tsp - validation utilities for SolveBruteForce.
//
// Deterministic, side-effect free checks that return only sentinel errors
// (wrapped with context). O(n) for locations, O(n²) for the optional
// completeness check of the cost table.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/lvroute/permute"
	"github.com/katalvlaran/lvroute/symbol"
)

// validateAll checks options, the location set and, when the table supports
// it, that every pair of locations has a cost.
func validateAll(table CostLookup, locs []symbol.Location, o options) error {
	if table == nil {
		return ErrNilTable
	}
	if err := validateOptions(o); err != nil {
		return err
	}
	if err := validateLocations(locs); err != nil {
		return err
	}
	if o.workers > 1 && len(locs) > MaxLocations {
		return fmt.Errorf("tsp: %d locations: %w", len(locs), permute.ErrTooLarge)
	}
	if c, ok := table.(completenessChecker); ok {
		if err := c.Complete(locs); err != nil {
			return fmt.Errorf("tsp: incomplete cost table: %w", err)
		}
	}

	return nil
}

// validateOptions rejects out-of-domain option values.
func validateOptions(o options) error {
	if o.workers < 1 {
		return fmt.Errorf("%w: workers=%d", ErrInvalidOptions, o.workers)
	}

	return nil
}

// validateLocations rejects repeated locations.
//
// Complexity: O(n) time and space.
func validateLocations(locs []symbol.Location) error {
	seen := make(map[symbol.Location]struct{}, len(locs))
	for _, l := range locs {
		if _, dup := seen[l]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateLocation, l)
		}
		seen[l] = struct{}{}
	}

	return nil
}
