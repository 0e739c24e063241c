// Package tsp - journey utilities.
//
// Helpers that operate purely on journey structure (Location sequences),
// without consulting any cost table:
//   - ValidateJourney: verify a journey is a permutation of a location set.
//   - Reverse: the same journey walked backwards.
//   - IsCanonicalDirection: pick one of a journey and its reverse.
//   - DebugString: compact printable form for tests and logs.
package tsp

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/lvroute/symbol"
)

// ValidateJourney checks that journey visits every element of locs exactly
// once and nothing else.
//
// Complexity: O(n) time, O(n) space.
func ValidateJourney(journey, locs []symbol.Location) error {
	if len(journey) != len(locs) {
		return fmt.Errorf("tsp: journey has %d locations, want %d", len(journey), len(locs))
	}
	want := make(map[symbol.Location]bool, len(locs))
	for _, l := range locs {
		want[l] = false
	}
	for _, l := range journey {
		visited, ok := want[l]
		if !ok {
			return fmt.Errorf("tsp: journey visits unknown location %d", l)
		}
		if visited {
			return fmt.Errorf("%w: %d visited twice", ErrDuplicateLocation, l)
		}
		want[l] = true
	}

	return nil
}

// Reverse returns a new slice holding journey in reverse order.
func Reverse(journey []symbol.Location) []symbol.Location {
	out := slices.Clone(journey)
	slices.Reverse(out)

	return out
}

// IsCanonicalDirection reports whether journey starts at a smaller Location
// than it ends. Exactly one of a journey over distinct locations and its
// reverse is canonical; journeys shorter than two are always canonical.
func IsCanonicalDirection(journey []symbol.Location) bool {
	if len(journey) < 2 {
		return true
	}

	return journey[0] < journey[len(journey)-1]
}

// DebugString renders a journey as "0→2→1".
func DebugString(journey []symbol.Location) string {
	var sb strings.Builder
	for k, l := range journey {
		if k > 0 {
			sb.WriteString("→")
		}
		fmt.Fprintf(&sb, "%d", l)
	}

	return sb.String()
}
