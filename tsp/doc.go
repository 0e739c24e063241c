// Package tsp provides an exact brute-force solver for small Travelling
// Salesman instances over a complete, undirected, integer-weighted graph.
//
// It enumerates every ordering ("journey") of the locations with the
// minimal-change generator from package permute, prices each one against an
// edge-cost table, and keeps every journey tied for the lowest cost.
//
//   - SolveBruteForce — the full search, sequential or sharded.
//
//   - Complexity: O(n·n!)
//
//   - Memory:     O(n) plus the tied winners
//
//   - JourneyCost — sum of the m-1 consecutive legs of one journey.
//
//   - OptimalSet  — tie-preserving minimum tracker, mergeable across shards.
//
// Journeys are open paths: the cost does not include a return leg. A journey
// and its reverse cost the same and are both reported unless
// WithDistinctReversals(false) is given.
//
// A missing edge is fatal: the search aborts with an error matching
// edgecost.ErrMissingEdge and reports no partial minimum.
//
// Use this package as an exact baseline on small instances (n≲12).
package tsp
