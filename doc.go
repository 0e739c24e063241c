// Package lvroute is an exact, brute-force journey planner for small
// complete graphs: given the cost of travelling between every pair of
// locations, it finds every ordering that visits each location once at the
// lowest total cost.
//
// Under the hood, everything is organized in small subpackages:
//
//	symbol/   — caller-owned interning of location names into integer handles
//	edgecost/ — undirected edge-cost table keyed by canonical pairs
//	permute/  — minimal-change (one swap per step) permutation generator,
//	            seek-to-k and shard splitting
//	tsp/      — journey cost, tie-preserving minimum tracker, brute-force solver
//	loader/   — reader for "<location-a> <location-b> <cost>" text tables
//	report/   — human-readable rendering of results
//	config/   — TOML configuration for the lvroute command
//
// Quick ASCII example:
//
//	    A──20──B
//	     \    /
//	     30  40
//	       \/
//	       C
//
// has two cheapest journeys, B→A→C and C→A→B, both costing 50.
//
// The search enumerates n! orderings, so it is meant for n≲12.
//
//	go install github.com/katalvlaran/lvroute/cmd/lvroute@latest
package lvroute
