// Package permute enumerates every ordering of a sequence with a
// minimal-change algorithm: consecutive permutations differ by exactly one
// swap of two positions.
//
// The generator is the countdown form of QuickPerm. It is pull-based and
// keeps O(n) state, so a caller can stream all n! permutations without
// materializing them:
//
//	g := permute.New([]string{"A", "B", "C"})
//	for perm := range g.All() {
//		fmt.Println(perm) // [A B C] [B A C] [C A B] [A C B] [B C A] [C B A]
//	}
//
// Because the sequence is deterministic, the k-th permutation can be reached
// directly with NewAt, and Split cuts [0, n!) into contiguous shards that can
// be enumerated independently.
package permute
