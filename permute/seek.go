// SPDX-License-Identifier: MIT
// Package: lvroute/permute
//
// seek.go — direct positioning at the k-th permutation of the sequence.
//
// The generator is a mixed-radix counter: level L (1 ≤ L < n) is decremented
// L times, and between two decrements the levels below run one complete
// cycle over positions [0..L-1]. Writing k in factorial base
// k = Σ c_L·L!  (0 ≤ c_L ≤ L) gives:
//   • the array: for each level from the top, apply c_L times
//     "full sub-cycle, then the level-L swap";
//   • the counters: p[L] = L − c_L, with the run of leading zeros reset to
//     p[L] = L and the cursor parked on the first non-zero level.
//
// The net effect of a full sub-cycle is a fixed position map per size,
// computed bottom-up once per call.
//
// Complexity: O(n³) time, O(n²) space; independent of k.

package permute

import "fmt"

// NewAt returns a generator whose first Next yields permutation k
// (0-indexed) of the sequence New(elems) would produce.
// k == n! returns an already exhausted generator.
//
// Errors: ErrTooLarge when n > MaxSeekable, ErrIndexOutOfRange when k > n!.
func NewAt[T any](elems []T, k uint64) (*Generator[T], error) {
	n := len(elems)
	total, err := Count(n)
	if err != nil {
		return nil, err
	}
	if k > total {
		return nil, fmt.Errorf("%w: k=%d, n!=%d", ErrIndexOutOfRange, k, total)
	}

	g := New(elems)
	if k == total {
		g.started = true
		g.i = n
		return g, nil
	}
	if k == 0 {
		return g, nil
	}

	fact := factorials(n)
	arrange(g.a, n, k, fullCycleEffects(n, fact), fact)

	var (
		level int
		rem   = k
	)
	for level = n - 1; level >= 1; level-- {
		g.p[level] = level - int(rem/fact[level])
		rem %= fact[level]
	}
	g.i = 1
	for g.i < n && g.p[g.i] == 0 {
		g.p[g.i] = g.i
		g.i++
	}

	return g, nil
}

// arrange applies the first k steps of the generator to a[0:m].
func arrange[T any](a []T, m int, k uint64, eff [][]int, fact []uint64) {
	var (
		level, j int
		c, t     uint64
	)
	for ; m > 1; m-- {
		level = m - 1
		c = k / fact[level]
		k %= fact[level]
		for t = 1; t <= c; t++ {
			applyEffect(a[:level], eff[level])
			j = 0
			if level%2 == 1 {
				j = level - int(t)
			}
			a[level], a[j] = a[j], a[level]
		}
	}
}

// applyEffect rewrites a so that a'[pos] = a[eff[pos]].
func applyEffect[T any](a []T, eff []int) {
	if len(a) < 2 {
		return
	}
	old := make([]T, len(a))
	copy(old, a)
	for pos := range a {
		a[pos] = old[eff[pos]]
	}
}

// fullCycleEffects returns eff[m] for m ∈ [0..n-1]: the position map left by
// running the generator to exhaustion over m elements.
func fullCycleEffects(n int, fact []uint64) [][]int {
	eff := make([][]int, max(n, 2))
	eff[0] = []int{}
	eff[1] = []int{0}

	var m int
	for m = 2; m < n; m++ {
		idx := make([]int, m)
		for pos := range idx {
			idx[pos] = pos
		}
		arrange(idx, m, fact[m]-1, eff, fact)
		eff[m] = idx
	}

	return eff
}

// factorials returns [0!, 1!, …, n!].
func factorials(n int) []uint64 {
	f := make([]uint64, n+1)
	f[0] = 1
	for k := 1; k <= n; k++ {
		f[k] = f[k-1] * uint64(k)
	}

	return f
}
