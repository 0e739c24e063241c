// SPDX-License-Identifier: MIT
// Package: lvroute/permute
//
// generator.go — minimal-change permutation generator (countdown QuickPerm).
//
// Contract:
//   • The first Next returns the input order unchanged.
//   • Every later Next performs exactly one swap and returns a fresh copy.
//   • Exactly n! permutations are produced (one for n ≤ 1), then Next keeps
//     returning (nil, false).
//   • The order depends only on n and the input order, never on values.
//
// Complexity:
//   • O(1) amortized control work per step plus the O(n) copy handed out.
//   • O(n) memory regardless of how many permutations are pulled.

package permute

import "iter"

// Generator yields every permutation of a fixed sequence, one swap apart.
// It is single-owner state: do not share it across goroutines.
type Generator[T any] struct {
	a []T   // working sequence, mutated in place
	p []int // control counters, p[k] ∈ [0..k], p[n] == n sentinel
	n int
	i int // cursor: next level to decrement

	started bool
	lastI   int // positions exchanged by the latest step, -1 before any swap
	lastJ   int
}

// New returns a generator over a copy of elems.
//
// Complexity: O(n).
func New[T any](elems []T) *Generator[T] {
	n := len(elems)
	a := make([]T, n)
	copy(a, elems)

	return &Generator[T]{
		a:     a,
		p:     identityCounters(n),
		n:     n,
		i:     1,
		lastI: -1,
		lastJ: -1,
	}
}

// identityCounters returns [0, 1, …, n].
func identityCounters(n int) []int {
	p := make([]int, n+1)
	for k := range p {
		p[k] = k
	}

	return p
}

// Next returns the next permutation, or (nil, false) once exhausted.
func (g *Generator[T]) Next() ([]T, bool) {
	if !g.started {
		g.started = true
		return g.snapshot(), true
	}
	if g.i >= g.n {
		return nil, false
	}

	g.p[g.i]--
	j := 0
	if g.i%2 == 1 {
		j = g.p[g.i]
	}
	g.a[g.i], g.a[j] = g.a[j], g.a[g.i]
	g.lastI, g.lastJ = g.i, j

	g.i = 1
	for g.p[g.i] == 0 {
		g.p[g.i] = g.i
		g.i++
	}

	return g.snapshot(), true
}

// All adapts the remaining sequence to a range-over-func iterator.
// Breaking out of the loop leaves the generator where it stopped.
func (g *Generator[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for {
			perm, ok := g.Next()
			if !ok || !yield(perm) {
				return
			}
		}
	}
}

// Swapped reports the two positions exchanged by the most recent Next.
// ok is false before the first swap (the identity permutation has none).
func (g *Generator[T]) Swapped() (i, j int, ok bool) {
	if g.lastI < 0 {
		return 0, 0, false
	}

	return g.lastI, g.lastJ, true
}

// Len returns the number of elements being permuted.
func (g *Generator[T]) Len() int { return g.n }

// Done reports whether the generator has nothing left to produce.
func (g *Generator[T]) Done() bool { return g.started && g.i >= g.n }

func (g *Generator[T]) snapshot() []T {
	out := make([]T, g.n)
	copy(out, g.a)

	return out
}
