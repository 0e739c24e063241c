// SPDX-License-Identifier: MIT
// Package: lvroute/permute
//
// count.go — sequence length and contiguous range partitioning.

package permute

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat/combin"
)

// MaxSeekable is the largest n whose n! fits the uint64 index space used by
// Count, NewAt and Split.
const MaxSeekable = 20

var (
	// ErrIndexOutOfRange indicates a seek index beyond n!.
	ErrIndexOutOfRange = errors.New("permute: index out of range")

	// ErrTooLarge indicates n > MaxSeekable.
	ErrTooLarge = errors.New("permute: too many elements to index")

	// ErrBadShardCount indicates a non-positive shard count.
	ErrBadShardCount = errors.New("permute: shard count must be positive")
)

// Count returns n!, the number of permutations a generator over n
// elements produces. n ≤ 1 yields 1.
func Count(n int) (uint64, error) {
	if n < 0 || n > MaxSeekable {
		return 0, fmt.Errorf("%w: n=%d", ErrTooLarge, n)
	}
	if n <= 1 {
		return 1, nil
	}

	return uint64(combin.NumPermutations(n, n)), nil
}

// Range is the half-open index interval [Start, End) of a shard.
type Range struct {
	Start, End uint64
}

// Len returns End − Start.
func (r Range) Len() uint64 { return r.End - r.Start }

// Split partitions [0, n!) into at most shards contiguous, non-empty ranges
// of near-equal length, in ascending order.
func Split(n, shards int) ([]Range, error) {
	if shards <= 0 {
		return nil, ErrBadShardCount
	}
	total, err := Count(n)
	if err != nil {
		return nil, err
	}
	if uint64(shards) > total {
		shards = int(total)
	}

	var (
		out   = make([]Range, 0, shards)
		base  = total / uint64(shards)
		extra = total % uint64(shards)
		start uint64
		size  uint64
	)
	for s := 0; s < shards; s++ {
		size = base
		if uint64(s) < extra {
			size++
		}
		out = append(out, Range{Start: start, End: start + size})
		start += size
	}

	return out, nil
}
