// Package tsp - solver options.
//
// Options follow the functional-option pattern: SolveBruteForce starts from
// defaultOptions and applies each Option left to right.
package tsp

import (
	"io"
	"log/slog"
)

// DefaultWorkers runs the search on a single goroutine.
const DefaultWorkers = 1

// options is the resolved solver configuration.
type options struct {
	workers           int
	distinctReversals bool
	progressEvery     uint64
	logger            *slog.Logger
}

// Option configures SolveBruteForce.
type Option func(o *options)

func defaultOptions() options {
	return options{
		workers:           DefaultWorkers,
		distinctReversals: true,
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithWorkers sets how many shards of the permutation space are searched
// concurrently. 1 keeps the search strictly sequential.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithDistinctReversals controls whether a journey and its exact reverse are
// reported as two answers (true, the default) or as one round trip (false).
// With false only journeys satisfying IsCanonicalDirection are evaluated.
func WithDistinctReversals(distinct bool) Option {
	return func(o *options) { o.distinctReversals = distinct }
}

// WithProgressEvery logs a debug progress line every n evaluated journeys
// per shard. 0 disables progress lines.
func WithProgressEvery(n uint64) Option {
	return func(o *options) { o.progressEvery = n }
}

// WithLogger routes solver diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
