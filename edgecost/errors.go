// SPDX-License-Identifier: MIT
// Package: lvroute/edgecost
//
// errors.go — sentinel errors for the edgecost package.
//
// Error policy:
//   • Callers branch with errors.Is(err, ErrX); never on strings.
//   • ErrMissingEdge is always delivered as *MissingEdgeError so callers can
//     recover the offending pair with errors.As.

package edgecost

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvroute/symbol"
)

var (
	// ErrMissingEdge indicates that neither orientation of a pair has a cost.
	ErrMissingEdge = errors.New("edgecost: missing edge")

	// ErrSelfLoop indicates an insert with identical endpoints.
	ErrSelfLoop = errors.New("edgecost: self-loop not allowed")

	// ErrNegativeCost indicates an insert with a cost below zero.
	ErrNegativeCost = errors.New("edgecost: negative cost")
)

// MissingEdgeError identifies the pair that has no recorded cost.
// A and B keep the orientation in which the lookup was attempted.
type MissingEdgeError struct {
	A, B symbol.Location
}

func (e *MissingEdgeError) Error() string {
	return fmt.Sprintf("edgecost: missing edge {%d, %d}", e.A, e.B)
}

// Unwrap lets errors.Is(err, ErrMissingEdge) match.
func (e *MissingEdgeError) Unwrap() error { return ErrMissingEdge }

// Key returns the canonical key of the missing pair.
func (e *MissingEdgeError) Key() EdgeKey { return NewEdgeKey(e.A, e.B) }
