// SPDX-License-Identifier: MIT
// Package: lvroute/symbol
//
// symbol.go — caller-owned interning of location names.
//
// Contract:
//   • Intern assigns dense handles 0,1,2,… in first-seen order.
//   • Interning the same name twice returns the same handle.
//   • Handles are plain integers: O(1) equality and ordering, cheap to copy.
//   • There is no global pool; every Table is independent.
//
// Concurrency:
//   • A Table is NOT goroutine-safe for writers. Build it once, then share
//     read-only (Name/Lookup/Names are safe for concurrent readers).

package symbol

import (
	"errors"
	"fmt"
)

// Sentinel errors for symbol table operations.
var (
	// ErrEmptyName indicates an attempt to intern the empty string.
	ErrEmptyName = errors.New("symbol: empty name")

	// ErrUnknownLocation indicates a handle that was not issued by this table.
	ErrUnknownLocation = errors.New("symbol: unknown location")
)

// Location is an opaque handle for an interned location name.
type Location uint32

// Table maps raw names to Location handles and back.
type Table struct {
	names []string            // handle → name
	index map[string]Location // name → handle
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{index: make(map[string]Location)}
}

// Intern returns the handle for name, allocating a new one on first sight.
//
// Complexity: O(1) amortized.
func (t *Table) Intern(name string) (Location, error) {
	if name == "" {
		return 0, ErrEmptyName
	}
	if loc, ok := t.index[name]; ok {
		return loc, nil
	}
	loc := Location(len(t.names))
	t.names = append(t.names, name)
	t.index[name] = loc

	return loc, nil
}

// Lookup returns the handle for name without interning it.
func (t *Table) Lookup(name string) (Location, bool) {
	loc, ok := t.index[name]
	return loc, ok
}

// Name returns the raw name behind loc.
func (t *Table) Name(loc Location) (string, error) {
	if int(loc) >= len(t.names) {
		return "", fmt.Errorf("%w: %d", ErrUnknownLocation, loc)
	}

	return t.names[loc], nil
}

// Names resolves every handle of locs, preserving order.
//
// Complexity: O(len(locs)).
func (t *Table) Names(locs []Location) ([]string, error) {
	out := make([]string, len(locs))
	var (
		i   int
		err error
	)
	for i = range locs {
		if out[i], err = t.Name(locs[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Len reports how many distinct names have been interned.
func (t *Table) Len() int { return len(t.names) }

// Locations returns every issued handle in allocation (first-seen) order.
func (t *Table) Locations() []Location {
	out := make([]Location, len(t.names))
	for i := range out {
		out[i] = Location(i)
	}

	return out
}
