// SPDX-License-Identifier: MIT
// Package: lvroute/loader
//
// loader.go — cost-table reader for the line-oriented edge format.
//
// Format (one edge per line, whitespace separated):
//
//	<location-a> <location-b> <cost>
//
// where cost is a base-10 non-negative integer. Blank lines and lines whose
// first non-blank character is '#' are skipped.
//
// Contract:
//   • Insert is called once per edge line; later lines overwrite earlier
//     ones for the same unordered pair.
//   • Locations are returned deduplicated, in first-seen order, unless
//     WithSortedLocations is given.
//   • Any bad line aborts the load with *LineError (errors.Is → ErrMalformedLine).

package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvroute/edgecost"
	"github.com/katalvlaran/lvroute/symbol"
)

var (
	// ErrMalformedLine classifies every input-format failure.
	ErrMalformedLine = errors.New("loader: malformed line")

	// ErrFieldCount indicates a line without exactly three fields.
	ErrFieldCount = errors.New("loader: want 3 fields: <location-a> <location-b> <cost>")

	// ErrNilSymbols indicates a nil symbol table.
	ErrNilSymbols = errors.New("loader: nil symbol table")
)

// LineError reports the offending line of the input.
type LineError struct {
	Line int    // 1-based line number
	Text string // raw line content
	Err  error  // underlying cause
}

func (e *LineError) Error() string {
	return fmt.Sprintf("loader: line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes both ErrMalformedLine and the underlying cause.
func (e *LineError) Unwrap() []error { return []error{ErrMalformedLine, e.Err} }

type options struct {
	sorted bool
}

// Option configures Load.
type Option func(o *options)

// WithSortedLocations returns locations ordered by name instead of by first
// appearance.
func WithSortedLocations() Option {
	return func(o *options) { o.sorted = true }
}

// Load parses r into a fresh edge-cost table, interning names into syms.
func Load(r io.Reader, syms *symbol.Table, opts ...Option) (*edgecost.Table, []symbol.Location, error) {
	if syms == nil {
		return nil, nil, ErrNilSymbols
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var (
		tab    = edgecost.NewTable()
		locs   []symbol.Location
		seen   = make(map[symbol.Location]struct{})
		sc     = bufio.NewScanner(r)
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		text := sc.Text()
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		a, b, cost, err := parseLine(trimmed, syms)
		if err == nil {
			err = tab.Insert(a, b, cost)
		}
		if err != nil {
			return nil, nil, &LineError{Line: lineNo, Text: text, Err: err}
		}

		for _, l := range [2]symbol.Location{a, b} {
			if _, ok := seen[l]; !ok {
				seen[l] = struct{}{}
				locs = append(locs, l)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("loader: read: %w", err)
	}

	if o.sorted {
		sortByName(locs, syms)
	}

	return tab, locs, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string, syms *symbol.Table, opts ...Option) (*edgecost.Table, []symbol.Location, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	tab, locs, err := Load(f, syms, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return tab, locs, nil
}

// parseLine splits one non-blank line into its edge.
func parseLine(line string, syms *symbol.Table) (symbol.Location, symbol.Location, int64, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, 0, ErrFieldCount
	}
	cost, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return 0, 0, 0, err
	}
	a, err := syms.Intern(fields[0])
	if err != nil {
		return 0, 0, 0, err
	}
	b, err := syms.Intern(fields[1])
	if err != nil {
		return 0, 0, 0, err
	}

	return a, b, cost, nil
}

// sortByName orders locs by their interned names.
func sortByName(locs []symbol.Location, syms *symbol.Table) {
	slices.SortFunc(locs, func(x, y symbol.Location) int {
		nx, _ := syms.Name(x)
		ny, _ := syms.Name(y)
		return strings.Compare(nx, ny)
	})
}
