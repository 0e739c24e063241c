// Package report renders a brute-force search result for humans.
//
//	Lowest cost 50, journeys [[B A C] [C A B]]
//
// Journeys are printed with their location names, in discovery order.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvroute/symbol"
	"github.com/katalvlaran/lvroute/tsp"
)

// Format returns the one-line summary of res.
func Format(res tsp.Result, syms *symbol.Table) (string, error) {
	journeys := make([][]string, len(res.Winners))
	for i, w := range res.Winners {
		names, err := syms.Names(w)
		if err != nil {
			return "", fmt.Errorf("report: journey %d: %w", i, err)
		}
		journeys[i] = names
	}

	return fmt.Sprintf("Lowest cost %d, journeys %v", res.Minimum, journeys), nil
}

// Text writes the one-line summary of res followed by a newline.
func Text(w io.Writer, res tsp.Result, syms *symbol.Table) error {
	line, err := Format(res, syms)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, line)

	return err
}

// Table writes one winner per line as "A → B → C", prefixed by its rank.
func Table(w io.Writer, res tsp.Result, syms *symbol.Table) error {
	if _, err := fmt.Fprintf(w, "cost %d, %d optimal journey(s), %d evaluated\n",
		res.Minimum, len(res.Winners), res.Evaluated); err != nil {
		return err
	}
	for i, j := range res.Winners {
		names, err := syms.Names(j)
		if err != nil {
			return fmt.Errorf("report: journey %d: %w", i, err)
		}
		if _, err = fmt.Fprintf(w, "%3d. %s\n", i+1, strings.Join(names, " → ")); err != nil {
			return err
		}
	}

	return nil
}
