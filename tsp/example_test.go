// Package tsp_test provides runnable, deterministic examples for the
// brute-force solver. Each example prints a stable // Output: block.
package tsp_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvroute/edgecost"
	"github.com/katalvlaran/lvroute/symbol"
	"github.com/katalvlaran/lvroute/tsp"
)

// ExampleSolveBruteForce finds the cheapest journeys over three cities.
func ExampleSolveBruteForce() {
	names := symbol.NewTable()
	a, _ := names.Intern("A")
	b, _ := names.Intern("B")
	c, _ := names.Intern("C")

	tab := edgecost.NewTable()
	_ = tab.Insert(a, b, 20)
	_ = tab.Insert(a, c, 30)
	_ = tab.Insert(b, c, 40)

	res, err := tsp.SolveBruteForce(context.Background(), tab, names.Locations())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("lowest cost:", res.Minimum)
	for _, w := range res.Winners {
		journey, _ := names.Names(w)
		fmt.Println(journey)
	}
	// Output:
	// lowest cost: 50
	// [B A C]
	// [C A B]
}

// ExampleOptimalSet shows how ties accumulate and an improvement resets them.
func ExampleOptimalSet() {
	s := tsp.NewOptimalSet()
	for i, cost := range []int64{80, 50, 50, 90, 50} {
		out := s.Observe(tsp.CostedJourney{Journey: []symbol.Location{symbol.Location(i)}, Cost: cost})
		fmt.Println(cost, out)
	}
	m, _ := s.Minimum()
	fmt.Println("minimum", m, "winners", s.Winners())
	// Output:
	// 80 improved
	// 50 improved
	// 50 tied
	// 90 rejected
	// 50 tied
	// minimum 50 winners [[1] [2] [4]]
}
