// Package edgecost stores the travel cost between two locations, keyed by
// an unordered pair.
//
// Every pair {a, b} is kept under its canonical EdgeKey (Lo < Hi), so a cost
// inserted as (A, B) is found when asking for (B, A). Lookup of a pair that
// was never inserted fails with *MissingEdgeError, which matches
// ErrMissingEdge under errors.Is.
//
//	tab := edgecost.NewTable()
//	_ = tab.Insert(a, b, 30)
//	c, _ := tab.Lookup(b, a) // 30
//
// The table is built once and then read; it carries no locks.
package edgecost
