// Package selector is the single entry point to the knapsack selectors.
//
// It names the available algorithms, routes a menu and a calorie budget to
// the chosen one, and compares the greedy heuristic against the exhaustive
// optimum on the same input.
//
//	sel, err := selector.Solve(selector.Exhaustive, menu, 1500)
//	cmp := selector.Compare(menu, 1500)
//	fmt.Println(cmp.Gap) // how much value greedy left on the table
//
// The selectors themselves live in packages greedy and exhaustive and do not
// depend on each other or on this package.
package selector
