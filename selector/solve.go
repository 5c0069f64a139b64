package selector

import (
	"fmt"

	"github.com/katalvlaran/knapsack/exhaustive"
	"github.com/katalvlaran/knapsack/greedy"
	"github.com/katalvlaran/knapsack/item"
)

// Solve routes items and capacity to algo.
//
// Errors: ErrUnsupportedAlgorithm for an unknown algo.
//
// Complexity: per algorithm; O(n log n) for Greedy, O(2ⁿ) for Exhaustive.
func Solve(algo Algorithm, items []item.Item, capacity int, opts ...exhaustive.Option) (item.Selection, error) {
	switch algo {
	case Greedy:
		return greedy.Select(items, capacity), nil
	case Exhaustive:
		return exhaustive.Select(items, capacity, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, algo)
	}
}

// Compare runs both selectors over the same input.
func Compare(items []item.Item, capacity int, opts ...exhaustive.Option) Comparison {
	var (
		g = greedy.Select(items, capacity)
		e = exhaustive.Select(items, capacity, opts...)
	)

	return Comparison{
		Capacity:   capacity,
		Greedy:     g,
		Exhaustive: e,
		Gap:        e.TotalValue() - g.TotalValue(),
	}
}
