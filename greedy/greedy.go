package greedy

import (
	"sort"

	"github.com/katalvlaran/knapsack/item"
)

// Order returns the indices of items ranked by density, highest first.
// Ties (including several zero-calorie items at +Inf) keep original order.
//
// Complexity: O(n log n) time, O(n) space.
func Order(items []item.Item) []int {
	var (
		n       = len(items)
		order   = make([]int, n)
		density = make([]float64, n)
		i       int
	)
	for i = 0; i < n; i++ {
		order[i] = i
		density[i] = items[i].Density()
	}

	// SliceStable preserves the original index order on equal keys, which
	// doubles as the secondary sort key.
	sort.SliceStable(order, func(a, b int) bool {
		return density[order[a]] > density[order[b]]
	})

	return order
}

// Select returns the greedy selection for capacity.
//
// Algorithm:
//  1. order := Order(items)
//  2. remaining := capacity
//  3. for idx in order: if items[idx].Calories ≤ remaining → take it, remaining -= Calories
//
// The result is feasible (total calories ≤ capacity) for capacity ≥ 0 and
// empty for capacity < 0. Not guaranteed optimal.
//
// Complexity: O(n log n).
func Select(items []item.Item, capacity int) item.Selection {
	var (
		order     = Order(items)
		remaining = capacity
		out       = make(item.Selection, 0, len(items))
		it        item.Item
	)
	for _, idx := range order {
		it = items[idx]
		if it.Calories > remaining {
			continue // skipped permanently, no backtracking
		}
		out = append(out, it)
		remaining -= it.Calories
	}

	return out
}
