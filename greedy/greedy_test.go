package greedy_test

import (
	"testing"

	"github.com/katalvlaran/knapsack/greedy"
	"github.com/katalvlaran/knapsack/item"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// menuABC is the three-item menu used across the selector tests.
func menuABC() []item.Item {
	return []item.Item{
		{Name: "A", Calories: 100, Value: 5}, // density 0.05
		{Name: "B", Calories: 200, Value: 6}, // density 0.03
		{Name: "C", Calories: 150, Value: 9}, // density 0.06
	}
}

// TestSelect_MatchesOptimum: density order C, A, B; C (rest 100), A (rest 0) → {C, A}, value 14.
func TestSelect_MatchesOptimum(t *testing.T) {
	sel := greedy.Select(menuABC(), 250)

	assert.Equal(t, []string{"C", "A"}, sel.Names(), "selection keeps density order")
	assert.Equal(t, 14, sel.TotalValue())
	assert.Equal(t, 250, sel.TotalCalories())
}

// TestSelect_Suboptimal shows one dense item crowding out two lighter ones.
func TestSelect_Suboptimal(t *testing.T) {
	items := []item.Item{
		{Name: "steak", Calories: 600, Value: 7}, // density ≈0.0117
		{Name: "salad", Calories: 500, Value: 5}, // density 0.01
		{Name: "soup", Calories: 500, Value: 5},  // density 0.01
	}
	sel := greedy.Select(items, 1000)

	assert.Equal(t, []string{"steak"}, sel.Names())
	assert.Equal(t, 7, sel.TotalValue(), "greedy wastes 400 calories; optimum is salad+soup=10")
}

// TestOrder_StableTies checks that equal densities keep menu order.
func TestOrder_StableTies(t *testing.T) {
	items := []item.Item{
		{Name: "x", Calories: 200, Value: 2}, // 0.01
		{Name: "y", Calories: 100, Value: 1}, // 0.01
		{Name: "z", Calories: 100, Value: 3}, // 0.03
		{Name: "w", Calories: 300, Value: 3}, // 0.01
	}
	assert.Equal(t, []int{2, 0, 1, 3}, greedy.Order(items))
}

// TestSelect_ZeroCalories: free items rank first, in menu order, and are always taken.
func TestSelect_ZeroCalories(t *testing.T) {
	items := []item.Item{
		{Name: "A", Calories: 100, Value: 5},
		{Name: "water", Calories: 0, Value: 1},
		{Name: "tea", Calories: 0, Value: 3},
	}
	assert.Equal(t, []int{1, 2, 0}, greedy.Order(items))

	sel := greedy.Select(items, 0)
	assert.Equal(t, []string{"water", "tea"}, sel.Names())

	sel = greedy.Select(items, 100)
	assert.Equal(t, []string{"water", "tea", "A"}, sel.Names())
}

// TestSelect_Boundaries covers capacity 0, negative capacity, an empty menu
// and a budget that fits everything.
func TestSelect_Boundaries(t *testing.T) {
	items := menuABC()

	assert.Empty(t, greedy.Select(items, 0), "capacity 0 admits nothing")
	assert.Empty(t, greedy.Select(items, -10), "negative capacity degrades to empty")
	assert.Empty(t, greedy.Select(nil, 1000), "empty menu yields empty selection")

	all := greedy.Select(items, 450)
	assert.ElementsMatch(t, items, []item.Item(all), "capacity ≥ total takes everything")
}

// TestSelect_NoMutation ensures the caller's slice is left untouched.
func TestSelect_NoMutation(t *testing.T) {
	items := menuABC()
	before := append([]item.Item(nil), items...)

	_ = greedy.Select(items, 250)
	_ = greedy.Order(items)
	assert.Equal(t, before, items)
}

// TestSelect_FeasibleAndIdempotent runs many seeded menus.
func TestSelect_FeasibleAndIdempotent(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		items, err := item.Generate(40, item.WithSeed(seed))
		require.NoError(t, err)

		for _, capacity := range []int{0, 100, 777, 1500, 5000} {
			first := greedy.Select(items, capacity)
			second := greedy.Select(items, capacity)
			require.True(t, first.Feasible(capacity), "seed=%d cap=%d over budget: %d", seed, capacity, first.TotalCalories())
			require.Equal(t, first, second, "seed=%d cap=%d not idempotent", seed, capacity)
		}
	}
}
