// Package greedy selects menu items under a calorie budget with the classic
// value-density heuristic.
//
// 🚀 How it works:
//
//  1. Rank items by density = value / calories, highest first.
//     Equal densities keep their original menu order (stable ranking).
//  2. Walk the ranking once with the remaining budget.
//     Take an item if it fits and charge its calories; otherwise skip it for good.
//
// ⚠️ Not optimal:
//
//	A single dense item can crowd out two lighter items that together are
//	worth more. Use package exhaustive when the exact optimum matters.
//
// ✨ Edge cases:
//   - Zero-calorie items have +Inf density; they rank first and are taken
//     whenever capacity ≥ 0.
//   - Capacity 0 with no free items, or any negative capacity, yields an
//     empty selection.
//   - The input slice is never reordered or mutated.
//
// Complexity:
//
//   - Time:   O(n log n), dominated by the sort
//   - Memory: O(n) for the ranking permutation
package greedy
