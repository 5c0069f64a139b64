// Package exhaustive finds the optimal menu selection under a calorie budget
// by enumerating every include/exclude decision.
//
// 🚀 How it works:
//
//	For the first remaining item, two branches are explored:
//	  A (include), only if the item fits the remaining budget: recurse on the
//	                rest with the budget reduced, then put the item in front.
//	  B (exclude), always: recurse on the rest with the same budget.
//	The branch with the higher total value wins. An empty list yields the
//	empty selection.
//
// ⚖️ Ties:
//
//	On exactly equal value the include branch wins by default (PreferInclude).
//	WithTieBreak(PreferExclude) flips that. A pruned include branch is never a
//	candidate, so it cannot win a tie against a zero-value exclude branch.
//
// ⚠️ Cost:
//
//	No memoization is done although (index, remaining) states repeat; every
//	feasible path is walked. This keeps the search honest and illustrative,
//	and limits it to tens of items, not hundreds.
//
// Complexity:
//
//   - Time:   O(2ⁿ)
//   - Memory: O(n) recursion depth plus the returned selection
package exhaustive
