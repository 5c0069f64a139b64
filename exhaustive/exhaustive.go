package exhaustive

import "github.com/katalvlaran/knapsack/item"

// chain is an immutable cons list; prepending shares the tail, so each
// include branch costs one small allocation instead of a slice copy.
type chain struct {
	it   item.Item
	next *chain
	n    int
}

func (c *chain) push(it item.Item) *chain {
	var n = 1
	if c != nil {
		n += c.n
	}

	return &chain{it: it, next: c, n: n}
}

func (c *chain) selection() item.Selection {
	if c == nil {
		return item.Selection{}
	}
	var out = make(item.Selection, 0, c.n)
	for ; c != nil; c = c.next {
		out = append(out, c.it)
	}

	return out
}

// searcher carries per-call state; nothing is shared between calls.
type searcher struct {
	items         []item.Item
	preferInclude bool
	stats         Stats
}

// best returns the optimal chain and its value for items[idx:] under remaining.
func (s *searcher) best(idx, remaining int) (*chain, int) {
	s.stats.Calls++
	if idx > s.stats.MaxDepth {
		s.stats.MaxDepth = idx
	}
	if idx == len(s.items) {
		return nil, 0
	}

	var (
		first = s.items[idx]
		withC *chain
		withV int
		fits  bool
	)
	// Branch A: include, only when it fits.
	if first.Calories <= remaining {
		withC, withV = s.best(idx+1, remaining-first.Calories)
		withC = withC.push(first)
		withV += first.Value
		fits = true
	} else {
		s.stats.Pruned++
	}

	// Branch B: exclude, unconditionally.
	withoutC, withoutV := s.best(idx+1, remaining)

	switch {
	case !fits:
		return withoutC, withoutV
	case withV > withoutV:
		return withC, withV
	case withV == withoutV && s.preferInclude:
		return withC, withV
	default:
		return withoutC, withoutV
	}
}

// Search runs the exhaustive include/exclude recursion and returns the
// optimal selection together with search statistics.
//
// Contract:
//   - The selection is feasible for capacity ≥ 0 and empty for capacity < 0.
//   - Its total value is the maximum over all feasible subsets.
//   - Items appear in menu order.
//   - items is read-only; repeated calls give identical results.
//
// Complexity: O(2ⁿ) time, O(n) stack.
func Search(items []item.Item, capacity int, opts ...Option) Result {
	var o = DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var s = searcher{
		items:         items,
		preferInclude: o.TieBreak == PreferInclude,
	}
	c, v := s.best(0, capacity)

	return Result{
		Selection: c.selection(),
		Value:     v,
		Stats:     s.stats,
	}
}

// Select returns the optimal selection for capacity.
// It is Search without the statistics.
func Select(items []item.Item, capacity int, opts ...Option) item.Selection {
	return Search(items, capacity, opts...).Selection
}
