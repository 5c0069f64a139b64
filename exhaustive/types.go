// Package exhaustive defines tie-break policy, options and search statistics.
package exhaustive

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/knapsack/item"
)

// ErrUnknownTieBreak is returned by ParseTieBreak for an unrecognized name.
var ErrUnknownTieBreak = errors.New("exhaustive: unknown tie-break policy")

// TieBreak decides which branch wins when include and exclude are worth
// exactly the same.
type TieBreak int

const (
	// PreferInclude keeps the item on a tie. Default.
	PreferInclude TieBreak = iota

	// PreferExclude drops the item on a tie.
	PreferExclude
)

// String implements fmt.Stringer.
func (tb TieBreak) String() string {
	switch tb {
	case PreferInclude:
		return "prefer-include"
	case PreferExclude:
		return "prefer-exclude"
	default:
		return "unknown"
	}
}

// ParseTieBreak maps "prefer-include" / "include" and "prefer-exclude" /
// "exclude" (case-insensitive) to a TieBreak. Empty means PreferInclude.
func ParseTieBreak(name string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "prefer-include", "include":
		return PreferInclude, nil
	case "prefer-exclude", "exclude":
		return PreferExclude, nil
	default:
		return PreferInclude, fmt.Errorf("%w: %q", ErrUnknownTieBreak, name)
	}
}

// Option configures the search via functional arguments.
type Option func(*Options)

// Options holds search parameters.
type Options struct {
	// TieBreak selects the winner on equal total value.
	TieBreak TieBreak
}

// DefaultOptions returns Options with TieBreak = PreferInclude.
func DefaultOptions() Options {
	return Options{TieBreak: PreferInclude}
}

// WithTieBreak sets the tie-break policy. Unknown values are ignored and the
// default PreferInclude stays in effect.
func WithTieBreak(tb TieBreak) Option {
	return func(o *Options) {
		switch tb {
		case PreferInclude, PreferExclude:
			o.TieBreak = tb
		}
	}
}

// Stats counts the work done by one search.
type Stats struct {
	// Calls is the number of recursive invocations, base cases included.
	Calls int64

	// Pruned is the number of include branches skipped because the item
	// did not fit the remaining budget.
	Pruned int64

	// MaxDepth is the deepest recursion level reached (== len(items) when non-empty).
	MaxDepth int
}

// Result is the outcome of Search.
type Result struct {
	// Selection is the optimal subset, in menu order.
	Selection item.Selection

	// Value is Selection.TotalValue(), kept to avoid recomputation.
	Value int

	// Stats describes the search effort.
	Stats Stats
}
