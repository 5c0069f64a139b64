// Package selector defines the Algorithm enum, sentinels and result types.
package selector

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/knapsack/item"
)

// ErrUnsupportedAlgorithm is returned for an Algorithm outside the known set.
var ErrUnsupportedAlgorithm = errors.New("selector: unsupported algorithm")

// Algorithm names a selection strategy.
type Algorithm int

const (
	// Greedy ranks by value density and fills the budget in one pass.
	Greedy Algorithm = iota

	// Exhaustive enumerates include/exclude decisions; always optimal.
	Exhaustive
)

// Algorithms lists every supported Algorithm in display order.
func Algorithms() []Algorithm {
	return []Algorithm{Greedy, Exhaustive}
}

// String implements fmt.Stringer. The names double as CLI values.
func (a Algorithm) String() string {
	switch a {
	case Greedy:
		return "greedy"
	case Exhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a case-insensitive name back to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "greedy":
		return Greedy, nil
	case "exhaustive", "brute-force", "bruteforce":
		return Exhaustive, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
}

// Comparison holds both selections for one menu and budget.
type Comparison struct {
	Capacity   int            `json:"capacity" yaml:"capacity"`
	Greedy     item.Selection `json:"greedy" yaml:"greedy"`
	Exhaustive item.Selection `json:"exhaustive" yaml:"exhaustive"`

	// Gap is exhaustive value minus greedy value; never negative.
	Gap int `json:"gap" yaml:"gap"`
}

// Optimal reports whether greedy reached the optimum.
func (c Comparison) Optimal() bool {
	return c.Gap == 0
}
