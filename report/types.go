package report

import (
	"errors"
	"math"

	"github.com/katalvlaran/knapsack/item"
)

// Sentinel errors.
var (
	// ErrUnknownFormat is returned for a Format outside SupportedFormats.
	ErrUnknownFormat = errors.New("report: unknown format")

	// ErrUnsupportedValue is returned when the table format gets a value it cannot draw.
	ErrUnsupportedValue = errors.New("report: value cannot be rendered as a table")
)

// Row is one item as it appears in a report.
type Row struct {
	Name     string   `json:"name" yaml:"name"`
	Calories int      `json:"calories" yaml:"calories"`
	Value    int      `json:"value" yaml:"value"`
	Density  *float64 `json:"density" yaml:"density"`
}

// Totals sums a list of rows.
type Totals struct {
	Calories int      `json:"calories" yaml:"calories"`
	Value    int      `json:"value" yaml:"value"`
	Density  *float64 `json:"density" yaml:"density"`
}

// Run is a labelled list of items, typically a menu or one selector's output.
type Run struct {
	Label     string  `json:"label" yaml:"label"`
	Algorithm string  `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	Capacity  int     `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	Items     []Row   `json:"items" yaml:"items"`
	Totals    Totals  `json:"totals" yaml:"totals"`
	ElapsedMS float64 `json:"elapsed_ms,omitempty" yaml:"elapsed_ms,omitempty"`
}

// finite returns &f, or nil when f is NaN or ±Inf.
func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}

	return &f
}

// NewRun builds a Run from items without modifying them.
func NewRun(label string, items []item.Item) Run {
	var rows = make([]Row, len(items))
	for i, it := range items {
		rows[i] = Row{
			Name:     it.Name,
			Calories: it.Calories,
			Value:    it.Value,
			Density:  finite(it.Density()),
		}
	}

	var sel = item.Selection(items)

	return Run{
		Label: label,
		Items: rows,
		Totals: Totals{
			Calories: sel.TotalCalories(),
			Value:    sel.TotalValue(),
			Density:  finite(sel.Density()),
		},
	}
}
