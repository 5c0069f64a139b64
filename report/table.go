package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/katalvlaran/knapsack/item"
	"github.com/katalvlaran/knapsack/selector"
)

const noDensity = "-"

var (
	colorAccent = lipgloss.Color("#00FF99")
	colorMuted  = lipgloss.Color("#874BFD")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

// Table writes items as a titled table with a totals row.
func Table(w io.Writer, items []item.Item, label string) error {
	return renderRun(w, NewRun(label, items))
}

func formatDensity(d *float64) string {
	if d == nil {
		return noDensity
	}

	return strconv.FormatFloat(*d, 'f', 4, 64)
}

func renderRun(w io.Writer, run Run) error {
	var rows = make([][]string, 0, len(run.Items)+1)
	for _, r := range run.Items {
		rows = append(rows, []string{
			r.Name,
			strconv.Itoa(r.Calories),
			strconv.Itoa(r.Value),
			formatDensity(r.Density),
		})
	}
	rows = append(rows, []string{
		"Total",
		strconv.Itoa(run.Totals.Calories),
		strconv.Itoa(run.Totals.Value),
		formatDensity(run.Totals.Density),
	})

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			default:
				return numberStyle
			}
		}).
		Headers("Name", "Calories", "Value", "Density").
		Rows(rows...)

	if _, err := fmt.Fprintln(w, titleStyle.Render(run.Label)); err != nil {
		return fmt.Errorf("report: write title: %w", err)
	}
	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return fmt.Errorf("report: write table: %w", err)
	}

	return nil
}

func renderComparison(w io.Writer, cmp selector.Comparison) error {
	if err := renderRun(w, NewRun(selector.Greedy.String(), cmp.Greedy)); err != nil {
		return err
	}
	if err := renderRun(w, NewRun(selector.Exhaustive.String(), cmp.Exhaustive)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "capacity %d: greedy %d, exhaustive %d, gap %d\n",
		cmp.Capacity, cmp.Greedy.TotalValue(), cmp.Exhaustive.TotalValue(), cmp.Gap)

	return err
}
