// Package report renders menus and selections for people and machines.
//
// Table draws a lipgloss table of name / calories / value / density with a
// totals row. Writer serializes a Run (or a selector.Comparison) as JSON,
// YAML or the same table:
//
//	w := report.NewWriter(report.FormatYAML, os.Stdout)
//	defer w.Close()
//	_ = w.Serialize(ctx, report.NewRun("greedy selection", sel))
//
// Nothing here mutates the items it is given. Densities that do not exist
// (an empty list, zero total calories) are shown as "-" in tables and as
// null in JSON/YAML instead of faulting.
package report
