package commands

import (
	"github.com/katalvlaran/knapsack/report"
	"github.com/spf13/cobra"
)

func (a *app) generateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a generated menu",
		Long: `Print a generated menu. JSON and YAML output can be fed back with
"knapsack run --items <file>".`,
		Example: `  knapsack generate --count 10 --seed 7 --format yaml > menu.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := a.format()
			if err != nil {
				return err
			}
			items, err := a.loadMenu()
			if err != nil {
				return err
			}

			w, err := a.writer(cmd, format)
			if err != nil {
				return err
			}
			defer w.Close()

			var v any = items
			if format == report.FormatTable {
				v = report.NewRun("menu", items)
			}
			if err := w.Serialize(cmd.Context(), v); err != nil {
				return err
			}

			return w.Close()
		},
	}

	addMenuFlags(cmd.Flags())
	addFormatFlag(cmd.Flags(), report.FormatYAML)

	return cmd
}
