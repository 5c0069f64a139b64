package commands

import (
	"log/slog"

	"github.com/katalvlaran/knapsack/report"
	"github.com/katalvlaran/knapsack/selector"
	"github.com/spf13/cobra"
)

func (a *app) compareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "compare",
		Short:   "Show how far greedy falls short of the optimum",
		Example: `  knapsack compare --seed 3 --count 20 --capacity 1000`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := a.format()
			if err != nil {
				return err
			}
			exOpts, err := a.exhaustiveOptions()
			if err != nil {
				return err
			}
			items, err := a.loadMenu()
			if err != nil {
				return err
			}

			cmp := selector.Compare(items, a.v.GetInt(keyCapacity), exOpts...)
			slog.Info("comparison done", "capacity", cmp.Capacity, "gap", cmp.Gap, "greedy_optimal", cmp.Optimal())

			w, err := a.writer(cmd, format)
			if err != nil {
				return err
			}
			defer w.Close()

			if err := w.Serialize(cmd.Context(), cmp); err != nil {
				return err
			}

			return w.Close()
		},
	}

	addMenuFlags(cmd.Flags())
	addCapacityFlags(cmd.Flags())
	addFormatFlag(cmd.Flags(), report.FormatTable)

	return cmd
}
