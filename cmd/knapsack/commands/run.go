package commands

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/knapsack/exhaustive"
	"github.com/katalvlaran/knapsack/item"
	"github.com/katalvlaran/knapsack/report"
	"github.com/katalvlaran/knapsack/selector"
	"github.com/katalvlaran/knapsack/timing"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel/attribute"
)

func (a *app) runCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a menu and time each selector on it",
		Example: `  knapsack run
  knapsack run --seed 42 --capacity 1200 --algorithms greedy
  knapsack run --items menu.yaml --format json --output run.json`,
		Args: cobra.NoArgs,
		RunE: a.runE,
	}
	addRunFlags(cmd.Flags())

	return cmd
}

// addRunFlags registers the flags shared by "run" and the bare root command.
func addRunFlags(fs *pflag.FlagSet) {
	addMenuFlags(fs)
	addCapacityFlags(fs)
	addFormatFlag(fs, report.FormatTable)
	fs.StringSliceP(keyAlgorithms, "a", []string{selector.Greedy.String(), selector.Exhaustive.String()}, "selectors to run, in order")
}

func (a *app) runE(cmd *cobra.Command, _ []string) error {
	format, err := a.format()
	if err != nil {
		return err
	}
	algos, err := a.algorithms()
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

	w, err := a.writer(cmd, format)
	if err != nil {
		return err
	}
	defer w.Close()

	var (
		ctx      = cmd.Context()
		out      = w.Output()
		capacity = a.v.GetInt(keyCapacity)
		menu     = report.NewRun("menu", items)
	)
	menu.Capacity = capacity
	runs := []report.Run{menu}
	slog.Info("run started", "items", len(items), "capacity", capacity, "algorithms", len(algos), "format", format)

	for _, algo := range algos {
		if format == report.FormatTable {
			if err := w.Serialize(ctx, menu); err != nil {
				return err
			}
		}

		// Only the selector is measured; output is written after the block stops.
		var (
			sel      item.Selection
			solveErr error
		)
		elapsed := timing.Measure(ctx, algo.String(), func(ctx context.Context) {
			sel, solveErr = solve(ctx, algo, items, capacity, exOpts)
		},
			timing.WithWriter(nil),
			timing.WithClock(a.now),
			timing.WithMetrics(a.metrics),
			timing.WithAttributes(
				attribute.Int("items", len(items)),
				attribute.Int("capacity", capacity),
			),
		)
		if solveErr != nil {
			return solveErr
		}

		slog.Info("selection done",
			"algorithm", algo.String(),
			"value", sel.TotalValue(),
			"calories", sel.TotalCalories(),
			"elapsed_ms", timing.Milliseconds(elapsed))

		if format == report.FormatTable {
			if err := report.Table(out, sel, algo.String()+" selection"); err != nil {
				return err
			}
			if err := timing.WriteLine(out, algo.String(), elapsed); err != nil {
				return err
			}
			continue
		}

		run := report.NewRun(algo.String()+" selection", sel)
		run.Algorithm = algo.String()
		run.Capacity = capacity
		run.ElapsedMS = timing.Milliseconds(elapsed)
		runs = append(runs, run)
	}

	if format == report.FormatTable {
		return w.Close()
	}
	if err := w.Serialize(ctx, runs); err != nil {
		return err
	}

	return w.Close()
}

// solve dispatches one algorithm; exhaustive runs also log search statistics.
func solve(ctx context.Context, algo selector.Algorithm, items []item.Item, capacity int, opts []exhaustive.Option) (item.Selection, error) {
	if algo != selector.Exhaustive {
		return selector.Solve(algo, items, capacity, opts...)
	}

	res := exhaustive.Search(items, capacity, opts...)
	slog.DebugContext(ctx, "exhaustive search",
		"calls", res.Stats.Calls,
		"pruned", res.Stats.Pruned,
		"max_depth", res.Stats.MaxDepth,
		"value", res.Value)

	return res.Selection, nil
}
