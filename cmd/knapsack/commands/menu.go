package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/knapsack/exhaustive"
	"github.com/katalvlaran/knapsack/item"
	"github.com/katalvlaran/knapsack/report"
	"github.com/katalvlaran/knapsack/selector"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	defaultCount    = 50
	defaultCapacity = 1500
)

// addMenuFlags registers the flags that choose or build the item list.
func addMenuFlags(fs *pflag.FlagSet) {
	fs.IntP(keyCount, "n", defaultCount, "number of items to generate")
	fs.Int64(keySeed, 0, "generator seed (random when unset)")
	fs.String(keyItems, "", "load items from a JSON or YAML file instead of generating")
}

func addCapacityFlags(fs *pflag.FlagSet) {
	fs.IntP(keyCapacity, "c", defaultCapacity, "calorie budget")
	fs.String(keyTieBreak, exhaustive.PreferInclude.String(), "exhaustive tie-break: prefer-include or prefer-exclude")
}

// addFormatFlag registers --format and the --output destination.
func addFormatFlag(fs *pflag.FlagSet, def report.Format) {
	fs.StringP(keyFormat, "o", string(def), "output format: "+strings.Join(report.SupportedFormats(), ", "))
	fs.StringP(keyOutput, "O", "", "write output to this file instead of stdout")
}

// writer opens --output, or falls back to the command's stdout. Close it when done.
func (a *app) writer(cmd *cobra.Command, format report.Format) (*report.Writer, error) {
	path := a.v.GetString(keyOutput)
	if path == "" {
		return report.NewWriter(format, cmd.OutOrStdout()), nil
	}
	slog.Debug("writing output to file", "path", path, "format", format)

	return report.NewFileWriter(format, path)
}

// loadMenu reads --items when given, otherwise generates --count items.
func (a *app) loadMenu() ([]item.Item, error) {
	if path := a.v.GetString(keyItems); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open items: %w", err)
		}
		defer f.Close()

		items, err := item.Decode(f, item.FormatFromPath(path))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		slog.Debug("items loaded", "path", path, "items", len(items))

		return items, nil
	}

	var opts []item.Option
	if a.v.IsSet(keySeed) {
		opts = append(opts, item.WithSeed(a.v.GetInt64(keySeed)))
	}
	items, err := item.Generate(a.v.GetInt(keyCount), opts...)
	if err != nil {
		return nil, err
	}
	slog.Debug("items generated", "items", len(items), "seeded", a.v.IsSet(keySeed))

	return items, nil
}

func (a *app) format() (report.Format, error) {
	return report.ParseFormat(a.v.GetString(keyFormat))
}

func (a *app) exhaustiveOptions() ([]exhaustive.Option, error) {
	tb, err := exhaustive.ParseTieBreak(a.v.GetString(keyTieBreak))
	if err != nil {
		return nil, err
	}

	return []exhaustive.Option{exhaustive.WithTieBreak(tb)}, nil
}

// algorithms parses --algorithms; entries may be comma or space separated.
func (a *app) algorithms() ([]selector.Algorithm, error) {
	var out []selector.Algorithm
	for _, raw := range a.v.GetStringSlice(keyAlgorithms) {
		for _, name := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' }) {
			algo, err := selector.ParseAlgorithm(name)
			if err != nil {
				return nil, err
			}
			out = append(out, algo)
		}
	}
	if len(out) == 0 {
		return selector.Algorithms(), nil
	}

	return out, nil
}
