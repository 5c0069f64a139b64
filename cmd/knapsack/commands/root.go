package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/knapsack/logging"
	"github.com/katalvlaran/knapsack/telemetry"
	"github.com/katalvlaran/knapsack/timing"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is overridden at build time with -ldflags "-X ...commands.Version=...".
var Version = "dev"

const (
	appName   = "knapsack"
	envPrefix = "KNAPSACK"

	keyConfig       = "config"
	keyLogLevel     = "log-level"
	keyOTLPEndpoint = "otlp-endpoint"
	keyMetricsFile  = "metrics-file"

	keyCount      = "count"
	keyCapacity   = "capacity"
	keySeed       = "seed"
	keyItems      = "items"
	keyAlgorithms = "algorithms"
	keyFormat     = "format"
	keyTieBreak   = "tie-break"
	keyOutput     = "output"
)

// app holds the state shared by every subcommand of one invocation.
type app struct {
	v        *viper.Viper
	cfgFile  string
	registry *prometheus.Registry
	metrics  *timing.Metrics
	shutdown telemetry.ShutdownFunc

	// now is the clock handed to timing blocks.
	now func() time.Time
}

func newApp() *app {
	reg := prometheus.NewRegistry()
	return &app{
		v:        viper.New(),
		registry: reg,
		metrics:  timing.NewMetrics(reg),
		now:      time.Now,
	}
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	a := newApp()
	err := a.rootCommand().ExecuteContext(context.Background())
	if cerr := a.close(context.Background()); cerr != nil {
		slog.Error("telemetry shutdown failed", "error", cerr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Pick the most valuable dishes within a calorie budget",
		Long: `knapsack - 0/1 knapsack over a menu of dishes

A greedy selector ranks dishes by value per calorie; an exhaustive selector
tries every include/exclude combination and is always optimal.

Without a subcommand knapsack behaves like "knapsack run": 50 generated
dishes, a 1500 kcal budget, both selectors timed.`,
		Version:           Version,
		Args:              cobra.NoArgs,
		RunE:              a.runE,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.writeMetrics()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, keyConfig, "", "config file (default $HOME/.knapsack.yaml)")
	pf.String(keyLogLevel, "", "log level: debug, info, warn, error (default $LOG_LEVEL or info)")
	pf.String(keyOTLPEndpoint, "", `trace exporter: "stdout" or an OTLP/HTTP URL (empty disables)`)
	pf.String(keyMetricsFile, "", "write Prometheus metrics in textfile format to this path")
	addRunFlags(root.Flags())

	root.AddCommand(
		a.runCommand(),
		a.generateCommand(),
		a.compareCommand(),
	)

	return root
}

// setup reads configuration, then installs logging and tracing.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	if err := a.initConfig(); err != nil {
		return err
	}

	if errOut := cmd.ErrOrStderr(); errOut == os.Stderr {
		logging.SetDefaultStructuredLoggerWithLevel(appName, Version, a.v.GetString(keyLogLevel))
	} else {
		logging.SetDefaultStructuredLoggerWithWriter(errOut, appName, Version, a.v.GetString(keyLogLevel))
	}
	if used := a.v.ConfigFileUsed(); used != "" {
		slog.Debug("config loaded", "path", used)
	}

	shutdown, err := telemetry.Init(cmd.Context(), telemetry.Config{
		ServiceName:    appName,
		ServiceVersion: Version,
		Endpoint:       a.v.GetString(keyOTLPEndpoint),
		Writer:         cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	a.shutdown = shutdown

	return nil
}

// initConfig loads the config file and KNAPSACK_* environment variables.
// An explicit --config must exist; the default one is optional.
func (a *app) initConfig() error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	explicit := a.cfgFile != ""
	if explicit {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		a.v.SetConfigFile(filepath.Join(home, "."+appName+".yaml"))
		a.v.SetConfigType("yaml")
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !explicit && (errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

func (a *app) writeMetrics() error {
	path := a.v.GetString(keyMetricsFile)
	if path == "" {
		return nil
	}
	if err := a.metrics.WriteTextfile(path); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	slog.Debug("metrics written", "path", path)

	return nil
}

func (a *app) close(ctx context.Context) error {
	if a.shutdown == nil {
		return nil
	}
	err := a.shutdown(ctx)
	a.shutdown = nil

	return err
}
