package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/subcue/subcue/internal/config"
	"github.com/subcue/subcue/internal/observe"
)

var (
	configPath string
	verbose    bool
	quiet      bool

	// cfg is the effective configuration for this invocation, loaded in the
	// root PersistentPreRunE.
	cfg *config.Config

	// telemetryShutdown flushes the metrics provider; nil when telemetry is
	// disabled.
	telemetryShutdown func(context.Context) error
)

var rootCmd = &cobra.Command{
	Use:   "subcue",
	Short: "Edit word-timed subtitle documents from the command line",
	Long: `Subcue is a command-line host for the subtitle frame/word editing engine.
It reads JSON document snapshots (frames of individually timed words),
repairs timing invariants, searches and replaces across the transcript,
censors words, and reports document statistics.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath != "" {
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
		} else {
			cfg = config.Default()
		}
		setupLogging()

		if cfg.Telemetry.Enabled {
			telemetryShutdown, err = observe.InitProvider(cmd.Context(), observe.ProviderConfig{
				ServiceName: cfg.Telemetry.ServiceName,
			})
			if err != nil {
				return err
			}
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if telemetryShutdown == nil {
			return nil
		}
		return telemetryShutdown(cmd.Context())
	},
}

func setupLogging() {
	level := slog.LevelInfo
	switch cfg.Logging.Level {
	case config.LogDebug:
		level = slog.LevelDebug
	case config.LogWarn:
		level = slog.LevelWarn
	case config.LogError:
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// editorMetrics returns the metrics instance commands should hand to the
// editor, or nil when telemetry is disabled.
func editorMetrics() *observe.Metrics {
	if cfg == nil || !cfg.Telemetry.Enabled {
		return nil
	}
	return observe.DefaultMetrics()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")
}
