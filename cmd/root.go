// Package cmd provides the CLI commands for Cronoz.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cronozapp/cronoz/internal/config"
	"github.com/cronozapp/cronoz/internal/errors"
	"github.com/cronozapp/cronoz/internal/logging"
	"github.com/cronozapp/cronoz/internal/output"
	"github.com/cronozapp/cronoz/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version = "dev"
	Commit  = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDB     string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cronoz",
	Short: "Track time spent on your activities",
	Long: `Cronoz tracks how long you spend on user-defined activities and
derives daily, weekly, streak and average statistics from the record log.

Examples:
  cronoz activity add Focus
  cronoz start Focus
  cronoz stop
  cronoz today
  cronoz stats`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		// Flags override config file values.
		format := cfg.Format
		if cmd.Flags().Changed("format") {
			format = flagFormat
		}
		colorMode := cfg.Color
		if cmd.Flags().Changed("color") {
			colorMode = flagColor
		}
		dbPath := cfg.DBPath
		if cmd.Flags().Changed("db") {
			dbPath = flagDB
		}
		debug := cfg.Debug || flagDebug

		if debug {
			logging.Init(logging.DebugConfig())
		} else {
			logging.Init(logging.DefaultConfig())
		}

		opts := runtime.DefaultOptions()
		opts.DBPath = dbPath
		opts.Format = parseFormat(format)
		opts.ColorMode = parseColorMode(colorMode)
		opts.Debug = debug

		ctx, err = runtime.New(opts)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show current status
		return runStatus(cmd, args)
	},
}

func parseFormat(s string) output.Format {
	switch s {
	case "json":
		return output.FormatJSON
	case "plain":
		return output.FormatPlain
	default:
		return output.FormatCLI
	}
}

func parseColorMode(s string) output.ColorMode {
	switch s {
	case "always":
		return output.ColorAlways
	case "never":
		return output.ColorNever
	default:
		return output.ColorAuto
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli", "Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "Color mode: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database directory (':memory:' for ephemeral)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.Version = Version
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		return err
	}
	return nil
}

// printError renders an error for the user, surfacing suggestions on
// user-fixable errors.
func printError(err error) {
	formatter := output.NewFormatter()
	formatter.Writer = os.Stderr
	cli := output.NewCLIFormatter(formatter)

	var userErr *errors.UserError
	if errors.As(err, &userErr) {
		cli.Error(userErr.Error())
		if userErr.Suggestion != "" {
			cli.Muted("  " + userErr.Suggestion)
		}
		return
	}

	cli.Error(err.Error())
	logging.Error("command failed", slog.Any(logging.KeyError, err))
}
