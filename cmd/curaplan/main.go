// Package main provides the curaplan CLI entry point.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gauthierbraillon/curaplan/internal/config"
	"github.com/gauthierbraillon/curaplan/internal/content"
	"github.com/gauthierbraillon/curaplan/internal/display"
	"github.com/gauthierbraillon/curaplan/internal/export"
	"github.com/gauthierbraillon/curaplan/internal/logging"
	"github.com/gauthierbraillon/curaplan/internal/planner"
	"github.com/gauthierbraillon/curaplan/internal/server"
	"github.com/gauthierbraillon/curaplan/pkg/browser"
)

// version is injected at build time via -ldflags "-X main.version=...".
var version = "dev"

// loadedEnvFiles records the .env files read at startup.
var loadedEnvFiles []string

func main() {
	logger := logging.NewLogger(os.Getenv(config.EnvLogLevel))
	loadedEnvFiles = config.LoadEnv(logger, config.DefaultEnvFiles...)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveVersion prefers the ldflags version, then the module version from build info.
func resolveVersion(ldflagsVersion string, info *debug.BuildInfo) string {
	if ldflagsVersion != "dev" {
		return ldflagsVersion
	}
	if info == nil || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "dev"
	}
	return info.Main.Version
}

func buildVersion() string {
	info, _ := debug.ReadBuildInfo()
	return resolveVersion(version, info)
}

// newRootCmd creates the root command for curaplan CLI.
func newRootCmd() *cobra.Command {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:           "curaplan",
		Short:         "Generate art-philosophy content calendars",
		Long:          "Curaplan builds a reproducible editorial calendar for an art philosophy and curation account: every day two Reels and one carousel.",
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.SetVersionTemplate("curaplan version {{.Version}}\n")

	rootCmd.AddCommand(newGenerateCmd(cfg))
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newTonesCmd(cfg))
	rootCmd.AddCommand(newPoolsCmd())
	rootCmd.AddCommand(newServeCmd(cfg))
	rootCmd.AddCommand(newConfigCmd(cfg))

	return rootCmd
}

// newGenerateCmd creates the generate subcommand.
func newGenerateCmd(cfg config.Config) *cobra.Command {
	var start string
	var days int
	var toneName string
	var seed int64
	var formatName string
	var output string
	var compact bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a content calendar",
		Long:  "Generate a calendar of daily posts. The same start, days, tone and seed always give the same calendar; change --seed for a new combination.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewLogger(cfg.LogLevel)
			logger.SetOutput(cmd.ErrOrStderr())

			tone, err := planner.ParseTone(toneName)
			if err != nil {
				return fmt.Errorf("invalid tone: %w", err)
			}
			format, err := export.ParseFormat(formatName)
			if err != nil {
				return fmt.Errorf("invalid format: %w", err)
			}

			if _, ok := planner.ParseStartDate(start); !ok && start != "" {
				logger.WithField("start", start).Warn("Unrecognised start date, starting today")
			}
			if clamped := planner.ClampDays(days); clamped != days {
				logger.WithFields(logging.Fields{"requested": days, "days": clamped}).Warn("Plan length adjusted")
			}

			schedule, err := planner.GenerateSchedule(start, days, tone, seed)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}
			logger.WithFields(logging.Fields{
				"days": len(schedule),
				"tone": tone,
				"seed": seed,
			}).Debug("Schedule generated")

			if output == "" {
				return writeSchedule(cmd.OutOrStdout(), schedule, format, compact)
			}
			if err := writeScheduleFile(output, schedule, format, compact); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Plan saved to: %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&start, "start", "s", "", "Start date (YYYY-MM-DD); defaults to today")
	cmd.Flags().IntVarP(&days, "days", "d", cfg.Days, fmt.Sprintf("Plan length in days (%d-%d)", planner.MinDays, planner.MaxDays))
	cmd.Flags().StringVarP(&toneName, "tone", "t", cfg.Tone, "Tone: "+toneNames())
	cmd.Flags().Int64Var(&seed, "seed", 0, "Regeneration seed; change it for a new combination")
	cmd.Flags().StringVarP(&formatName, "format", "f", "text", "Output format (text, json, yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the plan to a file instead of stdout")
	cmd.Flags().BoolVar(&compact, "compact", false, "Text format only: one line per day")

	return cmd
}

func writeSchedule(w io.Writer, schedule []planner.DailyPlan, format export.Format, compact bool) error {
	if format != export.FormatText {
		return export.Encode(w, schedule, format)
	}

	formatter := display.NewTerminalFormatter()
	if compact {
		_, err := fmt.Fprint(w, formatter.FormatOverview(schedule, 80))
		return err
	}
	_, err := fmt.Fprint(w, formatter.FormatSchedule(schedule))
	return err
}

// writeScheduleFile writes the schedule to path. The file is closed before
// returning so a failed flush is reported.
func writeScheduleFile(path string, schedule []planner.DailyPlan, format export.Format, compact bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := writeSchedule(f, schedule, format, compact); err != nil {
		f.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// newShowCmd creates the show subcommand.
func newShowCmd() *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Display a saved plan",
		Long:  "Display a plan previously written with 'curaplan generate --output'. The format is taken from the file extension unless --format is given.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			name := formatName
			if name == "" {
				name = strings.TrimPrefix(filepath.Ext(path), ".")
			}
			format, err := export.ParseFormat(name)
			if err != nil || format == export.FormatText {
				return fmt.Errorf("cannot read %s: use a .json or .yaml file or pass --format", path)
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open plan: %w", err)
			}
			defer f.Close()

			schedule, err := export.Decode(f, format)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), display.NewTerminalFormatter().FormatSchedule(schedule))
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "Input format (json, yaml)")

	return cmd
}

// newTonesCmd creates the tones subcommand.
func newTonesCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "tones",
		Short: "List available tones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			active, err := planner.ParseTone(cfg.Tone)
			if err != nil {
				return fmt.Errorf("invalid tone in %s: %w", config.EnvTone, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), display.NewTerminalFormatter().FormatTones(active))
			return nil
		},
	}
}

// newPoolsCmd creates the pools subcommand.
func newPoolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pools",
		Short: "Show content pool sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pools := content.Default()
			if err := pools.Validate(); err != nil {
				return fmt.Errorf("content pools are invalid: %w", err)
			}
			for _, stat := range pools.Stats() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %d\n", stat.Name, stat.Size)
			}
			return nil
		},
	}
}

// newServeCmd creates the serve subcommand.
func newServeCmd(cfg config.Config) *cobra.Command {
	var port string
	var open bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve calendars over HTTP",
		Long:  "Start a read-only HTTP API: GET /api/schedule?start=&days=&tone=&seed=, GET /api/tones, /health and /metrics.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewJSONLogger(cmd.ErrOrStderr(), cfg.LogLevel, "curaplan")

			defaultTone, err := planner.ParseTone(cfg.Tone)
			if err != nil {
				return fmt.Errorf("invalid tone in %s: %w", config.EnvTone, err)
			}

			serverCfg := server.DefaultConfig(port)
			serverCfg.GinMode = cfg.GinMode
			serverCfg.CacheSize = cfg.CacheSize
			serverCfg.DefaultTone = defaultTone
			serverCfg.DefaultDays = cfg.Days
			serverCfg.Version = buildVersion()

			router, err := server.NewRouter(serverCfg, planner.Default(), logger, server.NewMetrics())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if open {
				url := fmt.Sprintf("http://localhost:%s/api/schedule", port)
				if err := browser.Open(url); err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "Could not open browser. Please visit:\n%s\n", url)
				}
			}

			return server.Start(ctx, serverCfg, router, logger)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", cfg.Port, "Port to listen on")
	cmd.Flags().BoolVar(&open, "open", false, "Open the schedule endpoint in the browser")

	return cmd
}

// newConfigCmd creates the config subcommand.
func newConfigCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show effective configuration",
		Long:  "Show the configuration resolved from .env files and CURAPLAN_* environment variables.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Tone:       %s\n", cfg.Tone)
			fmt.Fprintf(out, "Days:       %d\n", cfg.Days)
			fmt.Fprintf(out, "Port:       %s\n", cfg.Port)
			fmt.Fprintf(out, "Log level:  %s\n", cfg.LogLevel)
			fmt.Fprintf(out, "Cache size: %d\n", cfg.CacheSize)
			if len(loadedEnvFiles) > 0 {
				fmt.Fprintf(out, "Env files:  %s\n", strings.Join(loadedEnvFiles, ", "))
			} else {
				fmt.Fprintf(out, "Env files:  none\n")
			}
			return nil
		},
	}
}

func toneNames() string {
	names := make([]string, 0, len(planner.Tones()))
	for _, t := range planner.Tones() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
