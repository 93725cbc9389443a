// Package cmd provides the CLI commands for Mindful.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/mindful/internal/errors"
	"github.com/manav03panchal/mindful/internal/logging"
	"github.com/manav03panchal/mindful/internal/output"
	"github.com/manav03panchal/mindful/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mindful",
	Short: "A command-line meditation tracker",
	Long: `Mindful is a command-line meditation tracker with a guided session
timer, progress statistics, streaks, and milestones.

Examples:
  mindful begin 10m
  mindful begin 20m --warmup 30 --type breathing
  mindful log 15m yesterday
  mindful sessions week
  mindful streak
  mindful milestones`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		if flagDebug {
			logging.InitDebug()
		}

		// Parse format flag
		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		// Parse color flag
		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		// Create runtime context
		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug

		var err error
		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show today's status
		return runStatus(cmd, args)
	},
}

// runStatus shows the today-at-a-glance summary.
func runStatus(cmd *cobra.Command, args []string) error {
	c := ctx.Coordinator

	todayMinutes := c.TodaysMinutes()
	todayCount := c.TodaysSessionCount()
	week := c.WeeklyProgress()
	streak := c.CurrentStreak()
	next := c.NextMilestone()

	if ctx.IsJSON() {
		resp := output.StatusResponse{
			TodayMinutes:  todayMinutes,
			TodaySessions: todayCount,
			Week:          output.NewWeekOutput(week),
			CurrentStreak: streak,
		}
		if next != nil {
			resp.NextMilestone = output.NewMilestoneOutput(next)
		}
		return ctx.JSONFormatter().JSON(resp)
	}

	ctx.CLIFormatter().PrintStatus(todayMinutes, todayCount, week, streak, next)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statusCmd)
}

// statusCmd is an explicit alias for the root default.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's practice at a glance",
	RunE:  runStatus,
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("mindful %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// Die prints an error and exits.
func Die(err error) {
	if ctx != nil && ctx.IsJSON() {
		ctx.JSONFormatter().PrintError("error", err.Error(), errors.GetSuggestion(err))
	} else {
		msg := err.Error()
		if suggestion := errors.GetSuggestion(err); suggestion != "" {
			msg += "\n" + suggestion
		}
		os.Stderr.WriteString("Error: " + msg + "\n")
	}
	os.Exit(1)
}
