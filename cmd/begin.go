package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/mindful/internal/config"
	"github.com/manav03panchal/mindful/internal/model"
	"github.com/manav03panchal/mindful/internal/parser"
	"github.com/manav03panchal/mindful/internal/timer"
	"github.com/manav03panchal/mindful/internal/validate"
)

// Begin command flags.
var (
	beginFlagWarmup int
	beginFlagType   string
	beginFlagNotes  string
	beginFlagTags   string
)

// beginCmd represents the begin command.
var beginCmd = &cobra.Command{
	Use:     "begin [DURATION]",
	Aliases: []string{"b", "sit", "meditate"},
	Short:   "Start a guided meditation timer",
	Long: `Start a countdown timer for a meditation session. When the countdown
ends you choose to save or discard the session; you can also finish early.
Sessions shorter than a minute are recorded as one minute.

Without a duration the profile's preferred session length is used.

Keyboard Controls:
  SPACE  Pause/Resume the timer
  F      Finish early and save
  D or Q Discard the session

Examples:
  mindful begin 10m
  mindful begin 20m --warmup 30
  mindful begin 1h --type body-scan
  mindful begin`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBegin,
}

func init() {
	beginCmd.Flags().IntVarP(&beginFlagWarmup, "warmup", "w", 0, "Warm-up seconds before the session")
	beginCmd.Flags().StringVarP(&beginFlagType, "type", "t", "", "Session type (mindfulness, breathing, body-scan, ...)")
	beginCmd.Flags().StringVarP(&beginFlagNotes, "notes", "n", "", "Notes for the session")
	beginCmd.Flags().StringVar(&beginFlagTags, "tags", "", "Comma-separated tags (e.g., morning,deep)")

	rootCmd.AddCommand(beginCmd)
}

func runBegin(cmd *cobra.Command, args []string) error {
	profile := ctx.Coordinator.Profile()

	// Resolve duration: argument, or the profile's preferred length
	minutes := profile.PreferredDurationMinutes
	if len(args) > 0 {
		result := parser.ParseDuration(args[0])
		if !result.Valid {
			return fmt.Errorf("invalid duration: %s (use formats like 10m, 1h, 1h30m)", args[0])
		}
		minutes = int(result.Duration.Minutes())
	}
	if minutes <= 0 {
		return fmt.Errorf("session duration must be at least a minute")
	}

	// Resolve session type: flag, or the profile's first preferred type
	sessionType := model.TypeMindfulness
	if len(profile.PreferredTypes) > 0 {
		sessionType = profile.PreferredTypes[0]
	}
	if beginFlagType != "" {
		t, ok := model.ParseSessionType(beginFlagType)
		if !ok {
			return fmt.Errorf("invalid session type: %s", beginFlagType)
		}
		sessionType = t
	}

	tags := validate.SplitTags(beginFlagTags)
	if err := validate.Tags(tags); err != nil {
		return err
	}
	if err := validate.Note(beginFlagNotes); err != nil {
		return err
	}

	machine := timer.NewMachine(timer.Config{
		Hours:         minutes / 60,
		Minutes:       minutes % 60,
		WarmupSeconds: beginFlagWarmup,
		Type:          sessionType,
	})

	display := timer.NewDisplay()
	display.UseColor = ctx.Formatter.IsColorEnabled()

	runner := timer.NewRunner(machine, display, config.Global.Timer.TickInterval)

	session, err := runner.Run(context.Background())
	if err != nil {
		return err
	}
	if session == nil {
		ctx.CLIFormatter().Muted("Session discarded.")
		return nil
	}

	session.Notes = beginFlagNotes
	session.Tags = tags

	completed := ctx.Coordinator.AddSession(session)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(newLogResponse(session, completed))
	}

	cli := ctx.CLIFormatter()
	cli.PrintSessionLogged(session)
	for _, m := range completed {
		cli.PrintMilestoneCompleted(m)
	}
	return nil
}
