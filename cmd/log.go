package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/mindful/internal/model"
	"github.com/manav03panchal/mindful/internal/output"
	"github.com/manav03panchal/mindful/internal/parser"
	"github.com/manav03panchal/mindful/internal/validate"
)

// Log command flags.
var (
	logFlagType  string
	logFlagNotes string
	logFlagTags  string
)

// logCmd represents the log command.
var logCmd = &cobra.Command{
	Use:     "log DURATION [TIME_MODIFIER]",
	Aliases: []string{"l", "add"},
	Short:   "Log a completed meditation session",
	Long: `Log a session that happened without the timer, ending now or at the
specified time.

Duration formats:
  10m, 10 minutes      - 10 minutes
  1h, 1 hour           - 1 hour
  1h30m, 1.5h          - 1 hour 30 minutes
  15                   - bare numbers are minutes

Examples:
  mindful log 15m
  mindful log 20m yesterday
  mindful log 10m --type breathing
  mindful log 30m "yesterday 7am" --notes "morning sit" --tags morning`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVarP(&logFlagType, "type", "t", "", "Session type (mindfulness, breathing, body-scan, ...)")
	logCmd.Flags().StringVarP(&logFlagNotes, "notes", "n", "", "Notes for the session")
	logCmd.Flags().StringVar(&logFlagTags, "tags", "", "Comma-separated tags (e.g., morning,deep)")

	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	// Parse duration from first argument
	durationResult := parser.ParseDuration(args[0])
	if !durationResult.Valid {
		return fmt.Errorf("invalid duration: %s (use formats like 10m, 1h, 1h30m)", args[0])
	}
	seconds := int(durationResult.Duration.Seconds())
	if seconds <= 0 {
		return fmt.Errorf("session duration must be greater than zero")
	}

	// Remaining arguments form a time modifier like "yesterday 7am"
	when := strings.Join(args[1:], " ")
	tsResult := parser.ParseTimestamp(when)
	if tsResult.Error != nil {
		return tsResult.Error
	}
	date := tsResult.Time

	// Resolve session type
	sessionType := model.TypeMindfulness
	if logFlagType != "" {
		t, ok := model.ParseSessionType(logFlagType)
		if !ok {
			return fmt.Errorf("invalid session type: %s", logFlagType)
		}
		sessionType = t
	}

	tags := validate.SplitTags(logFlagTags)
	if err := validate.Tags(tags); err != nil {
		return err
	}
	if err := validate.Note(logFlagNotes); err != nil {
		return err
	}

	session := model.NewSession(date, seconds, sessionType)
	session.Notes = logFlagNotes
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

// newLogResponse builds the JSON response for a recorded session.
func newLogResponse(session *model.Session, completed []*model.Milestone) *output.LogResponse {
	return &output.LogResponse{
		Status:     "logged",
		Session:    output.NewSessionOutput(session),
		Milestones: output.NewMilestoneOutputs(completed),
	}
}
