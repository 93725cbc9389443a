package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/mindful/internal/model"
	"github.com/manav03panchal/mindful/internal/validate"
)

// Sessions command flags.
var (
	sessionsFlagSearch string
	sessionsFlagLimit  int
)

// Edit command flags.
var (
	editFlagNotes string
	editFlagTags  string
)

// sessionsCmd represents the sessions command.
var sessionsCmd = &cobra.Command{
	Use:     "sessions [FILTER]",
	Aliases: []string{"s", "list"},
	Short:   "List recorded meditation sessions",
	Long: `List recorded sessions, newest first.

The filter narrows by date (today, week, month) or by session type
(mindfulness, breathing, body-scan, ...). --search matches notes, tags,
and type names.

Examples:
  mindful sessions
  mindful sessions today
  mindful sessions week --search morning
  mindful sessions breathing --limit 10`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSessions,
}

// sessionsDeleteCmd deletes a session by key.
var sessionsDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete a session",
	Args:    cobra.ExactArgs(1),
	RunE:    runSessionsDelete,
}

// sessionsEditCmd edits the notes and tags of a session.
var sessionsEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a session's notes or tags",
	Long: `Edit the notes or tags of a recorded session. Date, duration, and
type are immutable once recorded.`,
	Args: cobra.ExactArgs(1),
	RunE: runSessionsEdit,
}

func init() {
	sessionsCmd.Flags().StringVarP(&sessionsFlagSearch, "search", "s", "", "Free-text search over notes, tags, and type")
	sessionsCmd.Flags().IntVarP(&sessionsFlagLimit, "limit", "l", 0, "Maximum number of sessions to show (0 = all)")

	sessionsEditCmd.Flags().StringVarP(&editFlagNotes, "notes", "n", "", "New notes")
	sessionsEditCmd.Flags().StringVar(&editFlagTags, "tags", "", "New comma-separated tags")

	sessionsCmd.AddCommand(sessionsDeleteCmd)
	sessionsCmd.AddCommand(sessionsEditCmd)
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(cmd *cobra.Command, args []string) error {
	filter := model.FilterAll
	var sessionType model.SessionType
	if len(args) > 0 {
		f, t, ok := model.ParseSessionFilter(args[0])
		if !ok {
			return fmt.Errorf("invalid filter: %s (use today, week, month, or a session type)", args[0])
		}
		filter, sessionType = f, t
	}

	sessions := ctx.Coordinator.FilteredSessions(filter, sessionType, sessionsFlagSearch)
	total := len(sessions)
	if sessionsFlagLimit > 0 && len(sessions) > sessionsFlagLimit {
		sessions = sessions[:sessionsFlagLimit]
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSessions(sessions, total)
	}

	ctx.CLIFormatter().PrintSessions(sessions)
	return nil
}

func runSessionsDelete(cmd *cobra.Command, args []string) error {
	key, err := resolveSessionKey(args[0])
	if err != nil {
		return err
	}

	if err := ctx.Coordinator.DeleteSession(key); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(map[string]string{"status": "deleted", "key": key})
	}
	ctx.CLIFormatter().Success("Session deleted.")
	return nil
}

func runSessionsEdit(cmd *cobra.Command, args []string) error {
	key, err := resolveSessionKey(args[0])
	if err != nil {
		return err
	}

	var notes *string
	var tags *[]string

	if cmd.Flags().Changed("notes") {
		if err := validate.Note(editFlagNotes); err != nil {
			return err
		}
		notes = &editFlagNotes
	}
	if cmd.Flags().Changed("tags") {
		parsed := validate.SplitTags(editFlagTags)
		if err := validate.Tags(parsed); err != nil {
			return err
		}
		tags = &parsed
	}

	if notes == nil && tags == nil {
		return fmt.Errorf("nothing to edit: pass --notes or --tags")
	}

	if err := ctx.Coordinator.EditSession(key, notes, tags); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(map[string]string{"status": "updated", "key": key})
	}
	ctx.CLIFormatter().Success("Session updated.")
	return nil
}

// resolveSessionKey resolves a full key or unique key prefix to a session key.
func resolveSessionKey(arg string) (string, error) {
	sessions := ctx.Coordinator.Sessions()

	var match string
	for _, s := range sessions {
		if s.Key == arg {
			return s.Key, nil
		}
		suffix := s.Key
		if i := strings.LastIndex(suffix, ":"); i >= 0 {
			suffix = suffix[i+1:]
		}
		if strings.HasPrefix(suffix, arg) {
			if match != "" {
				return "", fmt.Errorf("ambiguous session ID: %s", arg)
			}
			match = s.Key
		}
	}
	if match == "" {
		return "", fmt.Errorf("session not found: %s", arg)
	}
	return match, nil
}
