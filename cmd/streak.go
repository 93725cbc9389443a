package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/mindful/internal/output"
)

// streakCmd represents the streak command.
var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the current practice streak",
	Long: `Show the current consecutive-day streak and the longest streak on
record. A day counts when it holds at least one session; the current day stays
open until midnight.`,
	Args: cobra.NoArgs,
	RunE: runStreak,
}

func init() {
	rootCmd.AddCommand(streakCmd)
}

func runStreak(cmd *cobra.Command, args []string) error {
	c := ctx.Coordinator

	current := c.CurrentStreak()
	longest := c.LongestStreak()
	active := c.IsStreakActive()
	daysLeft := c.DaysUntilStreakBreaks()
	history := c.StreakHistory()

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(&output.StreakResponse{
			CurrentStreak:         current,
			LongestStreak:         longest,
			Active:                active,
			DaysUntilStreakBreaks: daysLeft,
			History:               output.NewPracticeDayOutputs(history),
		})
	}

	cli := ctx.CLIFormatter()
	cli.PrintStreak(current, longest, active, daysLeft)
	cli.PrintStreakHistory(history, 30)
	return nil
}
