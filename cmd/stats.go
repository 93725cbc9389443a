package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/mindful/internal/output"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"st"},
	Short:   "Show practice statistics",
	Long: `Show lifetime practice statistics: session count, total time, average
session length, monthly minutes, and progress toward the weekly goal.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	c := ctx.Coordinator

	totalSessions := c.TotalSessions()
	totalMinutes := c.TotalMinutes()
	average := c.AverageSessionDuration()
	monthly := c.MonthlyMinutes()
	week := c.WeeklyProgress()
	weekly := c.WeeklyData()
	monthlyData := c.MonthlyData()

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(&output.StatsResponse{
			TotalSessions:  totalSessions,
			TotalMinutes:   totalMinutes,
			AverageMinutes: average,
			MonthlyMinutes: monthly,
			Week:           output.NewWeekOutput(week),
			WeeklyData:     output.NewDayOutputs(weekly),
			MonthlyData:    output.NewMonthDayOutputs(monthlyData),
		})
	}

	cli := ctx.CLIFormatter()
	cli.PrintStats(totalSessions, totalMinutes, average, monthly, week, weekly)
	cli.PrintMonthlyCalendar(monthlyData)
	return nil
}
