package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/mindful/internal/config"
	"github.com/manav03panchal/mindful/internal/tui"
)

// dashboardCmd represents the dashboard command.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "d"},
	Short:   "Open the live practice dashboard",
	Long: `Open an interactive terminal dashboard showing today's practice, the
weekly goal, the current streak, the next milestone, and recent sessions.

Keyboard Controls:
  r      Refresh data
  q      Quit`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	return tui.Run(tui.DashboardConfig{
		Coordinator:     ctx.Coordinator,
		RefreshInterval: config.Global.Dashboard.RefreshInterval,
		MaxRecent:       config.Global.Dashboard.MaxRecentSessions,
	})
}
