package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/mindful/internal/model"
	"github.com/manav03panchal/mindful/internal/output"
	"github.com/manav03panchal/mindful/internal/validate"
)

// Milestone add flags.
var (
	milestoneFlagKind    string
	milestoneFlagDetails string
)

// milestonesCmd represents the milestones command.
var milestonesCmd = &cobra.Command{
	Use:     "milestones",
	Aliases: []string{"m", "goals"},
	Short:   "Show milestone progress",
	Long: `Show the milestone catalog: milestones in progress with their current
value against the target, and completed milestones with their completion date.`,
	Args: cobra.NoArgs,
	RunE: runMilestones,
}

// milestonesAddCmd adds a custom milestone.
var milestonesAddCmd = &cobra.Command{
	Use:   "add TITLE TARGET",
	Short: "Add a custom milestone",
	Long: `Add a custom milestone with a title and a target value. The kind
selects the statistic tracked:

  streak          consecutive practice days
  total-sessions  lifetime session count
  total-minutes   lifetime minutes
  weekly-goal     minutes in the current week
  monthly-goal    minutes in the current month

Examples:
  mindful milestones add "Two Weeks" 14 --kind streak
  mindful milestones add "Marathon" 1500 --kind total-minutes`,
	Args: cobra.ExactArgs(2),
	RunE: runMilestonesAdd,
}

// milestonesDeleteCmd deletes a milestone by key.
var milestonesDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete a milestone",
	Args:    cobra.ExactArgs(1),
	RunE:    runMilestonesDelete,
}

func init() {
	milestonesAddCmd.Flags().StringVarP(&milestoneFlagKind, "kind", "k", "total-sessions",
		"Milestone kind: streak, total-sessions, total-minutes, weekly-goal, monthly-goal")
	milestonesAddCmd.Flags().StringVarP(&milestoneFlagDetails, "details", "d", "", "Milestone description")

	milestonesCmd.AddCommand(milestonesAddCmd)
	milestonesCmd.AddCommand(milestonesDeleteCmd)
	rootCmd.AddCommand(milestonesCmd)
}

func runMilestones(cmd *cobra.Command, args []string) error {
	c := ctx.Coordinator

	active := c.ActiveMilestones()
	completed := c.CompletedMilestones()

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(&output.MilestonesResponse{
			Active:    output.NewMilestoneOutputs(active),
			Completed: output.NewMilestoneOutputs(completed),
		})
	}

	ctx.CLIFormatter().PrintMilestones(active, completed)
	return nil
}

func runMilestonesAdd(cmd *cobra.Command, args []string) error {
	title := args[0]
	if err := validate.MilestoneTitle(title); err != nil {
		return err
	}

	target, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid target value: %s", args[1])
	}
	if err := validate.MilestoneTarget(target); err != nil {
		return err
	}

	kind, ok := model.ParseMilestoneKind(milestoneFlagKind)
	if !ok {
		return fmt.Errorf("invalid milestone kind: %s", milestoneFlagKind)
	}

	m := model.NewMilestone(title, milestoneFlagDetails, target, kind)
	ctx.Coordinator.AddMilestone(m)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.NewMilestoneOutput(m))
	}
	ctx.CLIFormatter().Success(fmt.Sprintf("Milestone added: %s (%s)", m.Title, m.ProgressText()))
	return nil
}

func runMilestonesDelete(cmd *cobra.Command, args []string) error {
	key, err := resolveMilestoneKey(args[0])
	if err != nil {
		return err
	}

	if err := ctx.Coordinator.DeleteMilestone(key); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(map[string]string{"status": "deleted", "key": key})
	}
	ctx.CLIFormatter().Success("Milestone deleted.")
	return nil
}

// resolveMilestoneKey resolves a full key, key prefix, or title to a key.
func resolveMilestoneKey(arg string) (string, error) {
	milestones := append(ctx.Coordinator.ActiveMilestones(), ctx.Coordinator.CompletedMilestones()...)

	var match string
	for _, m := range milestones {
		if m.Key == arg || strings.EqualFold(m.Title, arg) {
			return m.Key, nil
		}
		suffix := m.Key
		if i := strings.LastIndex(suffix, ":"); i >= 0 {
			suffix = suffix[i+1:]
		}
		if strings.HasPrefix(suffix, arg) {
			if match != "" {
				return "", fmt.Errorf("ambiguous milestone ID: %s", arg)
			}
			match = m.Key
		}
	}
	if match == "" {
		return "", fmt.Errorf("milestone not found: %s", arg)
	}
	return match, nil
}
