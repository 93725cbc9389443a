package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/mindful/internal/coordinator"
	"github.com/manav03panchal/mindful/internal/model"
	"github.com/manav03panchal/mindful/internal/output"
	"github.com/manav03panchal/mindful/internal/validate"
)

// Profile set flags.
var (
	profileFlagName          string
	profileFlagEmail         string
	profileFlagWeeklyGoal    int
	profileFlagDuration      int
	profileFlagTypes         string
	profileFlagNotifications bool
	profileFlagReminder      string
)

// profileCmd represents the profile command.
var profileCmd = &cobra.Command{
	Use:     "profile",
	Aliases: []string{"p"},
	Short:   "Show the user profile",
	Args:    cobra.NoArgs,
	RunE:    runProfile,
}

// profileSetCmd updates profile settings.
var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile settings",
	Long: `Update profile settings. Only the flags you pass change; the weekly
goal is clamped to 50-500 minutes.

Examples:
  mindful profile set --weekly-goal 200
  mindful profile set --name "Ana" --reminder 07:30
  mindful profile set --types breathing,body-scan`,
	Args: cobra.NoArgs,
	RunE: runProfileSet,
}

func init() {
	profileSetCmd.Flags().StringVar(&profileFlagName, "name", "", "Display name")
	profileSetCmd.Flags().StringVar(&profileFlagEmail, "email", "", "Email address")
	profileSetCmd.Flags().IntVar(&profileFlagWeeklyGoal, "weekly-goal", 0, "Weekly goal in minutes (50-500)")
	profileSetCmd.Flags().IntVar(&profileFlagDuration, "duration", 0, "Preferred session length in minutes")
	profileSetCmd.Flags().StringVar(&profileFlagTypes, "types", "", "Comma-separated preferred session types")
	profileSetCmd.Flags().BoolVar(&profileFlagNotifications, "notifications", true, "Enable the daily reminder")
	profileSetCmd.Flags().StringVar(&profileFlagReminder, "reminder", "", "Daily reminder time (HH:MM)")

	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	profile := ctx.Coordinator.Profile()
	days := profile.DaysSinceJoin(time.Now())

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.NewProfileResponse(profile, days))
	}

	ctx.CLIFormatter().PrintProfile(profile, days)
	return nil
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	var update coordinator.ProfileUpdate

	if cmd.Flags().Changed("name") {
		if err := validate.Name(profileFlagName); err != nil {
			return err
		}
		update.Name = &profileFlagName
	}
	if cmd.Flags().Changed("email") {
		if err := validate.Email(profileFlagEmail); err != nil {
			return err
		}
		update.Email = &profileFlagEmail
	}
	if cmd.Flags().Changed("weekly-goal") {
		update.WeeklyGoalMinutes = &profileFlagWeeklyGoal
	}
	if cmd.Flags().Changed("duration") {
		if profileFlagDuration <= 0 {
			return fmt.Errorf("preferred duration must be positive")
		}
		update.PreferredDurationMinutes = &profileFlagDuration
	}
	if cmd.Flags().Changed("types") {
		var types []model.SessionType
		for _, raw := range validate.SplitTags(profileFlagTypes) {
			t, ok := model.ParseSessionType(raw)
			if !ok {
				return fmt.Errorf("invalid session type: %s", raw)
			}
			types = append(types, t)
		}
		update.PreferredTypes = &types
	}
	if cmd.Flags().Changed("notifications") {
		update.NotificationsEnabled = &profileFlagNotifications
	}
	if cmd.Flags().Changed("reminder") {
		if err := validate.ReminderTime(profileFlagReminder); err != nil {
			return err
		}
		update.ReminderTime = &profileFlagReminder
	}

	ctx.Coordinator.UpdateUserProfile(update)

	profile := ctx.Coordinator.Profile()
	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.NewProfileResponse(profile, profile.DaysSinceJoin(time.Now())))
	}
	ctx.CLIFormatter().Success("Profile updated.")
	return nil
}
