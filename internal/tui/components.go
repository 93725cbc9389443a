package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/mindful/internal/model"
	"github.com/manav03panchal/mindful/internal/output"
	"github.com/manav03panchal/mindful/internal/progress"
)

// TodayComponent displays today's practice and the current streak.
type TodayComponent struct {
	Minutes  int
	Sessions int
	Streak   int
	Active   bool
	Width    int
}

// NewTodayComponent creates a new today component.
func NewTodayComponent(minutes, sessions, streak int, active bool, width int) *TodayComponent {
	return &TodayComponent{
		Minutes:  minutes,
		Sessions: sessions,
		Streak:   streak,
		Active:   active,
		Width:    width,
	}
}

// View renders the today component.
func (tc *TodayComponent) View() string {
	var content strings.Builder

	if tc.Sessions == 0 {
		content.WriteString(StyleInactive.Render("No practice yet today"))
		content.WriteString("\n\n")
		content.WriteString(StyleSubtitle.Render("Run 'mindful begin 10m' to sit"))
	} else {
		content.WriteString(StyleActive.Render("● PRACTICED TODAY"))
		content.WriteString("\n\n")
		content.WriteString(StyleDuration.Render(output.FormatMinutes(tc.Minutes)))
		content.WriteString(StyleSubtitle.Render(fmt.Sprintf("  across %d session(s)", tc.Sessions)))
	}

	content.WriteString("\n\n")
	streakText := fmt.Sprintf("🔥 %d day streak", tc.Streak)
	if tc.Streak == 0 {
		streakText = "No active streak"
	}
	if tc.Active {
		content.WriteString(StyleStreak.Render(streakText))
	} else {
		content.WriteString(StyleSubtitle.Render(streakText))
	}

	box := StyleTodayBox
	if tc.Sessions > 0 {
		box = StylePracticedBox
	}
	return box.Width(tc.Width - 4).Render(content.String())
}

// GoalComponent displays weekly goal progress.
type GoalComponent struct {
	Progress progress.WeekProgress
	Weekly   []progress.DayMinutes
	Width    int
}

// NewGoalComponent creates a new goal component.
func NewGoalComponent(p progress.WeekProgress, weekly []progress.DayMinutes, width int) *GoalComponent {
	return &GoalComponent{
		Progress: p,
		Weekly:   weekly,
		Width:    width,
	}
}

// View renders the goal component.
func (gc *GoalComponent) View() string {
	var content strings.Builder

	content.WriteString(StyleTitle.Render("Weekly Goal"))
	content.WriteString("\n\n")

	// Progress bar
	barWidth := gc.Width - 12
	if barWidth < 10 {
		barWidth = 10
	}
	bar := ProgressBar(gc.Progress.Percentage*100, barWidth)
	content.WriteString(bar)
	content.WriteString("\n")

	// Progress text
	currentStr := output.FormatMinutes(gc.Progress.CompletedMinutes)
	targetStr := output.FormatMinutes(gc.Progress.GoalMinutes)
	progressText := fmt.Sprintf("%s / %s (%.0f%%)", currentStr, targetStr, gc.Progress.Percentage*100)

	complete := gc.Progress.Percentage >= 1
	if complete {
		content.WriteString(StyleSuccess.Render(progressText))
		content.WriteString("\n")
		content.WriteString(StyleSuccess.Render("✓ Goal met!"))
	} else {
		content.WriteString(StyleSubtitle.Render(progressText))
		content.WriteString("\n")
		remaining := gc.Progress.GoalMinutes - gc.Progress.CompletedMinutes
		content.WriteString(StyleSubtitle.Render(fmt.Sprintf("%s remaining", output.FormatMinutes(remaining))))
	}

	// Per-day mini chart
	if len(gc.Weekly) > 0 {
		content.WriteString("\n\n")
		var labels, bars []string
		for _, day := range gc.Weekly {
			label := day.Label
			if day.IsToday {
				label = StyleStreak.Render(label)
			} else {
				label = StyleSubtitle.Render(label)
			}
			labels = append(labels, label)
			bars = append(bars, fmt.Sprintf("%3d", day.Minutes))
		}
		content.WriteString(strings.Join(labels, " "))
		content.WriteString("\n")
		content.WriteString(StyleSubtitle.Render(strings.Join(bars, " ")))
	}

	box := StyleGoalBox
	if complete {
		box = StyleGoalCompleteBox
	}
	return box.Width(gc.Width - 4).Render(content.String())
}

// MilestoneComponent displays the next milestone.
type MilestoneComponent struct {
	Milestone *model.Milestone
	Width     int
}

// NewMilestoneComponent creates a new milestone component.
func NewMilestoneComponent(m *model.Milestone, width int) *MilestoneComponent {
	return &MilestoneComponent{Milestone: m, Width: width}
}

// View renders the milestone component.
func (mc *MilestoneComponent) View() string {
	if mc.Milestone == nil {
		return ""
	}

	var content strings.Builder
	content.WriteString(StyleTitle.Render("Next Milestone"))
	content.WriteString("\n\n")
	content.WriteString(StyleType.Render(mc.Milestone.Title))
	content.WriteString("\n")
	content.WriteString(StyleNote.Render(mc.Milestone.Details))
	content.WriteString("\n\n")

	barWidth := mc.Width - 12
	if barWidth < 10 {
		barWidth = 10
	}
	content.WriteString(ProgressBar(mc.Milestone.Progress()*100, barWidth))
	content.WriteString("\n")
	content.WriteString(StyleSubtitle.Render(mc.Milestone.ProgressText()))

	return StyleGoalBox.Width(mc.Width - 4).Render(content.String())
}

// SessionsComponent displays recent meditation sessions.
type SessionsComponent struct {
	Sessions []*model.Session
	Width    int
	Limit    int
}

// NewSessionsComponent creates a new sessions component.
func NewSessionsComponent(sessions []*model.Session, width, limit int) *SessionsComponent {
	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return &SessionsComponent{
		Sessions: sessions,
		Width:    width,
		Limit:    limit,
	}
}

// View renders the sessions component.
func (sc *SessionsComponent) View() string {
	var content strings.Builder

	content.WriteString(StyleTitle.Render("Recent Sessions"))
	content.WriteString("\n")

	if len(sc.Sessions) == 0 {
		content.WriteString(StyleSubtitle.Render("No sessions yet"))
	} else {
		for i, session := range sc.Sessions {
			if i > 0 {
				content.WriteString("\n")
			}
			content.WriteString(sc.renderSession(session))
		}
	}

	box := StyleSessionsBox.Width(sc.Width - 4)
	return box.Render(content.String())
}

func (sc *SessionsComponent) renderSession(session *model.Session) string {
	var sb strings.Builder

	sb.WriteString(StyleType.Render(session.Type.DisplayName()))
	sb.WriteString("  ")
	sb.WriteString(StyleDuration.Render(output.FormatMinutes(session.DurationMinutes())))

	sb.WriteString("\n")
	sb.WriteString(StyleSubtitle.Render("  " + output.FormatTimeShort(session.Date)))
	if session.Notes != "" {
		sb.WriteString("\n")
		sb.WriteString(StyleNote.Render(fmt.Sprintf("  \"%s\"", session.Notes)))
	}

	return sb.String()
}

// HelpBar renders the help bar at the bottom.
func HelpBar() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"r", "refresh"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		part := StyleHelpKey.Render(k.key) + " " + StyleHelpDesc.Render(k.desc)
		parts = append(parts, part)
	}

	return StyleHelp.Render(strings.Join(parts, "  •  "))
}

// joinVertical stacks rendered sections.
func joinVertical(sections ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
