package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/mindful/internal/model"
	"github.com/manav03panchal/mindful/internal/progress"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#10B981") // Green
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorWarning   = lipgloss.Color("#F59E0B") // Yellow
	colorError     = lipgloss.Color("#EF4444") // Red
	colorSuccess   = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleType = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleStreak = lipgloss.NewStyle().
			Foreground(colorSecondary)

	styleDuration = lipgloss.NewStyle().
			Bold(true)

	styleNote = lipgloss.NewStyle().
			Italic(true).
			Foreground(colorMuted)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// TypeName formats a session type name.
func (c *CLIFormatter) TypeName(name string) string {
	if c.IsColorEnabled() {
		return styleType.Render(name)
	}
	return name
}

// Duration formats a duration string.
func (c *CLIFormatter) Duration(text string) string {
	if c.IsColorEnabled() {
		return styleDuration.Render(text)
	}
	return text
}

// Note formats a note.
func (c *CLIFormatter) Note(text string) string {
	if c.IsColorEnabled() {
		return styleNote.Render(text)
	}
	return text
}

// Streak formats a streak figure.
func (c *CLIFormatter) Streak(text string) string {
	if c.IsColorEnabled() {
		return styleStreak.Render(text)
	}
	return text
}

// PrintSessionLogged prints a confirmation after a session is recorded.
func (c *CLIFormatter) PrintSessionLogged(session *model.Session) {
	c.Success(fmt.Sprintf("Logged %s of %s",
		c.Duration(FormatMinutes(session.DurationMinutes())),
		c.TypeName(session.Type.DisplayName())))
	c.Printf("  Date: %s\n", FormatTimeShort(session.Date))
	if session.Notes != "" {
		c.Printf("  Notes: %s\n", c.Note(session.Notes))
	}
	if len(session.Tags) > 0 {
		c.Printf("  Tags: %s\n", strings.Join(session.Tags, ", "))
	}
}

// PrintSessions prints a session table, newest first.
func (c *CLIFormatter) PrintSessions(sessions []*model.Session) {
	if len(sessions) == 0 {
		c.Muted("No sessions recorded.")
		c.Muted("Use 'mindful begin 10m' or 'mindful log 10m' to get started.")
		return
	}

	rows := make([]TableRow, 0, len(sessions))
	for _, s := range sessions {
		notes := s.Notes
		if len(notes) > 40 {
			notes = notes[:37] + "..."
		}
		rows = append(rows, TableRow{Columns: []string{
			shortKey(s.Key),
			FormatTimeShort(s.Date),
			s.Type.DisplayName(),
			FormatMinutes(s.DurationMinutes()),
			strings.Join(s.Tags, ","),
			notes,
		}})
	}
	c.PrintTable([]string{"ID", "Date", "Type", "Duration", "Tags", "Notes"}, rows)
}

// PrintStatus prints the today-at-a-glance summary.
func (c *CLIFormatter) PrintStatus(todayMinutes, todayCount int, week progress.WeekProgress, currentStreak int, next *model.Milestone) {
	c.Title("Today")
	if todayCount == 0 {
		c.Muted("  No practice yet today.")
	} else {
		c.Printf("  %s across %d session(s)\n", c.Duration(FormatMinutes(todayMinutes)), todayCount)
	}

	c.Title("This Week")
	c.Printf("  %s / %s  %s %3.0f%%\n",
		FormatMinutes(week.CompletedMinutes),
		FormatMinutes(week.GoalMinutes),
		ProgressBar(week.Percentage*100, 20),
		week.Percentage*100)

	c.Title("Streak")
	c.Printf("  %s\n", c.Streak(fmt.Sprintf("%d day(s)", currentStreak)))

	if next != nil {
		c.Title("Next Milestone")
		c.Printf("  %s  %s\n", next.Title, next.ProgressText())
	}
}

// PrintStats prints lifetime statistics.
func (c *CLIFormatter) PrintStats(totalSessions, totalMinutes, average, monthlyMinutes int, week progress.WeekProgress, weekly []progress.DayMinutes) {
	c.Title("Statistics")
	c.Printf("  Sessions:     %d\n", totalSessions)
	c.Printf("  Total time:   %s\n", c.Duration(FormatMinutes(totalMinutes)))
	c.Printf("  Average:      %s\n", FormatMinutes(average))
	c.Printf("  This month:   %s\n", FormatMinutes(monthlyMinutes))
	c.Printf("  This week:    %s / %s (%.0f%%)\n",
		FormatMinutes(week.CompletedMinutes),
		FormatMinutes(week.GoalMinutes),
		week.Percentage*100)

	c.Println()
	c.Title("This Week")
	for _, day := range weekly {
		marker := " "
		if day.IsToday {
			marker = "▸"
		}
		bar := strings.Repeat("█", day.Minutes/5)
		c.Printf("  %s %s %4dm %s\n", marker, day.Label, day.Minutes, bar)
	}
}

// PrintStreak prints streak details.
func (c *CLIFormatter) PrintStreak(current, longest int, active bool, daysLeft *int) {
	c.Title("Streak")
	c.Printf("  Current: %s\n", c.Streak(fmt.Sprintf("%d day(s)", current)))
	c.Printf("  Longest: %d day(s)\n", longest)
	switch {
	case daysLeft == nil:
		c.Success("Practiced today. Streak safe.")
	case *daysLeft > 0 && active:
		c.Warning("Practice today to keep the streak alive.")
	default:
		c.Muted("No active streak. Today is a good day to start one.")
	}
}

// PrintStreakHistory prints a per-day practice sparkline, most recent last.
// Only the trailing limit days are shown.
func (c *CLIFormatter) PrintStreakHistory(history []progress.DayPractice, limit int) {
	if len(history) == 0 {
		return
	}
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}

	var line strings.Builder
	for _, day := range history {
		if day.HasSession {
			line.WriteString("█")
		} else {
			line.WriteString("·")
		}
	}

	c.Println()
	c.Title("History")
	c.Printf("  %s\n", c.Streak(line.String()))
	c.Printf("  %s .. %s\n",
		FormatDate(history[0].Date),
		FormatDate(history[len(history)-1].Date))
}

// PrintMonthlyCalendar prints the current month's per-day practice markers.
func (c *CLIFormatter) PrintMonthlyCalendar(days []progress.MonthDay) {
	if len(days) == 0 {
		return
	}

	c.Println()
	c.Title("This Month")
	var line strings.Builder
	line.WriteString("  ")
	for i, day := range days {
		if day.HasSession {
			line.WriteString("█")
		} else {
			line.WriteString("·")
		}
		// Week separator every 7 days for readability
		if (i+1)%7 == 0 && i != len(days)-1 {
			line.WriteString(" ")
		}
	}
	c.Println(line.String())
	c.Printf("  %d day(s) practiced\n", countPracticed(days))
}

func countPracticed(days []progress.MonthDay) int {
	count := 0
	for _, d := range days {
		if d.HasSession {
			count++
		}
	}
	return count
}

// PrintMilestones prints the milestone catalog.
func (c *CLIFormatter) PrintMilestones(active, completed []*model.Milestone) {
	c.Title("In Progress")
	if len(active) == 0 {
		c.Muted("  All milestones completed.")
	}
	for _, m := range active {
		c.Printf("  %s %s  %s  %s\n",
			ProgressBar(m.Progress()*100, 12),
			m.ProgressText(),
			styleBold.Render(m.Title),
			c.Note(m.Details))
	}

	if len(completed) > 0 {
		c.Println()
		c.Title("Completed")
		for _, m := range completed {
			when := ""
			if m.CompletedDate != nil {
				when = FormatDate(*m.CompletedDate)
			}
			c.Printf("  ✓ %s  %s\n", m.Title, c.Note(when))
		}
	}
}

// PrintMilestoneCompleted celebrates a newly completed milestone.
func (c *CLIFormatter) PrintMilestoneCompleted(m *model.Milestone) {
	c.Success(fmt.Sprintf("Milestone reached: %s", m.Title))
	if m.Details != "" {
		c.Muted("  " + m.Details)
	}
}

// PrintProfile prints the user profile.
func (c *CLIFormatter) PrintProfile(p model.UserProfile, daysSinceJoin int) {
	c.Title("Profile")
	if p.Name != "" {
		c.Printf("  Name:          %s\n", p.Name)
	}
	if p.Email != "" {
		c.Printf("  Email:         %s\n", p.Email)
	}
	c.Printf("  Member since:  %s (%d days)\n", FormatDate(p.JoinDate), daysSinceJoin)
	c.Printf("  Weekly goal:   %s\n", FormatMinutes(p.WeeklyGoalMinutes))
	c.Printf("  Preferred:     %s\n", FormatMinutes(p.PreferredDurationMinutes))
	if len(p.PreferredTypes) > 0 {
		names := make([]string, len(p.PreferredTypes))
		for i, t := range p.PreferredTypes {
			names[i] = t.DisplayName()
		}
		c.Printf("  Types:         %s\n", strings.Join(names, ", "))
	}
	if p.NotificationsEnabled {
		c.Printf("  Reminder:      %s\n", p.ReminderTime)
	}
}

// shortKey trims a storage key to its display form.
func shortKey(key string) string {
	if i := strings.LastIndex(key, ":"); i >= 0 {
		key = key[i+1:]
	}
	if len(key) > 8 {
		return key[:8]
	}
	return key
}

// ProgressBar creates a simple progress bar.
func ProgressBar(percentage float64, width int) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}

	filled := int(float64(width) * percentage / 100)
	empty := width - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return bar
}

// Table helpers for CLI output.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && len(col) > widths[i] {
				widths[i] = len(col)
			}
		}
	}

	// Print headers
	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(fmt.Sprintf("%-*s  ", widths[i], h))
	}
	if c.IsColorEnabled() {
		c.Println(styleBold.Render(headerLine.String()))
	} else {
		c.Println(headerLine.String())
	}

	// Print separator
	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(sep.String())

	// Print rows
	for _, row := range rows {
		var rowLine strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				rowLine.WriteString(fmt.Sprintf("%-*s  ", widths[i], col))
			}
		}
		c.Println(rowLine.String())
	}
}
