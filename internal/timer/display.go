package timer

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/mindful/internal/model"
)

// Display handles the visual rendering of the session countdown.
type Display struct {
	Writer   io.Writer
	UseColor bool
}

// NewDisplay creates a new countdown display.
func NewDisplay() *Display {
	return &Display{
		Writer:   os.Stdout,
		UseColor: true,
	}
}

// Styles for the countdown display.
var (
	timerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")) // Purple

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981")) // Green

	warmupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F59E0B")) // Yellow

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")) // Gray

	statusStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#6B7280")) // Gray
)

// FormatSeconds formats a second count as MM:SS or HH:MM:SS.
func FormatSeconds(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// phaseLabel returns the header line for the current phase.
func phaseLabel(phase Phase, sessionType model.SessionType) string {
	if phase == PhaseWarmup {
		return "WARM-UP"
	}
	return sessionType.DisplayName()
}

// RenderTimer renders the countdown for the given machine snapshot.
func (d *Display) RenderTimer(m *Machine) string {
	remaining := m.Remaining()
	phase := m.CurrentPhase()
	paused := m.State() == StatePaused
	cfg := m.Config()

	var output string

	// Phase header
	label := phaseLabel(phase, cfg.Type)
	if d.UseColor {
		if phase == PhaseWarmup {
			output += warmupStyle.Render(label)
		} else {
			output += phaseStyle.Render(label)
		}
	} else {
		output += label
	}
	output += "\n\n"

	// Timer
	timeStr := FormatSeconds(remaining)
	if d.UseColor {
		output += timerStyle.Render(timeStr)
	} else {
		output += timeStr
	}
	output += "\n\n"

	// Progress bar
	progressBar := d.renderProgressBar(m.Progress(), 30)
	if d.UseColor {
		output += progressStyle.Render(progressBar)
	} else {
		output += progressBar
	}
	output += "\n\n"

	// Status/controls hint
	var status string
	if paused {
		status = "[PAUSED] Press SPACE to resume, F to finish, D to discard"
	} else {
		status = "Press SPACE to pause, F to finish, D to discard"
	}
	if d.UseColor {
		output += statusStyle.Render(status)
	} else {
		output += status
	}

	return output
}

// RenderNaturalFinish renders the prompt shown when the countdown completes.
func (d *Display) RenderNaturalFinish(cfg Config) string {
	var output string

	header := fmt.Sprintf("%s session complete!", cfg.Type.DisplayName())
	if d.UseColor {
		output += phaseStyle.Render(header)
	} else {
		output += header
	}
	output += "\n\n"

	hint := "Press F to save the session, D to discard it"
	if d.UseColor {
		output += statusStyle.Render(hint)
	} else {
		output += hint
	}

	return output
}

// RenderSaved renders the confirmation after a session record is committed.
func (d *Display) RenderSaved(session *model.Session) string {
	var output string

	header := "Session saved"
	if d.UseColor {
		output += phaseStyle.Render(header)
	} else {
		output += header
	}
	output += "\n\n"

	stats := fmt.Sprintf("%s for %s", session.Type.DisplayName(), FormatSeconds(session.DurationSeconds))
	if d.UseColor {
		output += statusStyle.Render(stats)
	} else {
		output += stats
	}

	return output
}

// renderProgressBar creates a progress bar string.
func (d *Display) renderProgressBar(progress float64, width int) string {
	filled := int(progress * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	empty := width - filled

	bar := ""
	for i := 0; i < filled; i++ {
		bar += "█" // Full block
	}
	for i := 0; i < empty; i++ {
		bar += "░" // Light shade
	}

	percentage := int(progress * 100)
	return fmt.Sprintf("[%s] %d%%", bar, percentage)
}

// ClearScreen clears the terminal screen.
func (d *Display) ClearScreen() {
	fmt.Fprint(d.Writer, "\033[H\033[2J")
}

// MoveCursorHome moves cursor to home position.
func (d *Display) MoveCursorHome() {
	fmt.Fprint(d.Writer, "\033[H")
}
