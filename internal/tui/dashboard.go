package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/mindful/internal/coordinator"
	"github.com/manav03panchal/mindful/internal/model"
	"github.com/manav03panchal/mindful/internal/progress"
)

// tickMsg is sent when the timer ticks.
type tickMsg time.Time

// refreshMsg is sent when data needs to be refreshed.
type refreshMsg struct{}

// DashboardModel is the main bubbletea model for the dashboard.
type DashboardModel struct {
	// Data
	todayMinutes   int
	todaySessions  int
	currentStreak  int
	streakActive   bool
	weekProgress   progress.WeekProgress
	weeklyData     []progress.DayMinutes
	nextMilestone  *model.Milestone
	recentSessions []*model.Session

	coordinator *coordinator.Coordinator

	// UI state
	width      int
	height     int
	err        error
	message    string
	messageExp time.Time

	// Configuration
	refreshInterval time.Duration
	maxRecent       int
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	Coordinator     *coordinator.Coordinator
	RefreshInterval time.Duration
	MaxRecent       int
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	if config.RefreshInterval == 0 {
		config.RefreshInterval = time.Second
	}
	if config.MaxRecent == 0 {
		config.MaxRecent = 5
	}

	return &DashboardModel{
		coordinator:     config.Coordinator,
		refreshInterval: config.RefreshInterval,
		maxRecent:       config.MaxRecent,
	}
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.refreshCmd(),
	)
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Clear expired messages
		if !m.messageExp.IsZero() && time.Now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		m.loadData()
		return m, m.tickCmd()

	case refreshMsg:
		m.loadData()
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "b":
		// Timers run in the foreground, not from the dashboard
		m.setMessage("Use 'mindful begin 10m' to start a timed session", 3*time.Second)
		return m, nil

	case "r":
		// Refresh data
		m.loadData()
		m.setMessage("Refreshed", time.Second)
		return m, nil
	}

	return m, nil
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	// Header
	sections = append(sections, m.renderHeader())

	// Error message
	if m.err != nil {
		errBox := StyleError.Render(fmt.Sprintf("Error: %v", m.err))
		sections = append(sections, errBox)
	}

	// Status message
	if m.message != "" {
		msgBox := StyleWarning.Render(m.message)
		sections = append(sections, msgBox)
	}

	// Today's practice and streak
	todayComp := NewTodayComponent(m.todayMinutes, m.todaySessions, m.currentStreak, m.streakActive, m.width)
	sections = append(sections, todayComp.View())

	// Weekly goal progress
	goalComp := NewGoalComponent(m.weekProgress, m.weeklyData, m.width)
	sections = append(sections, goalComp.View())

	// Next milestone
	if m.nextMilestone != nil {
		milestoneComp := NewMilestoneComponent(m.nextMilestone, m.width)
		sections = append(sections, milestoneComp.View())
	}

	// Recent sessions
	sessionsComp := NewSessionsComponent(m.recentSessions, m.width, m.maxRecent)
	sections = append(sections, sessionsComp.View())

	// Help bar
	sections = append(sections, HelpBar())

	return joinVertical(sections...)
}

// renderHeader renders the dashboard header.
func (m *DashboardModel) renderHeader() string {
	title := StyleTitle.Render("Mindful Dashboard")
	now := time.Now().Format("Mon Jan 2, 15:04:05")
	timeStr := StyleSubtitle.Render(now)

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", timeStr) + "\n"
}

// loadData pulls a fresh snapshot from the coordinator.
func (m *DashboardModel) loadData() {
	c := m.coordinator

	m.todayMinutes = c.TodaysMinutes()
	m.todaySessions = c.TodaysSessionCount()
	m.currentStreak = c.CurrentStreak()
	m.streakActive = c.IsStreakActive()
	m.weekProgress = c.WeeklyProgress()
	m.weeklyData = c.WeeklyData()
	m.nextMilestone = c.NextMilestone()

	sessions := c.Sessions()
	if len(sessions) > m.maxRecent {
		sessions = sessions[:m.maxRecent]
	}
	m.recentSessions = sessions

	m.err = nil
}

// setMessage sets a temporary message.
func (m *DashboardModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = time.Now().Add(duration)
}

// tickCmd returns a command that sends a tick message.
func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refreshCmd returns a command that sends a refresh message.
func (m *DashboardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{}
	}
}

// Run starts the dashboard TUI.
func Run(config DashboardConfig) error {
	model := NewDashboardModel(config)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
