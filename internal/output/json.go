package output

import (
	"time"

	"github.com/manav03panchal/mindful/internal/model"
	"github.com/manav03panchal/mindful/internal/progress"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// SessionOutput represents a session in JSON output.
type SessionOutput struct {
	Key             string   `json:"key"`
	Date            string   `json:"date"`
	DurationSeconds int      `json:"duration_seconds"`
	DurationMinutes int      `json:"duration_minutes"`
	Type            string   `json:"type"`
	Notes           string   `json:"notes,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Completed       bool     `json:"completed"`
	StartTime       string   `json:"start_time,omitempty"`
	EndTime         string   `json:"end_time,omitempty"`
}

// NewSessionOutput creates a SessionOutput from a Session.
func NewSessionOutput(s *model.Session) *SessionOutput {
	out := &SessionOutput{
		Key:             s.Key,
		Date:            s.Date.Format(time.RFC3339),
		DurationSeconds: s.DurationSeconds,
		DurationMinutes: s.DurationMinutes(),
		Type:            string(s.Type),
		Notes:           s.Notes,
		Tags:            s.Tags,
		Completed:       s.Completed,
	}
	if !s.StartTime.IsZero() {
		out.StartTime = s.StartTime.Format(time.RFC3339)
	}
	if !s.EndTime.IsZero() {
		out.EndTime = s.EndTime.Format(time.RFC3339)
	}
	return out
}

// SessionsResponse represents the session list output in JSON.
type SessionsResponse struct {
	Sessions     []*SessionOutput `json:"sessions"`
	TotalCount   int              `json:"total_count"`
	ShownCount   int              `json:"shown_count"`
	TotalMinutes int              `json:"total_minutes"`
}

// NewSessionsResponse creates a SessionsResponse from sessions.
func NewSessionsResponse(sessions []*model.Session, total int) *SessionsResponse {
	outputs := make([]*SessionOutput, len(sessions))
	var totalMinutes int
	for i, s := range sessions {
		outputs[i] = NewSessionOutput(s)
		totalMinutes += s.DurationMinutes()
	}
	return &SessionsResponse{
		Sessions:     outputs,
		TotalCount:   total,
		ShownCount:   len(sessions),
		TotalMinutes: totalMinutes,
	}
}

// LogResponse represents the log command output in JSON.
type LogResponse struct {
	Status     string             `json:"status"`
	Session    *SessionOutput     `json:"session"`
	Milestones []*MilestoneOutput `json:"milestones_completed,omitempty"`
}

// MilestoneOutput represents a milestone in JSON output.
type MilestoneOutput struct {
	Key           string  `json:"key"`
	Title         string  `json:"title"`
	Details       string  `json:"details,omitempty"`
	Kind          string  `json:"kind"`
	TargetValue   int     `json:"target_value"`
	CurrentValue  int     `json:"current_value"`
	Progress      float64 `json:"progress"`
	Completed     bool    `json:"completed"`
	CompletedDate string  `json:"completed_date,omitempty"`
}

// NewMilestoneOutput creates a MilestoneOutput from a Milestone.
func NewMilestoneOutput(m *model.Milestone) *MilestoneOutput {
	out := &MilestoneOutput{
		Key:          m.Key,
		Title:        m.Title,
		Details:      m.Details,
		Kind:         string(m.Kind),
		TargetValue:  m.TargetValue,
		CurrentValue: m.CurrentValue,
		Progress:     m.Progress(),
		Completed:    m.Completed,
	}
	if m.CompletedDate != nil {
		out.CompletedDate = m.CompletedDate.Format(time.RFC3339)
	}
	return out
}

// NewMilestoneOutputs converts a milestone slice.
func NewMilestoneOutputs(milestones []*model.Milestone) []*MilestoneOutput {
	outputs := make([]*MilestoneOutput, len(milestones))
	for i, m := range milestones {
		outputs[i] = NewMilestoneOutput(m)
	}
	return outputs
}

// MilestonesResponse represents the milestone list output in JSON.
type MilestonesResponse struct {
	Active    []*MilestoneOutput `json:"active"`
	Completed []*MilestoneOutput `json:"completed"`
}

// StatusResponse represents the status output in JSON.
type StatusResponse struct {
	TodayMinutes  int              `json:"today_minutes"`
	TodaySessions int              `json:"today_sessions"`
	Week          *WeekOutput      `json:"week"`
	CurrentStreak int              `json:"current_streak"`
	NextMilestone *MilestoneOutput `json:"next_milestone,omitempty"`
}

// WeekOutput represents weekly goal progress in JSON.
type WeekOutput struct {
	CompletedMinutes int     `json:"completed_minutes"`
	GoalMinutes      int     `json:"goal_minutes"`
	Percentage       float64 `json:"percentage"`
}

// NewWeekOutput creates a WeekOutput from WeekProgress.
func NewWeekOutput(w progress.WeekProgress) *WeekOutput {
	return &WeekOutput{
		CompletedMinutes: w.CompletedMinutes,
		GoalMinutes:      w.GoalMinutes,
		Percentage:       w.Percentage,
	}
}

// StatsResponse represents statistics output in JSON.
type StatsResponse struct {
	TotalSessions  int               `json:"total_sessions"`
	TotalMinutes   int               `json:"total_minutes"`
	AverageMinutes int               `json:"average_minutes"`
	MonthlyMinutes int               `json:"monthly_minutes"`
	Week           *WeekOutput       `json:"week"`
	WeeklyData     []*DayOutput      `json:"weekly_data"`
	MonthlyData    []*MonthDayOutput `json:"monthly_data,omitempty"`
}

// MonthDayOutput represents one day of the monthly calendar in JSON.
type MonthDayOutput struct {
	Date       string `json:"date"`
	Minutes    int    `json:"minutes"`
	HasSession bool   `json:"has_session"`
}

// NewMonthDayOutputs converts a monthly data slice.
func NewMonthDayOutputs(days []progress.MonthDay) []*MonthDayOutput {
	outputs := make([]*MonthDayOutput, len(days))
	for i, d := range days {
		outputs[i] = &MonthDayOutput{
			Date:       d.Date.Format("2006-01-02"),
			Minutes:    d.Minutes,
			HasSession: d.HasSession,
		}
	}
	return outputs
}

// DayOutput represents one day's practice in JSON.
type DayOutput struct {
	Date    string `json:"date"`
	Label   string `json:"label"`
	Minutes int    `json:"minutes"`
	IsToday bool   `json:"is_today"`
}

// NewDayOutputs converts a weekly data slice.
func NewDayOutputs(days []progress.DayMinutes) []*DayOutput {
	outputs := make([]*DayOutput, len(days))
	for i, d := range days {
		outputs[i] = &DayOutput{
			Date:    d.Date.Format("2006-01-02"),
			Label:   d.Label,
			Minutes: d.Minutes,
			IsToday: d.IsToday,
		}
	}
	return outputs
}

// StreakResponse represents streak output in JSON.
type StreakResponse struct {
	CurrentStreak         int                  `json:"current_streak"`
	LongestStreak         int                  `json:"longest_streak"`
	Active                bool                 `json:"active"`
	DaysUntilStreakBreaks *int                 `json:"days_until_streak_breaks"`
	History               []*PracticeDayOutput `json:"history,omitempty"`
}

// PracticeDayOutput represents one day of the streak history in JSON.
type PracticeDayOutput struct {
	Date       string `json:"date"`
	HasSession bool   `json:"has_session"`
}

// NewPracticeDayOutputs converts a streak history slice.
func NewPracticeDayOutputs(days []progress.DayPractice) []*PracticeDayOutput {
	outputs := make([]*PracticeDayOutput, len(days))
	for i, d := range days {
		outputs[i] = &PracticeDayOutput{
			Date:       d.Date.Format("2006-01-02"),
			HasSession: d.HasSession,
		}
	}
	return outputs
}

// ProfileResponse represents the profile output in JSON.
type ProfileResponse struct {
	Name                     string   `json:"name,omitempty"`
	Email                    string   `json:"email,omitempty"`
	JoinDate                 string   `json:"join_date"`
	DaysSinceJoin            int      `json:"days_since_join"`
	WeeklyGoalMinutes        int      `json:"weekly_goal_minutes"`
	PreferredDurationMinutes int      `json:"preferred_duration_minutes"`
	PreferredTypes           []string `json:"preferred_types,omitempty"`
	NotificationsEnabled     bool     `json:"notifications_enabled"`
	ReminderTime             string   `json:"reminder_time,omitempty"`
}

// NewProfileResponse creates a ProfileResponse from a UserProfile.
func NewProfileResponse(p model.UserProfile, daysSinceJoin int) *ProfileResponse {
	types := make([]string, len(p.PreferredTypes))
	for i, t := range p.PreferredTypes {
		types[i] = string(t)
	}
	return &ProfileResponse{
		Name:                     p.Name,
		Email:                    p.Email,
		JoinDate:                 p.JoinDate.Format(time.RFC3339),
		DaysSinceJoin:            daysSinceJoin,
		WeeklyGoalMinutes:        p.WeeklyGoalMinutes,
		PreferredDurationMinutes: p.PreferredDurationMinutes,
		PreferredTypes:           types,
		NotificationsEnabled:     p.NotificationsEnabled,
		ReminderTime:             p.ReminderTime,
	}
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// PrintSessions outputs sessions in JSON format.
func (j *JSONFormatter) PrintSessions(sessions []*model.Session, total int) error {
	return j.JSON(NewSessionsResponse(sessions, total))
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(status, errMsg, message string) error {
	resp := ErrorResponse{
		Status:  status,
		Error:   errMsg,
		Message: message,
	}
	return j.JSON(resp)
}
