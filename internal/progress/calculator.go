// Package progress derives aggregate statistics from a session snapshot.
//
// Calculators are pure: they operate on a value snapshot of the session log
// plus an explicit reference time, so nothing here reads the wall clock and
// every computation is reproducible in tests. Date bucketing uses calendar
// day/week/month boundaries in the reference time's location; stored session
// timezones are not normalized.
package progress

import (
	"time"

	"github.com/manav03panchal/mindful/internal/model"
)

// Calculator aggregates a session snapshot into daily/weekly/monthly totals.
type Calculator struct {
	sessions  []*model.Session
	now       time.Time
	weekStart time.Weekday
}

// NewCalculator creates a calculator over the given snapshot.
func NewCalculator(sessions []*model.Session, now time.Time, weekStart time.Weekday) *Calculator {
	return &Calculator{
		sessions:  sessions,
		now:       now,
		weekStart: weekStart,
	}
}

// TotalSessions returns the number of sessions in the snapshot.
func (c *Calculator) TotalSessions() int {
	return len(c.sessions)
}

// TotalMinutes returns the sum of session durations in whole minutes,
// each truncated individually.
func (c *Calculator) TotalMinutes() int {
	total := 0
	for _, s := range c.sessions {
		total += s.DurationMinutes()
	}
	return total
}

// AverageSessionDuration returns the mean session length in minutes,
// integer-truncated. Zero when the snapshot is empty.
func (c *Calculator) AverageSessionDuration() int {
	if len(c.sessions) == 0 {
		return 0
	}
	return c.TotalMinutes() / c.TotalSessions()
}

// TodaysMinutes returns the minutes practiced during the calendar day
// containing the reference time.
func (c *Calculator) TodaysMinutes() int {
	dayStart := StartOfDay(c.now)
	return c.minutesBetween(dayStart, dayStart.AddDate(0, 0, 1))
}

// TodaysSessionCount returns the number of sessions today.
func (c *Calculator) TodaysSessionCount() int {
	dayStart := StartOfDay(c.now)
	dayEnd := dayStart.AddDate(0, 0, 1)
	count := 0
	for _, s := range c.sessions {
		if !s.Date.Before(dayStart) && s.Date.Before(dayEnd) {
			count++
		}
	}
	return count
}

// WeekProgress reports progress toward a weekly minutes goal.
type WeekProgress struct {
	CompletedMinutes int     `json:"completed_minutes"`
	GoalMinutes      int     `json:"goal_minutes"`
	Percentage       float64 `json:"percentage"`
}

// WeeklyProgress sums minutes for the current calendar week and reports
// progress toward goalMinutes. Percentage is clamped to [0,1] and is zero
// when the goal is not positive.
func (c *Calculator) WeeklyProgress(goalMinutes int) WeekProgress {
	weekStart := StartOfWeek(c.now, c.weekStart)
	completed := c.minutesBetween(weekStart, weekStart.AddDate(0, 0, 7))

	percentage := 0.0
	if goalMinutes > 0 {
		percentage = float64(completed) / float64(goalMinutes)
		if percentage > 1 {
			percentage = 1
		}
	}

	return WeekProgress{
		CompletedMinutes: completed,
		GoalMinutes:      goalMinutes,
		Percentage:       percentage,
	}
}

// DayMinutes is one day's practice within a week or month series.
type DayMinutes struct {
	Date    time.Time `json:"date"`
	Label   string    `json:"label"`
	Minutes int       `json:"minutes"`
	IsToday bool      `json:"is_today"`
}

// WeeklyData returns per-day minutes for each of the 7 days of the current
// week, in week order.
func (c *Calculator) WeeklyData() []DayMinutes {
	weekStart := StartOfWeek(c.now, c.weekStart)
	today := StartOfDay(c.now)

	days := make([]DayMinutes, 0, 7)
	for offset := 0; offset < 7; offset++ {
		dayStart := weekStart.AddDate(0, 0, offset)
		days = append(days, DayMinutes{
			Date:    dayStart,
			Label:   dayStart.Format("Mon"),
			Minutes: c.minutesBetween(dayStart, dayStart.AddDate(0, 0, 1)),
			IsToday: dayStart.Equal(today),
		})
	}
	return days
}

// MonthDay is one day's practice within the current calendar month.
type MonthDay struct {
	Date       time.Time `json:"date"`
	Minutes    int       `json:"minutes"`
	HasSession bool      `json:"has_session"`
}

// MonthlyData returns per-day minutes for every day of the current calendar month.
func (c *Calculator) MonthlyData() []MonthDay {
	monthStart := StartOfMonth(c.now)
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	days := make([]MonthDay, 0, daysInMonth)
	for day := 0; day < daysInMonth; day++ {
		dayStart := monthStart.AddDate(0, 0, day)
		minutes := c.minutesBetween(dayStart, dayStart.AddDate(0, 0, 1))
		days = append(days, MonthDay{
			Date:       dayStart,
			Minutes:    minutes,
			HasSession: minutes > 0,
		})
	}
	return days
}

// MonthlyMinutes returns the minutes practiced in the current calendar month.
func (c *Calculator) MonthlyMinutes() int {
	monthStart := StartOfMonth(c.now)
	return c.minutesBetween(monthStart, monthStart.AddDate(0, 1, 0))
}

// minutesBetween sums minutes for sessions with date in [start, end).
func (c *Calculator) minutesBetween(start, end time.Time) int {
	total := 0
	for _, s := range c.sessions {
		if !s.Date.Before(start) && s.Date.Before(end) {
			total += s.DurationMinutes()
		}
	}
	return total
}

// StartOfDay returns midnight of the calendar day containing t.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the first day of the calendar week
// containing t, where weeks begin on weekStart.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// StartOfMonth returns midnight of the first day of the calendar month containing t.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}
