package coordinator

import (
	"time"

	"github.com/manav03panchal/mindful/internal/errors"
	"github.com/manav03panchal/mindful/internal/milestone"
	"github.com/manav03panchal/mindful/internal/model"
	"github.com/manav03panchal/mindful/internal/progress"
)

// calculator builds a progress calculator over the current cache.
// Callers hold the mutex.
func (c *Coordinator) calculator() *progress.Calculator {
	return progress.NewCalculator(c.sessions, c.now(), c.weekStart)
}

// streak builds a streak calculator over the current cache.
// Callers hold the mutex.
func (c *Coordinator) streak() *progress.Streak {
	return progress.NewStreak(c.sessions, c.now())
}

// Sessions returns the session log, newest first.
func (c *Coordinator) Sessions() []*model.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*model.Session, len(c.sessions))
	copy(out, c.sessions)
	return out
}

// Session returns a session by key, or ErrSessionNotFound.
func (c *Coordinator) Session(key string) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s := c.findSession(key); s != nil {
		return s, nil
	}
	return nil, errors.ErrSessionNotFound
}

// rangeFor returns the [start, end) window for a date filter. FilterAll
// returns zero times, meaning no date constraint.
func rangeFor(filter model.SessionFilter, now time.Time, weekStart time.Weekday) (time.Time, time.Time) {
	switch filter {
	case model.FilterToday:
		start := progress.StartOfDay(now)
		return start, start.AddDate(0, 0, 1)
	case model.FilterThisWeek:
		start := progress.StartOfWeek(now, weekStart)
		return start, start.AddDate(0, 0, 7)
	case model.FilterThisMonth:
		start := progress.StartOfMonth(now)
		return start, start.AddDate(0, 1, 0)
	default:
		return time.Time{}, time.Time{}
	}
}

// FilteredSessions returns sessions matching a date filter, an optional type,
// and an optional free-text search over notes, tags, and type name.
func (c *Coordinator) FilteredSessions(filter model.SessionFilter, sessionType model.SessionType, search string) []*model.Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	var start, end = rangeFor(filter, now, c.weekStart)

	var out []*model.Session
	for _, s := range c.sessions {
		if !start.IsZero() && (s.Date.Before(start) || !s.Date.Before(end)) {
			continue
		}
		if sessionType != "" && s.Type != sessionType {
			continue
		}
		if !s.Matches(search) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// TotalSessions returns the number of recorded sessions.
func (c *Coordinator) TotalSessions() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calculator().TotalSessions()
}

// TotalMinutes returns the total minutes practiced.
func (c *Coordinator) TotalMinutes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calculator().TotalMinutes()
}

// AverageSessionDuration returns the mean session length in minutes.
func (c *Coordinator) AverageSessionDuration() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calculator().AverageSessionDuration()
}

// TodaysMinutes returns today's practiced minutes.
func (c *Coordinator) TodaysMinutes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calculator().TodaysMinutes()
}

// TodaysSessionCount returns the number of sessions today.
func (c *Coordinator) TodaysSessionCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calculator().TodaysSessionCount()
}

// WeeklyProgress reports progress toward the profile's weekly goal.
func (c *Coordinator) WeeklyProgress() progress.WeekProgress {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calculator().WeeklyProgress(c.profile.WeeklyGoalMinutes)
}

// WeeklyData returns per-day minutes for the current week.
func (c *Coordinator) WeeklyData() []progress.DayMinutes {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calculator().WeeklyData()
}

// MonthlyData returns per-day minutes for the current month.
func (c *Coordinator) MonthlyData() []progress.MonthDay {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calculator().MonthlyData()
}

// MonthlyMinutes returns the minutes practiced this month.
func (c *Coordinator) MonthlyMinutes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calculator().MonthlyMinutes()
}

// CurrentStreak returns the current consecutive-day streak.
func (c *Coordinator) CurrentStreak() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.streak().CurrentStreak()
}

// LongestStreak returns the longest streak ever recorded.
func (c *Coordinator) LongestStreak() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.streak().LongestStreak()
}

// IsStreakActive reports whether the streak is not yet lost.
func (c *Coordinator) IsStreakActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.streak().IsStreakActive()
}

// DaysUntilStreakBreaks returns nil when practiced today, 1 when the streak
// is active but today is open, 0 when broken.
func (c *Coordinator) DaysUntilStreakBreaks() *int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.streak().DaysUntilStreakBreaks()
}

// StreakHistory returns the per-day practice series since the first session.
func (c *Coordinator) StreakHistory() []progress.DayPractice {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.streak().History()
}

// ActiveMilestones returns incomplete milestones, ascending by target.
func (c *Coordinator) ActiveMilestones() []*model.Milestone {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.ActiveMilestones()
}

// CompletedMilestones returns completed milestones.
func (c *Coordinator) CompletedMilestones() []*model.Milestone {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.CompletedMilestones()
}

// NextMilestone returns the closest incomplete milestone, or nil.
func (c *Coordinator) NextMilestone() *model.Milestone {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.NextMilestone()
}

// RecentlyCompleted returns milestones completed within the last withinDays days.
func (c *Coordinator) RecentlyCompleted(withinDays int) []*model.Milestone {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.RecentlyCompleted(withinDays)
}

// Stats returns the aggregate statistics snapshot fed to the milestone engine.
func (c *Coordinator) Stats() milestone.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	calc := c.calculator()
	streak := c.streak()
	return milestone.Stats{
		TotalSessions:  calc.TotalSessions(),
		TotalMinutes:   calc.TotalMinutes(),
		CurrentStreak:  streak.CurrentStreak(),
		LongestStreak:  streak.LongestStreak(),
		WeeklyMinutes:  calc.WeeklyProgress(c.profile.WeeklyGoalMinutes).CompletedMinutes,
		MonthlyMinutes: calc.MonthlyMinutes(),
	}
}

// Profile returns a copy of the user profile.
func (c *Coordinator) Profile() model.UserProfile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return *c.profile
}

// WeeklyGoalMinutes returns the profile's weekly goal.
func (c *Coordinator) WeeklyGoalMinutes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile.WeeklyGoalMinutes
}
