// Package milestone updates milestone progress from aggregate statistics.
package milestone

import (
	"sort"
	"time"

	"github.com/manav03panchal/mindful/internal/logging"
	"github.com/manav03panchal/mindful/internal/model"
)

// Stats carries the aggregate statistics milestones are evaluated against.
type Stats struct {
	TotalSessions  int
	TotalMinutes   int
	CurrentStreak  int
	LongestStreak  int
	WeeklyMinutes  int
	MonthlyMinutes int
}

// CompletionHook is invoked once for each milestone that transitions from
// incomplete to complete, for the caller to react to (celebration, logging).
type CompletionHook func(*model.Milestone)

// Engine holds the milestone catalog and maintains the completion invariant:
// a milestone is completed exactly when its current value has reached its target.
type Engine struct {
	milestones  []*model.Milestone
	onCompleted CompletionHook
	now         func() time.Time
}

// NewEngine creates an engine over the given catalog.
func NewEngine(milestones []*model.Milestone) *Engine {
	return &Engine{
		milestones: milestones,
		now:        time.Now,
	}
}

// SetCompletionHook sets the completion callback. A nil hook is allowed.
func (e *Engine) SetCompletionHook(hook CompletionHook) {
	e.onCompleted = hook
}

// SetClock overrides the completion-date clock, for tests.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

// Milestones returns the full catalog.
func (e *Engine) Milestones() []*model.Milestone {
	return e.milestones
}

// Add adds a custom milestone to the catalog.
func (e *Engine) Add(m *model.Milestone) {
	e.milestones = append(e.milestones, m)
}

// Remove removes a milestone by key. Returns true if it was present.
func (e *Engine) Remove(key string) bool {
	for i, m := range e.milestones {
		if m.Key == key {
			e.milestones = append(e.milestones[:i], e.milestones[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateProgress sets every milestone's current value from the statistic
// matching its kind and maintains the completion flag both ways: newly
// reached milestones are stamped with a completion date and returned, and
// previously completed milestones whose value dropped below target (weekly
// and monthly kinds reset periodically) are unmarked.
//
// Calling twice with identical stats is a no-op the second time.
func (e *Engine) UpdateProgress(stats Stats) []*model.Milestone {
	var completed []*model.Milestone

	for _, m := range e.milestones {
		wasCompleted := m.Completed

		switch m.Kind {
		case model.KindTotalSessions:
			m.CurrentValue = stats.TotalSessions
		case model.KindTotalMinutes:
			m.CurrentValue = stats.TotalMinutes
		case model.KindStreak:
			m.CurrentValue = max(stats.CurrentStreak, stats.LongestStreak)
		case model.KindWeeklyGoal:
			m.CurrentValue = stats.WeeklyMinutes
		case model.KindMonthlyGoal:
			m.CurrentValue = stats.MonthlyMinutes
		}

		if !wasCompleted && m.CurrentValue >= m.TargetValue {
			m.Completed = true
			completedAt := e.now()
			m.CompletedDate = &completedAt
			completed = append(completed, m)
			logging.Info("milestone completed",
				logging.KeyMilestone, m.Title,
				logging.KeyCount, m.CurrentValue)
			if e.onCompleted != nil {
				e.onCompleted(m)
			}
		}

		if m.Completed && m.CurrentValue < m.TargetValue {
			m.Completed = false
			m.CompletedDate = nil
		}
	}

	return completed
}

// ActiveMilestones returns incomplete milestones, ascending by target value.
func (e *Engine) ActiveMilestones() []*model.Milestone {
	var active []*model.Milestone
	for _, m := range e.milestones {
		if !m.Completed {
			active = append(active, m)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].TargetValue < active[j].TargetValue
	})
	return active
}

// CompletedMilestones returns completed milestones.
func (e *Engine) CompletedMilestones() []*model.Milestone {
	var done []*model.Milestone
	for _, m := range e.milestones {
		if m.Completed {
			done = append(done, m)
		}
	}
	return done
}

// NextMilestone returns the first active milestone, or nil when all are complete.
func (e *Engine) NextMilestone() *model.Milestone {
	active := e.ActiveMilestones()
	if len(active) == 0 {
		return nil
	}
	return active[0]
}

// RecentlyCompleted returns milestones completed within the last withinDays days.
func (e *Engine) RecentlyCompleted(withinDays int) []*model.Milestone {
	cutoff := e.now().AddDate(0, 0, -withinDays)
	var recent []*model.Milestone
	for _, m := range e.CompletedMilestones() {
		if m.CompletedDate != nil && !m.CompletedDate.Before(cutoff) {
			recent = append(recent, m)
		}
	}
	return recent
}
