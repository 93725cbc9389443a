package milestone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/mindful/internal/model"
)

func newTestEngine(milestones ...*model.Milestone) *Engine {
	for i, m := range milestones {
		m.SetKey(model.GenerateMilestoneKey(string(rune('a' + i))))
	}
	e := NewEngine(milestones)
	e.SetClock(func() time.Time { return time.Date(2026, 8, 12, 12, 0, 0, 0, time.Local) })
	return e
}

// =============================================================================
// UpdateProgress Tests
// =============================================================================

func TestUpdateProgressSetsValuesByKind(t *testing.T) {
	e := newTestEngine(
		model.NewMilestone("Sessions", "", 100, model.KindTotalSessions),
		model.NewMilestone("Minutes", "", 1000, model.KindTotalMinutes),
		model.NewMilestone("Streak", "", 30, model.KindStreak),
		model.NewMilestone("Week", "", 150, model.KindWeeklyGoal),
		model.NewMilestone("Month", "", 600, model.KindMonthlyGoal),
	)

	e.UpdateProgress(Stats{
		TotalSessions:  12,
		TotalMinutes:   340,
		CurrentStreak:  3,
		LongestStreak:  8,
		WeeklyMinutes:  45,
		MonthlyMinutes: 120,
	})

	byTitle := make(map[string]*model.Milestone)
	for _, m := range e.Milestones() {
		byTitle[m.Title] = m
	}
	assert.Equal(t, 12, byTitle["Sessions"].CurrentValue)
	assert.Equal(t, 340, byTitle["Minutes"].CurrentValue)
	assert.Equal(t, 8, byTitle["Streak"].CurrentValue, "streak milestones honor the longest streak")
	assert.Equal(t, 45, byTitle["Week"].CurrentValue)
	assert.Equal(t, 120, byTitle["Month"].CurrentValue)
}

func TestUpdateProgressCompletesOnce(t *testing.T) {
	e := newTestEngine(
		model.NewMilestone("First Steps", "", 1, model.KindTotalSessions),
	)

	var hookCalls int
	e.SetCompletionHook(func(m *model.Milestone) { hookCalls++ })

	completed := e.UpdateProgress(Stats{TotalSessions: 1})
	require.Len(t, completed, 1)
	assert.Equal(t, "First Steps", completed[0].Title)
	assert.True(t, completed[0].Completed)
	require.NotNil(t, completed[0].CompletedDate)
	assert.Equal(t, 1, hookCalls)

	// Idempotent: same stats again completes nothing new
	completed = e.UpdateProgress(Stats{TotalSessions: 1})
	assert.Empty(t, completed)
	assert.Equal(t, 1, hookCalls)
}

func TestUpdateProgressUncompletesWhenValueDrops(t *testing.T) {
	e := newTestEngine(
		model.NewMilestone("Weekly 150", "", 150, model.KindWeeklyGoal),
	)

	completed := e.UpdateProgress(Stats{WeeklyMinutes: 160})
	require.Len(t, completed, 1)

	// New week: weekly minutes reset below target
	completed = e.UpdateProgress(Stats{WeeklyMinutes: 10})
	assert.Empty(t, completed)

	m := e.Milestones()[0]
	assert.False(t, m.Completed)
	assert.Nil(t, m.CompletedDate)
	assert.Equal(t, 10, m.CurrentValue)
}

func TestUpdateProgressRecompletesAfterDrop(t *testing.T) {
	e := newTestEngine(
		model.NewMilestone("Weekly 150", "", 150, model.KindWeeklyGoal),
	)

	e.UpdateProgress(Stats{WeeklyMinutes: 150})
	e.UpdateProgress(Stats{WeeklyMinutes: 0})

	completed := e.UpdateProgress(Stats{WeeklyMinutes: 151})
	require.Len(t, completed, 1, "a milestone can be re-earned")
}

// =============================================================================
// Catalog Tests
// =============================================================================

func TestActiveAndCompletedMilestones(t *testing.T) {
	e := newTestEngine(
		model.NewMilestone("Century", "", 100, model.KindTotalSessions),
		model.NewMilestone("First", "", 1, model.KindTotalSessions),
		model.NewMilestone("Dedicated", "", 25, model.KindTotalSessions),
	)

	e.UpdateProgress(Stats{TotalSessions: 5})

	active := e.ActiveMilestones()
	require.Len(t, active, 2)
	assert.Equal(t, "Dedicated", active[0].Title, "ascending by target")
	assert.Equal(t, "Century", active[1].Title)

	done := e.CompletedMilestones()
	require.Len(t, done, 1)
	assert.Equal(t, "First", done[0].Title)

	next := e.NextMilestone()
	require.NotNil(t, next)
	assert.Equal(t, "Dedicated", next.Title)
}

func TestNextMilestoneNilWhenAllComplete(t *testing.T) {
	e := newTestEngine(
		model.NewMilestone("First", "", 1, model.KindTotalSessions),
	)
	e.UpdateProgress(Stats{TotalSessions: 2})
	assert.Nil(t, e.NextMilestone())
}

func TestAddRemove(t *testing.T) {
	e := newTestEngine(
		model.NewMilestone("First", "", 1, model.KindTotalSessions),
	)

	custom := model.NewMilestone("Custom", "", 14, model.KindStreak)
	custom.SetKey("milestone:custom")
	e.Add(custom)
	assert.Len(t, e.Milestones(), 2)

	assert.True(t, e.Remove("milestone:custom"))
	assert.Len(t, e.Milestones(), 1)
	assert.False(t, e.Remove("milestone:custom"))
}

func TestRecentlyCompleted(t *testing.T) {
	now := time.Date(2026, 8, 12, 12, 0, 0, 0, time.Local)

	old := model.NewMilestone("Old", "", 1, model.KindTotalSessions)
	oldDate := now.AddDate(0, 0, -30)
	old.Completed = true
	old.CompletedDate = &oldDate
	old.CurrentValue = 1

	fresh := model.NewMilestone("Fresh", "", 2, model.KindTotalSessions)
	freshDate := now.AddDate(0, 0, -2)
	fresh.Completed = true
	fresh.CompletedDate = &freshDate
	fresh.CurrentValue = 2

	e := newTestEngine(old, fresh)

	recent := e.RecentlyCompleted(7)
	require.Len(t, recent, 1)
	assert.Equal(t, "Fresh", recent[0].Title)
}
