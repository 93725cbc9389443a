package coordinator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/mindful/internal/errors"
	"github.com/manav03panchal/mindful/internal/model"
	"github.com/manav03panchal/mindful/internal/storage"
)

// setupCoordinator creates a coordinator over a fresh in-memory database.
func setupCoordinator(t *testing.T) *Coordinator {
	t.Helper()
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db)
}

func minuteSession(date time.Time, minutes int) *model.Session {
	return model.NewSession(date, minutes*60, model.TypeMindfulness)
}

// =============================================================================
// Construction Tests
// =============================================================================

func TestNewSeedsDefaults(t *testing.T) {
	c := setupCoordinator(t)

	assert.Empty(t, c.Sessions())
	assert.Equal(t, model.DefaultWeeklyGoalMinutes, c.WeeklyGoalMinutes())

	milestones := c.ActiveMilestones()
	assert.Len(t, milestones, 7, "default catalog seeded on first run")
	assert.Empty(t, c.CompletedMilestones())
}

func TestNewLoadsPersistedState(t *testing.T) {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	defer db.Close()

	first := New(db)
	first.AddSession(minuteSession(time.Now(), 10))
	first.UpdateUserProfile(ProfileUpdate{WeeklyGoalMinutes: intPtr(200)})

	// A second coordinator over the same store sees the same state
	second := New(db)
	assert.Len(t, second.Sessions(), 1)
	assert.Equal(t, 200, second.WeeklyGoalMinutes())
	assert.Len(t, second.ActiveMilestones(), 6, "First Steps already earned")
}

// =============================================================================
// Session Tests
// =============================================================================

func TestAddSessionCompletesFirstSteps(t *testing.T) {
	c := setupCoordinator(t)

	completed := c.AddSession(minuteSession(time.Now(), 10))
	require.Len(t, completed, 1)
	assert.Equal(t, "First Steps", completed[0].Title)

	// A second session completes nothing new
	completed = c.AddSession(minuteSession(time.Now(), 10))
	assert.Empty(t, completed)

	done := c.CompletedMilestones()
	require.Len(t, done, 1)
	assert.Equal(t, "First Steps", done[0].Title)
}

func TestSessionsNewestFirst(t *testing.T) {
	c := setupCoordinator(t)
	now := time.Now()

	c.AddSession(minuteSession(now.AddDate(0, 0, -2), 5))
	c.AddSession(minuteSession(now, 15))
	c.AddSession(minuteSession(now.AddDate(0, 0, -1), 10))

	sessions := c.Sessions()
	require.Len(t, sessions, 3)
	assert.Equal(t, 15, sessions[0].DurationMinutes())
	assert.Equal(t, 10, sessions[1].DurationMinutes())
	assert.Equal(t, 5, sessions[2].DurationMinutes())
}

func TestEditSessionNotesAndTags(t *testing.T) {
	c := setupCoordinator(t)

	session := minuteSession(time.Now(), 10)
	c.AddSession(session)

	notes := "calm morning"
	tags := []string{"morning"}
	require.NoError(t, c.EditSession(session.Key, &notes, &tags))

	edited, err := c.Session(session.Key)
	require.NoError(t, err)
	assert.Equal(t, "calm morning", edited.Notes)
	assert.Equal(t, []string{"morning"}, edited.Tags)

	// Nil fields leave existing values
	newTags := []string{"morning", "deep"}
	require.NoError(t, c.EditSession(session.Key, nil, &newTags))
	edited, err = c.Session(session.Key)
	require.NoError(t, err)
	assert.Equal(t, "calm morning", edited.Notes)
	assert.Len(t, edited.Tags, 2)
}

func TestEditSessionNotFound(t *testing.T) {
	c := setupCoordinator(t)
	err := c.EditSession("session:missing", nil, nil)
	assert.True(t, errors.Is(err, errors.ErrSessionNotFound))
}

func TestDeleteSessionRecomputes(t *testing.T) {
	c := setupCoordinator(t)

	session := minuteSession(time.Now(), 10)
	completed := c.AddSession(session)
	require.NotEmpty(t, completed)

	require.NoError(t, c.DeleteSession(session.Key))
	assert.Empty(t, c.Sessions())
	assert.Equal(t, 0, c.TotalSessions())

	// First Steps drops back to incomplete when the log empties
	assert.Empty(t, c.CompletedMilestones())
	assert.Len(t, c.ActiveMilestones(), 7)
}

func TestDeleteSessionNotFound(t *testing.T) {
	c := setupCoordinator(t)
	err := c.DeleteSession("session:missing")
	assert.True(t, errors.Is(err, errors.ErrSessionNotFound))
}

// =============================================================================
// Query Tests
// =============================================================================

func TestFilteredSessions(t *testing.T) {
	c := setupCoordinator(t)
	now := time.Now()

	today := minuteSession(now, 10)
	c.AddSession(today)

	old := model.NewSession(now.AddDate(0, -2, 0), 600, model.TypeBreathing)
	old.Notes = "windy evening"
	c.AddSession(old)

	assert.Len(t, c.FilteredSessions(model.FilterAll, "", ""), 2)
	assert.Len(t, c.FilteredSessions(model.FilterToday, "", ""), 1)
	assert.Len(t, c.FilteredSessions(model.FilterAll, model.TypeBreathing, ""), 1)
	assert.Len(t, c.FilteredSessions(model.FilterAll, "", "windy"), 1)
	assert.Empty(t, c.FilteredSessions(model.FilterToday, model.TypeBreathing, ""))
}

func TestAggregateQueries(t *testing.T) {
	c := setupCoordinator(t)
	now := time.Now()

	c.AddSession(minuteSession(now, 10))
	c.AddSession(minuteSession(now, 20))

	assert.Equal(t, 2, c.TotalSessions())
	assert.Equal(t, 30, c.TotalMinutes())
	assert.Equal(t, 15, c.AverageSessionDuration())
	assert.Equal(t, 30, c.TodaysMinutes())
	assert.Equal(t, 2, c.TodaysSessionCount())
	assert.Equal(t, 1, c.CurrentStreak())
	assert.True(t, c.IsStreakActive())
	assert.Nil(t, c.DaysUntilStreakBreaks())

	wp := c.WeeklyProgress()
	assert.Equal(t, 30, wp.CompletedMinutes)
	assert.Equal(t, model.DefaultWeeklyGoalMinutes, wp.GoalMinutes)

	stats := c.Stats()
	assert.Equal(t, 2, stats.TotalSessions)
	assert.Equal(t, 30, stats.TotalMinutes)
	assert.Equal(t, 1, stats.CurrentStreak)
}

// =============================================================================
// Profile Tests
// =============================================================================

func TestUpdateUserProfileClampsGoal(t *testing.T) {
	c := setupCoordinator(t)

	c.UpdateUserProfile(ProfileUpdate{WeeklyGoalMinutes: intPtr(9999)})
	assert.Equal(t, model.MaxWeeklyGoalMinutes, c.WeeklyGoalMinutes())

	c.UpdateUserProfile(ProfileUpdate{WeeklyGoalMinutes: intPtr(10)})
	assert.Equal(t, model.MinWeeklyGoalMinutes, c.WeeklyGoalMinutes())
}

func TestUpdateUserProfilePartial(t *testing.T) {
	c := setupCoordinator(t)

	name := "Ana"
	c.UpdateUserProfile(ProfileUpdate{Name: &name})

	profile := c.Profile()
	assert.Equal(t, "Ana", profile.Name)
	assert.Equal(t, model.DefaultWeeklyGoalMinutes, profile.WeeklyGoalMinutes, "unset fields untouched")
}

// =============================================================================
// Milestone Tests
// =============================================================================

func TestAddDeleteMilestone(t *testing.T) {
	c := setupCoordinator(t)

	m := model.NewMilestone("Fortnight", "14 days in a row", 14, model.KindStreak)
	c.AddMilestone(m)
	require.NotEmpty(t, m.Key)
	assert.Len(t, c.ActiveMilestones(), 8)

	require.NoError(t, c.DeleteMilestone(m.Key))
	assert.Len(t, c.ActiveMilestones(), 7)

	err := c.DeleteMilestone(m.Key)
	assert.True(t, errors.Is(err, errors.ErrMilestoneNotFound))
}

func TestCompletionHook(t *testing.T) {
	c := setupCoordinator(t)

	var titles []string
	c.SetCompletionHook(func(m *model.Milestone) { titles = append(titles, m.Title) })

	c.AddSession(minuteSession(time.Now(), 10))
	assert.Equal(t, []string{"First Steps"}, titles)
}

func intPtr(v int) *int { return &v }
