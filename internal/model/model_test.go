package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Session Tests
// =============================================================================

func TestParseSessionType(t *testing.T) {
	tests := []struct {
		input string
		want  SessionType
		ok    bool
	}{
		{"mindfulness", TypeMindfulness, true},
		{"Breathing", TypeBreathing, true},
		{"BODY-SCAN", TypeBodyScan, true},
		{"  focus  ", TypeFocus, true},
		{"loving-kindness", TypeLovingKindness, true},
		{"yoga", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseSessionType(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestSessionTypeDisplayName(t *testing.T) {
	assert.Equal(t, "Mindfulness", TypeMindfulness.DisplayName())
	assert.Equal(t, "Body Scan", TypeBodyScan.DisplayName())
	assert.Equal(t, "Metta", TypeLovingKindness.DisplayName())
}

func TestNewSession(t *testing.T) {
	date := time.Date(2026, 8, 1, 7, 0, 0, 0, time.Local)
	s := NewSession(date, 600, TypeBreathing)

	assert.Equal(t, date, s.Date)
	assert.Equal(t, 600, s.DurationSeconds)
	assert.Equal(t, TypeBreathing, s.Type)
	assert.True(t, s.Completed)
}

func TestSessionDurationMinutes(t *testing.T) {
	s := &Session{DurationSeconds: 90}
	assert.Equal(t, 1, s.DurationMinutes(), "truncates partial minutes")

	s.DurationSeconds = 59
	assert.Equal(t, 0, s.DurationMinutes())

	s.DurationSeconds = 600
	assert.Equal(t, 10, s.DurationMinutes())
}

func TestSessionHasTag(t *testing.T) {
	s := &Session{Tags: []string{"Morning", "deep"}}

	assert.True(t, s.HasTag("morning"))
	assert.True(t, s.HasTag("DEEP"))
	assert.False(t, s.HasTag("evening"))
	assert.False(t, s.HasTag(""))
}

func TestSessionMatches(t *testing.T) {
	s := &Session{
		Type:  TypeBodyScan,
		Notes: "Calm evening sit",
		Tags:  []string{"home"},
	}

	assert.True(t, s.Matches(""), "empty search matches everything")
	assert.True(t, s.Matches("body"))
	assert.True(t, s.Matches("evening"))
	assert.True(t, s.Matches("HOME"))
	assert.False(t, s.Matches("office"))
}

func TestParseSessionFilter(t *testing.T) {
	filter, sessionType, ok := ParseSessionFilter("today")
	require.True(t, ok)
	assert.Equal(t, FilterToday, filter)
	assert.Empty(t, sessionType)

	filter, sessionType, ok = ParseSessionFilter("breathing")
	require.True(t, ok)
	assert.Equal(t, FilterAll, filter)
	assert.Equal(t, TypeBreathing, sessionType)

	_, _, ok = ParseSessionFilter("fortnight")
	assert.False(t, ok)

	filter, _, ok = ParseSessionFilter("")
	require.True(t, ok)
	assert.Equal(t, FilterAll, filter)
}

func TestSessionKey(t *testing.T) {
	key := GenerateSessionKey("abc-123")
	assert.Equal(t, "session:abc-123", key)

	s := &Session{}
	s.SetKey(key)
	assert.Equal(t, key, s.GetKey())
}

// =============================================================================
// Profile Tests
// =============================================================================

func TestNewUserProfile(t *testing.T) {
	join := time.Date(2026, 1, 15, 0, 0, 0, 0, time.Local)
	p := NewUserProfile(join)

	assert.Equal(t, KeyProfile, p.Key)
	assert.Equal(t, join, p.JoinDate)
	assert.Equal(t, DefaultWeeklyGoalMinutes, p.WeeklyGoalMinutes)
	assert.Equal(t, DefaultPreferredDurationMinutes, p.PreferredDurationMinutes)
	assert.Equal(t, DefaultReminderTime, p.ReminderTime)
	assert.True(t, p.NotificationsEnabled)
}

func TestClampWeeklyGoal(t *testing.T) {
	assert.Equal(t, MinWeeklyGoalMinutes, ClampWeeklyGoal(0))
	assert.Equal(t, MinWeeklyGoalMinutes, ClampWeeklyGoal(49))
	assert.Equal(t, 150, ClampWeeklyGoal(150))
	assert.Equal(t, MaxWeeklyGoalMinutes, ClampWeeklyGoal(501))
	assert.Equal(t, MaxWeeklyGoalMinutes, ClampWeeklyGoal(10000))
}

func TestProfilePreferredTypes(t *testing.T) {
	p := NewUserProfile(time.Now())
	require.True(t, p.HasPreferredType(TypeMindfulness))

	p.AddPreferredType(TypeBreathing)
	assert.True(t, p.HasPreferredType(TypeBreathing))

	// Adding again does not duplicate
	p.AddPreferredType(TypeBreathing)
	assert.Len(t, p.PreferredTypes, 2)

	p.RemovePreferredType(TypeMindfulness)
	assert.False(t, p.HasPreferredType(TypeMindfulness))
	assert.Len(t, p.PreferredTypes, 1)
}

func TestDaysSinceJoin(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)

	p := NewUserProfile(now.AddDate(0, 0, -10))
	assert.Equal(t, 10, p.DaysSinceJoin(now))

	p = NewUserProfile(now.AddDate(0, 0, 5))
	assert.Equal(t, 0, p.DaysSinceJoin(now), "future join date clamps to zero")

	p = &UserProfile{}
	assert.Equal(t, 0, p.DaysSinceJoin(now))
}

// =============================================================================
// Milestone Tests
// =============================================================================

func TestParseMilestoneKind(t *testing.T) {
	kind, ok := ParseMilestoneKind("STREAK")
	require.True(t, ok)
	assert.Equal(t, KindStreak, kind)

	kind, ok = ParseMilestoneKind("total-minutes")
	require.True(t, ok)
	assert.Equal(t, KindTotalMinutes, kind)

	_, ok = ParseMilestoneKind("karma")
	assert.False(t, ok)
}

func TestMilestoneProgress(t *testing.T) {
	m := &Milestone{TargetValue: 100, CurrentValue: 25}
	assert.InDelta(t, 0.25, m.Progress(), 0.001)
	assert.Equal(t, "25/100", m.ProgressText())

	m.CurrentValue = 150
	assert.Equal(t, 1.0, m.Progress(), "progress clamps at 1")

	m.TargetValue = 0
	assert.Equal(t, 0.0, m.Progress(), "zero target yields zero progress")
}

func TestDefaultMilestones(t *testing.T) {
	defaults := DefaultMilestones()
	require.Len(t, defaults, 7)

	byTitle := make(map[string]*Milestone, len(defaults))
	for _, m := range defaults {
		byTitle[m.Title] = m
		assert.False(t, m.Completed)
		assert.Zero(t, m.CurrentValue)
	}

	assert.Equal(t, 1, byTitle["First Steps"].TargetValue)
	assert.Equal(t, KindTotalSessions, byTitle["First Steps"].Kind)
	assert.Equal(t, 7, byTitle["First Week"].TargetValue)
	assert.Equal(t, KindStreak, byTitle["First Week"].Kind)
	assert.Equal(t, 600, byTitle["Mindful Hours"].TargetValue)
	assert.Equal(t, 3000, byTitle["Meditation Master"].TargetValue)
	assert.Equal(t, KindTotalMinutes, byTitle["Meditation Master"].Kind)
	assert.Equal(t, 100, byTitle["Century Club"].TargetValue)
}
