package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/mindful/internal/model"
)

// daysAgo builds a 10-minute session n days before the reference time.
func daysAgo(now time.Time, n int) *model.Session {
	return model.NewSession(now.AddDate(0, 0, -n), 600, model.TypeMindfulness)
}

// =============================================================================
// CurrentStreak Tests
// =============================================================================

func TestCurrentStreakEmpty(t *testing.T) {
	s := NewStreak(nil, refNow)
	assert.Equal(t, 0, s.CurrentStreak())
}

func TestCurrentStreakTodayOnly(t *testing.T) {
	s := NewStreak([]*model.Session{daysAgo(refNow, 0)}, refNow)
	assert.Equal(t, 1, s.CurrentStreak())
}

func TestCurrentStreakRunWithGap(t *testing.T) {
	// Sessions today, yesterday, and two days ago; gap at three days ago.
	sessions := []*model.Session{
		daysAgo(refNow, 0),
		daysAgo(refNow, 1),
		daysAgo(refNow, 2),
		daysAgo(refNow, 5),
	}
	s := NewStreak(sessions, refNow)
	assert.Equal(t, 3, s.CurrentStreak())
}

func TestCurrentStreakTodayOpen(t *testing.T) {
	// No session today yet; yesterday and the day before practiced.
	sessions := []*model.Session{
		daysAgo(refNow, 1),
		daysAgo(refNow, 2),
	}
	s := NewStreak(sessions, refNow)
	assert.Equal(t, 2, s.CurrentStreak(), "today unpracticed does not break the streak")
}

func TestCurrentStreakBroken(t *testing.T) {
	// Last session two days ago: the allowance covers only today.
	sessions := []*model.Session{
		daysAgo(refNow, 2),
		daysAgo(refNow, 3),
	}
	s := NewStreak(sessions, refNow)
	assert.Equal(t, 0, s.CurrentStreak())
}

func TestCurrentStreakMultipleSessionsSameDay(t *testing.T) {
	sessions := []*model.Session{
		daysAgo(refNow, 0),
		daysAgo(refNow, 0),
		daysAgo(refNow, 1),
	}
	s := NewStreak(sessions, refNow)
	assert.Equal(t, 2, s.CurrentStreak(), "same-day repeats count once")
}

// =============================================================================
// LongestStreak Tests
// =============================================================================

func TestLongestStreakEmpty(t *testing.T) {
	s := NewStreak(nil, refNow)
	assert.Equal(t, 0, s.LongestStreak())
}

func TestLongestStreakPicksLongestRun(t *testing.T) {
	// Run of 2 ending yesterday; older run of 4.
	sessions := []*model.Session{
		daysAgo(refNow, 1),
		daysAgo(refNow, 2),
		daysAgo(refNow, 10),
		daysAgo(refNow, 11),
		daysAgo(refNow, 12),
		daysAgo(refNow, 13),
	}
	s := NewStreak(sessions, refNow)
	assert.Equal(t, 4, s.LongestStreak())
}

func TestLongestStreakSameDayNoAdvance(t *testing.T) {
	sessions := []*model.Session{
		daysAgo(refNow, 3),
		daysAgo(refNow, 3),
		daysAgo(refNow, 3),
	}
	s := NewStreak(sessions, refNow)
	assert.Equal(t, 1, s.LongestStreak())
}

func TestLongestStreakAtLeastCurrent(t *testing.T) {
	sessions := []*model.Session{
		daysAgo(refNow, 0),
		daysAgo(refNow, 1),
		daysAgo(refNow, 2),
	}
	s := NewStreak(sessions, refNow)
	assert.GreaterOrEqual(t, s.LongestStreak(), s.CurrentStreak())
	assert.Equal(t, 3, s.LongestStreak())
}

// =============================================================================
// Streak Status Tests
// =============================================================================

func TestIsStreakActive(t *testing.T) {
	assert.False(t, NewStreak(nil, refNow).IsStreakActive())

	today := NewStreak([]*model.Session{daysAgo(refNow, 0)}, refNow)
	assert.True(t, today.IsStreakActive())

	yesterday := NewStreak([]*model.Session{daysAgo(refNow, 1)}, refNow)
	assert.True(t, yesterday.IsStreakActive(), "today still open")

	stale := NewStreak([]*model.Session{daysAgo(refNow, 2)}, refNow)
	assert.False(t, stale.IsStreakActive())
}

func TestDaysUntilStreakBreaks(t *testing.T) {
	today := NewStreak([]*model.Session{daysAgo(refNow, 0)}, refNow)
	assert.Nil(t, today.DaysUntilStreakBreaks(), "practiced today")

	yesterday := NewStreak([]*model.Session{daysAgo(refNow, 1)}, refNow)
	days := yesterday.DaysUntilStreakBreaks()
	require.NotNil(t, days)
	assert.Equal(t, 1, *days)

	broken := NewStreak([]*model.Session{daysAgo(refNow, 3)}, refNow)
	days = broken.DaysUntilStreakBreaks()
	require.NotNil(t, days)
	assert.Equal(t, 0, *days)
}

// =============================================================================
// History Tests
// =============================================================================

func TestHistory(t *testing.T) {
	assert.Nil(t, NewStreak(nil, refNow).History())

	sessions := []*model.Session{
		daysAgo(refNow, 0),
		daysAgo(refNow, 3),
	}
	history := NewStreak(sessions, refNow).History()
	require.Len(t, history, 4, "from earliest day through today")

	assert.Equal(t, StartOfDay(refNow.AddDate(0, 0, -3)), history[0].Date)
	assert.True(t, history[0].HasSession)
	assert.False(t, history[1].HasSession)
	assert.False(t, history[2].HasSession)
	assert.True(t, history[3].HasSession)
}
