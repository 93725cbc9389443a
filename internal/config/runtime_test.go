package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Default Tests
// =============================================================================

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	assert.Equal(t, time.Second, cfg.Timer.TickInterval)
	assert.Equal(t, time.Monday, cfg.Calendar.WeekStart)
	assert.Equal(t, time.Second, cfg.Dashboard.RefreshInterval)
	assert.Equal(t, 5, cfg.Dashboard.MaxRecentSessions)
}

// =============================================================================
// Environment Override Tests
// =============================================================================

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MINDFUL_TICK_INTERVAL", "100ms")
	t.Setenv("MINDFUL_WEEK_START", "sunday")
	t.Setenv("MINDFUL_DASHBOARD_REFRESH", "5s")
	t.Setenv("MINDFUL_DASHBOARD_RECENT", "10")

	cfg := DefaultRuntimeConfig()
	cfg.ReloadFromEnv()

	assert.Equal(t, 100*time.Millisecond, cfg.Timer.TickInterval)
	assert.Equal(t, time.Sunday, cfg.Calendar.WeekStart)
	assert.Equal(t, 5*time.Second, cfg.Dashboard.RefreshInterval)
	assert.Equal(t, 10, cfg.Dashboard.MaxRecentSessions)
}

func TestEnvOverridesIgnoreInvalid(t *testing.T) {
	t.Setenv("MINDFUL_TICK_INTERVAL", "not-a-duration")
	t.Setenv("MINDFUL_WEEK_START", "someday")
	t.Setenv("MINDFUL_DASHBOARD_RECENT", "-1")

	cfg := DefaultRuntimeConfig()
	cfg.ReloadFromEnv()

	assert.Equal(t, time.Second, cfg.Timer.TickInterval)
	assert.Equal(t, time.Monday, cfg.Calendar.WeekStart)
	assert.Equal(t, 5, cfg.Dashboard.MaxRecentSessions)
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Weekday
		ok       bool
	}{
		{"monday", time.Monday, true},
		{"MON", time.Monday, true},
		{"  sun  ", time.Sunday, true},
		{"wednesday", time.Wednesday, true},
		{"fri", time.Friday, true},
		{"humpday", time.Sunday, false},
		{"", time.Sunday, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			wd, ok := parseWeekday(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, wd)
			}
		})
	}
}

func TestReset(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	cfg.Calendar.WeekStart = time.Saturday
	cfg.Dashboard.MaxRecentSessions = 42

	cfg.Reset()
	assert.Equal(t, time.Monday, cfg.Calendar.WeekStart)
	assert.Equal(t, 5, cfg.Dashboard.MaxRecentSessions)
}
