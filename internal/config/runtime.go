// Package config provides centralized configuration for Mindful runtime values.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// RuntimeConfig holds all runtime configuration values.
type RuntimeConfig struct {
	// Timer configuration
	Timer TimerConfig

	// Calendar configuration
	Calendar CalendarConfig

	// Dashboard configuration
	Dashboard DashboardConfig
}

// TimerConfig holds session timer configuration.
type TimerConfig struct {
	// TickInterval is the countdown tick period.
	// Default: 1s
	TickInterval time.Duration
}

// CalendarConfig holds date-bucketing configuration.
type CalendarConfig struct {
	// WeekStart is the first day of the calendar week used for weekly
	// progress and charts.
	// Default: Monday
	WeekStart time.Weekday
}

// DashboardConfig holds live dashboard configuration.
type DashboardConfig struct {
	// RefreshInterval is how often the dashboard reloads data.
	// Default: 1s
	RefreshInterval time.Duration

	// MaxRecentSessions is the number of recent sessions shown.
	// Default: 5
	MaxRecentSessions int
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Timer: TimerConfig{
			TickInterval: time.Second,
		},
		Calendar: CalendarConfig{
			WeekStart: time.Monday,
		},
		Dashboard: DashboardConfig{
			RefreshInterval: time.Second,
			MaxRecentSessions: 5,
		},
	}
}

// Global holds the global runtime configuration instance.
// It is initialized with defaults and can be overridden via environment variables.
var Global = initGlobal()

// initGlobal initializes the global config with defaults and environment overrides.
func initGlobal() *RuntimeConfig {
	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()
	return cfg
}

// loadFromEnv loads configuration overrides from environment variables.
func (c *RuntimeConfig) loadFromEnv() {
	if v := os.Getenv("MINDFUL_TICK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Timer.TickInterval = d
		}
	}
	if v := os.Getenv("MINDFUL_WEEK_START"); v != "" {
		if wd, ok := parseWeekday(v); ok {
			c.Calendar.WeekStart = wd
		}
	}
	if v := os.Getenv("MINDFUL_DASHBOARD_REFRESH"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Dashboard.RefreshInterval = d
		}
	}
	if v := os.Getenv("MINDFUL_DASHBOARD_RECENT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Dashboard.MaxRecentSessions = n
		}
	}
}

// parseWeekday parses a weekday name like "monday" or "sun".
func parseWeekday(s string) (time.Weekday, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sunday", "sun":
		return time.Sunday, true
	case "monday", "mon":
		return time.Monday, true
	case "tuesday", "tue":
		return time.Tuesday, true
	case "wednesday", "wed":
		return time.Wednesday, true
	case "thursday", "thu":
		return time.Thursday, true
	case "friday", "fri":
		return time.Friday, true
	case "saturday", "sat":
		return time.Saturday, true
	}
	return time.Sunday, false
}

// ReloadFromEnv reloads configuration from environment variables.
// This is useful for testing or when environment variables change.
func (c *RuntimeConfig) ReloadFromEnv() {
	c.loadFromEnv()
}

// Reset resets the configuration to defaults.
// This is primarily useful for testing.
func (c *RuntimeConfig) Reset() {
	defaults := DefaultRuntimeConfig()
	*c = *defaults
}
