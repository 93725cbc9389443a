package model

import "time"

// Weekly goal bounds in minutes.
const (
	MinWeeklyGoalMinutes     = 50
	MaxWeeklyGoalMinutes     = 500
	DefaultWeeklyGoalMinutes = 150
)

// DefaultPreferredDurationMinutes is the default preferred session length.
const DefaultPreferredDurationMinutes = 10

// DefaultReminderTime is the default daily reminder time.
const DefaultReminderTime = "09:00"

// UserProfile holds per-installation user settings (singleton).
type UserProfile struct {
	Key                      string        `json:"key"`
	Name                     string        `json:"name,omitempty" validate:"max=128"`
	Email                    string        `json:"email,omitempty" validate:"max=254"`
	JoinDate                 time.Time     `json:"join_date"`
	WeeklyGoalMinutes        int           `json:"weekly_goal_minutes"`
	PreferredDurationMinutes int           `json:"preferred_duration_minutes"`
	PreferredTypes           []SessionType `json:"preferred_types,omitempty"`
	NotificationsEnabled     bool          `json:"notifications_enabled"`
	ReminderTime             string        `json:"reminder_time,omitempty"`
	StreakStartDate          *time.Time    `json:"streak_start_date,omitempty"`
}

// SetKey sets the database key for this profile.
func (p *UserProfile) SetKey(key string) {
	p.Key = key
}

// GetKey returns the database key for this profile.
func (p *UserProfile) GetKey() string {
	return p.Key
}

// NewUserProfile creates a profile with default settings.
func NewUserProfile(joinDate time.Time) *UserProfile {
	return &UserProfile{
		Key:                      KeyProfile,
		JoinDate:                 joinDate,
		WeeklyGoalMinutes:        DefaultWeeklyGoalMinutes,
		PreferredDurationMinutes: DefaultPreferredDurationMinutes,
		PreferredTypes:           []SessionType{TypeMindfulness},
		NotificationsEnabled:     true,
		ReminderTime:             DefaultReminderTime,
	}
}

// ClampWeeklyGoal clamps a weekly goal to the allowed range.
func ClampWeeklyGoal(minutes int) int {
	if minutes < MinWeeklyGoalMinutes {
		return MinWeeklyGoalMinutes
	}
	if minutes > MaxWeeklyGoalMinutes {
		return MaxWeeklyGoalMinutes
	}
	return minutes
}

// SetWeeklyGoal sets the weekly goal, clamped to the allowed range.
func (p *UserProfile) SetWeeklyGoal(minutes int) {
	p.WeeklyGoalMinutes = ClampWeeklyGoal(minutes)
}

// HasPreferredType reports whether the given type is among the preferred ones.
func (p *UserProfile) HasPreferredType(t SessionType) bool {
	for _, pt := range p.PreferredTypes {
		if pt == t {
			return true
		}
	}
	return false
}

// AddPreferredType adds a preferred session type if not already present.
func (p *UserProfile) AddPreferredType(t SessionType) {
	if !p.HasPreferredType(t) {
		p.PreferredTypes = append(p.PreferredTypes, t)
	}
}

// RemovePreferredType removes a preferred session type.
func (p *UserProfile) RemovePreferredType(t SessionType) {
	kept := p.PreferredTypes[:0]
	for _, pt := range p.PreferredTypes {
		if pt != t {
			kept = append(kept, pt)
		}
	}
	p.PreferredTypes = kept
}

// DaysSinceJoin returns the number of whole days since the join date.
func (p *UserProfile) DaysSinceJoin(now time.Time) int {
	if p.JoinDate.IsZero() {
		return 0
	}
	days := int(now.Sub(p.JoinDate).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
