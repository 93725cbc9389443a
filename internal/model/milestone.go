package model

import (
	"fmt"
	"strings"
	"time"
)

// MilestoneKind represents the statistic a milestone tracks.
type MilestoneKind string

const (
	KindStreak        MilestoneKind = "streak"
	KindTotalSessions MilestoneKind = "total-sessions"
	KindTotalMinutes  MilestoneKind = "total-minutes"
	KindWeeklyGoal    MilestoneKind = "weekly-goal"
	KindMonthlyGoal   MilestoneKind = "monthly-goal"
)

// MilestoneKinds lists all valid milestone kinds.
var MilestoneKinds = []MilestoneKind{
	KindStreak,
	KindTotalSessions,
	KindTotalMinutes,
	KindWeeklyGoal,
	KindMonthlyGoal,
}

// ParseMilestoneKind parses a milestone kind string, case-insensitively.
func ParseMilestoneKind(s string) (MilestoneKind, bool) {
	normalized := MilestoneKind(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range MilestoneKinds {
		if k == normalized {
			return k, true
		}
	}
	return "", false
}

// Milestone tracks a long-term achievement derived from aggregate statistics.
type Milestone struct {
	Key           string        `json:"key"`
	Title         string        `json:"title" validate:"required,max=128"`
	Details       string        `json:"details,omitempty" validate:"max=512"`
	TargetValue   int           `json:"target_value" validate:"required,gt=0"`
	CurrentValue  int           `json:"current_value"`
	Completed     bool          `json:"completed"`
	CompletedDate *time.Time    `json:"completed_date,omitempty"`
	Kind          MilestoneKind `json:"kind" validate:"required"`
}

// SetKey sets the database key for this milestone.
func (m *Milestone) SetKey(key string) {
	m.Key = key
}

// GetKey returns the database key for this milestone.
func (m *Milestone) GetKey() string {
	return m.Key
}

// GenerateMilestoneKey generates a database key for a milestone using UUID v7.
func GenerateMilestoneKey(uuid string) string {
	return fmt.Sprintf("%s:%s", PrefixMilestone, uuid)
}

// NewMilestone creates a new milestone with the given parameters.
func NewMilestone(title, details string, targetValue int, kind MilestoneKind) *Milestone {
	return &Milestone{
		Title:       title,
		Details:     details,
		TargetValue: targetValue,
		Kind:        kind,
	}
}

// Progress returns completion progress clamped to [0,1].
func (m *Milestone) Progress() float64 {
	if m.TargetValue <= 0 {
		return 0
	}
	progress := float64(m.CurrentValue) / float64(m.TargetValue)
	if progress > 1 {
		return 1
	}
	return progress
}

// ProgressText returns progress as "current/target".
func (m *Milestone) ProgressText() string {
	return fmt.Sprintf("%d/%d", m.CurrentValue, m.TargetValue)
}

// DefaultMilestones returns the default milestone catalog. The coordinator
// seeds these once when the store holds no milestones.
func DefaultMilestones() []*Milestone {
	return []*Milestone{
		NewMilestone("First Steps", "Complete your first meditation session", 1, KindTotalSessions),
		NewMilestone("First Week", "Complete 7 days in a row", 7, KindStreak),
		NewMilestone("Dedicated Practitioner", "Complete 25 meditation sessions", 25, KindTotalSessions),
		NewMilestone("Mindful Hours", "Meditate for 10 total hours", 600, KindTotalMinutes),
		NewMilestone("Consistent Meditator", "Reach a 30-day streak", 30, KindStreak),
		NewMilestone("Century Club", "Complete 100 meditation sessions", 100, KindTotalSessions),
		NewMilestone("Meditation Master", "Meditate for 50 total hours", 3000, KindTotalMinutes),
	}
}
