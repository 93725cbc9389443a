package model

import (
	"fmt"
	"strings"
	"time"
)

// SessionType represents the kind of meditation practiced in a session.
type SessionType string

const (
	TypeMindfulness    SessionType = "mindfulness"
	TypeBreathing      SessionType = "breathing"
	TypeBodyScan       SessionType = "body-scan"
	TypeLovingKindness SessionType = "loving-kindness"
	TypeFocus          SessionType = "focus"
	TypeMovement       SessionType = "movement"
	TypeSleep          SessionType = "sleep"
	TypeCustom         SessionType = "custom"
)

// SessionTypes lists all valid session types.
var SessionTypes = []SessionType{
	TypeMindfulness,
	TypeBreathing,
	TypeBodyScan,
	TypeLovingKindness,
	TypeFocus,
	TypeMovement,
	TypeSleep,
	TypeCustom,
}

// ParseSessionType parses a session type string, case-insensitively.
func ParseSessionType(s string) (SessionType, bool) {
	normalized := SessionType(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range SessionTypes {
		if t == normalized {
			return t, true
		}
	}
	return "", false
}

// DisplayName returns a human-readable name for the session type.
func (t SessionType) DisplayName() string {
	switch t {
	case TypeMindfulness:
		return "Mindfulness"
	case TypeBreathing:
		return "Breathing"
	case TypeBodyScan:
		return "Body Scan"
	case TypeLovingKindness:
		return "Metta"
	case TypeFocus:
		return "Focus"
	case TypeMovement:
		return "Movement"
	case TypeSleep:
		return "Sleep"
	case TypeCustom:
		return "Custom"
	default:
		return string(t)
	}
}

// Session represents one completed meditation session.
// Sessions are immutable after creation except for notes and tags edits.
type Session struct {
	Key             string      `json:"key"`
	Date            time.Time   `json:"date" validate:"required"`
	DurationSeconds int         `json:"duration_seconds" validate:"gte=0"`
	Type            SessionType `json:"type" validate:"required"`
	Notes           string      `json:"notes,omitempty" validate:"max=4096"`
	Tags            []string    `json:"tags,omitempty"`
	Completed       bool        `json:"completed"`
	StartTime       time.Time   `json:"start_time,omitempty"`
	EndTime         time.Time   `json:"end_time,omitempty"`
	SequenceNumber  int         `json:"sequence_number,omitempty"`
}

// SetKey sets the database key for this session.
func (s *Session) SetKey(key string) {
	s.Key = key
}

// GetKey returns the database key for this session.
func (s *Session) GetKey() string {
	return s.Key
}

// GenerateSessionKey generates a database key for a session using UUID v7.
func GenerateSessionKey(uuid string) string {
	return fmt.Sprintf("%s:%s", PrefixSession, uuid)
}

// NewSession creates a new session with the given parameters.
func NewSession(date time.Time, durationSeconds int, sessionType SessionType) *Session {
	return &Session{
		Date:            date,
		DurationSeconds: durationSeconds,
		Type:            sessionType,
		Completed:       true,
	}
}

// DurationMinutes returns the session duration in whole minutes, truncated.
func (s *Session) DurationMinutes() int {
	return s.DurationSeconds / 60
}

// Duration returns the session duration.
func (s *Session) Duration() time.Duration {
	return time.Duration(s.DurationSeconds) * time.Second
}

// HasTag reports whether the session carries the given tag, case-insensitively.
func (s *Session) HasTag(tag string) bool {
	if tag == "" {
		return false
	}
	for _, t := range s.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Matches reports whether the session matches a free-text search over
// type name, notes, and tags.
func (s *Session) Matches(search string) bool {
	if search == "" {
		return true
	}
	search = strings.ToLower(search)
	if strings.Contains(strings.ToLower(s.Type.DisplayName()), search) {
		return true
	}
	if strings.Contains(strings.ToLower(string(s.Type)), search) {
		return true
	}
	if strings.Contains(strings.ToLower(s.Notes), search) {
		return true
	}
	for _, tag := range s.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

// SessionFilter selects a subset of sessions for listing.
type SessionFilter string

const (
	FilterAll       SessionFilter = "all"
	FilterToday     SessionFilter = "today"
	FilterThisWeek  SessionFilter = "week"
	FilterThisMonth SessionFilter = "month"
)

// ParseSessionFilter parses a filter argument. Unknown values are tried as
// session types, so "breathing" filters by type.
func ParseSessionFilter(s string) (SessionFilter, SessionType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, "", true
	case "today":
		return FilterToday, "", true
	case "week", "this-week":
		return FilterThisWeek, "", true
	case "month", "this-month":
		return FilterThisMonth, "", true
	}
	if t, ok := ParseSessionType(s); ok {
		return FilterAll, t, true
	}
	return "", "", false
}
