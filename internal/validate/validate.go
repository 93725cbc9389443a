// Package validate provides input validation helpers for the Mindful CLI.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/manav03panchal/mindful/internal/errors"
)

const (
	// MaxNoteLength is the maximum length for session notes.
	MaxNoteLength = 4096
	// MaxTagLength is the maximum length for a single tag.
	MaxTagLength = 64
	// MaxTags is the maximum number of tags per session.
	MaxTags = 16
	// MaxNameLength is the maximum length for a profile name.
	MaxNameLength = 128
	// MaxTitleLength is the maximum length for a milestone title.
	MaxTitleLength = 128
)

// reminderRegex validates "HH:MM" reminder times.
var reminderRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// emailRegex is a permissive address shape check.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Note validates session notes.
func Note(note string) error {
	if utf8.RuneCountInString(note) > MaxNoteLength {
		return errors.NewUserError(
			"Note too long",
			"Notes must be 4096 characters or fewer")
	}
	return nil
}

// Tags validates a tag list.
func Tags(tags []string) error {
	if len(tags) > MaxTags {
		return errors.NewUserError(
			"Too many tags",
			"Sessions can carry at most 16 tags")
	}
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return errors.NewUserError("Tags cannot be empty", "Remove the empty tag")
		}
		if utf8.RuneCountInString(tag) > MaxTagLength {
			return errors.NewUserErrorWithField("tag", tag,
				"Tag too long",
				"Tags must be 64 characters or fewer")
		}
	}
	return nil
}

// Name validates a profile name.
func Name(name string) error {
	if utf8.RuneCountInString(name) > MaxNameLength {
		return errors.NewUserError(
			"Name too long",
			"Names must be 128 characters or fewer")
	}
	return nil
}

// Email validates an email address. Empty is allowed.
func Email(email string) error {
	if email == "" {
		return nil
	}
	if !emailRegex.MatchString(email) {
		return errors.NewUserErrorWithField("email", email,
			"Invalid email address",
			"Use a form like 'you@example.com'")
	}
	return nil
}

// ReminderTime validates a "HH:MM" reminder time.
func ReminderTime(t string) error {
	if !reminderRegex.MatchString(t) {
		return errors.NewUserErrorWithField("reminder", t,
			"Invalid reminder time",
			"Use 24-hour 'HH:MM' form like '09:00'")
	}
	return nil
}

// MilestoneTitle validates a milestone title.
func MilestoneTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.NewUserError("Milestone title cannot be empty", "Provide a title")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return errors.NewUserError(
			"Milestone title too long",
			"Titles must be 128 characters or fewer")
	}
	return nil
}

// MilestoneTarget validates a milestone target value.
func MilestoneTarget(target int) error {
	if target <= 0 {
		return errors.NewUserError(
			"Milestone target must be positive",
			"Pick a target greater than zero")
	}
	return nil
}

// SplitTags splits a comma-separated tag flag into trimmed tags.
func SplitTags(flag string) []string {
	if strings.TrimSpace(flag) == "" {
		return nil
	}
	parts := strings.Split(flag, ",")
	var tags []string
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
