package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/manav03panchal/mindful/internal/errors"
)

// TimestampResult holds the parsed timestamp and any error.
type TimestampResult struct {
	Time  time.Time
	Error error
}

// ParseTimestamp parses a natural language timestamp expression such as
// "yesterday 9am", "2 days ago", or "2026-08-01 07:30".
func ParseTimestamp(input string) TimestampResult {
	return ParseTimestampAt(input, time.Now())
}

// ParseTimestampAt parses a timestamp expression relative to the given time.
func ParseTimestampAt(input string, now time.Time) TimestampResult {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "now") {
		return TimestampResult{Time: now}
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return TimestampResult{Error: errors.NewUserErrorWithField(
			"when", input,
			"could not parse timestamp",
			"Try expressions like 'yesterday 9am', '2 days ago', or '2026-08-01'")}
	}

	return TimestampResult{Time: result.Time}
}
