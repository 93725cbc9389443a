package progress

import (
	"sort"
	"time"

	"github.com/manav03panchal/mindful/internal/model"
)

// Streak derives consecutive-day practice streaks from a session snapshot.
type Streak struct {
	sessions []*model.Session
	now      time.Time
}

// NewStreak creates a streak calculator over the given snapshot.
func NewStreak(sessions []*model.Session, now time.Time) *Streak {
	return &Streak{sessions: sessions, now: now}
}

// practiceDays returns the set of calendar days containing at least one session.
func (s *Streak) practiceDays() map[time.Time]bool {
	days := make(map[time.Time]bool, len(s.sessions))
	for _, session := range s.sessions {
		days[StartOfDay(session.Date)] = true
	}
	return days
}

// CurrentStreak walks backward day-by-day from today, counting while each day
// has at least one session. Today is allowed to be unpracticed without
// breaking the streak: the walk skips it once and continues from yesterday.
func (s *Streak) CurrentStreak() int {
	if len(s.sessions) == 0 {
		return 0
	}

	days := s.practiceDays()
	today := StartOfDay(s.now)

	streak := 0
	current := today
	for {
		if days[current] {
			streak++
			current = current.AddDate(0, 0, -1)
			continue
		}
		// One-time allowance: a day not yet practiced keeps the streak
		// intact, but only for today itself.
		if streak == 0 && current.Equal(today) {
			current = current.AddDate(0, 0, -1)
			continue
		}
		break
	}

	return streak
}

// LongestStreak scans distinct practice days in ascending order and tracks
// the longest run of consecutive days. Same-day repeats do not advance the
// counter; a gap of more than one day resets it.
func (s *Streak) LongestStreak() int {
	if len(s.sessions) == 0 {
		return 0
	}

	days := s.practiceDays()
	sorted := make([]time.Time, 0, len(days))
	for day := range days {
		sorted = append(sorted, day)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	maxStreak := 0
	run := 0
	var last time.Time
	for _, day := range sorted {
		if run > 0 && day.Equal(last.AddDate(0, 0, 1)) {
			run++
		} else {
			if run > maxStreak {
				maxStreak = run
			}
			run = 1
		}
		last = day
	}
	if run > maxStreak {
		maxStreak = run
	}
	return maxStreak
}

// IsStreakActive reports whether the streak is not yet lost: there is a
// session today, or a session yesterday leaving today still open.
func (s *Streak) IsStreakActive() bool {
	days := s.practiceDays()
	today := StartOfDay(s.now)
	return days[today] || days[today.AddDate(0, 0, -1)]
}

// DaysUntilStreakBreaks returns nil if today already has a session, 1 if the
// streak is active but today is unpracticed, and 0 if the streak is broken.
func (s *Streak) DaysUntilStreakBreaks() *int {
	days := s.practiceDays()
	today := StartOfDay(s.now)

	if days[today] {
		return nil
	}
	result := 0
	if days[today.AddDate(0, 0, -1)] {
		result = 1
	}
	return &result
}

// DayPractice is one day in the streak history series.
type DayPractice struct {
	Date       time.Time `json:"date"`
	HasSession bool      `json:"has_session"`
}

// History returns a per-day has-session series from the earliest session
// through today. Empty snapshot yields an empty history.
func (s *Streak) History() []DayPractice {
	if len(s.sessions) == 0 {
		return nil
	}

	days := s.practiceDays()
	earliest := StartOfDay(s.sessions[0].Date)
	for _, session := range s.sessions[1:] {
		day := StartOfDay(session.Date)
		if day.Before(earliest) {
			earliest = day
		}
	}

	today := StartOfDay(s.now)
	var history []DayPractice
	for day := earliest; !day.After(today); day = day.AddDate(0, 0, 1) {
		history = append(history, DayPractice{Date: day, HasSession: days[day]})
	}
	return history
}
