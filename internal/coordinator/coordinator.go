// Package coordinator is the composition root of Mindful's core. It owns the
// stores, the in-memory session cache, and the milestone engine, and exposes
// the read/write facade the CLI layer consumes.
package coordinator

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/manav03panchal/mindful/internal/config"
	"github.com/manav03panchal/mindful/internal/errors"
	"github.com/manav03panchal/mindful/internal/logging"
	"github.com/manav03panchal/mindful/internal/milestone"
	"github.com/manav03panchal/mindful/internal/model"
	"github.com/manav03panchal/mindful/internal/progress"
	"github.com/manav03panchal/mindful/internal/storage"
)

// Coordinator mediates between storage, the calculators, and the milestone
// engine. All mutations recompute statistics and push them into the engine;
// storage failures are logged and the in-memory state stays authoritative.
type Coordinator struct {
	mu sync.Mutex

	sessionRepo   *storage.SessionRepo
	profileRepo   *storage.ProfileRepo
	milestoneRepo *storage.MilestoneRepo

	engine  *milestone.Engine
	profile *model.UserProfile

	// sessions is the cached log, ordered by date descending.
	sessions []*model.Session

	weekStart time.Weekday
	now       func() time.Time
}

// New creates a coordinator over the given database. The profile and the
// default milestone catalog are seeded on first use.
func New(db *storage.DB) *Coordinator {
	c := &Coordinator{
		sessionRepo:   storage.NewSessionRepo(db),
		profileRepo:   storage.NewProfileRepo(db),
		milestoneRepo: storage.NewMilestoneRepo(db),
		weekStart:     config.Global.Calendar.WeekStart,
		now:           time.Now,
	}

	sessions, err := c.sessionRepo.List()
	if err != nil {
		c.warn(errors.NewStorageError("load_sessions", err))
	}
	c.sessions = sessions

	profile, err := c.profileRepo.Get()
	if err != nil {
		c.warn(errors.NewStorageError("load_profile", err))
		profile = model.NewUserProfile(c.now())
	}
	c.profile = profile

	catalog, seeded, err := c.milestoneRepo.SeedDefaults()
	if err != nil {
		c.warn(errors.NewStorageError("load_milestones", err))
		catalog = model.DefaultMilestones()
	}
	if seeded {
		logging.Info("seeded default milestones", logging.KeyCount, len(catalog))
	}
	c.engine = milestone.NewEngine(catalog)

	c.mu.Lock()
	c.recompute()
	c.mu.Unlock()

	return c
}

// SetClock overrides the coordinator's clock, for tests.
func (c *Coordinator) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
	c.engine.SetClock(now)
}

// SetCompletionHook sets the milestone completion callback.
func (c *Coordinator) SetCompletionHook(hook milestone.CompletionHook) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engine.SetCompletionHook(hook)
}

// AddSession appends a session record to the log and returns any milestones
// its statistics newly completed.
func (c *Coordinator) AddSession(session *model.Session) []*model.Milestone {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.sessionRepo.Create(session); err != nil {
		c.warn(errors.NewStorageError("insert_session", err))
		if session.Key == "" {
			session.Key = model.GenerateSessionKey(uuid.New().String())
		}
	}

	c.sessions = append(c.sessions, session)
	storage.SortByDateDescending(c.sessions)

	return c.recompute()
}

// EditSession updates the notes and/or tags of an existing session. Session
// records are otherwise immutable. A nil field leaves the current value.
func (c *Coordinator) EditSession(key string, notes *string, tags *[]string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	session := c.findSession(key)
	if session == nil {
		return errors.ErrSessionNotFound
	}

	if notes != nil {
		session.Notes = *notes
	}
	if tags != nil {
		session.Tags = *tags
	}

	if err := c.sessionRepo.Update(session); err != nil {
		c.warn(errors.NewStorageError("update_session", err))
	}

	c.recompute()
	return nil
}

// DeleteSession removes a session record by key.
func (c *Coordinator) DeleteSession(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	session := c.findSession(key)
	if session == nil {
		return errors.ErrSessionNotFound
	}

	if err := c.sessionRepo.Delete(key); err != nil {
		c.warn(errors.NewStorageError("delete_session", err))
	}

	kept := c.sessions[:0]
	for _, s := range c.sessions {
		if s.Key != key {
			kept = append(kept, s)
		}
	}
	c.sessions = kept

	c.recompute()
	return nil
}

// ProfileUpdate carries optional profile field changes; nil fields are left
// unchanged. The weekly goal is clamped to its allowed range.
type ProfileUpdate struct {
	Name                     *string
	Email                    *string
	WeeklyGoalMinutes        *int
	PreferredDurationMinutes *int
	PreferredTypes           *[]model.SessionType
	NotificationsEnabled     *bool
	ReminderTime             *string
}

// UpdateUserProfile applies the given profile changes. Milestone progress is
// refreshed when the weekly goal changed, since weekly-goal milestones track it.
func (c *Coordinator) UpdateUserProfile(update ProfileUpdate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if update.Name != nil {
		c.profile.Name = *update.Name
	}
	if update.Email != nil {
		c.profile.Email = *update.Email
	}
	if update.WeeklyGoalMinutes != nil {
		c.profile.SetWeeklyGoal(*update.WeeklyGoalMinutes)
	}
	if update.PreferredDurationMinutes != nil {
		c.profile.PreferredDurationMinutes = *update.PreferredDurationMinutes
	}
	if update.PreferredTypes != nil {
		c.profile.PreferredTypes = *update.PreferredTypes
	}
	if update.NotificationsEnabled != nil {
		c.profile.NotificationsEnabled = *update.NotificationsEnabled
	}
	if update.ReminderTime != nil {
		c.profile.ReminderTime = *update.ReminderTime
	}

	if err := c.profileRepo.Update(c.profile); err != nil {
		c.warn(errors.NewStorageError("update_profile", err))
	}

	if update.WeeklyGoalMinutes != nil {
		c.recompute()
	}
}

// AddMilestone adds a custom milestone to the catalog.
func (c *Coordinator) AddMilestone(m *model.Milestone) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.milestoneRepo.Create(m); err != nil {
		c.warn(errors.NewStorageError("insert_milestone", err))
		if m.Key == "" {
			m.Key = model.GenerateMilestoneKey(uuid.New().String())
		}
	}
	c.engine.Add(m)
	c.recompute()
}

// DeleteMilestone removes a milestone by key.
func (c *Coordinator) DeleteMilestone(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.engine.Remove(key) {
		return errors.ErrMilestoneNotFound
	}
	if err := c.milestoneRepo.Delete(key); err != nil {
		c.warn(errors.NewStorageError("delete_milestone", err))
	}
	return nil
}

// recompute rebuilds statistics from the session cache, pushes them into the
// milestone engine, and persists milestones whose state changed. Returns any
// newly completed milestones. Callers hold the mutex.
func (c *Coordinator) recompute() []*model.Milestone {
	calc := progress.NewCalculator(c.sessions, c.now(), c.weekStart)
	streak := progress.NewStreak(c.sessions, c.now())

	type snapshot struct {
		value     int
		completed bool
	}
	before := make(map[string]snapshot, len(c.engine.Milestones()))
	for _, m := range c.engine.Milestones() {
		before[m.Key] = snapshot{m.CurrentValue, m.Completed}
	}

	completed := c.engine.UpdateProgress(milestone.Stats{
		TotalSessions:  calc.TotalSessions(),
		TotalMinutes:   calc.TotalMinutes(),
		CurrentStreak:  streak.CurrentStreak(),
		LongestStreak:  streak.LongestStreak(),
		WeeklyMinutes:  calc.WeeklyProgress(c.profile.WeeklyGoalMinutes).CompletedMinutes,
		MonthlyMinutes: calc.MonthlyMinutes(),
	})

	for _, m := range c.engine.Milestones() {
		prev := before[m.Key]
		if prev.value != m.CurrentValue || prev.completed != m.Completed {
			if err := c.milestoneRepo.Update(m); err != nil {
				c.warn(errors.NewStorageError("update_milestone", err))
			}
		}
	}

	return completed
}

// findSession returns the cached session with the given key, or nil.
// Callers hold the mutex.
func (c *Coordinator) findSession(key string) *model.Session {
	for _, s := range c.sessions {
		if s.Key == key {
			return s
		}
	}
	return nil
}

// warn logs a storage failure. The in-memory state stays authoritative, so
// the operation proceeds as a no-op at the persistence layer.
func (c *Coordinator) warn(err error) {
	logging.Warn("storage failure, keeping in-memory state", logging.KeyError, err)
}
