package storage

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/manav03panchal/mindful/internal/model"
)

// SessionRepo provides operations for Session entities.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session with a generated key.
func (r *SessionRepo) Create(session *model.Session) error {
	// Generate UUID v7 for time-sortable keys
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	session.Key = model.GenerateSessionKey(id.String())
	return r.db.Set(session)
}

// Get retrieves a session by key.
func (r *SessionRepo) Get(key string) (*model.Session, error) {
	session := &model.Session{}
	if err := r.db.Get(key, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Update updates an existing session.
func (r *SessionRepo) Update(session *model.Session) error {
	return r.db.Set(session)
}

// Delete removes a session by key.
func (r *SessionRepo) Delete(key string) error {
	return r.db.Delete(key)
}

// List retrieves all sessions sorted by date, newest first.
func (r *SessionRepo) List() ([]*model.Session, error) {
	sessions, err := GetAllByPrefix(r.db, model.PrefixSession+":", func() *model.Session {
		return &model.Session{}
	})
	if err != nil {
		return nil, err
	}
	SortByDateDescending(sessions)
	return sessions, nil
}

// ListByDateRange retrieves sessions with date in [start, end).
func (r *SessionRepo) ListByDateRange(start, end time.Time) ([]*model.Session, error) {
	return GetFilteredByPrefix(r.db, model.PrefixSession+":", func() *model.Session {
		return &model.Session{}
	}, func(s *model.Session) bool {
		return !s.Date.Before(start) && s.Date.Before(end)
	})
}

// ListByType retrieves sessions of a specific type.
func (r *SessionRepo) ListByType(sessionType model.SessionType) ([]*model.Session, error) {
	return GetFilteredByPrefix(r.db, model.PrefixSession+":", func() *model.Session {
		return &model.Session{}
	}, func(s *model.Session) bool {
		return s.Type == sessionType
	})
}

// SortByDateDescending sorts sessions by date, newest first.
func SortByDateDescending(sessions []*model.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Date.After(sessions[j].Date)
	})
}
