package storage

import (
	"time"

	"github.com/manav03panchal/mindful/internal/model"
)

// ProfileRepo provides operations for the UserProfile singleton.
type ProfileRepo struct {
	db *DB
}

// NewProfileRepo creates a new profile repository.
func NewProfileRepo(db *DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// Get retrieves the profile, creating it with defaults if it doesn't exist.
func (r *ProfileRepo) Get() (*model.UserProfile, error) {
	profile := &model.UserProfile{}
	err := r.db.Get(model.KeyProfile, profile)
	if err == nil {
		return profile, nil
	}

	if !IsErrKeyNotFound(err) {
		return nil, err
	}

	// First run: create a default profile
	profile = model.NewUserProfile(time.Now())
	if err := r.db.Set(profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// Update updates the profile.
func (r *ProfileRepo) Update(profile *model.UserProfile) error {
	return r.db.Set(profile)
}
