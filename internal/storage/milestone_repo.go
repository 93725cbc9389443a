package storage

import (
	"sort"

	"github.com/google/uuid"

	"github.com/manav03panchal/mindful/internal/model"
)

// MilestoneRepo provides operations for Milestone entities.
type MilestoneRepo struct {
	db *DB
}

// NewMilestoneRepo creates a new milestone repository.
func NewMilestoneRepo(db *DB) *MilestoneRepo {
	return &MilestoneRepo{db: db}
}

// Create creates a new milestone with a generated key.
func (r *MilestoneRepo) Create(milestone *model.Milestone) error {
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	milestone.Key = model.GenerateMilestoneKey(id.String())
	return r.db.Set(milestone)
}

// Get retrieves a milestone by key.
func (r *MilestoneRepo) Get(key string) (*model.Milestone, error) {
	milestone := &model.Milestone{}
	if err := r.db.Get(key, milestone); err != nil {
		return nil, err
	}
	return milestone, nil
}

// Update updates an existing milestone.
func (r *MilestoneRepo) Update(milestone *model.Milestone) error {
	return r.db.Set(milestone)
}

// Delete removes a milestone by key.
func (r *MilestoneRepo) Delete(key string) error {
	return r.db.Delete(key)
}

// List retrieves all milestones sorted by target value ascending.
func (r *MilestoneRepo) List() ([]*model.Milestone, error) {
	milestones, err := GetAllByPrefix(r.db, model.PrefixMilestone+":", func() *model.Milestone {
		return &model.Milestone{}
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(milestones, func(i, j int) bool {
		return milestones[i].TargetValue < milestones[j].TargetValue
	})
	return milestones, nil
}

// SeedDefaults inserts the default milestone catalog if the store is empty.
// Returns the full catalog and whether seeding happened.
func (r *MilestoneRepo) SeedDefaults() ([]*model.Milestone, bool, error) {
	existing, err := r.List()
	if err != nil {
		return nil, false, err
	}
	if len(existing) > 0 {
		return existing, false, nil
	}

	defaults := model.DefaultMilestones()
	for _, m := range defaults {
		if err := r.Create(m); err != nil {
			return nil, false, err
		}
	}
	return defaults, true, nil
}
