package repository

import (
	"context"
	"errors"

	"devconnector/internal/cache"
	"devconnector/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository defines persistence operations for profiles and their
// experience/education entries.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	List(ctx context.Context) ([]*models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile, assignments map[string]interface{}) error
	DeleteWithUser(ctx context.Context, userID uint) error
	AddExperience(ctx context.Context, exp *models.Experience) error
	RemoveExperience(ctx context.Context, profileID, experienceID uint) error
	AddEducation(ctx context.Context, edu *models.Education) error
	RemoveEducation(ctx context.Context, profileID, educationID uint) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// withOwner joins the owning user so name/avatar come back as computed columns.
func (r *profileRepository) withOwner(db *gorm.DB) *gorm.DB {
	return db.
		Select("profiles.*, users.name AS owner_name, users.avatar AS owner_avatar").
		Joins("LEFT JOIN users ON users.id = profiles.user_id").
		Preload("Experiences", func(db *gorm.DB) *gorm.DB {
			return db.Order("id DESC")
		}).
		Preload("Education", func(db *gorm.DB) *gorm.DB {
			return db.Order("id DESC")
		})
}

// GetByUserID returns the profile owned by userID, or (nil, nil) when none exists.
func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.withOwner(r.db.WithContext(ctx)).
		Where("profiles.user_id = ?", userID).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]*models.Profile, error) {
	profiles := []*models.Profile{}
	if err := r.withOwner(r.db.WithContext(ctx)).
		Order("profiles.created_at DESC, profiles.id DESC").
		Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

// Upsert inserts the profile, or applies assignments to the existing row for
// the same user. The unique index on user_id plus ON CONFLICT makes this
// atomic under concurrent upserts: at most one profile per user, always.
func (r *profileRepository) Upsert(ctx context.Context, profile *models.Profile, assignments map[string]interface{}) error {
	if err := r.db.WithContext(ctx).
		Omit("Experiences", "Education").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(assignments),
		}).
		Create(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteWithUser removes the caller's profile (with its entries) and the user
// record in one transaction. Posts are intentionally left in place; their
// denormalized name/avatar keeps them renderable.
func (r *profileRepository) DeleteWithUser(ctx context.Context, userID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		err := tx.Where("user_id = ?", userID).First(&profile).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil {
			if err := tx.Where("profile_id = ?", profile.ID).Delete(&models.Experience{}).Error; err != nil {
				return err
			}
			if err := tx.Where("profile_id = ?", profile.ID).Delete(&models.Education{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.Profile{}, profile.ID).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.User{}, userID).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, userID)
	return nil
}

func (r *profileRepository) AddExperience(ctx context.Context, exp *models.Experience) error {
	if err := r.db.WithContext(ctx).Create(exp).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// RemoveExperience deletes the matching entry. An unknown id is a no-op, not
// an error.
func (r *profileRepository) RemoveExperience(ctx context.Context, profileID, experienceID uint) error {
	if err := r.db.WithContext(ctx).
		Where("profile_id = ? AND id = ?", profileID, experienceID).
		Delete(&models.Experience{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) AddEducation(ctx context.Context, edu *models.Education) error {
	if err := r.db.WithContext(ctx).Create(edu).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// RemoveEducation mirrors RemoveExperience, including the silent no-op.
func (r *profileRepository) RemoveEducation(ctx context.Context, profileID, educationID uint) error {
	if err := r.db.WithContext(ctx).
		Where("profile_id = ? AND id = ?", profileID, educationID).
		Delete(&models.Education{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
