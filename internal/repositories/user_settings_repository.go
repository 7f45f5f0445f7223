package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"puppytime/internal/models"
)

type UserSettingsRepository interface {
	Get(ctx context.Context) (*models.UserSettings, error)
	Save(ctx context.Context, settings *models.UserSettings) error
}

type userSettingsRepository struct {
	db *gorm.DB
}

func NewUserSettingsRepository(db *gorm.DB) UserSettingsRepository {
	return &userSettingsRepository{db: db}
}

func (r *userSettingsRepository) Get(ctx context.Context) (*models.UserSettings, error) {
	var settings models.UserSettings
	if err := r.db.WithContext(ctx).First(&settings, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Nothing persisted yet: hand back the defaults
			return models.DefaultUserSettings(), nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *userSettingsRepository) Save(ctx context.Context, settings *models.UserSettings) error {
	// Ensure ID is set to 1 for single-row table
	settings.ID = 1
	return r.db.WithContext(ctx).Save(settings).Error
}
