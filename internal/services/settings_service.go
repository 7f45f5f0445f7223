package services

import (
	"context"
	"errors"
	"log"
	"time"

	"puppytime/internal/models"
	"puppytime/internal/repositories"
)

// SettingsPatch carries a partial settings update; nil fields keep their
// current value.
type SettingsPatch struct {
	DisplayName  *string `json:"displayName,omitempty"`
	Theme        *string `json:"theme,omitempty"`
	AutoSave     *bool   `json:"autoSave,omitempty"`
	ImageQuality *string `json:"imageQuality,omitempty"`
}

type SettingsService interface {
	Get(ctx context.Context) *models.UserSettings
	Update(ctx context.Context, patch SettingsPatch) (*models.UserSettings, error)
	Startup(ctx context.Context)
}

type settingsService struct {
	settings repositories.UserSettingsRepository
	context  context.Context
}

func NewSettingsService(settings repositories.UserSettingsRepository) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Startup(ctx context.Context) {
	s.context = ctx
}

// Get never fails: a missing or unreadable row falls back to the defaults.
func (s *settingsService) Get(ctx context.Context) *models.UserSettings {
	current, err := s.settings.Get(ctx)
	if err != nil {
		log.Printf("Error loading user settings: %v", err)
		return models.DefaultUserSettings()
	}
	return current
}

// Update merges the patch over the current settings, validates, and persists
// the full row. A failed write is logged and the merged value still returned;
// the next launch simply sees the previous settings.
func (s *settingsService) Update(ctx context.Context, patch SettingsPatch) (*models.UserSettings, error) {
	current := s.Get(ctx)

	if patch.DisplayName != nil {
		current.DisplayName = *patch.DisplayName
	}
	if patch.Theme != nil {
		if !validTheme(*patch.Theme) {
			return nil, errors.New("theme must be 'light', 'dark', or 'system'")
		}
		current.Theme = *patch.Theme
	}
	if patch.AutoSave != nil {
		current.AutoSave = *patch.AutoSave
	}
	if patch.ImageQuality != nil {
		if !validQuality(*patch.ImageQuality) {
			return nil, errors.New("imageQuality must be 'standard' or 'high'")
		}
		current.ImageQuality = *patch.ImageQuality
	}

	current.UpdatedAt = time.Now()

	if err := s.settings.Save(ctx, current); err != nil {
		log.Printf("Error saving user settings: %v", err)
	}

	return current, nil
}

func validTheme(theme string) bool {
	return theme == models.ThemeLight || theme == models.ThemeDark || theme == models.ThemeSystem
}

func validQuality(quality string) bool {
	return quality == models.QualityStandard || quality == models.QualityHigh
}
