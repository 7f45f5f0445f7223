package mocks

import (
	"context"

	"puppytime/internal/models"
)

type UserSettingsRepositoryMock struct {
	GetFunc  func(ctx context.Context) (*models.UserSettings, error)
	SaveFunc func(ctx context.Context, settings *models.UserSettings) error
}

func (m *UserSettingsRepositoryMock) Get(ctx context.Context) (*models.UserSettings, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return models.DefaultUserSettings(), nil
}

func (m *UserSettingsRepositoryMock) Save(ctx context.Context, settings *models.UserSettings) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, settings)
	}
	return nil
}
