package mocks

import (
	"context"

	"puppytime/internal/llm/imageedit"
	"puppytime/internal/models"
	"puppytime/internal/services"
)

// SettingsServiceMock satisfies services.SettingsService.
type SettingsServiceMock struct {
	GetFunc    func(ctx context.Context) *models.UserSettings
	UpdateFunc func(ctx context.Context, patch services.SettingsPatch) (*models.UserSettings, error)
}

func (m *SettingsServiceMock) Get(ctx context.Context) *models.UserSettings {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return models.DefaultUserSettings()
}

func (m *SettingsServiceMock) Update(ctx context.Context, patch services.SettingsPatch) (*models.UserSettings, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, patch)
	}
	return models.DefaultUserSettings(), nil
}

func (m *SettingsServiceMock) Startup(ctx context.Context) {}

// TransformationServiceMock satisfies services.TransformationService.
type TransformationServiceMock struct {
	ListFunc   func(ctx context.Context) []models.Transformation
	AppendFunc func(ctx context.Context, record *models.Transformation) error
	CountFunc  func(ctx context.Context) (int64, error)
	ClearFunc  func(ctx context.Context) error
}

func (m *TransformationServiceMock) List(ctx context.Context) []models.Transformation {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Transformation{}
}

func (m *TransformationServiceMock) Append(ctx context.Context, record *models.Transformation) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, record)
	}
	return nil
}

func (m *TransformationServiceMock) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *TransformationServiceMock) Clear(ctx context.Context) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx)
	}
	return nil
}

func (m *TransformationServiceMock) Startup(ctx context.Context) {}

// BreedServiceMock satisfies services.BreedService.
type BreedServiceMock struct {
	ClassifyFunc func(ctx context.Context, imagePath string) string
}

func (m *BreedServiceMock) Classify(ctx context.Context, imagePath string) string {
	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, imagePath)
	}
	return ""
}

func (m *BreedServiceMock) Startup(ctx context.Context) error { return nil }

// PuppifierMock satisfies services.Puppifier.
type PuppifierMock struct {
	TransformFunc func(ctx context.Context, req imageedit.TransformRequest) (string, error)
}

func (m *PuppifierMock) Transform(ctx context.Context, req imageedit.TransformRequest) (string, error) {
	if m.TransformFunc != nil {
		return m.TransformFunc(ctx, req)
	}
	return "https://example.com/puppy.png", nil
}
