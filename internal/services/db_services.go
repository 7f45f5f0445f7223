package services

import (
	"context"

	"gorm.io/gorm"

	"puppytime/internal/repositories"
)

// DbServices aggregates all domain services backed by the database.
type DbServices struct {
	Settings        SettingsService
	Transformations TransformationService
	ModelConfigs    ModelConfigService
}

// NewDbServices constructs the service container using repositories backed by db.
func NewDbServices(db *gorm.DB) *DbServices {
	settingsRepo := repositories.NewUserSettingsRepository(db)
	transformationRepo := repositories.NewTransformationRepository(db)
	modelSettingRepo := repositories.NewModelSettingRepository(db)

	return &DbServices{
		Settings:        NewSettingsService(settingsRepo),
		Transformations: NewTransformationService(transformationRepo),
		ModelConfigs:    NewModelConfigService(modelSettingRepo),
	}
}

// StartDbServices wires the startup context through every database-backed
// service. ModelConfigs errors are returned: the classifier catalog failing
// to load is a packaging bug worth failing loudly on.
func (s *DbServices) StartDbServices(ctx context.Context) error {
	s.Settings.Startup(ctx)
	s.Transformations.Startup(ctx)
	return s.ModelConfigs.Startup(ctx)
}
