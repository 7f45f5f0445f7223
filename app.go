package main

import (
	"context"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"puppytime/internal/models"
	"puppytime/internal/services"
)

// App struct
type App struct {
	ctx             context.Context
	Settings        services.SettingsService
	Transformations services.TransformationService
	Pipeline        services.PipelineService
	Library         *services.LibraryService
	dbClose         func() error
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			runtime.LogError(ctx, fmt.Sprintf("failed to close database: %v", err))
		} else {
			runtime.LogInfo(ctx, "database closed")
		}
		a.dbClose = nil
	}
}

// SelectPhoto opens a native file picker for the source dog photo.
func (a *App) SelectPhoto() (string, error) {
	path, err := runtime.OpenFileDialog(a.ctx, runtime.OpenDialogOptions{
		Title: "Choose a dog photo",
		Filters: []runtime.FileFilter{
			{DisplayName: "Images", Pattern: "*.png;*.jpg;*.jpeg;*.webp"},
		},
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// GetUserSettings returns the current user settings
func (a *App) GetUserSettings() *models.UserSettings {
	if a.Settings == nil {
		return models.DefaultUserSettings()
	}
	return a.Settings.Get(a.ctx)
}

// UpdateUserSettings applies a partial settings update and returns the result
func (a *App) UpdateUserSettings(patch services.SettingsPatch) (*models.UserSettings, error) {
	if a.Settings == nil {
		return nil, fmt.Errorf("settings service not available")
	}
	return a.Settings.Update(a.ctx, patch)
}

// Puppify starts a transformation run for the given photo and target age,
// returning a run token the frontend can use to cancel it. Progress and
// completion arrive as pipeline events.
func (a *App) Puppify(imageURI string, ageMonths int) (string, error) {
	if a.Pipeline == nil {
		return "", fmt.Errorf("pipeline service not available")
	}
	token, err := a.Pipeline.StartRun(imageURI, ageMonths)
	if err != nil {
		runtime.LogError(a.ctx, fmt.Sprintf("failed to start pipeline run: %v", err))
		return "", err
	}
	return token, nil
}

// CancelPuppify discards an in-flight run whose view was torn down.
func (a *App) CancelPuppify(runToken string) {
	if a.Pipeline != nil {
		a.Pipeline.CancelRun(runToken)
	}
}

// GetTransformations returns the stored history, newest first
func (a *App) GetTransformations() []models.Transformation {
	if a.Transformations == nil {
		return []models.Transformation{}
	}
	return a.Transformations.List(a.ctx)
}

// ClearTransformations wipes the transformation history
func (a *App) ClearTransformations() error {
	if a.Transformations == nil {
		return fmt.Errorf("transformation service not available")
	}
	return a.Transformations.Clear(a.ctx)
}

// SaveResult downloads a generated image into the local library and returns
// the saved path.
func (a *App) SaveResult(imageURL string) (string, error) {
	if a.Library == nil {
		return "", fmt.Errorf("library service not available")
	}
	return a.Library.SaveToLibrary(a.ctx, imageURL)
}

// MaybeAutoSave saves the generated image only when the auto-save setting
// is on. Returns the saved path, or empty when auto-save is off.
func (a *App) MaybeAutoSave(imageURL string) (string, error) {
	if a.Library == nil {
		return "", fmt.Errorf("library service not available")
	}
	if !a.GetUserSettings().AutoSave {
		return "", nil
	}
	return a.Library.SaveToLibrary(a.ctx, imageURL)
}

// ListSavedImages returns every image saved to the local library
func (a *App) ListSavedImages() ([]string, error) {
	if a.Library == nil {
		return nil, fmt.Errorf("library service not available")
	}
	return a.Library.ListSaved()
}

// LibraryDir returns the folder generated images are saved into
func (a *App) LibraryDir() string {
	if a.Library == nil {
		return ""
	}
	return a.Library.Dir()
}
