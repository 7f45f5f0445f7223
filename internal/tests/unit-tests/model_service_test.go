package unit_tests

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puppytime/internal/models"
	"puppytime/internal/services"
	"puppytime/internal/tests/mocks"
)

func startedModelConfigService(t *testing.T, repo *mocks.ModelSettingRepositoryMock) services.ModelConfigService {
	t.Helper()
	svc := services.NewModelConfigService(repo)
	require.NoError(t, svc.Startup(context.Background()))
	return svc
}

func TestModelConfigService_Startup_SeedsCatalog(t *testing.T) {
	var seeded []string
	repo := &mocks.ModelSettingRepositoryMock{
		UpsertFunc: func(modelKey, provider string, enabled bool) (*models.ModelSetting, error) {
			seeded = append(seeded, modelKey)
			return &models.ModelSetting{ModelKey: modelKey, Provider: provider, Enabled: enabled}, nil
		},
	}
	svc := startedModelConfigService(t, repo)

	groups, err := svc.ListModelGroups()
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "openai", groups[0].ProviderID)
	assert.NotEmpty(t, seeded)
}

func TestModelConfigService_DefaultModel_IsFirstEnabled(t *testing.T) {
	svc := startedModelConfigService(t, &mocks.ModelSettingRepositoryMock{})

	mdl, err := svc.DefaultModel()
	require.NoError(t, err)
	assert.Equal(t, "openai", mdl.ProviderID)
	assert.Equal(t, "gpt-4o-mini", mdl.APIName)
	assert.True(t, mdl.Enabled)
}

func TestModelConfigService_DisablingDefaultPromotesNext(t *testing.T) {
	svc := startedModelConfigService(t, &mocks.ModelSettingRepositoryMock{})

	updated, err := svc.SetModelEnabled("openai/gpt-4o-mini", false)
	require.NoError(t, err)
	assert.False(t, updated.Enabled)

	mdl, err := svc.DefaultModel()
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", mdl.APIName)
}

func TestModelConfigService_SetModelEnabled_UnknownKey(t *testing.T) {
	svc := startedModelConfigService(t, &mocks.ModelSettingRepositoryMock{})

	_, err := svc.SetModelEnabled("openai/nonexistent", true)
	assert.Error(t, err)
}

func TestModelConfigService_SetProviderEnabled_TogglesWholeProvider(t *testing.T) {
	var toggled []string
	repo := &mocks.ModelSettingRepositoryMock{
		SetProviderEnabledFunc: func(provider string, enabled bool) error {
			toggled = append(toggled, fmt.Sprintf("%s=%t", provider, enabled))
			return nil
		},
	}
	svc := startedModelConfigService(t, repo)

	updated, err := svc.SetProviderEnabled("openai", false)
	require.NoError(t, err)
	require.Len(t, updated, 2)
	for _, mdl := range updated {
		assert.False(t, mdl.Enabled)
	}
	assert.Equal(t, []string{"openai=false"}, toggled)

	// With the whole openai provider off, the next provider takes over
	mdl, err := svc.DefaultModel()
	require.NoError(t, err)
	assert.Equal(t, "anthropic", mdl.ProviderID)
}

func TestModelConfigService_SetProviderEnabled_UnknownProvider(t *testing.T) {
	svc := startedModelConfigService(t, &mocks.ModelSettingRepositoryMock{})

	_, err := svc.SetProviderEnabled("petstore", false)
	assert.Error(t, err)
}

func TestModelConfigService_RespectsPersistedSettings(t *testing.T) {
	repo := &mocks.ModelSettingRepositoryMock{
		ListFunc: func() ([]models.ModelSetting, error) {
			return []models.ModelSetting{
				{ModelKey: "openai/gpt-4o-mini", Provider: "openai", Enabled: false},
				{ModelKey: "openai/gpt-4o", Provider: "openai", Enabled: false},
				{ModelKey: "anthropic/claude-3-5-haiku-latest", Provider: "anthropic", Enabled: true},
				{ModelKey: "google/gemini-2.0-flash", Provider: "google", Enabled: true},
			}, nil
		},
	}
	svc := startedModelConfigService(t, repo)

	mdl, err := svc.DefaultModel()
	require.NoError(t, err)
	assert.Equal(t, "anthropic", mdl.ProviderID)
}
