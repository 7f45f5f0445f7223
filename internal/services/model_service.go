package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"puppytime/internal/assets"
	"puppytime/internal/models"
	"puppytime/internal/repositories"
)

// ModelConfigService exposes the breed classifier catalog: which vision
// models exist per provider and which are enabled. The first enabled model
// in catalog order is the one the classifier uses.
type ModelConfigService interface {
	Startup(ctx context.Context) error
	ListModelGroups() ([]models.LLMModelGroup, error)
	SetModelEnabled(modelKey string, enabled bool) (*models.LLMModel, error)
	SetProviderEnabled(providerID string, enabled bool) ([]models.LLMModel, error)
	DefaultModel() (*models.LLMModel, error)
}

type modelConfigService struct {
	repo repositories.ModelSettingRepository
	ctx  context.Context

	mu            sync.RWMutex
	providerOrder []string
	providerNames map[string]string
	models        map[string]*catalogModel
	settings      map[string]bool
}

type catalogModel struct {
	Key         string
	ProviderID  string
	Provider    string
	DisplayName string
	APIName     string
	Order       int
}

type rawModelFile struct {
	Providers []rawProvider `json:"providers"`
}

type rawProvider struct {
	ID          string     `json:"id"`
	DisplayName string     `json:"displayName"`
	Models      []rawModel `json:"models"`
}

type rawModel struct {
	DisplayName string `json:"displayName"`
	APIName     string `json:"apiName"`
}

func NewModelConfigService(repo repositories.ModelSettingRepository) ModelConfigService {
	return &modelConfigService{
		repo:          repo,
		models:        make(map[string]*catalogModel),
		settings:      make(map[string]bool),
		providerNames: make(map[string]string),
		mu:            sync.RWMutex{},
	}
}

func (s *modelConfigService) Startup(ctx context.Context) error {
	s.ctx = ctx

	var parsed rawModelFile
	if err := json.Unmarshal(assets.ModelsData, &parsed); err != nil {
		return fmt.Errorf("parse models asset: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order := 0
	s.providerOrder = make([]string, 0, len(parsed.Providers))
	for _, provider := range parsed.Providers {
		providerID := strings.TrimSpace(provider.ID)
		if providerID == "" {
			continue
		}
		providerName := strings.TrimSpace(provider.DisplayName)
		s.providerNames[providerID] = providerName
		s.providerOrder = append(s.providerOrder, providerID)
		for _, mdl := range provider.Models {
			key := computeModelKey(providerID, mdl)
			s.models[key] = &catalogModel{
				Key:         key,
				ProviderID:  providerID,
				Provider:    providerName,
				DisplayName: strings.TrimSpace(mdl.DisplayName),
				APIName:     strings.TrimSpace(mdl.APIName),
				Order:       order,
			}
			order++
		}
	}

	// Load existing settings and seed defaults
	existing, err := s.repo.List()
	if err != nil {
		return fmt.Errorf("load model settings: %w", err)
	}
	for _, setting := range existing {
		s.settings[setting.ModelKey] = setting.Enabled
	}
	for key, def := range s.models {
		if _, ok := s.settings[key]; !ok {
			if _, err := s.repo.Upsert(key, def.ProviderID, true); err != nil {
				return fmt.Errorf("seed model setting for %s: %w", key, err)
			}
			s.settings[key] = true
		}
	}

	return nil
}

func (s *modelConfigService) ListModelGroups() ([]models.LLMModelGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	groups := make([]models.LLMModelGroup, 0, len(s.providerOrder))
	for _, providerID := range s.providerOrder {
		group := models.LLMModelGroup{
			ProviderID:   providerID,
			ProviderName: s.providerName(providerID),
		}
		var modelsForProvider []models.LLMModel
		for _, mdl := range s.models {
			if mdl.ProviderID != providerID {
				continue
			}
			modelsForProvider = append(modelsForProvider, s.toLLMModel(mdl))
		}
		sort.Slice(modelsForProvider, func(i, j int) bool {
			return modelsForProvider[i].Key < modelsForProvider[j].Key
		})
		group.Models = modelsForProvider
		groups = append(groups, group)
	}
	return groups, nil
}

func (s *modelConfigService) SetModelEnabled(modelKey string, enabled bool) (*models.LLMModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	def, ok := s.models[modelKey]
	if !ok {
		return nil, fmt.Errorf("unknown model key: %s", modelKey)
	}
	if _, err := s.repo.Upsert(modelKey, def.ProviderID, enabled); err != nil {
		return nil, err
	}
	s.settings[modelKey] = enabled

	result := s.toLLMModel(def)
	return &result, nil
}

// SetProviderEnabled toggles every model of a provider at once, for users
// who want to rule a vendor in or out wholesale. Returns the updated models.
func (s *modelConfigService) SetProviderEnabled(providerID string, enabled bool) ([]models.LLMModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	known := false
	for _, id := range s.providerOrder {
		if id == providerID {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("unknown provider: %s", providerID)
	}

	if err := s.repo.SetProviderEnabled(providerID, enabled); err != nil {
		return nil, err
	}

	var updated []models.LLMModel
	for _, mdl := range s.models {
		if mdl.ProviderID != providerID {
			continue
		}
		s.settings[mdl.Key] = enabled
		updated = append(updated, s.toLLMModel(mdl))
	}
	sort.Slice(updated, func(i, j int) bool {
		return updated[i].Key < updated[j].Key
	})
	return updated, nil
}

// DefaultModel returns the first enabled model in catalog order, or an
// error when everything is disabled.
func (s *modelConfigService) DefaultModel() (*models.LLMModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var best *catalogModel
	for _, mdl := range s.models {
		if !s.settings[mdl.Key] {
			continue
		}
		if best == nil || mdl.Order < best.Order {
			best = mdl
		}
	}
	if best == nil {
		return nil, fmt.Errorf("no classifier model is enabled")
	}
	result := s.toLLMModel(best)
	return &result, nil
}

func (s *modelConfigService) toLLMModel(def *catalogModel) models.LLMModel {
	return models.LLMModel{
		Key:          def.Key,
		DisplayName:  def.DisplayName,
		APIName:      def.APIName,
		ProviderID:   def.ProviderID,
		ProviderName: s.providerName(def.ProviderID),
		Enabled:      s.settings[def.Key],
	}
}

func (s *modelConfigService) providerName(providerID string) string {
	if name := s.providerNames[providerID]; name != "" {
		return name
	}
	return providerID
}

func computeModelKey(providerID string, mdl rawModel) string {
	return providerID + "/" + strings.TrimSpace(mdl.APIName)
}
