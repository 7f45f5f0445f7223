package services

import (
	"context"
	"fmt"
	"log"

	"puppytime/internal/llm/client"
)

// BreedService guesses the breed of the dog in a photo. Every failure mode
// is absorbed: no credential, network errors, and malformed responses all
// degrade to an empty breed so the pipeline proceeds without a hint.
type BreedService interface {
	Classify(ctx context.Context, imagePath string) string
	Startup(ctx context.Context) error
}

type breedService struct {
	context        context.Context
	keyringService *KeyringService
	modelConfigs   ModelConfigService
}

func NewBreedService(keyringService *KeyringService, modelConfigs ModelConfigService) BreedService {
	return &breedService{
		keyringService: keyringService,
		modelConfigs:   modelConfigs,
	}
}

func (s *breedService) Startup(ctx context.Context) error {
	s.context = ctx
	if s.keyringService == nil {
		return fmt.Errorf("keyring service not configured")
	}
	if s.modelConfigs == nil {
		return fmt.Errorf("model configuration service not configured")
	}
	return nil
}

func (s *breedService) Classify(ctx context.Context, imagePath string) string {
	mdl, err := s.modelConfigs.DefaultModel()
	if err != nil || mdl == nil {
		log.Printf("Breed detection skipped: no classifier model enabled")
		return ""
	}

	apiKey := s.keyringService.ResolveAPIKey(mdl.ProviderID)
	if apiKey == "" {
		// No credential configured: skip without sending a request
		return ""
	}

	chatModel, err := client.NewChatModel(ctx, mdl.ProviderID, apiKey, mdl.APIName)
	if err != nil {
		log.Printf("Error creating breed classifier model: %v", err)
		return ""
	}

	breed, err := client.NewBreedClassifier(chatModel).Classify(ctx, imagePath)
	if err != nil {
		log.Printf("Error detecting breed: %v", err)
		return ""
	}
	return breed
}
