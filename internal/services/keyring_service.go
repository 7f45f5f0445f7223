package services

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/99designs/keyring"
)

const serviceName = "puppytime"

// envVarByProvider lists the environment fallbacks checked when the OS
// keyring has no entry for a provider.
var envVarByProvider = map[string]string{
	"openai":    "OPENAI_API_KEY",
	"anthropic": "ANTHROPIC_API_KEY",
	"google":    "GEMINI_API_KEY",
}

// KeyringService stores per-provider API keys in the OS keyring, with an
// environment variable fallback for keys supplied via .env.
type KeyringService struct {
	ring keyring.Keyring
}

func NewKeyringService() *KeyringService {
	return &KeyringService{}
}

func (s *KeyringService) Startup() {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
	})
	if err != nil {
		log.Printf("Error opening OS keyring: %v", err)
		return
	}
	s.ring = ring
}

func (s *KeyringService) StoreAPIKey(provider string, apiKey string) error {
	if strings.TrimSpace(apiKey) == "" {
		return errors.New("API key is empty")
	}
	if provider == "" {
		return errors.New("provider is required")
	}
	if s.ring == nil {
		return errors.New("keyring is not available")
	}

	return s.ring.Set(keyring.Item{
		Key:         provider,
		Data:        []byte(apiKey),
		Label:       provider + " API key",
		Description: "API key for " + provider + " used by PuppyTime",
	})
}

func (s *KeyringService) GetAPIKey(provider string) (string, error) {
	if provider == "" {
		return "", errors.New("provider is required")
	}
	if s.ring == nil {
		return "", errors.New("keyring is not available")
	}
	item, err := s.ring.Get(provider)
	if err != nil {
		return "", err
	}
	return string(item.Data), nil
}

func (s *KeyringService) DeleteAPIKey(provider string) error {
	if provider == "" {
		return errors.New("provider is required")
	}
	if s.ring == nil {
		return errors.New("keyring is not available")
	}
	return s.ring.Remove(provider)
}

func (s *KeyringService) HasAPIKey(provider string) bool {
	return s.ResolveAPIKey(provider) != ""
}

// ResolveAPIKey looks up the credential for a provider: keyring first, then
// the provider's environment variable. Empty means not configured; callers
// decide whether that is a skip (breed detection) or a hard failure
// (image generation).
func (s *KeyringService) ResolveAPIKey(provider string) string {
	if provider == "" {
		return ""
	}

	if s.ring != nil {
		if item, err := s.ring.Get(provider); err == nil && len(item.Data) > 0 {
			return string(item.Data)
		} else if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
			log.Printf("Error reading %s key from keyring: %v", provider, err)
		}
	}

	if envVar, ok := envVarByProvider[provider]; ok {
		return strings.TrimSpace(os.Getenv(envVar))
	}
	return ""
}
