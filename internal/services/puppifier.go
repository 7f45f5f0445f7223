package services

import (
	"context"

	"puppytime/internal/llm/imageedit"
)

// Puppifier turns an adult dog photo into a puppy version and returns the
// generated image URL. Implementations fail hard; the pipeline surfaces
// their errors to the user.
type Puppifier interface {
	Transform(ctx context.Context, req imageedit.TransformRequest) (string, error)
}

// openAIPuppifier resolves the credential at call time so keys added in the
// settings screen take effect without a restart.
type openAIPuppifier struct {
	keyringService *KeyringService
}

func NewOpenAIPuppifier(keyringService *KeyringService) Puppifier {
	return &openAIPuppifier{keyringService: keyringService}
}

func (p *openAIPuppifier) Transform(ctx context.Context, req imageedit.TransformRequest) (string, error) {
	apiKey := p.keyringService.ResolveAPIKey("openai")
	if apiKey == "" {
		return "", imageedit.ErrMissingAPIKey
	}
	return imageedit.NewClient(apiKey).Transform(ctx, req)
}
