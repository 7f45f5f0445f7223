package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"
)

// Provider identifiers matching the embedded model catalog.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGoogle    = "google"
)

const classifyMaxTokens = 50

// NewChatModel builds a vision-capable chat model for the given provider.
func NewChatModel(ctx context.Context, provider, apiKey, modelName string) (model.BaseChatModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if modelName == "" {
		return nil, fmt.Errorf("model name is required")
	}

	switch provider {
	case ProviderOpenAI:
		m, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			APIKey: apiKey,
			Model:  modelName,
		})
		if err != nil {
			log.Printf("Error creating OpenAI chat model: %v", err)
			return nil, err
		}
		return m, nil
	case ProviderAnthropic:
		m, err := claude.NewChatModel(ctx, &claude.Config{
			APIKey:    apiKey,
			Model:     modelName,
			MaxTokens: classifyMaxTokens,
		})
		if err != nil {
			log.Printf("Error creating Claude chat model: %v", err)
			return nil, err
		}
		return m, nil
	case ProviderGoogle:
		gc, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			log.Printf("Error creating Gemini client: %v", err)
			return nil, err
		}
		m, err := gemini.NewChatModel(ctx, &gemini.Config{
			Client: gc,
			Model:  modelName,
		})
		if err != nil {
			log.Printf("Error creating Gemini chat model: %v", err)
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}

// BreedClassifier asks a vision model for the breed of the dog in a photo.
type BreedClassifier struct {
	chatModel model.BaseChatModel
}

func NewBreedClassifier(chatModel model.BaseChatModel) *BreedClassifier {
	return &BreedClassifier{chatModel: chatModel}
}

// Classify sends the image inline as a data URL with the fixed instruction
// prompt and returns the model's trimmed answer. One request, no retry.
func (c *BreedClassifier) Classify(ctx context.Context, imagePath string) (string, error) {
	if c == nil || c.chatModel == nil {
		return "", fmt.Errorf("chat model is not configured")
	}

	dataURL, err := imageDataURL(imagePath)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	instruction, err := breedPrompt()
	if err != nil {
		return "", err
	}

	messages := []*schema.Message{
		{
			Role: schema.User,
			MultiContent: []schema.ChatMessagePart{
				{
					Type: schema.ChatMessagePartTypeText,
					Text: instruction,
				},
				{
					Type: schema.ChatMessagePartTypeImageURL,
					ImageURL: &schema.ChatMessageImageURL{
						URL:    dataURL,
						Detail: schema.ImageURLDetailAuto,
					},
				},
			},
		},
	}

	out, err := c.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", err
	}
	if out == nil {
		return "", fmt.Errorf("model returned no message")
	}

	return strings.TrimSpace(out.Content), nil
}

func breedPrompt() (string, error) {
	data, err := embeddedPrompts.ReadFile("prompts/breed_classify.txt")
	if err != nil {
		return "", fmt.Errorf("load breed prompt: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// imageDataURL loads a local image and encodes it as a base64 data URL.
func imageDataURL(imagePath string) (string, error) {
	raw, err := os.ReadFile(strings.TrimPrefix(imagePath, "file://"))
	if err != nil {
		return "", err
	}

	mimeType := "image/jpeg"
	switch strings.ToLower(filepath.Ext(imagePath)) {
	case ".png":
		mimeType = "image/png"
	case ".webp":
		mimeType = "image/webp"
	case ".gif":
		mimeType = "image/gif"
	}

	encoded := base64.StdEncoding.EncodeToString(raw)
	return fmt.Sprintf("data:%s;base64,%s", mimeType, encoded), nil
}
