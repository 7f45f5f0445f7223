package client

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestImageDataURLDetectsMimeType(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		expected string
	}{
		{"jpeg", "dog.jpg", "data:image/jpeg;base64,"},
		{"png", "dog.png", "data:image/png;base64,"},
		{"webp", "dog.webp", "data:image/webp;base64,"},
		{"unknown falls back to jpeg", "dog.raw", "data:image/jpeg;base64,"},
	}

	for _, tc := range cases {
		path := filepath.Join(t.TempDir(), tc.filename)
		if err := os.WriteFile(path, []byte("image-bytes"), 0644); err != nil {
			t.Fatal(err)
		}
		dataURL, err := imageDataURL(path)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if !strings.HasPrefix(dataURL, tc.expected) {
			t.Fatalf("%s: expected prefix %q, got %q", tc.name, tc.expected, dataURL)
		}
	}
}

func TestImageDataURLStripsFileScheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dog.jpg")
	if err := os.WriteFile(path, []byte("image-bytes"), 0644); err != nil {
		t.Fatal(err)
	}

	dataURL, err := imageDataURL("file://" + path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(dataURL, "data:image/jpeg;base64,") {
		t.Fatalf("unexpected data url: %q", dataURL)
	}
}

func TestBreedPromptLoads(t *testing.T) {
	prompt, err := breedPrompt()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(prompt, "breed") {
		t.Fatalf("prompt does not mention breed: %q", prompt)
	}
	if strings.TrimSpace(prompt) != prompt {
		t.Fatal("prompt should be trimmed")
	}
}

func TestNewChatModelValidation(t *testing.T) {
	ctx := t.Context()

	if _, err := NewChatModel(ctx, ProviderOpenAI, "", "gpt-4o-mini"); err == nil {
		t.Fatal("expected error for missing API key")
	}
	if _, err := NewChatModel(ctx, ProviderOpenAI, "key", ""); err == nil {
		t.Fatal("expected error for missing model name")
	}
	if _, err := NewChatModel(ctx, "mystery", "key", "some-model"); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
