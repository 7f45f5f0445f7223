package imageedit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.openai.com/v1"

// ErrMissingAPIKey is returned before any request is sent when no
// credential is configured.
var ErrMissingAPIKey = errors.New("OpenAI API key is not configured")

// Client calls the image edit endpoint that turns an adult dog photo into
// a puppy version. All-or-nothing per call: no retry, no partial result.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			// Image editing can take a while
			Timeout: 120 * time.Second,
		},
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

// TransformRequest describes one puppification call.
type TransformRequest struct {
	ImagePath string
	Quality   string // "standard" | "high"
	Breed     string // optional hint, empty when unknown
	AgeMonths int
}

type imageEditResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

type imageEditError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Transform uploads the source photo with the generated prompt and returns
// the URL of the first generated image.
func (c *Client) Transform(ctx context.Context, req TransformRequest) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	imageData, err := os.ReadFile(strings.TrimPrefix(req.ImagePath, "file://"))
	if err != nil {
		return "", fmt.Errorf("read source image: %w", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	imagePart, err := writer.CreateFormFile("image", "dog.jpg")
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if _, err := imagePart.Write(imageData); err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	// The source photo doubles as the mask so the whole canvas is editable.
	maskPart, err := writer.CreateFormFile("mask", "mask.png")
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if _, err := maskPart.Write(imageData); err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	if err := writer.WriteField("prompt", BuildPrompt(req.AgeMonths, req.Breed)); err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if err := writer.WriteField("n", "1"); err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if err := writer.WriteField("size", SizeForQuality(req.Quality)); err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	url := c.baseURL + "/images/edits"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("image edit request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("image edit failed (status %d): %s", resp.StatusCode, string(respBody))
		var apiErr imageEditError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error.Message != "" {
			return "", errors.New(apiErr.Error.Message)
		}
		return "", errors.New("failed to transform image with AI")
	}

	var parsed imageEditResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Data) == 0 || parsed.Data[0].URL == "" {
		return "", errors.New("image edit response contained no result")
	}

	return parsed.Data[0].URL, nil
}
