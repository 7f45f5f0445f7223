package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/yargevad/filepathx"
)

// LibraryService saves generated puppy images into a local pictures folder
// so results survive the remote URLs expiring. Saves are driven by the
// Results view: automatically when the auto-save setting is on, or on
// demand from the save button.
type LibraryService struct {
	context    context.Context
	dir        string
	httpClient *http.Client
}

func NewLibraryService() *LibraryService {
	return &LibraryService{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (s *LibraryService) Startup(ctx context.Context) error {
	s.context = ctx

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home dir: %w", err)
	}
	s.dir = filepath.Join(home, "Pictures", "PuppyTime")
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create library dir: %w", err)
	}
	return nil
}

// Dir returns the library folder, for the share/reveal affordances.
func (s *LibraryService) Dir() string {
	return s.dir
}

// SaveToLibrary downloads the generated image and stores it in the library.
// Failures surface to the caller; there is no retry automation.
func (s *LibraryService) SaveToLibrary(ctx context.Context, imageURL string) (string, error) {
	if s.dir == "" {
		return "", fmt.Errorf("library service not started")
	}
	if imageURL == "" {
		return "", fmt.Errorf("image url is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build download request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download image: unexpected status %d", resp.StatusCode)
	}

	name := fmt.Sprintf("puppy_%d.png", time.Now().UnixMilli())
	path := filepath.Join(s.dir, name)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create library file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write library file: %w", err)
	}

	return path, nil
}

// ListSaved returns every saved image in the library, newest first.
func (s *LibraryService) ListSaved() ([]string, error) {
	if s.dir == "" {
		return nil, fmt.Errorf("library service not started")
	}

	var files []string
	for _, pattern := range []string{"**/*.png", "**/*.jpg", "**/*.jpeg"} {
		matches, err := filepathx.Glob(filepath.Join(s.dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("scan library: %w", err)
		}
		files = append(files, matches...)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(files)))
	return files, nil
}
