package imageedit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writeTestImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dog.jpg")
	if err := os.WriteFile(path, []byte("not-really-a-jpeg"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTransformMissingAPIKey(t *testing.T) {
	client := NewClient("")

	_, err := client.Transform(context.Background(), TransformRequest{ImagePath: writeTestImage(t)})
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestTransformSuccess(t *testing.T) {
	var gotPrompt, gotSize, gotN string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/images/edits" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Fatalf("missing bearer auth, got %q", r.Header.Get("Authorization"))
		}
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		gotPrompt = r.FormValue("prompt")
		gotSize = r.FormValue("size")
		gotN = r.FormValue("n")
		if _, _, err := r.FormFile("image"); err != nil {
			t.Fatalf("missing image part: %v", err)
		}
		if _, _, err := r.FormFile("mask"); err != nil {
			t.Fatalf("missing mask part: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"url":"https://x/puppy1.png"}]}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)
	url, err := client.Transform(context.Background(), TransformRequest{
		ImagePath: writeTestImage(t),
		Quality:   "high",
		Breed:     "Labrador",
		AgeMonths: 4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://x/puppy1.png" {
		t.Fatalf("unexpected url: %s", url)
	}
	if gotPrompt != BuildPrompt(4, "Labrador") {
		t.Fatalf("unexpected prompt: %q", gotPrompt)
	}
	if gotSize != SizeHigh {
		t.Fatalf("expected high quality size, got %q", gotSize)
	}
	if gotN != "1" {
		t.Fatalf("expected n=1, got %q", gotN)
	}
}

func TestTransformPropagatesRemoteErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid image format"}}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)
	_, err := client.Transform(context.Background(), TransformRequest{ImagePath: writeTestImage(t)})
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Invalid image format" {
		t.Fatalf("expected remote message to propagate, got %q", err.Error())
	}
}

func TestTransformGenericErrorOnOpaqueFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`oops`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)
	_, err := client.Transform(context.Background(), TransformRequest{ImagePath: writeTestImage(t)})
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "failed to transform image with AI" {
		t.Fatalf("expected generic message, got %q", err.Error())
	}
}

func TestTransformEmptyResultIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)
	_, err := client.Transform(context.Background(), TransformRequest{ImagePath: writeTestImage(t)})
	if err == nil {
		t.Fatal("expected error for empty result set")
	}
}

func TestTransformMissingSourceImage(t *testing.T) {
	client := NewClient("test-key")

	_, err := client.Transform(context.Background(), TransformRequest{ImagePath: "/nonexistent/dog.jpg"})
	if err == nil {
		t.Fatal("expected error for missing source image")
	}
}
