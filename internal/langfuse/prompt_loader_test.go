package langfuse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPrompt_TextPrompt(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/public/v2/prompts/sleep-insights" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("label") != "production" {
			t.Errorf("unexpected label %q", r.URL.Query().Get("label"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"text","prompt":"You are a sleep coach."}`))
	}))
	defer server.Close()

	prompt, err := LoadPrompt(context.Background(), PromptLoaderConfig{
		BaseURL:     server.URL,
		PublicKey:   "pk",
		SecretKey:   "sk",
		PromptName:  "sleep-insights",
		PromptLabel: "production",
	}, nil)
	if err != nil {
		t.Fatalf("LoadPrompt returned error: %v", err)
	}
	if prompt != "You are a sleep coach." {
		t.Errorf("prompt = %q", prompt)
	}
}

func TestLoadPrompt_ChatPromptFlattened(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"chat","prompt":[{"role":"system","content":"Be kind."},{"type":"placeholder","name":"context"}]}`))
	}))
	defer server.Close()

	prompt, err := LoadPrompt(context.Background(), PromptLoaderConfig{
		BaseURL:    server.URL,
		PublicKey:  "pk",
		SecretKey:  "sk",
		PromptName: "sleep-insights",
	}, nil)
	if err != nil {
		t.Fatalf("LoadPrompt returned error: %v", err)
	}
	want := "SYSTEM: Be kind.\n\nMESSAGE: {{context}}"
	if prompt != want {
		t.Errorf("prompt = %q, want %q", prompt, want)
	}
}

func TestLoadPrompt_FallsBackToFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "prompt.txt")
	if err := os.WriteFile(path, []byte("cached prompt"), 0o600); err != nil {
		t.Fatal(err)
	}

	prompt, err := LoadPrompt(context.Background(), PromptLoaderConfig{
		BaseURL:    server.URL,
		PublicKey:  "pk",
		SecretKey:  "sk",
		PromptName: "sleep-insights",
		SavePath:   path,
	}, nil)
	if err != nil {
		t.Fatalf("LoadPrompt returned error: %v", err)
	}
	if prompt != "cached prompt" {
		t.Errorf("prompt = %q, want cached prompt", prompt)
	}
}

func TestLoadPrompt_CachesFetchedPrompt(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"type":"text","prompt":"fresh prompt"}`))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "nested", "prompt.txt")
	prompt, err := LoadPrompt(context.Background(), PromptLoaderConfig{
		BaseURL:    server.URL,
		PublicKey:  "pk",
		SecretKey:  "sk",
		PromptName: "sleep-insights",
		SavePath:   path,
	}, nil)
	if err != nil {
		t.Fatalf("LoadPrompt returned error: %v", err)
	}
	if prompt != "fresh prompt" {
		t.Errorf("prompt = %q", prompt)
	}

	cached, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cached prompt not written: %v", err)
	}
	if string(cached) != "fresh prompt" {
		t.Errorf("cached = %q", cached)
	}
}

func TestLoadPrompt_NoPromptNameNoFile(t *testing.T) {
	if _, err := LoadPrompt(context.Background(), PromptLoaderConfig{}, nil); err == nil {
		t.Error("expected error when nothing is configured")
	}
}
