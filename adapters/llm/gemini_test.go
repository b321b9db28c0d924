package llm

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/satriahrh/codeswitch/domain/repositories"
)

var _ repositories.LargeLanguageModel = &MockGeminiClient{}

func TestNewGeminiLLM_RequiresAPIKey(t *testing.T) {
	os.Unsetenv("GEMINI_API_KEY")

	_, err := NewGeminiLLM(context.Background(), NewGeminiConfigFromEnv(), zaptest.NewLogger(t))
	if err == nil {
		t.Fatal("Expected error when GEMINI_API_KEY is not set")
	}
	if !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Errorf("Expected error to name the variable, got %v", err)
	}
}

func TestValidateGeminiConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  GeminiConfig
		wantErr bool
	}{
		{name: "valid", config: GeminiConfig{APIKey: "k"}, wantErr: false},
		{name: "missing key", config: GeminiConfig{}, wantErr: true},
		{name: "temperature too high", config: GeminiConfig{APIKey: "k", Temperature: 2.5}, wantErr: true},
		{name: "negative temperature", config: GeminiConfig{APIKey: "k", Temperature: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGeminiConfig(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGeminiConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGeminiLLM_GenerateContent(t *testing.T) {
	var gotPath, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"candidates": [{
				"content": {"role": "model", "parts": [{"text": "See you tomorrow at the office."}]},
				"finishReason": "STOP"
			}],
			"usageMetadata": {"promptTokenCount": 10, "candidatesTokenCount": 7, "totalTokenCount": 17}
		}`))
	}))
	defer server.Close()

	gemini, err := NewGeminiLLM(context.Background(), GeminiConfig{
		APIKey:  "test-api-key",
		BaseURL: server.URL,
	}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Failed to create GeminiLLM: %v", err)
	}

	if gemini.model != defaultGeminiModel {
		t.Errorf("Expected default model %s, got %s", defaultGeminiModel, gemini.model)
	}

	doc, err := gemini.GenerateContent(context.Background(), "明天 office 见")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if doc["text"] != "See you tomorrow at the office." {
		t.Errorf("Expected text field from response, got %v", doc["text"])
	}

	if _, ok := doc["candidates"]; !ok {
		t.Error("Expected candidates to survive the document conversion")
	}

	if !strings.Contains(gotPath, defaultGeminiModel) {
		t.Errorf("Expected request path to name the model, got %s", gotPath)
	}

	if !strings.Contains(gotBody, "明天 office 见") {
		t.Errorf("Expected prompt in request body, got %s", gotBody)
	}
}

func TestGeminiLLM_GenerateContent_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"code": 429, "message": "Resource has been exhausted", "status": "RESOURCE_EXHAUSTED"}}`))
	}))
	defer server.Close()

	gemini, err := NewGeminiLLM(context.Background(), GeminiConfig{
		APIKey:  "test-api-key",
		BaseURL: server.URL,
	}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Failed to create GeminiLLM: %v", err)
	}

	if _, err := gemini.GenerateContent(context.Background(), "hi"); err == nil {
		t.Error("Expected error for 429 response")
	}
}
