package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap/zaptest"
)

func TestNewOpenAILLM_RequiresAPIKey(t *testing.T) {
	if _, err := NewOpenAILLM(OpenAIConfig{}, zaptest.NewLogger(t)); err == nil {
		t.Error("Expected error when API key is missing")
	}
}

func TestOpenAILLM_GenerateContent(t *testing.T) {
	var got openai.ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "The weather is nice today."}, "finish_reason": "stop"}]
		}`))
	}))
	defer server.Close()

	llm, err := NewOpenAILLM(OpenAIConfig{APIKey: "test-key", BaseURL: server.URL + "/v1"}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Failed to create OpenAILLM: %v", err)
	}

	doc, err := llm.GenerateContent(context.Background(), "今天 weather 很好")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got.Model != openai.GPT4oMini {
		t.Errorf("Expected default model %s, got %s", openai.GPT4oMini, got.Model)
	}
	if len(got.Messages) != 1 || got.Messages[0].Content != "今天 weather 很好" {
		t.Errorf("Expected prompt as single user message, got %+v", got.Messages)
	}

	choices, ok := doc["choices"].([]any)
	if !ok || len(choices) != 1 {
		t.Fatalf("Expected one choice in document, got %v", doc["choices"])
	}
	message := choices[0].(map[string]any)["message"].(map[string]any)
	if message["content"] != "The weather is nice today." {
		t.Errorf("Expected message content, got %v", message["content"])
	}
}
