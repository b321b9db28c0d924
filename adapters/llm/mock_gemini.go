package llm

import (
	"context"

	"github.com/satriahrh/codeswitch/domain/repositories"
)

// MockGeminiClient is a canned LLM for running the server without credentials
type MockGeminiClient struct{}

// NewMockGeminiClient creates a new mock Gemini client
func NewMockGeminiClient() repositories.LargeLanguageModel {
	return &MockGeminiClient{}
}

// GenerateContent implements repositories.LargeLanguageModel
func (g *MockGeminiClient) GenerateContent(ctx context.Context, prompt string) (repositories.GeneratedContent, error) {
	return repositories.GeneratedContent{
		"text": "Hello! This is a mock translation from the development model.",
	}, nil
}
