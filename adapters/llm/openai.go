package llm

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/satriahrh/codeswitch/domain/repositories"
)

// OpenAIConfig holds configuration for the OpenAI chat-completion adapter
type OpenAIConfig struct {
	APIKey  string // Required
	BaseURL string // Optional: OpenAI-compatible endpoint
	Model   string // Optional: default gpt-4o-mini
}

// OpenAILLM implements the LargeLanguageModel interface using chat completions
type OpenAILLM struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

var _ repositories.LargeLanguageModel = (*OpenAILLM)(nil)

// NewOpenAIConfigFromEnv reads OPENAI_* environment variables
func NewOpenAIConfigFromEnv() OpenAIConfig {
	return OpenAIConfig{
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
		Model:   os.Getenv("OPENAI_MODEL"),
	}
}

// NewOpenAILLM creates a new OpenAI LLM instance
func NewOpenAILLM(config OpenAIConfig, logger *zap.Logger) (*OpenAILLM, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	model := config.Model
	if model == "" {
		model = openai.GPT4oMini
		logger.Info("Using default model", zap.String("model", model))
	}

	return &OpenAILLM{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
		logger: logger,
	}, nil
}

// GenerateContent implements repositories.LargeLanguageModel
func (o *OpenAILLM) GenerateContent(ctx context.Context, prompt string) (repositories.GeneratedContent, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		o.logger.Error("Chat completion failed", zap.String("model", o.model), zap.Error(err))
		return nil, err
	}

	return toDocument(resp)
}
