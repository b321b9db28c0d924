package llm

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/satriahrh/codeswitch/domain/repositories"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiConfig holds configuration for the Gemini adapter
// Required fields:
// - APIKey: Gemini API key
// Optional fields:
// - Model: model name (default: "gemini-2.5-flash")
// - BaseURL: API endpoint override, mostly for tests and proxies
// - Temperature: sampling temperature between 0 and 2, 0 keeps the model default
type GeminiConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float32
}

// GeminiLLM implements the LargeLanguageModel interface using Google's Gemini API
type GeminiLLM struct {
	client      *genai.Client
	logger      *zap.Logger
	model       string
	temperature float32
}

var _ repositories.LargeLanguageModel = (*GeminiLLM)(nil)

// ValidateGeminiConfig validates the GeminiConfig
func ValidateGeminiConfig(config GeminiConfig) error {
	if config.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	if config.Temperature < 0 || config.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %f", config.Temperature)
	}

	return nil
}

// NewGeminiConfigFromEnv reads GEMINI_* environment variables
func NewGeminiConfigFromEnv() GeminiConfig {
	config := GeminiConfig{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		Model:   os.Getenv("GEMINI_MODEL"),
		BaseURL: os.Getenv("GEMINI_BASE_URL"),
	}

	if tempStr := os.Getenv("GEMINI_TEMPERATURE"); tempStr != "" {
		if temp, err := strconv.ParseFloat(tempStr, 32); err == nil {
			config.Temperature = float32(temp)
		}
	}

	return config
}

// NewGeminiLLM creates a new Gemini LLM instance
func NewGeminiLLM(ctx context.Context, config GeminiConfig, logger *zap.Logger) (*GeminiLLM, error) {
	if err := ValidateGeminiConfig(config); err != nil {
		return nil, err
	}

	model := config.Model
	if model == "" {
		model = defaultGeminiModel
		logger.Info("Using default model", zap.String("model", model))
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiLLM{
		client:      client,
		logger:      logger,
		model:       model,
		temperature: config.Temperature,
	}, nil
}

// GenerateContent implements repositories.LargeLanguageModel
func (g *GeminiLLM) GenerateContent(ctx context.Context, prompt string) (repositories.GeneratedContent, error) {
	var config *genai.GenerateContentConfig
	if g.temperature > 0 {
		config = &genai.GenerateContentConfig{Temperature: genai.Ptr(g.temperature)}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		g.logger.Error("Failed to generate content", zap.String("model", g.model), zap.Error(err))
		return nil, err
	}

	doc, err := toDocument(resp)
	if err != nil {
		return nil, err
	}

	// Text() is a method on the SDK type, so it never survives the JSON round trip
	if text := resp.Text(); text != "" {
		doc["text"] = text
	}

	return doc, nil
}
