// Package config loads the server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	ProviderGemini          = "gemini"
	ProviderOpenAI          = "openai"
	ProviderGoogleTranslate = "google-translate"
	ProviderGoogle          = "google"
	ProviderElevenLabs      = "elevenlabs"
	ProviderMock            = "mock"

	defaultPort      = "4000"
	defaultBodyLimit = "25M"
)

// ServerConfig holds the HTTP server and provider selection settings
type ServerConfig struct {
	Port               string
	BodyLimit          string
	RateLimitPerMinute int
	AuthJWTSecret      string

	TranslationProvider string
	STTProvider         string
	TTSProvider         string
	TTSRouteEnabled     bool
}

// ValidateServerConfig checks provider names and numeric limits
func ValidateServerConfig(config ServerConfig) error {
	switch config.TranslationProvider {
	case ProviderGemini, ProviderOpenAI, ProviderGoogleTranslate, ProviderMock:
	default:
		return fmt.Errorf("unknown TRANSLATION_PROVIDER %q", config.TranslationProvider)
	}

	switch config.STTProvider {
	case ProviderGoogle, ProviderMock:
	default:
		return fmt.Errorf("unknown STT_PROVIDER %q", config.STTProvider)
	}

	switch config.TTSProvider {
	case ProviderGoogle, ProviderElevenLabs, ProviderMock:
	default:
		return fmt.Errorf("unknown TTS_PROVIDER %q", config.TTSProvider)
	}

	if config.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}

	return nil
}

// NewServerConfigFromEnv reads the server settings, applying defaults
func NewServerConfigFromEnv(logger *zap.Logger) (ServerConfig, error) {
	config := ServerConfig{
		Port:                envOrDefault("PORT", defaultPort),
		BodyLimit:           envOrDefault("BODY_LIMIT", defaultBodyLimit),
		AuthJWTSecret:       os.Getenv("AUTH_JWT_SECRET"),
		TranslationProvider: strings.ToLower(envOrDefault("TRANSLATION_PROVIDER", ProviderGemini)),
		STTProvider:         strings.ToLower(envOrDefault("STT_PROVIDER", ProviderGoogle)),
		TTSProvider:         strings.ToLower(envOrDefault("TTS_PROVIDER", ProviderGoogle)),
	}

	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE: %w", err)
		}
		config.RateLimitPerMinute = limit
	}

	if v := os.Getenv("TTS_ROUTE_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("invalid TTS_ROUTE_ENABLED: %w", err)
		}
		config.TTSRouteEnabled = enabled
	}

	if err := ValidateServerConfig(config); err != nil {
		return ServerConfig{}, err
	}

	logger.Info("Server configuration loaded",
		zap.String("port", config.Port),
		zap.String("bodyLimit", config.BodyLimit),
		zap.Int("rateLimitPerMinute", config.RateLimitPerMinute),
		zap.Bool("authEnabled", config.AuthJWTSecret != ""),
		zap.String("translationProvider", config.TranslationProvider),
		zap.String("sttProvider", config.STTProvider),
		zap.String("ttsProvider", config.TTSProvider),
		zap.Bool("ttsRouteEnabled", config.TTSRouteEnabled))

	return config, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
