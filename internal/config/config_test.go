package config

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "BODY_LIMIT", "AUTH_JWT_SECRET", "RATE_LIMIT_PER_MINUTE",
		"TRANSLATION_PROVIDER", "STT_PROVIDER", "TTS_PROVIDER", "TTS_ROUTE_ENABLED",
	} {
		t.Setenv(key, "")
	}
}

func TestNewServerConfigFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	config, err := NewServerConfigFromEnv(zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if config.Port != "4000" {
		t.Errorf("Expected port 4000, got %s", config.Port)
	}
	if config.BodyLimit != "25M" {
		t.Errorf("Expected body limit 25M, got %s", config.BodyLimit)
	}
	if config.RateLimitPerMinute != 0 {
		t.Errorf("Expected rate limit disabled, got %d", config.RateLimitPerMinute)
	}
	if config.TranslationProvider != ProviderGemini {
		t.Errorf("Expected gemini provider, got %s", config.TranslationProvider)
	}
	if config.STTProvider != ProviderGoogle || config.TTSProvider != ProviderGoogle {
		t.Errorf("Expected google speech providers, got %s/%s", config.STTProvider, config.TTSProvider)
	}
	if config.TTSRouteEnabled {
		t.Error("Expected text-to-speech route to be disabled by default")
	}
}

func TestNewServerConfigFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "30")
	t.Setenv("TRANSLATION_PROVIDER", "OpenAI")
	t.Setenv("STT_PROVIDER", "mock")
	t.Setenv("TTS_PROVIDER", "elevenlabs")
	t.Setenv("TTS_ROUTE_ENABLED", "true")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")

	config, err := NewServerConfigFromEnv(zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if config.Port != "8080" {
		t.Errorf("Expected port 8080, got %s", config.Port)
	}
	if config.RateLimitPerMinute != 30 {
		t.Errorf("Expected rate limit 30, got %d", config.RateLimitPerMinute)
	}
	if config.TranslationProvider != ProviderOpenAI {
		t.Errorf("Expected openai provider, got %s", config.TranslationProvider)
	}
	if config.STTProvider != ProviderMock {
		t.Errorf("Expected mock STT provider, got %s", config.STTProvider)
	}
	if config.TTSProvider != ProviderElevenLabs {
		t.Errorf("Expected elevenlabs TTS provider, got %s", config.TTSProvider)
	}
	if !config.TTSRouteEnabled {
		t.Error("Expected text-to-speech route to be enabled")
	}
	if config.AuthJWTSecret != "s3cret" {
		t.Errorf("Expected JWT secret to be loaded, got %q", config.AuthJWTSecret)
	}
}

func TestNewServerConfigFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "rate limit not a number", key: "RATE_LIMIT_PER_MINUTE", value: "many"},
		{name: "negative rate limit", key: "RATE_LIMIT_PER_MINUTE", value: "-1"},
		{name: "bad route toggle", key: "TTS_ROUTE_ENABLED", value: "maybe"},
		{name: "unknown translation provider", key: "TRANSLATION_PROVIDER", value: "babelfish"},
		{name: "unknown stt provider", key: "STT_PROVIDER", value: "whisper"},
		{name: "unknown tts provider", key: "TTS_PROVIDER", value: "espeak"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := NewServerConfigFromEnv(zaptest.NewLogger(t)); err == nil {
				t.Errorf("Expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
