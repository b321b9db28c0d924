package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/satriahrh/codeswitch/adapters/llm"
	"github.com/satriahrh/codeswitch/adapters/stt"
	"github.com/satriahrh/codeswitch/adapters/translation"
	"github.com/satriahrh/codeswitch/adapters/tts"
	"github.com/satriahrh/codeswitch/domain/repositories"
	"github.com/satriahrh/codeswitch/internal/api"
	"github.com/satriahrh/codeswitch/internal/auth"
	"github.com/satriahrh/codeswitch/internal/config"
	"github.com/satriahrh/codeswitch/usecase"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file loaded", zap.Error(err))
	}

	cfg, err := config.NewServerConfigFromEnv(logger)
	if err != nil {
		logger.Fatal("Invalid server configuration", zap.Error(err))
	}

	ctx := context.Background()
	var closers []io.Closer
	defer func() {
		for _, c := range closers {
			if err := c.Close(); err != nil {
				logger.Warn("Failed to close client", zap.Error(err))
			}
		}
	}()

	// Initialize adapters
	translator, err := newTranslator(ctx, cfg, logger, &closers)
	if err != nil {
		logger.Fatal("Failed to initialize translation provider", zap.Error(err))
	}

	speechToText, err := newSpeechToText(ctx, cfg, logger, &closers)
	if err != nil {
		logger.Fatal("Failed to initialize speech-to-text provider", zap.Error(err))
	}

	var synthesisService *usecase.SynthesisService
	if cfg.TTSRouteEnabled {
		textToSpeech, err := newTextToSpeech(ctx, cfg, logger, &closers)
		if err != nil {
			logger.Fatal("Failed to initialize text-to-speech provider", zap.Error(err))
		}
		synthesisService = usecase.NewSynthesisService(textToSpeech, logger)
	}

	var tokens *auth.TokenManager
	if cfg.AuthJWTSecret != "" {
		tokens, err = auth.NewTokenManager(cfg.AuthJWTSecret)
		if err != nil {
			logger.Fatal("Failed to initialize token manager", zap.Error(err))
		}
	}

	handler := api.NewHandler(
		translator,
		usecase.NewRecognitionService(speechToText, logger),
		synthesisService,
		logger,
	)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(api.RequestID())
	e.Use(api.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(cfg.BodyLimit))

	// Initialize API routes
	api.InitRoutes(e, handler, api.RouteOptions{
		TTSRouteEnabled:    cfg.TTSRouteEnabled,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		Tokens:             tokens,
	}, logger)

	// Graceful shutdown
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.String("port", cfg.Port))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func newTranslator(ctx context.Context, cfg config.ServerConfig, logger *zap.Logger, closers *[]io.Closer) (repositories.Translator, error) {
	switch cfg.TranslationProvider {
	case config.ProviderGemini:
		model, err := llm.NewGeminiLLM(ctx, llm.NewGeminiConfigFromEnv(), logger)
		if err != nil {
			return nil, err
		}
		return usecase.NewTranslationService(model, logger), nil
	case config.ProviderOpenAI:
		model, err := llm.NewOpenAILLM(llm.NewOpenAIConfigFromEnv(), logger)
		if err != nil {
			return nil, err
		}
		return usecase.NewTranslationService(model, logger), nil
	case config.ProviderGoogleTranslate:
		translator, err := translation.NewGoogleTranslator(ctx, logger)
		if err != nil {
			return nil, err
		}
		*closers = append(*closers, translator)
		return translator, nil
	case config.ProviderMock:
		return usecase.NewTranslationService(llm.NewMockGeminiClient(), logger), nil
	}
	return nil, fmt.Errorf("unknown translation provider %q", cfg.TranslationProvider)
}

func newSpeechToText(ctx context.Context, cfg config.ServerConfig, logger *zap.Logger, closers *[]io.Closer) (repositories.SpeechToText, error) {
	switch cfg.STTProvider {
	case config.ProviderGoogle:
		client, err := stt.NewGoogleSpeechToText(ctx, logger)
		if err != nil {
			return nil, err
		}
		*closers = append(*closers, client)
		return client, nil
	case config.ProviderMock:
		return stt.NewMockSpeechToText(logger), nil
	}
	return nil, fmt.Errorf("unknown speech-to-text provider %q", cfg.STTProvider)
}

func newTextToSpeech(ctx context.Context, cfg config.ServerConfig, logger *zap.Logger, closers *[]io.Closer) (repositories.TextToSpeech, error) {
	switch cfg.TTSProvider {
	case config.ProviderGoogle:
		client, err := tts.NewGoogleTTS(ctx, logger)
		if err != nil {
			return nil, err
		}
		*closers = append(*closers, client)
		return client, nil
	case config.ProviderElevenLabs:
		return tts.NewElevenLabsTTS(tts.NewElevenLabsConfigFromEnv(), logger)
	case config.ProviderMock:
		return tts.NewMockTextToSpeech(logger), nil
	}
	return nil, fmt.Errorf("unknown text-to-speech provider %q", cfg.TTSProvider)
}
