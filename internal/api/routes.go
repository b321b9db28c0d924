package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/codeswitch/internal/auth"
)

// RouteOptions toggles the optional parts of the API
type RouteOptions struct {
	TTSRouteEnabled    bool
	RateLimitPerMinute int
	// Tokens enables bearer authentication when set
	Tokens *auth.TokenManager
}

// InitRoutes initializes all API routes
func InitRoutes(e *echo.Echo, h *Handler, opts RouteOptions, logger *zap.Logger) {
	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "codeswitch",
		})
	})

	guards := []echo.MiddlewareFunc{
		RateLimitByIP(opts.RateLimitPerMinute),
		JWTAuth(opts.Tokens, logger),
	}

	e.POST("/translate", h.Translate, guards...)
	e.POST("/speech-to-text", h.RecognizeSpeech, guards...)

	if opts.TTSRouteEnabled {
		e.POST("/text-to-speech", h.SynthesizeSpeech, guards...)
		logger.Info("Text-to-speech route enabled")
	}
}
