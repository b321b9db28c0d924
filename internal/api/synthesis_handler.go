package api

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/codeswitch/usecase"
)

// SynthesizeSpeech handles POST /text-to-speech
func (h *Handler) SynthesizeSpeech(c echo.Context) error {
	var req SynthesisRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("Failed to bind synthesis request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing text"})
	}

	audio, err := h.synthesis.Synthesize(c.Request().Context(), req.Text, req.Voice, req.AudioConfig)
	switch {
	case errors.Is(err, usecase.ErrMissingText):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing text"})
	case errors.Is(err, usecase.ErrNoAudio):
		h.logger.Error("Text-to-speech returned no audio")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "No audio returned from TTS"})
	case err != nil:
		h.logger.Error("Text-to-speech failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Text-to-speech failed",
			Details: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, SynthesisResponse{
		AudioContent: base64.StdEncoding.EncodeToString(audio),
	})
}
