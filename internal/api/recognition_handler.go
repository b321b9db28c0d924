package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/codeswitch/usecase"
)

// FormatTranscript selects the normalized transcript response
const FormatTranscript = "transcript"

// RecognizeSpeech handles POST /speech-to-text. Validation failures and
// capability errors are answered in plain text.
func (h *Handler) RecognizeSpeech(c echo.Context) error {
	var req RecognitionRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("Failed to bind recognition request", zap.Error(err))
		return c.String(http.StatusBadRequest, "Invalid request format.")
	}

	audioURL, ok := req.AudioURL.(string)
	if !ok || audioURL == "" {
		return c.String(http.StatusUnprocessableEntity, "No audio URL was provided.")
	}

	if len(req.Config) == 0 || bytes.Equal(bytes.TrimSpace(req.Config), []byte("null")) {
		return c.String(http.StatusUnprocessableEntity, "No audio config was provided.")
	}

	var opts usecase.RecognitionOptions
	if err := json.Unmarshal(req.Config, &opts); err != nil {
		return c.String(http.StatusUnprocessableEntity, "Invalid audio config.")
	}

	audio, err := base64.StdEncoding.DecodeString(audioURL)
	if err != nil {
		return c.String(http.StatusUnprocessableEntity, "Audio content is not valid base64.")
	}

	recognition, err := h.recognition.Recognize(c.Request().Context(), audio, opts)
	if err != nil {
		h.logger.Error("Speech recognition failed", zap.Error(err))
		return c.String(http.StatusInternalServerError, err.Error())
	}

	if c.QueryParam("format") == FormatTranscript {
		return c.JSON(http.StatusOK, usecase.NormalizeTranscript(recognition))
	}
	return c.JSONBlob(http.StatusOK, recognition.Raw)
}
