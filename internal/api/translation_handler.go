package api

import (
	"net/http"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/codeswitch/usecase"
)

const errTextRequired = "`text` (string) is required in the request body"

// Translate handles POST /translate
func (h *Handler) Translate(c echo.Context) error {
	var req TranslationRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("Failed to bind translation request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request format",
		})
	}

	text, ok := req.Text.(string)
	if !ok || text == "" {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: errTextRequired})
	}

	if utf8.RuneCountInString(text) > usecase.MaxTextLength {
		return c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Input too large"})
	}

	target, ok := req.TargetLanguage.(string)
	if !ok || target == "" {
		target = usecase.DefaultTargetLanguage
	}

	translation, err := h.translator.Translate(c.Request().Context(), text, target)
	if err != nil {
		h.logger.Error("Translation failed",
			zap.String("targetLanguage", target),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, TranslationResponse{Translation: translation})
}
