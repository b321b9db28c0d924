package api

import (
	"go.uber.org/zap"

	"github.com/satriahrh/codeswitch/domain/repositories"
	"github.com/satriahrh/codeswitch/usecase"
)

// Handler serves the translation and speech routes
type Handler struct {
	translator  repositories.Translator
	recognition *usecase.RecognitionService
	synthesis   *usecase.SynthesisService
	logger      *zap.Logger
}

// NewHandler creates a handler. synthesis may be nil when the
// text-to-speech route is not mounted.
func NewHandler(translator repositories.Translator, recognition *usecase.RecognitionService, synthesis *usecase.SynthesisService, logger *zap.Logger) *Handler {
	return &Handler{
		translator:  translator,
		recognition: recognition,
		synthesis:   synthesis,
		logger:      logger,
	}
}
