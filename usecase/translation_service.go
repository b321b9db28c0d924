package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/satriahrh/codeswitch/domain/repositories"
)

const (
	// MaxTextLength bounds the input size in characters
	MaxTextLength = 50_000
	// DefaultTargetLanguage is used when the caller does not pick one
	DefaultTargetLanguage = "en"
)

// ErrNoTextReturned means the model answered but no known shape carried text
var ErrNoTextReturned = errors.New("no text returned from language model")

// TranslationService translates code-switched text with a language model
type TranslationService struct {
	llm        repositories.LargeLanguageModel
	extractors []Extractor
	logger     *zap.Logger
}

var _ repositories.Translator = (*TranslationService)(nil)

// NewTranslationService creates a translation service using DefaultExtractors
func NewTranslationService(llm repositories.LargeLanguageModel, logger *zap.Logger) *TranslationService {
	return &TranslationService{
		llm:        llm,
		extractors: DefaultExtractors,
		logger:     logger,
	}
}

// Translate prompts the model and returns the trimmed translation.
// Model errors are returned as is so their message reaches the caller.
func (s *TranslationService) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if targetLanguage == "" {
		targetLanguage = DefaultTargetLanguage
	}

	content, err := s.llm.GenerateContent(ctx, BuildTranslationPrompt(text, targetLanguage))
	if err != nil {
		return "", err
	}

	translation, shape, ok := ExtractText(content, s.extractors)
	if !ok {
		s.logger.Warn("No usable text in model response", zap.Int("fields", len(content)))
		return "", ErrNoTextReturned
	}

	s.logger.Debug("Translation extracted",
		zap.String("shape", shape),
		zap.String("targetLanguage", targetLanguage))

	return strings.TrimSpace(translation), nil
}
