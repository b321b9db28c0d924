package translation

import (
	"context"
	"fmt"
	"html"
	"os"

	translate "cloud.google.com/go/translate"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"google.golang.org/api/option"

	"github.com/satriahrh/codeswitch/domain/repositories"
)

type translationClient interface {
	Translate(ctx context.Context, inputs []string, target language.Tag, opts *translate.Options) ([]translate.Translation, error)
	Close() error
}

// GoogleTranslator implements Translator with Cloud Translation (basic edition).
// It detects the source language itself, which copes with mixed input less
// gracefully than the prompt-based translator.
type GoogleTranslator struct {
	client translationClient
	logger *zap.Logger
}

var _ repositories.Translator = (*GoogleTranslator)(nil)

// NewGoogleTranslator creates a translation client. GOOGLE_TRANSLATE_API_KEY is
// used when set, application default credentials otherwise.
func NewGoogleTranslator(ctx context.Context, logger *zap.Logger) (*GoogleTranslator, error) {
	var opts []option.ClientOption
	if apiKey := os.Getenv("GOOGLE_TRANSLATE_API_KEY"); apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create translate client: %w", err)
	}

	return &GoogleTranslator{client: client, logger: logger}, nil
}

// Translate implements repositories.Translator
func (g *GoogleTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	target, err := language.Parse(targetLanguage)
	if err != nil {
		return "", fmt.Errorf("invalid target language: %w", err)
	}

	translations, err := g.client.Translate(ctx, []string{text}, target, &translate.Options{
		Format: translate.Text,
	})
	if err != nil {
		return "", err
	}

	if len(translations) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	g.logger.Debug("Cloud translation completed",
		zap.String("source", translations[0].Source.String()),
		zap.String("target", target.String()))

	// the API escapes entities even in text mode for some language pairs
	return html.UnescapeString(translations[0].Text), nil
}

// Close releases the underlying client
func (g *GoogleTranslator) Close() error {
	return g.client.Close()
}
