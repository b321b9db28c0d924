package repositories

import "context"

// Translator turns text into the target language
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}
