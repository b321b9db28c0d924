package repositories

import "context"

// LargeLanguageModel abstracts any text-generation provider
type LargeLanguageModel interface {
	// GenerateContent sends a single prompt and returns the provider response
	GenerateContent(ctx context.Context, prompt string) (GeneratedContent, error)
}

// GeneratedContent is a provider response decoded into a generic JSON document.
// Providers disagree on where the generated text lives, so callers look it up
// by path instead of depending on one SDK type.
type GeneratedContent map[string]any
