package usecase

import (
	"strings"

	"github.com/satriahrh/codeswitch/domain/repositories"
)

// Extractor tries to pull generated text out of one known response shape.
// Extract must be pure: it only reads the document.
type Extractor struct {
	Shape   string
	Extract func(doc repositories.GeneratedContent) (string, bool)
}

// DefaultExtractors lists the known response shapes in lookup order.
var DefaultExtractors = []Extractor{
	{Shape: "text", Extract: field("text")},
	{Shape: "output[0].content", Extract: firstItemField("output", "content")},
	{Shape: "output[0].text", Extract: firstItemField("output", "text")},
	{Shape: "outputs[0].content", Extract: firstItemField("outputs", "content")},
	{Shape: "candidates[0].content.parts", Extract: candidateParts},
	{Shape: "choices[0].message.content", Extract: choiceMessage},
}

// ExtractText runs the extractors in order and returns the first non-blank
// value together with the shape it came from.
func ExtractText(doc repositories.GeneratedContent, extractors []Extractor) (text, shape string, ok bool) {
	if doc == nil {
		return "", "", false
	}
	for _, e := range extractors {
		if text, ok := e.Extract(doc); ok {
			return text, e.Shape, true
		}
	}
	return "", "", false
}

func field(key string) func(repositories.GeneratedContent) (string, bool) {
	return func(doc repositories.GeneratedContent) (string, bool) {
		return asText(doc[key])
	}
}

func firstItemField(listKey, key string) func(repositories.GeneratedContent) (string, bool) {
	return func(doc repositories.GeneratedContent) (string, bool) {
		item, ok := firstItem(doc[listKey])
		if !ok {
			return "", false
		}
		return asText(item[key])
	}
}

func candidateParts(doc repositories.GeneratedContent) (string, bool) {
	candidate, ok := firstItem(doc["candidates"])
	if !ok {
		return "", false
	}
	content, ok := candidate["content"].(map[string]any)
	if !ok {
		return "", false
	}
	return asText(content["parts"])
}

func choiceMessage(doc repositories.GeneratedContent) (string, bool) {
	choice, ok := firstItem(doc["choices"])
	if !ok {
		return "", false
	}
	message, ok := choice["message"].(map[string]any)
	if !ok {
		return "", false
	}
	return asText(message["content"])
}

func firstItem(v any) (map[string]any, bool) {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil, false
	}
	item, ok := list[0].(map[string]any)
	return item, ok
}

// asText accepts a plain string or a list of parts carrying a "text" field.
func asText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) == "" {
			return "", false
		}
		return t, true
	case []any:
		var sb strings.Builder
		for _, p := range t {
			if part, ok := p.(map[string]any); ok {
				if s, ok := part["text"].(string); ok {
					sb.WriteString(s)
				}
			}
		}
		return asText(sb.String())
	default:
		return "", false
	}
}
