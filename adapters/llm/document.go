package llm

import (
	"encoding/json"
	"fmt"

	"github.com/satriahrh/codeswitch/domain/repositories"
)

// toDocument re-encodes an SDK response as a generic JSON document
func toDocument(resp any) (repositories.GeneratedContent, error) {
	raw, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to encode model response: %w", err)
	}

	doc := repositories.GeneratedContent{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode model response: %w", err)
	}
	return doc, nil
}
