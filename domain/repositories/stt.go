package repositories

import (
	"context"
	"encoding/json"
)

// SpeechToText abstracts speech recognition services
type SpeechToText interface {
	// Recognize runs a synchronous recognition over the whole audio payload
	Recognize(ctx context.Context, audio []byte, config AudioConfig) (*Recognition, error)
}

// AudioConfig represents audio configuration for speech recognition
type AudioConfig struct {
	Encoding                   string   `json:"encoding"`
	SampleRateHertz            int      `json:"sampleRateHertz"`
	LanguageCode               string   `json:"languageCode"`
	AlternativeLanguageCodes   []string `json:"alternativeLanguageCodes"`
	EnableAutomaticPunctuation bool     `json:"enableAutomaticPunctuation"`
}

// Recognition holds the provider response both as received and as a flat
// list of transcript segments.
type Recognition struct {
	Raw      json.RawMessage
	Segments []TranscriptSegment
}

// TranscriptSegment is the best alternative of one recognition result
type TranscriptSegment struct {
	Transcript   string  `json:"transcript"`
	Confidence   float32 `json:"confidence"`
	LanguageCode string  `json:"languageCode,omitempty"`
}
