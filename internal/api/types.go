package api

import (
	"encoding/json"

	"github.com/satriahrh/codeswitch/domain/repositories"
)

// TranslationRequest fields stay untyped so wrong JSON types are reported
// as validation errors rather than bind errors
type TranslationRequest struct {
	Text           any `json:"text"`
	TargetLanguage any `json:"targetLanguage"`
}

// TranslationResponse represents the response payload for translation
type TranslationResponse struct {
	Translation string `json:"translation"`
}

// RecognitionRequest carries base64 audio content in audioUrl
type RecognitionRequest struct {
	AudioURL any             `json:"audioUrl"`
	Config   json.RawMessage `json:"config"`
}

// SynthesisRequest represents the request payload for speech synthesis
type SynthesisRequest struct {
	Text        string                          `json:"text"`
	Voice       *repositories.VoiceSelection    `json:"voice"`
	AudioConfig *repositories.AudioOutputConfig `json:"audioConfig"`
}

// SynthesisResponse represents the response payload for speech synthesis
type SynthesisResponse struct {
	AudioContent string `json:"audioContent"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}
