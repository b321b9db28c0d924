package repositories

import "context"

// TextToSpeech abstracts speech synthesis services
type TextToSpeech interface {
	// Synthesize converts text into a complete encoded audio clip
	Synthesize(ctx context.Context, text string, voice VoiceSelection, audio AudioOutputConfig) ([]byte, error)
}

// VoiceSelection picks the voice used for synthesis
type VoiceSelection struct {
	LanguageCode string `json:"languageCode"`
	SSMLGender   string `json:"ssmlGender"`
	Name         string `json:"name,omitempty"`
}

// AudioOutputConfig describes the encoded audio returned by synthesis
type AudioOutputConfig struct {
	AudioEncoding string `json:"audioEncoding"`
}
