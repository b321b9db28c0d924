package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/satriahrh/codeswitch/domain/repositories"
)

var (
	// ErrMissingText is returned for blank synthesis input
	ErrMissingText = errors.New("missing text")
	// ErrNoAudio means the synthesizer succeeded without producing audio
	ErrNoAudio = errors.New("no audio returned from TTS")
)

// DefaultVoice and DefaultAudioOutput apply when the request leaves them out
var (
	DefaultVoice       = repositories.VoiceSelection{LanguageCode: "en-US", SSMLGender: "NEUTRAL"}
	DefaultAudioOutput = repositories.AudioOutputConfig{AudioEncoding: "MP3"}
)

// SynthesisService converts text into an encoded audio clip
type SynthesisService struct {
	tts    repositories.TextToSpeech
	logger *zap.Logger
}

// NewSynthesisService creates a new synthesis service
func NewSynthesisService(tts repositories.TextToSpeech, logger *zap.Logger) *SynthesisService {
	return &SynthesisService{tts: tts, logger: logger}
}

// Synthesize validates the input, applies defaults and returns the audio bytes
func (s *SynthesisService) Synthesize(ctx context.Context, text string, voice *repositories.VoiceSelection, audio *repositories.AudioOutputConfig) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrMissingText
	}

	v := DefaultVoice
	if voice != nil {
		v = *voice
	}
	a := DefaultAudioOutput
	if audio != nil {
		a = *audio
	}

	content, err := s.tts.Synthesize(ctx, text, v, a)
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, ErrNoAudio
	}

	s.logger.Info("Speech synthesized",
		zap.Int("textLength", len(text)),
		zap.String("languageCode", v.LanguageCode),
		zap.String("audioEncoding", a.AudioEncoding),
		zap.Int("audioSize", len(content)))

	return content, nil
}
