package tts

import (
	"bytes"
	"context"
	"encoding/binary"

	"go.uber.org/zap"

	"github.com/satriahrh/codeswitch/domain/repositories"
)

const (
	mockSampleRate     = 16000
	mockSamplesPerChar = 800 // 50ms of audio per character
)

// MockTextToSpeech is a placeholder implementation for text-to-speech.
// It returns silent 16-bit mono WAV audio whose length follows the text.
type MockTextToSpeech struct {
	logger *zap.Logger
}

// NewMockTextToSpeech creates a new mock text-to-speech service
func NewMockTextToSpeech(logger *zap.Logger) repositories.TextToSpeech {
	return &MockTextToSpeech{
		logger: logger,
	}
}

// Synthesize implements repositories.TextToSpeech
func (t *MockTextToSpeech) Synthesize(ctx context.Context, text string, voice repositories.VoiceSelection, audio repositories.AudioOutputConfig) ([]byte, error) {
	t.logger.Info("Processing mock text-to-speech",
		zap.String("text", text),
		zap.String("languageCode", voice.LanguageCode))

	pcm := make([]byte, len([]rune(text))*mockSamplesPerChar*2)
	return silentWAV(pcm), nil
}

// silentWAV wraps 16-bit mono PCM in a canonical 44-byte RIFF header
func silentWAV(pcm []byte) []byte {
	var buf bytes.Buffer
	le := binary.LittleEndian

	buf.WriteString("RIFF")
	binary.Write(&buf, le, uint32(36+len(pcm)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, le, uint32(16))             // fmt chunk size
	binary.Write(&buf, le, uint16(1))              // PCM
	binary.Write(&buf, le, uint16(1))              // mono
	binary.Write(&buf, le, uint32(mockSampleRate)) // sample rate
	binary.Write(&buf, le, uint32(mockSampleRate*2))
	binary.Write(&buf, le, uint16(2))  // block align
	binary.Write(&buf, le, uint16(16)) // bits per sample
	buf.WriteString("data")
	binary.Write(&buf, le, uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes()
}
