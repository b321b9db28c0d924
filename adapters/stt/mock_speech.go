package stt

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/satriahrh/codeswitch/domain/repositories"
)

// MockSpeechToText is a placeholder implementation for speech recognition
type MockSpeechToText struct {
	logger *zap.Logger
}

// NewMockSpeechToText creates a new mock speech-to-text service
func NewMockSpeechToText(logger *zap.Logger) repositories.SpeechToText {
	return &MockSpeechToText{
		logger: logger,
	}
}

// Recognize implements repositories.SpeechToText
func (s *MockSpeechToText) Recognize(ctx context.Context, audio []byte, config repositories.AudioConfig) (*repositories.Recognition, error) {
	s.logger.Info("Processing mock speech-to-text",
		zap.Int("audioSize", len(audio)),
		zap.Int("sampleRateHertz", config.SampleRateHertz),
		zap.String("encoding", config.Encoding))

	if len(audio) == 0 {
		return nil, fmt.Errorf("no audio data received")
	}

	// Mock transcription based on audio size
	var segment repositories.TranscriptSegment
	switch {
	case len(audio) > 10000:
		segment = repositories.TranscriptSegment{Transcript: "我们今天 meeting 的 agenda 是什么?", Confidence: 0.87, LanguageCode: "cmn-hans-cn"}
	case len(audio) > 1000:
		segment = repositories.TranscriptSegment{Transcript: "Let's grab lunch 一起.", Confidence: 0.91, LanguageCode: "en-us"}
	default:
		segment = repositories.TranscriptSegment{Transcript: "Hello", Confidence: 0.95, LanguageCode: "en-us"}
	}

	raw, err := json.Marshal(map[string]any{
		"results": []any{
			map[string]any{
				"alternatives": []any{
					map[string]any{"transcript": segment.Transcript, "confidence": segment.Confidence},
				},
				"languageCode": segment.LanguageCode,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return &repositories.Recognition{
		Raw:      raw,
		Segments: []repositories.TranscriptSegment{segment},
	}, nil
}
