package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/satriahrh/codeswitch/domain/repositories"
)

const (
	DefaultEncoding        = "LINEAR16"
	DefaultSampleRateHertz = 44100
	DefaultLanguageCode    = "en-US"
	// AlternativeLanguageCode is always recognized next to the primary language
	AlternativeLanguageCode = "zh-CN"
)

// RecognitionOptions is the caller-supplied part of the recognition config.
// Zero values fall back to the defaults above.
type RecognitionOptions struct {
	Encoding                   string `json:"encoding"`
	SampleRateHertz            int    `json:"sampleRateHertz"`
	LanguageCode               string `json:"languageCode"`
	EnableAutomaticPunctuation *bool  `json:"enableAutomaticPunctuation"`
}

// BuildAudioConfig applies defaults and the fixed alternative language
func BuildAudioConfig(opts RecognitionOptions) repositories.AudioConfig {
	config := repositories.AudioConfig{
		Encoding:                   opts.Encoding,
		SampleRateHertz:            opts.SampleRateHertz,
		LanguageCode:               opts.LanguageCode,
		AlternativeLanguageCodes:   []string{AlternativeLanguageCode},
		EnableAutomaticPunctuation: true,
	}
	if config.Encoding == "" {
		config.Encoding = DefaultEncoding
	}
	if config.SampleRateHertz == 0 {
		config.SampleRateHertz = DefaultSampleRateHertz
	}
	if config.LanguageCode == "" {
		config.LanguageCode = DefaultLanguageCode
	}
	if opts.EnableAutomaticPunctuation != nil {
		config.EnableAutomaticPunctuation = *opts.EnableAutomaticPunctuation
	}
	return config
}

// RecognitionService forwards audio to the speech recognition capability
type RecognitionService struct {
	stt    repositories.SpeechToText
	logger *zap.Logger
}

// NewRecognitionService creates a new recognition service
func NewRecognitionService(stt repositories.SpeechToText, logger *zap.Logger) *RecognitionService {
	return &RecognitionService{stt: stt, logger: logger}
}

// Recognize runs one synchronous recognition
func (s *RecognitionService) Recognize(ctx context.Context, audio []byte, opts RecognitionOptions) (*repositories.Recognition, error) {
	config := BuildAudioConfig(opts)

	s.logger.Info("Recognizing speech",
		zap.Int("audioSize", len(audio)),
		zap.String("encoding", config.Encoding),
		zap.Int("sampleRateHertz", config.SampleRateHertz),
		zap.String("languageCode", config.LanguageCode))

	return s.stt.Recognize(ctx, audio, config)
}

// NormalizedTranscript is the provider-independent view of a recognition
type NormalizedTranscript struct {
	Transcript string                           `json:"transcript"`
	Results    []repositories.TranscriptSegment `json:"results"`
}

// NormalizeTranscript joins the segment transcripts in order
func NormalizeTranscript(rec *repositories.Recognition) NormalizedTranscript {
	out := NormalizedTranscript{Results: []repositories.TranscriptSegment{}}
	if rec == nil {
		return out
	}

	parts := make([]string, 0, len(rec.Segments))
	for _, seg := range rec.Segments {
		out.Results = append(out.Results, seg)
		if t := strings.TrimSpace(seg.Transcript); t != "" {
			parts = append(parts, t)
		}
	}
	out.Transcript = strings.Join(parts, " ")
	return out
}
