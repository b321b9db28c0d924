package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/satriahrh/codeswitch/domain/repositories"
)

type stubSpeechToText struct {
	config repositories.AudioConfig
	audio  []byte
	result *repositories.Recognition
}

func (s *stubSpeechToText) Recognize(ctx context.Context, audio []byte, config repositories.AudioConfig) (*repositories.Recognition, error) {
	s.audio = audio
	s.config = config
	return s.result, nil
}

func TestBuildAudioConfig_Defaults(t *testing.T) {
	config := BuildAudioConfig(RecognitionOptions{})

	if config.Encoding != "LINEAR16" {
		t.Errorf("Expected LINEAR16, got %s", config.Encoding)
	}
	if config.SampleRateHertz != 44100 {
		t.Errorf("Expected 44100, got %d", config.SampleRateHertz)
	}
	if config.LanguageCode != "en-US" {
		t.Errorf("Expected en-US, got %s", config.LanguageCode)
	}
	if !config.EnableAutomaticPunctuation {
		t.Error("Expected automatic punctuation to default to true")
	}
}

func TestBuildAudioConfig_Overrides(t *testing.T) {
	off := false
	config := BuildAudioConfig(RecognitionOptions{
		Encoding:                   "WEBM_OPUS",
		SampleRateHertz:            48000,
		LanguageCode:               "en-GB",
		EnableAutomaticPunctuation: &off,
	})

	if config.Encoding != "WEBM_OPUS" || config.SampleRateHertz != 48000 || config.LanguageCode != "en-GB" {
		t.Errorf("Expected overrides to be kept, got %+v", config)
	}
	if config.EnableAutomaticPunctuation {
		t.Error("Expected explicit false punctuation to be kept")
	}
}

func TestBuildAudioConfig_AlwaysAddsChinese(t *testing.T) {
	inputs := []RecognitionOptions{
		{},
		{LanguageCode: "zh-CN"},
		{LanguageCode: "ja-JP", Encoding: "FLAC"},
	}

	for _, in := range inputs {
		config := BuildAudioConfig(in)
		if len(config.AlternativeLanguageCodes) != 1 || config.AlternativeLanguageCodes[0] != "zh-CN" {
			t.Errorf("Expected [zh-CN] for %+v, got %v", in, config.AlternativeLanguageCodes)
		}
	}
}

func TestRecognitionService_Recognize(t *testing.T) {
	stt := &stubSpeechToText{result: &repositories.Recognition{Raw: json.RawMessage(`{"results":[]}`)}}
	service := NewRecognitionService(stt, zaptest.NewLogger(t))

	rec, err := service.Recognize(context.Background(), []byte{1, 2, 3}, RecognitionOptions{LanguageCode: "en-AU"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(rec.Raw) != `{"results":[]}` {
		t.Errorf("Expected raw response to pass through, got %s", rec.Raw)
	}
	if len(stt.audio) != 3 {
		t.Errorf("Expected 3 audio bytes, got %d", len(stt.audio))
	}
	if stt.config.LanguageCode != "en-AU" || stt.config.AlternativeLanguageCodes[0] != "zh-CN" {
		t.Errorf("Unexpected config sent to recognizer: %+v", stt.config)
	}
}

func TestNormalizeTranscript(t *testing.T) {
	rec := &repositories.Recognition{
		Segments: []repositories.TranscriptSegment{
			{Transcript: "hello ", Confidence: 0.9, LanguageCode: "en-us"},
			{Transcript: "", Confidence: 0},
			{Transcript: "你好", Confidence: 0.8, LanguageCode: "cmn-hans-cn"},
		},
	}

	got := NormalizeTranscript(rec)
	if got.Transcript != "hello 你好" {
		t.Errorf("Expected joined transcript, got %q", got.Transcript)
	}
	if len(got.Results) != 3 {
		t.Errorf("Expected 3 results, got %d", len(got.Results))
	}

	empty := NormalizeTranscript(nil)
	if empty.Transcript != "" || empty.Results == nil {
		t.Errorf("Expected empty transcript with non-nil results, got %+v", empty)
	}
}
