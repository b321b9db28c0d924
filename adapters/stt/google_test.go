package stt

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"cloud.google.com/go/speech/apiv1p1beta1/speechpb"
	"github.com/googleapis/gax-go/v2"
	"go.uber.org/zap/zaptest"

	"github.com/satriahrh/codeswitch/domain/repositories"
)

var _ repositories.SpeechToText = &GoogleSpeechToText{}

type fakeRecognizer struct {
	req  *speechpb.RecognizeRequest
	resp *speechpb.RecognizeResponse
	err  error
}

func (f *fakeRecognizer) Recognize(ctx context.Context, req *speechpb.RecognizeRequest, opts ...gax.CallOption) (*speechpb.RecognizeResponse, error) {
	f.req = req
	return f.resp, f.err
}

func (f *fakeRecognizer) Close() error { return nil }

func TestGoogleSpeechToText_Recognize(t *testing.T) {
	fake := &fakeRecognizer{
		resp: &speechpb.RecognizeResponse{
			Results: []*speechpb.SpeechRecognitionResult{
				{
					Alternatives: []*speechpb.SpeechRecognitionAlternative{
						{Transcript: "我想喝 coffee", Confidence: 0.82},
					},
					LanguageCode: "cmn-hans-cn",
				},
				{Alternatives: nil},
			},
		},
	}
	stt := &GoogleSpeechToText{client: fake, logger: zaptest.NewLogger(t)}

	rec, err := stt.Recognize(context.Background(), []byte("pcm-bytes"), repositories.AudioConfig{
		Encoding:                   "LINEAR16",
		SampleRateHertz:            44100,
		LanguageCode:               "en-US",
		AlternativeLanguageCodes:   []string{"zh-CN"},
		EnableAutomaticPunctuation: true,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	cfg := fake.req.GetConfig()
	if cfg.GetEncoding() != speechpb.RecognitionConfig_LINEAR16 {
		t.Errorf("Expected LINEAR16, got %v", cfg.GetEncoding())
	}
	if cfg.GetSampleRateHertz() != 44100 {
		t.Errorf("Expected 44100, got %d", cfg.GetSampleRateHertz())
	}
	if alts := cfg.GetAlternativeLanguageCodes(); len(alts) != 1 || alts[0] != "zh-CN" {
		t.Errorf("Expected zh-CN alternative, got %v", alts)
	}
	if !cfg.GetEnableAutomaticPunctuation() {
		t.Error("Expected automatic punctuation")
	}
	if string(fake.req.GetAudio().GetContent()) != "pcm-bytes" {
		t.Errorf("Expected audio content to be forwarded, got %q", fake.req.GetAudio().GetContent())
	}

	var raw map[string]any
	if err := json.Unmarshal(rec.Raw, &raw); err != nil {
		t.Fatalf("Expected raw JSON, got error: %v", err)
	}
	if _, ok := raw["results"]; !ok {
		t.Errorf("Expected results in raw response, got %s", rec.Raw)
	}

	if len(rec.Segments) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(rec.Segments))
	}
	if rec.Segments[0].Transcript != "我想喝 coffee" || rec.Segments[0].LanguageCode != "cmn-hans-cn" {
		t.Errorf("Unexpected segment: %+v", rec.Segments[0])
	}
}

func TestGoogleSpeechToText_Recognize_Errors(t *testing.T) {
	stt := &GoogleSpeechToText{client: &fakeRecognizer{err: errors.New("permission denied")}, logger: zaptest.NewLogger(t)}

	if _, err := stt.Recognize(context.Background(), []byte("x"), repositories.AudioConfig{Encoding: "LINEAR16"}); err == nil {
		t.Error("Expected upstream error")
	}

	if _, err := stt.Recognize(context.Background(), []byte("x"), repositories.AudioConfig{Encoding: "AAC"}); err == nil {
		t.Error("Expected unsupported encoding error")
	}
}

func TestGetAudioEncoding(t *testing.T) {
	tests := []struct {
		input   string
		want    speechpb.RecognitionConfig_AudioEncoding
		wantErr bool
	}{
		{input: "LINEAR16", want: speechpb.RecognitionConfig_LINEAR16},
		{input: "WAV", want: speechpb.RecognitionConfig_LINEAR16},
		{input: "FLAC", want: speechpb.RecognitionConfig_FLAC},
		{input: "MP3", want: speechpb.RecognitionConfig_MP3},
		{input: "WEBM_OPUS", want: speechpb.RecognitionConfig_WEBM_OPUS},
		{input: "linear16", want: speechpb.RecognitionConfig_ENCODING_UNSPECIFIED, wantErr: true},
		{input: "", want: speechpb.RecognitionConfig_ENCODING_UNSPECIFIED, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := getAudioEncoding(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("getAudioEncoding() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMockSpeechToText_Recognize(t *testing.T) {
	mock := NewMockSpeechToText(zaptest.NewLogger(t))

	rec, err := mock.Recognize(context.Background(), make([]byte, 2000), repositories.AudioConfig{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(rec.Segments) != 1 || rec.Segments[0].Transcript == "" {
		t.Errorf("Expected one transcript segment, got %+v", rec.Segments)
	}

	if _, err := mock.Recognize(context.Background(), nil, repositories.AudioConfig{}); err == nil {
		t.Error("Expected error for empty audio")
	}
}
