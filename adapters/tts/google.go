package tts

import (
	"context"
	"fmt"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/googleapis/gax-go/v2"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/satriahrh/codeswitch/domain/repositories"
)

type synthesizer interface {
	SynthesizeSpeech(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest, opts ...gax.CallOption) (*texttospeechpb.SynthesizeSpeechResponse, error)
	Close() error
}

// GoogleTTS implements TextToSpeech with Google Cloud Text-to-Speech
type GoogleTTS struct {
	client synthesizer
	logger *zap.Logger
}

var _ repositories.TextToSpeech = (*GoogleTTS)(nil)

// NewGoogleTTS creates a Text-to-Speech client using application default credentials
func NewGoogleTTS(ctx context.Context, logger *zap.Logger, opts ...option.ClientOption) (*GoogleTTS, error) {
	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech client: %w", err)
	}
	return &GoogleTTS{client: client, logger: logger}, nil
}

// Synthesize implements repositories.TextToSpeech
func (g *GoogleTTS) Synthesize(ctx context.Context, text string, voice repositories.VoiceSelection, audio repositories.AudioOutputConfig) ([]byte, error) {
	req, err := buildSynthesizeRequest(text, voice, audio)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("Google TTS returned audio", zap.Int("audioSize", len(resp.GetAudioContent())))
	return resp.GetAudioContent(), nil
}

// Close releases the underlying gRPC connection
func (g *GoogleTTS) Close() error {
	return g.client.Close()
}

func buildSynthesizeRequest(text string, voice repositories.VoiceSelection, audio repositories.AudioOutputConfig) (*texttospeechpb.SynthesizeSpeechRequest, error) {
	gender := texttospeechpb.SsmlVoiceGender_SSML_VOICE_GENDER_UNSPECIFIED
	if voice.SSMLGender != "" {
		v, ok := texttospeechpb.SsmlVoiceGender_value[strings.ToUpper(voice.SSMLGender)]
		if !ok {
			return nil, fmt.Errorf("unsupported SSML gender: %s", voice.SSMLGender)
		}
		gender = texttospeechpb.SsmlVoiceGender(v)
	}

	encoding := texttospeechpb.AudioEncoding_MP3
	if audio.AudioEncoding != "" {
		v, ok := texttospeechpb.AudioEncoding_value[strings.ToUpper(audio.AudioEncoding)]
		if !ok {
			return nil, fmt.Errorf("unsupported audio encoding: %s", audio.AudioEncoding)
		}
		encoding = texttospeechpb.AudioEncoding(v)
	}

	return &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: voice.LanguageCode,
			Name:         voice.Name,
			SsmlGender:   gender,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: encoding,
		},
	}, nil
}
