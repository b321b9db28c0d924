package stt

import (
	"context"
	"fmt"

	speech "cloud.google.com/go/speech/apiv1p1beta1"
	"cloud.google.com/go/speech/apiv1p1beta1/speechpb"
	"github.com/googleapis/gax-go/v2"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/satriahrh/codeswitch/domain/repositories"
)

// recognizer is the part of the speech client this adapter needs
type recognizer interface {
	Recognize(ctx context.Context, req *speechpb.RecognizeRequest, opts ...gax.CallOption) (*speechpb.RecognizeResponse, error)
	Close() error
}

// GoogleSpeechToText implements SpeechToText for Google Cloud (v1p1beta1,
// the API version that accepts alternative language codes)
type GoogleSpeechToText struct {
	client recognizer
	logger *zap.Logger
}

var _ repositories.SpeechToText = (*GoogleSpeechToText)(nil)

// NewGoogleSpeechToText creates a speech client using application default
// credentials unless opts say otherwise
func NewGoogleSpeechToText(ctx context.Context, logger *zap.Logger, opts ...option.ClientOption) (*GoogleSpeechToText, error) {
	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}

	return &GoogleSpeechToText{client: client, logger: logger}, nil
}

// Recognize implements repositories.SpeechToText
func (g *GoogleSpeechToText) Recognize(ctx context.Context, audio []byte, config repositories.AudioConfig) (*repositories.Recognition, error) {
	req, err := buildRecognizeRequest(audio, config)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Recognize(ctx, req)
	if err != nil {
		return nil, err
	}

	raw, err := protojson.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recognition response: %w", err)
	}

	g.logger.Debug("Recognition completed", zap.Int("results", len(resp.GetResults())))

	return &repositories.Recognition{
		Raw:      raw,
		Segments: segmentsFromResponse(resp),
	}, nil
}

// Close releases the underlying gRPC connection
func (g *GoogleSpeechToText) Close() error {
	return g.client.Close()
}

func buildRecognizeRequest(audio []byte, config repositories.AudioConfig) (*speechpb.RecognizeRequest, error) {
	encoding, err := getAudioEncoding(config.Encoding)
	if err != nil {
		return nil, err
	}

	return &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   encoding,
			SampleRateHertz:            int32(config.SampleRateHertz),
			LanguageCode:               config.LanguageCode,
			AlternativeLanguageCodes:   config.AlternativeLanguageCodes,
			EnableAutomaticPunctuation: config.EnableAutomaticPunctuation,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	}, nil
}

func segmentsFromResponse(resp *speechpb.RecognizeResponse) []repositories.TranscriptSegment {
	var segments []repositories.TranscriptSegment
	for _, result := range resp.GetResults() {
		alternatives := result.GetAlternatives()
		if len(alternatives) == 0 {
			continue
		}
		// alternatives are ordered by confidence, take the best one
		segments = append(segments, repositories.TranscriptSegment{
			Transcript:   alternatives[0].GetTranscript(),
			Confidence:   alternatives[0].GetConfidence(),
			LanguageCode: result.GetLanguageCode(),
		})
	}
	return segments
}

// getAudioEncoding converts string encoding to Google Speech API enum
func getAudioEncoding(encoding string) (speechpb.RecognitionConfig_AudioEncoding, error) {
	switch encoding {
	case "WAV", "LINEAR16":
		return speechpb.RecognitionConfig_LINEAR16, nil
	case "FLAC":
		return speechpb.RecognitionConfig_FLAC, nil
	case "MULAW":
		return speechpb.RecognitionConfig_MULAW, nil
	case "AMR":
		return speechpb.RecognitionConfig_AMR, nil
	case "AMR_WB":
		return speechpb.RecognitionConfig_AMR_WB, nil
	case "OGG_OPUS":
		return speechpb.RecognitionConfig_OGG_OPUS, nil
	case "SPEEX_WITH_HEADER_BYTE":
		return speechpb.RecognitionConfig_SPEEX_WITH_HEADER_BYTE, nil
	case "MP3":
		return speechpb.RecognitionConfig_MP3, nil
	case "WEBM_OPUS":
		return speechpb.RecognitionConfig_WEBM_OPUS, nil
	default:
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED, fmt.Errorf("unsupported audio encoding: %s", encoding)
	}
}
