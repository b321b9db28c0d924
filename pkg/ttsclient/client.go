// Package ttsclient fetches synthesized speech from the text-to-speech route
// and plays it locally.
package ttsclient

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrEmptyText is returned by Speak for blank input
	ErrEmptyText = errors.New("text is empty")
	// ErrNoAudio means the server answered without audio content
	ErrNoAudio = errors.New("no audio returned from TTS endpoint")
)

// Player starts playback of an encoded clip. onFinish is called once, from any
// goroutine, when the clip ends (nil) or fails. It is not called when Play
// itself returns an error.
type Player interface {
	Play(audio []byte, onFinish func(error)) (Playback, error)
}

// Playback is a clip being played
type Playback interface {
	Pause() error
	Close() error
}

// Voice mirrors the voice selection of the synthesis request
type Voice struct {
	LanguageCode string `json:"languageCode"`
	SSMLGender   string `json:"ssmlGender"`
}

// AudioConfig mirrors the audio config of the synthesis request
type AudioConfig struct {
	AudioEncoding string `json:"audioEncoding"`
}

// SynthesisRequest is the body posted to the text-to-speech route
type SynthesisRequest struct {
	Text        string      `json:"text"`
	Voice       Voice       `json:"voice"`
	AudioConfig AudioConfig `json:"audioConfig"`
}

// SynthesisResponse is the body returned by the text-to-speech route
type SynthesisResponse struct {
	AudioContent string `json:"audioContent"`
	Error        string `json:"error,omitempty"`
}

// Client talks to the synthesis server and hands audio to a Player
type Client struct {
	httpClient *http.Client
	serverURL  string
	token      string
	voice      Voice
	audio      AudioConfig
	player     Player
	logger     *zap.Logger
}

// NewClient creates a client. The voice defaults to en-US, NEUTRAL, MP3.
func NewClient(config Config, player Player, logger *zap.Logger) (*Client, error) {
	if player == nil {
		return nil, fmt.Errorf("player is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	voice := Voice{LanguageCode: config.LanguageCode, SSMLGender: config.SSMLGender}
	if voice.LanguageCode == "" {
		voice.LanguageCode = defaultLanguageCode
	}
	if voice.SSMLGender == "" {
		voice.SSMLGender = defaultSSMLGender
	}

	audio := AudioConfig{AudioEncoding: config.AudioEncoding}
	if audio.AudioEncoding == "" {
		audio.AudioEncoding = defaultAudioEncoding
	}

	serverURL := ResolveServerURL(config)
	logger.Info("Text-to-speech client ready", zap.String("serverURL", serverURL))

	return &Client{
		httpClient: httpClient,
		serverURL:  serverURL,
		token:      config.Token,
		voice:      voice,
		audio:      audio,
		player:     player,
		logger:     logger,
	}, nil
}

// Speak fetches audio for text and starts playing it. onSpeaking receives true
// before the request and false once playback is over or when Speak fails.
// Overlapping calls produce independent sessions.
func (c *Client) Speak(ctx context.Context, text string, onSpeaking func(bool)) (*Session, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if onSpeaking == nil {
		onSpeaking = func(bool) {}
	}

	onSpeaking(true)

	audio, err := c.fetchAudio(ctx, text)
	if err != nil {
		c.logger.Error("Text-to-speech request failed", zap.Error(err))
		onSpeaking(false)
		return nil, err
	}

	session := newSession(onSpeaking, c.logger)
	playback, err := c.player.Play(audio, session.finish)
	if err != nil {
		c.logger.Error("Failed to start playback", zap.Error(err))
		onSpeaking(false)
		return nil, fmt.Errorf("failed to start playback: %w", err)
	}

	if !session.attach(playback) {
		// the clip ended before Play returned
		if err := playback.Close(); err != nil {
			c.logger.Warn("Failed to release finished playback", zap.Error(err))
		}
	}

	return session, nil
}

func (c *Client) fetchAudio(ctx context.Context, text string) ([]byte, error) {
	body, err := json.Marshal(SynthesisRequest{Text: text, Voice: c.voice, AudioConfig: c.audio})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL+"/text-to-speech", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("TTS server error %d: %s", resp.StatusCode, strings.TrimSpace(string(errorBody)))
	}

	var payload SynthesisResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if payload.AudioContent == "" {
		return nil, ErrNoAudio
	}

	audio, err := base64.StdEncoding.DecodeString(payload.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio content: %w", err)
	}
	return audio, nil
}
