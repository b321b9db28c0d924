package playback

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestIsWAV(t *testing.T) {
	tests := []struct {
		name     string
		audio    []byte
		expected bool
	}{
		{name: "riff wave header", audio: []byte("RIFF\x24\x00\x00\x00WAVEfmt "), expected: true},
		{name: "mp3 id3 header", audio: []byte("ID3\x04\x00\x00\x00\x00\x00\x00\x00\x00"), expected: false},
		{name: "riff without wave", audio: []byte("RIFF\x24\x00\x00\x00AVI "), expected: false},
		{name: "too short", audio: []byte("RIFF"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isWAV(tt.audio); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPlay_EmptyAudio(t *testing.T) {
	player := NewBeepPlayer(zaptest.NewLogger(t))

	called := false
	playback, err := player.Play(nil, func(error) { called = true })
	if err == nil {
		t.Fatal("Expected error for empty audio")
	}
	if playback != nil {
		t.Error("Expected nil playback")
	}
	if called {
		t.Error("Expected onFinish not to be called when Play fails")
	}
}
