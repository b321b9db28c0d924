package playback

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"go.uber.org/zap"

	"github.com/satriahrh/codeswitch/pkg/ttsclient"
)

const (
	// DefaultSampleRate is the rate the speaker is opened with
	DefaultSampleRate = beep.SampleRate(44100)
	resampleQuality   = 4
)

var _ ttsclient.Player = (*BeepPlayer)(nil)

// BeepPlayer plays MP3 or WAV clips on the default output device
type BeepPlayer struct {
	sampleRate beep.SampleRate
	initOnce   sync.Once
	initErr    error
	logger     *zap.Logger
}

func NewBeepPlayer(logger *zap.Logger) *BeepPlayer {
	return &BeepPlayer{
		sampleRate: DefaultSampleRate,
		logger:     logger,
	}
}

func (p *BeepPlayer) init() error {
	p.initOnce.Do(func() {
		p.initErr = speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/10))
		if p.initErr == nil {
			p.logger.Info("Speaker initialized", zap.Int("sampleRate", int(p.sampleRate)))
		}
	})
	return p.initErr
}

// Play decodes audio and queues it on the speaker. onFinish runs on its own
// goroutine so it may call back into the playback.
func (p *BeepPlayer) Play(audio []byte, onFinish func(error)) (ttsclient.Playback, error) {
	streamer, format, err := decode(audio)
	if err != nil {
		return nil, err
	}

	if err := p.init(); err != nil {
		streamer.Close()
		return nil, fmt.Errorf("error initializing speaker: %w", err)
	}

	var source beep.Streamer = streamer
	if format.SampleRate != p.sampleRate {
		source = beep.Resample(resampleQuality, format.SampleRate, p.sampleRate, streamer)
	}

	ctrl := &beep.Ctrl{
		Streamer: beep.Seq(source, beep.Callback(func() {
			go onFinish(streamer.Err())
		})),
	}

	speaker.Play(ctrl)

	p.logger.Debug("Playback started",
		zap.Int("sampleRate", int(format.SampleRate)),
		zap.Int("channels", format.NumChannels),
		zap.Int("bytes", len(audio)))

	return &beepPlayback{ctrl: ctrl, streamer: streamer}, nil
}

type beepPlayback struct {
	ctrl      *beep.Ctrl
	streamer  beep.StreamSeekCloser
	closeOnce sync.Once
	closeErr  error
}

func (b *beepPlayback) Pause() error {
	speaker.Lock()
	b.ctrl.Paused = true
	speaker.Unlock()
	return nil
}

func (b *beepPlayback) Close() error {
	b.closeOnce.Do(func() {
		speaker.Lock()
		b.ctrl.Streamer = nil
		speaker.Unlock()
		b.closeErr = b.streamer.Close()
	})
	return b.closeErr
}

// decode picks the decoder from the clip header
func decode(audio []byte) (beep.StreamSeekCloser, beep.Format, error) {
	if len(audio) == 0 {
		return nil, beep.Format{}, fmt.Errorf("audio is empty")
	}

	if isWAV(audio) {
		streamer, format, err := wav.Decode(bytes.NewReader(audio))
		if err != nil {
			return nil, beep.Format{}, fmt.Errorf("error decoding WAV: %w", err)
		}
		return streamer, format, nil
	}

	streamer, format, err := mp3.Decode(io.NopCloser(bytes.NewReader(audio)))
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("error decoding MP3: %w", err)
	}
	return streamer, format, nil
}

func isWAV(audio []byte) bool {
	return len(audio) >= 12 && string(audio[0:4]) == "RIFF" && string(audio[8:12]) == "WAVE"
}
