package ttsclient

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Session owns one playback started by Client.Speak. The speaking callback
// reports false exactly once when playback ends, fails or is stopped, and
// again on every later Stop.
type Session struct {
	mu       sync.Mutex
	playback Playback

	onSpeaking func(bool)
	done       chan struct{}
	doneOnce   sync.Once
	logger     *zap.Logger
}

func newSession(onSpeaking func(bool), logger *zap.Logger) *Session {
	return &Session{
		onSpeaking: onSpeaking,
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// attach stores the playback unless the session already finished
func (s *Session) attach(p Playback) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case <-s.done:
		return false
	default:
		s.playback = p
		return true
	}
}

// detach takes the playback out of the session
func (s *Session) detach() Playback {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.playback
	s.playback = nil
	return p
}

func (s *Session) markDone() bool {
	first := false
	s.doneOnce.Do(func() {
		first = true
		close(s.done)
	})
	return first
}

// finish is the Player callback. It must not block on the player.
func (s *Session) finish(err error) {
	if err != nil {
		s.logger.Error("Audio playback error", zap.Error(err))
	}

	p := s.detach()
	if !s.markDone() {
		return
	}
	if p != nil {
		if cerr := p.Close(); cerr != nil {
			s.logger.Warn("Failed to release finished playback", zap.Error(cerr))
		}
	}
	s.onSpeaking(false)
}

// Stop pauses and releases the playback. Failures while pausing or releasing
// are logged and ignored. Safe to call on a nil or finished session.
func (s *Session) Stop() {
	if s == nil {
		return
	}

	if p := s.detach(); p != nil {
		if err := p.Pause(); err != nil {
			s.logger.Warn("Failed to pause playback", zap.Error(err))
		}
		if err := p.Close(); err != nil {
			s.logger.Warn("Failed to release playback", zap.Error(err))
		}
	}

	s.markDone()
	s.onSpeaking(false)
}

// Active reports whether the session still holds a playback
func (s *Session) Active() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playback != nil
}

// Done is closed once playback has ended or been stopped
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until playback finishes or ctx is done
func (s *Session) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
