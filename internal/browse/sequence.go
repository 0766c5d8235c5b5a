package browse

import (
	"context"
	"sync"
)

// Sequencer hands out monotonically increasing request tokens. Issuing a
// new token cancels the context of the previous one, and only the latest
// token is current.
type Sequencer struct {
	mu     sync.Mutex
	latest uint64
	cancel context.CancelFunc
}

// Issue starts a new request derived from parent.
func (s *Sequencer) Issue(parent context.Context) (uint64, context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	s.latest++
	s.cancel = cancel
	return s.latest, ctx
}

// IsCurrent reports whether token is the latest issued.
func (s *Sequencer) IsCurrent(token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return token != 0 && token == s.latest
}

// Latest returns the most recent token, 0 if none.
func (s *Sequencer) Latest() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Cancel aborts the in-flight request and invalidates its token.
func (s *Sequencer) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.latest++
}

// Done releases the context of token once its response has been handled.
func (s *Sequencer) Done(token uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == s.latest && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
