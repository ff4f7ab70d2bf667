package service

import (
	"log"
	"sync"
	"time"

	"github.com/Ibrahima96/pacao/internal/model"
)

// TranscriptStore keeps assistant conversations in memory, keyed by
// session id. Transcripts live for the duration of a visitor's browsing
// session: idle ones are swept by the janitor, an explicit clear removes
// one immediately, and nothing is ever written to the database.
type TranscriptStore struct {
	mu       sync.RWMutex
	sessions map[string]*transcript
	ttl      time.Duration
	done     chan struct{}
}

type transcript struct {
	messages []model.ChatMessage
	lastSeen time.Time
}

func NewTranscriptStore(ttl time.Duration) *TranscriptStore {
	return &TranscriptStore{
		sessions: make(map[string]*transcript),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
}

// Run sweeps idle sessions until Shutdown. Meant for a goroutine.
func (s *TranscriptStore) Run() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.done:
			return
		}
	}
}

func (s *TranscriptStore) Shutdown() {
	close(s.done)
}

func (s *TranscriptStore) sweep() {
	cutoff := time.Now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, t := range s.sessions {
		if t.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		log.Printf("[Assistant] Swept %d idle session(s) (active: %d)", removed, len(s.sessions))
	}
}

// Append adds a turn to the session, creating it on first use.
func (s *TranscriptStore) Append(sessionID string, msg model.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.sessions[sessionID]
	if !ok {
		t = &transcript{}
		s.sessions[sessionID] = t
	}
	t.messages = append(t.messages, msg)
	t.lastSeen = time.Now()
}

// History returns the ordered transcript. The slice is a copy; callers
// may not mutate stored state.
func (s *TranscriptStore) History(sessionID string) []model.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	out := make([]model.ChatMessage, len(t.messages))
	copy(out, t.messages)
	return out
}

// Clear drops the session entirely.
func (s *TranscriptStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
