package checkout

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sessions keeps one Flow per browser session. Entries expire after a TTL;
// expiry is enforced on read, so an abandoned checkout simply evaporates
// and the next visit starts from Browsing. Nothing is persisted.
type Sessions struct {
	ttl     time.Duration
	newFlow func() *Flow

	mu    sync.RWMutex
	flows map[string]*sessionEntry
}

type sessionEntry struct {
	flow      *Flow
	expiresAt time.Time
}

// NewSessions builds a registry. newFlow is called to create the flow for
// a fresh session.
func NewSessions(ttl time.Duration, newFlow func() *Flow) *Sessions {
	return &Sessions{
		ttl:     ttl,
		newFlow: newFlow,
		flows:   make(map[string]*sessionEntry),
	}
}

// Get returns the live flow for the session id, refreshing its TTL. The
// expiry check and refresh happen under one lock: parallel requests for
// the same session are the normal case, not the exception.
func (s *Sessions) Get(id string) (*Flow, bool) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.flows[id]
	if !ok {
		return nil, false
	}
	if now.After(entry.expiresAt) {
		delete(s.flows, id)
		return nil, false
	}
	entry.expiresAt = now.Add(s.ttl)
	return entry.flow, true
}

// Create registers a fresh session and returns its id and flow.
func (s *Sessions) Create() (string, *Flow) {
	id := uuid.NewString()
	flow := s.newFlow()
	s.mu.Lock()
	s.flows[id] = &sessionEntry{flow: flow, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return id, flow
}

// GetOrCreate returns the flow for id, or a brand new session when id is
// empty, unknown or expired. The returned id is the one the caller should
// hand back to the browser.
func (s *Sessions) GetOrCreate(id string) (string, *Flow) {
	if id != "" {
		if flow, ok := s.Get(id); ok {
			return id, flow
		}
	}
	return s.Create()
}

// Len reports the number of live sessions (expired entries may be counted
// until their next read).
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.flows)
}
