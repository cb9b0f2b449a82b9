package trace

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session collects the trace events of one harness run.
type Session struct {
	ID      string
	Started time.Time

	mu       sync.Mutex
	events   []*Event
	enricher Enricher
}

// NewSession creates a session with a fresh identifier and the default
// enricher.
func NewSession() *Session {
	return &Session{
		ID:       uuid.NewString(),
		Started:  time.Now(),
		enricher: DefaultEnricher,
	}
}

// SetEnricher replaces the session's enricher. A nil enricher disables
// enrichment.
func (s *Session) SetEnricher(fn Enricher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enricher = fn
}

// Record creates an event, enriches it and appends it to the session.
func (s *Session) Record(pc uint64, category, name, detail string) {
	e := NewEvent(pc, category, name, detail)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.enricher != nil {
		s.enricher(e)
	}
	s.events = append(s.events, e)
}

// Events returns a snapshot of the collected events in order.
func (s *Session) Events() []*Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Event, len(s.events))
	copy(out, s.events)
	return out
}

// Count returns the number of collected events.
func (s *Session) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

// WithTag returns the events carrying the given tag.
func (s *Session) WithTag(tag Tag) []*Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*Event
	for _, e := range s.events {
		if e.Tags.Has(tag) {
			out = append(out, e)
		}
	}
	return out
}
