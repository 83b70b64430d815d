package audit

import (
	"context"
	"sync"
)

type InMemoryStore struct {
	mu       sync.RWMutex
	events   []Event
	capacity int
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// NewBoundedInMemoryStore keeps at most capacity events, dropping the oldest.
// A non-positive capacity means unbounded.
func NewBoundedInMemoryStore(capacity int) *InMemoryStore {
	return &InMemoryStore{capacity: capacity}
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if s.capacity > 0 && len(s.events) > s.capacity {
		// Copy down so the dropped prefix does not pin the backing array.
		n := copy(s.events, s.events[len(s.events)-s.capacity:])
		clear(s.events[n:])
		s.events = s.events[:n]
	}
	return nil
}

func (s *InMemoryStore) ListAll(_ context.Context) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Event{}, s.events...), nil
}

// ListRecent returns at most limit events, newest last.
func (s *InMemoryStore) ListRecent(_ context.Context, limit int) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := len(s.events) - limit
	if start < 0 {
		start = 0
	}
	return append([]Event{}, s.events[start:]...), nil
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}
