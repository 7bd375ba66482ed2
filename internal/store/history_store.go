package store

import (
	"sync"

	"keycalc/internal/domain"
)

// HistoryOption configures a HistoryMemoryStore.
type HistoryOption func(*HistoryMemoryStore)

// WithNewestFirst sets the order ListHistory returns. The default is newest first.
func WithNewestFirst(newestFirst bool) HistoryOption {
	return func(s *HistoryMemoryStore) { s.newestFirst = newestFirst }
}

// WithCapacity bounds the log to n entries, evicting the oldest. n <= 0 means unbounded.
func WithCapacity(n int) HistoryOption {
	return func(s *HistoryMemoryStore) {
		if n < 0 {
			n = 0
		}
		s.capacity = n
	}
}

// HistoryMemoryStore is an in-memory, ordered log of commits.
type HistoryMemoryStore struct {
	mu          sync.RWMutex
	entries     []domain.HistoryEntry // oldest first
	newestFirst bool
	capacity    int
}

// NewHistoryMemoryStore returns an empty store.
func NewHistoryMemoryStore(opts ...HistoryOption) *HistoryMemoryStore {
	s := &HistoryMemoryStore{newestFirst: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AppendHistory records entry, evicting the oldest entry when full.
func (s *HistoryMemoryStore) AppendHistory(entry domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	if s.capacity > 0 && len(s.entries) > s.capacity {
		drop := len(s.entries) - s.capacity
		s.entries = append(s.entries[:0:0], s.entries[drop:]...)
	}
	return nil
}

// ListHistory returns a copy of the log in the configured order.
func (s *HistoryMemoryStore) ListHistory() ([]domain.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.HistoryEntry, len(s.entries))
	if !s.newestFirst {
		copy(out, s.entries)
		return out, nil
	}
	for i, e := range s.entries {
		out[len(out)-1-i] = e
	}
	return out, nil
}

// ClearHistory drops every entry.
func (s *HistoryMemoryStore) ClearHistory() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	return nil
}

// CountHistory returns the number of stored entries.
func (s *HistoryMemoryStore) CountHistory() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Compile-time assertion that HistoryMemoryStore implements domain.HistoryStore.
var _ domain.HistoryStore = (*HistoryMemoryStore)(nil)
