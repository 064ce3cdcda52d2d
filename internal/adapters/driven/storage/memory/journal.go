package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/idms-console/internal/core/domain"
	"github.com/custodia-labs/idms-console/internal/core/ports/driven"
)

// Ensure JournalStore implements the interface.
var _ driven.JournalStore = (*JournalStore)(nil)

// JournalStore is an in-memory implementation of driven.JournalStore.
// It is used when the on-disk journal cannot be opened.
type JournalStore struct {
	mu      sync.RWMutex
	entries []domain.JournalEntry
}

// NewJournalStore creates an empty journal.
func NewJournalStore() *JournalStore {
	return &JournalStore{}
}

// Record stores an entry.
func (s *JournalStore) Record(_ context.Context, entry domain.JournalEntry) error {
	if entry.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

// List returns up to limit entries, newest first.
func (s *JournalStore) List(_ context.Context, limit int) ([]domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	result := make([]domain.JournalEntry, 0, n)
	for i := len(s.entries) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, s.entries[i])
	}
	return result, nil
}
