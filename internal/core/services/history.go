package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/idms-console/internal/core/domain"
	"github.com/custodia-labs/idms-console/internal/core/ports/driven"
	"github.com/custodia-labs/idms-console/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService reads the ingest journal.
type HistoryService struct {
	journal driven.JournalStore
}

// NewHistoryService creates a history service. A nil journal is allowed;
// every call then returns domain.ErrJournalUnavailable.
func NewHistoryService(journal driven.JournalStore) *HistoryService {
	return &HistoryService{journal: journal}
}

// Recent returns up to limit entries, newest first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	if s.journal == nil {
		return nil, domain.ErrJournalUnavailable
	}
	entries, err := s.journal.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list journal: %w", err)
	}
	return entries, nil
}
