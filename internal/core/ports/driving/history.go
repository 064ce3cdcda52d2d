package driving

import (
	"context"

	"github.com/custodia-labs/idms-console/internal/core/domain"
)

// HistoryService reads the ingest journal.
type HistoryService interface {
	// Recent returns up to limit journal entries, newest first.
	Recent(ctx context.Context, limit int) ([]domain.JournalEntry, error)
}
