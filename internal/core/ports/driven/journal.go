package driven

import (
	"context"

	"github.com/custodia-labs/idms-console/internal/core/domain"
)

// JournalStore persists a record of every ingest attempt.
type JournalStore interface {
	// Record stores an entry.
	Record(ctx context.Context, entry domain.JournalEntry) error

	// List returns up to limit entries, newest first.
	// A limit of zero or less returns every entry.
	List(ctx context.Context, limit int) ([]domain.JournalEntry, error)
}
