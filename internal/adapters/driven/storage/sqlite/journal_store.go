package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/custodia-labs/idms-console/internal/core/domain"
	"github.com/custodia-labs/idms-console/internal/core/ports/driven"
)

// timestampLayout keeps every created_at the same width so text order is time order.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// journalStore implements driven.JournalStore.
type journalStore struct {
	store *Store
}

var _ driven.JournalStore = (*journalStore)(nil)

// Record stores an entry.
func (s *journalStore) Record(ctx context.Context, entry domain.JournalEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("%w: journal entry id is required", domain.ErrInvalidInput)
	}

	var probability sql.NullFloat64
	if entry.Probability != nil {
		probability = sql.NullFloat64{Float64: *entry.Probability, Valid: true}
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO journal_entries (id, file_name, outcome, label, route_to, probability, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		entry.ID,
		entry.FileName,
		string(entry.Outcome),
		entry.Label,
		entry.RouteTo,
		probability,
		entry.Error,
		entry.CreatedAt.UTC().Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting journal entry: %w", err)
	}
	return nil
}

// List returns up to limit entries, newest first.
func (s *journalStore) List(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	query := `
		SELECT id, file_name, outcome, label, route_to, probability, error, created_at
		FROM journal_entries
		ORDER BY created_at DESC, rowid DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying journal entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		entry, err := scanJournalEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating journal entries: %w", err)
	}
	return entries, nil
}

func scanJournalEntry(rows *sql.Rows) (*domain.JournalEntry, error) {
	var (
		entry       domain.JournalEntry
		outcome     string
		probability sql.NullFloat64
		createdAt   string
	)
	err := rows.Scan(
		&entry.ID,
		&entry.FileName,
		&outcome,
		&entry.Label,
		&entry.RouteTo,
		&probability,
		&entry.Error,
		&createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning journal entry: %w", err)
	}

	entry.Outcome = domain.JournalOutcome(outcome)
	if probability.Valid {
		p := probability.Float64
		entry.Probability = &p
	}
	if entry.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parsing journal timestamp %q: %w", createdAt, err)
	}
	return &entry, nil
}
