package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/idms-console/internal/core/domain"
)

// MockIngestClient implements driven.IngestClient for testing.
type MockIngestClient struct {
	IngestFunc func(ctx context.Context, file domain.UploadFile) (*domain.RoutedDocument, error)

	mu    sync.Mutex
	calls []domain.UploadFile
}

func (m *MockIngestClient) Ingest(ctx context.Context, file domain.UploadFile) (*domain.RoutedDocument, error) {
	m.mu.Lock()
	m.calls = append(m.calls, file)
	m.mu.Unlock()
	if m.IngestFunc != nil {
		return m.IngestFunc(ctx, file)
	}
	return &domain.RoutedDocument{}, nil
}

// Calls returns the files passed to Ingest.
func (m *MockIngestClient) Calls() []domain.UploadFile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.UploadFile(nil), m.calls...)
}

// MockJournalStore implements driven.JournalStore for testing.
type MockJournalStore struct {
	RecordFunc func(ctx context.Context, entry domain.JournalEntry) error
	ListFunc   func(ctx context.Context, limit int) ([]domain.JournalEntry, error)
}

func (m *MockJournalStore) Record(ctx context.Context, entry domain.JournalEntry) error {
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, entry)
	}
	return nil
}

func (m *MockJournalStore) List(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit)
	}
	return nil, nil
}

func probability(p float64) *float64 {
	return &p
}

func routedDocument(label string, p float64, route, storedAt string) *domain.RoutedDocument {
	dep, _ := domain.ParseDepartment(route)
	return &domain.RoutedDocument{
		PredictedLabel: label,
		Probability:    probability(p),
		RouteTo:        dep,
		RawRouteTo:     route,
		StoredAt:       storedAt,
	}
}

// returning makes an IngestFunc that returns a fresh copy of doc.
func returning(doc *domain.RoutedDocument) func(context.Context, domain.UploadFile) (*domain.RoutedDocument, error) {
	return func(context.Context, domain.UploadFile) (*domain.RoutedDocument, error) {
		d := *doc
		return &d, nil
	}
}
