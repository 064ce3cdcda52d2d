package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/idms-console/internal/core/domain"
	"github.com/custodia-labs/idms-console/internal/core/ports/driven"
	"github.com/custodia-labs/idms-console/internal/core/ports/driving"
	"github.com/custodia-labs/idms-console/internal/logger"
)

// Ensure UploadCoordinator implements the interface.
var _ driving.UploadCoordinator = (*UploadCoordinator)(nil)

// UploadCoordinator drives single-file uploads and registers the results.
type UploadCoordinator struct {
	client   driven.IngestClient
	registry driven.DocumentRegistry
	journal  driven.JournalStore

	retainFailedSelection bool
	newID                 func() string
	now                   func() time.Time

	mu        sync.Mutex
	state     domain.UploadState
	candidate *domain.UploadFile
	lastErr   string
}

// UploadOption configures an UploadCoordinator.
type UploadOption func(*UploadCoordinator)

// WithJournal records every attempt to the given journal.
func WithJournal(j driven.JournalStore) UploadOption {
	return func(c *UploadCoordinator) {
		c.journal = j
	}
}

// WithRetainFailedSelection keeps the candidate file after a failed upload.
func WithRetainFailedSelection(retain bool) UploadOption {
	return func(c *UploadCoordinator) {
		c.retainFailedSelection = retain
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) UploadOption {
	return func(c *UploadCoordinator) {
		c.now = now
	}
}

// WithIDGenerator overrides how session document IDs are generated.
func WithIDGenerator(gen func() string) UploadOption {
	return func(c *UploadCoordinator) {
		c.newID = gen
	}
}

// NewUploadCoordinator creates a coordinator in the Idle state.
func NewUploadCoordinator(
	client driven.IngestClient,
	registry driven.DocumentRegistry,
	opts ...UploadOption,
) *UploadCoordinator {
	c := &UploadCoordinator{
		client:   client,
		registry: registry,
		newID:    uuid.NewString,
		now:      time.Now,
		state:    domain.UploadIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SelectFile stores the candidate file. A nil file clears it.
func (c *UploadCoordinator) SelectFile(file *domain.UploadFile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if file == nil {
		c.candidate = nil
		return
	}
	f := *file
	c.candidate = &f
}

// Candidate returns a copy of the selected file, or nil.
func (c *UploadCoordinator) Candidate() *domain.UploadFile {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.candidate == nil {
		return nil
	}
	f := *c.candidate
	return &f
}

// State returns the current state.
func (c *UploadCoordinator) State() domain.UploadState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastError returns the message of the last failure.
func (c *UploadCoordinator) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Submit uploads the candidate file and appends the routed document to the registry.
func (c *UploadCoordinator) Submit(ctx context.Context) (*domain.RoutedDocument, error) {
	c.mu.Lock()
	if c.state == domain.UploadUploading {
		c.mu.Unlock()
		return nil, domain.ErrUploadInProgress
	}
	if c.candidate == nil {
		c.mu.Unlock()
		return nil, domain.ErrNoFileSelected
	}
	submitted := c.begin()
	c.mu.Unlock()

	return c.run(ctx, submitted)
}

// SubmitFile selects file and uploads it while holding the state lock
// across the selection, so a concurrent SelectFile cannot replace it.
func (c *UploadCoordinator) SubmitFile(ctx context.Context, file *domain.UploadFile) (*domain.RoutedDocument, error) {
	c.mu.Lock()
	if c.state == domain.UploadUploading {
		c.mu.Unlock()
		return nil, domain.ErrUploadInProgress
	}
	if file == nil {
		c.mu.Unlock()
		return nil, domain.ErrNoFileSelected
	}
	f := *file
	c.candidate = &f
	submitted := c.begin()
	c.mu.Unlock()

	return c.run(ctx, submitted)
}

// begin moves to Uploading and returns the candidate. Callers hold c.mu.
func (c *UploadCoordinator) begin() *domain.UploadFile {
	c.state = domain.UploadUploading
	c.lastErr = ""
	return c.candidate
}

// run performs the ingest call for submitted and applies the outcome.
func (c *UploadCoordinator) run(ctx context.Context, submitted *domain.UploadFile) (*domain.RoutedDocument, error) {
	file := *submitted

	log := logger.With("file", file.Name)
	log.Debug("ingest started", "path", file.Path)

	doc, err := c.client.Ingest(ctx, file)
	if err == nil && doc == nil {
		err = fmt.Errorf("%w: empty response", domain.ErrUploadFailed)
	}
	if err != nil {
		if !errors.Is(err, domain.ErrUploadFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrUploadFailed, err)
		}
		log.Debug("ingest failed", "err", err)
		c.fail(submitted)
		c.record(ctx, domain.JournalEntry{
			FileName: file.Name,
			Outcome:  domain.OutcomeFailed,
			Error:    err.Error(),
		})
		return nil, fmt.Errorf("ingest %s: %w", file.Name, err)
	}

	registered := *doc
	registered.ID = c.newID()
	if registered.FileName == "" {
		registered.FileName = file.Name
	}
	if registered.ReceivedAt.IsZero() {
		registered.ReceivedAt = c.now()
	}

	c.mu.Lock()
	c.state = domain.UploadSucceeded
	c.registry.Append(registered)
	if c.candidate == submitted {
		c.candidate = nil
	}
	c.mu.Unlock()

	log.Debug("ingest routed", "label", registered.PredictedLabel, "route", registered.RawRouteTo)
	if !registered.Routed() {
		log.Warn("route outside department set", "route", registered.RawRouteTo)
	}

	c.record(ctx, domain.JournalEntry{
		FileName:    file.Name,
		Outcome:     domain.OutcomeSucceeded,
		Label:       registered.PredictedLabel,
		RouteTo:     registered.RawRouteTo,
		Probability: registered.Probability,
	})

	return &registered, nil
}

// fail moves to Failed and clears the submitted candidate unless retained
// or replaced while the request was in flight.
func (c *UploadCoordinator) fail(submitted *domain.UploadFile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = domain.UploadFailed
	c.lastErr = domain.UploadFailedMessage
	if !c.retainFailedSelection && c.candidate == submitted {
		c.candidate = nil
	}
}

// record writes a journal entry. Journal errors never change the upload outcome.
func (c *UploadCoordinator) record(ctx context.Context, entry domain.JournalEntry) {
	if c.journal == nil {
		return
	}
	entry.ID = c.newID()
	entry.CreatedAt = c.now()
	if err := c.journal.Record(ctx, entry); err != nil {
		logger.With("file", entry.FileName).Warn("journal record failed", "err", err)
	}
}
