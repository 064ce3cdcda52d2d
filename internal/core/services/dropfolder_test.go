package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/idms-console/internal/core/domain"
	"github.com/custodia-labs/idms-console/internal/core/ports/driving"
)

// MockFolderWatcher implements driven.FolderWatcher for testing.
type MockFolderWatcher struct {
	WatchFunc func(ctx context.Context, dir string) (<-chan domain.UploadFile, error)
}

func (m *MockFolderWatcher) Watch(ctx context.Context, dir string) (<-chan domain.UploadFile, error) {
	if m.WatchFunc != nil {
		return m.WatchFunc(ctx, dir)
	}
	ch := make(chan domain.UploadFile)
	close(ch)
	return ch, nil
}

// emitting returns a watcher that sends files then closes the channel.
func emitting(files ...string) *MockFolderWatcher {
	return &MockFolderWatcher{
		WatchFunc: func(context.Context, string) (<-chan domain.UploadFile, error) {
			ch := make(chan domain.UploadFile, len(files))
			for _, f := range files {
				ch <- *domain.NewUploadFile(f)
			}
			close(ch)
			return ch, nil
		},
	}
}

func TestDropFolderService_Run_UploadsEachFile(t *testing.T) {
	client := &MockIngestClient{
		IngestFunc: func(_ context.Context, f domain.UploadFile) (*domain.RoutedDocument, error) {
			if f.Name == "bad.pdf" {
				return nil, domain.ErrUploadFailed
			}
			return routedDocument("invoice", 0.9, "finance", "/s/"+f.Name), nil
		},
	}
	coordinator, registry := newTestCoordinator(client)
	service := NewDropFolderService(emitting("/in/a.pdf", "/in/bad.pdf", "/in/c.pdf"), coordinator, 0)

	var results []driving.DropResult
	err := service.Run(context.Background(), "/in", func(r driving.DropResult) {
		results = append(results, r)
	})

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "a.pdf", results[0].File.Name)
	assert.NoError(t, results[0].Err)
	require.NotNil(t, results[0].Document)
	assert.ErrorIs(t, results[1].Err, domain.ErrUploadFailed)
	assert.Nil(t, results[1].Document)
	assert.NoError(t, results[2].Err)
	assert.Equal(t, 2, registry.Len())
	assert.Len(t, client.Calls(), 3)
}

func TestDropFolderService_Run_NilCallback(t *testing.T) {
	coordinator, registry := newTestCoordinator(&MockIngestClient{
		IngestFunc: returning(routedDocument("memo", 0.5, "admin", "/s/m")),
	})
	service := NewDropFolderService(emitting("/in/m.txt"), coordinator, 0)

	require.NoError(t, service.Run(context.Background(), "/in", nil))
	assert.Equal(t, 1, registry.Len())
}

func TestDropFolderService_Run_WatchError(t *testing.T) {
	watchErr := errors.New("no such directory")
	watcher := &MockFolderWatcher{
		WatchFunc: func(context.Context, string) (<-chan domain.UploadFile, error) {
			return nil, watchErr
		},
	}
	coordinator, _ := newTestCoordinator(&MockIngestClient{})
	service := NewDropFolderService(watcher, coordinator, 0)

	err := service.Run(context.Background(), "/missing", nil)

	assert.ErrorIs(t, err, watchErr)
	assert.Contains(t, err.Error(), "/missing")
}

func TestDropFolderService_Run_MissingDependencies(t *testing.T) {
	service := NewDropFolderService(nil, nil, 0)

	err := service.Run(context.Background(), "/in", nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDropFolderService_Run_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	watcher := &MockFolderWatcher{
		WatchFunc: func(ctx context.Context, _ string) (<-chan domain.UploadFile, error) {
			ch := make(chan domain.UploadFile)
			go func() {
				defer close(ch)
				<-ctx.Done()
			}()
			return ch, nil
		},
	}
	coordinator, _ := newTestCoordinator(&MockIngestClient{})
	service := NewDropFolderService(watcher, coordinator, 0)

	done := make(chan error, 1)
	go func() { done <- service.Run(ctx, "/in", nil) }()
	cancel()

	assert.NoError(t, <-done)
}
