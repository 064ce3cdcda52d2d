package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/idms-console/internal/core/domain"
	"github.com/custodia-labs/idms-console/internal/core/ports/driven"
	"github.com/custodia-labs/idms-console/internal/core/ports/driving"
	"github.com/custodia-labs/idms-console/internal/logger"
)

// Ensure DropFolderService implements the interface.
var _ driving.DropFolderService = (*DropFolderService)(nil)

// DropFolderService uploads files dropped into a watched directory.
// Files are submitted one at a time through the upload coordinator, so the
// single in-flight rule also holds for watched uploads.
type DropFolderService struct {
	watcher     driven.FolderWatcher
	coordinator driving.UploadCoordinator
	limiter     *rate.Limiter
}

// NewDropFolderService creates a drop-folder service that starts at most one
// upload per interval. A zero interval disables pacing.
func NewDropFolderService(
	watcher driven.FolderWatcher,
	coordinator driving.UploadCoordinator,
	interval time.Duration,
) *DropFolderService {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &DropFolderService{
		watcher:     watcher,
		coordinator: coordinator,
		limiter:     rate.NewLimiter(limit, 1),
	}
}

// Run watches dir until ctx is cancelled.
func (s *DropFolderService) Run(ctx context.Context, dir string, onResult func(driving.DropResult)) error {
	if s.watcher == nil || s.coordinator == nil {
		return fmt.Errorf("%w: drop folder requires a watcher and an upload coordinator", domain.ErrInvalidInput)
	}

	files, err := s.watcher.Watch(ctx, dir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	logger.Info("watching %s", dir)
	for file := range files {
		if err := s.limiter.Wait(ctx); err != nil {
			break
		}
		result := s.upload(ctx, file)
		if errors.Is(result.Err, context.Canceled) {
			break
		}
		if onResult != nil {
			onResult(result)
		}
	}

	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (s *DropFolderService) upload(ctx context.Context, file domain.UploadFile) driving.DropResult {
	doc, err := s.coordinator.SubmitFile(ctx, &file)
	if err != nil {
		logger.Debug("drop folder upload %s: %v", file.Name, err)
	}
	return driving.DropResult{File: file, Document: doc, Err: err}
}
