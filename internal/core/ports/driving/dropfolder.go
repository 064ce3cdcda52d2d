package driving

import (
	"context"

	"github.com/custodia-labs/idms-console/internal/core/domain"
)

// DropResult is the outcome of one drop-folder upload.
type DropResult struct {
	File     domain.UploadFile
	Document *domain.RoutedDocument
	Err      error
}

// DropFolderService uploads files as they appear in a directory.
type DropFolderService interface {
	// Run watches dir and submits every new file through the upload
	// coordinator, one at a time. Results are delivered to onResult.
	// It blocks until ctx is cancelled.
	Run(ctx context.Context, dir string, onResult func(DropResult)) error
}
