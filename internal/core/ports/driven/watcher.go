package driven

import (
	"context"

	"github.com/custodia-labs/idms-console/internal/core/domain"
)

// FolderWatcher reports files that appear in a drop folder.
type FolderWatcher interface {
	// Watch emits a file for every regular, non-hidden file created or
	// written in dir. The channel is closed when ctx is cancelled.
	Watch(ctx context.Context, dir string) (<-chan domain.UploadFile, error)
}
