package driven

import (
	"context"

	"github.com/custodia-labs/idms-console/internal/core/domain"
)

// IngestClient submits files to the external classification service.
type IngestClient interface {
	// Ingest uploads the file as the multipart field "file" and returns the
	// routed document parsed from the response. Every failure, including
	// non-success statuses and malformed bodies, wraps domain.ErrUploadFailed.
	// The returned document has no ID; the caller assigns one.
	Ingest(ctx context.Context, file domain.UploadFile) (*domain.RoutedDocument, error)
}
