package driving

import (
	"context"

	"github.com/custodia-labs/idms-console/internal/core/domain"
)

// UploadCoordinator drives single-file uploads through the state machine
// Idle → Uploading → Succeeded | Failed. At most one upload is in flight.
type UploadCoordinator interface {
	// SelectFile stores the candidate file without network activity.
	// A nil file clears the candidate.
	SelectFile(file *domain.UploadFile)

	// Candidate returns the selected file, or nil.
	Candidate() *domain.UploadFile

	// Submit uploads the candidate and registers the routed document.
	// Returns domain.ErrNoFileSelected or domain.ErrUploadInProgress without
	// any transition, and an error wrapping domain.ErrUploadFailed on failure.
	Submit(ctx context.Context) (*domain.RoutedDocument, error)

	// SubmitFile selects file and uploads it in one step, so callers sharing
	// the coordinator cannot swap the candidate in between. It follows the
	// same transitions and errors as Submit.
	SubmitFile(ctx context.Context, file *domain.UploadFile) (*domain.RoutedDocument, error)

	// State returns the current state.
	State() domain.UploadState

	// LastError returns the user-facing message of the last failure,
	// or empty if the last attempt did not fail.
	LastError() string
}
