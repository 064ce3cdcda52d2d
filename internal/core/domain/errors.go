package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Upload Errors.

	// ErrNoFileSelected indicates a submission was attempted without a candidate file.
	// Callers treat it as a silent no-op.
	ErrNoFileSelected = errors.New("no file selected")

	// ErrUploadInProgress indicates a submission was attempted while another is in flight.
	// Callers treat it as a silent no-op.
	ErrUploadInProgress = errors.New("upload in progress")

	// ErrUploadFailed covers every ingest failure: transport errors,
	// non-success statuses and bodies that are not a routed document.
	ErrUploadFailed = errors.New("upload failed")

	// Routing Errors.

	// ErrUnknownDepartment indicates a department outside the fixed set.
	ErrUnknownDepartment = errors.New("unknown department")

	// Journal Errors.

	// ErrJournalUnavailable indicates the ingest journal is not configured.
	ErrJournalUnavailable = errors.New("ingest journal unavailable")
)

// UploadFailedMessage is the only failure text shown to users.
const UploadFailedMessage = "Upload failed"
