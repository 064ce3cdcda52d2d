// Package domain defines the core business entities for the IDMS console.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RoutedDocument: A classified document returned by the ingest service
//   - Department: The closed set of destination departments
//   - UploadFile and UploadState: The upload state machine vocabulary
//   - DocumentCard: The display representation of a routed document
//   - JournalEntry: One recorded ingest attempt
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
