package driven

import "github.com/custodia-labs/idms-console/internal/core/domain"

// DocumentRegistry is the session's ordered, append-only document collection.
// Entries are never updated or removed.
type DocumentRegistry interface {
	// Append adds doc as the newest entry. It never fails.
	Append(doc domain.RoutedDocument)

	// All returns every entry in insertion order.
	// The returned slice is a copy owned by the caller.
	All() []domain.RoutedDocument

	// Len returns the number of entries.
	Len() int
}
