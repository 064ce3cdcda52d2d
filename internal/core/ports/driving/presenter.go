package driving

import "github.com/custodia-labs/idms-console/internal/core/domain"

// DocumentPresenter maps routed documents to their display representation.
// Implementations are pure.
type DocumentPresenter interface {
	// Present returns the card for doc.
	Present(doc domain.RoutedDocument) domain.DocumentCard

	// PresentAll returns cards for docs in the same order.
	PresentAll(docs []domain.RoutedDocument) []domain.DocumentCard
}
