package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/custodia-labs/idms-console/internal/core/domain"
	"github.com/custodia-labs/idms-console/internal/core/ports/driving"
)

// Ensure DocumentPresenter implements the interface.
var _ driving.DocumentPresenter = (*DocumentPresenter)(nil)

// DocumentPresenter builds display cards for routed documents.
type DocumentPresenter struct {
	filesBaseURL string
}

// NewDocumentPresenter creates a presenter that links files under filesBaseURL,
// e.g. http://localhost:8000/files.
func NewDocumentPresenter(filesBaseURL string) *DocumentPresenter {
	return &DocumentPresenter{
		filesBaseURL: strings.TrimRight(filesBaseURL, "/"),
	}
}

// Present returns the card for doc.
func (p *DocumentPresenter) Present(doc domain.RoutedDocument) domain.DocumentCard {
	card := domain.DocumentCard{
		DocumentID: doc.ID,
		Label:      doc.PredictedLabel,
		OpenURL:    p.openURL(doc),
		Department: doc.RouteTo,
	}
	if doc.Probability != nil {
		card.ConfidenceText = fmt.Sprintf("%.2f", *doc.Probability)
	}
	return card
}

// PresentAll returns cards for docs in order.
func (p *DocumentPresenter) PresentAll(docs []domain.RoutedDocument) []domain.DocumentCard {
	cards := make([]domain.DocumentCard, len(docs))
	for i := range docs {
		cards[i] = p.Present(docs[i])
	}
	return cards
}

// openURL joins the files base, the route as received and the stored file name.
// Reachability of the link is the file server's concern.
func (p *DocumentPresenter) openURL(doc domain.RoutedDocument) string {
	route := doc.RawRouteTo
	if route == "" {
		route = doc.RouteTo.String()
	}
	return p.filesBaseURL + "/" + url.PathEscape(route) + "/" + url.PathEscape(doc.StoredName())
}
