package memory

import (
	"sync"

	"github.com/custodia-labs/idms-console/internal/core/domain"
	"github.com/custodia-labs/idms-console/internal/core/ports/driven"
)

// Ensure DocumentRegistry implements the interface.
var _ driven.DocumentRegistry = (*DocumentRegistry)(nil)

// DocumentRegistry is the in-memory, session-scoped document registry.
type DocumentRegistry struct {
	mu        sync.RWMutex
	documents []domain.RoutedDocument
}

// NewDocumentRegistry creates an empty registry.
func NewDocumentRegistry() *DocumentRegistry {
	return &DocumentRegistry{
		documents: []domain.RoutedDocument{},
	}
}

// Append adds doc as the newest entry.
func (r *DocumentRegistry) Append(doc domain.RoutedDocument) {
	if doc.Probability != nil {
		p := *doc.Probability
		doc.Probability = &p
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.documents = append(r.documents, doc)
}

// All returns a copy of every entry in insertion order.
func (r *DocumentRegistry) All() []domain.RoutedDocument {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.RoutedDocument, len(r.documents))
	copy(result, r.documents)
	return result
}

// Len returns the number of entries.
func (r *DocumentRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.documents)
}
