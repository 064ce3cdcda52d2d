package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoutedDocument_Routed(t *testing.T) {
	doc := RoutedDocument{RouteTo: DepartmentAdmin}
	assert.True(t, doc.Routed())

	doc = RoutedDocument{RouteTo: DepartmentUnrouted, RawRouteTo: "hr"}
	assert.False(t, doc.Routed())
}

func TestRoutedDocument_StoredName(t *testing.T) {
	tests := []struct {
		name     string
		storedAt string
		expected string
	}{
		{"absolute path", "/data/a.pdf", "a.pdf"},
		{"nested path", "storage/finance/invoice_1.pdf", "invoice_1.pdf"},
		{"bare name", "scan.png", "scan.png"},
		{"trailing slash", "storage/finance/", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := RoutedDocument{StoredAt: tt.storedAt}
			assert.Equal(t, tt.expected, doc.StoredName())
		})
	}
}

func TestDocumentCard_HasConfidence(t *testing.T) {
	card := DocumentCard{ConfidenceText: "0.87"}
	assert.True(t, card.HasConfidence())

	card = DocumentCard{}
	assert.False(t, card.HasConfidence())
}
