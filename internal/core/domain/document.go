package domain

import (
	"strings"
	"time"
)

// RoutedDocument is a document classified and routed by the ingest service.
// It is immutable once received.
type RoutedDocument struct {
	// ID is a session-local identifier assigned when the document is registered.
	ID string

	// FileName is the name of the file that was uploaded.
	FileName string

	// PredictedLabel is the classifier's category for the document.
	PredictedLabel string

	// Probability is the classifier's confidence in [0,1], when reported.
	Probability *float64

	// RouteTo is the destination department.
	// Unknown routes are quarantined as DepartmentUnrouted.
	RouteTo Department

	// RawRouteTo is the route exactly as returned by the ingest service.
	RawRouteTo string

	// StoredAt is the storage path reported by the ingest service.
	StoredAt string

	// Note is the routing note reported by the ingest service, if any.
	Note string

	// ReceivedAt is when the ingest response arrived.
	ReceivedAt time.Time
}

// Routed returns true if the document belongs to one of the fixed departments.
func (d *RoutedDocument) Routed() bool {
	return d.RouteTo.IsValid()
}

// StoredName returns the final path segment of StoredAt.
func (d *RoutedDocument) StoredName() string {
	parts := strings.Split(d.StoredAt, "/")
	return parts[len(parts)-1]
}

// DocumentCard is the display representation of a routed document.
type DocumentCard struct {
	// DocumentID links back to the RoutedDocument.
	DocumentID string

	// Label is the predicted label.
	Label string

	// ConfidenceText is the probability with two decimals, or empty when absent.
	ConfidenceText string

	// OpenURL is the file retrieval link.
	OpenURL string

	// Department is the document's destination.
	Department Department
}

// HasConfidence returns true if the card carries a confidence value.
func (c *DocumentCard) HasConfidence() bool {
	return c.ConfidenceText != ""
}
