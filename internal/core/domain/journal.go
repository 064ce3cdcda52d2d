package domain

import "time"

// JournalOutcome is the result of a recorded ingest attempt.
type JournalOutcome string

// Available outcomes.
const (
	// OutcomeSucceeded marks an attempt that produced a routed document.
	OutcomeSucceeded JournalOutcome = "succeeded"

	// OutcomeFailed marks an attempt that failed.
	OutcomeFailed JournalOutcome = "failed"
)

// JournalEntry records one ingest attempt.
// The journal is an audit trail; it never repopulates the session registry.
type JournalEntry struct {
	ID          string
	FileName    string
	Outcome     JournalOutcome
	Label       string
	RouteTo     string
	Probability *float64
	Error       string
	CreatedAt   time.Time
}
