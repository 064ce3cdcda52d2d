package domain

import (
	"fmt"
	"strings"
)

// Department identifies a destination bucket for routed documents.
type Department string

// The fixed department set, plus the quarantine bucket.
const (
	// DepartmentFinance receives invoices, receipts and similar documents.
	DepartmentFinance Department = "finance"

	// DepartmentAdmin receives administrative documents.
	DepartmentAdmin Department = "admin"

	// DepartmentManualReview receives documents that need a human decision.
	DepartmentManualReview Department = "manual_review"

	// DepartmentUnrouted holds documents whose route is outside the fixed set.
	// It is never offered as a tab.
	DepartmentUnrouted Department = "unrouted"
)

// DefaultDepartment is the department selected when a session starts.
const DefaultDepartment = DepartmentFinance

// Departments returns the fixed department set in display order.
func Departments() []Department {
	return []Department{DepartmentFinance, DepartmentAdmin, DepartmentManualReview}
}

// ParseDepartment maps a route string received from the ingest service
// onto the closed department set. Unknown values return DepartmentUnrouted
// together with ErrUnknownDepartment.
func ParseDepartment(s string) (Department, error) {
	d := Department(s)
	if d.IsValid() {
		return d, nil
	}
	return DepartmentUnrouted, fmt.Errorf("%w: %q", ErrUnknownDepartment, s)
}

// IsValid returns true if the department is one of the fixed set.
func (d Department) IsValid() bool {
	switch d {
	case DepartmentFinance, DepartmentAdmin, DepartmentManualReview:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (d Department) String() string {
	return string(d)
}

// Label returns the tab label for the department.
func (d Department) Label() string {
	return strings.ToUpper(string(d))
}

// Description returns a human-readable description of the department.
func (d Department) Description() string {
	switch d {
	case DepartmentFinance:
		return "Finance"
	case DepartmentAdmin:
		return "Administration"
	case DepartmentManualReview:
		return "Manual Review"
	case DepartmentUnrouted:
		return "Unrouted"
	default:
		return "Unknown"
	}
}
