package driving

import "github.com/custodia-labs/idms-console/internal/core/domain"

// DepartmentRouter partitions the registry by department and owns the
// active department selection.
type DepartmentRouter interface {
	// Departments returns the fixed department set in display order.
	Departments() []domain.Department

	// Active returns the selected department.
	Active() domain.Department

	// SelectDepartment changes the selection. Departments outside the fixed
	// set return domain.ErrUnknownDepartment and leave it unchanged.
	SelectDepartment(dep domain.Department) error

	// VisibleDocuments returns the active department's documents in registry order.
	VisibleDocuments() []domain.RoutedDocument

	// DocumentsFor returns one department's documents in registry order.
	DocumentsFor(dep domain.Department) []domain.RoutedDocument

	// Unrouted returns documents whose route is outside the fixed set.
	Unrouted() []domain.RoutedDocument

	// Counts returns the number of documents per department, including
	// domain.DepartmentUnrouted.
	Counts() map[domain.Department]int
}
