package services

import (
	"sync"

	"github.com/custodia-labs/idms-console/internal/core/domain"
	"github.com/custodia-labs/idms-console/internal/core/ports/driven"
	"github.com/custodia-labs/idms-console/internal/core/ports/driving"
)

// Ensure DepartmentRouter implements the interface.
var _ driving.DepartmentRouter = (*DepartmentRouter)(nil)

// DepartmentRouter filters the registry by department.
// Its only state is the active department; views are computed on demand.
type DepartmentRouter struct {
	registry driven.DocumentRegistry

	mu     sync.RWMutex
	active domain.Department
}

// NewDepartmentRouter creates a router with the default department selected.
func NewDepartmentRouter(registry driven.DocumentRegistry) *DepartmentRouter {
	return &DepartmentRouter{
		registry: registry,
		active:   domain.DefaultDepartment,
	}
}

// Departments returns the fixed department set in display order.
func (r *DepartmentRouter) Departments() []domain.Department {
	return domain.Departments()
}

// Active returns the selected department.
func (r *DepartmentRouter) Active() domain.Department {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// SelectDepartment changes the active department.
func (r *DepartmentRouter) SelectDepartment(dep domain.Department) error {
	if !dep.IsValid() {
		return domain.ErrUnknownDepartment
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = dep
	return nil
}

// VisibleDocuments returns the active department's documents.
func (r *DepartmentRouter) VisibleDocuments() []domain.RoutedDocument {
	return r.DocumentsFor(r.Active())
}

// DocumentsFor returns the documents routed to dep, in registry order.
func (r *DepartmentRouter) DocumentsFor(dep domain.Department) []domain.RoutedDocument {
	if !dep.IsValid() {
		return []domain.RoutedDocument{}
	}
	return r.filter(dep)
}

// Unrouted returns documents quarantined outside the fixed set.
func (r *DepartmentRouter) Unrouted() []domain.RoutedDocument {
	return r.filter(domain.DepartmentUnrouted)
}

// Counts returns the number of documents per department.
func (r *DepartmentRouter) Counts() map[domain.Department]int {
	counts := make(map[domain.Department]int, 4)
	for _, d := range domain.Departments() {
		counts[d] = 0
	}
	counts[domain.DepartmentUnrouted] = 0
	for _, doc := range r.registry.All() {
		if doc.RouteTo.IsValid() {
			counts[doc.RouteTo]++
		} else {
			counts[domain.DepartmentUnrouted]++
		}
	}
	return counts
}

func (r *DepartmentRouter) filter(dep domain.Department) []domain.RoutedDocument {
	result := []domain.RoutedDocument{}
	for _, doc := range r.registry.All() {
		route := doc.RouteTo
		if !route.IsValid() {
			route = domain.DepartmentUnrouted
		}
		if route == dep {
			result = append(result, doc)
		}
	}
	return result
}
