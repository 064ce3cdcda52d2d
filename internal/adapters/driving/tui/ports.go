// Package tui provides the interactive intake console.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/idms-console/internal/adapters/driving/tui/views/upload"
	"github.com/custodia-labs/idms-console/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Upload submits the selected file to the ingest service.
	Upload driving.UploadCoordinator

	// Router owns the active department and partitions the registry.
	Router driving.DepartmentRouter

	// Presenter builds document cards.
	Presenter driving.DocumentPresenter

	// ResolveFile turns typed paths into upload candidates.
	ResolveFile upload.FileResolver
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	coordinator driving.UploadCoordinator,
	router driving.DepartmentRouter,
	presenter driving.DocumentPresenter,
	resolve upload.FileResolver,
) *Ports {
	return &Ports{
		Upload:      coordinator,
		Router:      router,
		Presenter:   presenter,
		ResolveFile: resolve,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Upload == nil {
		return ErrMissingUploadCoordinator
	}
	if p.Router == nil {
		return ErrMissingDepartmentRouter
	}
	if p.Presenter == nil {
		return ErrMissingDocumentPresenter
	}
	if p.ResolveFile == nil {
		return ErrMissingFileResolver
	}
	return nil
}
