package mcp

import (
	"github.com/custodia-labs/idms-console/internal/core/domain"
	"github.com/custodia-labs/idms-console/internal/core/ports/driving"
)

// FileResolver turns a user-supplied path or file:// URI into an upload file.
type FileResolver func(input string) (*domain.UploadFile, error)

// Ports aggregates the driving port interfaces required by the MCP server.
type Ports struct {
	// Upload submits documents to the ingest service.
	Upload driving.UploadCoordinator

	// Router partitions the session registry by department.
	Router driving.DepartmentRouter

	// Presenter builds document cards.
	Presenter driving.DocumentPresenter

	// ResolveFile validates paths passed to ingest_document.
	ResolveFile FileResolver
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	switch {
	case p.Upload == nil:
		return ErrMissingUploadCoordinator
	case p.Router == nil:
		return ErrMissingDepartmentRouter
	case p.Presenter == nil:
		return ErrMissingDocumentPresenter
	case p.ResolveFile == nil:
		return ErrMissingFileResolver
	}
	return nil
}
