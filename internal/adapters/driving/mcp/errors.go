// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// IDMS console. It lets assistants submit documents for routing and read the
// session's department views.
package mcp

import "errors"

// Errors returned when required ports are missing.
var (
	ErrMissingUploadCoordinator = errors.New("mcp: upload coordinator is required")
	ErrMissingDepartmentRouter  = errors.New("mcp: department router is required")
	ErrMissingDocumentPresenter = errors.New("mcp: document presenter is required")
	ErrMissingFileResolver      = errors.New("mcp: file resolver is required")
)
