package tui

import "errors"

// ErrMissingUploadCoordinator is returned when the upload coordinator is not provided.
var ErrMissingUploadCoordinator = errors.New("tui: upload coordinator is required")

// ErrMissingDepartmentRouter is returned when the department router is not provided.
var ErrMissingDepartmentRouter = errors.New("tui: department router is required")

// ErrMissingDocumentPresenter is returned when the document presenter is not provided.
var ErrMissingDocumentPresenter = errors.New("tui: document presenter is required")

// ErrMissingFileResolver is returned when the file resolver is not provided.
var ErrMissingFileResolver = errors.New("tui: file resolver is required")
