// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/idms-console/internal/core/domain"
)

// FileSelected is sent when a path was resolved into an upload candidate.
type FileSelected struct {
	File domain.UploadFile
}

// UploadRequested is a command to submit the selected file.
type UploadRequested struct{}

// UploadCompleted carries the outcome of a submission back to the model.
type UploadCompleted struct {
	File     domain.UploadFile
	Document *domain.RoutedDocument
	Err      error
}

// DepartmentChanged is sent when the active department tab changes.
type DepartmentChanged struct {
	Department domain.Department
}

// CardOpened is sent when a document card is opened.
type CardOpened struct {
	Card domain.DocumentCard
}

// FocusChanged is sent when keyboard focus moves between panels.
type FocusChanged struct {
	Focus Focus
}

// Focus identifies which panel receives key presses.
type Focus int

const (
	// FocusUpload is the path input of the upload panel.
	FocusUpload Focus = iota
	// FocusDocuments is the document card list.
	FocusDocuments
)

// String returns the string representation of the focus.
func (f Focus) String() string {
	switch f {
	case FocusUpload:
		return "upload"
	case FocusDocuments:
		return "documents"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewConsole is the upload panel with the department tabs.
	ViewConsole ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewConsole:
		return "console"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
