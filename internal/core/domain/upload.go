package domain

import (
	"path/filepath"
)

// UploadFile is the candidate file held by the upload coordinator.
type UploadFile struct {
	// Name is the file name sent in the multipart part.
	Name string

	// Path is the local path the bytes are read from.
	Path string
}

// NewUploadFile creates an UploadFile named after the base of path.
func NewUploadFile(path string) *UploadFile {
	return &UploadFile{
		Name: filepath.Base(path),
		Path: path,
	}
}

// UploadState is a state of the upload state machine.
type UploadState int

const (
	// UploadIdle means no upload has been attempted yet.
	UploadIdle UploadState = iota
	// UploadUploading means a single request is in flight.
	UploadUploading
	// UploadSucceeded means the last upload produced a routed document.
	UploadSucceeded
	// UploadFailed means the last upload failed.
	UploadFailed
)

// String returns the string representation of the upload state.
func (s UploadState) String() string {
	switch s {
	case UploadIdle:
		return "idle"
	case UploadUploading:
		return "uploading"
	case UploadSucceeded:
		return "succeeded"
	case UploadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// AcceptsSubmit returns true if a new submission may start from this state.
func (s UploadState) AcceptsSubmit() bool {
	return s != UploadUploading
}
