package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Defaults for a local ingest service.
const (
	DefaultAPIBaseURL    = "http://localhost:8000"
	DefaultWatchInterval = time.Second
)

// APISettings configures the ingest service endpoints.
type APISettings struct {
	// BaseURL is the root of the ingest service, e.g. http://localhost:8000.
	BaseURL string

	// FilesURL is the file-serving base. Empty means BaseURL + "/files".
	FilesURL string

	// Timeout bounds a single ingest request. Zero means no timeout.
	Timeout time.Duration
}

// ResolvedFilesURL returns the file-serving base without a trailing slash.
func (a APISettings) ResolvedFilesURL() string {
	if a.FilesURL != "" {
		return strings.TrimRight(a.FilesURL, "/")
	}
	return strings.TrimRight(a.BaseURL, "/") + "/files"
}

// UploadSettings configures the upload coordinator.
type UploadSettings struct {
	// RetainFailedSelection keeps the candidate file after a failed upload.
	RetainFailedSelection bool
}

// JournalSettings configures the ingest journal.
type JournalSettings struct {
	// Enabled records every ingest attempt.
	Enabled bool
}

// WatchSettings configures drop-folder watching.
type WatchSettings struct {
	// Interval is the minimum spacing between two drop-folder uploads.
	Interval time.Duration
}

// AppSettings holds all application configuration.
type AppSettings struct {
	API     APISettings
	Upload  UploadSettings
	Journal JournalSettings
	Watch   WatchSettings
}

// DefaultAppSettings returns settings for a local ingest service.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		API: APISettings{
			BaseURL: DefaultAPIBaseURL,
		},
		Journal: JournalSettings{
			Enabled: true,
		},
		Watch: WatchSettings{
			Interval: DefaultWatchInterval,
		},
	}
}

// Validate checks the settings for values the console cannot use.
func (s *AppSettings) Validate() error {
	if err := validateHTTPURL(s.API.BaseURL); err != nil {
		return fmt.Errorf("api base url: %w", err)
	}
	if s.API.FilesURL != "" {
		if err := validateHTTPURL(s.API.FilesURL); err != nil {
			return fmt.Errorf("api files url: %w", err)
		}
	}
	if s.API.Timeout < 0 {
		return fmt.Errorf("%w: negative api timeout", ErrInvalidInput)
	}
	if s.Watch.Interval < 0 {
		return fmt.Errorf("%w: negative watch interval", ErrInvalidInput)
	}
	return nil
}

func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https, got %q", ErrInvalidInput, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host in %q", ErrInvalidInput, raw)
	}
	return nil
}
