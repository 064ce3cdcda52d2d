package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/idms-console/internal/core/domain"
	"github.com/custodia-labs/idms-console/internal/core/ports/driven"
	"github.com/custodia-labs/idms-console/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyAPIBaseURL            = "api.base_url"
	keyAPIFilesURL           = "api.files_url"
	keyAPITimeoutSeconds     = "api.timeout_seconds"
	keyRetainFailedSelection = "upload.retain_failed_selection"
	keyJournalEnabled        = "journal.enabled"
	keyWatchIntervalMS       = "watch.interval_ms"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		API: domain.APISettings{
			BaseURL:  s.getString(keyAPIBaseURL, defaults.API.BaseURL),
			FilesURL: s.configStore.GetString(keyAPIFilesURL), // No default - derived from BaseURL
			Timeout:  time.Duration(s.configStore.GetInt(keyAPITimeoutSeconds)) * time.Second,
		},
		Upload: domain.UploadSettings{
			RetainFailedSelection: s.getBool(keyRetainFailedSelection, defaults.Upload.RetainFailedSelection),
		},
		Journal: domain.JournalSettings{
			Enabled: s.getBool(keyJournalEnabled, defaults.Journal.Enabled),
		},
		Watch: domain.WatchSettings{
			Interval: s.getMillis(keyWatchIntervalMS, defaults.Watch.Interval),
		},
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", s.configStore.Path(), err)
	}
	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyAPIBaseURL, settings.API.BaseURL},
		{keyAPIFilesURL, settings.API.FilesURL},
		{keyAPITimeoutSeconds, int(settings.API.Timeout / time.Second)},
		{keyRetainFailedSelection, settings.Upload.RetainFailedSelection},
		{keyJournalEnabled, settings.Journal.Enabled},
		{keyWatchIntervalMS, int(settings.Watch.Interval / time.Millisecond)},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set updates a single setting by key.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case keyAPIBaseURL:
		settings.API.BaseURL = strings.TrimSpace(value)
	case keyAPIFilesURL:
		settings.API.FilesURL = strings.TrimSpace(value)
	case keyAPITimeoutSeconds:
		n, err := parseNonNegativeInt(key, value)
		if err != nil {
			return err
		}
		settings.API.Timeout = time.Duration(n) * time.Second
	case keyRetainFailedSelection:
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		settings.Upload.RetainFailedSelection = b
	case keyJournalEnabled:
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		settings.Journal.Enabled = b
	case keyWatchIntervalMS:
		n, err := parseNonNegativeInt(key, value)
		if err != nil {
			return err
		}
		settings.Watch.Interval = time.Duration(n) * time.Millisecond
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.Save(settings)
}

// Keys returns the recognised config keys in display order.
func (s *SettingsService) Keys() []string {
	return []string{
		keyAPIBaseURL,
		keyAPIFilesURL,
		keyAPITimeoutSeconds,
		keyRetainFailedSelection,
		keyJournalEnabled,
		keyWatchIntervalMS,
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getMillis(key string, defaultVal time.Duration) time.Duration {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return time.Duration(s.configStore.GetInt(key)) * time.Millisecond
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("%w: %s expects true or false", domain.ErrInvalidInput, key)
	}
	return b, nil
}

func parseNonNegativeInt(key, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s expects a non-negative integer", domain.ErrInvalidInput, key)
	}
	return n, nil
}
