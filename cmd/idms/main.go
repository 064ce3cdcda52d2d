// Command idms is the document intake console.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/idms-console/internal/adapters/driven/config/file"
	"github.com/custodia-labs/idms-console/internal/adapters/driven/ingest/httpapi"
	"github.com/custodia-labs/idms-console/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/idms-console/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/idms-console/internal/adapters/driving/cli"
	"github.com/custodia-labs/idms-console/internal/connectors/filesystem"
	"github.com/custodia-labs/idms-console/internal/core/domain"
	"github.com/custodia-labs/idms-console/internal/core/ports/driven"
	"github.com/custodia-labs/idms-console/internal/core/services"
	"github.com/custodia-labs/idms-console/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetServiceFactory(buildServices)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildServices wires adapters into core services.
func buildServices(opts cli.Options) (*cli.Services, error) {
	var configStore driven.ConfigStore
	fileStore, err := file.NewConfigStore("")
	if err != nil {
		logger.Warn("config file unavailable, using defaults: %v", err)
		configStore = memory.NewConfigStore()
	} else {
		configStore = fileStore
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		// Keep the settings commands usable so the file can be fixed.
		logger.Warn("%v; using defaults", err)
		defaults := settingsService.GetDefaults()
		settings = &defaults
	}
	if opts.APIBaseURL != "" {
		settings.API.BaseURL = opts.APIBaseURL
		if err := settings.Validate(); err != nil {
			return nil, fmt.Errorf("--api: %w", err)
		}
	}

	logger.Section("services")
	logger.Debug("ingest service: %s", settings.API.BaseURL)
	logger.Debug("file server: %s", settings.API.ResolvedFilesURL())

	var (
		journal driven.JournalStore
		closeFn = func() error { return nil }
	)
	if settings.Journal.Enabled {
		store, err := sqlite.NewStore("")
		if err != nil {
			logger.Warn("journal database unavailable, keeping history in memory: %v", err)
			journal = memory.NewJournalStore()
		} else {
			journal = store.JournalStore()
			closeFn = store.Close
		}
	}

	registry := memory.NewDocumentRegistry()
	client := httpapi.NewClient(settings.API.BaseURL, settings.API.Timeout)

	uploadOpts := []services.UploadOption{
		services.WithRetainFailedSelection(settings.Upload.RetainFailedSelection),
	}
	if journal != nil {
		uploadOpts = append(uploadOpts, services.WithJournal(journal))
	}
	coordinator := services.NewUploadCoordinator(client, registry, uploadOpts...)

	watcher := filesystem.NewWatcher(filesystem.DefaultSettle)

	return &cli.Services{
		Upload:      coordinator,
		Router:      services.NewDepartmentRouter(registry),
		Presenter:   services.NewDocumentPresenter(settings.API.ResolvedFilesURL()),
		History:     services.NewHistoryService(journal),
		Settings:    settingsService,
		DropFolder:  services.NewDropFolderService(watcher, coordinator, settings.Watch.Interval),
		ResolveFile: resolveUploadFile,
		Close:       closeFn,
	}, nil
}

func resolveUploadFile(input string) (*domain.UploadFile, error) {
	return filesystem.ResolveUploadFile(input)
}
