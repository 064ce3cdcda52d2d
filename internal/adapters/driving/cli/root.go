// Package cli provides the cobra command tree for idms.
// It is a driving adapter: every command talks to core services through
// driving ports only.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/idms-console/internal/core/domain"
	"github.com/custodia-labs/idms-console/internal/core/ports/driving"
	"github.com/custodia-labs/idms-console/internal/logger"
)

// version is set at build time with -ldflags.
var version = "dev"

// Global flags.
var (
	verbose     bool
	apiOverride string
)

// Services bundles the driving ports the commands use.
type Services struct {
	Upload      driving.UploadCoordinator
	Router      driving.DepartmentRouter
	Presenter   driving.DocumentPresenter
	History     driving.HistoryService
	Settings    driving.SettingsService
	DropFolder  driving.DropFolderService
	ResolveFile func(input string) (*domain.UploadFile, error)

	// Close releases resources such as the journal database.
	Close func() error
}

// Options carries global flag values to the service factory.
type Options struct {
	// APIBaseURL overrides api.base_url for this run when non-empty.
	APIBaseURL string
}

// ServiceFactory builds the services once flags are parsed.
type ServiceFactory func(opts Options) (*Services, error)

var (
	serviceFactory ServiceFactory
	services       *Services
)

var errNotConfigured = errors.New("services not configured")

var rootCmd = &cobra.Command{
	Use:   "idms",
	Short: "Document intake console",
	Long: `idms uploads documents to an intake service that classifies them and routes
each one to a department (finance, admin or manual review).

Run without arguments to open the interactive console.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&apiOverride, "api", "", "ingest service base URL for this run")
}

// SetServiceFactory sets the function that builds services on first use.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
	services = nil
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// loadServices builds the services on first use.
func loadServices() (*Services, error) {
	if services != nil {
		return services, nil
	}
	if serviceFactory == nil {
		return nil, errNotConfigured
	}

	s, err := serviceFactory(Options{APIBaseURL: apiOverride})
	if err != nil {
		return nil, fmt.Errorf("initialising services: %w", err)
	}
	services = s
	return services, nil
}

// Execute runs the root command and releases services afterwards.
func Execute() error {
	defer func() {
		if services != nil && services.Close != nil {
			if err := services.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "closing services: %v\n", err)
			}
		}
	}()
	return rootCmd.Execute()
}
