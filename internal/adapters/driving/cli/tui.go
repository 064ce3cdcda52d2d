package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/idms-console/internal/adapters/driving/tui"
	"github.com/custodia-labs/idms-console/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive console",
	Long: `Launch the interactive intake console.

Type a path and press enter to upload it. Routed documents appear under
their department tab.

Controls:
  enter          - Upload / show card link
  tab, shift+tab - Switch department
  1, 2, 3        - Jump to a department (cards focused)
  esc            - Focus the cards
  /              - Focus the path input
  ?              - Toggle help
  ctrl+c         - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	// The console owns the terminal; verbose logs go to a file.
	if logger.IsVerbose() {
		closeLog, err := redirectLog()
		if err != nil {
			return err
		}
		defer closeLog()
	}

	svc, err := loadServices()
	if err != nil {
		return err
	}

	ports := tui.NewPorts(svc.Upload, svc.Router, svc.Presenter, svc.ResolveFile)
	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(commandContext(cmd)).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// redirectLog sends log output to ~/.idms/idms.log until the returned
// function is called.
func redirectLog() (func(), error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("locating home directory: %w", err)
	}
	dir := filepath.Join(home, ".idms")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	f, err := os.OpenFile(filepath.Join(dir, "idms.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	previous := logger.Output()
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(previous)
		_ = f.Close()
	}, nil
}
