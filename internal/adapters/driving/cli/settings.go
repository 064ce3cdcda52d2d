package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the ingest service endpoints, upload behaviour,
the ingest journal and drop-folder pacing.

Settings are stored in ~/.idms/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a single setting",
	Long: `Set a single setting by its config key.

Keys:
  api.base_url                    ingest service root, e.g. http://localhost:8000
  api.files_url                   file server root (default: <base_url>/files)
  api.timeout_seconds             per-request timeout, 0 for none
  upload.retain_failed_selection  keep the selected file after a failed upload
  journal.enabled                 record every upload attempt
  watch.interval_ms               minimum spacing between drop-folder uploads`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeSettingKeys,
	RunE:              runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := loadServices()
	if err != nil {
		return err
	}

	settings, err := svc.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[API]")
	cmd.Printf("  Base URL: %s\n", settings.API.BaseURL)
	cmd.Printf("  Files URL: %s\n", settings.API.ResolvedFilesURL())
	if settings.API.Timeout > 0 {
		cmd.Printf("  Timeout: %s\n", settings.API.Timeout)
	} else {
		cmd.Println("  Timeout: none")
	}
	cmd.Println()

	cmd.Println("[Upload]")
	cmd.Printf("  Retain failed selection: %s\n", yesNo(settings.Upload.RetainFailedSelection))
	cmd.Println()

	cmd.Println("[Journal]")
	cmd.Printf("  Enabled: %s\n", yesNo(settings.Journal.Enabled))
	cmd.Println()

	cmd.Println("[Watch]")
	cmd.Printf("  Interval: %s\n", settings.Watch.Interval)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	svc, err := loadServices()
	if err != nil {
		return err
	}

	if err := svc.Settings.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	svc, err := loadServices()
	if err != nil {
		return err
	}

	settings, err := svc.Settings.Get()
	if err != nil {
		defaults := svc.Settings.GetDefaults()
		settings = &defaults
	}

	cmd.Println("IDMS Settings Wizard")
	cmd.Println("====================")
	cmd.Println("Press enter to keep the value in brackets.")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	settings.API.BaseURL = prompt(cmd, reader, "Ingest service URL", settings.API.BaseURL)
	settings.API.FilesURL = prompt(cmd, reader, "File server URL (empty for <base>/files)", settings.API.FilesURL)

	timeout := prompt(cmd, reader, "Request timeout in seconds (0 for none)",
		strconv.Itoa(int(settings.API.Timeout/time.Second)))
	secs, err := strconv.Atoi(timeout)
	if err != nil || secs < 0 {
		return fmt.Errorf("invalid timeout %q", timeout)
	}
	settings.API.Timeout = time.Duration(secs) * time.Second

	settings.Upload.RetainFailedSelection = promptBool(cmd, reader,
		"Keep the selected file after a failed upload", settings.Upload.RetainFailedSelection)
	settings.Journal.Enabled = promptBool(cmd, reader,
		"Record upload history", settings.Journal.Enabled)

	if err := svc.Settings.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println()
	cmd.Println("Settings saved.")
	return nil
}

// completeSettingKeys offers the config keys for the first argument.
func completeSettingKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	svc, err := loadServices()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return svc.Settings.Keys(), cobra.ShellCompDirectiveNoFileComp
}

// Helper functions.

func prompt(cmd *cobra.Command, reader *bufio.Reader, label, current string) string {
	cmd.Printf("%s [%s]: ", label, current)
	input := readLine(reader)
	if input == "" {
		return current
	}
	return input
}

func promptBool(cmd *cobra.Command, reader *bufio.Reader, label string, current bool) bool {
	input := strings.ToLower(prompt(cmd, reader, label+" (y/n)", yesNo(current)))
	switch input {
	case "y", "yes", "true":
		return true
	case "n", "no", "false":
		return false
	default:
		return current
	}
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
