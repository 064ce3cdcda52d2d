package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/idms-console/internal/core/domain"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent ingest attempts",
	Long: `Lists the newest entries of the ingest journal, including failed attempts.
The journal is an audit trail; documents listed here are not loaded into
the console.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output entries as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	svc, err := loadServices()
	if err != nil {
		return err
	}
	if svc.History == nil {
		return fmt.Errorf("%w: enable it with 'idms settings set journal.enabled true'", domain.ErrJournalUnavailable)
	}

	entries, err := svc.History.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if historyJSON {
		if entries == nil {
			entries = []domain.JournalEntry{}
		}
		return printJSON(cmd, entries)
	}

	if len(entries) == 0 {
		cmd.Println("No uploads recorded.")
		return nil
	}

	for i := range entries {
		printEntry(cmd, &entries[i])
	}
	return nil
}

func printEntry(cmd *cobra.Command, e *domain.JournalEntry) {
	when := e.CreatedAt.Local().Format("2006-01-02 15:04:05")
	if e.Outcome == domain.OutcomeFailed {
		cmd.Printf("%s  %s  %s\n", when, e.FileName, styled(cmd, errorStyle, "failed: "+e.Error))
		return
	}

	confidence := ""
	if e.Probability != nil {
		confidence = fmt.Sprintf(" (%.2f)", *e.Probability)
	}
	cmd.Printf("%s  %s  %s%s → %s\n", when, e.FileName, e.Label, confidence, e.RouteTo)
}
