package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/idms-console/internal/core/ports/driving"
)

var watchCmd = &cobra.Command{
	Use:   "watch DIR",
	Short: "Upload files as they appear in a directory",
	Long: `Watches DIR and uploads every new or rewritten file, one at a time.
Hidden files are skipped. Uploads are spaced by watch.interval_ms.

Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	svc, err := loadServices()
	if err != nil {
		return err
	}
	if svc.DropFolder == nil {
		return fmt.Errorf("drop folder: %w", errNotConfigured)
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", args[0])
	return svc.DropFolder.Run(ctx, args[0], func(r driving.DropResult) {
		if r.Err != nil {
			cmd.Println(styled(cmd, errorStyle, fmt.Sprintf("%s: %s", r.File.Name, svc.Upload.LastError())))
			return
		}
		printRouted(cmd, r.Document)
		card := svc.Presenter.Present(*r.Document)
		printCard(cmd, &card)
	})
}

// commandContext returns the command's context, or Background when unset.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
