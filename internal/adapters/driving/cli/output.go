package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/idms-console/internal/core/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563EB"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// styled renders s with style only when the command writes to a terminal.
func styled(cmd *cobra.Command, style lipgloss.Style, s string) string {
	if !isTerminal(cmd.OutOrStderr()) {
		return s
	}
	return style.Render(s)
}

// printDepartment prints a department header followed by its cards.
func printDepartment(cmd *cobra.Command, dep domain.Department, cards []domain.DocumentCard) {
	cmd.Println(styled(cmd, headerStyle, fmt.Sprintf("%s (%d)", dep.Label(), len(cards))))
	if len(cards) == 0 {
		cmd.Println(styled(cmd, mutedStyle, "  No documents"))
		cmd.Println()
		return
	}
	for i := range cards {
		printCard(cmd, &cards[i])
	}
	cmd.Println()
}

// printCard prints a card as a label line and a link line.
func printCard(cmd *cobra.Command, card *domain.DocumentCard) {
	if card.HasConfidence() {
		cmd.Printf("  %s  %s\n", card.Label, styled(cmd, mutedStyle, "confidence "+card.ConfidenceText))
	} else {
		cmd.Printf("  %s\n", card.Label)
	}
	cmd.Printf("    %s\n", card.OpenURL)
}

// cardJSON is the JSON shape of a document card.
type cardJSON struct {
	DocumentID string `json:"document_id"`
	Label      string `json:"label"`
	Confidence string `json:"confidence,omitempty"`
	OpenURL    string `json:"open_url"`
	Department string `json:"department"`
}

func toCardJSON(cards []domain.DocumentCard) []cardJSON {
	out := make([]cardJSON, len(cards))
	for i, c := range cards {
		out[i] = cardJSON{
			DocumentID: c.DocumentID,
			Label:      c.Label,
			Confidence: c.ConfidenceText,
			OpenURL:    c.OpenURL,
			Department: c.Department.String(),
		}
	}
	return out
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
