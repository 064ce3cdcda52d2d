// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/idms-console/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/idms-console/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/idms-console/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateReady     State = "ready"
	StateUploading State = "uploading"
	StateUploaded  State = "uploaded"
	StateError     State = "error"
	StateHelp      State = "help"
)

// Bar displays application status and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	state    State
	message  string
	unrouted int
	focus    messages.Focus
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		focus:  messages.FocusUpload,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	if msg, ok := msg.(messages.FocusChanged); ok {
		s.focus = msg.Focus
	}
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the state, message and unrouted count.
func (s *Bar) renderLeft() string {
	var left string
	switch s.state {
	case StateUploading:
		left = s.styles.Muted.Render("Uploading...")
	case StateUploaded:
		left = s.styles.Success.Render(s.messageOr("Uploaded"))
	case StateError:
		left = s.styles.Error.Render(s.messageOr("Error"))
	case StateHelp:
		left = s.styles.Normal.Render("Help")
	default:
		left = s.styles.Muted.Render(s.messageOr("Ready"))
	}

	if s.unrouted > 0 {
		left += "  " + s.styles.Warning.Render(fmt.Sprintf("%d unrouted", s.unrouted))
	}
	return left
}

func (s *Bar) messageOr(fallback string) string {
	if s.message != "" {
		return s.message
	}
	return fallback
}

// renderRight renders keybinding hints for the focused panel.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	switch {
	case s.state == StateHelp:
		bindings = []key.Binding{s.keymap.Back, s.keymap.Quit}
	case s.focus == messages.FocusDocuments:
		bindings = s.keymap.DocumentsHelp()
	default:
		bindings = s.keymap.UploadHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetUnrouted sets the number of quarantined documents.
func (s *Bar) SetUnrouted(count int) {
	s.unrouted = count
}

// Unrouted returns the number of quarantined documents.
func (s *Bar) Unrouted() int {
	return s.unrouted
}

// Focus returns the panel whose hints are shown.
func (s *Bar) Focus() messages.Focus {
	return s.focus
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the state and message.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}
