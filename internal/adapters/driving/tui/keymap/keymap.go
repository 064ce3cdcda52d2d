// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help toggles the help view.
	Help key.Binding

	// Back leaves help or moves focus from the input to the cards.
	Back key.Binding

	// Submit uploads the path in the input.
	Submit key.Binding

	// FocusInput moves focus to the path input.
	FocusInput key.Binding

	// NextTab selects the next department.
	NextTab key.Binding

	// PrevTab selects the previous department.
	PrevTab key.Binding

	// Tabs select a department by position.
	Finance      key.Binding
	Admin        key.Binding
	ManualReview key.Binding

	// Up navigates up in the card list.
	Up key.Binding

	// Down navigates down in the card list.
	Down key.Binding

	// Open shows the open link of the selected card.
	Open key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "upload"),
		),
		FocusInput: key.NewBinding(
			key.WithKeys("/", "u"),
			key.WithHelp("/", "upload a file"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next department"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous department"),
		),
		Finance: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "finance"),
		),
		Admin: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "admin"),
		),
		ManualReview: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "manual review"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "show link"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Help, k.Quit}
}

// UploadHelp returns keybindings shown while the path input is focused.
func (k *KeyMap) UploadHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextTab, k.Back}
}

// DocumentsHelp returns keybindings shown while the card list is focused.
func (k *KeyMap) DocumentsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Open, k.FocusInput, k.NextTab, k.Help}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.FocusInput, k.Back},
		{k.NextTab, k.PrevTab, k.Finance, k.Admin, k.ManualReview},
		{k.Up, k.Down, k.Open},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
