package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/idms-console/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/idms-console/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/idms-console/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/idms-console/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/idms-console/internal/adapters/driving/tui/views/departments"
	"github.com/custodia-labs/idms-console/internal/adapters/driving/tui/views/upload"
	"github.com/custodia-labs/idms-console/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	// uploadView is the path input and upload outcome panel.
	uploadView *upload.View

	// departmentsView is the department tabs and card list.
	departmentsView *departments.View

	// statusbar shows the upload state, unrouted count and key hints.
	statusbar *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// focus tracks which panel receives key presses.
	focus messages.Focus

	// opened is the card whose link was last shown.
	opened *domain.DocumentCard

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	app := &App{
		ports:           ports,
		ctx:             context.Background(),
		styles:          s,
		keymap:          km,
		uploadView:      upload.NewView(s, km, ports.Upload, ports.ResolveFile),
		departmentsView: departments.NewView(s, km, ports.Router, ports.Presenter),
		statusbar:       status.NewBar(s, km),
		currentView:     messages.ViewConsole,
		focus:           messages.FocusUpload,
	}
	app.statusbar.SetUnrouted(app.departmentsView.Unrouted())
	return app, nil
}

// WithContext sets the context for the app and its uploads.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.uploadView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("idms - Document Intake"),
		a.uploadView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.UploadCompleted:
		a.uploadView, cmd = a.uploadView.Update(msg)
		a.handleUploadCompleted(msg)
		return a, cmd

	case messages.DepartmentChanged:
		a.opened = nil
		a.statusbar.Clear()
		return a, nil

	case messages.CardOpened:
		card := msg.Card
		a.opened = &card
		a.statusbar.SetState(status.StateReady)
		a.statusbar.SetMessage(card.OpenURL)
		return a, nil

	case messages.FocusChanged:
		return a, a.setFocus(msg.Focus)

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewHelp {
			a.statusbar.SetState(status.StateHelp)
		} else {
			a.statusbar.Clear()
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusbar.SetState(status.StateError)
		a.statusbar.SetMessage(msg.Err.Error())
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Spinner ticks and cursor blinks belong to the upload panel.
	a.uploadView, cmd = a.uploadView.Update(msg)
	return a, cmd
}

// handleKeyMsg routes key presses by view and focus.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global quit with ctrl+c
	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if a.currentView == messages.ViewHelp {
		switch {
		case keymap.Matches(key, a.keymap.Quit):
			return a, tea.Quit
		case keymap.Matches(key, a.keymap.Back), keymap.Matches(key, a.keymap.Help):
			return a.Update(messages.ViewChanged{View: messages.ViewConsole})
		}
		return a, nil
	}

	var cmd tea.Cmd

	if a.focus == messages.FocusUpload {
		switch {
		case keymap.Matches(key, a.keymap.Back):
			return a, a.setFocus(messages.FocusDocuments)
		case keymap.Matches(key, a.keymap.NextTab):
			return a, a.departmentsView.NextTab()
		case keymap.Matches(key, a.keymap.PrevTab):
			return a, a.departmentsView.PrevTab()
		}
		a.uploadView, cmd = a.uploadView.Update(msg)
		if a.uploadView.Uploading() {
			a.statusbar.SetState(status.StateUploading)
		}
		return a, cmd
	}

	switch {
	case keymap.Matches(key, a.keymap.Quit):
		return a, tea.Quit
	case keymap.Matches(key, a.keymap.Help):
		return a.Update(messages.ViewChanged{View: messages.ViewHelp})
	case keymap.Matches(key, a.keymap.FocusInput):
		return a, a.setFocus(messages.FocusUpload)
	}

	a.departmentsView, cmd = a.departmentsView.Update(msg)
	return a, cmd
}

// setFocus moves keyboard focus between the path input and the cards.
func (a *App) setFocus(focus messages.Focus) tea.Cmd {
	a.focus = focus
	a.statusbar.Update(messages.FocusChanged{Focus: focus})
	if focus == messages.FocusUpload {
		return a.uploadView.Focus()
	}
	a.uploadView.Blur()
	return nil
}

// handleUploadCompleted refreshes the departments and the status bar.
func (a *App) handleUploadCompleted(msg messages.UploadCompleted) {
	switch {
	case errors.Is(msg.Err, domain.ErrUploadInProgress):
		a.statusbar.SetState(status.StateError)
		a.statusbar.SetMessage(a.uploadView.ErrText())
		return
	case errors.Is(msg.Err, domain.ErrNoFileSelected):
		a.statusbar.Clear()
		return
	}

	a.departmentsView.Refresh()
	a.statusbar.SetUnrouted(a.departmentsView.Unrouted())

	if msg.Err != nil {
		a.err = msg.Err
		a.statusbar.SetState(status.StateError)
		a.statusbar.SetMessage(a.uploadView.ErrText())
		return
	}

	a.err = nil
	doc := msg.Document
	a.statusbar.SetState(status.StateUploaded)
	if doc != nil && doc.Routed() {
		a.statusbar.SetMessage(fmt.Sprintf("%s routed to %s", doc.FileName, doc.RouteTo.Label()))
	} else {
		a.statusbar.SetMessage("Uploaded to an unknown department")
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	if a.currentView == messages.ViewHelp {
		return lipgloss.JoinVertical(lipgloss.Left, a.viewHelp(), a.statusbar.View())
	}

	header := a.styles.Title.Render("IDMS") + "  " + a.styles.Muted.Render("Document intake")
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		a.uploadView.View(),
		"",
		a.departmentsView.View(),
		"",
		a.statusbar.View(),
	)
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-12s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Help.Render("[esc] back"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Focus returns the panel that receives key presses.
func (a *App) Focus() messages.Focus {
	return a.focus
}

// Opened returns the card whose link was last shown, or nil.
func (a *App) Opened() *domain.DocumentCard {
	return a.opened
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.uploadView.SetWidth(width)
	a.statusbar.SetWidth(width)
	// Header, upload panel and status bar take ten lines.
	a.departmentsView.SetDimensions(width, height-10)
}
