// Package upload provides the upload panel of the console view.
package upload

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/idms-console/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/idms-console/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/idms-console/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/idms-console/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/idms-console/internal/core/domain"
	"github.com/custodia-labs/idms-console/internal/core/ports/driving"
)

// FileResolver turns a user-supplied path or file:// URI into an upload file.
type FileResolver func(input string) (*domain.UploadFile, error)

// View is the upload panel: a path input, a progress spinner and the
// outcome of the last submission.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	input   *input.PathInput
	spinner spinner.Model

	coordinator driving.UploadCoordinator
	resolve     FileResolver
	ctx         context.Context

	uploading bool
	pending   string
	errText   string
	last      *domain.RoutedDocument
	width     int
}

// NewView creates a new upload panel.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	coordinator driving.UploadCoordinator,
	resolve FileResolver,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Subtitle

	return &View{
		styles:      s,
		keymap:      km,
		input:       input.NewPathInput(s),
		spinner:     sp,
		coordinator: coordinator,
		resolve:     resolve,
		ctx:         context.Background(),
		width:       80,
	}
}

// WithContext sets the context submissions run under.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the upload panel.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if keymap.Matches(msg.String(), v.keymap.Submit) {
			return v, v.submit()
		}

	case messages.UploadCompleted:
		v.handleCompleted(msg)
		return v, nil

	case spinner.TickMsg:
		if !v.uploading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// submit resolves the typed path, selects it and starts the upload.
// Nothing happens while an upload is in flight.
func (v *View) submit() tea.Cmd {
	if v.uploading {
		return nil
	}

	raw := strings.TrimSpace(v.input.Value())
	if raw == "" {
		v.errText = "Choose a file to upload"
		return nil
	}

	file, err := v.resolve(raw)
	if err != nil {
		v.errText = "Cannot read " + raw
		return nil
	}

	v.coordinator.SelectFile(file)
	v.uploading = true
	v.pending = file.Name
	v.errText = ""

	selected := *file
	coordinator := v.coordinator
	ctx := v.ctx
	run := func() tea.Msg {
		doc, err := coordinator.Submit(ctx)
		return messages.UploadCompleted{File: selected, Document: doc, Err: err}
	}
	return tea.Batch(v.spinner.Tick, run)
}

// uploadBusyMessage is shown when another caller holds the coordinator.
const uploadBusyMessage = "Another upload is in progress"

func (v *View) handleCompleted(msg messages.UploadCompleted) {
	v.uploading = false
	v.pending = ""

	// Rejected submissions leave the coordinator untouched and keep the typed path.
	switch {
	case errors.Is(msg.Err, domain.ErrUploadInProgress):
		v.errText = uploadBusyMessage
		return
	case errors.Is(msg.Err, domain.ErrNoFileSelected):
		return
	}

	if msg.Err != nil {
		v.errText = v.coordinator.LastError()
		if v.errText == "" {
			v.errText = domain.UploadFailedMessage
		}
		if v.coordinator.Candidate() == nil {
			v.input.Reset()
		}
		return
	}

	v.errText = ""
	v.last = msg.Document
	v.input.Reset()
}

// View renders the upload panel.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Upload"))
	b.WriteString("\n")
	b.WriteString(v.input.View())
	b.WriteString("\n")

	switch {
	case v.uploading:
		b.WriteString(v.spinner.View() + " " + v.styles.Muted.Render("Uploading "+v.pending+"..."))
	case v.errText != "":
		b.WriteString(v.styles.Error.Render(v.errText))
	case v.last != nil:
		b.WriteString(v.renderLast())
	default:
		b.WriteString(v.styles.Muted.Render("Enter a path and press enter to upload"))
	}

	return b.String()
}

func (v *View) renderLast() string {
	if !v.last.Routed() {
		return v.styles.Warning.Render(fmt.Sprintf(
			"%s was routed to unknown department %q", v.last.FileName, v.last.RawRouteTo))
	}
	return v.styles.Success.Render(fmt.Sprintf(
		"%s classified as %s, routed to %s", v.last.FileName, v.last.PredictedLabel, v.last.RouteTo.Label()))
}

// Focus gives the path input keyboard focus.
func (v *View) Focus() tea.Cmd {
	return v.input.Focus()
}

// Blur removes keyboard focus from the path input.
func (v *View) Blur() {
	v.input.Blur()
}

// Focused returns whether the path input has focus.
func (v *View) Focused() bool {
	return v.input.Focused()
}

// Uploading returns whether a submission is in flight.
func (v *View) Uploading() bool {
	return v.uploading
}

// ErrText returns the message shown for the last failure.
func (v *View) ErrText() string {
	return v.errText
}

// Last returns the most recently routed document.
func (v *View) Last() *domain.RoutedDocument {
	return v.last
}

// Value returns the typed path.
func (v *View) Value() string {
	return v.input.Value()
}

// SetValue replaces the typed path.
func (v *View) SetValue(value string) {
	v.input.SetValue(value)
}

// SetWidth sets the panel width.
func (v *View) SetWidth(width int) {
	v.width = width
	v.input.SetWidth(width)
}
