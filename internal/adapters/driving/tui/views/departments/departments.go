// Package departments provides the department tabs and document cards
// of the console view.
package departments

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/idms-console/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/idms-console/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/idms-console/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/idms-console/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/idms-console/internal/core/domain"
	"github.com/custodia-labs/idms-console/internal/core/ports/driving"
)

// View shows one tab per department and the cards of the active one.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	cards  *list.CardList

	router    driving.DepartmentRouter
	presenter driving.DocumentPresenter

	counts map[domain.Department]int
	width  int
	height int
}

// NewView creates a departments view and loads the active department.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	router driving.DepartmentRouter,
	presenter driving.DocumentPresenter,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		cards:     list.NewCardList(s),
		router:    router,
		presenter: presenter,
		width:     80,
		height:    20,
	}
	v.Refresh()
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys for the tabs and cards.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	key := keyMsg.String()
	switch {
	case keymap.Matches(key, v.keymap.NextTab):
		return v, v.NextTab()
	case keymap.Matches(key, v.keymap.PrevTab):
		return v, v.PrevTab()
	case keymap.Matches(key, v.keymap.Finance):
		return v, v.Select(domain.DepartmentFinance)
	case keymap.Matches(key, v.keymap.Admin):
		return v, v.Select(domain.DepartmentAdmin)
	case keymap.Matches(key, v.keymap.ManualReview):
		return v, v.Select(domain.DepartmentManualReview)
	case keymap.Matches(key, v.keymap.Open):
		return v, v.open()
	}

	var cmd tea.Cmd
	v.cards, cmd = v.cards.Update(msg)
	return v, cmd
}

// Refresh recomputes the cards and counts from the router.
func (v *View) Refresh() {
	v.counts = v.router.Counts()
	v.cards.SetCards(v.presenter.PresentAll(v.router.VisibleDocuments()))
}

// Select makes dep the active department.
func (v *View) Select(dep domain.Department) tea.Cmd {
	if dep == v.router.Active() {
		return nil
	}
	if err := v.router.SelectDepartment(dep); err != nil {
		return func() tea.Msg { return messages.ErrorOccurred{Err: err} }
	}
	v.cards.SetSelected(0)
	v.Refresh()
	return func() tea.Msg { return messages.DepartmentChanged{Department: dep} }
}

// NextTab selects the department to the right, wrapping around.
func (v *View) NextTab() tea.Cmd {
	return v.step(1)
}

// PrevTab selects the department to the left, wrapping around.
func (v *View) PrevTab() tea.Cmd {
	return v.step(-1)
}

func (v *View) step(delta int) tea.Cmd {
	deps := v.router.Departments()
	idx := 0
	for i, d := range deps {
		if d == v.router.Active() {
			idx = i
			break
		}
	}
	next := (idx + delta + len(deps)) % len(deps)
	return v.Select(deps[next])
}

func (v *View) open() tea.Cmd {
	card := v.cards.SelectedCard()
	if card == nil {
		return nil
	}
	opened := *card
	return func() tea.Msg { return messages.CardOpened{Card: opened} }
}

// View renders the tabs and the active department's cards.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(v.cards.View())

	return b.String()
}

func (v *View) renderTabs() string {
	active := v.router.Active()
	deps := v.router.Departments()

	tabs := make([]string, 0, len(deps))
	for _, d := range deps {
		label := fmt.Sprintf("%s (%d)", d.Label(), v.counts[d])
		if d == active {
			tabs = append(tabs, v.styles.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, v.styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// Active returns the active department.
func (v *View) Active() domain.Department {
	return v.router.Active()
}

// Cards returns the cards currently shown.
func (v *View) Cards() []domain.DocumentCard {
	return v.cards.Cards()
}

// SelectedCard returns the card under the cursor, or nil.
func (v *View) SelectedCard() *domain.DocumentCard {
	return v.cards.SelectedCard()
}

// Unrouted returns the number of quarantined documents.
func (v *View) Unrouted() int {
	return v.counts[domain.DepartmentUnrouted]
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	// Tabs take two lines.
	v.cards.SetDimensions(width, height-2)
}
