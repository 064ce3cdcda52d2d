// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/custodia-labs/idms-console/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/idms-console/internal/core/domain"
)

// linesPerCard is the rendered height of one card including its border.
const linesPerCard = 4

// CardList displays document cards in a navigable list.
type CardList struct {
	cards    []domain.DocumentCard
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewCardList creates a new card list component.
func NewCardList(s *styles.Styles) *CardList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &CardList{
		styles: s,
		width:  80,
		height: 12,
	}
}

// Init initialises the card list.
func (c *CardList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (c *CardList) Update(msg tea.Msg) (*CardList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			c.MoveUp()
		case "down", "j":
			c.MoveDown()
		}
	}
	return c, nil
}

// View renders the visible window of cards.
func (c *CardList) View() string {
	if len(c.cards) == 0 {
		return c.styles.Muted.Render("No documents")
	}

	visible := c.height / linesPerCard
	if visible < 1 {
		visible = 1
	}

	start := 0
	if c.selected >= visible {
		start = c.selected - visible + 1
	}
	end := start + visible
	if end > len(c.cards) {
		end = len(c.cards)
	}

	rendered := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		rendered = append(rendered, c.renderCard(i, &c.cards[i]))
	}
	if end < len(c.cards) {
		rendered = append(rendered, c.styles.Muted.Render(fmt.Sprintf("  %d more", len(c.cards)-end)))
	}

	return strings.Join(rendered, "\n")
}

// renderCard formats a single card with its label, confidence and link.
func (c *CardList) renderCard(index int, card *domain.DocumentCard) string {
	maxLabelLen := c.width - 24
	if maxLabelLen < 10 {
		maxLabelLen = 10
	}
	label := ansi.Truncate(card.Label, maxLabelLen, "...")

	header := c.styles.Normal.Bold(true).Render(label)
	if card.HasConfidence() {
		header += "  " + c.styles.Muted.Render("confidence "+card.ConfidenceText)
	}

	body := header + "\n" + c.styles.Link.Render(card.OpenURL)

	style := c.styles.Card
	if index == c.selected {
		style = c.styles.SelectedCard
	} else {
		style = style.BorderForeground(c.styles.DepartmentColour(card.Department))
	}

	width := c.width - 2
	if width < 20 {
		width = 20
	}
	return style.Width(width).Render(body)
}

// SetCards replaces the cards, keeping the cursor within range.
func (c *CardList) SetCards(cards []domain.DocumentCard) {
	c.cards = cards
	if c.selected >= len(cards) {
		c.selected = len(cards) - 1
	}
	if c.selected < 0 {
		c.selected = 0
	}
}

// Cards returns the current cards.
func (c *CardList) Cards() []domain.DocumentCard {
	return c.cards
}

// Selected returns the index of the selected card.
func (c *CardList) Selected() int {
	return c.selected
}

// SetSelected sets the selected index.
func (c *CardList) SetSelected(index int) {
	if index >= 0 && index < len(c.cards) {
		c.selected = index
	}
}

// SelectedCard returns the card under the cursor, or nil if none.
func (c *CardList) SelectedCard() *domain.DocumentCard {
	if len(c.cards) == 0 || c.selected < 0 || c.selected >= len(c.cards) {
		return nil
	}
	return &c.cards[c.selected]
}

// MoveUp moves selection up.
func (c *CardList) MoveUp() {
	if c.selected > 0 {
		c.selected--
	}
}

// MoveDown moves selection down.
func (c *CardList) MoveDown() {
	if c.selected < len(c.cards)-1 {
		c.selected++
	}
}

// SetDimensions sets the component dimensions.
func (c *CardList) SetDimensions(width, height int) {
	c.width = width
	c.height = height
}

// Count returns the number of cards.
func (c *CardList) Count() int {
	return len(c.cards)
}

// IsEmpty returns whether the list is empty.
func (c *CardList) IsEmpty() bool {
	return len(c.cards) == 0
}
