package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextOverlay shows a block of text, such as the help screen, until any key is pressed.
type TextOverlay struct {
	content   string
	Dismissed bool
	OnDismiss func()
	width     int
}

// NewTextOverlay creates a text overlay for content.
func NewTextOverlay(content string) *TextOverlay {
	return &TextOverlay{content: content}
}

// SetWidth sets the overlay width. Zero fits the content.
func (t *TextOverlay) SetWidth(width int) {
	t.width = width
}

// HandleKeyPress closes the overlay on any key.
// Returns true if the overlay should be closed.
func (t *TextOverlay) HandleKeyPress(tea.KeyMsg) bool {
	t.Dismissed = true
	if t.OnDismiss != nil {
		t.OnDismiss()
	}
	return true
}

// Render renders the text overlay.
func (t *TextOverlay) Render() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2)
	if t.width > 0 {
		style = style.Width(t.width)
	}
	return style.Render(t.content)
}
