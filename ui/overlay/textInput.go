package overlay

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextInputOverlay asks for a line of text, such as the clipboard contents Paste reads.
type TextInputOverlay struct {
	textarea  textarea.Model
	Title     string
	Submitted bool
	Canceled  bool
	OnSubmit  func(value string)
	OnCancel  func()
	width     int
}

// NewTextInputOverlay creates a new text input overlay with the given title and initial value.
func NewTextInputOverlay(title string, initialValue string) *TextInputOverlay {
	ti := textarea.New()
	ti.SetValue(initialValue)
	ti.Focus()
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	ti.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ti.CharLimit = 0
	ti.SetHeight(3)

	return &TextInputOverlay{
		textarea: ti,
		Title:    title,
		width:    40,
	}
}

// SetWidth sets the overlay width, border and padding included.
func (t *TextInputOverlay) SetWidth(width int) {
	t.width = width
}

// Init initializes the text input overlay model
func (t *TextInputOverlay) Init() tea.Cmd {
	return textarea.Blink
}

// HandleKeyPress processes a key press and updates the state accordingly.
// Returns true if the overlay should be closed.
func (t *TextInputOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyEsc:
		t.Canceled = true
		if t.OnCancel != nil {
			t.OnCancel()
		}
		return true
	case tea.KeyEnter:
		t.Submitted = true
		if t.OnSubmit != nil {
			t.OnSubmit(t.GetValue())
		}
		return true
	default:
		t.textarea, _ = t.textarea.Update(msg)
		return false
	}
}

// GetValue returns the current value of the text input.
func (t *TextInputOverlay) GetValue() string {
	return t.textarea.Value()
}

// Render renders the text input overlay.
func (t *TextInputOverlay) Render() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("62")).
		Bold(true).
		MarginBottom(1)

	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	// Account for padding and borders.
	t.textarea.SetWidth(max(t.width-6, 10))

	content := titleStyle.Render(t.Title) + "\n"
	content += t.textarea.View() + "\n\n"
	content += hintStyle.Render("enter to save · esc to cancel")

	return style.Render(content)
}
