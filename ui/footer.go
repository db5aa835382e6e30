package ui

import (
	"canvasmenu/keys"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// Footer shows the short key help under the canvas.
type Footer struct {
	help     help.Model
	bindings []key.Binding
}

// NewFooter creates a footer for the canvas bindings.
func NewFooter() *Footer {
	return &Footer{
		help:     help.New(),
		bindings: keys.FooterBindings(),
	}
}

// SetWidth sets the width the help line truncates to.
func (f *Footer) SetWidth(width int) {
	f.help.Width = width
}

func (f *Footer) String() string {
	return f.help.ShortHelpView(f.bindings)
}
