package app

import (
	"strings"

	"canvasmenu/keys"
	"canvasmenu/log"
	"canvasmenu/ui/overlay"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type helpText interface {
	// toContent returns the help UI content.
	toContent() string
	// mask returns the bit mask for this help text. These are used to track which help screens
	// have been seen in the app state.
	mask() uint32
}

type helpTypeGeneral struct{}

type helpTypeWelcome struct{}

func (h helpTypeGeneral) toContent() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Canvas Menu"),
		"",
		"Right-click an item, or press m over it, to open its context menu.",
		"Empty canvas space has its own menu.",
		"",
	)

	for _, category := range keys.GetAllCategories() {
		categoryKeys := keys.GetKeysInCategory(category)
		if len(categoryKeys) == 0 {
			continue
		}

		content = lipgloss.JoinVertical(lipgloss.Left,
			content,
			headerStyle.Render(string(category)+":"),
		)
		for _, keyName := range categoryKeys {
			keyText := keys.GlobalkeyBindings[keyName].Help().Key
			padding := strings.Repeat(" ", max(10-len(keyText), 1))
			keyLine := keyStyle.Render(keyText) + padding + descStyle.Render("- "+keys.GetKeyHelp(keyName).Description)
			content = lipgloss.JoinVertical(lipgloss.Left, content, keyLine)
		}
		content = lipgloss.JoinVertical(lipgloss.Left, content, "")
	}

	return content
}

func (h helpTypeWelcome) toContent() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Welcome"),
		"",
		descStyle.Render("Each item on the canvas has its own context menu."),
		descStyle.Render("Text items and circles also get Copy, Cut and Paste."),
		descStyle.Render("Special items only show their own actions."),
		"",
		keyStyle.Render("m")+descStyle.Render("     - Open the menu at the cursor"),
		keyStyle.Render("y")+descStyle.Render("     - Set the clipboard text used by Paste"),
		keyStyle.Render("?")+descStyle.Render("     - Show all keys"),
	)
}

func (h helpTypeGeneral) mask() uint32 {
	return 1
}

func (h helpTypeWelcome) mask() uint32 {
	return 1 << 1
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#7D56F4"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#36CFC9"))
	keyStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFCC00"))
	descStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
)

// showHelpScreen displays the help screen overlay if it hasn't been shown before
func (m *home) showHelpScreen(helpType helpText, onDismiss func()) (tea.Model, tea.Cmd) {
	var alwaysShow bool
	switch helpType.(type) {
	case helpTypeGeneral:
		alwaysShow = true
	}

	flag := helpType.mask()

	// Only show if we're showing the general help screen or the corresponding flag is not set
	// in the seen bitmask.
	if alwaysShow || (m.appState.GetHelpScreensSeen()&flag) == 0 {
		if err := m.appState.SetHelpScreensSeen(m.appState.GetHelpScreensSeen() | flag); err != nil {
			log.WarningLog.Printf("Failed to save help screen state: %v", err)
		}

		m.textOverlay = overlay.NewTextOverlay(helpType.toContent())
		m.textOverlay.OnDismiss = onDismiss
		if m.width > 0 {
			m.textOverlay.SetWidth(int(float32(m.width) * 0.6))
		}
		m.state = stateHelp
		return m, nil
	}

	if onDismiss != nil {
		onDismiss()
	}
	return m, nil
}

// handleHelpState handles key events when in help state
func (m *home) handleHelpState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key press will close the help overlay
	if m.textOverlay.HandleKeyPress(msg) {
		m.textOverlay = nil
		m.state = stateDefault
		return m, tea.WindowSize()
	}
	return m, nil
}
