package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyUp KeyName = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEsc // Escape closes a submenu, then the menu.

	KeyMenu      // Open the context menu at the cursor.
	KeyClipboard // Edit the clipboard text used by Paste.
	KeyHelp
	KeyQuit
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"up":        KeyUp,
	"k":         KeyUp,
	"down":      KeyDown,
	"j":         KeyDown,
	"left":      KeyLeft,
	"h":         KeyLeft,
	"right":     KeyRight,
	"l":         KeyRight,
	"enter":     KeyEnter,
	"esc":       KeyEsc,
	"m":         KeyMenu,
	"shift+f10": KeyMenu,
	"y":         KeyClipboard,
	"?":         KeyHelp,
	"q":         KeyQuit,
	"ctrl+c":    KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	KeyRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	KeyEnter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("↵", "choose"),
	),
	KeyEsc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	KeyMenu: key.NewBinding(
		key.WithKeys("m", "shift+f10"),
		key.WithHelp("m", "menu"),
	),
	KeyClipboard: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "clipboard"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// FooterBindings are the bindings shown in the canvas footer, in order.
func FooterBindings() []key.Binding {
	names := []KeyName{KeyUp, KeyDown, KeyLeft, KeyRight, KeyMenu, KeyClipboard, KeyHelp, KeyQuit}
	bindings := make([]key.Binding, 0, len(names))
	for _, name := range names {
		bindings = append(bindings, GlobalkeyBindings[name])
	}
	return bindings
}
