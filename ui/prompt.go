package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"canvasmenu/log"
	"canvasmenu/menu"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptDisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	promptNumberStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFCC00"))
)

// FormatMenu lists m with every entry numbered. Submenu entries are numbered by
// path, so "3.1" is the first entry of the third entry's submenu. The returned map
// resolves those numbers back to entries.
func FormatMenu(m menu.Menu) (string, map[string]menu.Entry) {
	var b strings.Builder
	index := make(map[string]menu.Entry)
	formatLevel(&b, m, "", 0, index)
	return b.String(), index
}

func formatLevel(b *strings.Builder, m menu.Menu, prefix string, depth int, index map[string]menu.Entry) {
	indent := strings.Repeat("    ", depth+1)
	n := 0
	for _, e := range m.Compact().Entries {
		if e.Separator {
			b.WriteString(indent + promptDisabledStyle.Render("────") + "\n")
			continue
		}
		n++
		number := fmt.Sprintf("%s%d", prefix, n)
		index[number] = e

		label := e.Label
		if e.HasSubmenu() {
			label += " ▸"
		}
		if !e.Enabled {
			label = promptDisabledStyle.Render(label + " (disabled)")
		}
		fmt.Fprintf(b, "%s%s %s\n", indent, promptNumberStyle.Render(number+"."), label)
		if e.HasSubmenu() {
			formatLevel(b, *e.Submenu, number+".", depth+1, index)
		}
	}
}

// PromptSurface presents menus as a numbered list and reads the choice from a
// line-oriented reader. It blocks until the user picks an entry, enters an empty
// line or the input ends.
type PromptSurface struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptSurface creates a prompt surface reading from in and writing to out.
func NewPromptSurface(in io.Reader, out io.Writer) *PromptSurface {
	return &PromptSurface{in: bufio.NewReader(in), out: out}
}

// Present implements dispatch.Surface.
func (p *PromptSurface) Present(m menu.Menu, at menu.Point) (menu.Entry, bool) {
	listing, index := FormatMenu(m)
	title := m.Title
	if title == "" {
		title = "Menu"
	}
	fmt.Fprintf(p.out, "%s at (%d,%d)\n%s", title, at.X, at.Y, listing)

	for {
		fmt.Fprint(p.out, "choose an entry (empty to dismiss): ")
		line, err := p.in.ReadString('\n')
		choice := strings.TrimSpace(line)
		if choice == "" {
			if err != nil && err != io.EOF {
				log.ErrorLog.Printf("reading menu choice: %v", err)
			}
			fmt.Fprintln(p.out)
			return menu.Entry{}, false
		}

		e, ok := index[choice]
		switch {
		case !ok:
			fmt.Fprintf(p.out, "no entry %q\n", choice)
		case e.HasSubmenu():
			fmt.Fprintf(p.out, "%q opens a submenu, pick one of its entries\n", e.Label)
		case !e.Enabled:
			fmt.Fprintf(p.out, "%q is disabled\n", e.Label)
		default:
			return e, true
		}
		if err != nil {
			return menu.Entry{}, false
		}
	}
}
