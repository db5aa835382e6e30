package overlay

import (
	"strings"

	"canvasmenu/menu"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	submenuMarker = " ▸"
	emptyLabel    = "(empty)"
)

var (
	menuBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
	menuSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("62")).
				Foreground(lipgloss.Color("0"))
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	menuDisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// menuLevel is one open menu box: the root or a submenu.
type menuLevel struct {
	rows     []menu.Entry
	selected int
	// x, y is the top-left corner of the box, border included.
	x, y  int
	inner int // content width
}

func (l *menuLevel) width() int  { return l.inner + 4 }
func (l *menuLevel) height() int { return max(len(l.rows), 1) + 2 }

// rowAt returns the row index under screen position x, y.
func (l *menuLevel) rowAt(x, y int) (int, bool) {
	if x <= l.x || x >= l.x+l.width()-1 {
		return 0, false
	}
	row := y - l.y - 1
	if row < 0 || row >= len(l.rows) {
		return 0, false
	}
	return row, true
}

// ContextMenuOverlay shows a built menu as a bordered popup, with nested boxes
// for open submenus. It is modal: every key and mouse event goes to it until it
// closes.
type ContextMenuOverlay struct {
	levels []*menuLevel

	minWidth     int
	showDisabled bool
	// Screen size, for keeping boxes on screen.
	width, height int

	// Chosen is the entry the user picked, or nil when dismissed.
	Chosen    *menu.Entry
	Dismissed bool
	OnChoose  func(menu.Entry)
	OnCancel  func()
}

// NewContextMenuOverlay creates an overlay for m anchored at x, y. Disabled entries
// are drawn dimmed when showDisabled is set and left out otherwise.
func NewContextMenuOverlay(m menu.Menu, x, y, minWidth int, showDisabled bool) *ContextMenuOverlay {
	c := &ContextMenuOverlay{
		minWidth:     minWidth,
		showDisabled: showDisabled,
	}
	c.levels = []*menuLevel{c.newLevel(m, x, y)}
	return c
}

// SetSize sets the screen size and repositions open boxes to stay on screen.
func (c *ContextMenuOverlay) SetSize(width, height int) {
	c.width = width
	c.height = height
	for i, l := range c.levels {
		if i == 0 {
			l.x, l.y = c.fit(l, l.x, l.y)
			continue
		}
		c.placeSubmenu(c.levels[i-1], l)
	}
}

func (c *ContextMenuOverlay) newLevel(m menu.Menu, x, y int) *menuLevel {
	rows := m.Compact().Entries
	if !c.showDisabled {
		visible := menu.Menu{Entries: make([]menu.Entry, 0, len(rows))}
		for _, e := range rows {
			if e.Separator || e.Enabled {
				visible.Entries = append(visible.Entries, e)
			}
		}
		rows = visible.Compact().Entries
	}

	inner := c.minWidth
	for _, e := range rows {
		w := runewidth.StringWidth(e.Label)
		if e.HasSubmenu() {
			w += runewidth.StringWidth(submenuMarker)
		}
		inner = max(inner, w)
	}
	if len(rows) == 0 {
		inner = max(inner, runewidth.StringWidth(emptyLabel))
	}

	l := &menuLevel{rows: rows, selected: -1, inner: inner}
	l.x, l.y = c.fit(l, x, y)
	l.selected = l.next(-1, 1)
	return l
}

// fit keeps a box inside the screen when its size is known.
func (c *ContextMenuOverlay) fit(l *menuLevel, x, y int) (int, int) {
	if c.width > 0 && x+l.width() > c.width {
		x = c.width - l.width()
	}
	if c.height > 0 && y+l.height() > c.height {
		y = c.height - l.height()
	}
	return max(x, 0), max(y, 0)
}

// placeSubmenu puts sub to the right of its parent's selected row, or to the left
// when there is no room.
func (c *ContextMenuOverlay) placeSubmenu(parent, sub *menuLevel) {
	x := parent.x + parent.width()
	y := parent.y + max(parent.selected, 0)
	if c.width > 0 && x+sub.width() > c.width {
		x = parent.x - sub.width()
	}
	sub.x, sub.y = c.fit(sub, x, y)
}

// next returns the next selectable row after from in direction dir, wrapping. It
// returns from when nothing else is selectable, or -1 when the level is empty.
func (l *menuLevel) next(from, dir int) int {
	n := len(l.rows)
	for i := 1; i <= n; i++ {
		idx := ((from+dir*i)%n + n) % n
		if l.rows[idx].Selectable() {
			return idx
		}
	}
	if from >= 0 && from < n && l.rows[from].Selectable() {
		return from
	}
	return -1
}

func (c *ContextMenuOverlay) top() *menuLevel {
	return c.levels[len(c.levels)-1]
}

// Depth returns the number of open boxes.
func (c *ContextMenuOverlay) Depth() int {
	return len(c.levels)
}

// Selected returns the highlighted entry of the innermost open box.
func (c *ContextMenuOverlay) Selected() (menu.Entry, bool) {
	l := c.top()
	if l.selected < 0 || l.selected >= len(l.rows) {
		return menu.Entry{}, false
	}
	return l.rows[l.selected], true
}

// MoveSelection moves the highlight of the innermost box by delta selectable rows.
func (c *ContextMenuOverlay) MoveSelection(delta int) {
	l := c.top()
	dir := 1
	if delta < 0 {
		dir, delta = -1, -delta
	}
	for ; delta > 0; delta-- {
		if idx := l.next(l.selected, dir); idx >= 0 {
			l.selected = idx
		}
	}
}

// openSubmenu opens the highlighted entry's submenu, if it has one.
func (c *ContextMenuOverlay) openSubmenu() bool {
	e, ok := c.Selected()
	if !ok || !e.HasSubmenu() || !e.Selectable() {
		return false
	}
	parent := c.top()
	sub := c.newLevel(*e.Submenu, 0, 0)
	c.placeSubmenu(parent, sub)
	c.levels = append(c.levels, sub)
	return true
}

func (c *ContextMenuOverlay) closeSubmenu() bool {
	if len(c.levels) <= 1 {
		return false
	}
	c.levels = c.levels[:len(c.levels)-1]
	return true
}

func (c *ContextMenuOverlay) choose(e menu.Entry) bool {
	c.Chosen = &e
	if c.OnChoose != nil {
		c.OnChoose(e)
	}
	return true
}

func (c *ContextMenuOverlay) dismiss() bool {
	c.Dismissed = true
	if c.OnCancel != nil {
		c.OnCancel()
	}
	return true
}

// activate opens the highlighted submenu or chooses the highlighted entry.
func (c *ContextMenuOverlay) activate() bool {
	e, ok := c.Selected()
	if !ok || !e.Selectable() {
		return false
	}
	if e.HasSubmenu() {
		c.openSubmenu()
		return false
	}
	return c.choose(e)
}

// HandleKeyPress processes a key press and updates the state accordingly.
// Returns true if the overlay should be closed.
func (c *ContextMenuOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "k", "shift+tab":
		c.MoveSelection(-1)
	case "down", "j", "tab":
		c.MoveSelection(1)
	case "right", "l":
		c.openSubmenu()
	case "left", "h":
		c.closeSubmenu()
	case "enter", " ":
		return c.activate()
	case "esc":
		if !c.closeSubmenu() {
			return c.dismiss()
		}
	case "q", "ctrl+c":
		return c.dismiss()
	}
	return false
}

// HandleMouse processes a mouse event. A left click on an entry chooses it or
// opens its submenu, and a click outside every box dismisses the menu.
// Returns true if the overlay should be closed.
func (c *ContextMenuOverlay) HandleMouse(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}
	depth, row, ok := c.ItemAtPosition(msg.X, msg.Y)
	if !ok {
		if c.inside(msg.X, msg.Y) {
			return false
		}
		return c.dismiss()
	}
	if msg.Button != tea.MouseButtonLeft {
		return false
	}

	c.levels = c.levels[:depth+1]
	l := c.top()
	e := l.rows[row]
	if !e.Selectable() {
		return false
	}
	l.selected = row
	return c.activate()
}

// ItemAtPosition returns the box depth and row of the entry at screen position x, y,
// checking the innermost box first.
func (c *ContextMenuOverlay) ItemAtPosition(x, y int) (depth, row int, ok bool) {
	for i := len(c.levels) - 1; i >= 0; i-- {
		if r, hit := c.levels[i].rowAt(x, y); hit {
			return i, r, true
		}
	}
	return 0, 0, false
}

// inside reports whether x, y falls on any open box, border included.
func (c *ContextMenuOverlay) inside(x, y int) bool {
	for _, l := range c.levels {
		if x >= l.x && x < l.x+l.width() && y >= l.y && y < l.y+l.height() {
			return true
		}
	}
	return false
}

// Bounds returns the root box position and size.
func (c *ContextMenuOverlay) Bounds() (x, y, width, height int) {
	l := c.levels[0]
	return l.x, l.y, l.width(), l.height()
}

// Render renders the root box.
func (c *ContextMenuOverlay) Render() string {
	return renderLevel(c.levels[0])
}

// Place draws every open box over bg.
func (c *ContextMenuOverlay) Place(bg string) string {
	for _, l := range c.levels {
		bg = PlaceOverlay(l.x, l.y, renderLevel(l), bg, false, false)
	}
	return bg
}

func renderLevel(l *menuLevel) string {
	lines := make([]string, 0, len(l.rows))
	for i, e := range l.rows {
		if e.Separator {
			lines = append(lines, menuDisabledStyle.Render(strings.Repeat("─", l.inner)))
			continue
		}
		label := e.Label
		if e.HasSubmenu() {
			pad := l.inner - runewidth.StringWidth(label) - runewidth.StringWidth(submenuMarker)
			label += strings.Repeat(" ", max(pad, 0)) + submenuMarker
		}
		label = runewidth.FillRight(label, l.inner)

		switch {
		case !e.Enabled:
			lines = append(lines, menuDisabledStyle.Render(label))
		case i == l.selected:
			lines = append(lines, menuSelectedStyle.Render(label))
		default:
			lines = append(lines, menuItemStyle.Render(label))
		}
	}
	if len(lines) == 0 {
		lines = append(lines, menuDisabledStyle.Render(runewidth.FillRight(emptyLabel, l.inner)))
	}
	return menuBorderStyle.Render(strings.Join(lines, "\n"))
}
