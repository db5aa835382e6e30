package menu

// Separator is the label Labels uses for separator entries.
const Separator = "---"

// Entry is one row of a built menu.
type Entry struct {
	Label string
	// Command runs when the entry is chosen. Never nil in a built menu.
	Command Command
	// Enabled is the command's enabled state at build time.
	Enabled bool
	// Separator marks a divider row; it has no label or command.
	Separator bool
	// Submenu holds nested entries, if this entry opens one.
	Submenu *Menu
}

// HasSubmenu reports whether the entry opens a nested menu.
func (e Entry) HasSubmenu() bool {
	return e.Submenu != nil
}

// Selectable reports whether the entry can be chosen.
func (e Entry) Selectable() bool {
	return !e.Separator && e.Enabled
}

// Menu is an ordered list of entries.
type Menu struct {
	Title   string
	Entries []Entry
}

// Len returns the number of entries, separators included.
func (m Menu) Len() int {
	return len(m.Entries)
}

// Labels flattens the top level to labels, using Separator for dividers.
func (m Menu) Labels() []string {
	labels := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		if e.Separator {
			labels = append(labels, Separator)
			continue
		}
		labels = append(labels, e.Label)
	}
	return labels
}

// Find returns the first top-level entry with the given label.
func (m Menu) Find(label string) (Entry, bool) {
	for _, e := range m.Entries {
		if !e.Separator && e.Label == label {
			return e, true
		}
	}
	return Entry{}, false
}

// Compact returns a copy without leading, trailing or repeated separators, for
// display. Submenus are compacted too.
func (m Menu) Compact() Menu {
	out := Menu{Title: m.Title, Entries: make([]Entry, 0, len(m.Entries))}
	pending := false
	for _, e := range m.Entries {
		if e.Separator {
			pending = len(out.Entries) > 0
			continue
		}
		if pending {
			out.Entries = append(out.Entries, Entry{Separator: true})
			pending = false
		}
		if e.Submenu != nil {
			sub := e.Submenu.Compact()
			e.Submenu = &sub
		}
		out.Entries = append(out.Entries, e)
	}
	return out
}

// Builder assembles a Menu, evaluating each command's predicates against the
// build context exactly once.
type Builder struct {
	ctx  *Context
	menu Menu
}

// NewBuilder starts an empty menu.
func NewBuilder(ctx *Context) *Builder {
	return &Builder{ctx: ctx, menu: Menu{Entries: []Entry{}}}
}

// Extend starts from an already built menu.
func Extend(ctx *Context, m Menu) *Builder {
	entries := make([]Entry, len(m.Entries), len(m.Entries)+4)
	copy(entries, m.Entries)
	return &Builder{ctx: ctx, menu: Menu{Title: m.Title, Entries: entries}}
}

// Title sets the menu title.
func (b *Builder) Title(title string) *Builder {
	b.menu.Title = title
	return b
}

// Add appends an entry bound to cmd, or to Null when cmd is nil. Entries whose
// command is not visible are skipped.
func (b *Builder) Add(label string, cmd Command) *Builder {
	if cmd == nil {
		cmd = Null{}
	}
	if !cmd.Visible(b.ctx) {
		return b
	}
	b.menu.Entries = append(b.menu.Entries, Entry{
		Label:   label,
		Command: cmd,
		Enabled: cmd.Enabled(b.ctx),
	})
	return b
}

// AddSeparator appends a divider.
func (b *Builder) AddSeparator() *Builder {
	b.menu.Entries = append(b.menu.Entries, Entry{Separator: true})
	return b
}

// AddSubmenu appends an entry that opens sub. The entry is enabled when sub has
// at least one selectable entry.
func (b *Builder) AddSubmenu(label string, sub Menu) *Builder {
	if sub.Title == "" {
		sub.Title = label
	}
	enabled := false
	for _, e := range sub.Entries {
		if e.Selectable() || e.HasSubmenu() {
			enabled = true
			break
		}
	}
	b.menu.Entries = append(b.menu.Entries, Entry{
		Label:   label,
		Command: Null{},
		Enabled: enabled,
		Submenu: &sub,
	})
	return b
}

// Context returns the build context.
func (b *Builder) Context() *Context {
	return b.ctx
}

// Menu returns the built menu.
func (b *Builder) Menu() Menu {
	return b.menu
}
