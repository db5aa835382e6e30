package menu

// Entry labels shared by the clipboard sections.
const (
	LabelCopy  = "Copy"
	LabelCut   = "Cut"
	LabelPaste = "Paste"
)

// Strategy builds the menu for one kind of target.
type Strategy func(ctx *Context) Menu

// Build runs the strategy. A nil strategy builds an empty menu.
func (s Strategy) Build(ctx *Context) Menu {
	if s == nil {
		return Menu{Entries: []Entry{}}
	}
	m := s(ctx)
	if m.Entries == nil {
		m.Entries = []Entry{}
	}
	return m
}

// Static returns a strategy that lists the given labels bound to Null commands.
func Static(title string, labels ...string) Strategy {
	return func(ctx *Context) Menu {
		b := NewBuilder(ctx).Title(title)
		for _, label := range labels {
			b.Add(label, nil)
		}
		return b.Menu()
	}
}

// Decorator wraps a strategy and adds entries to its output.
type Decorator func(Strategy) Strategy

// Decorate applies decorators to s in order, so the first decorator's entries
// come right after the wrapped output.
func Decorate(s Strategy, decorators ...Decorator) Strategy {
	for _, d := range decorators {
		if d != nil {
			s = d(s)
		}
	}
	return s
}

// Section is a named command appended by a decorator.
type Section struct {
	Label   string
	Command Command
}

// Append returns a decorator that adds a separator and then sections, in order,
// after the wrapped strategy's entries.
func Append(sections ...Section) Decorator {
	return func(wrapped Strategy) Strategy {
		return func(ctx *Context) Menu {
			b := Extend(ctx, wrapped.Build(ctx))
			b.AddSeparator()
			for _, s := range sections {
				b.Add(s.Label, s.Command)
			}
			return b.Menu()
		}
	}
}

// Base adds the shared clipboard section: Copy, Cut, Paste.
func Base() Decorator {
	return Append(
		Section{Label: LabelCopy, Command: Copy{}},
		Section{Label: LabelCut, Command: Cut()},
		Section{Label: LabelPaste, Command: Paste{}},
	)
}

// PasteOnly adds just Paste, for targets where copy and cut have no meaning.
func PasteOnly() Decorator {
	return Append(Section{Label: LabelPaste, Command: Paste{}})
}
