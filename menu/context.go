package menu

import (
	"fmt"
	"reflect"
)

// Kind identifies what sort of target a menu is built for. It doubles as the
// registry key, so new kinds can be added without touching this package.
type Kind string

// Built-in kinds
const (
	KindBackground Kind = "Background"
	KindText       Kind = "TextItem"
	KindSpecial    Kind = "Special"
	KindCircle     Kind = "Circle"
)

func (k Kind) String() string {
	return string(k)
}

// Point is a cell position on the canvas.
type Point struct {
	X, Y int
}

// Item is the capability a selectable canvas item exposes to the menu engine.
type Item interface {
	// Kind returns the item's kind, used to look up its menu strategy.
	Kind() Kind
	// Copy performs the item's copy action.
	Copy(ctx *Context) error
}

// Detacher is implemented by items that can be removed from their canvas while
// still referenced by a selection. A detached item is treated as gone.
type Detacher interface {
	Detached() bool
}

// Canvas is the owning canvas of the items in a selection.
type Canvas interface {
	Remove(items ...Item)
}

// Notifier shows a user-visible message.
type Notifier interface {
	Notify(title, message string)
}

// Clipboard is the shared clipboard capability.
type Clipboard interface {
	ReadText() (string, error)
}

// Context carries the per-trigger references that strategies and commands read.
// A Context is built for a single menu trigger and dropped once the chosen command
// has run. It does not own the items in Selection.
type Context struct {
	// Selection is the ordered set of selected items.
	Selection []Item
	// Canvas is the canvas the selection belongs to, if any.
	Canvas Canvas
	// Surface is the display surface that will present the menu, if any.
	Surface any
	// Notifier receives user-visible messages produced by commands.
	Notifier Notifier
	// Clipboard is the shared clipboard.
	Clipboard Clipboard
	// Pos is where the menu was triggered.
	Pos Point

	extras map[string]any
}

// NewContext creates an empty context.
func NewContext() *Context {
	return &Context{}
}

// Set stores a per-command extension value.
func (c *Context) Set(key string, value any) {
	if c.extras == nil {
		c.extras = make(map[string]any)
	}
	c.extras[key] = value
}

// Value returns a per-command extension value.
func (c *Context) Value(key string) (any, bool) {
	if c == nil || c.extras == nil {
		return nil, false
	}
	v, ok := c.extras[key]
	return v, ok
}

// LiveSelection returns the selected items that still refer to a live item.
func (c *Context) LiveSelection() []Item {
	if c == nil {
		return nil
	}
	live := make([]Item, 0, len(c.Selection))
	for _, item := range c.Selection {
		if isNil(item) {
			continue
		}
		if d, ok := item.(Detacher); ok && d.Detached() {
			continue
		}
		live = append(live, item)
	}
	return live
}

// isNil reports whether item is nil or wraps a nil pointer.
func isNil(item Item) bool {
	if item == nil {
		return true
	}
	v := reflect.ValueOf(item)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Notify sends a message to the context's notifier, if there is one.
func (c *Context) Notify(title, format string, args ...any) {
	if c == nil || c.Notifier == nil {
		return
	}
	c.Notifier.Notify(title, fmt.Sprintf(format, args...))
}

// ExtraValue returns the extension value for key when it holds a T.
func ExtraValue[T any](c *Context, key string) (T, bool) {
	var zero T
	v, ok := c.Value(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
