package canvas

import (
	"canvasmenu/menu"
)

// Rect is an axis-aligned cell rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p menu.Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Shape is a canvas item: something that can be selected, hit-tested and drawn.
type Shape interface {
	menu.Item
	menu.Detacher
	Bounds() Rect
	// draw paints the shape into the grid.
	draw(g grid)
	setDetached(bool)
}

// base holds what every shape shares.
type base struct {
	kind     menu.Kind
	bounds   Rect
	detached bool
}

func (b *base) Kind() menu.Kind { return b.kind }

func (b *base) Bounds() Rect { return b.bounds }

func (b *base) Detached() bool { return b.detached }

func (b *base) setDetached(d bool) { b.detached = d }

// Copy shows the item's copy notification.
func (b *base) Copy(ctx *menu.Context) error {
	ctx.Notify("Copy", "Copy action: objectType = %s", b.kind)
	return nil
}

// TextItem is an outlined box labelled with its kind.
type TextItem struct {
	base
}

// NewTextItem creates a text item with its top-left corner at x, y.
func NewTextItem(x, y int) *TextItem {
	return &TextItem{base{kind: menu.KindText, bounds: Rect{X: x, Y: y, W: 20, H: 5}}}
}

func (t *TextItem) draw(g grid) {
	g.box(t.bounds)
	g.text(t.bounds.X+2, t.bounds.Y+2, string(t.kind))
}

// SpecialItem is a solid box. Its menu carries no shared clipboard section.
type SpecialItem struct {
	base
}

// NewSpecialItem creates a special item with its top-left corner at x, y.
func NewSpecialItem(x, y int) *SpecialItem {
	return &SpecialItem{base{kind: menu.KindSpecial, bounds: Rect{X: x, Y: y, W: 20, H: 5}}}
}

func (s *SpecialItem) draw(g grid) {
	g.fill(s.bounds, '█')
}

// CircleItem is an ellipse inscribed in its bounds.
type CircleItem struct {
	base
}

// NewCircleItem creates a circle item with its top-left corner at x, y.
func NewCircleItem(x, y int) *CircleItem {
	return &CircleItem{base{kind: menu.KindCircle, bounds: Rect{X: x, Y: y, W: 10, H: 10}}}
}

func (c *CircleItem) draw(g grid) {
	g.ellipse(c.bounds, '●')
}

// GenericItem is an outlined box for kinds the canvas has no dedicated shape for.
type GenericItem struct {
	base
}

// NewGenericItem creates an item of an arbitrary kind.
func NewGenericItem(kind menu.Kind, x, y int) *GenericItem {
	return &GenericItem{base{kind: kind, bounds: Rect{X: x, Y: y, W: 16, H: 3}}}
}

func (i *GenericItem) draw(g grid) {
	g.box(i.bounds)
	g.text(i.bounds.X+1, i.bounds.Y+1, string(i.kind))
}

// NewItem creates the shape for kind. Unknown kinds get a GenericItem.
func NewItem(kind menu.Kind, x, y int) Shape {
	switch kind {
	case menu.KindText:
		return NewTextItem(x, y)
	case menu.KindSpecial:
		return NewSpecialItem(x, y)
	case menu.KindCircle:
		return NewCircleItem(x, y)
	default:
		return NewGenericItem(kind, x, y)
	}
}
