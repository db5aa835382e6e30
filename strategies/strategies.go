// Package strategies holds the built-in menu strategies for each canvas kind.
package strategies

import (
	"canvasmenu/menu"
)

// Labels of the type-specific entries.
const (
	LabelEditText        = "Edit Text"
	LabelChangeFont      = "Change Font"
	LabelAddSlide        = "Add Slide"
	LabelSlideLayout     = "Slide Layout"
	LabelSpecialOnly     = "No shared actions, type-specific only"
	LabelChangeColor     = "Change Color"
	LabelChangeSize      = "Change Size"
	LabelShapeProperties = "Shape Properties"
	LabelRotate          = "Rotate"
	LabelScale           = "Scale"
)

// Text is the menu for text items, with the shared clipboard section.
func Text() menu.Strategy {
	return menu.Decorate(menu.Static("Text", LabelEditText, LabelChangeFont), menu.Base())
}

// Background is the menu for empty canvas space. Only Paste is shared.
func Background() menu.Strategy {
	return menu.Decorate(menu.Static("Canvas", LabelAddSlide, LabelSlideLayout), menu.PasteOnly())
}

// Special is the menu for special items. It carries no shared section.
func Special() menu.Strategy {
	return menu.Static("Special", LabelSpecialOnly)
}

// Circle is the menu for circle items. It nests a properties submenu above the
// shared clipboard section.
func Circle() menu.Strategy {
	inner := menu.Strategy(func(ctx *menu.Context) menu.Menu {
		props := menu.NewBuilder(ctx).
			Add(LabelRotate, nil).
			Add(LabelScale, nil).
			Menu()
		return menu.NewBuilder(ctx).
			Title("Circle").
			Add(LabelChangeColor, nil).
			Add(LabelChangeSize, nil).
			AddSubmenu(LabelShapeProperties, props).
			Menu()
	})
	return menu.Decorate(inner, menu.Base())
}

// RegisterDefaults registers the built-in strategies on r.
func RegisterDefaults(r *menu.Registry) *menu.Registry {
	return r.
		Register(menu.KindText, Text).
		Register(menu.KindBackground, Background).
		Register(menu.KindSpecial, Special).
		Register(menu.KindCircle, Circle)
}

// NewRegistry returns a registry holding the built-in strategies.
func NewRegistry() *menu.Registry {
	return RegisterDefaults(menu.NewRegistry())
}
