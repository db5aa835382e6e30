package ui

import (
	"fmt"

	"canvasmenu/canvas"
	"canvasmenu/log"
	"canvasmenu/menu"
	"canvasmenu/ui/overlay"

	"github.com/charmbracelet/lipgloss"
)

var (
	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#FFFF00")).
			Foreground(lipgloss.Color("#000000"))
	canvasTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#7D56F4"))
	canvasHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// CursorStore persists the cursor between runs.
type CursorStore interface {
	SetCursor(x, y int) error
	GetCursor() (int, int)
}

// CanvasView draws the scene with a keyboard cursor. The cursor is where the menu
// key opens a context menu.
type CanvasView struct {
	scene  *canvas.Scene
	cursor menu.Point
	store  CursorStore

	width, height int
}

// NewCanvasView creates a view of scene. store may be nil.
func NewCanvasView(scene *canvas.Scene, store CursorStore) *CanvasView {
	v := &CanvasView{scene: scene, store: store}
	v.loadUIState()
	return v
}

// SetSize sets the drawing area, title line included.
func (v *CanvasView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.SetCursor(v.cursor)
}

// Scene returns the scene being drawn.
func (v *CanvasView) Scene() *canvas.Scene {
	return v.scene
}

// Cursor returns the cursor position in canvas coordinates.
func (v *CanvasView) Cursor() menu.Point {
	return v.cursor
}

// SetCursor moves the cursor to p, clamped to the canvas.
func (v *CanvasView) SetCursor(p menu.Point) {
	w, h := v.canvasSize()
	if w > 0 {
		p.X = min(max(p.X, 0), w-1)
	}
	if h > 0 {
		p.Y = min(max(p.Y, 0), h-1)
	}
	if p == v.cursor {
		return
	}
	v.cursor = p
	v.saveUIState()
}

// Move shifts the cursor by dx, dy.
func (v *CanvasView) Move(dx, dy int) {
	v.SetCursor(menu.Point{X: v.cursor.X + dx, Y: v.cursor.Y + dy})
}

// ToCanvas converts a screen position inside the view to canvas coordinates. The
// title line sits above the canvas.
func (v *CanvasView) ToCanvas(x, y int) (menu.Point, bool) {
	p := menu.Point{X: x, Y: y - 1}
	w, h := v.canvasSize()
	if p.X < 0 || p.Y < 0 || p.X >= w || p.Y >= h {
		return p, false
	}
	return p, true
}

// ToScreen converts canvas coordinates to a screen position.
func (v *CanvasView) ToScreen(p menu.Point) (int, int) {
	return p.X, p.Y + 1
}

func (v *CanvasView) canvasSize() (int, int) {
	return v.width, max(v.height-1, 0)
}

func (v *CanvasView) String() string {
	w, h := v.canvasSize()
	if w <= 0 || h <= 0 {
		return ""
	}

	under := "empty canvas"
	if item, ok := v.scene.HitTest(v.cursor); ok {
		under = item.Kind().String()
	}
	title := canvasTitleStyle.Render("Canvas") + canvasHintStyle.Render(
		fmt.Sprintf("  %d items · cursor (%d,%d) over %s", v.scene.Len(), v.cursor.X, v.cursor.Y, under))

	body := v.scene.Render(w, h)
	body = overlay.PlaceOverlay(v.cursor.X, v.cursor.Y, cursorStyle.Render("+"), body, false, false)
	return lipgloss.JoinVertical(lipgloss.Left, title, body)
}

func (v *CanvasView) loadUIState() {
	if v.store == nil {
		return
	}
	x, y := v.store.GetCursor()
	v.cursor = menu.Point{X: max(x, 0), Y: max(y, 0)}
	log.InfoLog.Printf("Loaded UI state: cursor=(%d,%d)", v.cursor.X, v.cursor.Y)
}

func (v *CanvasView) saveUIState() {
	if v.store == nil {
		return
	}
	if err := v.store.SetCursor(v.cursor.X, v.cursor.Y); err != nil {
		log.ErrorLog.Printf("Failed to save cursor position: %v", err)
	}
}
