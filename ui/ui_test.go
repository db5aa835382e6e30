package ui

import (
	"bytes"
	"strings"
	"testing"

	"canvasmenu/canvas"
	"canvasmenu/clip"
	"canvasmenu/dispatch"
	"canvasmenu/menu"
	"canvasmenu/strategies"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

type memoryStore struct {
	x, y  int
	saves int
}

func (s *memoryStore) SetCursor(x, y int) error {
	s.x, s.y = x, y
	s.saves++
	return nil
}

func (s *memoryStore) GetCursor() (int, int) { return s.x, s.y }

func TestFormatMenuNumbersByPath(t *testing.T) {
	listing, index := FormatMenu(strategies.Circle().Build(menu.NewContext()))

	assert.Contains(t, listing, "1. Change Color")
	assert.Contains(t, listing, "3. Shape Properties ▸")
	assert.Contains(t, listing, "3.1. Rotate")
	assert.Contains(t, listing, "4. Copy (disabled)")
	assert.Contains(t, listing, "────")

	require.Len(t, index, 8)
	assert.Equal(t, "Scale", index["3.2"].Label)
	assert.Equal(t, "Paste", index["6"].Label)
}

func TestPromptSurfaceReadsChoice(t *testing.T) {
	in := strings.NewReader("9\n3\n4\n3.2\n")
	var out bytes.Buffer
	p := NewPromptSurface(in, &out)

	e, ok := p.Present(strategies.Circle().Build(menu.NewContext()), menu.Point{X: 1, Y: 2})
	require.True(t, ok)
	assert.Equal(t, "Scale", e.Label)

	text := out.String()
	assert.Contains(t, text, "Circle at (1,2)")
	assert.Contains(t, text, `no entry "9"`)
	assert.Contains(t, text, "opens a submenu")
	assert.Contains(t, text, `"Copy" is disabled`)
}

func TestPromptSurfaceDismiss(t *testing.T) {
	for _, input := range []string{"\n", "", "7"} {
		p := NewPromptSurface(strings.NewReader(input), &bytes.Buffer{})
		_, ok := p.Present(strategies.Special().Build(menu.NewContext()), menu.Point{})
		assert.False(t, ok, "input %q", input)
	}
}

func TestPromptSurfaceDrivesDispatcher(t *testing.T) {
	notices := NewNoticeBar()
	scene := canvas.DemoScene()
	surface := NewPromptSurface(strings.NewReader("4\n"), &bytes.Buffer{})
	d := dispatch.New(strategies.NewRegistry(), scene, surface, dispatch.Options{
		Canvas:    scene,
		Notifier:  notices,
		Clipboard: clip.Static("x"),
	})

	res := d.Dispatch(menu.Point{X: 11, Y: 6})
	require.True(t, res.Handled)
	assert.Equal(t, "Cut", res.Chosen)
	assert.Equal(t, 2, scene.Len())
	title, msg := notices.Message()
	assert.Equal(t, "Copy", title)
	assert.Equal(t, "Copy action: objectType = TextItem", msg)
}

func TestNoticeBarClearsOnlyItsOwnMessage(t *testing.T) {
	n := NewNoticeBar()
	assert.True(t, n.Empty())
	assert.Equal(t, "", n.String())

	n.Notify("Copy", "first")
	first := n.Seq()
	n.Notify(ErrorTitle, "second\nline")
	n.Clear(first)
	assert.False(t, n.Empty())
	assert.Equal(t, "Error: second line", n.String())

	n.Clear(n.Seq())
	assert.True(t, n.Empty())
}

func TestCanvasViewCursor(t *testing.T) {
	store := &memoryStore{x: 100, y: 3}
	v := NewCanvasView(canvas.DemoScene(), store)
	assert.Equal(t, menu.Point{X: 100, Y: 3}, v.Cursor())

	v.SetSize(60, 26)
	assert.Equal(t, menu.Point{X: 59, Y: 3}, v.Cursor(), "clamped to the canvas")
	assert.Equal(t, 59, store.x)

	v.Move(-100, -100)
	assert.Equal(t, menu.Point{}, v.Cursor())

	saves := store.saves
	v.Move(-1, 0)
	assert.Equal(t, saves, store.saves, "no save when the cursor does not move")

	p, ok := v.ToCanvas(5, 1)
	assert.True(t, ok)
	assert.Equal(t, menu.Point{X: 5, Y: 0}, p)
	_, ok = v.ToCanvas(5, 0)
	assert.False(t, ok, "the title line is not canvas")
	x, y := v.ToScreen(p)
	assert.Equal(t, 5, x)
	assert.Equal(t, 1, y)
}

func TestCanvasViewString(t *testing.T) {
	v := NewCanvasView(canvas.DemoScene(), nil)
	assert.Equal(t, "", v.String())

	v.SetSize(60, 26)
	v.SetCursor(menu.Point{X: 12, Y: 7})
	out := v.String()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 26)
	assert.Contains(t, lines[0], "over TextItem")
	assert.Contains(t, lines[8], "+")
	assert.Contains(t, out, "█")
}

func TestFooterListsBindings(t *testing.T) {
	f := NewFooter()
	f.SetWidth(200)
	out := f.String()
	assert.Contains(t, out, "menu")
	assert.Contains(t, out, "quit")
}
