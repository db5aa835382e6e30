package app

import (
	"context"
	"testing"

	"canvasmenu/clip"
	"canvasmenu/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

type memoryState struct {
	seen   uint32
	x, y   int
	closed bool
}

func (s *memoryState) GetHelpScreensSeen() uint32 { return s.seen }

func (s *memoryState) SetHelpScreensSeen(seen uint32) error {
	s.seen = seen
	return nil
}

func (s *memoryState) SetCursor(x, y int) error {
	s.x, s.y = x, y
	return nil
}

func (s *memoryState) GetCursor() (int, int) { return s.x, s.y }

func (s *memoryState) Close() error {
	s.closed = true
	return nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: button}
}

// newTestHome returns a home on the demo scene that has already seen the welcome screen.
func newTestHome(t *testing.T, cfg *config.Config) (*home, *memoryState, *clip.Memory) {
	t.Helper()
	st := &memoryState{seen: 1 << 1}
	cb := &clip.Memory{}
	h := newHome(context.Background(), cfg, st, cb)
	h.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	require.Equal(t, stateDefault, h.state)
	return h, st, cb
}

func TestWelcomeScreenShownOnce(t *testing.T) {
	st := &memoryState{}
	h := newHome(context.Background(), nil, st, &clip.Memory{})
	assert.Equal(t, stateHelp, h.state)
	assert.Equal(t, uint32(1<<1), st.seen)
	h.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	assert.Contains(t, h.View(), "Welcome")

	h.Update(runes("x"))
	assert.Equal(t, stateDefault, h.state)

	h = newHome(context.Background(), nil, st, &clip.Memory{})
	assert.Equal(t, stateDefault, h.state)
}

func TestRightClickOnTextItemOpensMenu(t *testing.T) {
	h, _, _ := newTestHome(t, nil)

	// Canvas row 6 is screen row 7 because of the title line.
	h.Update(press(tea.MouseButtonRight, 12, 7))
	require.Equal(t, stateMenu, h.state)
	require.NotNil(t, h.pending)
	assert.Equal(t, []string{"Edit Text", "Change Font", "---", "Copy", "Cut", "Paste"}, h.pending.Menu().Labels())
	assert.Contains(t, h.View(), "Change Font")

	_, cmd := h.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.Equal(t, stateDefault, h.state)
	assert.Nil(t, h.pending)
	assert.Nil(t, h.menuOverlay)
}

func TestChoosingCopyShowsNotice(t *testing.T) {
	h, _, _ := newTestHome(t, nil)
	h.Update(press(tea.MouseButtonRight, 12, 7))

	// Edit Text, Change Font, then the separator is skipped.
	h.Update(tea.KeyMsg{Type: tea.KeyDown})
	h.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := h.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd, "the notice is cleared later")
	assert.Equal(t, stateDefault, h.state)

	title, msg := h.notices.Message()
	assert.Equal(t, "Copy", title)
	assert.Equal(t, "Copy action: objectType = TextItem", msg)

	h.Update(clearNoticeMsg{seq: h.notices.Seq()})
	assert.True(t, h.notices.Empty())
}

func TestBackgroundMenuUsesClipboard(t *testing.T) {
	h, _, cb := newTestHome(t, nil)
	require.NoError(t, cb.WriteText("pasted"))

	h.Update(press(tea.MouseButtonRight, 70, 25))
	require.Equal(t, stateMenu, h.state)
	assert.Equal(t, []string{"Add Slide", "Slide Layout", "---", "Paste"}, h.pending.Menu().Labels())

	// Click the Paste row: border, Add Slide, Slide Layout, separator, Paste.
	x, y, _, _ := h.menuOverlay.Bounds()
	h.Update(press(tea.MouseButtonLeft, x+2, y+4))
	assert.Equal(t, stateDefault, h.state)
	_, msg := h.notices.Message()
	assert.Equal(t, "pasted", msg)
}

func TestUnregisteredKindFallsThroughToCursor(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Items = []config.ItemConfig{{Kind: "Arrow", X: 5, Y: 5}}
	h, st, _ := newTestHome(t, cfg)

	h.Update(press(tea.MouseButtonRight, 6, 7))
	assert.Equal(t, stateDefault, h.state, "no menu for an unregistered kind")
	assert.Equal(t, 6, h.canvas.Cursor().X)
	assert.Equal(t, 6, h.canvas.Cursor().Y)
	assert.Equal(t, 6, st.y)

	_, cmd := h.Update(runes("m"))
	assert.NotNil(t, cmd)
	title, _ := h.notices.Message()
	assert.Equal(t, "Error", title)
}

func TestMenuKeyOpensAtCursor(t *testing.T) {
	h, _, _ := newTestHome(t, nil)
	for i := 0; i < 22; i++ {
		h.Update(runes("l"))
	}
	for i := 0; i < 17; i++ {
		h.Update(runes("j"))
	}
	h.Update(runes("m"))
	require.Equal(t, stateMenu, h.state)
	assert.Equal(t, "Circle", h.pending.Kind().String())

	// Open Shape Properties and pick Rotate.
	h.Update(tea.KeyMsg{Type: tea.KeyDown})
	h.Update(tea.KeyMsg{Type: tea.KeyDown})
	h.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, h.menuOverlay.Depth())
	h.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, stateDefault, h.state)
}

func TestCutRemovesItem(t *testing.T) {
	h, _, _ := newTestHome(t, nil)
	scene := h.canvas.Scene()
	require.Equal(t, 3, scene.Len())

	h.Update(press(tea.MouseButtonRight, 45, 7))
	require.Equal(t, stateMenu, h.state)
	assert.Equal(t, []string{"No shared actions, type-specific only"}, h.pending.Menu().Labels())
	h.Update(tea.KeyMsg{Type: tea.KeyEsc})

	// Paste is disabled with an empty clipboard, so up from the first entry lands on Cut.
	h.Update(press(tea.MouseButtonRight, 12, 7))
	h.Update(tea.KeyMsg{Type: tea.KeyUp})
	entry, ok := h.menuOverlay.Selected()
	require.True(t, ok)
	require.Equal(t, "Cut", entry.Label)
	h.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 2, scene.Len())
}

func TestClipboardEditing(t *testing.T) {
	h, _, cb := newTestHome(t, nil)
	h.Update(runes("y"))
	require.Equal(t, stateClipboard, h.state)
	assert.Contains(t, h.View(), "Clipboard text")

	h.Update(runes("a"))
	h.Update(runes("b"))
	_, cmd := h.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	assert.Equal(t, stateDefault, h.state)
	text, _ := cb.ReadText()
	assert.Equal(t, "ab", text)
}

func TestHelpAndQuit(t *testing.T) {
	h, st, _ := newTestHome(t, nil)
	h.Update(runes("?"))
	require.Equal(t, stateHelp, h.state)
	assert.Contains(t, h.View(), "Context menu:")

	h.Update(press(tea.MouseButtonLeft, 0, 0))
	assert.Equal(t, stateDefault, h.state)

	_, cmd := h.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.True(t, st.closed)
}

func TestMenuIsModal(t *testing.T) {
	h, _, _ := newTestHome(t, nil)
	h.Update(press(tea.MouseButtonRight, 12, 7))
	require.Equal(t, stateMenu, h.state)

	cursor := h.canvas.Cursor()
	h.Update(runes("q"))
	assert.Equal(t, stateDefault, h.state, "q dismisses the menu instead of quitting")
	assert.Equal(t, cursor, h.canvas.Cursor())
}

func TestConfigReloadRebuildsCanvas(t *testing.T) {
	h, _, _ := newTestHome(t, nil)
	h.Update(press(tea.MouseButtonRight, 12, 7))
	require.Equal(t, stateMenu, h.state)
	pending := h.pending

	cfg := config.DefaultConfig()
	cfg.MenuMinWidth = 24
	cfg.Items = []config.ItemConfig{{Kind: "Circle", X: 0, Y: 0}}
	_, cmd := h.Update(configReloadedMsg{cfg: cfg})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, h.canvas.Scene().Len())
	assert.Equal(t, 24, h.appConfig.MenuMinWidth)

	// The open menu still runs, against its detached item.
	assert.Same(t, pending, h.pending)
	h.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateDefault, h.state)

	h.Update(press(tea.MouseButtonRight, 1, 2))
	require.Equal(t, stateMenu, h.state)
	assert.Equal(t, "Circle", h.pending.Kind().String())
}
