package canvas

import (
	"strings"
	"testing"

	"canvasmenu/config"
	"canvasmenu/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notices struct {
	messages []string
}

func (n *notices) Notify(_, message string) {
	n.messages = append(n.messages, message)
}

func TestHitTestReturnsTopmostItem(t *testing.T) {
	bottom := NewTextItem(0, 0)
	top := NewSpecialItem(5, 2)
	s := NewScene(bottom, top)

	item, ok := s.HitTest(menu.Point{X: 6, Y: 3})
	require.True(t, ok)
	assert.Same(t, top, item)

	item, ok = s.HitTest(menu.Point{X: 1, Y: 1})
	require.True(t, ok)
	assert.Same(t, bottom, item)

	_, ok = s.HitTest(menu.Point{X: 100, Y: 100})
	assert.False(t, ok)
}

func TestRemoveDetachesItems(t *testing.T) {
	text := NewTextItem(0, 0)
	circle := NewCircleItem(30, 0)
	s := NewScene(text, circle)

	s.Remove(text, NewTextItem(0, 0))
	assert.Equal(t, 1, s.Len())
	assert.True(t, text.Detached())
	assert.False(t, circle.Detached())

	ctx := &menu.Context{Selection: []menu.Item{text, circle}}
	assert.Equal(t, []menu.Item{circle}, ctx.LiveSelection())

	_, ok := s.HitTest(menu.Point{X: 1, Y: 1})
	assert.False(t, ok, "removed items are no longer hit")
}

func TestCopyNotifiesKind(t *testing.T) {
	n := &notices{}
	ctx := &menu.Context{Notifier: n}
	for _, sh := range DemoScene().Items() {
		require.NoError(t, sh.Copy(ctx))
	}
	assert.Equal(t, []string{
		"Copy action: objectType = TextItem",
		"Copy action: objectType = Special",
		"Copy action: objectType = Circle",
	}, n.messages)
}

func TestNewItemKinds(t *testing.T) {
	assert.IsType(t, &TextItem{}, NewItem(menu.KindText, 0, 0))
	assert.IsType(t, &SpecialItem{}, NewItem(menu.KindSpecial, 0, 0))
	assert.IsType(t, &CircleItem{}, NewItem(menu.KindCircle, 0, 0))

	other := NewItem("Arrow", 1, 2)
	assert.IsType(t, &GenericItem{}, other)
	assert.Equal(t, menu.Kind("Arrow"), other.Kind())
	assert.Equal(t, 1, other.Bounds().X)
}

func TestFromConfig(t *testing.T) {
	assert.Equal(t, 3, FromConfig(nil).Len())

	s := FromConfig([]config.ItemConfig{
		{Kind: "Circle", X: 2, Y: 2},
		{Kind: "", X: 9, Y: 9},
		{Kind: "Arrow", X: 20, Y: 2},
	})
	require.Equal(t, 2, s.Len())
	kinds := []menu.Kind{s.Items()[0].Kind(), s.Items()[1].Kind()}
	assert.Equal(t, []menu.Kind{menu.KindCircle, "Arrow"}, kinds)
}

func TestRender(t *testing.T) {
	s := NewScene(NewTextItem(0, 0))
	out := s.Render(24, 6)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "┌───"))
	assert.Contains(t, lines[2], "TextItem")
	assert.Equal(t, "", s.Render(0, 10))

	circle := NewScene(NewCircleItem(0, 0)).Render(10, 10)
	assert.Contains(t, circle, "●")
	assert.NotContains(t, strings.Split(circle, "\n")[0][:1], "●", "corners stay empty")
}

func TestResetDetachesOldItems(t *testing.T) {
	s := DemoScene()
	old := s.Items()
	s.Reset(NewScene(NewCircleItem(0, 0)))

	require.Equal(t, 1, s.Len())
	for _, sh := range old {
		assert.True(t, sh.Detached())
	}
	item, ok := s.HitTest(menu.Point{X: 1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, menu.KindCircle, item.Kind())
}

func TestResetWithItselfKeepsItemsLive(t *testing.T) {
	s := DemoScene()
	s.Reset(s)
	require.Equal(t, 3, s.Len())
	for _, sh := range s.Items() {
		assert.False(t, sh.Detached())
	}

	// Shapes carried over into the new scene stay live.
	kept := s.Items()[0]
	dropped := s.Items()[1]
	s.Reset(NewScene(kept))
	assert.False(t, kept.Detached())
	assert.True(t, dropped.Detached())
	assert.Equal(t, 1, s.Len())
}

func TestAddSkipsShapesAlreadyOnScene(t *testing.T) {
	text := NewTextItem(0, 0)
	s := NewScene(text, text)
	s.Add(text)
	require.Equal(t, 1, s.Len())

	s.Remove(text)
	assert.Equal(t, 0, s.Len())
	_, hit := s.HitTest(menu.Point{X: 1, Y: 1})
	assert.False(t, hit)
}
