package canvas

import (
	"fmt"
	"sync"

	"canvasmenu/config"
	"canvasmenu/log"
	"canvasmenu/menu"
)

// Scene holds canvas items in z-order; later items are drawn on top.
type Scene struct {
	mu    sync.RWMutex
	items []Shape
}

// NewScene creates a scene containing shapes, bottom first.
func NewScene(shapes ...Shape) *Scene {
	s := &Scene{}
	s.Add(shapes...)
	return s
}

// DemoScene returns the three-item scene: a text item, a special item and a circle.
func DemoScene() *Scene {
	return NewScene(
		NewTextItem(10, 5),
		NewSpecialItem(40, 5),
		NewCircleItem(20, 15),
	)
}

// FromConfig builds a scene from configured items. An empty list yields the demo scene.
func FromConfig(items []config.ItemConfig) *Scene {
	if len(items) == 0 {
		return DemoScene()
	}
	s := NewScene()
	for _, it := range items {
		if it.Kind == "" {
			log.WarningLog.Printf("skipping canvas item at (%d,%d) with no kind", it.X, it.Y)
			continue
		}
		s.Add(NewItem(menu.Kind(it.Kind), it.X, it.Y))
	}
	return s
}

// Reset replaces every item with the items of other. Items that are not part of
// other are detached.
func (s *Scene) Reset(other *Scene) {
	if other == s {
		return
	}
	shapes := other.Items()
	keep := make(map[Shape]bool, len(shapes))
	for _, sh := range shapes {
		keep[sh] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sh := range s.items {
		if !keep[sh] {
			sh.setDetached(true)
		}
	}
	s.items = s.items[:0:0]
	for _, sh := range shapes {
		if sh == nil || s.has(sh) {
			continue
		}
		sh.setDetached(false)
		s.items = append(s.items, sh)
	}
}

// Add places shapes on top of the scene. Shapes already on the scene are skipped.
func (s *Scene) Add(shapes ...Shape) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sh := range shapes {
		if sh == nil || s.has(sh) {
			continue
		}
		sh.setDetached(false)
		s.items = append(s.items, sh)
	}
}

func (s *Scene) has(sh Shape) bool {
	for _, it := range s.items {
		if it == sh {
			return true
		}
	}
	return false
}

// Remove takes items off the scene and marks them detached. Items that are not
// part of the scene are ignored.
func (s *Scene) Remove(items ...menu.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		for i, sh := range s.items {
			if menu.Item(sh) != item {
				continue
			}
			sh.setDetached(true)
			s.items = append(s.items[:i], s.items[i+1:]...)
			log.InfoLog.Printf("removed %s from canvas", sh.Kind())
			break
		}
	}
}

// HitTest returns the topmost item under p.
func (s *Scene) HitTest(p menu.Point) (menu.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].Bounds().Contains(p) {
			return s.items[i], true
		}
	}
	return nil, false
}

// Items returns the scene's shapes, bottom first.
func (s *Scene) Items() []Shape {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Shape, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of shapes on the scene.
func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Render draws the scene into a width x height block of text.
func (s *Scene) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	g := newGrid(width, height)
	for _, sh := range s.Items() {
		sh.draw(g)
	}
	return g.String()
}

func (s *Scene) String() string {
	return fmt.Sprintf("Scene(%d items)", s.Len())
}
