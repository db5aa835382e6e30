package canvas

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// grid is a fixed-size cell buffer. Writes outside it are clipped.
type grid [][]rune

func newGrid(width, height int) grid {
	g := make(grid, height)
	for y := range g {
		g[y] = []rune(strings.Repeat(" ", width))
	}
	return g
}

func (g grid) set(x, y int, r rune) {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		return
	}
	g[y][x] = r
}

func (g grid) fill(r Rect, ch rune) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			g.set(x, y, ch)
		}
	}
}

func (g grid) box(r Rect) {
	if r.W < 2 || r.H < 2 {
		g.fill(r, '□')
		return
	}
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	g.fill(Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}, ' ')
	for x := r.X + 1; x < right; x++ {
		g.set(x, r.Y, '─')
		g.set(x, bottom, '─')
	}
	for y := r.Y + 1; y < bottom; y++ {
		g.set(r.X, y, '│')
		g.set(right, y, '│')
	}
	g.set(r.X, r.Y, '┌')
	g.set(right, r.Y, '┐')
	g.set(r.X, bottom, '└')
	g.set(right, bottom, '┘')
}

// ellipse fills the ellipse inscribed in r.
func (g grid) ellipse(r Rect, ch rune) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	// Work in doubled coordinates so cell centres land on integers.
	rx, ry := r.W, r.H
	for y := 0; y < r.H; y++ {
		dy := 2*y + 1 - ry
		for x := 0; x < r.W; x++ {
			dx := 2*x + 1 - rx
			if dx*dx*ry*ry+dy*dy*rx*rx <= rx*rx*ry*ry {
				g.set(r.X+x, r.Y+y, ch)
			}
		}
	}
}

// text writes s starting at x, y, taking double-width runes into account.
func (g grid) text(x, y int, s string) {
	for _, r := range s {
		g.set(x, y, r)
		w := runewidth.RuneWidth(r)
		if w == 2 {
			// The terminal paints the second half; blank the cell so the row keeps its width.
			g.set(x+1, y, 0)
		}
		x += max(w, 1)
	}
}

func (g grid) String() string {
	lines := make([]string, len(g))
	for y, row := range g {
		var b strings.Builder
		for _, r := range row {
			if r == 0 {
				continue
			}
			b.WriteRune(r)
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
