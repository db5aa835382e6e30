package overlay

import (
	"bytes"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
)

// shadowRune is drawn to the right of and below a foreground with a shadow.
const shadowRune = "░"

// PlaceOverlay draws fg on top of bg with its top-left corner at x, y. When center
// is set, x and y are ignored and fg is centred. The foreground is kept inside the
// background, and a background smaller than fg in both directions yields fg.
func PlaceOverlay(x, y int, fg, bg string, shadow, center bool) string {
	fgLines, fgWidth := getLines(fg)
	bgLines, bgWidth := getLines(bg)
	bgHeight := len(bgLines)
	fgHeight := len(fgLines)

	if shadow {
		fgLines, fgWidth = addShadow(fgLines, fgWidth)
		fgHeight = len(fgLines)
	}

	if fgWidth >= bgWidth && fgHeight >= bgHeight {
		return strings.Join(fgLines, "\n")
	}

	if center {
		x = (bgWidth - fgWidth) / 2
		y = (bgHeight - fgHeight) / 2
	}
	x = clamp(x, 0, bgWidth-fgWidth)
	y = clamp(y, 0, bgHeight-fgHeight)

	var b strings.Builder
	for i, bgLine := range bgLines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i < y || i >= y+fgHeight {
			b.WriteString(bgLine)
			continue
		}

		pos := 0
		if x > 0 {
			left := truncate.String(bgLine, uint(x))
			pos = ansi.PrintableRuneWidth(left)
			b.WriteString(left)
			if pos < x {
				b.WriteString(strings.Repeat(" ", x-pos))
				pos = x
			}
		}

		fgLine := fgLines[i-y]
		b.WriteString(fgLine)
		pos += ansi.PrintableRuneWidth(fgLine)

		right := cutLeft(bgLine, pos)
		bgLineWidth := ansi.PrintableRuneWidth(bgLine)
		rightWidth := ansi.PrintableRuneWidth(right)
		if rightWidth <= bgLineWidth-pos {
			b.WriteString(strings.Repeat(" ", bgLineWidth-rightWidth-pos))
		}
		b.WriteString(right)
	}
	return b.String()
}

// cutLeft drops the first cutWidth printable cells of s, keeping the escape
// sequences that style what remains.
func cutLeft(s string, cutWidth int) string {
	var (
		pos     int
		inAnsi  bool
		started bool
		seq     bytes.Buffer
		style   bytes.Buffer
		b       bytes.Buffer
	)
	for _, c := range s {
		if c == ansi.Marker || inAnsi {
			inAnsi = true
			seq.WriteRune(c)
			if !ansi.IsTerminator(c) {
				continue
			}
			inAnsi = false
			if pos >= cutWidth {
				b.Write(seq.Bytes())
			} else if bytes.HasSuffix(seq.Bytes(), []byte("[0m")) {
				style.Reset()
			} else {
				style.Write(seq.Bytes())
			}
			seq.Reset()
			continue
		}

		w := runewidth.RuneWidth(c)
		if pos >= cutWidth {
			if !started {
				b.Write(style.Bytes())
				started = true
			}
			b.WriteRune(c)
		}
		pos += w
	}
	return b.String()
}

func addShadow(lines []string, width int) ([]string, int) {
	shade := termenv.String(shadowRune).Faint().String()
	out := make([]string, 0, len(lines)+1)
	for i, line := range lines {
		pad := width - ansi.PrintableRuneWidth(line)
		if pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		if i == 0 {
			out = append(out, line+" ")
			continue
		}
		out = append(out, line+shade)
	}
	out = append(out, " "+strings.Repeat(shade, width))
	return out, width + 1
}

func getLines(s string) (lines []string, widest int) {
	lines = strings.Split(s, "\n")
	for _, l := range lines {
		if w := ansi.PrintableRuneWidth(l); w > widest {
			widest = w
		}
	}
	return lines, widest
}

func clamp(v, lower, upper int) int {
	if upper < lower {
		return lower
	}
	return min(max(v, lower), upper)
}
