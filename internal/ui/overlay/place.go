package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/popup/internal/domain"
	"github.com/riordanpawley/popup/internal/ui/zones"
)

// Position computes where a box of size w x h goes for the given alignment.
// base is the rectangle of the base element; when the base element has not
// been rendered the whole screen is used instead. The result is clamped so
// the box stays on screen whenever it fits.
func Position(a domain.Align, base zones.Rect, w, h, screenW, screenH int) (x, y int) {
	x = base.X + a.BaseXY[0].Resolve(base.W) - a.SelfXY[0].Resolve(w)
	y = base.Y + a.BaseXY[1].Resolve(base.H) - a.SelfXY[1].Resolve(h)

	x = clamp(x, 0, screenW-w)
	y = clamp(y, 0, screenH-h)
	return x, y
}

// BaseRect resolves the base rectangle for an alignment
func BaseRect(a domain.Align, loc Locator, screenW, screenH int) zones.Rect {
	if a.BaseElement != "" && loc != nil {
		if r, ok := loc.Rect(a.BaseElement); ok {
			return r
		}
	}
	return zones.Rect{W: screenW, H: screenH}
}

// Composite draws fg over bg with its top-left corner at (x, y). Lines of bg
// are padded as needed; styling of bg on either side of fg is preserved.
func Composite(bg, fg string, x, y int) string {
	if fg == "" {
		return bg
	}
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	for i, line := range fgLines {
		row := y + i
		if row < 0 {
			continue
		}
		for row >= len(bgLines) {
			bgLines = append(bgLines, "")
		}

		under := bgLines[row]
		width := ansi.StringWidth(under)
		if width < x {
			under += strings.Repeat(" ", x-width)
			width = x
		}

		left := ansi.Truncate(under, x, "")
		right := ""
		if end := x + ansi.StringWidth(line); width > end {
			right = ansi.TruncateLeft(under, end, "")
		}
		bgLines[row] = left + ansi.ResetStyle + line + ansi.ResetStyle + right
	}
	return strings.Join(bgLines, "\n")
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
