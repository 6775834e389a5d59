package overlay

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/popup/internal/domain"
	"github.com/riordanpawley/popup/internal/ui/zones"
	"github.com/stretchr/testify/assert"
)

func zonesRect(x, y, w, h int) zones.Rect {
	return zones.Rect{X: x, Y: y, W: w, H: h}
}

func TestPosition(t *testing.T) {
	tests := []struct {
		name  string
		align domain.Align
		base  zones.Rect
		w, h  int
		wantX int
		wantY int
	}{
		{
			name:  "below base by default",
			align: domain.DefaultAlign(),
			base:  zonesRect(5, 2, 10, 1),
			w:     4, h: 2,
			wantX: 5, wantY: 3,
		},
		{
			name: "centred",
			align: domain.Align{
				BaseXY: [2]domain.Coord{domain.Percent(50), domain.Percent(50)},
				SelfXY: [2]domain.Coord{domain.Percent(50), domain.Percent(50)},
			},
			base: zonesRect(0, 0, 80, 24),
			w:    10, h: 4,
			wantX: 35, wantY: 10,
		},
		{
			name: "offsets",
			align: domain.Align{
				BaseXY: [2]domain.Coord{{Percent: 100, Offset: 1}, domain.Cells(0)},
			},
			base: zonesRect(5, 5, 10, 1),
			w:    4, h: 1,
			wantX: 16, wantY: 5,
		},
		{
			name:  "clamped to the right edge",
			align: domain.DefaultAlign(),
			base:  zonesRect(78, 0, 2, 1),
			w:     4, h: 2,
			wantX: 76, wantY: 1,
		},
		{
			name:  "clamped to the bottom edge",
			align: domain.DefaultAlign(),
			base:  zonesRect(0, 23, 2, 1),
			w:     4, h: 3,
			wantX: 0, wantY: 21,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Position(tt.align, tt.base, tt.w, tt.h, 80, 24)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestBaseRect(t *testing.T) {
	p := newFakePlacer()
	p.Place("btn", zonesRect(1, 2, 3, 1))

	a := domain.DefaultAlign()
	assert.Equal(t, zonesRect(0, 0, 80, 24), BaseRect(a, p, 80, 24))

	a.BaseElement = "btn"
	assert.Equal(t, zonesRect(1, 2, 3, 1), BaseRect(a, p, 80, 24))

	a.BaseElement = "missing"
	assert.Equal(t, zonesRect(0, 0, 80, 24), BaseRect(a, p, 80, 24), "unrendered base falls back to the screen")
}

func TestComposite(t *testing.T) {
	bg := "aaaaaaaaaa\nbbbbbbbbbb"

	got := ansi.Strip(Composite(bg, "XY", 2, 1))
	assert.Equal(t, "aaaaaaaaaa\nbbXYbbbbbb", got)

	got = ansi.Strip(Composite(bg, "XY\nZW", 8, 0))
	assert.Equal(t, "aaaaaaaaXY\nbbbbbbbbZW", got)

	got = ansi.Strip(Composite("ab", "XY", 4, 2))
	assert.Equal(t, "ab\n\n    XY", got, "short backgrounds are padded")

	assert.Equal(t, bg, Composite(bg, "", 0, 0))
}
