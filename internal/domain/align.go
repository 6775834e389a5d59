package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Coord is one axis of an anchor point: a percentage of the element's
// extent plus a fixed cell offset. "100%" is the far edge, "50%-2" two cells
// before the middle, "3" three cells from the near edge.
type Coord struct {
	Percent float64
	Offset  int
}

// Cells returns Coord{Offset: n}
func Cells(n int) Coord {
	return Coord{Offset: n}
}

// Percent returns Coord{Percent: p}
func Percent(p float64) Coord {
	return Coord{Percent: p}
}

// ParseCoord parses the textual coordinate forms accepted in configuration
func ParseCoord(s string) (Coord, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if s == "" {
		return Coord{}, nil
	}

	pct := strings.IndexByte(s, '%')
	if pct < 0 {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Coord{}, fmt.Errorf("invalid coordinate %q: %w", s, err)
		}
		return Coord{Offset: n}, nil
	}

	p, err := strconv.ParseFloat(s[:pct], 64)
	if err != nil {
		return Coord{}, fmt.Errorf("invalid coordinate %q: %w", s, err)
	}
	c := Coord{Percent: p}

	if rest := s[pct+1:]; rest != "" {
		if rest[0] != '+' && rest[0] != '-' {
			return Coord{}, fmt.Errorf("invalid coordinate %q: expected +/- after %%", s)
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			return Coord{}, fmt.Errorf("invalid coordinate %q: %w", s, err)
		}
		c.Offset = n
	}
	return c, nil
}

// Resolve maps the coordinate onto an extent of size cells
func (c Coord) Resolve(size int) int {
	return int(float64(size)*c.Percent/100) + c.Offset
}

func (c Coord) String() string {
	switch {
	case c.Percent == 0:
		return strconv.Itoa(c.Offset)
	case c.Offset == 0:
		return strconv.FormatFloat(c.Percent, 'f', -1, 64) + "%"
	default:
		return fmt.Sprintf("%s%%%+d", strconv.FormatFloat(c.Percent, 'f', -1, 64), c.Offset)
	}
}

// Align describes where a popup sits relative to its base element.
// The point SelfXY of the popup is placed on the point BaseXY of the base.
// An empty BaseElement means "the active trigger".
type Align struct {
	BaseXY      [2]Coord
	SelfXY      [2]Coord
	BaseElement string
}

// DefaultAlign opens the popup directly below the base element with the
// left edges lined up.
func DefaultAlign() Align {
	return Align{
		BaseXY: [2]Coord{Cells(0), Percent(100)},
		SelfXY: [2]Coord{Cells(0), Cells(0)},
	}
}
