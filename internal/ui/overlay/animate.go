package overlay

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/riordanpawley/popup/internal/ui/styles"
)

// frameInterval paces show/hide animations at roughly 60fps
const frameInterval = time.Second / 60

// frameMsg advances a layer's animation by one frame
type frameMsg struct {
	layer string
	tag   uint64
}

type tickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

// animation is the state of an in-flight show or hide transition. Frames are
// counted rather than timed so rendering is deterministic.
type animation struct {
	tag     uint64
	frame   int
	frames  int
	showing bool
	running bool
}

func (a *animation) start(showing bool, d time.Duration) {
	a.tag++
	a.frame = 0
	a.frames = max(1, int(d/frameInterval))
	a.showing = showing
	a.running = true
}

// advance moves one frame forward and reports whether more frames follow
func (a *animation) advance() bool {
	a.frame++
	if a.frame >= a.frames {
		a.running = false
	}
	return a.running
}

// shown is how much of the layer is visible, from 0 to 1
func (a *animation) shown() float64 {
	p := float64(a.frame) / float64(a.frames)
	if a.showing {
		return p
	}
	return 1 - p
}

// slide reveals the top share of the box's lines
func slide(box string, shown float64) string {
	lines := strings.Split(box, "\n")
	n := int(math.Ceil(shown * float64(len(lines))))
	if n <= 0 {
		return ""
	}
	return strings.Join(lines[:min(n, len(lines))], "\n")
}

// fade redraws the box in a single colour blended from the background
// towards the text colour. Existing styling is dropped while fading.
func fade(box string, shown float64) string {
	from, err := colorful.Hex(string(styles.Base))
	if err != nil {
		return box
	}
	to, err := colorful.Hex(string(styles.Text))
	if err != nil {
		return box
	}
	c := from.BlendLab(to, shown).Clamped()
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))

	lines := strings.Split(ansi.Strip(box), "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}
