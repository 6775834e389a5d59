package overlay

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/popup/internal/domain"
	"github.com/riordanpawley/popup/internal/ui/zones"
)

// Layer is a floating box that can be shown, hidden and aligned. It
// satisfies popup.Surface, popup.Animator and popup.Updater.
type Layer struct {
	id     string
	body   Body
	styles *Styles
	align  Aligner
	width  int

	visible    bool
	beforeHide []func()
	afterShow  []func()

	transition domain.Transition
	anim       animation
	tick       tickFunc
}

// NewLayer creates a hidden layer with the given zone id and body
func NewLayer(id string, body Body) *Layer {
	return &Layer{
		id:     id,
		body:   body,
		styles: New(),
		align:  domain.DefaultAlign,
		tick:   tea.Tick,
	}
}

// SetAligner sets where the alignment comes from, typically a popup's Align
func (l *Layer) SetAligner(fn Aligner) {
	l.align = fn
}

// SetWidth fixes the inner width of the box; 0 sizes it to the body
func (l *Layer) SetWidth(w int) {
	l.width = w
}

// SetBody replaces the body
func (l *Layer) SetBody(b Body) {
	l.body = b
}

// ZoneID returns the zone the layer is placed under
func (l *Layer) ZoneID() string {
	return l.id
}

// BeforeHide registers fn to run at the start of every Hide call
func (l *Layer) BeforeHide(fn func()) {
	l.beforeHide = append(l.beforeHide, fn)
}

// AfterShow registers fn to run after every Show call
func (l *Layer) AfterShow(fn func()) {
	l.afterShow = append(l.afterShow, fn)
}

// SetTransition sets the show/hide animation
func (l *Layer) SetTransition(t domain.Transition) {
	l.transition = t
}

// Show makes the layer visible. Showing a visible layer only re-runs the
// after-show hooks.
func (l *Layer) Show() tea.Cmd {
	var cmd tea.Cmd
	if !l.visible {
		l.visible = true
		cmd = l.animate(true)
	}
	for _, fn := range l.afterShow {
		fn()
	}
	return cmd
}

// Hide runs the before-hide hooks and hides the layer if it is visible
func (l *Layer) Hide() tea.Cmd {
	for _, fn := range l.beforeHide {
		fn()
	}
	if !l.visible {
		return nil
	}
	l.visible = false
	return l.animate(false)
}

// Visible reports the logical visibility. A layer animating out is already
// not visible, though it is still drawn until the animation ends.
func (l *Layer) Visible() bool {
	return l.visible
}

// Drawn reports whether the layer has anything on screen
func (l *Layer) Drawn() bool {
	return l.visible || l.anim.running
}

// Animating reports whether a transition is in flight
func (l *Layer) Animating() bool {
	return l.anim.running
}

func (l *Layer) animate(showing bool) tea.Cmd {
	if !l.transition.Animated() {
		l.anim.running = false
		return nil
	}
	l.anim.start(showing, l.transition.Duration)
	return l.nextFrame()
}

func (l *Layer) nextFrame() tea.Cmd {
	msg := frameMsg{layer: l.id, tag: l.anim.tag}
	return l.tick(frameInterval, func(time.Time) tea.Msg {
		return msg
	})
}

// Update advances animation frames addressed to this layer
func (l *Layer) Update(msg tea.Msg) tea.Cmd {
	f, ok := msg.(frameMsg)
	if !ok || f.layer != l.id || f.tag != l.anim.tag || !l.anim.running {
		return nil
	}
	if l.anim.advance() {
		return l.nextFrame()
	}
	return nil
}

// View renders the boxed body at the current animation state
func (l *Layer) View() string {
	if !l.Drawn() || l.body == nil {
		return ""
	}

	content := l.body.View()
	if t, ok := l.body.(Titled); ok && t.Title() != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, l.styles.Title.Render(t.Title()), content)
	}

	style := l.styles.Popup
	if l.width > 0 {
		style = style.Width(l.width)
	}
	box := style.Render(content)

	if !l.anim.running {
		return box
	}
	shown := l.anim.shown()
	if l.transition.Fade {
		box = fade(box, shown)
	}
	if l.transition.Slide {
		box = slide(box, shown)
	}
	return box
}

// Place computes the rectangle the layer occupies on a screen of the given
// size, aligned against the zones known to loc
func (l *Layer) Place(box string, loc Locator, screenW, screenH int) zones.Rect {
	w, h := lipgloss.Size(box)
	a := l.align()
	x, y := Position(a, BaseRect(a, loc, screenW, screenH), w, h, screenW, screenH)
	return zones.Rect{X: x, Y: y, W: w, H: h}
}
