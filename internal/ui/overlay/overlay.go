// Package overlay provides the floating layers popups are drawn on: a Layer
// is shown and hidden, aligned against a zone of the screen, optionally
// animated, and composited over the rest of the frame by a Stack.
package overlay

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/riordanpawley/popup/internal/domain"
	"github.com/riordanpawley/popup/internal/ui/zones"
)

// Body is the content of a layer
type Body interface {
	View() string
}

// Titled is implemented by bodies that have a title line
type Titled interface {
	Title() string
}

// Locator finds where a zone was rendered
type Locator interface {
	Rect(id string) (zones.Rect, bool)
}

// Aligner supplies the alignment of a layer at render time
type Aligner func() domain.Align

// Text is a static body
type Text string

// View returns the text
func (t Text) View() string {
	return string(t)
}

// BodyFunc renders a body on every frame, for content that depends on which
// trigger is active
type BodyFunc func() string

// View calls f
func (f BodyFunc) View() string {
	return f()
}

// Markdown is a body rendered once from markdown source
type Markdown struct {
	title    string
	rendered string
}

// NewMarkdown renders src with glamour, wrapped to width
func NewMarkdown(title, src string, width int) (*Markdown, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	out, err := r.Render(src)
	if err != nil {
		return nil, err
	}
	return &Markdown{title: title, rendered: strings.Trim(out, "\n")}, nil
}

// View returns the rendered markdown
func (m *Markdown) View() string {
	return m.rendered
}

// Title returns the markdown body's title
func (m *Markdown) Title() string {
	return m.title
}
