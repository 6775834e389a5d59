package overlay

import "github.com/riordanpawley/popup/internal/ui/zones"

// Placer records where a layer was drawn so pointer messages can be tested
// against it. *zones.Manager satisfies it.
type Placer interface {
	Locator
	Place(id string, r zones.Rect)
	Remove(id string)
}

// Stack keeps layers in z-order, bottom first, and composites the drawn ones
// over a background frame
type Stack struct {
	layers []*Layer
}

// NewStack creates a new empty layer stack
func NewStack() *Stack {
	return &Stack{
		layers: make([]*Layer, 0),
	}
}

// Push adds a layer on top of the stack. Pushing a layer that is already in
// the stack raises it instead.
func (s *Stack) Push(l *Layer) {
	s.Remove(l)
	s.layers = append(s.layers, l)
}

// Raise moves a layer to the top if it is in the stack
func (s *Stack) Raise(l *Layer) {
	for _, cur := range s.layers {
		if cur == l {
			s.Push(l)
			return
		}
	}
}

// Remove takes a layer out of the stack
func (s *Stack) Remove(l *Layer) {
	for i, cur := range s.layers {
		if cur == l {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			return
		}
	}
}

// Top returns the topmost drawn layer, or nil
func (s *Stack) Top() *Layer {
	for i := len(s.layers) - 1; i >= 0; i-- {
		if s.layers[i].Drawn() {
			return s.layers[i]
		}
	}
	return nil
}

// Len returns the number of layers in the stack
func (s *Stack) Len() int {
	return len(s.layers)
}

// Composite draws every drawn layer over bg, bottom to top, and registers
// each layer's rectangle with p. Layers that are not drawn are unregistered.
func (s *Stack) Composite(bg string, p Placer, screenW, screenH int) string {
	out := bg
	for _, l := range s.layers {
		if !l.Drawn() {
			p.Remove(l.ZoneID())
			continue
		}
		box := l.View()
		if box == "" {
			p.Remove(l.ZoneID())
			continue
		}
		r := l.Place(box, p, screenW, screenH)
		p.Place(l.ZoneID(), r)
		out = Composite(out, box, r.X, r.Y)
	}
	return out
}
