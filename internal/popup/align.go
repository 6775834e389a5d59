package popup

import "github.com/riordanpawley/popup/internal/domain"

// alignResolver keeps the configured alignment and fills in the base element
// from the active trigger on every read, unless a base element was given
// explicitly. Once given, the base element stays pinned.
type alignResolver struct {
	align  domain.Align
	pinned bool
}

func newAlignResolver(a domain.Align) *alignResolver {
	r := &alignResolver{}
	r.set(a, "")
	return r
}

func (r *alignResolver) set(a domain.Align, active string) {
	if a.BaseElement != "" {
		r.pinned = true
	} else if active != "" {
		a.BaseElement = active
	}
	r.align = a
}

func (r *alignResolver) resolve(active string) domain.Align {
	a := r.align
	if !r.pinned {
		a.BaseElement = active
	}
	return a
}
