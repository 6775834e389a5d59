package popup

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/popup/internal/domain"
)

// Surface is the overlay primitive a popup drives. It owns rendering,
// positioning and the visible state.
type Surface interface {
	Show() tea.Cmd
	Hide() tea.Cmd
	Visible() bool
	// BeforeHide registers fn to run at the start of every Hide call,
	// whether or not the surface is currently visible.
	BeforeHide(fn func())
	// ZoneID is the zone the surface marks its rendered output with
	ZoneID() string
}

// Animator is implemented by surfaces that animate show and hide
type Animator interface {
	SetTransition(t domain.Transition)
}

// Updater is implemented by surfaces with messages of their own, such as
// animation frames. The popup forwards every message it receives.
type Updater interface {
	Update(msg tea.Msg) tea.Cmd
}

// HitTester answers pointer queries against zones rendered in the last frame
type HitTester interface {
	// InBounds reports whether the pointer is inside the zone id
	InBounds(id string, msg tea.MouseMsg) bool
	// Hits returns every zone under the pointer, topmost first
	Hits(msg tea.MouseMsg) []string
}
