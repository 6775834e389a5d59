// Package popup implements a triggerable overlay: a surface that appears near
// a trigger zone on hover, click or focus and disappears on the complementary
// interaction or explicit dismissal.
//
// A Popup does not render anything. It decides when its Surface should be
// visible and which trigger the surface should align to. Feed it every
// message from the host's Update:
//
//	func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
//		cmd := m.menu.Update(msg)
//		...
//	}
//
// Trigger types:
//   - hover: debounced show on pointer enter, debounced hide on leave; the
//     surface itself keeps the popup open
//   - hover with a negative delay (tooltip): immediate show and hide
//   - click: toggles per trigger, one trigger owns the open popup at a time
//   - focus: shows on FocusMsg, hides after the delay on BlurMsg unless the
//     pointer went down on the surface first
package popup

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/riordanpawley/popup/internal/domain"
)

// DefaultDelay debounces hover and focus transitions
const DefaultDelay = 70 * time.Millisecond

// Config configures a Popup. Only Triggers is required.
type Config struct {
	// ID distinguishes this popup's timer messages; generated when empty
	ID string
	// Triggers are zone ids, or glob patterns when Delegate is set
	Triggers    []string
	TriggerType domain.TriggerType
	// Delegate is a zone enclosing the triggers. When set, triggers are
	// matched by pattern against whatever zones are under the pointer.
	Delegate string
	Align    domain.Align
	// Delay debounces hover show/hide and focus hide. Negative turns hover
	// into an undebounced tooltip.
	Delay    time.Duration
	Disabled bool
	// Effect is "fade", "slide", both, or empty for no animation
	Effect   string
	Duration time.Duration
	// HideOnOutsidePress hides the popup when the left button goes down
	// outside the surface and every trigger
	HideOnOutsidePress bool
	// Dismiss hides a visible popup
	Dismiss key.Binding
}

// DefaultConfig returns a Config with default settings and no triggers
func DefaultConfig() Config {
	return Config{
		TriggerType:        domain.TriggerHover,
		Align:              domain.DefaultAlign(),
		Delay:              DefaultDelay,
		Duration:           domain.DefaultDuration,
		HideOnOutsidePress: true,
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close popup"),
		),
	}
}

// Popup is the trigger-binding and visibility state machine
type Popup struct {
	cfg      Config
	mode     Mode
	registry *Registry
	sched    *Scheduler
	gate     *Gate
	align    *alignResolver
	surface  Surface
	hits     HitTester
	strategy strategy
	pointer  pointerState
	logger   *slog.Logger
	closed   bool
}

// New binds a popup to surface. hits may be nil when the host delivers
// events through Dispatch only.
func New(cfg Config, surface Surface, hits HitTester, logger *slog.Logger) *Popup {
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("popup", cfg.ID)

	mode := resolveMode(cfg.TriggerType, cfg.Delay)
	if cfg.TriggerType > domain.TriggerFocus || cfg.TriggerType < domain.TriggerHover {
		logger.Warn("unknown trigger type, using hover", "trigger_type", int(cfg.TriggerType))
	}

	p := &Popup{
		cfg:      cfg,
		mode:     mode,
		registry: NewRegistry(cfg.Triggers, cfg.Delegate != "", mode == ModeClick),
		sched:    NewScheduler(cfg.ID),
		gate:     NewGate(surface, cfg.Disabled, logger),
		align:    newAlignResolver(cfg.Align),
		surface:  surface,
		hits:     hits,
		logger:   logger,
	}

	if a, ok := surface.(Animator); ok {
		a.SetTransition(domain.ParseTransition(cfg.Effect, cfg.Duration))
	}

	p.strategy = p.bind()
	logger.Debug("popup bound", "mode", mode, "triggers", len(cfg.Triggers), "delegate", cfg.Delegate)
	return p
}

func resolveMode(t domain.TriggerType, delay time.Duration) Mode {
	switch t {
	case domain.TriggerClick:
		return ModeClick
	case domain.TriggerFocus:
		return ModeFocus
	default:
		if delay < 0 {
			return ModeTooltip
		}
		return ModeHover
	}
}

func (p *Popup) bind() strategy {
	if p.registry.Empty() {
		p.logger.Warn("popup has no triggers, it will never show on its own")
		return nopStrategy{}
	}

	switch p.mode {
	case ModeClick:
		s := clickStrategy{p: p}
		p.surface.BeforeHide(s.beforeHide)
		return s
	case ModeFocus:
		return &focusStrategy{p: p}
	case ModeTooltip:
		return tooltipStrategy{p: p}
	default:
		return hoverStrategy{p: p}
	}
}

// ID returns the popup id
func (p *Popup) ID() string {
	return p.cfg.ID
}

// Mode returns the resolved interaction mode
func (p *Popup) Mode() Mode {
	return p.mode
}

// Triggers returns the configured triggers
func (p *Popup) Triggers() []string {
	return p.registry.Triggers()
}

// Update feeds a message to the popup
func (p *Popup) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case timerMsg:
		return p.sched.Fire(msg)

	case tea.MouseMsg:
		for _, ev := range p.track(msg) {
			cmds = append(cmds, p.Dispatch(ev))
		}

	case FocusMsg:
		cmds = append(cmds, p.Dispatch(Event{Kind: EventFocus, Target: msg.Target}))

	case BlurMsg:
		cmds = append(cmds, p.Dispatch(Event{Kind: EventBlur, Target: msg.Target}))

	case tea.KeyMsg:
		if !p.closed && p.gate.Visible() && key.Matches(msg, p.cfg.Dismiss) {
			cmds = append(cmds, p.Hide())
		}
	}

	if u, ok := p.surface.(Updater); ok {
		cmds = append(cmds, u.Update(msg))
	}
	return tea.Batch(cmds...)
}

// Dispatch delivers a single interaction event. Trigger events naming a zone
// that is not one of the triggers are ignored.
func (p *Popup) Dispatch(ev Event) tea.Cmd {
	if p.closed {
		return nil
	}
	if ev.Kind.targetsTrigger() && !p.registry.Contains(ev.Target) {
		return nil
	}
	if ev.Kind == EventOutsidePress {
		if p.cfg.HideOnOutsidePress && p.gate.Visible() {
			p.logger.Debug("outside press, hiding")
			return p.Hide()
		}
		return nil
	}
	return p.strategy.handle(ev)
}

// Show makes the popup visible unless it is disabled
func (p *Popup) Show() tea.Cmd {
	return p.gate.Show()
}

// Hide hides the popup. Hiding an already hidden popup is harmless.
func (p *Popup) Hide() tea.Cmd {
	return p.gate.Hide()
}

// Visible reports whether the surface is visible
func (p *Popup) Visible() bool {
	return p.gate.Visible()
}

// SetDisabled blocks or unblocks future shows. A visible popup stays visible.
func (p *Popup) SetDisabled(disabled bool) {
	p.gate.SetDisabled(disabled)
}

// Disabled reports whether shows are blocked
func (p *Popup) Disabled() bool {
	return p.gate.Disabled()
}

// Active returns the trigger the popup currently aligns to
func (p *Popup) Active() string {
	return p.registry.Active()
}

// Owner returns the click-mode trigger that owns the open popup, or ""
func (p *Popup) Owner() string {
	return p.registry.Owner()
}

// Align returns the effective alignment. Unless a base element was pinned,
// it is the active trigger at the time of the call.
func (p *Popup) Align() domain.Align {
	return p.align.resolve(p.registry.Active())
}

// SetAlign replaces the alignment. A non-empty BaseElement pins the base
// element for the rest of the popup's life.
func (p *Popup) SetAlign(a domain.Align) {
	p.align.set(a, p.registry.Active())
}

// Transition returns the configured show/hide animation
func (p *Popup) Transition() domain.Transition {
	return domain.ParseTransition(p.cfg.Effect, p.cfg.Duration)
}

// Close cancels pending timers, drops click flags and hides the surface.
// The popup ignores all events afterwards.
func (p *Popup) Close() tea.Cmd {
	p.sched.Stop()
	p.registry.Clear()
	p.pointer = pointerState{}
	p.closed = true
	return p.gate.Hide()
}
