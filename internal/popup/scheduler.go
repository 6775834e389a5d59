package popup

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type timerKind int

const (
	timerShow timerKind = iota
	timerHide
)

func (k timerKind) String() string {
	if k == timerShow {
		return "show"
	}
	return "hide"
}

// timerMsg is delivered when a scheduled delay elapses. It only takes effect
// if its tag still matches the slot's, so cancelled timers fire harmlessly.
type timerMsg struct {
	popup string
	kind  timerKind
	tag   uint64
}

// tickFunc matches tea.Tick; tests swap it for a synchronous version.
type tickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

type timerSlot struct {
	tag    uint64
	action func() tea.Cmd
}

// Scheduler debounces show and hide transitions. It holds at most one
// pending timer of each kind; scheduling replaces the previous one.
type Scheduler struct {
	owner string
	tick  tickFunc
	slots [2]timerSlot
}

// NewScheduler creates a scheduler whose timer messages carry owner
func NewScheduler(owner string) *Scheduler {
	return &Scheduler{owner: owner, tick: tea.Tick}
}

// ScheduleShow runs action after delay, cancelling any pending hide
func (s *Scheduler) ScheduleShow(delay time.Duration, action func() tea.Cmd) tea.Cmd {
	s.CancelHide()
	return s.schedule(timerShow, delay, action)
}

// ScheduleHide runs action after delay. A pending show is left alone;
// strategies cancel it explicitly where needed.
func (s *Scheduler) ScheduleHide(delay time.Duration, action func() tea.Cmd) tea.Cmd {
	return s.schedule(timerHide, delay, action)
}

// CancelShow drops the pending show timer, if any
func (s *Scheduler) CancelShow() {
	s.cancel(timerShow)
}

// CancelHide drops the pending hide timer, if any
func (s *Scheduler) CancelHide() {
	s.cancel(timerHide)
}

// pending reports whether a timer of the given kind is waiting to fire
func (s *Scheduler) pending(kind timerKind) bool {
	return s.slots[kind].action != nil
}

// Stop cancels both timers
func (s *Scheduler) Stop() {
	s.cancel(timerShow)
	s.cancel(timerHide)
}

// Fire runs the action of a timer message if it is still current
func (s *Scheduler) Fire(msg timerMsg) tea.Cmd {
	if msg.popup != s.owner {
		return nil
	}
	slot := &s.slots[msg.kind]
	if slot.action == nil || slot.tag != msg.tag {
		return nil
	}
	action := slot.action
	slot.action = nil
	return action()
}

func (s *Scheduler) schedule(kind timerKind, delay time.Duration, action func() tea.Cmd) tea.Cmd {
	if delay < 0 {
		delay = 0
	}
	slot := &s.slots[kind]
	slot.tag++
	slot.action = action

	msg := timerMsg{popup: s.owner, kind: kind, tag: slot.tag}
	return s.tick(delay, func(time.Time) tea.Msg {
		return msg
	})
}

func (s *Scheduler) cancel(kind timerKind) {
	slot := &s.slots[kind]
	slot.tag++
	slot.action = nil
}
