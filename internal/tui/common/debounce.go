package common

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DebounceMsg fires when a debounce window elapses. Only the message whose
// Tag matches the debouncer's latest tag is live.
type DebounceMsg struct {
	ID    string
	Tag   int
	Value string
}

// Debouncer coalesces bursts of input into one action. Every Trigger bumps
// the tag, so earlier ticks arrive stale and are ignored.
type Debouncer struct {
	id      string
	delay   time.Duration
	tag     int
	pending bool
	value   string
}

// NewDebouncer creates a debouncer; id routes its messages.
func NewDebouncer(id string, delay time.Duration) Debouncer {
	return Debouncer{id: id, delay: delay}
}

// Trigger restarts the window for value.
func (d *Debouncer) Trigger(value string) tea.Cmd {
	d.tag++
	d.pending = true
	d.value = value

	msg := DebounceMsg{ID: d.id, Tag: d.tag, Value: value}
	if d.delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return msg
	})
}

// Accept reports whether msg is the live tick for this debouncer and, if
// so, clears the pending state.
func (d *Debouncer) Accept(msg DebounceMsg) bool {
	if msg.ID != d.id || msg.Tag != d.tag || !d.pending {
		return false
	}
	d.pending = false
	return true
}

// Cancel invalidates any outstanding tick. It reports whether a value was
// pending, and returns it.
func (d *Debouncer) Cancel() (string, bool) {
	d.tag++
	wasPending := d.pending
	d.pending = false
	return d.value, wasPending
}

// Pending reports whether a tick is outstanding.
func (d *Debouncer) Pending() bool {
	return d.pending
}

// SetDelay changes the window for future triggers.
func (d *Debouncer) SetDelay(delay time.Duration) {
	d.delay = delay
}
