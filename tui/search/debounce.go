// Package search schedules debounced searches for the feed's search bar.
package search

import (
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDelay is how long typing must pause before a search fires.
const DefaultDelay = 500 * time.Millisecond

// Phase is the debouncer's lifecycle position.
type Phase int

const (
	Idle Phase = iota
	Debouncing
	InFlight
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Debouncing:
		return "debouncing"
	case InFlight:
		return "in-flight"
	}
	return "unknown"
}

var lastID atomic.Int64

// TickMsg is delivered when a debounce delay elapses. It only matters to the
// Debouncer that scheduled it and only for the latest keystroke.
type TickMsg struct {
	id  int64
	gen int
}

// Debouncer collapses a burst of keystrokes into one search. Every keystroke
// restarts the delay; when it elapses without further input the pending term
// is handed back to the caller. A tick that was superseded or cancelled is
// ignored, so at most one search fires per pause in typing.
type Debouncer struct {
	id      int64
	delay   time.Duration
	gen     int
	phase   Phase
	pending string
	active  string // Term of the search in flight
}

// New returns a debouncer with the given delay. A non-positive delay fires on
// the next tick.
func New(delay time.Duration) Debouncer {
	return Debouncer{id: lastID.Add(1), delay: max(delay, 0)}
}

// Keystroke records the latest input and restarts the delay.
func (d Debouncer) Keystroke(term string) (Debouncer, tea.Cmd) {
	d.gen++
	d.pending = term
	d.phase = Debouncing
	id, gen := d.id, d.gen
	return d, tea.Tick(d.delay, func(time.Time) tea.Msg {
		return TickMsg{id: id, gen: gen}
	})
}

// Elapsed consumes a tick. It returns the term to search for when the tick is
// the current one; stale or foreign ticks return ok=false and leave d alone.
func (d Debouncer) Elapsed(msg TickMsg) (Debouncer, string, bool) {
	if msg.id != d.id || msg.gen != d.gen || d.phase != Debouncing {
		return d, "", false
	}
	d = d.start(d.pending)
	return d, d.active, true
}

// Submit fires the search for term immediately, cancelling any pending tick.
func (d Debouncer) Submit(term string) (Debouncer, string) {
	d.gen++
	d.pending = term
	d = d.start(term)
	return d, d.active
}

func (d Debouncer) start(term string) Debouncer {
	d.phase = InFlight
	d.active = strings.TrimSpace(term)
	return d
}

// Cancel drops the pending tick. It reports whether one was pending.
func (d Debouncer) Cancel() (Debouncer, bool) {
	if d.phase != Debouncing {
		return d, false
	}
	d.gen++
	d.phase = Idle
	return d, true
}

// Clear cancels everything and forgets the term.
func (d Debouncer) Clear() Debouncer {
	d.gen++
	d.phase = Idle
	d.pending = ""
	d.active = ""
	return d
}

// Done marks the search for term as answered. Answers for an older term do not
// end the current search.
func (d Debouncer) Done(term string) Debouncer {
	if d.phase == InFlight && strings.TrimSpace(term) == d.active {
		d.phase = Idle
	}
	return d
}

func (d Debouncer) Phase() Phase         { return d.phase }
func (d Debouncer) Pending() string      { return d.pending }
func (d Debouncer) Active() string       { return d.active }
func (d Debouncer) Delay() time.Duration { return d.delay }
