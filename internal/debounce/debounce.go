// Package debounce delays a value until input has been quiet for a fixed window.
//
// A Debouncer is owned by a single Bubble Tea model and must only be used from
// its Update method. Each Trigger schedules a tick stamped with a new generation;
// only the tick carrying the latest generation settles.
package debounce

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDelay is the quiet window used for search input
const DefaultDelay = 200 * time.Millisecond

var lastID atomic.Int64

// SettledMsg is delivered when a debounce window elapses
type SettledMsg struct {
	ID    int64
	Gen   int
	Value string
}

// Debouncer holds the pending generation for one input
type Debouncer struct {
	id    int64
	delay time.Duration
	gen   int
}

// New creates a debouncer with the given quiet window
func New(delay time.Duration) *Debouncer {
	if delay < 0 {
		delay = 0
	}
	return &Debouncer{
		id:    lastID.Add(1),
		delay: delay,
	}
}

// Delay returns the quiet window
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Trigger restarts the quiet window for value
func (d *Debouncer) Trigger(value string) tea.Cmd {
	d.gen++
	id, gen := d.id, d.gen
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return SettledMsg{ID: id, Gen: gen, Value: value}
	})
}

// Cancel discards any pending window
func (d *Debouncer) Cancel() {
	d.gen++
}

// Settled reports whether msg is the latest settled value of this debouncer
func (d *Debouncer) Settled(msg tea.Msg) (string, bool) {
	m, ok := msg.(SettledMsg)
	if !ok || m.ID != d.id || m.Gen != d.gen {
		return "", false
	}
	return m.Value, true
}
