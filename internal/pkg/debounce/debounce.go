// internal/pkg/debounce/debounce.go
package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid triggers into a single callback invocation after
// a quiescence window. Each Trigger cancels the pending timer and schedules a
// new one, so the callback only fires once input has settled for the full
// window.
type Debouncer struct {
	window time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a debouncer with the given quiescence window.
func New(window time.Duration) *Debouncer {
	return &Debouncer{
		window: window,
	}
}

// Trigger schedules fn to run after the quiescence window, replacing any
// previously scheduled callback that has not fired yet.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, fn)
}

// Stop cancels any pending callback. It does not wait for a callback that is
// already running.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
