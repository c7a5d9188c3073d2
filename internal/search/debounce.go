package search

import (
	"sync"
	"time"
)

// defaultDebounceDelay is how long the debouncer waits after the last
// keystroke before firing. Re-indexing thousands of words on every keystroke
// is wasted work; half a second after typing stops is indistinguishable from
// instant to the user.
const defaultDebounceDelay = 500 * time.Millisecond

// Debouncer coalesces a burst of triggers into a single callback fired after
// a quiet period. Each Trigger restarts the countdown and replaces the
// pending callback, so only the last trigger's work runs.
//
// Debouncer is safe for concurrent use.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer returns a debouncer with the given quiet period. Non-positive
// delays fall back to the 500ms default.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = defaultDebounceDelay
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run after the quiet period, cancelling any
// previously scheduled callback. fn runs on a timer goroutine.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending callback. It does not wait for a callback that
// has already started.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
