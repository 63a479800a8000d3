package suggest

import (
	"sync"
	"time"
)

// Debounce windows per input mode. Advanced queries re-suggest quickly;
// fuzzy name matching waits out a typing burst.
const (
	DebounceAdvanced = 150 * time.Millisecond
	DebounceFuzzy    = 800 * time.Millisecond
)

// Debouncer coalesces a stream of input events into one trailing
// callback. Each Trigger cancels the pending callback, so only the last
// event inside the window fires; Cancel drops any pending callback.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given trailing delay
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the delay, cancelling any pending callback
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Cancel drops the pending callback, if any
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
