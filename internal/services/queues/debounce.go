package queues

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of calls into one, firing the last function
// after the quiet period. Search boxes feed every keystroke in and only the
// settled query reaches the core API.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = 300 * time.Millisecond
	}
	return &Debouncer{delay: delay}
}

// Do schedules fn, replacing any previously scheduled call that has not fired
// yet. fn runs on a timer goroutine.
func (d *Debouncer) Do(fn func()) {
	if fn == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels the pending call, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
