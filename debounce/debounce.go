package debounce

import (
	"sync"
	"time"
)

// Debouncer delays a callback until calls to Trigger have settled for the delay.
// Callbacks run on their own goroutine.
type Debouncer struct {
	delay    time.Duration
	mutex    sync.Mutex
	timer    *time.Timer
	callback func()
	// gen identifies the current timer; timers from older triggers do nothing.
	gen uint64
	// fired counts callbacks that have run.
	fired int
}

// New creates a debouncer with the given delay.
func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules callback after the delay, replacing any callback that is
// still waiting.
func (d *Debouncer) Trigger(callback func()) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.callback = callback
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

func (d *Debouncer) fire(gen uint64) {
	d.mutex.Lock()
	if gen != d.gen {
		d.mutex.Unlock()
		return
	}
	callback := d.callback
	d.callback = nil
	d.timer = nil
	if callback != nil {
		d.fired++
	}
	d.mutex.Unlock()

	if callback != nil {
		callback()
	}
}

// Cancel drops the waiting callback, if any.
func (d *Debouncer) Cancel() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.callback = nil
}

// IsActive reports whether a callback is waiting.
func (d *Debouncer) IsActive() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.timer != nil
}

// Fired returns how many callbacks have run.
func (d *Debouncer) Fired() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.fired
}
