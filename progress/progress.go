// Package progress tracks page completion for a conversion run and derives
// an estimated time remaining from the observed page rate.
package progress

import (
	"sync"
	"time"
)

// Func receives progress notifications. It is called once with done == 0
// before any work starts (so callers can size a progress bar), then once per
// completed page.
type Func func(done, total int)

// Tracker counts completed pages and estimates the time remaining.
// It is safe for concurrent use by OCR workers.
type Tracker struct {
	mu      sync.Mutex
	total   int
	done    int
	started time.Time
	now     func() time.Time // overridable for tests
}

// NewTracker returns an unstarted tracker.
func NewTracker() *Tracker {
	return &Tracker{now: time.Now}
}

// Start records the total page count and the start time. Calling Start
// resets any previous run.
func (t *Tracker) Start(total int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.total = total
	t.done = 0
	t.started = t.now()
}

// Advance records one completed page and returns the new completion count.
func (t *Tracker) Advance() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.done++
	return t.done
}

// Done returns the number of completed pages.
func (t *Tracker) Done() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done
}

// Total returns the page count recorded by Start.
func (t *Tracker) Total() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.total
}

// Rate returns completed pages per second since Start, or 0 before any
// page has finished.
func (t *Tracker) Rate() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rateLocked()
}

func (t *Tracker) rateLocked() float64 {
	if t.done == 0 || t.started.IsZero() {
		return 0
	}
	elapsed := t.now().Sub(t.started).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(t.done) / elapsed
}

// ETA returns the estimated time remaining based on the current rate.
// Before any page completes the estimate is unknown and ETA returns 0, false.
func (t *Tracker) ETA() (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rate := t.rateLocked()
	if rate == 0 {
		return 0, false
	}
	remaining := t.total - t.done
	if remaining <= 0 {
		return 0, true
	}
	return time.Duration(float64(remaining) / rate * float64(time.Second)), true
}
