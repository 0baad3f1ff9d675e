package session

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// RestTimer is a wall-clock-anchored countdown. The remaining time is
// always recomputed from the absolute target deadline, never by
// decrementing a counter, so a process suspension of any length is
// corrected by the first Tick after resume with no drift.
type RestTimer struct {
	mu        sync.Mutex
	running   bool
	targetEnd time.Time
	remaining int
	now       func() time.Time
}

// NewRestTimer returns a stopped timer.
func NewRestTimer() *RestTimer {
	return &RestTimer{now: time.Now}
}

// Start arms the timer for the given duration. Starting while already
// running replaces the previous deadline; timers never queue.
func (t *RestTimer) Start(seconds int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.targetEnd = t.now().Add(time.Duration(seconds) * time.Second)
	t.remaining = seconds
	t.running = true
}

// Stop disarms the timer and clears the deadline.
func (t *RestTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
	t.targetEnd = time.Time{}
	t.remaining = 0
}

// Tick recomputes the remaining seconds against the deadline and returns
// them. When the countdown reaches zero the timer stops itself. Callers
// should Tick immediately whenever the process regains focus, in addition
// to the periodic tick while foregrounded.
func (t *RestTimer) Tick() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return 0
	}
	secs := int(math.Ceil(t.targetEnd.Sub(t.now()).Seconds()))
	if secs <= 0 {
		t.running = false
		t.targetEnd = time.Time{}
		t.remaining = 0
		return 0
	}
	t.remaining = secs
	return secs
}

// Running reports whether the countdown is active.
func (t *RestTimer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Remaining returns the seconds left as of the last Tick.
func (t *RestTimer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// FormatClock renders seconds as m:ss.
func FormatClock(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}
