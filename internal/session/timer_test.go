package session

import (
	"testing"
	"time"
)

// fakeClock lets tests jump time without sleeping.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newFakeTimer() (*RestTimer, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	timer := NewRestTimer()
	timer.now = clock.now
	return timer, clock
}

func TestRestTimerCountsDown(t *testing.T) {
	timer, clock := newFakeTimer()
	timer.Start(90)

	if got := timer.Tick(); got != 90 {
		t.Fatalf("Tick at start = %d, want 90", got)
	}

	clock.advance(30 * time.Second)
	if got := timer.Tick(); got != 60 {
		t.Errorf("Tick after 30s = %d, want 60", got)
	}
	if !timer.Running() {
		t.Error("timer should still be running")
	}
}

// Remaining time is anchored to the deadline, so a long gap between
// ticks (process suspended, terminal backgrounded) is corrected by the
// first tick afterwards.
func TestRestTimerSuspensionCorrected(t *testing.T) {
	timer, clock := newFakeTimer()
	timer.Start(120)

	clock.advance(100 * time.Second)
	if got := timer.Tick(); got != 20 {
		t.Errorf("Tick after 100s gap = %d, want 20", got)
	}

	clock.advance(5 * time.Minute)
	if got := timer.Tick(); got != 0 {
		t.Errorf("Tick past deadline = %d, want 0", got)
	}
	if timer.Running() {
		t.Error("timer should stop itself once the deadline passes")
	}
}

func TestRestTimerRestartReplacesDeadline(t *testing.T) {
	timer, clock := newFakeTimer()
	timer.Start(60)
	clock.advance(50 * time.Second)

	// Restarting while running does not queue; the old deadline is gone.
	timer.Start(90)
	if got := timer.Tick(); got != 90 {
		t.Errorf("Tick after restart = %d, want 90", got)
	}
}

func TestRestTimerStop(t *testing.T) {
	timer, _ := newFakeTimer()
	timer.Start(60)
	timer.Stop()

	if timer.Running() {
		t.Error("stopped timer reports running")
	}
	if got := timer.Tick(); got != 0 {
		t.Errorf("Tick on stopped timer = %d, want 0", got)
	}
	if got := timer.Remaining(); got != 0 {
		t.Errorf("Remaining on stopped timer = %d, want 0", got)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{59, "0:59"},
		{60, "1:00"},
		{90, "1:30"},
		{605, "10:05"},
		{-3, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.secs); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}
