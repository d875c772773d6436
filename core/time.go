package core

import (
	"time"
)

// NewTime creates a new time service
func NewTime(cfg TimeConfiguration) *Time {
	t := &Time{
		fps:       cfg.FramesPerSecond,
		lastStats: time.Now(),
	}
	if cfg.FramesPerSecond > 0 {
		interval := time.Second / time.Duration(cfg.FramesPerSecond)
		if interval <= 0 {
			interval = time.Nanosecond
		}
		t.fpsTicker = time.NewTicker(interval)
	}
	if cfg.StatsInterval > 0 {
		t.statsTicker = time.NewTicker(time.Duration(cfg.StatsInterval) * time.Millisecond)
	}
	return t
}

// Time contains all the time services and tickers
type Time struct {
	fps       int
	fpsTicker *time.Ticker

	statsTicker *time.Ticker
	lastStats   time.Time
}

// Fps gets the set frames per second
func (t *Time) Fps() int {
	return t.fps
}

// WaitFrame blocks until the next frame is due.
// Returns immediately when frames are not capped.
func (t *Time) WaitFrame() {
	if t.fpsTicker == nil {
		return
	}
	<-t.fpsTicker.C
}

// StatsDue reports, without blocking, whether a stats interval has
// passed and how much time elapsed since the previous one.
func (t *Time) StatsDue() (time.Duration, bool) {
	if t.statsTicker == nil {
		return 0, false
	}
	select {
	case now := <-t.statsTicker.C:
		elapsed := now.Sub(t.lastStats)
		t.lastStats = now
		return elapsed, true
	default:
		return 0, false
	}
}

// Stop releases the tickers
func (t *Time) Stop() {
	if t.fpsTicker != nil {
		t.fpsTicker.Stop()
	}
	if t.statsTicker != nil {
		t.statsTicker.Stop()
	}
}
