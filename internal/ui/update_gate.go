package ui

import (
	"sync"
	"time"
)

// updateGate coalesces bursts of change callbacks. The first trigger in a
// window runs immediately; triggers landing inside the window are merged into
// one trailing run after it closes, so the last change of a burst is never
// dropped.
type updateGate struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
	pending  bool
	run      func()
}

func newUpdateGate(interval time.Duration, run func()) *updateGate {
	return &updateGate{interval: interval, run: run}
}

// Trigger requests a run. Safe to call from any goroutine.
func (g *updateGate) Trigger() {
	g.mu.Lock()
	if g.pending {
		g.mu.Unlock()
		return
	}
	now := time.Now()
	if now.Sub(g.last) >= g.interval {
		g.last = now
		g.mu.Unlock()
		g.run()
		return
	}
	g.pending = true
	wait := g.interval - now.Sub(g.last)
	g.mu.Unlock()

	time.AfterFunc(wait, func() {
		g.mu.Lock()
		g.pending = false
		g.last = time.Now()
		g.mu.Unlock()
		g.run()
	})
}
