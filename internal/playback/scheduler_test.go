package playback

import (
	"sync"
	"testing"
	"time"
)

// fakePlayer records play/pause/mute calls.
type fakePlayer struct {
	mu       sync.Mutex
	playErr  error
	plays    int
	pauses   int
	muted    bool
	muteSets int
}

func (f *fakePlayer) Play() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.plays++
	if f.playErr != nil && !f.muted {
		return f.playErr
	}
	return nil
}

func (f *fakePlayer) Pause() {
	f.mu.Lock()
	f.pauses++
	f.mu.Unlock()
}

func (f *fakePlayer) SetMuted(muted bool) {
	f.mu.Lock()
	f.muted = muted
	f.muteSets++
	f.mu.Unlock()
}

func (f *fakePlayer) playCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.plays
}

func (f *fakePlayer) pauseCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pauses
}

// fakeFlags is an in-memory playback.Flags.
type fakeFlags struct {
	mu     sync.Mutex
	paused map[string]bool
	muted  map[string]bool
}

func newFakeFlags() *fakeFlags {
	return &fakeFlags{paused: make(map[string]bool), muted: make(map[string]bool)}
}

func (f *fakeFlags) ManuallyPaused(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.paused[id]
}

func (f *fakeFlags) SetManuallyPaused(id string, paused bool) {
	f.mu.Lock()
	f.paused[id] = paused
	f.mu.Unlock()
}

func (f *fakeFlags) Muted(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.muted[id]
}

func (f *fakeFlags) SetMuted(id string, muted bool) {
	f.mu.Lock()
	f.muted[id] = muted
	f.mu.Unlock()
}

func TestMostVisibleItemPlays(t *testing.T) {
	flags := newFakeFlags()
	s := NewScheduler(flags, nil)
	defer s.Close()

	a, b := &fakePlayer{}, &fakePlayer{}
	s.Register("a", a)
	s.Register("b", b)

	s.Report("a", 0.8)
	s.Report("b", 0.2)

	if a.playCount() != 1 {
		t.Errorf("Expected exactly one play for item a, got %d", a.playCount())
	}
	if b.playCount() != 0 {
		t.Errorf("Expected no play for item b, got %d", b.playCount())
	}
}

func TestScrollHandsPlaybackOver(t *testing.T) {
	flags := newFakeFlags()
	s := NewScheduler(flags, nil)
	defer s.Close()

	a, b := &fakePlayer{}, &fakePlayer{}
	s.Register("a", a)
	s.Register("b", b)

	s.Report("a", 0.8)
	s.Report("b", 0.2)

	// Scroll: a drops out, b becomes dominant.
	s.Report("a", 0.1)
	s.Report("b", 0.7)

	if a.pauseCount() == 0 {
		t.Error("Expected item a to be paused after scrolling out")
	}
	if b.playCount() != 1 {
		t.Errorf("Expected exactly one play for item b, got %d", b.playCount())
	}
}

func TestReportsInsideSameBucketAreIgnored(t *testing.T) {
	flags := newFakeFlags()
	s := NewScheduler(flags, nil)
	defer s.Close()

	a := &fakePlayer{}
	s.Register("a", a)

	s.Report("a", 0.95)
	s.Report("a", 0.97)
	s.Report("a", 0.93)

	if a.playCount() != 1 {
		t.Errorf("Expected one play despite repeated reports in the same bucket, got %d", a.playCount())
	}
}

func TestManualPauseWinsOverVisibility(t *testing.T) {
	flags := newFakeFlags()
	s := NewScheduler(flags, nil)
	defer s.Close()

	a := &fakePlayer{}
	s.Register("a", a)

	s.Report("a", 1.0)
	if a.playCount() != 1 {
		t.Fatalf("Expected initial play, got %d", a.playCount())
	}

	s.TogglePause("a")
	if !flags.ManuallyPaused("a") {
		t.Fatal("Expected manual pause flag to be recorded")
	}

	// Visibility callbacks must not resurrect a manually paused item.
	s.Report("a", 0.25)
	s.Report("a", 1.0)

	if a.playCount() != 1 {
		t.Errorf("Expected no replay while manually paused, got %d plays", a.playCount())
	}

	// Un-pausing re-issues play without a new observer event.
	s.TogglePause("a")
	if a.playCount() != 2 {
		t.Errorf("Expected replay after unpause, got %d plays", a.playCount())
	}
}

func TestAutoplayBlockedFallsBackToMuted(t *testing.T) {
	flags := newFakeFlags()
	s := NewScheduler(flags, nil)
	defer s.Close()

	a := &fakePlayer{playErr: ErrAutoplayBlocked}
	s.Register("a", a)

	s.Report("a", 0.9)

	if !flags.Muted("a") {
		t.Error("Expected mute fallback to be recorded in overlay flags")
	}
	if a.playCount() != 2 {
		t.Errorf("Expected a single muted retry, got %d plays", a.playCount())
	}
}

func TestMuteToggleIndependentOfScroll(t *testing.T) {
	flags := newFakeFlags()
	s := NewScheduler(flags, nil)
	defer s.Close()

	a := &fakePlayer{}
	s.Register("a", a)
	s.Report("a", 1.0)

	s.ToggleMute("a")
	if !flags.Muted("a") {
		t.Error("Expected mute to be recorded")
	}

	// Scroll churn must not touch the mute flag.
	s.Report("a", 0.25)
	s.Report("a", 0.9)
	if !flags.Muted("a") {
		t.Error("Expected mute to survive visibility changes")
	}

	s.ToggleMute("a")
	if flags.Muted("a") {
		t.Error("Expected unmute")
	}
}

func TestFocusScrollsAndPlaysAfterSettle(t *testing.T) {
	flags := newFakeFlags()

	scrolled := make(chan string, 1)
	s := NewScheduler(flags, func(id string) { scrolled <- id })
	defer s.Close()

	a := &fakePlayer{}
	s.Register("a", a)

	s.Focus("a")

	select {
	case id := <-scrolled:
		if id != "a" {
			t.Errorf("Expected scroll to 'a', got '%s'", id)
		}
	default:
		t.Fatal("Expected scroll callback to fire synchronously")
	}

	deadline := time.Now().Add(FocusSettleDelay + 500*time.Millisecond)
	for a.playCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if a.playCount() != 1 {
		t.Errorf("Expected focus play after settle delay, got %d", a.playCount())
	}
}

func TestCloseReleasesEverything(t *testing.T) {
	flags := newFakeFlags()
	s := NewScheduler(flags, nil)

	a := &fakePlayer{}
	s.Register("a", a)
	s.Report("a", 1.0)
	s.Focus("a")
	s.Close()

	plays := a.playCount()
	time.Sleep(FocusSettleDelay + 100*time.Millisecond)

	if a.playCount() != plays {
		t.Error("Expected no play activity after Close")
	}

	// Reports after close are dropped.
	s.Report("a", 1.0)
	if a.playCount() != plays {
		t.Error("Expected reports after Close to be no-ops")
	}
}
