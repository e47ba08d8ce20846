package playback

import (
	"errors"
	"sync"
	"time"
)

// Visibility thresholds. Reports are quantized to these buckets so repeated
// callbacks inside one bucket are ignored, mirroring how an intersection
// observer only fires on threshold crossings.
var Thresholds = []float64{0, 0.25, 0.6, 0.9, 1}

// PlayableRatio is the visible fraction above which an item is a playback
// candidate.
const PlayableRatio = 0.6

// FocusSettleDelay is how long a deep-link focus waits for the scroll to
// settle before attempting playback.
const FocusSettleDelay = 400 * time.Millisecond

// Scheduler keeps the at-most-one-playing invariant over a set of mounted
// media surfaces. Safe for concurrent use.
type Scheduler struct {
	mu      sync.Mutex
	players map[string]Player
	ratios  map[string]float64
	buckets map[string]float64
	playing string
	flags   Flags
	scroll  func(id string)
	timers  map[*time.Timer]struct{}
	closed  bool
}

// NewScheduler creates a scheduler. scroll brings an item into view for the
// deep-link focus path and may be nil.
func NewScheduler(flags Flags, scroll func(id string)) *Scheduler {
	return &Scheduler{
		players: make(map[string]Player),
		ratios:  make(map[string]float64),
		buckets: make(map[string]float64),
		flags:   flags,
		scroll:  scroll,
		timers:  make(map[*time.Timer]struct{}),
	}
}

// Register starts observing a mounted media surface. The item begins fully
// out of view until the first visibility report arrives.
func (s *Scheduler) Register(id string, p Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || p == nil {
		return
	}
	s.players[id] = p
	s.ratios[id] = 0
	s.buckets[id] = 0
}

// Unregister releases one item, pausing it if it was playing.
func (s *Scheduler) Unregister(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.players[id]; ok && s.playing == id {
		p.Pause()
		s.playing = ""
	}
	delete(s.players, id)
	delete(s.ratios, id)
	delete(s.buckets, id)
}

// Report delivers a visibility callback for one item. Ratios are clamped to
// [0, 1] and quantized; a report that stays inside the previous threshold
// bucket is a no-op.
func (s *Scheduler) Report(id string, ratio float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if _, ok := s.players[id]; !ok {
		return
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	bucket := quantize(ratio)
	if bucket == s.buckets[id] {
		return
	}
	s.buckets[id] = bucket
	s.ratios[id] = ratio
	s.reconcile()
}

// TogglePause flips the user's manual pause for an item. Un-pausing re-issues
// a play request right away when the item is still the visible candidate; the
// observer will not fire again on its own.
func (s *Scheduler) TogglePause(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	p, ok := s.players[id]
	if !ok {
		return
	}

	paused := !s.flags.ManuallyPaused(id)
	s.flags.SetManuallyPaused(id, paused)

	if paused {
		p.Pause()
		if s.playing == id {
			s.playing = ""
		}
		return
	}
	if s.ratios[id] >= PlayableRatio {
		s.play(id, p)
	}
}

// ToggleMute flips the audio mute for an item. Mute is independent of scroll
// and of the play/pause state.
func (s *Scheduler) ToggleMute(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	p, ok := s.players[id]
	if !ok {
		return
	}
	muted := !s.flags.Muted(id)
	s.flags.SetMuted(id, muted)
	p.SetMuted(muted)
}

// Focus scrolls a deep-linked item into view and attempts playback after a
// short settle delay, independent of the visibility-driven path.
func (s *Scheduler) Focus(id string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	scroll := s.scroll
	s.mu.Unlock()

	if scroll != nil {
		scroll(id)
	}

	var timer *time.Timer
	timer = time.AfterFunc(FocusSettleDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.timers, timer)
		if s.closed {
			return
		}
		if p, ok := s.players[id]; ok && !s.flags.ManuallyPaused(id) {
			s.play(id, p)
		}
	})

	s.mu.Lock()
	if s.closed {
		timer.Stop()
	} else {
		s.timers[timer] = struct{}{}
	}
	s.mu.Unlock()
}

// Close releases all observation and pending timers. The scheduler must not
// be used after Close.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for timer := range s.timers {
		timer.Stop()
		delete(s.timers, timer)
	}
	if p, ok := s.players[s.playing]; ok {
		p.Pause()
	}
	s.playing = ""
	s.players = make(map[string]Player)
	s.ratios = make(map[string]float64)
	s.buckets = make(map[string]float64)
}

// reconcile applies the invariant after a visibility change: the most
// centered item at or above PlayableRatio plays, everything else pauses.
// Caller holds the lock.
func (s *Scheduler) reconcile() {
	best := ""
	bestRatio := 0.0
	for id, ratio := range s.ratios {
		if ratio < PlayableRatio {
			continue
		}
		if ratio > bestRatio || (ratio == bestRatio && id == s.playing) {
			best = id
			bestRatio = ratio
		}
	}

	for id, p := range s.players {
		if id == best {
			continue
		}
		p.Pause()
	}
	if s.playing != best {
		s.playing = ""
	}

	if best == "" || s.flags.ManuallyPaused(best) {
		return
	}
	if s.playing != best {
		s.play(best, s.players[best])
	}
}

// play issues a play request with the sound-blocked fallback: mute, record
// the new mute state, retry once. Rejections are otherwise swallowed.
// Caller holds the lock.
func (s *Scheduler) play(id string, p Player) {
	s.playing = id
	err := p.Play()
	if err == nil {
		return
	}
	if errors.Is(err, ErrAutoplayBlocked) {
		p.SetMuted(true)
		s.flags.SetMuted(id, true)
		_ = p.Play()
		return
	}
	// Other play failures are fire-and-forget.
}

// quantize returns the largest threshold not exceeding ratio.
func quantize(ratio float64) float64 {
	bucket := Thresholds[0]
	for _, t := range Thresholds {
		if ratio >= t {
			bucket = t
		}
	}
	return bucket
}
