// Package overlay holds per-item ephemeral UI state that the server does not
// own: liked/saved/following flags, mute and manual-pause state, expanded
// descriptions, and short-lived flash flags. Entries are created lazily on
// first touch and live as long as the store.
package overlay

import (
	"strings"
	"sync"
	"time"
)

// Flash durations for the self-clearing flags.
const (
	AddedToCartFlashDuration = 1200 * time.Millisecond
	ShareFlashDuration       = 900 * time.Millisecond
)

// State is the client-only flag set for one reel id.
type State struct {
	Liked          bool
	Saved          bool
	Following      bool
	Muted          bool
	ManuallyPaused bool
	Expanded       bool
	AddedToCart    bool
	ShareFlash     bool
}

// Store keeps overlay state keyed by reel id. All methods are safe for
// concurrent use; the change callback fires outside the lock with the id
// whose state moved.
type Store struct {
	mu       sync.Mutex
	states   map[string]*State
	timers   map[string]*time.Timer
	onChange func(id string)
	closed   bool
}

// NewStore creates an empty overlay store.
func NewStore() *Store {
	return &Store{
		states: make(map[string]*State),
		timers: make(map[string]*time.Timer),
	}
}

// SetChangeCallback sets the function invoked after any state change.
func (s *Store) SetChangeCallback(fn func(id string)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Get returns a copy of the state for id, creating the entry if needed.
func (s *Store) Get(id string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.state(id)
}

// Seed marks ids as liked/saved from the persistent cache so a reload does
// not lose known interaction status.
func (s *Store) Seed(liked, saved map[string]bool) {
	s.mu.Lock()
	for id := range liked {
		s.state(id).Liked = true
	}
	for id := range saved {
		s.state(id).Saved = true
	}
	s.mu.Unlock()
}

// SetLiked records the liked flag for id.
func (s *Store) SetLiked(id string, liked bool) {
	s.set(id, func(st *State) { st.Liked = liked })
}

// Liked reports the liked flag for id.
func (s *Store) Liked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(id).Liked
}

// SetSaved records the saved flag for id.
func (s *Store) SetSaved(id string, saved bool) {
	s.set(id, func(st *State) { st.Saved = saved })
}

// Saved reports the saved flag for id.
func (s *Store) Saved(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(id).Saved
}

// ToggleFollowing flips the local-only follow flag and returns the new value.
func (s *Store) ToggleFollowing(id string) bool {
	var now bool
	s.set(id, func(st *State) {
		st.Following = !st.Following
		now = st.Following
	})
	return now
}

// ToggleExpanded flips the description-expanded flag and returns the new value.
func (s *Store) ToggleExpanded(id string) bool {
	var now bool
	s.set(id, func(st *State) {
		st.Expanded = !st.Expanded
		now = st.Expanded
	})
	return now
}

// SetMuted records the audio mute flag for id. Mute is never changed by
// scroll; only the user toggle and the autoplay fallback call this.
func (s *Store) SetMuted(id string, muted bool) {
	s.set(id, func(st *State) { st.Muted = muted })
}

// Muted reports the audio mute flag for id.
func (s *Store) Muted(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(id).Muted
}

// SetManuallyPaused records the user's explicit pause for id.
func (s *Store) SetManuallyPaused(id string, paused bool) {
	s.set(id, func(st *State) { st.ManuallyPaused = paused })
}

// ManuallyPaused reports whether the user explicitly paused id.
func (s *Store) ManuallyPaused(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(id).ManuallyPaused
}

// FlashAddedToCart raises the added-to-cart flag and clears it after
// AddedToCartFlashDuration.
func (s *Store) FlashAddedToCart(id string) {
	s.flash(id, "cart", AddedToCartFlashDuration,
		func(st *State, on bool) { st.AddedToCart = on })
}

// FlashShare raises the share flag and clears it after ShareFlashDuration.
func (s *Store) FlashShare(id string) {
	s.flash(id, "share", ShareFlashDuration,
		func(st *State, on bool) { st.ShareFlash = on })
}

// Forget drops the entry for id, e.g. after a confirmed delete.
func (s *Store) Forget(id string) {
	s.mu.Lock()
	delete(s.states, id)
	prefix := id + ":"
	for key, timer := range s.timers {
		if strings.HasPrefix(key, prefix) {
			timer.Stop()
			delete(s.timers, key)
		}
	}
	fn := s.onChange
	s.mu.Unlock()
	s.notify(fn, id)
}

// Close stops every pending flash timer. The store must not be used after.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	for key, timer := range s.timers {
		timer.Stop()
		delete(s.timers, key)
	}
	s.mu.Unlock()
}

// state returns the entry for id, creating it lazily. Caller holds the lock.
func (s *Store) state(id string) *State {
	st, ok := s.states[id]
	if !ok {
		st = &State{}
		s.states[id] = st
	}
	return st
}

func (s *Store) set(id string, mutate func(*State)) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	mutate(s.state(id))
	fn := s.onChange
	s.mu.Unlock()
	s.notify(fn, id)
}

func (s *Store) flash(id, slot string, d time.Duration, apply func(*State, bool)) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	apply(s.state(id), true)
	key := id + ":" + slot
	if prev, ok := s.timers[key]; ok {
		prev.Stop()
	}
	s.timers[key] = time.AfterFunc(d, func() {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return
		}
		apply(s.state(id), false)
		delete(s.timers, key)
		fn := s.onChange
		s.mu.Unlock()
		s.notify(fn, id)
	})
	fn := s.onChange
	s.mu.Unlock()
	s.notify(fn, id)
}

func (s *Store) notify(fn func(string), id string) {
	if fn != nil {
		fn(id)
	}
}
