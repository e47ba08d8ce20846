package playback

import "errors"

// ErrAutoplayBlocked is returned by Player.Play when the platform refuses
// autoplay with sound. The scheduler reacts by muting and retrying once; any
// other play error is swallowed.
var ErrAutoplayBlocked = errors.New("autoplay with sound blocked")

// Player is the opaque media element the scheduler drives. Play and Pause
// are fire-and-forget from the scheduler's point of view.
type Player interface {
	Play() error
	Pause()
	SetMuted(muted bool)
}

// Flags is the slice of overlay state the scheduler reads and writes:
// the user's manual pause, and the mute flag recorded when the autoplay
// fallback engages.
type Flags interface {
	ManuallyPaused(id string) bool
	SetManuallyPaused(id string, paused bool)
	Muted(id string) bool
	SetMuted(id string, muted bool)
}
