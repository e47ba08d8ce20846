// Package share resolves the best available way to hand a reel link to the
// user: the host share sheet when there is one, the clipboard otherwise, and
// a manual link dialog as the last resort. Whichever step lands, the user
// sees exactly one confirmation.
package share

import (
	"errors"
	"log"

	"github.com/reelbite/reelbite/internal/notify"
	"github.com/reelbite/reelbite/internal/overlay"
	"github.com/reelbite/reelbite/internal/platform"
)

// Sentinel results a NativeSharer can report.
var (
	// ErrUnsupported means the host has no share sheet; the resolver moves
	// on to the next mechanism.
	ErrUnsupported = errors.New("native sharing unsupported")

	// ErrCancelled means the user dismissed the share sheet. The chain stops
	// silently; cancelling is not a failure.
	ErrCancelled = errors.New("share cancelled")
)

// NativeSharer hands a URL to the host share sheet.
type NativeSharer interface {
	Share(url, title string) error
}

// Clipboard is the subset of the host clipboard the resolver needs.
type Clipboard interface {
	SetContent(content string)
}

// ManualPresenter shows the link for the user to copy by hand.
type ManualPresenter func(url string)

// Resolver runs the share chain for reel links.
type Resolver struct {
	native    NativeSharer
	clipboard Clipboard
	manual    ManualPresenter
	overlay   *overlay.Store
	notifier  notify.Notifier
}

// NewResolver creates a share resolver. native and clipboard may be nil when
// the host lacks them; manual should only be nil in headless tests.
func NewResolver(native NativeSharer, clipboard Clipboard, manual ManualPresenter, ov *overlay.Store, notifier notify.Notifier) *Resolver {
	return &Resolver{
		native:    native,
		clipboard: clipboard,
		manual:    manual,
		overlay:   ov,
		notifier:  notifier,
	}
}

// ShareReel shares the canonical link for a reel. Every step that lands
// raises exactly one success notice plus the share flash; a cancelled share
// sheet produces nothing.
func (r *Resolver) ShareReel(id, title string) {
	url := platform.BuildReelURL(id)

	if r.native != nil {
		err := r.native.Share(url, title)
		switch {
		case err == nil:
			r.succeed(id, "Shared")
			return
		case errors.Is(err, ErrCancelled):
			return
		case errors.Is(err, ErrUnsupported):
			// fall through to the clipboard
		default:
			log.Printf("share: native share failed: %v", err)
		}
	}

	if r.clipboard != nil {
		r.clipboard.SetContent(url)
		r.succeed(id, "Link copied")
		return
	}

	if r.manual != nil {
		r.manual(url)
		r.succeed(id, "Link ready to copy")
		return
	}

	r.notifier.Notify("Sharing is not available here", notify.KindError)
}

func (r *Resolver) succeed(id, message string) {
	r.notifier.Notify(message, notify.KindSuccess)
	r.overlay.FlashShare(id)
}
