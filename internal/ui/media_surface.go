package ui

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// MediaSurface is the playback area of one reel row. It implements
// playback.Player; the scheduler drives it without knowing it is a widget.
// Playback state changes may arrive from any goroutine, so all canvas work
// goes through fyne.Do.
type MediaSurface struct {
	widget.BaseWidget

	mu       sync.Mutex
	reelID   string
	mediaURL string
	playing  bool
	muted    bool

	backdrop  *canvas.Rectangle
	stateIcon *widget.Label
	muteIcon  *widget.Label

	gestures *GestureHandler
}

// NewMediaSurface creates the playback surface for one reel.
func NewMediaSurface(reelID, mediaURL string) *MediaSurface {
	ms := &MediaSurface{
		reelID:   reelID,
		mediaURL: mediaURL,
	}
	ms.backdrop = canvas.NewRectangle(color.RGBA{R: 20, G: 20, B: 20, A: 255})
	ms.stateIcon = widget.NewLabel(IconPlay)
	ms.stateIcon.Alignment = fyne.TextAlignCenter
	ms.muteIcon = widget.NewLabel(IconUnmuted)
	ms.muteIcon.Alignment = fyne.TextAlignTrailing
	ms.ExtendBaseWidget(ms)
	return ms
}

// SetMedia repoints the surface at another reel, pausing whatever played.
func (ms *MediaSurface) SetMedia(reelID, mediaURL string) {
	ms.mu.Lock()
	ms.reelID = reelID
	ms.mediaURL = mediaURL
	ms.playing = false
	ms.mu.Unlock()
	ms.refreshState()
}

// ReelID returns the reel currently bound to the surface.
func (ms *MediaSurface) ReelID() string {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.reelID
}

// Play starts playback.
func (ms *MediaSurface) Play() error {
	ms.mu.Lock()
	ms.playing = true
	ms.mu.Unlock()
	ms.refreshState()
	return nil
}

// Pause halts playback.
func (ms *MediaSurface) Pause() {
	ms.mu.Lock()
	ms.playing = false
	ms.mu.Unlock()
	ms.refreshState()
}

// SetMuted sets the audio state.
func (ms *MediaSurface) SetMuted(muted bool) {
	ms.mu.Lock()
	ms.muted = muted
	ms.mu.Unlock()
	ms.refreshState()
}

// Playing reports whether the surface is currently playing.
func (ms *MediaSurface) Playing() bool {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.playing
}

func (ms *MediaSurface) refreshState() {
	fyne.Do(func() {
		ms.mu.Lock()
		playing, muted := ms.playing, ms.muted
		ms.mu.Unlock()

		if playing {
			ms.stateIcon.SetText("")
		} else {
			ms.stateIcon.SetText(IconPlay)
		}
		if muted {
			ms.muteIcon.SetText(IconMuted)
		} else {
			ms.muteIcon.SetText(IconUnmuted)
		}
		ms.Refresh()
	})
}

// SetGestureHandler attaches the touch gesture recognizer used on mobile.
func (ms *MediaSurface) SetGestureHandler(gh *GestureHandler) {
	ms.gestures = gh
}

// TouchDown implements mobile.Touchable.
func (ms *MediaSurface) TouchDown(event *mobile.TouchEvent) {
	if ms.gestures != nil {
		ms.gestures.TouchDown(event)
	}
}

// TouchUp implements mobile.Touchable.
func (ms *MediaSurface) TouchUp(event *mobile.TouchEvent) {
	if ms.gestures != nil {
		ms.gestures.TouchUp(event)
	}
}

// TouchCancel implements mobile.Touchable.
func (ms *MediaSurface) TouchCancel(event *mobile.TouchEvent) {
	if ms.gestures != nil {
		ms.gestures.TouchCancel(event)
	}
}

// CreateRenderer creates the widget renderer
func (ms *MediaSurface) CreateRenderer() fyne.WidgetRenderer {
	overlay := container.NewBorder(
		container.NewBorder(nil, nil, nil, ms.muteIcon),
		nil, nil, nil,
		container.NewCenter(ms.stateIcon),
	)
	return widget.NewSimpleRenderer(container.NewStack(ms.backdrop, overlay))
}
