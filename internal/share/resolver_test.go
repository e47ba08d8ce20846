package share

import (
	"errors"
	"sync"
	"testing"

	"github.com/reelbite/reelbite/internal/notify"
	"github.com/reelbite/reelbite/internal/overlay"
)

type fakeNative struct {
	err   error
	calls int
	url   string
}

func (f *fakeNative) Share(url, title string) error {
	f.calls++
	f.url = url
	return f.err
}

type fakeClipboard struct {
	content string
	calls   int
}

func (f *fakeClipboard) SetContent(content string) {
	f.content = content
	f.calls++
}

type noticeRecorder struct {
	mu      sync.Mutex
	notices []notify.Kind
}

func (r *noticeRecorder) Notify(message string, kind notify.Kind) {
	r.mu.Lock()
	r.notices = append(r.notices, kind)
	r.mu.Unlock()
}

func TestNativeShareWinsAndNoticesOnce(t *testing.T) {
	native := &fakeNative{}
	clip := &fakeClipboard{}
	rec := &noticeRecorder{}
	ov := overlay.NewStore()
	r := NewResolver(native, clip, func(string) { t.Error("manual dialog shown") }, ov, rec)

	r.ShareReel("r1", "Paneer Roll")
	if native.calls != 1 {
		t.Errorf("native share called %d times", native.calls)
	}
	if native.url != "https://reelbite.app/?reel=r1" {
		t.Errorf("shared url %q", native.url)
	}
	if clip.calls != 0 {
		t.Error("clipboard used although native share succeeded")
	}
	if len(rec.notices) != 1 || rec.notices[0] != notify.KindSuccess {
		t.Errorf("expected exactly one success notice, got %v", rec.notices)
	}
	if !ov.Get("r1").ShareFlash {
		t.Error("share flash not set")
	}
}

func TestCancelledShareStaysSilent(t *testing.T) {
	native := &fakeNative{err: ErrCancelled}
	clip := &fakeClipboard{}
	rec := &noticeRecorder{}
	r := NewResolver(native, clip, nil, overlay.NewStore(), rec)

	r.ShareReel("r1", "Paneer Roll")
	if clip.calls != 0 {
		t.Error("cancel fell through to the clipboard")
	}
	if len(rec.notices) != 0 {
		t.Errorf("cancel produced notices: %v", rec.notices)
	}
}

func TestUnsupportedNativeFallsBackToClipboard(t *testing.T) {
	native := &fakeNative{err: ErrUnsupported}
	clip := &fakeClipboard{}
	rec := &noticeRecorder{}
	r := NewResolver(native, clip, nil, overlay.NewStore(), rec)

	r.ShareReel("r2", "Dosa")
	if clip.content != "https://reelbite.app/?reel=r2" {
		t.Errorf("clipboard content %q", clip.content)
	}
	if len(rec.notices) != 1 || rec.notices[0] != notify.KindSuccess {
		t.Errorf("expected exactly one success notice, got %v", rec.notices)
	}
}

func TestFailedNativeAlsoFallsBackToClipboard(t *testing.T) {
	native := &fakeNative{err: errors.New("boom")}
	clip := &fakeClipboard{}
	rec := &noticeRecorder{}
	r := NewResolver(native, clip, nil, overlay.NewStore(), rec)

	r.ShareReel("r2", "Dosa")
	if clip.calls != 1 {
		t.Error("hard native failure should fall back to the clipboard")
	}
	if len(rec.notices) != 1 {
		t.Errorf("expected exactly one notice, got %v", rec.notices)
	}
}

func TestManualDialogIsLastResort(t *testing.T) {
	rec := &noticeRecorder{}
	var shown string
	ov := overlay.NewStore()
	r := NewResolver(nil, nil, func(url string) { shown = url }, ov, rec)

	r.ShareReel("r3", "Chaat")
	if shown != "https://reelbite.app/?reel=r3" {
		t.Errorf("manual dialog url %q", shown)
	}
	if len(rec.notices) != 1 || rec.notices[0] != notify.KindSuccess {
		t.Errorf("expected exactly one success notice on the manual path, got %v", rec.notices)
	}
	if !ov.Get("r3").ShareFlash {
		t.Error("share flash not set on manual path")
	}
}

func TestNothingAvailableNoticesError(t *testing.T) {
	rec := &noticeRecorder{}
	r := NewResolver(nil, nil, nil, overlay.NewStore(), rec)

	r.ShareReel("r4", "Thali")
	if len(rec.notices) != 1 || rec.notices[0] != notify.KindError {
		t.Errorf("expected one error notice, got %v", rec.notices)
	}
}
