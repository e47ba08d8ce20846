package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/reelbite/reelbite/internal/notify"
)

// Toaster shows transient in-app notices in the window's top-right corner.
// It implements notify.Notifier so the services stay unaware of Fyne.
type Toaster struct {
	window fyne.Window
}

// NewToaster creates a toaster bound to the window.
func NewToaster(window fyne.Window) *Toaster {
	return &Toaster{window: window}
}

// Notify shows one auto-hiding toast. Safe to call from any goroutine.
func (t *Toaster) Notify(message string, kind notify.Kind) {
	fyne.Do(func() {
		t.show(message, kind)
	})
}

func (t *Toaster) show(message string, kind notify.Kind) {
	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord

	switch kind {
	case notify.KindSuccess:
		label.Importance = widget.SuccessImportance
	case notify.KindWarning:
		label.Importance = widget.WarningImportance
	case notify.KindError:
		label.Importance = widget.DangerImportance
	default:
		label.Importance = widget.MediumImportance
	}

	var popup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if popup != nil {
			popup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewBorder(nil, nil, nil, closeBtn, label)
	popup = widget.NewPopUp(content, t.window.Canvas())

	canvasSize := t.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	popup.Resize(toastSize)
	popup.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
	popup.Show()

	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(func() {
			popup.Hide()
		})
	}()
}
