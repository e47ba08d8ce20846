// Package notify defines the notification sink the core talks to instead of
// any ambient, window-level toaster. Implementations are injected at
// construction; calls are fire-and-forget.
package notify

// Kind classifies a transient notice.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notifier surfaces a transient notice to the user. Implementations must not
// block and must tolerate calls from any goroutine.
type Notifier interface {
	Notify(message string, kind Kind)
}

// Func adapts a plain function to the Notifier interface.
type Func func(message string, kind Kind)

// Notify calls f.
func (f Func) Notify(message string, kind Kind) {
	f(message, kind)
}

// Discard is a Notifier that drops every notice. Useful in tests and for
// headless runs.
var Discard Notifier = Func(func(string, Kind) {})
