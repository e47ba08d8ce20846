package model

import "errors"

// Failure taxonomy for mutations. Transport implementations map HTTP
// 401/403-equivalent responses to ErrUnauthorized; ErrForbidden only ever
// originates from local ownership checks and never reaches the network.
var (
	ErrUnauthorized = errors.New("session invalid or expired")
	ErrForbidden    = errors.New("not the owner of this item")
	ErrValidation   = errors.New("validation failed")
)

// ToggleKind selects which social toggle a mutation applies.
type ToggleKind string

const (
	ToggleLike ToggleKind = "like"
	ToggleSave ToggleKind = "save"
)

// String returns the string representation of ToggleKind.
func (k ToggleKind) String() string {
	return string(k)
}

// ToggleResult is the descriptor every toggle resolves with. The engine never
// propagates an error to its caller; UI branches on these fields instead.
type ToggleResult struct {
	// OK means the server confirmed the mutation.
	OK bool

	// Active is the server-confirmed boolean after reconciliation (liked or
	// saved, depending on the kind). Only meaningful when OK.
	Active bool

	// Count is the server-confirmed aggregate counter. Only meaningful when OK.
	Count int

	// Unauthorized signals the caller should redirect to sign-in.
	Unauthorized bool

	// Skipped means a toggle of the same kind was already in flight for this
	// item and the call was ignored without side effects.
	Skipped bool
}

// DeleteResult is the descriptor a delete resolves with.
type DeleteResult struct {
	OK bool

	// Forbidden means the local ownership guard rejected the call before any
	// network activity.
	Forbidden bool

	Unauthorized bool
}
