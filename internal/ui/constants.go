package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconLike     = "♡"
	IconLiked    = "♥"
	IconSave     = "🔖"
	IconComment  = "💬"
	IconShare    = "↗"
	IconDelete   = "🗑"
	IconCart     = "🛒"
	IconMuted    = "🔇"
	IconUnmuted  = "🔊"
	IconPlay     = "▶"
	IconPause    = "⏸"
	IconSettings = "⚙"
	IconFollow   = "+"
	IconClose    = "×"
	IconError    = "❌"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	CountLabelFormat   = "%d"
)

// Layout sizing (ReelRow / lists)
const (
	ActionLabelWidth  float32 = 56
	PartnerLabelWidth float32 = 160
	PriceLabelWidth   float32 = 90

	RowMinWidth  float32 = 360
	RowMinHeight float32 = 520
	RowDefaultH  float32 = 560
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 90
	ToastMargin   float32 = 20
	ToastAutoHide         = 3 * time.Second
)

// Comment sheet sizing
const (
	CommentSheetWidth  float32 = 420
	CommentSheetHeight float32 = 520
)

// Debounce durations
const (
	UIUpdateDebounce = 100 * time.Millisecond
)
