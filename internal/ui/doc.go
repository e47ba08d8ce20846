// Package ui contains the Fyne-based user interface for the application. It
// wires gestures and buttons to the feed, playback, comment and share
// services and renders the vertical reel list, the comment sheet, toasts,
// and settings. All UI strings are localized via Localization.
package ui
