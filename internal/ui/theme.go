package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/reelbite/reelbite/internal/config"
)

// ReelTheme is a compact theme tuned for a dense vertical feed. The stored
// theme preference overrides the system variant; "system" passes the variant
// through untouched.
type ReelTheme struct {
	preference func() config.ThemePreference
}

// NewReelTheme creates the app theme. preference is read on every draw so a
// settings change applies without recreating the theme.
func NewReelTheme(preference func() config.ThemePreference) fyne.Theme {
	return &ReelTheme{preference: preference}
}

// Color returns theme colors
func (t *ReelTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	variant = t.variant(variant)

	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255} // Green for confirmations
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // Red for errors
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255} // Amber for sign-in prompts
	case theme.ColorNamePrimary:
		return color.RGBA{R: 255, G: 87, B: 34, A: 255} // Chili orange accent
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 12, G: 12, B: 12, A: 255} // Near black behind video
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *ReelTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ReelTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *ReelTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}

// variant resolves the effective variant from the stored preference.
func (t *ReelTheme) variant(system fyne.ThemeVariant) fyne.ThemeVariant {
	if t.preference == nil {
		return system
	}
	switch t.preference() {
	case config.ThemeLight:
		return theme.VariantLight
	case config.ThemeDark:
		return theme.VariantDark
	default:
		return system
	}
}
