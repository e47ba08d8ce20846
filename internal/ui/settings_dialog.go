package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/reelbite/reelbite/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog

	// UI components
	themeSelect    *widget.Select
	languageSelect *widget.Select

	// Callbacks
	onSaved        func()
	onClearCart    func()
	onClearSaved   func()
	onClearProfile func()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
	}

	sd.createUI()
	return sd
}

// SetCallbacks sets the dialog action callbacks.
func (sd *SettingsDialog) SetCallbacks(onSaved, onClearCart, onClearSaved, onClearProfile func()) {
	sd.onSaved = onSaved
	sd.onClearCart = onClearCart
	sd.onClearSaved = onClearSaved
	sd.onClearProfile = onClearProfile
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Theme preference selection
	themeOptions := []string{}
	for _, pref := range sd.settings.GetThemeOptions() {
		themeOptions = append(themeOptions, string(pref))
	}
	sd.themeSelect = widget.NewSelect(themeOptions, nil)

	// Language selection
	languageOptions := []string{"system"}
	for code := range sd.localization.GetAvailableLanguages() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	clearCartBtn := widget.NewButton(sd.localization.GetText(KeyClearCart), func() {
		if sd.onClearCart != nil {
			sd.onClearCart()
		}
	})
	clearSavedBtn := widget.NewButton(sd.localization.GetText(KeyClearSaved), func() {
		if sd.onClearSaved != nil {
			sd.onClearSaved()
		}
	})
	signOutBtn := widget.NewButton(sd.localization.GetText(KeySignOut), func() {
		if sd.onClearProfile != nil {
			sd.onClearProfile()
		}
	})
	signOutBtn.Importance = widget.DangerImportance

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyTheme)+":"),
		sd.themeSelect,

		widget.NewLabel("Language:"),
		sd.languageSelect,

		widget.NewSeparator(),
		clearCartBtn,
		clearSavedBtn,
		signOutBtn,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(380, 340))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.themeSelect.SetSelected(string(sd.settings.GetThemePreference()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.themeSelect.Selected != "" {
		sd.settings.SetThemePreference(config.ThemePreference(sd.themeSelect.Selected))
	}
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
