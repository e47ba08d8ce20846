package ui

import (
	"context"
	"log"
	"net/url"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/reelbite/reelbite/internal/comments"
	"github.com/reelbite/reelbite/internal/config"
	"github.com/reelbite/reelbite/internal/feed"
	"github.com/reelbite/reelbite/internal/model"
	"github.com/reelbite/reelbite/internal/notify"
	"github.com/reelbite/reelbite/internal/offline"
	"github.com/reelbite/reelbite/internal/overlay"
	"github.com/reelbite/reelbite/internal/platform"
	"github.com/reelbite/reelbite/internal/playback"
	"github.com/reelbite/reelbite/internal/share"
)

// RootUI wires the feed, playback, comments, share and offline services into
// the main window.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization

	overlayStore *overlay.Store
	scheduler    *playback.Scheduler
	feedSvc      *feed.Service
	thread       *comments.Thread
	sheet        *CommentsSheet
	resolver     *share.Resolver
	offlineSvc   *offline.Service
	toaster      *Toaster

	feedView   *FeedView
	savedBadge *widget.Label
	cartBadge  *widget.Label

	overlayGate *updateGate
}

// NewRootUI creates and initializes the main UI. toaster is the same
// notifier the services were constructed with.
func NewRootUI(window fyne.Window, app fyne.App, feedSvc *feed.Service, thread *comments.Thread, overlayStore *overlay.Store, offlineSvc *offline.Service, settings *config.Settings, toaster *Toaster) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		overlayStore: overlayStore,
		feedSvc:      feedSvc,
		thread:       thread,
		offlineSvc:   offlineSvc,
		toaster:      toaster,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.scheduler = playback.NewScheduler(overlayStore, func(id string) {
		ui.feedView.ScrollToReel(id)
	})
	ui.feedView = NewFeedView(ui.scheduler, localization)
	ui.overlayGate = newUpdateGate(UIUpdateDebounce, func() {
		fyne.Do(func() {
			ui.feedView.RefreshStates(ui.overlayStore.Get)
		})
	})

	ui.sheet = NewCommentsSheet(thread, window, localization)
	ui.resolver = share.NewResolver(nil, app.Clipboard(), ui.showManualShare, overlayStore, ui.toaster)

	session := settings.Session()
	feedSvc.SetSession(session)
	thread.SetSession(session)

	overlayStore.SetChangeCallback(func(id string) {
		ui.onOverlayChange(id)
	})
	feedSvc.SetItemsChangedCallback(ui.onItemsChanged)
	offlineSvc.SetUpdateCallback(ui.onOfflineUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.savedBadge = widget.NewLabel(IconSave + " 0")
	ui.cartBadge = widget.NewLabel(IconCart + " 0")

	// The saved badge tracks the persistent saved-set size without the feed
	// pushing anything at it.
	savedCount := ui.settings.CountBinding(config.SetSaved)
	savedCount.AddListener(binding.NewDataListener(func() {
		n, err := savedCount.Get()
		if err != nil {
			return
		}
		fyne.Do(func() {
			ui.savedBadge.SetText(IconSave + " " + strconv.Itoa(n))
		})
	}))
	ui.refreshCartBadge()

	topBar := container.NewBorder(nil, nil,
		widget.NewLabelWithStyle(ui.localization.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(ui.savedBadge, ui.cartBadge, settingsBtn),
	)

	ui.feedView.SetCallbacks(ReelRowCallbacks{
		OnToggleLike:   ui.onToggleLike,
		OnToggleSave:   ui.onToggleSave,
		OnOpenComments: ui.onOpenComments,
		OnShare:        ui.onShare,
		OnDelete:       ui.onDelete,
		OnToggleFollow: ui.onToggleFollow,
		OnAddToCart:    ui.onAddToCart,
		OnVisitStore:   ui.onVisitStore,
		OnTapSurface:   ui.scheduler.TogglePause,
		OnToggleMute:   ui.scheduler.ToggleMute,
		OnToggleExpand: ui.onToggleExpand,
		OnSaveOffline:  ui.onSaveOffline,
		OnSwipeNext:    ui.onSwipeNext,
		OnSwipePrev:    ui.onSwipePrev,
	})

	content := container.NewBorder(topBar, nil, nil, nil, ui.feedView.Container())
	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// LoadFeed fetches the reel list in the background and renders it.
func (ui *RootUI) LoadFeed() {
	go func() {
		if err := ui.feedSvc.LoadFeed(context.Background()); err != nil {
			ui.toaster.Notify(ui.localization.GetText(KeyFeedLoadFailed), notify.KindError)
		}
	}()
}

// OpenDeepLink navigates to the reel a share link points at.
func (ui *RootUI) OpenDeepLink(raw string) {
	id, ok := platform.ParseReelURL(raw)
	if !ok {
		log.Printf("Ignoring malformed deep link: %s", raw)
		return
	}

	go func() {
		if _, err := ui.feedSvc.EnsureItem(context.Background(), id); err != nil {
			log.Printf("Deep link target %s unavailable: %v", id, err)
			ui.toaster.Notify(ui.localization.GetText(KeyFeedLoadFailed), notify.KindError)
			return
		}
		ui.scheduler.Focus(id)
	}()
}

// onItemsChanged re-renders the feed after the service's list moved.
func (ui *RootUI) onItemsChanged() {
	fyne.Do(func() {
		ui.feedView.SetItems(ui.feedSvc.Items(), ui.overlayStore.Get, ui.ownedByViewer)
	})
}

// onOverlayChange repaints overlay-driven row state, coalescing bursts.
func (ui *RootUI) onOverlayChange(id string) {
	ui.overlayGate.Trigger()
}

func (ui *RootUI) ownedByViewer(item *model.ReelItem) bool {
	return ui.settings.Session().Owns(item)
}

func (ui *RootUI) onToggleLike(reelID string) {
	go ui.feedSvc.ApplyToggle(context.Background(), reelID, model.ToggleLike)
}

func (ui *RootUI) onToggleSave(reelID string) {
	go ui.feedSvc.ApplyToggle(context.Background(), reelID, model.ToggleSave)
}

func (ui *RootUI) onOpenComments(reelID string) {
	ui.sheet.Show(reelID)
}

func (ui *RootUI) onShare(reelID, title string) {
	go ui.resolver.ShareReel(reelID, title)
}

func (ui *RootUI) onDelete(reelID string) {
	dialog.ShowConfirm(ui.localization.GetText(KeyAppTitle), "Delete this reel?", func(confirmed bool) {
		if !confirmed {
			return
		}
		go ui.feedSvc.Delete(context.Background(), reelID)
	}, ui.window)
}

func (ui *RootUI) onSwipeNext(reelID string) {
	ui.scrollToNeighbor(reelID, 1)
}

func (ui *RootUI) onSwipePrev(reelID string) {
	ui.scrollToNeighbor(reelID, -1)
}

// scrollToNeighbor centers the reel adjacent to the given one. The scroll
// path reports visibility, so playback hands over on its own.
func (ui *RootUI) scrollToNeighbor(reelID string, delta int) {
	items := ui.feedSvc.Items()
	for i, item := range items {
		if item.ID != reelID {
			continue
		}
		j := i + delta
		if j >= 0 && j < len(items) {
			ui.feedView.ScrollToReel(items[j].ID)
		}
		return
	}
}

func (ui *RootUI) onToggleFollow(reelID string) {
	ui.overlayStore.ToggleFollowing(reelID)
}

func (ui *RootUI) onToggleExpand(reelID string) {
	ui.overlayStore.ToggleExpanded(reelID)
}

func (ui *RootUI) onAddToCart(reelID string) {
	item := ui.feedSvc.Item(reelID)
	if item == nil {
		return
	}
	ui.settings.AddToCart(item)
	ui.overlayStore.FlashAddedToCart(reelID)
	ui.refreshCartBadge()
	ui.toaster.Notify(ui.localization.GetText(KeyAddedToCart), notify.KindSuccess)
}

func (ui *RootUI) onVisitStore(partnerID string) {
	// Store pages live on the web origin.
	link, err := url.Parse(platform.DeepLinkBase + "/store/" + partnerID)
	if err != nil {
		return
	}
	_ = ui.app.OpenURL(link)
}

func (ui *RootUI) onSaveOffline(reelID string) {
	item := ui.feedSvc.Item(reelID)
	if item == nil {
		return
	}
	if _, err := ui.offlineSvc.AddTask(item); err != nil {
		log.Printf("Offline save rejected for %s: %v", reelID, err)
	}
}

// onOfflineUpdate surfaces finished offline fetches as toasts.
func (ui *RootUI) onOfflineUpdate(task *model.OfflineTask) {
	switch task.Status {
	case model.OfflineStatusCompleted:
		ui.toaster.Notify(task.Title+" "+ui.localization.GetText(KeySaveOffline), notify.KindSuccess)
	case model.OfflineStatusError:
		ui.toaster.Notify(IconError+" "+task.Title, notify.KindError)
	}
}

// showManualShare is the last resort of the share chain: a dialog with the
// link and a copy button.
func (ui *RootUI) showManualShare(url string) {
	fyne.Do(func() {
		entry := widget.NewEntry()
		entry.SetText(url)

		copyBtn := widget.NewButton(ui.localization.GetText(KeyCopyLink), func() {
			ui.app.Clipboard().SetContent(url)
		})

		content := container.NewVBox(entry, copyBtn)
		dialog.ShowCustom(ui.localization.GetText(KeyShareLink), ui.localization.GetText(KeyCancel), content, ui.window)
	})
}

func (ui *RootUI) refreshCartBadge() {
	qty := model.CartQuantity(ui.settings.Cart())
	fyne.Do(func() {
		ui.cartBadge.SetText(IconCart + " " + strconv.Itoa(qty))
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	sd := NewSettingsDialog(ui.settings, ui.window, ui.localization)
	sd.SetCallbacks(
		func() {
			ui.localization.SetLanguage(ui.settings.GetLanguage())
			ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
			ui.toaster.Notify(ui.localization.GetText(KeySettings), notify.KindSuccess)
		},
		func() {
			ui.settings.ClearCart()
			ui.refreshCartBadge()
		},
		func() {
			ui.settings.ClearIDSet(config.SetSaved)
			ui.overlayStore.SetChangeCallback(nil)
			// Drop stale saved flags, then resubscribe.
			for _, item := range ui.feedSvc.Items() {
				ui.overlayStore.SetSaved(item.ID, false)
			}
			ui.overlayStore.SetChangeCallback(func(id string) { ui.onOverlayChange(id) })
			ui.onItemsChanged()
		},
		func() {
			ui.settings.ClearProfile()
			session := ui.settings.Session()
			ui.feedSvc.SetSession(session)
			ui.thread.SetSession(session)
			ui.toaster.Notify(ui.localization.GetText(KeySignOut), notify.KindInfo)
		},
	)
	sd.Show()
}

// Close releases playback resources. Call on window close.
func (ui *RootUI) Close() {
	ui.scheduler.Close()
	ui.overlayStore.Close()
}
