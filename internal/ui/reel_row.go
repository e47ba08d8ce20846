package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/reelbite/reelbite/internal/model"
	"github.com/reelbite/reelbite/internal/overlay"
)

// ReelRowCallbacks bundles the actions a row can trigger. The row never talks
// to services directly; RootUI owns the wiring.
type ReelRowCallbacks struct {
	OnToggleLike   func(reelID string)
	OnToggleSave   func(reelID string)
	OnOpenComments func(reelID string)
	OnShare        func(reelID, title string)
	OnDelete       func(reelID string)
	OnToggleFollow func(reelID string)
	OnAddToCart    func(reelID string)
	OnVisitStore   func(partnerID string)
	OnTapSurface   func(reelID string)
	OnToggleMute   func(reelID string)
	OnToggleExpand func(reelID string)
	OnSaveOffline  func(reelID string)
	OnSwipeNext    func(reelID string)
	OnSwipePrev    func(reelID string)
}

// ReelRow renders one reel: the media surface plus the overlay of partner
// info, description, price and the action rail.
type ReelRow struct {
	widget.BaseWidget

	reel         *model.ReelItem
	state        overlay.State
	owned        bool
	localization *Localization
	callbacks    ReelRowCallbacks

	surface *MediaSurface

	// UI components
	partnerLabel *widget.Label
	titleLabel   *widget.Label
	descLabel    *widget.Label
	priceLabel   *widget.Label
	expandBtn    *widget.Button

	likeBtn    *widget.Button
	saveBtn    *widget.Button
	commentBtn *widget.Button
	shareBtn   *widget.Button
	deleteBtn  *widget.Button
	followBtn  *widget.Button
	cartBtn    *widget.Button
	muteBtn    *widget.Button
	storeBtn   *widget.Button
	offlineBtn *widget.Button

	likeCountLabel *widget.Label
	saveCountLabel *widget.Label
	flashLabel     *widget.Label
}

// NewReelRow creates a new reel row widget
func NewReelRow(reel *model.ReelItem, localization *Localization) *ReelRow {
	if reel == nil {
		reel = &model.ReelItem{ID: "placeholder", Title: "..."}
	}

	rr := &ReelRow{
		reel:         reel,
		localization: localization,
	}
	rr.ExtendBaseWidget(rr)
	rr.createUI()
	rr.updateFromReel()
	return rr
}

// SetCallbacks sets the action callbacks
func (rr *ReelRow) SetCallbacks(callbacks ReelRowCallbacks) {
	rr.callbacks = callbacks
}

// Surface returns the row's media surface for scheduler registration.
func (rr *ReelRow) Surface() *MediaSurface {
	return rr.surface
}

// UpdateReel updates the row with new reel data and overlay state.
func (rr *ReelRow) UpdateReel(reel *model.ReelItem, state overlay.State, owned bool) {
	if reel == nil {
		return
	}
	rr.reel = reel
	rr.state = state
	rr.owned = owned
	rr.surface.SetMedia(reel.ID, reel.MediaURL)
	rr.updateFromReel()
	rr.Refresh()
}

// UpdateState refreshes only the overlay-driven parts of the row.
func (rr *ReelRow) UpdateState(state overlay.State) {
	rr.state = state
	rr.updateFromReel()
	rr.Refresh()
}

// createUI creates the UI components
func (rr *ReelRow) createUI() {
	rr.surface = NewMediaSurface(rr.reel.ID, rr.reel.MediaURL)
	rr.surface.SetGestureHandler(NewGestureHandler(rr.onGesture))

	rr.partnerLabel = widget.NewLabel("")
	rr.partnerLabel.TextStyle = fyne.TextStyle{Bold: true}
	rr.partnerLabel.Truncation = fyne.TextTruncateEllipsis

	rr.titleLabel = widget.NewLabel("")
	rr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	rr.titleLabel.Truncation = fyne.TextTruncateEllipsis

	rr.descLabel = widget.NewLabel("")
	rr.descLabel.Wrapping = fyne.TextWrapWord

	rr.priceLabel = widget.NewLabel("")
	rr.priceLabel.TextStyle = fyne.TextStyle{Monospace: true}

	rr.expandBtn = widget.NewButton(rr.localization.GetText(KeyMore), func() {
		if rr.callbacks.OnToggleExpand != nil {
			rr.callbacks.OnToggleExpand(rr.reel.ID)
		}
	})
	rr.expandBtn.Importance = widget.LowImportance

	rr.likeBtn = widget.NewButton(IconLike, func() {
		if rr.callbacks.OnToggleLike != nil {
			rr.callbacks.OnToggleLike(rr.reel.ID)
		}
	})
	rr.saveBtn = widget.NewButton(IconSave, func() {
		if rr.callbacks.OnToggleSave != nil {
			rr.callbacks.OnToggleSave(rr.reel.ID)
		}
	})
	rr.commentBtn = widget.NewButton(IconComment, func() {
		if rr.callbacks.OnOpenComments != nil {
			rr.callbacks.OnOpenComments(rr.reel.ID)
		}
	})
	rr.shareBtn = widget.NewButton(IconShare, func() {
		if rr.callbacks.OnShare != nil {
			rr.callbacks.OnShare(rr.reel.ID, rr.reel.DisplayTitle())
		}
	})
	rr.deleteBtn = widget.NewButton(IconDelete, func() {
		if rr.callbacks.OnDelete != nil {
			rr.callbacks.OnDelete(rr.reel.ID)
		}
	})
	rr.deleteBtn.Importance = widget.DangerImportance

	rr.followBtn = widget.NewButton(IconFollow, func() {
		if rr.callbacks.OnToggleFollow != nil {
			rr.callbacks.OnToggleFollow(rr.reel.ID)
		}
	})
	rr.followBtn.Importance = widget.LowImportance

	rr.cartBtn = widget.NewButton(IconCart+" "+rr.localization.GetText(KeyAddToCart), func() {
		if rr.callbacks.OnAddToCart != nil {
			rr.callbacks.OnAddToCart(rr.reel.ID)
		}
	})
	rr.cartBtn.Importance = widget.HighImportance

	rr.muteBtn = widget.NewButton(IconUnmuted, func() {
		if rr.callbacks.OnToggleMute != nil {
			rr.callbacks.OnToggleMute(rr.reel.ID)
		}
	})
	rr.muteBtn.Importance = widget.LowImportance

	rr.storeBtn = widget.NewButton(rr.localization.GetText(KeyVisitStore), func() {
		if rr.callbacks.OnVisitStore != nil {
			rr.callbacks.OnVisitStore(rr.reel.Partner.ID)
		}
	})
	rr.storeBtn.Importance = widget.LowImportance

	rr.offlineBtn = widget.NewButton(rr.localization.GetText(KeySaveOffline), func() {
		if rr.callbacks.OnSaveOffline != nil {
			rr.callbacks.OnSaveOffline(rr.reel.ID)
		}
	})
	rr.offlineBtn.Importance = widget.LowImportance

	rr.likeCountLabel = widget.NewLabel("0")
	rr.likeCountLabel.Alignment = fyne.TextAlignCenter
	rr.saveCountLabel = widget.NewLabel("0")
	rr.saveCountLabel.Alignment = fyne.TextAlignCenter

	rr.flashLabel = widget.NewLabel("")
	rr.flashLabel.Alignment = fyne.TextAlignCenter
	rr.flashLabel.Importance = widget.SuccessImportance
	rr.flashLabel.Hide()
}

// updateFromReel updates UI components based on reel and overlay state
func (rr *ReelRow) updateFromReel() {
	rr.partnerLabel.SetText(rr.reel.Partner.DisplayName)
	rr.titleLabel.SetText(rr.reel.DisplayTitle())
	rr.priceLabel.SetText(model.FormatPrice(rr.reel.Price))

	desc, truncatable := rr.reel.DescriptionPreview(rr.state.Expanded)
	rr.descLabel.SetText(desc)
	if truncatable {
		if rr.state.Expanded {
			rr.expandBtn.SetText(rr.localization.GetText(KeyLess))
		} else {
			rr.expandBtn.SetText(rr.localization.GetText(KeyMore))
		}
		rr.expandBtn.Show()
	} else {
		rr.expandBtn.Hide()
	}

	if rr.state.Liked {
		rr.likeBtn.SetText(IconLiked)
		rr.likeBtn.Importance = widget.DangerImportance
	} else {
		rr.likeBtn.SetText(IconLike)
		rr.likeBtn.Importance = widget.MediumImportance
	}
	rr.likeCountLabel.SetText(fmt.Sprintf(CountLabelFormat, rr.reel.LikeCount))

	if rr.state.Saved {
		rr.saveBtn.Importance = widget.HighImportance
	} else {
		rr.saveBtn.Importance = widget.MediumImportance
	}
	rr.saveCountLabel.SetText(fmt.Sprintf(CountLabelFormat, rr.reel.SavesCount))

	if rr.state.Following {
		rr.followBtn.SetText("✓")
	} else {
		rr.followBtn.SetText(IconFollow)
	}

	if rr.state.Muted {
		rr.muteBtn.SetText(IconMuted)
	} else {
		rr.muteBtn.SetText(IconUnmuted)
	}

	if rr.owned {
		rr.deleteBtn.Show()
	} else {
		rr.deleteBtn.Hide()
	}

	switch {
	case rr.state.AddedToCart:
		rr.flashLabel.SetText(rr.localization.GetText(KeyAddedToCart))
		rr.flashLabel.Show()
	case rr.state.ShareFlash:
		rr.flashLabel.SetText(rr.localization.GetText(KeyShareLink))
		rr.flashLabel.Show()
	default:
		rr.flashLabel.Hide()
	}
}

// onGesture maps touch gestures on the media surface onto row actions.
func (rr *ReelRow) onGesture(gesture GestureType) {
	switch gesture {
	case GestureTap:
		if rr.callbacks.OnTapSurface != nil {
			rr.callbacks.OnTapSurface(rr.reel.ID)
		}
	case GestureLongPress:
		if rr.callbacks.OnToggleMute != nil {
			rr.callbacks.OnToggleMute(rr.reel.ID)
		}
	case GestureSwipeUp:
		if rr.callbacks.OnSwipeNext != nil {
			rr.callbacks.OnSwipeNext(rr.reel.ID)
		}
	case GestureSwipeDown:
		if rr.callbacks.OnSwipePrev != nil {
			rr.callbacks.OnSwipePrev(rr.reel.ID)
		}
	}
}

// Tapped toggles manual pause on the media surface area.
func (rr *ReelRow) Tapped(_ *fyne.PointEvent) {
	if rr.callbacks.OnTapSurface != nil {
		rr.callbacks.OnTapSurface(rr.reel.ID)
	}
}

// CreateRenderer creates the widget renderer
func (rr *ReelRow) CreateRenderer() fyne.WidgetRenderer {
	actionRail := container.NewVBox(
		rr.likeBtn, rr.likeCountLabel,
		rr.saveBtn, rr.saveCountLabel,
		rr.commentBtn,
		rr.shareBtn,
		rr.muteBtn,
		rr.offlineBtn,
		rr.deleteBtn,
	)

	partnerRow := container.NewHBox(rr.partnerLabel, rr.followBtn, rr.storeBtn)
	infoPanel := container.NewVBox(
		partnerRow,
		rr.titleLabel,
		container.NewHBox(rr.descLabel, rr.expandBtn),
		container.NewHBox(rr.priceLabel, rr.cartBtn),
		rr.flashLabel,
	)

	content := container.NewBorder(nil, infoPanel, nil, actionRail, rr.surface)
	return widget.NewSimpleRenderer(content)
}

// MinSize keeps rows tall enough to behave like a full-height reel card.
func (rr *ReelRow) MinSize() fyne.Size {
	min := rr.BaseWidget.MinSize()
	if min.Width < RowMinWidth {
		min.Width = RowMinWidth
	}
	if min.Height < RowMinHeight {
		min.Height = RowMinHeight
	}
	return min
}
