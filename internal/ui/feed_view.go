package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/reelbite/reelbite/internal/model"
	"github.com/reelbite/reelbite/internal/overlay"
	"github.com/reelbite/reelbite/internal/playback"
)

// FeedView renders the vertical reel list and feeds scroll geometry to the
// playback scheduler. Each row keeps its own media surface; the view reports
// how much of every surface sits inside the viewport after each scroll.
type FeedView struct {
	scroll       *container.Scroll
	box          *fyne.Container
	emptyLabel   *widget.Label
	rows         map[string]*ReelRow
	order        []string
	scheduler    *playback.Scheduler
	localization *Localization
	callbacks    ReelRowCallbacks
}

// NewFeedView creates an empty feed view bound to the scheduler.
func NewFeedView(scheduler *playback.Scheduler, localization *Localization) *FeedView {
	fv := &FeedView{
		box:          container.NewVBox(),
		rows:         make(map[string]*ReelRow),
		scheduler:    scheduler,
		localization: localization,
	}
	fv.emptyLabel = widget.NewLabel(localization.GetText(KeyFeedEmpty))
	fv.emptyLabel.Alignment = fyne.TextAlignCenter
	fv.box.Add(fv.emptyLabel)

	fv.scroll = container.NewVScroll(fv.box)
	fv.scroll.OnScrolled = func(fyne.Position) {
		fv.reportVisibility()
	}
	return fv
}

// Container returns the view's root canvas object.
func (fv *FeedView) Container() fyne.CanvasObject {
	return fv.scroll
}

// SetCallbacks sets the row action callbacks used for all rows.
func (fv *FeedView) SetCallbacks(callbacks ReelRowCallbacks) {
	fv.callbacks = callbacks
}

// SetItems replaces the rendered reels. Rows for removed reels are
// unregistered from the scheduler; new rows register their surfaces.
func (fv *FeedView) SetItems(items []*model.ReelItem, stateFor func(id string) overlay.State, ownedFor func(item *model.ReelItem) bool) {
	keep := make(map[string]bool, len(items))
	for _, item := range items {
		keep[item.ID] = true
	}
	for id, row := range fv.rows {
		if !keep[id] {
			fv.scheduler.Unregister(id)
			fv.box.Remove(row)
			delete(fv.rows, id)
		}
	}

	fv.box.RemoveAll()
	fv.order = fv.order[:0]

	if len(items) == 0 {
		fv.box.Add(fv.emptyLabel)
		fv.box.Refresh()
		return
	}

	for _, item := range items {
		row, exists := fv.rows[item.ID]
		if !exists {
			row = NewReelRow(item, fv.localization)
			row.SetCallbacks(fv.callbacks)
			fv.rows[item.ID] = row
			fv.scheduler.Register(item.ID, row.Surface())
		}
		row.UpdateReel(item, stateFor(item.ID), ownedFor(item))
		fv.box.Add(row)
		fv.order = append(fv.order, item.ID)
	}
	fv.box.Refresh()
	fv.reportVisibility()
}

// RefreshStates pushes current overlay state into every visible row.
func (fv *FeedView) RefreshStates(stateFor func(id string) overlay.State) {
	for id, row := range fv.rows {
		row.UpdateState(stateFor(id))
	}
}

// ScrollToReel centers the given reel in the viewport. The scheduler uses
// this as its scroll hook for deep-link focus.
func (fv *FeedView) ScrollToReel(id string) {
	fyne.Do(func() {
		var y float32
		for _, rowID := range fv.order {
			row := fv.rows[rowID]
			if rowID == id {
				target := y - (fv.scroll.Size().Height-row.Size().Height)/2
				if target < 0 {
					target = 0
				}
				fv.scroll.Offset = fyne.NewPos(0, target)
				fv.scroll.Refresh()
				fv.reportVisibility()
				return
			}
			y += row.Size().Height
		}
	})
}

// reportVisibility reports every row's visible fraction to the scheduler.
func (fv *FeedView) reportVisibility() {
	viewTop := fv.scroll.Offset.Y
	viewBottom := viewTop + fv.scroll.Size().Height

	var y float32
	for _, id := range fv.order {
		row := fv.rows[id]
		h := row.Size().Height
		if h <= 0 {
			h = RowDefaultH
		}
		top, bottom := y, y+h
		y = bottom

		visible := minf(bottom, viewBottom) - maxf(top, viewTop)
		if visible < 0 {
			visible = 0
		}
		fv.scheduler.Report(id, float64(visible/h))
	}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
