package ui

import (
	"context"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/reelbite/reelbite/internal/comments"
)

// CommentsSheet is the comment panel for one reel. It renders the thread
// owned by comments.Thread and stays registered as its change callback while
// open.
type CommentsSheet struct {
	thread       *comments.Thread
	window       fyne.Window
	localization *Localization

	dialog *dialog.CustomDialog

	// UI components
	list  *widget.List
	entry *widget.Entry
}

// NewCommentsSheet creates the sheet over the given thread.
func NewCommentsSheet(thread *comments.Thread, window fyne.Window, localization *Localization) *CommentsSheet {
	cs := &CommentsSheet{
		thread:       thread,
		window:       window,
		localization: localization,
	}
	cs.createUI()
	return cs
}

// Show opens the sheet for a reel and loads its thread in the background.
func (cs *CommentsSheet) Show(reelID string) {
	cs.thread.SetChangedCallback(func() {
		fyne.Do(func() {
			cs.list.Refresh()
		})
	})

	go cs.thread.Open(context.Background(), reelID)
	cs.dialog.Show()
}

// createUI creates the sheet UI
func (cs *CommentsSheet) createUI() {
	cs.list = widget.NewList(
		func() int {
			return len(cs.thread.Comments())
		},
		func() fyne.CanvasObject {
			return cs.createCommentItem()
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			cs.updateCommentItem(id, obj)
		},
	)

	cs.entry = widget.NewEntry()
	cs.entry.SetPlaceHolder(cs.localization.GetText(KeyAddComment))
	cs.entry.OnSubmitted = func(string) {
		cs.onPost()
	}

	postBtn := widget.NewButton(cs.localization.GetText(KeyPost), cs.onPost)
	postBtn.Importance = widget.HighImportance

	inputRow := container.NewBorder(nil, nil, nil, postBtn, cs.entry)
	content := container.NewBorder(nil, inputRow, nil, nil, cs.list)

	cs.dialog = dialog.NewCustom(
		cs.localization.GetText(KeyComments),
		cs.localization.GetText(KeyCancel),
		content,
		cs.window,
	)
	cs.dialog.Resize(fyne.NewSize(CommentSheetWidth, CommentSheetHeight))
}

// onPost submits the entry text optimistically
func (cs *CommentsSheet) onPost() {
	text := cs.entry.Text
	if text == "" {
		return
	}
	cs.entry.SetText("")

	go func() {
		_ = cs.thread.Submit(context.Background(), text)
	}()
}

// createCommentItem builds the template row for the comment list
func (cs *CommentsSheet) createCommentItem() fyne.CanvasObject {
	author := widget.NewLabel("")
	author.TextStyle = fyne.TextStyle{Bold: true}
	when := widget.NewLabel("")
	when.Importance = widget.LowImportance
	text := widget.NewLabel("")
	text.Wrapping = fyne.TextWrapWord
	likeBtn := widget.NewButton(IconLike+" 0", nil)
	likeBtn.Importance = widget.LowImportance

	header := container.NewHBox(author, when)
	return container.NewBorder(header, nil, nil, likeBtn, text)
}

// updateCommentItem fills one row with comment data
func (cs *CommentsSheet) updateCommentItem(id widget.ListItemID, obj fyne.CanvasObject) {
	list := cs.thread.Comments()
	if id >= len(list) {
		return
	}
	comment := list[id]

	border, ok := obj.(*fyne.Container)
	if !ok || len(border.Objects) < 3 {
		return
	}

	text, _ := border.Objects[0].(*widget.Label)
	header, _ := border.Objects[1].(*fyne.Container)
	likeBtn, _ := border.Objects[2].(*widget.Button)
	if text == nil || header == nil || likeBtn == nil || len(header.Objects) < 2 {
		return
	}
	author, _ := header.Objects[0].(*widget.Label)
	when, _ := header.Objects[1].(*widget.Label)
	if author == nil || when == nil {
		return
	}

	author.SetText(comment.AuthorName)
	text.SetText(comment.Text)

	if comment.IsPending() {
		when.SetText(DashPlaceholder)
		likeBtn.Disable()
	} else {
		when.SetText(comment.RelativeTime(time.Now()))
		likeBtn.Enable()
	}

	icon := IconLike
	if comment.Liked {
		icon = IconLiked
	}
	likeBtn.SetText(icon + " " + strconv.Itoa(comment.LikeCount))

	commentID := comment.ID
	likeBtn.OnTapped = func() {
		go cs.thread.ToggleLike(context.Background(), commentID)
	}
}
