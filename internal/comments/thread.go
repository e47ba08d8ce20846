// Package comments manages the comment sheet for one reel at a time: loading
// the thread, optimistic submits with a temporary placeholder entry, and
// optimistic per-comment likes. Comment state is never written to the
// persistent cache; closing the sheet and reopening reloads from the server.
package comments

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/reelbite/reelbite/internal/model"
	"github.com/reelbite/reelbite/internal/notify"
)

// API is the transport surface the thread depends on.
type API interface {
	FetchComments(ctx context.Context, itemID string) ([]*model.Comment, error)
	PostComment(ctx context.Context, itemID, text string) (*model.Comment, error)
	PostCommentLike(ctx context.Context, commentID string) error
}

// Thread holds the comment list for the currently open reel.
type Thread struct {
	api      API
	notifier notify.Notifier

	mutex    sync.Mutex
	itemID   string
	comments []*model.Comment
	session  model.Session

	onChanged func()
}

// NewThread creates an empty comment thread.
func NewThread(api API, notifier notify.Notifier) *Thread {
	return &Thread{api: api, notifier: notifier}
}

// SetChangedCallback sets the function invoked after the comment list moves.
func (t *Thread) SetChangedCallback(fn func()) {
	t.mutex.Lock()
	t.onChanged = fn
	t.mutex.Unlock()
}

// SetSession installs the caller identity used by the submit and like guards.
func (t *Thread) SetSession(session model.Session) {
	t.mutex.Lock()
	t.session = session
	t.mutex.Unlock()
}

// Open switches the thread to the given reel and loads its comments. A load
// failure shows an empty thread; the sheet still opens.
func (t *Thread) Open(ctx context.Context, itemID string) {
	t.mutex.Lock()
	t.itemID = itemID
	t.comments = nil
	t.mutex.Unlock()
	t.notifyChanged()

	list, err := t.api.FetchComments(ctx, itemID)
	if err != nil {
		log.Printf("comments: load for %s failed: %v", itemID, err)
		return
	}

	t.mutex.Lock()
	if t.itemID != itemID {
		// The sheet moved to another reel while the fetch was running.
		t.mutex.Unlock()
		return
	}
	t.comments = list
	t.mutex.Unlock()
	t.notifyChanged()
}

// Comments returns a snapshot of the current list, newest first.
func (t *Thread) Comments() []*model.Comment {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	out := make([]*model.Comment, len(t.comments))
	copy(out, t.comments)
	return out
}

// Submit posts a comment optimistically: a placeholder with a temporary id
// appears at the top immediately and is replaced in place by the server's
// confirmed entry. On failure the placeholder is removed again.
func (t *Thread) Submit(ctx context.Context, text string) error {
	if err := model.ValidateCommentText(text); err != nil {
		t.notifier.Notify("Write something first", notify.KindWarning)
		return err
	}

	t.mutex.Lock()
	if !t.session.Authenticated() {
		t.mutex.Unlock()
		t.notifier.Notify("Sign in to comment", notify.KindWarning)
		return model.ErrUnauthorized
	}
	itemID := t.itemID
	pending := model.NewPendingComment(t.session.Name, text)
	t.comments = append([]*model.Comment{pending}, t.comments...)
	t.mutex.Unlock()
	t.notifyChanged()

	confirmed, err := t.api.PostComment(ctx, itemID, text)
	if err != nil {
		t.remove(pending.ID)
		if errors.Is(err, model.ErrUnauthorized) {
			t.notifier.Notify("Session expired, sign in again", notify.KindWarning)
			return err
		}
		log.Printf("comments: submit for %s failed: %v", itemID, err)
		t.notifier.Notify("Could not post comment", notify.KindError)
		return err
	}

	t.mutex.Lock()
	for i, c := range t.comments {
		if c.ID == pending.ID {
			t.comments[i] = confirmed
			break
		}
	}
	t.mutex.Unlock()
	t.notifyChanged()
	return nil
}

// ToggleLike flips one comment's like optimistically and reverts on failure.
// Pending comments cannot be liked yet.
func (t *Thread) ToggleLike(ctx context.Context, commentID string) {
	t.mutex.Lock()
	if !t.session.Authenticated() {
		t.mutex.Unlock()
		t.notifier.Notify("Sign in to like comments", notify.KindWarning)
		return
	}
	var target *model.Comment
	for _, c := range t.comments {
		if c.ID == commentID {
			target = c
			break
		}
	}
	if target == nil || target.IsPending() {
		t.mutex.Unlock()
		return
	}
	prevLiked, prevCount := target.Liked, target.LikeCount
	target.Liked = !prevLiked
	target.LikeCount = bump(prevCount, target.Liked)
	t.mutex.Unlock()
	t.notifyChanged()

	if err := t.api.PostCommentLike(ctx, commentID); err != nil {
		t.mutex.Lock()
		target.Liked = prevLiked
		target.LikeCount = prevCount
		t.mutex.Unlock()
		t.notifyChanged()
		log.Printf("comments: like for %s failed: %v", commentID, err)
	}
}

func (t *Thread) remove(id string) {
	t.mutex.Lock()
	for i, c := range t.comments {
		if c.ID == id {
			t.comments = append(t.comments[:i], t.comments[i+1:]...)
			break
		}
	}
	t.mutex.Unlock()
	t.notifyChanged()
}

func (t *Thread) notifyChanged() {
	t.mutex.Lock()
	fn := t.onChanged
	t.mutex.Unlock()
	if fn != nil {
		fn()
	}
}

func bump(count int, up bool) int {
	if up {
		return count + 1
	}
	if count > 0 {
		return count - 1
	}
	return 0
}
