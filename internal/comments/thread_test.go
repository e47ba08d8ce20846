package comments

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/reelbite/reelbite/internal/model"
	"github.com/reelbite/reelbite/internal/notify"
)

type fakeAPI struct {
	mu sync.Mutex

	threads map[string][]*model.Comment

	fetchErr error

	postComment *model.Comment
	postErr     error
	postedText  string

	likeErr   error
	likeCalls int
}

func (f *fakeAPI) FetchComments(ctx context.Context, itemID string) ([]*model.Comment, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.threads[itemID], nil
}

func (f *fakeAPI) PostComment(ctx context.Context, itemID, text string) (*model.Comment, error) {
	f.mu.Lock()
	f.postedText = text
	f.mu.Unlock()
	if f.postErr != nil {
		return nil, f.postErr
	}
	return f.postComment, nil
}

func (f *fakeAPI) PostCommentLike(ctx context.Context, commentID string) error {
	f.mu.Lock()
	f.likeCalls++
	f.mu.Unlock()
	return f.likeErr
}

func newTestThread(api *fakeAPI) *Thread {
	t := NewThread(api, notify.Discard)
	t.SetSession(model.Session{Role: model.RoleUser, Name: "Asha"})
	return t
}

func TestOpenLoadsThreadAndFailureShowsEmpty(t *testing.T) {
	api := &fakeAPI{threads: map[string][]*model.Comment{
		"r1": {{ID: "c1", Text: "so good"}, {ID: "c2", Text: "where is this"}},
	}}
	th := newTestThread(api)

	th.Open(context.Background(), "r1")
	if got := len(th.Comments()); got != 2 {
		t.Fatalf("expected 2 comments, got %d", got)
	}

	api.fetchErr = errors.New("boom")
	th.Open(context.Background(), "r2")
	if got := len(th.Comments()); got != 0 {
		t.Errorf("failed load should show empty thread, got %d comments", got)
	}
}

func TestSubmitShowsPendingThenReplacesInPlace(t *testing.T) {
	api := &fakeAPI{
		threads:     map[string][]*model.Comment{"r1": {{ID: "c1", Text: "older"}}},
		postComment: &model.Comment{ID: "c123", Text: "great!"},
	}
	th := newTestThread(api)
	th.Open(context.Background(), "r1")

	var sawPending bool
	th.SetChangedCallback(func() {
		for _, c := range th.Comments() {
			if c.IsPending() {
				sawPending = true
			}
		}
	})

	if err := th.Submit(context.Background(), "great!"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !sawPending {
		t.Error("placeholder with temporary id never appeared")
	}
	list := th.Comments()
	if len(list) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(list))
	}
	if list[0].ID != "c123" || list[0].Text != "great!" {
		t.Errorf("confirmed entry did not replace the placeholder in place: %+v", list[0])
	}
	if list[1].ID != "c1" {
		t.Errorf("existing comment moved: %+v", list[1])
	}
	if api.postedText != "great!" {
		t.Errorf("posted text %q", api.postedText)
	}
}

func TestFailedSubmitRemovesPlaceholder(t *testing.T) {
	api := &fakeAPI{
		threads: map[string][]*model.Comment{"r1": {{ID: "c1", Text: "older"}}},
		postErr: errors.New("boom"),
	}
	th := newTestThread(api)
	th.Open(context.Background(), "r1")

	if err := th.Submit(context.Background(), "will fail"); err == nil {
		t.Fatal("expected submit error")
	}
	list := th.Comments()
	if len(list) != 1 || list[0].ID != "c1" {
		t.Errorf("placeholder not removed after failure: %+v", list)
	}
}

func TestSubmitValidationRejectsBlankAndOversized(t *testing.T) {
	api := &fakeAPI{threads: map[string][]*model.Comment{"r1": nil}}
	th := newTestThread(api)
	th.Open(context.Background(), "r1")

	if err := th.Submit(context.Background(), "   "); !errors.Is(err, model.ErrValidation) {
		t.Errorf("blank text: expected ErrValidation, got %v", err)
	}
	if err := th.Submit(context.Background(), strings.Repeat("x", model.CommentMaxLength+1)); !errors.Is(err, model.ErrValidation) {
		t.Errorf("oversized text: expected ErrValidation, got %v", err)
	}
	if got := len(th.Comments()); got != 0 {
		t.Errorf("rejected submits left %d comments behind", got)
	}
}

func TestGuestSubmitIsUnauthorized(t *testing.T) {
	api := &fakeAPI{threads: map[string][]*model.Comment{"r1": nil}}
	th := NewThread(api, notify.Discard)
	th.SetSession(model.Session{Role: model.RoleGuest})
	th.Open(context.Background(), "r1")

	if err := th.Submit(context.Background(), "hello"); !errors.Is(err, model.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
	if api.postedText != "" {
		t.Error("guest submit reached the network")
	}
}

func TestToggleLikeFlipsAndRevertsOnFailure(t *testing.T) {
	api := &fakeAPI{threads: map[string][]*model.Comment{
		"r1": {{ID: "c1", Text: "tasty", LikeCount: 3}},
	}}
	th := newTestThread(api)
	th.Open(context.Background(), "r1")

	th.ToggleLike(context.Background(), "c1")
	if c := th.Comments()[0]; !c.Liked || c.LikeCount != 4 {
		t.Fatalf("after like: %+v", c)
	}

	api.likeErr = errors.New("boom")
	th.ToggleLike(context.Background(), "c1")
	if c := th.Comments()[0]; !c.Liked || c.LikeCount != 4 {
		t.Errorf("failed unlike did not revert: %+v", c)
	}
}

func TestToggleLikeIgnoresPendingComments(t *testing.T) {
	api := &fakeAPI{threads: map[string][]*model.Comment{"r1": nil}}
	th := newTestThread(api)
	th.Open(context.Background(), "r1")

	pending := model.NewPendingComment("Asha", "hold on")
	th.mutex.Lock()
	th.comments = []*model.Comment{pending}
	th.mutex.Unlock()

	th.ToggleLike(context.Background(), pending.ID)
	if api.likeCalls != 0 {
		t.Errorf("pending comment like made %d network calls", api.likeCalls)
	}
}
