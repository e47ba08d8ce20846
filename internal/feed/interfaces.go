// Package feed loads the reel list and applies social mutations
// optimistically: the UI state flips first, the server answer reconciles or
// reverts it afterwards. Confirmed likes and saves are written through to the
// persistent id-sets so every other view agrees without re-fetching.
package feed

import (
	"context"

	"github.com/reelbite/reelbite/internal/config"
	"github.com/reelbite/reelbite/internal/model"
)

// API is the transport surface the feed service depends on.
type API interface {
	// FetchFeed returns the reel list.
	FetchFeed(ctx context.Context) ([]*model.ReelItem, error)

	// FetchOne returns a single reel by id, used by deep links that target an
	// item not present in the loaded feed.
	FetchOne(ctx context.Context, id string) (*model.ReelItem, error)

	// PostLike toggles the like server-side and returns the confirmed state.
	PostLike(ctx context.Context, id string) (liked bool, likeCount int, err error)

	// PostSave toggles the save server-side and returns the confirmed state.
	PostSave(ctx context.Context, id string) (saved bool, savesCount int, err error)

	// DeleteItem removes a reel owned by the calling partner.
	DeleteItem(ctx context.Context, id string) error
}

// Cache is the persistent id-set surface the service writes confirmed
// interactions through to. *config.Settings satisfies it.
type Cache interface {
	IDSet(kind config.SetKind) map[string]bool
	Add(kind config.SetKind, id string)
	Remove(kind config.SetKind, id string)
}
