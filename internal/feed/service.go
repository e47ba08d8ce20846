package feed

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/reelbite/reelbite/internal/config"
	"github.com/reelbite/reelbite/internal/model"
	"github.com/reelbite/reelbite/internal/notify"
	"github.com/reelbite/reelbite/internal/overlay"
)

// Service owns the loaded reel list and runs the optimistic toggle protocol
// over it. At most one toggle per item and kind is in flight at a time; a
// second call while the first is pending is ignored and reported as Skipped.
type Service struct {
	api      API
	overlay  *overlay.Store
	cache    Cache
	notifier notify.Notifier

	mutex    sync.Mutex
	items    []*model.ReelItem
	session  model.Session
	inflight map[string]bool

	onItemsChanged func()
}

// NewService creates the feed service. The notifier must not be nil; pass
// notify.Discard for headless use.
func NewService(api API, ov *overlay.Store, cache Cache, notifier notify.Notifier) *Service {
	return &Service{
		api:      api,
		overlay:  ov,
		cache:    cache,
		notifier: notifier,
		inflight: make(map[string]bool),
	}
}

// SetItemsChangedCallback sets the function invoked after the item list or
// the counters on an item change.
func (s *Service) SetItemsChangedCallback(fn func()) {
	s.mutex.Lock()
	s.onItemsChanged = fn
	s.mutex.Unlock()
}

// SetSession installs the caller identity used by the auth and ownership
// guards.
func (s *Service) SetSession(session model.Session) {
	s.mutex.Lock()
	s.session = session
	s.mutex.Unlock()
}

// LoadFeed fetches the reel list, seeds the overlay from the persistent
// id-sets and replaces the in-memory items. On error the previous list is
// kept and the error returned for the caller to surface.
func (s *Service) LoadFeed(ctx context.Context) error {
	items, err := s.api.FetchFeed(ctx)
	if err != nil {
		log.Printf("feed: load failed: %v", err)
		return err
	}

	s.overlay.Seed(s.cache.IDSet(config.SetLiked), s.cache.IDSet(config.SetSaved))

	s.mutex.Lock()
	s.items = items
	s.mutex.Unlock()

	s.notifyItemsChanged()
	return nil
}

// Items returns the current reel list. The slice is a copy; the items are
// shared.
func (s *Service) Items() []*model.ReelItem {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	out := make([]*model.ReelItem, len(s.items))
	copy(out, s.items)
	return out
}

// Item returns the loaded reel with the given id, or nil.
func (s *Service) Item(id string) *model.ReelItem {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.find(id)
}

// EnsureItem returns the reel with the given id, fetching and prepending it
// when a deep link targets an item outside the loaded feed.
func (s *Service) EnsureItem(ctx context.Context, id string) (*model.ReelItem, error) {
	if item := s.Item(id); item != nil {
		return item, nil
	}
	item, err := s.api.FetchOne(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mutex.Lock()
	s.items = append([]*model.ReelItem{item}, s.items...)
	s.mutex.Unlock()

	s.notifyItemsChanged()
	return item, nil
}

// ApplyToggle runs the optimistic like/save protocol for one item. The flag
// and the counter flip together before the request leaves; the server answer
// replaces both on success and a failure restores the exact prior pair.
func (s *Service) ApplyToggle(ctx context.Context, id string, kind model.ToggleKind) model.ToggleResult {
	s.mutex.Lock()
	if !s.session.Authenticated() {
		s.mutex.Unlock()
		s.notifier.Notify("Sign in to "+kind.String()+" reels", notify.KindWarning)
		return model.ToggleResult{Unauthorized: true}
	}
	key := id + ":" + kind.String()
	if s.inflight[key] {
		s.mutex.Unlock()
		return model.ToggleResult{Skipped: true}
	}
	s.inflight[key] = true
	item := s.find(id)
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		delete(s.inflight, key)
		s.mutex.Unlock()
	}()

	prevActive := s.flag(id, kind)
	prevCount := s.count(item, kind)

	s.setState(item, id, kind, !prevActive, bump(prevCount, !prevActive))

	active, count, err := s.post(ctx, id, kind)
	if err != nil {
		s.setState(item, id, kind, prevActive, prevCount)
		if errors.Is(err, model.ErrUnauthorized) {
			s.notifier.Notify("Session expired, sign in again", notify.KindWarning)
			return model.ToggleResult{Unauthorized: true}
		}
		log.Printf("feed: %s toggle for %s failed: %v", kind, id, err)
		s.notifier.Notify("Could not update "+kind.String(), notify.KindError)
		return model.ToggleResult{}
	}

	// Server wins over the optimistic guess, even when they disagree.
	s.setState(item, id, kind, active, count)
	if active {
		s.cache.Add(cacheSet(kind), id)
	} else {
		s.cache.Remove(cacheSet(kind), id)
	}
	return model.ToggleResult{OK: true, Active: active, Count: count}
}

// Delete removes an item owned by the calling partner. Ownership is checked
// locally against the normalized partner id; a mismatch never reaches the
// network.
func (s *Service) Delete(ctx context.Context, id string) model.DeleteResult {
	s.mutex.Lock()
	session := s.session
	item := s.find(id)
	s.mutex.Unlock()

	if item == nil {
		return model.DeleteResult{}
	}
	if !session.Owns(item) {
		s.notifier.Notify("Only the posting store can delete this reel", notify.KindError)
		return model.DeleteResult{Forbidden: true}
	}

	if err := s.api.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, model.ErrUnauthorized) {
			s.notifier.Notify("Session expired, sign in again", notify.KindWarning)
			return model.DeleteResult{Unauthorized: true}
		}
		log.Printf("feed: delete %s failed: %v", id, err)
		s.notifier.Notify("Could not delete reel", notify.KindError)
		return model.DeleteResult{}
	}

	s.mutex.Lock()
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.mutex.Unlock()

	s.cache.Remove(config.SetLiked, id)
	s.cache.Remove(config.SetSaved, id)
	s.overlay.Forget(id)
	s.notifyItemsChanged()
	s.notifier.Notify("Reel deleted", notify.KindSuccess)
	return model.DeleteResult{OK: true}
}

// find returns the loaded item with the id. Caller holds the mutex.
func (s *Service) find(id string) *model.ReelItem {
	for _, item := range s.items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

func (s *Service) flag(id string, kind model.ToggleKind) bool {
	if kind == model.ToggleLike {
		return s.overlay.Liked(id)
	}
	return s.overlay.Saved(id)
}

// count reads the item's counter for kind. A nil item (settled after removal
// from the feed) reads as zero and writes become no-ops.
func (s *Service) count(item *model.ReelItem, kind model.ToggleKind) int {
	if item == nil {
		return 0
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if kind == model.ToggleLike {
		return item.LikeCount
	}
	return item.SavesCount
}

// setState writes the flag/counter pair in one step so readers never observe
// a flipped flag with a stale counter.
func (s *Service) setState(item *model.ReelItem, id string, kind model.ToggleKind, active bool, count int) {
	if kind == model.ToggleLike {
		s.overlay.SetLiked(id, active)
	} else {
		s.overlay.SetSaved(id, active)
	}
	if item != nil {
		s.mutex.Lock()
		if kind == model.ToggleLike {
			item.LikeCount = count
		} else {
			item.SavesCount = count
		}
		s.mutex.Unlock()
	}
	s.notifyItemsChanged()
}

func (s *Service) post(ctx context.Context, id string, kind model.ToggleKind) (bool, int, error) {
	if kind == model.ToggleLike {
		return s.api.PostLike(ctx, id)
	}
	return s.api.PostSave(ctx, id)
}

func (s *Service) notifyItemsChanged() {
	s.mutex.Lock()
	fn := s.onItemsChanged
	s.mutex.Unlock()
	if fn != nil {
		fn()
	}
}

// bump moves a counter one step in the optimistic direction without going
// negative.
func bump(count int, up bool) int {
	if up {
		return count + 1
	}
	if count > 0 {
		return count - 1
	}
	return 0
}

func cacheSet(kind model.ToggleKind) config.SetKind {
	if kind == model.ToggleLike {
		return config.SetLiked
	}
	return config.SetSaved
}
