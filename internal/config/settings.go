package config

import (
	"encoding/json"
	"sort"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"

	"github.com/reelbite/reelbite/internal/model"
)

// ThemePreference selects the rendered theme variant.
type ThemePreference string

const (
	ThemeSystem ThemePreference = "system"
	ThemeLight  ThemePreference = "light"
	ThemeDark   ThemePreference = "dark"
)

// SetKind names a persisted id-set.
type SetKind string

const (
	// SetLiked holds ids the user confirmed-liked across navigations.
	SetLiked SetKind = "liked_local"

	// SetSaved holds ids the user confirmed-saved across navigations.
	SetSaved SetKind = "saved_local"
)

// Settings keys for Fyne preferences
const (
	KeyThemePreference = "theme_preference"
	KeyLanguage        = "language"
	KeyCartItems       = "cart_items"
	KeyAPIBase         = "api_base"
	KeyProfileName     = "profile_name"
	KeyProfileEmail    = "profile_email"
	KeyProfileAvatar   = "profile_avatar"
	KeyProfileRole     = "profile_role"
	KeyPartnerID       = "partner_id"
)

// Default values
const (
	DefaultThemePreference = ThemeSystem
	DefaultAPIBase         = "https://api.reelbite.app"
	DefaultLanguage        = "system"
)

// Settings is the persistent cross-view cache: two id-sets (liked, saved)
// plus scalar preferences, durable across restarts and shared by every view.
// Set writes are whole-set replacements, last writer wins. Each id-set also
// exposes a binding.Int observable carrying the current set size so views
// like the saved-count badge stay current without being handed mutated items.
type Settings struct {
	app fyne.App

	countsMutex sync.Mutex
	counts      map[SetKind]binding.Int
}

// NewSettings creates a settings manager bound to the app's preferences.
func NewSettings(app fyne.App) *Settings {
	return &Settings{
		app:    app,
		counts: make(map[SetKind]binding.Int),
	}
}

// IDSet returns the persisted id-set for kind as a membership map.
func (s *Settings) IDSet(kind SetKind) map[string]bool {
	ids := s.app.Preferences().StringList(string(kind))
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id != "" {
			set[id] = true
		}
	}
	return set
}

// WriteIDSet replaces the persisted id-set for kind and pushes the new size
// to the kind's count observable. Ids are stored sorted so repeated writes of
// the same membership are byte-identical.
func (s *Settings) WriteIDSet(kind SetKind, set map[string]bool) {
	ids := make([]string, 0, len(set))
	for id, ok := range set {
		if ok && id != "" {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	s.app.Preferences().SetStringList(string(kind), ids)
	_ = s.CountBinding(kind).Set(len(ids))
}

// Add marks one id as a member of kind's set. Membership is idempotent.
func (s *Settings) Add(kind SetKind, id string) {
	set := s.IDSet(kind)
	set[id] = true
	s.WriteIDSet(kind, set)
}

// Remove drops one id from kind's set.
func (s *Settings) Remove(kind SetKind, id string) {
	set := s.IDSet(kind)
	delete(set, id)
	s.WriteIDSet(kind, set)
}

// ClearIDSet empties kind's set.
func (s *Settings) ClearIDSet(kind SetKind) {
	s.WriteIDSet(kind, nil)
}

// CountBinding returns the observable set size for kind. Consumers subscribe
// with binding.NewDataListener; the cache never knows who listens.
func (s *Settings) CountBinding(kind SetKind) binding.Int {
	s.countsMutex.Lock()
	defer s.countsMutex.Unlock()

	b, ok := s.counts[kind]
	if !ok {
		b = binding.NewInt()
		_ = b.Set(len(s.app.Preferences().StringList(string(kind))))
		s.counts[kind] = b
	}
	return b
}

// GetThemePreference returns the configured theme preference.
func (s *Settings) GetThemePreference() ThemePreference {
	pref := s.app.Preferences().String(KeyThemePreference)
	if pref == "" {
		s.SetThemePreference(DefaultThemePreference)
		return DefaultThemePreference
	}
	return ThemePreference(pref)
}

// SetThemePreference sets the theme preference.
func (s *Settings) SetThemePreference(pref ThemePreference) {
	s.app.Preferences().SetString(KeyThemePreference, string(pref))
}

// GetThemeOptions returns the selectable theme preferences.
func (s *Settings) GetThemeOptions() []ThemePreference {
	return []ThemePreference{ThemeSystem, ThemeLight, ThemeDark}
}

// GetLanguage returns the configured interface language code.
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the interface language code.
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAPIBase returns the feed API base URL.
func (s *Settings) GetAPIBase() string {
	base := s.app.Preferences().String(KeyAPIBase)
	if base == "" {
		s.app.Preferences().SetString(KeyAPIBase, DefaultAPIBase)
		return DefaultAPIBase
	}
	return base
}

// Cart returns the persisted cart lines. A corrupt payload reads as empty.
func (s *Settings) Cart() []model.CartLine {
	raw := s.app.Preferences().String(KeyCartItems)
	if raw == "" {
		return nil
	}
	var lines []model.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil
	}
	return lines
}

// WriteCart replaces the persisted cart.
func (s *Settings) WriteCart(lines []model.CartLine) {
	if len(lines) == 0 {
		s.app.Preferences().SetString(KeyCartItems, "")
		return
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return
	}
	s.app.Preferences().SetString(KeyCartItems, string(raw))
}

// AddToCart increments the quantity for the item, appending a new line the
// first time.
func (s *Settings) AddToCart(item *model.ReelItem) {
	lines := s.Cart()
	for i := range lines {
		if lines[i].ID == item.ID {
			lines[i].Qty++
			s.WriteCart(lines)
			return
		}
	}
	lines = append(lines, model.CartLine{
		ID:    item.ID,
		Title: item.DisplayTitle(),
		Price: item.Price,
		Qty:   1,
	})
	s.WriteCart(lines)
}

// RemoveFromCart decrements the quantity for the item, dropping the line
// when it reaches zero. Unknown ids are a no-op.
func (s *Settings) RemoveFromCart(id string) {
	lines := s.Cart()
	for i := range lines {
		if lines[i].ID != id {
			continue
		}
		lines[i].Qty--
		if lines[i].Qty <= 0 {
			lines = append(lines[:i], lines[i+1:]...)
		}
		s.WriteCart(lines)
		return
	}
}

// ClearCart empties the persisted cart.
func (s *Settings) ClearCart() {
	s.WriteCart(nil)
}

// Session returns the stored identity as an explicit session object. Missing
// or unknown role reads as guest.
func (s *Settings) Session() model.Session {
	role := model.Role(s.app.Preferences().String(KeyProfileRole))
	switch role {
	case model.RoleUser, model.RolePartner:
	default:
		role = model.RoleGuest
	}
	return model.Session{
		Role:      role,
		PartnerID: s.app.Preferences().String(KeyPartnerID),
		Name:      s.app.Preferences().String(KeyProfileName),
		Email:     s.app.Preferences().String(KeyProfileEmail),
		AvatarURL: s.app.Preferences().String(KeyProfileAvatar),
	}
}

// SetSession stores the identity after a sign-in.
func (s *Settings) SetSession(session model.Session) {
	s.app.Preferences().SetString(KeyProfileRole, string(session.Role))
	s.app.Preferences().SetString(KeyPartnerID, session.PartnerID)
	s.app.Preferences().SetString(KeyProfileName, session.Name)
	s.app.Preferences().SetString(KeyProfileEmail, session.Email)
	s.app.Preferences().SetString(KeyProfileAvatar, session.AvatarURL)
}

// ClearProfile wipes the stored identity, resetting the session to guest.
func (s *Settings) ClearProfile() {
	s.SetSession(model.Session{Role: model.RoleGuest})
}
