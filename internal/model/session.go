package model

// Role describes who the current session belongs to.
type Role string

const (
	// RoleGuest means nobody is signed in; mutations are rejected locally.
	RoleGuest Role = "guest"

	// RoleUser is a signed-in consumer account.
	RoleUser Role = "user"

	// RolePartner is a signed-in business account that may own reels.
	RolePartner Role = "partner"
)

// Session is the explicit identity object handed to components that need it.
// The core never reads identity from ambient storage.
type Session struct {
	Role      Role
	PartnerID string
	Name      string
	Email     string
	AvatarURL string
}

// Authenticated reports whether any account is signed in.
func (s Session) Authenticated() bool {
	return s.Role == RoleUser || s.Role == RolePartner
}

// Owns reports whether this session's partner account owns the given reel.
// The comparison runs against the normalized partner reference, so it does
// not matter which wire shape the item arrived with.
func (s Session) Owns(item *ReelItem) bool {
	if s.Role != RolePartner || s.PartnerID == "" || item == nil {
		return false
	}
	return s.PartnerID == item.Partner.ID
}

// DisplayName returns the profile name or a fallback.
func (s Session) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return "Your Profile"
}
