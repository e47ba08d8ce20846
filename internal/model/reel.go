package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Description preview constants
const (
	DescriptionPreviewLimit = 140
)

// Partner identifies the business account that owns a reel.
type Partner struct {
	ID          string
	DisplayName string
}

// partnerWire mirrors the embedded-object representation of a partner
// reference on the wire.
type partnerWire struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UnmarshalJSON accepts both wire representations of a partner reference: a
// bare id string or an embedded {id, name} object. Downstream code only ever
// sees the normalized Partner, so nothing outside the decode path branches on
// representation.
func (p *Partner) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*p = NormalizePartner(id, "")
		return nil
	}

	var obj partnerWire
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("partner reference is neither id string nor object: %w", err)
	}
	*p = NormalizePartner(obj.ID, obj.Name)
	return nil
}

// MarshalJSON always emits the embedded-object form.
func (p Partner) MarshalJSON() ([]byte, error) {
	return json.Marshal(partnerWire{ID: p.ID, Name: p.DisplayName})
}

// NormalizePartner builds the canonical partner pair from whatever the wire
// carried. A missing display name falls back to a short store label derived
// from the id tail, matching what the feed shows for legacy items.
func NormalizePartner(id, name string) Partner {
	name = strings.TrimSpace(name)
	if name == "" {
		if id == "" {
			name = "Store"
		} else {
			tail := id
			if len(tail) > 4 {
				tail = tail[len(tail)-4:]
			}
			name = "Store " + tail
		}
	}
	return Partner{ID: id, DisplayName: name}
}

// ReelItem represents a single short-video feed item as served by the API.
// Counters are server truth; client-only flags live in the overlay store.
type ReelItem struct {
	ID            string  `json:"id"`
	MediaURL      string  `json:"video"`
	Title         string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	LikeCount     int     `json:"likeCount"`
	SavesCount    int     `json:"savesCount"`
	CommentsCount int     `json:"commentsCount"`
	Partner       Partner `json:"foodPartner"`
}

// DisplayTitle returns the title or a placeholder for untitled items.
func (r *ReelItem) DisplayTitle() string {
	if t := strings.TrimSpace(r.Title); t != "" {
		return t
	}
	return "Untitled"
}

// DescriptionPreview returns the description, truncated for the collapsed
// card state. The second return reports whether a "more" affordance is
// needed at all.
func (r *ReelItem) DescriptionPreview(expanded bool) (string, bool) {
	full := strings.TrimSpace(r.Description)
	if len(full) <= DescriptionPreviewLimit {
		return full, false
	}
	if expanded {
		return full, true
	}
	return strings.TrimSpace(full[:DescriptionPreviewLimit]), true
}

// FormatPrice renders a non-negative price in rupee notation with Indian
// digit grouping (12,34,567.00).
func FormatPrice(price float64) string {
	if price < 0 {
		price = 0
	}
	total := int64(price*100 + 0.5)
	whole, cents := total/100, total%100
	return "₹" + groupIndian(whole) + fmt.Sprintf(".%02d", cents)
}

// groupIndian inserts separators after the first three digits and then every
// two, right to left.
func groupIndian(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	head := s[:len(s)-3]
	out := s[len(s)-3:]
	for len(head) > 2 {
		out = head[len(head)-2:] + "," + out
		head = head[:len(head)-2]
	}
	return head + "," + out
}
