// Package platform holds small host-side helpers: canonical deep links and
// local storage paths.
package platform

import (
	"net/url"
	"strings"
)

// DeepLinkBase is the public web origin reel links point at.
const DeepLinkBase = "https://reelbite.app"

// ReelParam is the query parameter carrying the reel id in a deep link.
const ReelParam = "reel"

// BuildReelURL returns the shareable link for a reel id.
func BuildReelURL(id string) string {
	return DeepLinkBase + "/?" + ReelParam + "=" + url.QueryEscape(id)
}

// ParseReelURL extracts the reel id from a deep link. It accepts any host so
// links survive staging domains; a missing or empty reel parameter returns
// false.
func ParseReelURL(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	id := u.Query().Get(ReelParam)
	if id == "" {
		return "", false
	}
	return id, true
}
