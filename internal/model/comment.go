package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Comment text constraints
const (
	CommentMaxLength = 500
)

// TempCommentPrefix marks locally generated comment ids that have not been
// confirmed by the server yet.
const TempCommentPrefix = "pending-"

// Comment represents one entry in a reel's comment thread. The ID is either a
// server id or a temporary local id while the submit request is in flight.
type Comment struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	LikeCount  int       `json:"likeCount"`
	Liked      bool      `json:"liked"`
	CreatedAt  time.Time `json:"createdAt"`
}

// IsPending reports whether the comment still carries a temporary local id.
func (c *Comment) IsPending() bool {
	return strings.HasPrefix(c.ID, TempCommentPrefix)
}

// RelativeTime renders CreatedAt relative to now ("just now", "5m", "2h",
// "3d").
func (c *Comment) RelativeTime(now time.Time) string {
	d := now.Sub(c.CreatedAt)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}

// NewPendingComment builds the optimistic placeholder that is shown until the
// server confirms the submit.
func NewPendingComment(author, text string) *Comment {
	return &Comment{
		ID:         TempCommentPrefix + uuid.New().String(),
		AuthorName: author,
		Text:       text,
		LikeCount:  0,
		CreatedAt:  time.Now(),
	}
}

// ValidateCommentText rejects blank or oversized comment text before any
// state change happens.
func ValidateCommentText(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fmt.Errorf("comment text is blank: %w", ErrValidation)
	}
	if len(trimmed) > CommentMaxLength {
		return fmt.Errorf("comment text exceeds %d characters: %w", CommentMaxLength, ErrValidation)
	}
	return nil
}
