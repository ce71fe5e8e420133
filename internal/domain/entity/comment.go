// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment represents a single comment on a blog post.
// UserID is the immutable owner reference; Username is denormalized at
// creation time so comment lists render without joining the users collection.
type Comment struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the comment.
	BlogID    uuid.UUID `json:"blog_id"`    // The post this comment belongs to.
	UserID    uuid.UUID `json:"user_id"`    // The ID of the account that wrote this comment.
	Username  string    `json:"username"`   // Author display name (or email) captured at creation time.
	Text      string    `json:"text"`       // Comment body, trimmed, never blank.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this comment was posted.
}
