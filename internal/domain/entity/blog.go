// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Blog represents a single published post.
// UserID is the immutable owner reference, set once at creation time;
// update and delete are only permitted for that owner.
type Blog struct {
	ID            uuid.UUID   `json:"id"`             // The Global Unique Identifier (GUID) for the post.
	Title         string      `json:"title"`          // Post title, required.
	ThumbnailURL  string      `json:"thumbnail_url"`  // Optional cover image URL.
	Tags          []string    `json:"tags"`           // Free-form tags, may be empty.
	Description   string      `json:"description"`    // Post body, required.
	UserID        uuid.UUID   `json:"user_id"`        // The ID of the account that owns this post.
	Likes         []uuid.UUID `json:"likes"`          // IDs of users who currently like this post.
	LikesCount    int         `json:"likes_count"`    // Kept equal to len(Likes).
	CommentsCount int         `json:"comments_count"` // Number of comments attached to this post.
	Views         int64       `json:"views"`          // View counter, incremented atomically by the store.
	CreatedAt     time.Time   `json:"created_at"`     // Timestamp of when this post was created.
	UpdatedAt     time.Time   `json:"updated_at"`     // Timestamp of the last modification.
}

// LikedBy reports whether the given user currently likes this post.
func (b *Blog) LikedBy(userID uuid.UUID) bool {
	return slices.Contains(b.Likes, userID)
}

// ToggleLike adds the user to the like set if absent, removes it if present,
// and keeps LikesCount in sync. It returns true when the post ends up liked.
func (b *Blog) ToggleLike(userID uuid.UUID) bool {
	if b.LikedBy(userID) {
		b.Likes = slices.DeleteFunc(b.Likes, func(id uuid.UUID) bool { return id == userID })
		b.LikesCount = len(b.Likes)

		return false
	}

	b.Likes = append(b.Likes, userID)
	b.LikesCount = len(b.Likes)

	return true
}
