package usecase

import (
	"context"

	"github.com/google/uuid"

	"novablog/internal/domain/entity"
)

// CreateBlogInput carries the create-post request payload.
type CreateBlogInput struct {
	Title        string   `json:"title" validate:"required"`
	ThumbnailURL string   `json:"thumbnail_url"`
	Tags         []string `json:"tags"`
	Description  string   `json:"description" validate:"required"`
}

// UpdateBlogInput carries a partial update: nil fields are left unchanged.
// The owner reference is not part of the payload and can never be reassigned.
type UpdateBlogInput struct {
	Title        *string  `json:"title"`
	ThumbnailURL *string  `json:"thumbnail_url"`
	Tags         []string `json:"tags"`
	Description  *string  `json:"description"`
}

// Author is the public projection of a post's owner joined into a view.
type Author struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// BlogView is a post together with its joined author projection.
type BlogView struct {
	*entity.Blog
	Author *Author `json:"author,omitempty"`
}

// LikeOutput reports the result of a like toggle.
type LikeOutput struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

// BlogUsecase defines blog post operations. Mutations take the caller's
// authenticated identity; update and delete enforce ownership.
type BlogUsecase interface {
	// Create publishes a new post owned by the caller.
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateBlogInput) (*BlogView, error)

	// List returns every post, newest first, with authors joined.
	List(ctx context.Context) ([]*BlogView, error)

	// ListByOwner returns the caller's posts, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*BlogView, error)

	// Get returns a single post with its author joined.
	Get(ctx context.Context, id uuid.UUID) (*BlogView, error)

	// Update applies a partial update after checking the caller owns the post.
	Update(ctx context.Context, callerID, id uuid.UUID, input *UpdateBlogInput) (*BlogView, error)

	// Delete removes a post after checking the caller owns it.
	Delete(ctx context.Context, callerID, id uuid.UUID) error

	// TrackView bumps the view counter and returns the new value.
	TrackView(ctx context.Context, id uuid.UUID) (int64, error)

	// ToggleLike adds or removes the caller from the post's like set.
	ToggleLike(ctx context.Context, callerID, id uuid.UUID) (*LikeOutput, error)
}
