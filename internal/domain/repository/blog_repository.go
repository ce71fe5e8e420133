package repository

import (
	"context"
	"errors"

	"novablog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBlogNotFound is a domain-specific error returned when a post is not found.
var ErrBlogNotFound = errors.New("blog not found")

// BlogRepository defines the standard operations for blog post persistence.
type BlogRepository interface {
	// Create persists a new blog post.
	Create(ctx context.Context, blog *entity.Blog) error

	// FindByID retrieves a single post by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error)

	// FindAll retrieves every post, newest first.
	FindAll(ctx context.Context) ([]*entity.Blog, error)

	// FindByOwner retrieves the posts owned by the given account, newest first.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Blog, error)

	// Update replaces the mutable fields of an existing post.
	// The owner reference is immutable and never written by Update.
	Update(ctx context.Context, blog *entity.Blog) error

	// Delete removes a post by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementViews atomically bumps the view counter and returns the new value.
	IncrementViews(ctx context.Context, id uuid.UUID) (int64, error)

	// ToggleLike atomically flips the user's membership in the post's like
	// set, keeps the counter equal to the set size, and returns the post as
	// it stands after the toggle. Concurrent toggles by different users must
	// not lose each other's updates.
	ToggleLike(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Blog, error)

	// AdjustCommentsCount atomically adds delta to the comment counter.
	AdjustCommentsCount(ctx context.Context, id uuid.UUID, delta int) error
}
