package repository

import (
	"context"
	"errors"

	"novablog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCommentNotFound is a domain-specific error returned when a comment is not found.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines the standard operations for comment persistence.
type CommentRepository interface {
	// Create persists a new comment.
	Create(ctx context.Context, comment *entity.Comment) error

	// FindByID retrieves a single comment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// FindByBlog retrieves the comments for a post, newest first.
	FindByBlog(ctx context.Context, blogID uuid.UUID) ([]*entity.Comment, error)

	// Delete removes a comment by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
