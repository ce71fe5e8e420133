package usecase

import (
	"context"

	"github.com/google/uuid"

	"novablog/internal/domain/entity"
)

// CreateCommentInput carries the create-comment request payload.
type CreateCommentInput struct {
	Text string `json:"text" validate:"required"`
}

// CommentUsecase defines comment operations. Creation denormalizes the
// author's display name into the comment; deletion enforces ownership.
type CommentUsecase interface {
	// Create posts a comment on a blog and bumps the blog's comment counter.
	Create(ctx context.Context, userID, blogID uuid.UUID, input *CreateCommentInput) (*entity.Comment, error)

	// ListByBlog returns the comments of a post, newest first.
	ListByBlog(ctx context.Context, blogID uuid.UUID) ([]*entity.Comment, error)

	// Delete removes a comment after checking the caller owns it.
	Delete(ctx context.Context, userID, commentID uuid.UUID) error
}
