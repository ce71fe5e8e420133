package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "novablog/internal/delivery/context"
	"novablog/internal/domain/entity"
	domainerrors "novablog/internal/domain/errors"
	"novablog/internal/domain/repository"
	"novablog/internal/usecase"
)

// commentService implements the CommentUsecase interface.
type commentService struct {
	commentRepo repository.CommentRepository
	blogRepo    repository.BlogRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for commentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	CommentRepo repository.CommentRepository
	BlogRepo    repository.BlogRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo: params.CommentRepo,
		blogRepo:    params.BlogRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create posts a comment on a blog. The author's display name is denormalized
// into the comment so lists render without joining the users collection.
func (srv *commentService) Create(ctx context.Context, userID, blogID uuid.UUID, input *usecase.CreateCommentInput) (*entity.Comment, error) {
	if input == nil {
		return nil, errMissingBody
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("comment text is required")
	}

	if _, err := srv.blogRepo.FindByID(ctx, blogID); err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, domainerrors.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog for comment")
	}

	author, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// A stale token passes the gate, but a vanished account cannot
			// have a display name denormalized.
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load comment author")
	}

	comment := &entity.Comment{
		BlogID:   blogID,
		UserID:   userID,
		Username: author.DisplayName(),
		Text:     text,
	}

	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}

	if err := srv.blogRepo.AdjustCommentsCount(ctx, blogID, 1); err != nil {
		// Undo the insert so a failed counter bump leaves no orphaned comment.
		if delErr := srv.commentRepo.Delete(ctx, comment.ID); delErr != nil {
			srv.log(ctx).Error("Failed to remove comment after counter failure",
				slog.Any("commentID", comment.ID), slog.Any("error", delErr))
		}

		return nil, errors.Wrap(err, "failed to bump blog comment counter")
	}

	srv.log(ctx).Info("Comment created", slog.Any("commentID", comment.ID), slog.Any("blogID", blogID))

	return comment, nil
}

// ListByBlog returns the comments of a post, newest first.
func (srv *commentService) ListByBlog(ctx context.Context, blogID uuid.UUID) ([]*entity.Comment, error) {
	if _, err := srv.blogRepo.FindByID(ctx, blogID); err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, domainerrors.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog for comments")
	}

	comments, err := srv.commentRepo.FindByBlog(ctx, blogID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

// Delete removes a comment after the ownership check and decrements the
// blog's comment counter.
func (srv *commentService) Delete(ctx context.Context, userID, commentID uuid.UUID) error {
	comment, err := srv.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return domainerrors.ErrCommentNotFound
		}

		return errors.Wrap(err, "failed to find comment")
	}

	if err := authorizeOwner(userID, comment.UserID); err != nil {
		srv.log(ctx).Warn("Comment delete denied", slog.Any("commentID", commentID), slog.Any("callerID", userID))

		return err
	}

	if err := srv.commentRepo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return domainerrors.ErrCommentNotFound
		}

		return errors.Wrap(err, "failed to delete comment")
	}

	if err := srv.blogRepo.AdjustCommentsCount(ctx, comment.BlogID, -1); err != nil {
		// The comment is already gone; a stale counter is tolerated rather
		// than failing a delete that did its job.
		srv.log(ctx).Error("Failed to drop blog comment counter",
			slog.Any("blogID", comment.BlogID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Comment deleted", slog.Any("commentID", commentID))

	return nil
}
