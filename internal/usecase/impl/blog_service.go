package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "novablog/internal/delivery/context"
	"novablog/internal/domain/entity"
	domainerrors "novablog/internal/domain/errors"
	"novablog/internal/domain/repository"
	"novablog/internal/usecase"
)

// blogService implements the BlogUsecase interface.
type blogService struct {
	blogRepo repository.BlogRepository
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// BlogServiceParams holds dependencies for blogService, injected by Fx.
type BlogServiceParams struct {
	fx.In

	BlogRepo repository.BlogRepository
	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewBlogService is the constructor for blogService.
func NewBlogService(params BlogServiceParams) usecase.BlogUsecase {
	return &blogService{
		blogRepo: params.BlogRepo,
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *blogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create publishes a new post. Ownership is set here, once, from the
// authenticated identity; no later operation can reassign it.
func (srv *blogService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateBlogInput) (*usecase.BlogView, error) {
	if input == nil {
		return nil, errMissingBody
	}

	if err := validateInput(input); err != nil {
		return nil, err
	}

	blog := &entity.Blog{
		Title:        input.Title,
		ThumbnailURL: input.ThumbnailURL,
		Tags:         input.Tags,
		Description:  input.Description,
		UserID:       ownerID,
		Likes:        []uuid.UUID{},
	}
	if blog.Tags == nil {
		blog.Tags = []string{}
	}

	if err := srv.blogRepo.Create(ctx, blog); err != nil {
		return nil, errors.Wrap(err, "failed to create blog")
	}

	srv.log(ctx).Info("Blog created", slog.Any("blogID", blog.ID), slog.Any("ownerID", ownerID))

	return srv.withAuthor(ctx, blog), nil
}

// List returns every post, newest first, with authors joined.
func (srv *blogService) List(ctx context.Context) ([]*usecase.BlogView, error) {
	blogs, err := srv.blogRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blogs")
	}

	return srv.withAuthors(ctx, blogs)
}

// ListByOwner returns the posts owned by the given account, newest first.
func (srv *blogService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*usecase.BlogView, error) {
	blogs, err := srv.blogRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blogs by owner")
	}

	return srv.withAuthors(ctx, blogs)
}

// Get returns a single post with its author joined.
func (srv *blogService) Get(ctx context.Context, id uuid.UUID) (*usecase.BlogView, error) {
	blog, err := srv.findBlog(ctx, id)
	if err != nil {
		return nil, err
	}

	return srv.withAuthor(ctx, blog), nil
}

// Update applies a partial update after the ownership check. Only fields
// present in the input change; the owner reference is never touched.
func (srv *blogService) Update(ctx context.Context, callerID, id uuid.UUID, input *usecase.UpdateBlogInput) (*usecase.BlogView, error) {
	if input == nil {
		return nil, errMissingBody
	}

	blog, err := srv.findBlog(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authorizeOwner(callerID, blog.UserID); err != nil {
		srv.log(ctx).Warn("Blog update denied", slog.Any("blogID", id), slog.Any("callerID", callerID))

		return nil, err
	}

	if input.Title != nil {
		blog.Title = *input.Title
	}
	if input.ThumbnailURL != nil {
		blog.ThumbnailURL = *input.ThumbnailURL
	}
	if input.Tags != nil {
		blog.Tags = input.Tags
	}
	if input.Description != nil {
		blog.Description = *input.Description
	}
	blog.UpdatedAt = time.Now().UTC()

	if err := srv.blogRepo.Update(ctx, blog); err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, domainerrors.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to update blog")
	}

	return srv.withAuthor(ctx, blog), nil
}

// Delete removes a post after the ownership check.
func (srv *blogService) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	blog, err := srv.findBlog(ctx, id)
	if err != nil {
		return err
	}

	if err := authorizeOwner(callerID, blog.UserID); err != nil {
		srv.log(ctx).Warn("Blog delete denied", slog.Any("blogID", id), slog.Any("callerID", callerID))

		return err
	}

	if err := srv.blogRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return domainerrors.ErrBlogNotFound
		}

		return errors.Wrap(err, "failed to delete blog")
	}

	srv.log(ctx).Info("Blog deleted", slog.Any("blogID", id))

	return nil
}

// TrackView bumps the view counter atomically and returns the new value.
func (srv *blogService) TrackView(ctx context.Context, id uuid.UUID) (int64, error) {
	views, err := srv.blogRepo.IncrementViews(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return 0, domainerrors.ErrBlogNotFound
		}

		return 0, errors.Wrap(err, "failed to track blog view")
	}

	return views, nil
}

// ToggleLike adds or removes the caller from the post's like set. Liking is
// not an ownership-guarded mutation: any authenticated user may toggle. The
// flip happens in a single targeted write at the store, so concurrent likes
// by different users never lose each other.
func (srv *blogService) ToggleLike(ctx context.Context, callerID, id uuid.UUID) (*usecase.LikeOutput, error) {
	blog, err := srv.blogRepo.ToggleLike(ctx, id, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, domainerrors.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to toggle blog like")
	}

	return &usecase.LikeOutput{Liked: blog.LikedBy(callerID), LikesCount: blog.LikesCount}, nil
}

// authorizeOwner compares the authenticated identity with the resource owner.
// A mismatch is Forbidden, never Unauthorized: the requester is known, just
// not entitled.
func authorizeOwner(callerID, ownerID uuid.UUID) error {
	if callerID != ownerID {
		return domainerrors.ErrForbidden
	}

	return nil
}

func (srv *blogService) findBlog(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	blog, err := srv.blogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, domainerrors.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog")
	}

	return blog, nil
}

// withAuthor joins a single post with its owner's public projection.
func (srv *blogService) withAuthor(ctx context.Context, blog *entity.Blog) *usecase.BlogView {
	view := &usecase.BlogView{Blog: blog}

	owner, err := srv.userRepo.FindByID(ctx, blog.UserID)
	if err != nil {
		// A post whose owner vanished still renders, just without an author.
		srv.log(ctx).Warn("Failed to join blog author", slog.Any("blogID", blog.ID), slog.Any("error", err))

		return view
	}

	view.Author = &usecase.Author{ID: owner.ID, Name: owner.Name, Email: owner.Email}

	return view
}

// withAuthors joins a list of posts with their owners in one user lookup.
func (srv *blogService) withAuthors(ctx context.Context, blogs []*entity.Blog) ([]*usecase.BlogView, error) {
	ownerIDs := make([]uuid.UUID, 0, len(blogs))
	seen := make(map[uuid.UUID]struct{}, len(blogs))
	for _, blog := range blogs {
		if _, ok := seen[blog.UserID]; ok {
			continue
		}
		seen[blog.UserID] = struct{}{}
		ownerIDs = append(ownerIDs, blog.UserID)
	}

	owners, err := srv.userRepo.FindByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to join blog authors")
	}

	views := make([]*usecase.BlogView, len(blogs))
	for i, blog := range blogs {
		view := &usecase.BlogView{Blog: blog}
		if owner, ok := owners[blog.UserID]; ok {
			view.Author = &usecase.Author{ID: owner.ID, Name: owner.Name, Email: owner.Email}
		}
		views[i] = view
	}

	return views, nil
}
