package impl

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novablog/internal/domain/entity"
	domainerrors "novablog/internal/domain/errors"
	"novablog/internal/usecase"
)

type commentFixture struct {
	svc         usecase.CommentUsecase
	blogRepo    *memBlogRepo
	commentRepo *memCommentRepo
	author      *entity.User
	reader      *entity.User
	blog        *entity.Blog
}

func newCommentFixture(t *testing.T) *commentFixture {
	t.Helper()
	ctx := context.Background()

	userRepo := newMemUserRepo()
	blogRepo := newMemBlogRepo()
	commentRepo := newMemCommentRepo()

	author := &entity.User{Email: "author@example.com", Name: "Author"}
	reader := &entity.User{Email: "reader@example.com"}
	require.NoError(t, userRepo.Create(ctx, author))
	require.NoError(t, userRepo.Create(ctx, reader))

	blog := &entity.Blog{Title: "Post", Description: "body", UserID: author.ID}
	require.NoError(t, blogRepo.Create(ctx, blog))

	svc := NewCommentService(CommentServiceParams{
		CommentRepo: commentRepo,
		BlogRepo:    blogRepo,
		UserRepo:    userRepo,
		Logger:      slog.Default(),
	})

	return &commentFixture{svc: svc, blogRepo: blogRepo, commentRepo: commentRepo, author: author, reader: reader, blog: blog}
}

func TestCommentService_Create(t *testing.T) {
	f := newCommentFixture(t)
	ctx := context.Background()

	comment, err := f.svc.Create(ctx, f.reader.ID, f.blog.ID, &usecase.CreateCommentInput{Text: "nice post"})
	require.NoError(t, err)
	assert.Equal(t, "nice post", comment.Text)
	// The reader has no display name, so the email is denormalized instead.
	assert.Equal(t, "reader@example.com", comment.Username)

	stored, err := f.blogRepo.FindByID(ctx, f.blog.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.CommentsCount)
}

func TestCommentService_Create_BlankText(t *testing.T) {
	f := newCommentFixture(t)

	_, err := f.svc.Create(context.Background(), f.reader.ID, f.blog.ID, &usecase.CreateCommentInput{Text: "   "})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCommentService_Create_MissingBody(t *testing.T) {
	f := newCommentFixture(t)

	_, err := f.svc.Create(context.Background(), f.reader.ID, f.blog.ID, nil)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCommentService_Create_CounterFailureLeavesNoOrphan(t *testing.T) {
	f := newCommentFixture(t)
	ctx := context.Background()
	f.blogRepo.adjustErr = errors.New("counter unavailable")

	_, err := f.svc.Create(ctx, f.reader.ID, f.blog.ID, &usecase.CreateCommentInput{Text: "lost"})
	require.Error(t, err)

	// The insert is undone when the counter bump fails.
	comments, err := f.commentRepo.FindByBlog(ctx, f.blog.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCommentService_Create_BlogMissing(t *testing.T) {
	f := newCommentFixture(t)

	_, err := f.svc.Create(context.Background(), f.reader.ID, uuid.New(), &usecase.CreateCommentInput{Text: "hello"})
	assert.ErrorIs(t, err, domainerrors.ErrBlogNotFound)
}

func TestCommentService_ListByBlog(t *testing.T) {
	f := newCommentFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.reader.ID, f.blog.ID, &usecase.CreateCommentInput{Text: "first"})
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, f.author.ID, f.blog.ID, &usecase.CreateCommentInput{Text: "second"})
	require.NoError(t, err)

	comments, err := f.svc.ListByBlog(ctx, f.blog.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 2)

	_, err = f.svc.ListByBlog(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrBlogNotFound)
}

func TestCommentService_Delete_OwnerOnly(t *testing.T) {
	f := newCommentFixture(t)
	ctx := context.Background()

	comment, err := f.svc.Create(ctx, f.reader.ID, f.blog.ID, &usecase.CreateCommentInput{Text: "mine"})
	require.NoError(t, err)

	err = f.svc.Delete(ctx, f.author.ID, comment.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	require.NoError(t, f.svc.Delete(ctx, f.reader.ID, comment.ID))

	stored, err := f.blogRepo.FindByID(ctx, f.blog.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.CommentsCount)

	err = f.svc.Delete(ctx, f.reader.ID, comment.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
}
