package impl

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novablog/internal/domain/entity"
	domainerrors "novablog/internal/domain/errors"
	"novablog/internal/usecase"
)

type blogFixture struct {
	svc      usecase.BlogUsecase
	blogRepo *memBlogRepo
	userRepo *memUserRepo
	owner    *entity.User
	other    *entity.User
}

func newBlogFixture(t *testing.T) *blogFixture {
	t.Helper()

	userRepo := newMemUserRepo()
	blogRepo := newMemBlogRepo()

	owner := &entity.User{Email: "owner@example.com", Name: "Owner"}
	other := &entity.User{Email: "other@example.com", Name: "Other"}
	require.NoError(t, userRepo.Create(context.Background(), owner))
	require.NoError(t, userRepo.Create(context.Background(), other))

	svc := NewBlogService(BlogServiceParams{
		BlogRepo: blogRepo,
		UserRepo: userRepo,
		Logger:   slog.Default(),
	})

	return &blogFixture{svc: svc, blogRepo: blogRepo, userRepo: userRepo, owner: owner, other: other}
}

func (f *blogFixture) publish(t *testing.T, title string) *usecase.BlogView {
	t.Helper()

	view, err := f.svc.Create(context.Background(), f.owner.ID, &usecase.CreateBlogInput{
		Title:       title,
		Description: "body of " + title,
		Tags:        []string{"go"},
	})
	require.NoError(t, err)

	return view
}

func TestBlogService_Create(t *testing.T) {
	f := newBlogFixture(t)

	view := f.publish(t, "First Post")

	assert.Equal(t, f.owner.ID, view.UserID)
	assert.NotEqual(t, uuid.Nil, view.ID)
	require.NotNil(t, view.Author)
	assert.Equal(t, "Owner", view.Author.Name)
	assert.Empty(t, view.Likes)
	assert.Zero(t, view.Views)
}

func TestBlogService_Create_MissingTitle(t *testing.T) {
	f := newBlogFixture(t)

	_, err := f.svc.Create(context.Background(), f.owner.ID, &usecase.CreateBlogInput{
		Description: "no title",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestBlogService_MissingBody(t *testing.T) {
	f := newBlogFixture(t)
	ctx := context.Background()
	view := f.publish(t, "First Post")

	var appErr domainerrors.AppError

	_, err := f.svc.Create(ctx, f.owner.ID, nil)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

	_, err = f.svc.Update(ctx, f.owner.ID, view.ID, nil)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestBlogService_Get_NotFound(t *testing.T) {
	f := newBlogFixture(t)

	_, err := f.svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrBlogNotFound)
}

func TestBlogService_Update_OwnerOnly(t *testing.T) {
	f := newBlogFixture(t)
	ctx := context.Background()
	view := f.publish(t, "First Post")

	newTitle := "Edited Post"
	_, err := f.svc.Update(ctx, f.other.ID, view.ID, &usecase.UpdateBlogInput{Title: &newTitle})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	updated, err := f.svc.Update(ctx, f.owner.ID, view.ID, &usecase.UpdateBlogInput{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Edited Post", updated.Title)
	// Fields absent from the input stay untouched.
	assert.Equal(t, "body of First Post", updated.Description)
	assert.Equal(t, f.owner.ID, updated.UserID)
}

func TestBlogService_Delete_OwnerOnly(t *testing.T) {
	f := newBlogFixture(t)
	ctx := context.Background()
	view := f.publish(t, "First Post")

	err := f.svc.Delete(ctx, f.other.ID, view.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	require.NoError(t, f.svc.Delete(ctx, f.owner.ID, view.ID))

	_, err = f.svc.Get(ctx, view.ID)
	assert.ErrorIs(t, err, domainerrors.ErrBlogNotFound)
}

func TestBlogService_ListByOwner(t *testing.T) {
	f := newBlogFixture(t)
	ctx := context.Background()

	f.publish(t, "Mine")
	_, err := f.svc.Create(ctx, f.other.ID, &usecase.CreateBlogInput{
		Title:       "Theirs",
		Description: "not mine",
	})
	require.NoError(t, err)

	mine, err := f.svc.ListByOwner(ctx, f.owner.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Mine", mine[0].Title)

	all, err := f.svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestBlogService_TrackView(t *testing.T) {
	f := newBlogFixture(t)
	ctx := context.Background()
	view := f.publish(t, "First Post")

	views, err := f.svc.TrackView(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), views)

	views, err = f.svc.TrackView(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), views)

	_, err = f.svc.TrackView(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrBlogNotFound)
}

func TestBlogService_ToggleLike(t *testing.T) {
	f := newBlogFixture(t)
	ctx := context.Background()
	view := f.publish(t, "First Post")

	out, err := f.svc.ToggleLike(ctx, f.other.ID, view.ID)
	require.NoError(t, err)
	assert.True(t, out.Liked)
	assert.Equal(t, 1, out.LikesCount)

	// Same user toggling again removes the like.
	out, err = f.svc.ToggleLike(ctx, f.other.ID, view.ID)
	require.NoError(t, err)
	assert.False(t, out.Liked)
	assert.Equal(t, 0, out.LikesCount)

	// Likes are per-user: the owner's like does not clear the other's.
	_, err = f.svc.ToggleLike(ctx, f.owner.ID, view.ID)
	require.NoError(t, err)
	out, err = f.svc.ToggleLike(ctx, f.other.ID, view.ID)
	require.NoError(t, err)
	assert.True(t, out.Liked)
	assert.Equal(t, 2, out.LikesCount)
}

func TestBlogService_ToggleLike_ConcurrentUsersKeepBothLikes(t *testing.T) {
	f := newBlogFixture(t)
	ctx := context.Background()
	view := f.publish(t, "First Post")

	// Each like lands as a targeted flip at the store, so two users liking
	// at the same time must both stick.
	var wg sync.WaitGroup
	for _, userID := range []uuid.UUID{f.owner.ID, f.other.ID} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.ToggleLike(ctx, userID, view.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := f.blogRepo.FindByID(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.LikesCount)
	assert.True(t, stored.LikedBy(f.owner.ID))
	assert.True(t, stored.LikedBy(f.other.ID))
}
