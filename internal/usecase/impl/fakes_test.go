package impl

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"novablog/internal/domain/entity"
	"novablog/internal/domain/repository"
	"novablog/internal/domain/service"
)

// In-memory repository fakes. They mirror the store contracts, including the
// duplicate-email behavior and the sentinel errors, so the services can be
// exercised without a running database.

type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u

		return &cp, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u

			return &cp, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) FindByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[uuid.UUID]*entity.User, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			cp := *u
			out[id] = &cp
		}
	}

	return out, nil
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrEmailTaken
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	cp := *user
	r.users[user.ID] = &cp

	return nil
}

type memBlogRepo struct {
	mu        sync.Mutex
	blogs     map[uuid.UUID]*entity.Blog
	adjustErr error
}

func newMemBlogRepo() *memBlogRepo {
	return &memBlogRepo{blogs: make(map[uuid.UUID]*entity.Blog)}
}

func (r *memBlogRepo) Create(_ context.Context, blog *entity.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if blog.ID == uuid.Nil {
		blog.ID = uuid.New()
	}
	now := time.Now().UTC()
	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = now
		blog.UpdatedAt = now
	}
	cp := *blog
	r.blogs[blog.ID] = &cp

	return nil
}

func (r *memBlogRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.blogs[id]; ok {
		cp := *b

		return &cp, nil
	}

	return nil, repository.ErrBlogNotFound
}

func (r *memBlogRepo) FindAll(_ context.Context) ([]*entity.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.sortedLocked(func(*entity.Blog) bool { return true }), nil
}

func (r *memBlogRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.sortedLocked(func(b *entity.Blog) bool { return b.UserID == ownerID }), nil
}

func (r *memBlogRepo) sortedLocked(keep func(*entity.Blog) bool) []*entity.Blog {
	out := make([]*entity.Blog, 0, len(r.blogs))
	for _, b := range r.blogs {
		if keep(b) {
			cp := *b
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out
}

func (r *memBlogRepo) Update(_ context.Context, blog *entity.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.blogs[blog.ID]
	if !ok {
		return repository.ErrBlogNotFound
	}
	stored.Title = blog.Title
	stored.ThumbnailURL = blog.ThumbnailURL
	stored.Tags = blog.Tags
	stored.Description = blog.Description
	stored.UpdatedAt = blog.UpdatedAt

	return nil
}

func (r *memBlogRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.blogs[id]; !ok {
		return repository.ErrBlogNotFound
	}
	delete(r.blogs, id)

	return nil
}

func (r *memBlogRepo) IncrementViews(_ context.Context, id uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.blogs[id]
	if !ok {
		return 0, repository.ErrBlogNotFound
	}
	b.Views++

	return b.Views, nil
}

func (r *memBlogRepo) ToggleLike(_ context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.blogs[id]
	if !ok {
		return nil, repository.ErrBlogNotFound
	}
	b.ToggleLike(userID)
	cp := *b
	cp.Likes = append([]uuid.UUID(nil), b.Likes...)

	return &cp, nil
}

func (r *memBlogRepo) AdjustCommentsCount(_ context.Context, id uuid.UUID, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.adjustErr != nil {
		return r.adjustErr
	}
	b, ok := r.blogs[id]
	if !ok {
		return repository.ErrBlogNotFound
	}
	b.CommentsCount += delta

	return nil
}

type memCommentRepo struct {
	mu       sync.Mutex
	comments map[uuid.UUID]*entity.Comment
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: make(map[uuid.UUID]*entity.Comment)}
}

func (r *memCommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}
	cp := *comment
	r.comments[comment.ID] = &cp

	return nil
}

func (r *memCommentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cm, ok := r.comments[id]; ok {
		cp := *cm

		return &cp, nil
	}

	return nil, repository.ErrCommentNotFound
}

func (r *memCommentRepo) FindByBlog(_ context.Context, blogID uuid.UUID) ([]*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Comment, 0)
	for _, cm := range r.comments {
		if cm.BlogID == blogID {
			cp := *cm
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}

func (r *memCommentRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[id]; !ok {
		return repository.ErrCommentNotFound
	}
	delete(r.comments, id)

	return nil
}

// fakeTokenService issues predictable tokens for service tests.
type fakeTokenService struct {
	issued string
	err    error
}

func (f *fakeTokenService) Issue(uuid.UUID, string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.issued == "" {
		return "token", nil
	}

	return f.issued, nil
}

func (f *fakeTokenService) Verify(string) (*service.TokenClaims, error) {
	return nil, errors.New("verify is not exercised through the services")
}
