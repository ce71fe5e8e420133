package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"novablog/internal/domain/entity"
	"novablog/internal/domain/repository"
	"novablog/internal/infra/persistence/model"
)

// blogRepository implements the repository.BlogRepository interface on the
// blogs collection.
type blogRepository struct {
	coll *mongo.Collection
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *mongo.Database) repository.BlogRepository {
	return &blogRepository{coll: db.Collection(blogsCollection)}
}

// Create persists a new blog post.
func (repo *blogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	now := time.Now().UTC()
	if blog.ID == uuid.Nil {
		blog.ID = uuid.New()
	}
	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = now
	}
	if blog.UpdatedAt.IsZero() {
		blog.UpdatedAt = now
	}

	if _, err := repo.coll.InsertOne(ctx, model.FromBlogDomain(blog)); err != nil {
		return errors.Wrap(err, "failed to create blog")
	}

	return nil
}

// FindByID retrieves a single post by its unique ID.
func (repo *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	var blogM model.BlogModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&blogM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog by id")
	}

	return model.ToBlogDomain(&blogM), nil
}

// FindAll retrieves every post, newest first.
func (repo *blogRepository) FindAll(ctx context.Context) ([]*entity.Blog, error) {
	return repo.find(ctx, bson.M{})
}

// FindByOwner retrieves the posts owned by the given account, newest first.
func (repo *blogRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Blog, error) {
	return repo.find(ctx, bson.M{"userId": ownerID.String()})
}

func (repo *blogRepository) find(ctx context.Context, filter bson.M) ([]*entity.Blog, error) {
	cursor, err := repo.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find blogs")
	}

	var models []model.BlogModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode blogs")
	}

	blogs := make([]*entity.Blog, len(models))
	for i := range models {
		blogs[i] = model.ToBlogDomain(&models[i])
	}

	return blogs, nil
}

// Update replaces the mutable fields of an existing post. The owner reference
// is deliberately absent from the update document.
func (repo *blogRepository) Update(ctx context.Context, blog *entity.Blog) error {
	blogM := model.FromBlogDomain(blog)

	update := bson.M{"$set": bson.M{
		"title":        blogM.Title,
		"thumbnailUrl": blogM.ThumbnailURL,
		"tags":         blogM.Tags,
		"description":  blogM.Description,
		"updatedAt":    blogM.UpdatedAt,
	}}

	result, err := repo.coll.UpdateOne(ctx, bson.M{"_id": blogM.ID}, update)
	if err != nil {
		return errors.Wrap(err, "failed to update blog")
	}
	if result.MatchedCount == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}

// Delete removes a post by ID.
func (repo *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return errors.Wrap(err, "failed to delete blog")
	}
	if result.DeletedCount == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}

// IncrementViews atomically bumps the view counter and returns the new value.
func (repo *blogRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	var blogM model.BlogModel
	err := repo.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id.String()},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&blogM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, repository.ErrBlogNotFound
		}

		return 0, errors.Wrap(err, "failed to increment blog views")
	}

	return blogM.Views, nil
}

// ToggleLike atomically flips the user's membership in the like set with a
// single pipeline update, so concurrent toggles by different users cannot
// clobber each other. The counter is recomputed from the set in the same
// write.
func (repo *blogRepository) ToggleLike(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Blog, error) {
	raw := userID.String()

	pipeline := bson.A{
		bson.M{"$set": bson.M{"likes": bson.M{"$cond": bson.A{
			bson.M{"$in": bson.A{raw, "$likes"}},
			bson.M{"$filter": bson.M{
				"input": "$likes",
				"cond":  bson.M{"$ne": bson.A{"$$this", raw}},
			}},
			bson.M{"$concatArrays": bson.A{"$likes", bson.A{raw}}},
		}}}},
		bson.M{"$set": bson.M{"likesCount": bson.M{"$size": "$likes"}}},
	}

	var blogM model.BlogModel
	err := repo.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id.String()},
		pipeline,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&blogM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to toggle blog like")
	}

	return model.ToBlogDomain(&blogM), nil
}

// AdjustCommentsCount atomically adds delta to the comment counter.
func (repo *blogRepository) AdjustCommentsCount(ctx context.Context, id uuid.UUID, delta int) error {
	result, err := repo.coll.UpdateOne(ctx, bson.M{"_id": id.String()}, bson.M{"$inc": bson.M{"commentsCount": delta}})
	if err != nil {
		return errors.Wrap(err, "failed to adjust blog comments count")
	}
	if result.MatchedCount == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}
