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

// commentRepository implements the repository.CommentRepository interface on
// the comments collection.
type commentRepository struct {
	coll *mongo.Collection
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *mongo.Database) repository.CommentRepository {
	return &commentRepository{coll: db.Collection(commentsCollection)}
}

// Create persists a new comment.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}

	if _, err := repo.coll.InsertOne(ctx, model.FromCommentDomain(comment)); err != nil {
		return errors.Wrap(err, "failed to create comment")
	}

	return nil
}

// FindByID retrieves a single comment by its unique ID.
func (repo *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var commentM model.CommentModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&commentM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by id")
	}

	return model.ToCommentDomain(&commentM), nil
}

// FindByBlog retrieves the comments for a post, newest first.
func (repo *commentRepository) FindByBlog(ctx context.Context, blogID uuid.UUID) ([]*entity.Comment, error) {
	cursor, err := repo.coll.Find(
		ctx,
		bson.M{"blogId": blogID.String()},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find comments by blog")
	}

	var models []model.CommentModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode comments")
	}

	comments := make([]*entity.Comment, len(models))
	for i := range models {
		comments[i] = model.ToCommentDomain(&models[i])
	}

	return comments, nil
}

// Delete removes a comment by ID.
func (repo *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return errors.Wrap(err, "failed to delete comment")
	}
	if result.DeletedCount == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}
