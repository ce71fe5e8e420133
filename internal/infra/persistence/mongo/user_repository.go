package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"novablog/internal/domain/entity"
	"novablog/internal/domain/repository"
	"novablog/internal/infra/persistence/model"
)

// userRepository implements the repository.UserRepository interface on the
// users collection.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{coll: db.Collection(usersCollection)}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return model.ToUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their lowercased email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return model.ToUserDomain(&userM), nil
}

// FindByIDs retrieves the users for the given IDs, keyed by ID.
func (repo *userRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.User, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]*entity.User{}, nil
	}

	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}

	cursor, err := repo.coll.Find(ctx, bson.M{"_id": bson.M{"$in": raw}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users by ids")
	}

	var models []model.UserModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode users")
	}

	users := make(map[uuid.UUID]*entity.User, len(models))
	for i := range models {
		user := model.ToUserDomain(&models[i])
		users[user.ID] = user
	}

	return users, nil
}

// Create persists a new user. A duplicate-key failure from the unique email
// index maps to ErrEmailTaken so a sign-up race never surfaces as a 500.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	if _, err := repo.coll.InsertOne(ctx, model.FromUserDomain(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrEmailTaken
		}

		return errors.Wrap(err, "failed to create user")
	}

	return nil
}
