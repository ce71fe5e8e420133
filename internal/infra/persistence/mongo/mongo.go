// Package mongo contains the concrete implementation of the persistence layer
// using the official MongoDB driver.
package mongo

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"novablog/config"
	"novablog/internal/domain/lifecycle"
)

const (
	usersCollection    = "users"
	blogsCollection    = "blogs"
	commentsCollection = "comments"
)

// Params holds dependencies for the mongo connection, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New connects to the document store, verifies the connection, and ensures
// the indexes the application relies on. The client disconnects on shutdown.
func New(params Params) (*mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongo")
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, errors.Wrap(err, "failed to ping mongo")
	}

	db := client.Database(params.Config.Mongo.Database)

	if err := ensureIndexes(connectCtx, db); err != nil {
		return nil, err
	}

	params.Logger.Info("Connected to mongo", slog.String("database", params.Config.Mongo.Database))

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(client.Disconnect(stopCtx), "failed to disconnect from mongo")
		},
	})

	return db, nil
}

// ensureIndexes creates the indexes the repositories depend on. The unique
// email index is the source of truth for sign-up races: two concurrent
// sign-ups for the same email resolve here, not in application code.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create unique email index")
	}

	_, err = db.Collection(blogsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create blog owner index")
	}

	_, err = db.Collection(commentsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "blogId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create comment blog index")
	}

	return nil
}
