package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/games-api/internal/metrics"
	"github.com/deppfellow/games-api/internal/model"
	"github.com/deppfellow/games-api/internal/storeerr"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GameRepository exposes list/insert/delete-by-id over the games collection.
//
// The underlying *mongo.Collection is safe for concurrent use, so one
// repository is shared by all requests.
type GameRepository struct {
	collection *mongo.Collection
	metrics    *metrics.Recorder
}

// NewGameRepository wraps a collection. recorder may be nil.
func NewGameRepository(collection *mongo.Collection, recorder *metrics.Recorder) *GameRepository {
	return &GameRepository{
		collection: collection,
		metrics:    recorder,
	}
}

// ListAll returns the games in store order, restricted by page.
func (r *GameRepository) ListAll(ctx context.Context, page model.Page) (games []model.Game, err error) {
	defer r.observe("list", time.Now(), &err)

	findOptions := options.Find()
	if page.Skip > 0 {
		findOptions.SetSkip(page.Skip)
	}
	if page.Limit > 0 {
		findOptions.SetLimit(page.Limit)
	}

	cursor, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, storeerr.Wrap(err, r.collection.Name(), "find games")
	}
	defer cursor.Close(ctx)

	games = []model.Game{}
	if err = cursor.All(ctx, &games); err != nil {
		return nil, storeerr.Wrap(err, r.collection.Name(), "decode games")
	}

	return games, nil
}

// Insert persists a new game with the given text and returns it with the
// identifier assigned on insert.
func (r *GameRepository) Insert(ctx context.Context, text string) (game model.Game, err error) {
	defer r.observe("insert", time.Now(), &err)

	game = model.Game{
		ID:   primitive.NewObjectID(),
		Text: text,
	}

	result, err := r.collection.InsertOne(ctx, game)
	if err != nil {
		return model.Game{}, storeerr.Wrap(err, r.collection.Name(), "insert game")
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		game.ID = id
	}

	return game, nil
}

// DeleteByID removes the game with the given hex identifier if present.
//
// Deleting an absent identifier succeeds without reporting whether anything
// was removed. An identifier that is not a valid ObjectID cannot be looked up
// and is returned as an error.
func (r *GameRepository) DeleteByID(ctx context.Context, id string) (err error) {
	defer r.observe("delete", time.Now(), &err)

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return storeerr.Wrap(fmt.Errorf("game id %q: %w: %w", id, storeerr.ErrInvalidID, err), r.collection.Name(), "parse game id")
	}

	if _, err = r.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: objectID}}); err != nil {
		return storeerr.Wrap(err, r.collection.Name(), "delete game")
	}

	return nil
}

func (r *GameRepository) observe(operation string, start time.Time, err *error) {
	r.metrics.RecordStoreOperation(operation, time.Since(start), *err)
}
