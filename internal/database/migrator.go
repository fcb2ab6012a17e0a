package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
)

// Migrate prepares the database for the service.
//
// MongoDB creates collections lazily on first insert, so the only schema work
// is making sure the games collection exists before the first request (an
// empty listing then hits a real collection). Running it twice is a no-op.
func Migrate(ctx context.Context, logger *zerolog.Logger, db *Database) error {
	names, err := db.Database.ListCollectionNames(ctx, bson.D{{Key: "name", Value: GamesCollection}})
	if err != nil {
		return fmt.Errorf("listing collections: %w", err)
	}

	if len(names) > 0 {
		logger.Info().Str("collection", GamesCollection).Msg("database schema up to date")
		return nil
	}

	if err := db.Database.CreateCollection(ctx, GamesCollection); err != nil {
		return fmt.Errorf("creating collection %s: %w", GamesCollection, err)
	}

	logger.Info().Str("collection", GamesCollection).Msg("created collection")
	return nil
}
