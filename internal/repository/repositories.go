package repository

import (
	"github.com/deppfellow/games-api/internal/database"
	"github.com/deppfellow/games-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Game *GameRepository
}

// NewRepositories constructs the repository container from the shared
// database handle and metrics recorder on s.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Game: NewGameRepository(s.DB.Collection(database.GamesCollection), s.Metrics),
	}
}
