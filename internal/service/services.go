package service

import (
	"github.com/deppfellow/games-api/internal/repository"
	"github.com/deppfellow/games-api/internal/server"
)

// Services groups the business layer.
type Services struct {
	Game *GameService
}

// NewServices wires every service to its repository.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Game: NewGameService(repos.Game),
	}, nil
}
