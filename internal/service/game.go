package service

import (
	"context"

	"github.com/deppfellow/games-api/internal/model"
)

// GameStore is the record store surface the game service depends on.
// *repository.GameRepository implements it; tests substitute an in-memory store.
type GameStore interface {
	ListAll(ctx context.Context, page model.Page) ([]model.Game, error)
	Insert(ctx context.Context, text string) (model.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameService holds no state of its own; every call goes to the store.
type GameService struct {
	store GameStore
}

func NewGameService(store GameStore) *GameService {
	return &GameService{store: store}
}

// ListGames returns every stored game projected for the API.
func (s *GameService) ListGames(ctx context.Context, page model.Page) ([]model.GameResponse, error) {
	games, err := s.store.ListAll(ctx, page)
	if err != nil {
		return nil, err
	}
	return model.ToResponses(games), nil
}

// CreateGame stores text as given. Callers validate it first.
func (s *GameService) CreateGame(ctx context.Context, text string) (model.GameResponse, error) {
	game, err := s.store.Insert(ctx, text)
	if err != nil {
		return model.GameResponse{}, err
	}
	return game.ToResponse(), nil
}

// DeleteGame removes the game if it exists. Absent ids are not an error.
func (s *GameService) DeleteGame(ctx context.Context, id string) error {
	return s.store.DeleteByID(ctx, id)
}
