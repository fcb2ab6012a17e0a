package handler

import (
	"github.com/deppfellow/games-api/internal/errs"
	"github.com/deppfellow/games-api/internal/middleware"
	"github.com/deppfellow/games-api/internal/model"
	"github.com/deppfellow/games-api/internal/server"
	"github.com/deppfellow/games-api/internal/service"
	"github.com/labstack/echo/v4"
)

const (
	MessageGameSaved   = "Game saved"
	MessageGameDeleted = "Deleted game!"

	MessageLoadFailed   = "Failed to load games."
	MessageSaveFailed   = "Failed to save game."
	MessageDeleteFailed = "Failed to delete game."
)

// GameHandler serves the /games resource.
type GameHandler struct {
	Handler
	gameService *service.GameService
}

func NewGameHandler(s *server.Server, gameService *service.GameService) *GameHandler {
	return &GameHandler{
		Handler:     NewHandler(s),
		gameService: gameService,
	}
}

// storeFailure hides err behind a generic 500 with message. The cause is
// kept for logging only.
func storeFailure(message string, err error) error {
	return errs.NewInternalServerError().WithMessage(message).WithCause(err)
}

// ListGames handles GET /games.
func (h *GameHandler) ListGames(c echo.Context, req *model.ListGamesRequest) (*model.ListGamesResponse, error) {
	games, err := h.gameService.ListGames(c.Request().Context(), req.Page())
	if err != nil {
		return nil, storeFailure(MessageLoadFailed, err)
	}
	return &model.ListGamesResponse{Games: games}, nil
}

// CreateGame handles POST /games. The text is stored untrimmed.
func (h *GameHandler) CreateGame(c echo.Context, req *model.CreateGameRequest) (*model.CreateGameResponse, error) {
	game, err := h.gameService.CreateGame(c.Request().Context(), req.Text)
	if err != nil {
		return nil, storeFailure(MessageSaveFailed, err)
	}

	middleware.GetLogger(c).Info().Str("game_id", game.ID).Msg("game saved")

	return &model.CreateGameResponse{Message: MessageGameSaved, Game: game}, nil
}

// DeleteGame handles DELETE /games/:id. Deleting an id that does not exist
// succeeds.
func (h *GameHandler) DeleteGame(c echo.Context, req *model.DeleteGameRequest) (*model.MessageResponse, error) {
	if err := h.gameService.DeleteGame(c.Request().Context(), req.ID); err != nil {
		return nil, storeFailure(MessageDeleteFailed, err)
	}
	return &model.MessageResponse{Message: MessageGameDeleted}, nil
}
