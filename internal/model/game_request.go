package model

import (
	"github.com/deppfellow/games-api/internal/validation"
)

// ListGamesRequest is the optional paging of GET /games.
// Zero values mean "no limit" and "skip nothing".
type ListGamesRequest struct {
	Limit int64 `query:"limit" validate:"gte=0,lte=1000"`
	Skip  int64 `query:"skip" validate:"gte=0"`
}

func (r *ListGamesRequest) Validate() error {
	return validation.Struct(r)
}

func (r *ListGamesRequest) ValidationMessage() string {
	return "Invalid pagination parameters."
}

// Page converts the request into a repository page.
func (r *ListGamesRequest) Page() Page {
	return Page{Limit: r.Limit, Skip: r.Skip}
}

// CreateGameRequest is the body of POST /games.
//
// Text must be present and non-blank after trimming; the untrimmed value is
// what gets stored.
type CreateGameRequest struct {
	Text string `json:"text" validate:"required,notblank"`
}

func (r *CreateGameRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateGameRequest) ValidationMessage() string {
	return "Invalid game name."
}

// DeleteGameRequest carries the :id path segment of DELETE /games/:id.
// The identifier is deliberately not format-checked here.
type DeleteGameRequest struct {
	ID string `param:"id"`
}

func (r *DeleteGameRequest) Validate() error {
	return nil
}

// CreateGameResponse is the 201 body of POST /games.
type CreateGameResponse struct {
	Message string       `json:"message"`
	Game    GameResponse `json:"game"`
}

// ListGamesResponse is the 200 body of GET /games.
type ListGamesResponse struct {
	Games []GameResponse `json:"games"`
}

// MessageResponse is a body carrying only a message.
type MessageResponse struct {
	Message string `json:"message"`
}
