// Package model holds the persisted record shapes and their API projections.
package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Game is the one persisted record: {_id, text}.
//
// ID is assigned by the store on insert. Text is stored exactly as the client
// sent it; blank text never reaches the store.
type Game struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Text string             `bson:"text"`
}

// Page restricts a listing. The zero value lists everything.
type Page struct {
	Limit int64
	Skip  int64
}

// GameResponse is the client-facing projection of a Game.
// Store-internal fields beyond id and text are never exposed.
type GameResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// ToResponse projects a Game for the API.
func (g Game) ToResponse() GameResponse {
	return GameResponse{
		ID:   g.ID.Hex(),
		Text: g.Text,
	}
}

// ToResponses projects a slice of games. The result is never nil so an empty
// collection serializes as [].
func ToResponses(games []Game) []GameResponse {
	responses := make([]GameResponse, 0, len(games))
	for _, game := range games {
		responses = append(responses, game.ToResponse())
	}
	return responses
}
