// Package testutil provides in-memory stand-ins for the document store.
package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/deppfellow/games-api/internal/model"
	"github.com/deppfellow/games-api/internal/storeerr"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrStoreDown is returned by a MemoryGameStore whose Fail flag is set.
var ErrStoreDown = errors.New("store unavailable")

// MemoryGameStore is an in-memory GameStore that mirrors the repository's
// observable behavior, including silent deletes of absent ids and errors for
// malformed ids.
type MemoryGameStore struct {
	mu    sync.Mutex
	games []model.Game

	// Fail makes every operation return ErrStoreDown.
	Fail bool

	// Calls counts operations by name ("list", "insert", "delete").
	Calls map[string]int
}

func NewMemoryGameStore() *MemoryGameStore {
	return &MemoryGameStore{Calls: map[string]int{}}
}

func (m *MemoryGameStore) ListAll(_ context.Context, page model.Page) ([]model.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls["list"]++
	if m.Fail {
		return nil, ErrStoreDown
	}

	games := m.games
	if page.Skip > 0 {
		if page.Skip >= int64(len(games)) {
			games = nil
		} else {
			games = games[page.Skip:]
		}
	}
	if page.Limit > 0 && page.Limit < int64(len(games)) {
		games = games[:page.Limit]
	}

	return append([]model.Game{}, games...), nil
}

func (m *MemoryGameStore) Insert(_ context.Context, text string) (model.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls["insert"]++
	if m.Fail {
		return model.Game{}, ErrStoreDown
	}

	game := model.Game{ID: primitive.NewObjectID(), Text: text}
	m.games = append(m.games, game)
	return game, nil
}

func (m *MemoryGameStore) DeleteByID(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls["delete"]++
	if m.Fail {
		return ErrStoreDown
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return storeerr.Wrap(errors.Join(storeerr.ErrInvalidID, err), "games", "parse game id")
	}

	for i, game := range m.games {
		if game.ID == objectID {
			m.games = append(m.games[:i], m.games[i+1:]...)
			break
		}
	}
	return nil
}

// Len reports how many games are stored.
func (m *MemoryGameStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.games)
}
