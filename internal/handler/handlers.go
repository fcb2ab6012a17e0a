package handler

import (
	"github.com/deppfellow/games-api/internal/server"
	"github.com/deppfellow/games-api/internal/service"
)

// Handlers groups all HTTP handlers so the router receives a single value.
type Handlers struct {
	Game    *GameHandler
	Health  *HealthHandler  // service and store health.
	OpenAPI *OpenAPIHandler // API documentation UI.
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Game:    NewGameHandler(s, services.Game),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
