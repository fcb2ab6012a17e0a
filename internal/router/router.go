// Package router builds the Echo instance: global middleware in order,
// the /games routes and the system routes.
package router

import (
	"net/http"

	"github.com/deppfellow/games-api/internal/handler"
	"github.com/deppfellow/games-api/internal/middleware"
	"github.com/deppfellow/games-api/internal/model"
	"github.com/deppfellow/games-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter returns a fully wired Echo instance for s.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.Recover(),
		middleware.RequestID(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Metrics.Record(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, s, h)
	registerGameRoutes(router, h)

	return router
}

func registerGameRoutes(r *echo.Echo, h *handler.Handlers) {
	games := r.Group("/games")

	games.GET("", handler.Handle(h.Game.Handler, h.Game.ListGames, http.StatusOK, &model.ListGamesRequest{}))
	games.POST("", handler.Handle(h.Game.Handler, h.Game.CreateGame, http.StatusCreated, &model.CreateGameRequest{}))
	games.DELETE("/:id", handler.Handle(h.Game.Handler, h.Game.DeleteGame, http.StatusOK, &model.DeleteGameRequest{}))
}
