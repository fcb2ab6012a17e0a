package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/games-api/internal/config"
	"github.com/deppfellow/games-api/internal/metrics"
	"github.com/deppfellow/games-api/internal/middleware"
	"github.com/deppfellow/games-api/internal/model"
	"github.com/deppfellow/games-api/internal/server"
	"github.com/deppfellow/games-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	logger := zerolog.Nop()
	return &server.Server{
		Config:  cfg,
		Logger:  &logger,
		Metrics: metrics.NewRecorder(),
	}
}

// newGameEcho registers the game routes on a bare Echo instance backed by store.
func newGameEcho(t *testing.T, store service.GameStore) *echo.Echo {
	t.Helper()
	return newGameEchoWithLog(t, store, io.Discard)
}

// newGameEchoWithLog is newGameEcho with request logs written to w.
func newGameEchoWithLog(t *testing.T, store service.GameStore, w io.Writer) *echo.Echo {
	t.Helper()

	s := newTestServer(t)
	h := NewGameHandler(s, service.NewGameService(store))

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(s).GlobalErrorHandler

	requestLogger := zerolog.New(w)
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.LoggerKey, &requestLogger)
			return next(c)
		}
	})

	e.GET("/games", Handle(h.Handler, h.ListGames, http.StatusOK, &model.ListGamesRequest{}))
	e.POST("/games", Handle(h.Handler, h.CreateGame, http.StatusCreated, &model.CreateGameRequest{}))
	e.DELETE("/games/:id", Handle(h.Handler, h.DeleteGame, http.StatusOK, &model.DeleteGameRequest{}))

	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	contentType := ""
	if body != "" {
		contentType = echo.MIMEApplicationJSON
	}
	return doWithContentType(e, method, target, body, contentType)
}

func doWithContentType(e *echo.Echo, method, target, body, contentType string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}
