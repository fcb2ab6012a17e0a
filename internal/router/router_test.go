package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/games-api/internal/config"
	"github.com/deppfellow/games-api/internal/handler"
	"github.com/deppfellow/games-api/internal/metrics"
	"github.com/deppfellow/games-api/internal/middleware"
	"github.com/deppfellow/games-api/internal/server"
	"github.com/deppfellow/games-api/internal/service"
	"github.com/deppfellow/games-api/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*echo.Echo, *testutil.MemoryGameStore) {
	t.Helper()

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	logger := zerolog.Nop()
	s := &server.Server{Config: cfg, Logger: &logger, Metrics: metrics.NewRecorder()}

	store := testutil.NewMemoryGameStore()
	services := &service.Services{Game: service.NewGameService(store)}

	return NewRouter(s, handler.NewHandlers(s, services)), store
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGamesRoutes(t *testing.T) {
	e, store := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/games", strings.NewReader(`{"text":"Chess"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := serve(e, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/games", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"text":"Chess"`)

	rec = serve(e, httptest.NewRequest(http.MethodDelete, "/games/507f1f77bcf86cd799439011", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 1, store.Calls["insert"])
	assert.Equal(t, 1, store.Calls["list"])
	assert.Equal(t, 1, store.Calls["delete"])
}

func TestCORSPreflight(t *testing.T) {
	e, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/games/507f1f77bcf86cd799439011", nil)
	req.Header.Set(echo.HeaderOrigin, "http://example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodDelete)
	rec := serve(e, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodDelete)
}

func TestUnknownRoute(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Route not found")
}

func TestMetricsEndpoint(t *testing.T) {
	e, _ := newTestRouter(t)

	serve(e, httptest.NewRequest(http.MethodGet, "/games", nil))
	rec := serve(e, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `games_api_http_requests_total{method="GET",route="/games",status="200"} 1`)
}

func TestStatusWithoutDatabase(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/status", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"unhealthy"`)
}
