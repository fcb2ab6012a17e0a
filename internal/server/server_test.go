package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/games-api/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	logger := zerolog.Nop()
	return &Server{Config: cfg, Logger: &logger}
}

func TestStartWithoutSetup(t *testing.T) {
	s := testServer(t)
	assert.EqualError(t, s.Start(), "HTTP server not initialized")
}

func TestServeAndShutdown(t *testing.T) {
	s := testServer(t)
	s.SetupHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}))

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.Serve(listener) }()

	resp, err := http.Get(fmt.Sprintf("http://%s/", listener.Addr()))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))
	require.NoError(t, <-done)
}

func TestSetupHTTPServerTimeouts(t *testing.T) {
	s := testServer(t)
	s.SetupHTTPServer(http.NotFoundHandler())

	assert.Equal(t, ":80", s.httpServer.Addr)
	assert.Equal(t, 30*time.Second, s.httpServer.ReadTimeout)
	assert.Equal(t, 60*time.Second, s.httpServer.IdleTimeout)
}
