package middleware

import (
	"time"

	"github.com/deppfellow/games-api/internal/metrics"
	"github.com/labstack/echo/v4"
)

// MetricsMiddleware feeds request counts and latencies into Prometheus.
type MetricsMiddleware struct {
	recorder *metrics.Recorder
}

func NewMetricsMiddleware(recorder *metrics.Recorder) *MetricsMiddleware {
	return &MetricsMiddleware{recorder: recorder}
}

// Record observes every request under its route template (c.Path()), so
// /games/:id stays one series regardless of the id. Unmatched routes are
// grouped under "unmatched".
func (m *MetricsMiddleware) Record() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			status := c.Response().Status
			if err != nil {
				status = statusFromError(err)
			}

			m.recorder.RecordHTTPRequest(c.Request().Method, route, status, time.Since(start))
			return err
		}
	}
}
