package logger

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
)

// NewStoreLogger creates the logger used for document store command output.
func NewStoreLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "2006-01-02 15:04:05",
	}).Level(level).With().Timestamp().Str("component", "mongo").Logger()
}

// NewCommandMonitor returns a Mongo command monitor that logs every command.
//
// Commands at or above slowThreshold are logged at warn level, failures at
// error level, everything else at debug level. A zero threshold disables
// slow command detection.
func NewCommandMonitor(logger zerolog.Logger, slowThreshold time.Duration) *event.CommandMonitor {
	return &event.CommandMonitor{
		Started: func(_ context.Context, evt *event.CommandStartedEvent) {
			logger.Debug().
				Str("command", evt.CommandName).
				Str("database", evt.DatabaseName).
				Int64("request_id", evt.RequestID).
				Msg("mongo command started")
		},
		Succeeded: func(_ context.Context, evt *event.CommandSucceededEvent) {
			e := logger.Debug()
			if slowThreshold > 0 && evt.Duration >= slowThreshold {
				e = logger.Warn().Bool("slow", true)
			}

			e.Str("command", evt.CommandName).
				Str("database", evt.DatabaseName).
				Int64("request_id", evt.RequestID).
				Dur("duration", evt.Duration).
				Msg("mongo command succeeded")
		},
		Failed: func(_ context.Context, evt *event.CommandFailedEvent) {
			logger.Error().
				Str("command", evt.CommandName).
				Str("database", evt.DatabaseName).
				Int64("request_id", evt.RequestID).
				Dur("duration", evt.Duration).
				Str("failure", evt.Failure).
				Msg("mongo command failed")
		},
	}
}

// GetStoreMonitorLevel maps the application log level to the level used by
// the command monitor logger.
func GetStoreMonitorLevel(level zerolog.Level) zerolog.Level {
	if level <= zerolog.DebugLevel {
		return zerolog.DebugLevel
	}
	return zerolog.WarnLevel
}
