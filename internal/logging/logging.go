// Package logging configures colored structured logging with tint and,
// optionally, best-effort persistence of log records to the document store's
// logs collection.
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"go.mongodb.org/mongo-driver/mongo"
)

// Setup configures colored logging at the level from the LOG_LEVEL env var.
func Setup() {
	slog.SetDefault(slog.New(consoleHandler()))
}

// SetupWithStore configures colored logging that also persists records to
// the given collection. The returned handler should be closed on shutdown to
// flush pending records.
func SetupWithStore(collection *mongo.Collection) *StoreHandler {
	handler := NewStoreHandler(consoleHandler(), collection)
	slog.SetDefault(slog.New(handler))
	return handler
}

func consoleHandler() slog.Handler {
	return tint.NewHandler(os.Stderr, &tint.Options{
		Level:      levelFromEnv(),
		TimeFormat: time.Kitchen,
	})
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
