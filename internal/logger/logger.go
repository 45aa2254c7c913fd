package logger

import (
	"log/slog"
	"os"
)

// New builds the service-wide JSON logger writing to stdout at info level.
func New() *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
