package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Log is usable before Init so packages can log from tests.
var Log = slog.Default()

// Init installs the JSON handler used in every environment.
// GIN_MODE=release raises the level to info.
func Init(mode string) {
	level := slog.LevelDebug
	if strings.EqualFold(mode, "release") {
		level = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
