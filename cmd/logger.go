package cmd

import (
	"log/slog"
	"os"
	"strings"

	console "github.com/phsym/console-slog"
	"gitlab.com/begraf/figconv/config"
)

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogger returns a console logger on stderr honouring the configured level.
func newLogger() *slog.Logger {
	return slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level:      parseLevel(config.LogLevel()),
		TimeFormat: "15:04:05",
		NoColor:    noColor(),
	}))
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}
