package main

import (
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/sagarc03/storeopts/config"
)

// newLogHandler writes to w as colored text, or as JSON with a UTC "ts"
// field when machine is set.
func newLogHandler(w io.Writer, level slog.Level, machine bool) slog.Handler {
	if !machine {
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			AddSource:  level <= slog.LevelDebug,
			TimeFormat: time.TimeOnly,
		})
	}

	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key != slog.TimeKey {
				return a
			}
			return slog.String("ts", a.Value.Time().UTC().Format(time.RFC3339Nano))
		},
	})
}

// setupLogging installs the default logger on stderr, keeping stdout for
// command results. STOREOPTS_ENV=prod switches to JSON.
func setupLogging(cfg config.LogConfig) {
	switch os.Getenv("STOREOPTS_ENV") {
	case "prod", "production":
		slog.SetDefault(slog.New(newLogHandler(os.Stderr, cfg.SlogLevel(), true)))
	default:
		slog.SetDefault(slog.New(newLogHandler(os.Stderr, cfg.SlogLevel(), false)))
	}

	log.SetFlags(0)
	log.SetOutput(slog.NewLogLogger(slog.Default().Handler(), slog.LevelInfo).Writer())
}
