package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Options struct {
	Service   string
	Env       string
	Level     string
	AddSource bool
	// Output defaults to stdout.
	Output io.Writer
}

func New(opts Options) *slog.Logger {
	level := parseLevel(opts.Level)

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	h := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: opts.AddSource,
	})

	base := slog.New(h).With(
		"service", opts.Service,
		"env", opts.Env,
	)

	slog.SetDefault(base)
	return base
}

func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func parseLevel(lvl string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
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
