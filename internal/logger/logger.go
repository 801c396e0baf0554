package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/polkiloo/foodfront/internal/config"
)

// Format selects the slog handler.
type Format int

const (
	JSON Format = iota
	Text
)

// New creates a logger writing to w. Attributes added later are kept by either format.
func New(w io.Writer, level slog.Level, format Format) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == Text {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Discard drops every record. Used where no logger was injected.
func Discard() *slog.Logger {
	return New(io.Discard, slog.LevelError, JSON)
}

// Development runs log as text so it stays readable next to the dev proxy output.
func fromConfig(cfg *config.Config) *slog.Logger {
	format := JSON
	if cfg.IsDevelopment() {
		format = Text
	}
	return New(os.Stdout, cfg.LogLevel, format).With(slog.String("service", "foodfront"))
}
