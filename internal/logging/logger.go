// Package logging builds the slog loggers used across the webhook.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds logger configuration.
type Config struct {
	Level     slog.Level
	Format    string // "json" or "text"
	Output    io.Writer
	AddSource bool
}

// DefaultConfig reads the logger configuration from the environment.
//
// Lambda invocations log JSON and local runs log text; LOG_FORMAT overrides
// that choice. LOG_LEVEL accepts slog level names ("debug", "warn", "error+2").
// A non-empty DEBUG forces debug level and adds source locations.
func DefaultConfig() Config {
	return configFrom(os.Getenv)
}

func configFrom(getenv func(string) string) Config {
	cfg := Config{
		Level:  slog.LevelInfo,
		Format: "json",
		Output: os.Stdout,
	}

	if getenv("AWS_LAMBDA_FUNCTION_NAME") == "" {
		cfg.Format = "text"
	}
	if f := strings.ToLower(strings.TrimSpace(getenv("LOG_FORMAT"))); f == "json" || f == "text" {
		cfg.Format = f
	}

	if lvl := getenv("LOG_LEVEL"); lvl != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(lvl)); err == nil {
			cfg.Level = parsed
		}
	}
	if getenv("DEBUG") != "" {
		cfg.Level = slog.LevelDebug
		cfg.AddSource = true
	}

	return cfg
}

// New creates a configured slog.Logger.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
	}

	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(slog.NewTextHandler(out, opts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// WithComponent tags every record of logger with component.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	return logger.With("component", component)
}
