package logging

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/0xalexb/fern"
	"github.com/0xalexb/fern/coerce"
)

// LevelKey is the variable holding the log level.
const LevelKey = "LOG_LEVEL"

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level slog.Level
}

// NewLogger creates a new slog.Logger with JSON handler and the specified output.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       config.Level,
		ReplaceAttr: nil,
	})

	return slog.New(handler)
}

// ConfigFromEnv reads LOG_LEVEL from env.
// When unset, the level is DEBUG in the "dev" mode and INFO otherwise.
func ConfigFromEnv(env *fern.Env) (LoggerConfig, error) {
	level, err := fern.Lookup(env, fern.Key(LevelKey), coerce.LogLevel,
		fern.ModeDefaults(map[string]slog.Level{"dev": slog.LevelDebug}),
		fern.Default(slog.LevelInfo),
	)
	if err != nil {
		return LoggerConfig{}, fmt.Errorf("reading log level: %w", err)
	}

	return LoggerConfig{Level: level}, nil
}

// FromEnv creates a logger writing to w at the level configured in env.
func FromEnv(env *fern.Env, w io.Writer) (*slog.Logger, error) {
	config, err := ConfigFromEnv(env)
	if err != nil {
		return nil, err
	}

	return NewLogger(config, w), nil
}
