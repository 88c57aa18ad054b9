package fern

import (
	"log/slog"

	"github.com/0xalexb/fern/source"
)

// Options holds construction settings for an Env.
type Options struct {
	ModeVariable string
	ValidModes   []string
	DefaultMode  string
	Source       source.Source
	Logger       *slog.Logger
}

// Option defines a function type for applying construction settings.
type Option func(*Options)

// WithMode binds the Env to the mode variable name.
// The first of validModes is used when the variable is unset.
// Without validModes, DefaultValidModes applies.
func WithMode(name string, validModes ...string) Option {
	return func(opts *Options) {
		opts.ModeVariable = name
		opts.ValidModes = append([]string(nil), validModes...)
	}
}

// WithDefaultMode overrides the mode used when the mode variable is unset.
// The mode must be one of the valid modes.
func WithDefaultMode(mode string) Option {
	return func(opts *Options) {
		opts.DefaultMode = mode
	}
}

// WithSource sets where variables are read from. Defaults to the process environment.
func WithSource(src source.Source) Option {
	return func(opts *Options) {
		opts.Source = src
	}
}

// WithLogger sets the logger used for debug tracing. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
