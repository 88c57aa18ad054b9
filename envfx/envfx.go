// Package envfx provides an Fx module exposing a fern.Env to the DI container.
package envfx

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/fern"
	"github.com/0xalexb/fern/config"
	"github.com/0xalexb/fern/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// NewModule creates an Fx module providing a *fern.Env built from opts and a
// *slog.Logger whose level comes from that Env. The mode is resolved when the
// Env is constructed, so an invalid mode fails application startup.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...fern.Option) fx.Option {
	return fx.Module("fern",
		fx.Provide(
			func() (*fern.Env, error) {
				env := fern.New(opts...)

				_, err := env.Mode()
				if err != nil {
					return nil, fmt.Errorf("resolving mode: %w", err)
				}

				return env, nil
			},
			func(env *fern.Env) (*slog.Logger, error) {
				return logging.FromEnv(env, os.Stderr)
			},
		),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
	)
}

// Config provides T to the container, loaded from the *fern.Env with config.Provider.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Config[T config.Loader](target T) fx.Option {
	return fx.Provide(config.Provider(target))
}
