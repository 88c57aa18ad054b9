package config

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/fern"
)

// Loader defines an interface for reading a configuration structure from an Env.
type Loader interface {
	Load(env *fern.Env) error
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that loads, sets defaults, and validates configuration.
// T is usually a pointer to a struct implementing Loader.
func Provider[T Loader](target T) func(*fern.Env) (T, error) {
	return func(env *fern.Env) (T, error) {
		var zero T

		err := target.Load(env)
		if err != nil {
			return zero, fmt.Errorf("loading error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("type", fmt.Sprintf("%T", target)))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return zero, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}
