// Package fern reads application configuration from environment variables.
//
// An Env is built once at startup and then queried for individual settings.
// Each query names one or more candidate variables; the first one present in
// the environment wins. When none is present the query falls back to a
// mode-specific default, then to a static default, and otherwise fails with
// ErrMissingVariable.
//
// # Modes
//
// An Env may be bound to a mode variable (for example APP_MODE) and a list of
// valid modes. The first valid mode applies when the variable is unset. Mode
// defaults let a setting have a harmless fallback in development while staying
// mandatory in production:
//
//	env := fern.New(fern.WithMode("APP_MODE", "dev", "prod"))
//	secret, err := env.String(fern.Key("SECRET_KEY"),
//	    fern.ModeDefaults(map[string]string{"dev": "dev secret"}))
//
// With APP_MODE unset this returns "dev secret"; with APP_MODE=prod and
// SECRET_KEY unset it fails. A mode variable holding an unknown mode makes
// every lookup on that Env fail with ErrInvalidMode.
//
// # Coercion
//
// Values read from the environment are passed through a coerce.Func. Defaults
// are already typed and are returned as given, never coerced.
package fern
