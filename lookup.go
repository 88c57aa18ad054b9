package fern

import (
	"log/slog"

	"github.com/0xalexb/fern/coerce"
)

// Keys lists candidate variable names in order of preference.
type Keys []string

// Key returns Keys holding a single name.
func Key(name string) Keys {
	return Keys{name}
}

type request[T any] struct {
	def          T
	hasDefault   bool
	modeDefaults map[string]T
}

// LookupOption configures a single lookup.
type LookupOption[T any] func(*request[T])

// Default sets the value returned when no candidate variable is set and no
// mode default applies. It is returned as given.
func Default[T any](value T) LookupOption[T] {
	return func(req *request[T]) {
		req.def = value
		req.hasDefault = true
	}
}

// ModeDefaults sets per-mode fallback values, keyed by mode name. An entry for
// the current mode takes precedence over Default. Ignored when the Env has no
// mode variable.
func ModeDefaults[T any](defaults map[string]T) LookupOption[T] {
	return func(req *request[T]) {
		req.modeDefaults = defaults
	}
}

// Lookup resolves keys against env and converts the value found with convert.
//
// Values found in the environment go through convert; defaults are returned
// untouched. A nil convert is only valid when T is string.
func Lookup[T any](env *Env, keys Keys, convert coerce.Func[T], opts ...LookupOption[T]) (T, error) {
	var (
		req  request[T]
		zero T
	)

	for _, apply := range opts {
		apply(&req)
	}

	mode, err := env.Mode()
	if err != nil {
		return zero, err
	}

	key, raw, found := env.find(keys)
	if !found {
		return fallback(env, keys, mode, &req)
	}

	if convert == nil {
		val, isT := any(raw).(T)
		if !isT {
			return zero, &CoercionError{Key: key, Value: raw, Err: errNoCoercer}
		}

		return val, nil
	}

	val, err := convert(raw)
	if err != nil {
		return zero, &CoercionError{Key: key, Value: raw, Err: err}
	}

	return val, nil
}

func fallback[T any](env *Env, keys Keys, mode string, req *request[T]) (T, error) {
	if env.modeVar != "" {
		val, found := req.modeDefaults[mode]
		if found {
			env.logger.Debug("default applied",
				slog.Any("keys", []string(keys)),
				slog.String("kind", "mode"),
				slog.String("mode", mode),
			)

			return val, nil
		}
	}

	if req.hasDefault {
		env.logger.Debug("default applied",
			slog.Any("keys", []string(keys)),
			slog.String("kind", "static"),
		)

		return req.def, nil
	}

	var zero T

	return zero, &MissingVariableError{Keys: append(Keys(nil), keys...)}
}

// String returns the raw value of the first set variable in keys.
func (e *Env) String(keys Keys, opts ...LookupOption[string]) (string, error) {
	return Lookup[string](e, keys, nil, opts...)
}

// Integer is Lookup with coerce.Integer.
func (e *Env) Integer(keys Keys, opts ...LookupOption[int]) (int, error) {
	return Lookup[int](e, keys, coerce.Integer, opts...)
}

// Boolean is Lookup with coerce.Boolean.
func (e *Env) Boolean(keys Keys, opts ...LookupOption[bool]) (bool, error) {
	return Lookup[bool](e, keys, coerce.Boolean, opts...)
}

// CommaList is Lookup with coerce.CommaList.
func (e *Env) CommaList(keys Keys, opts ...LookupOption[[]string]) ([]string, error) {
	return Lookup[[]string](e, keys, coerce.CommaList, opts...)
}

// DatabaseURL is Lookup with coerce.DatabaseURL.
func (e *Env) DatabaseURL(keys Keys, opts ...LookupOption[coerce.Database]) (coerce.Database, error) {
	return Lookup[coerce.Database](e, keys, coerce.DatabaseURL, opts...)
}
