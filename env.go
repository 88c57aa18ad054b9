package fern

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/0xalexb/fern/source"
)

// DefaultValidModes is used when a mode variable is set without valid modes.
//
//nolint:gochecknoglobals // documented default, copied on use.
var DefaultValidModes = []string{"dev", "prod"}

// Env reads settings from a variable source, applying mode-aware defaults.
// It is safe for concurrent use.
type Env struct {
	modeVar     string
	validModes  []string
	defaultMode string
	source      source.Source
	logger      *slog.Logger

	modeOnce sync.Once
	mode     string
	modeErr  error
}

// New creates an Env. It never fails; a misconfigured or invalid mode is
// reported by the first lookup.
func New(opts ...Option) *Env {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	env := &Env{
		modeVar:     options.ModeVariable,
		defaultMode: options.DefaultMode,
		source:      options.Source,
		logger:      options.Logger,
	}

	if env.modeVar != "" {
		env.validModes = options.ValidModes
		if len(env.validModes) == 0 {
			env.validModes = slices.Clone(DefaultValidModes)
		}

		if env.defaultMode == "" {
			env.defaultMode = env.validModes[0]
		}
	}

	if env.source == nil {
		env.source = source.OS{}
	}

	if env.logger == nil {
		env.logger = slog.Default()
	}

	return env
}

// ValidModes returns the accepted modes, or nil when no mode variable is configured.
func (e *Env) ValidModes() []string {
	return slices.Clone(e.validModes)
}

// Mode returns the current mode. The mode variable is read once; later
// changes to it are not observed by this Env. Without a mode variable Mode
// returns an empty string.
func (e *Env) Mode() (string, error) {
	if e.modeVar == "" {
		return "", nil
	}

	e.modeOnce.Do(e.resolveMode)

	return e.mode, e.modeErr
}

func (e *Env) resolveMode() {
	mode, found := e.source.Lookup(e.modeVar)
	if !found {
		mode = e.defaultMode
	}

	if !slices.Contains(e.validModes, mode) {
		e.modeErr = &InvalidModeError{
			Variable: e.modeVar,
			Value:    mode,
			Valid:    slices.Clone(e.validModes),
		}

		return
	}

	e.mode = mode

	e.logger.Debug("mode resolved",
		slog.String("variable", e.modeVar),
		slog.String("mode", mode),
		slog.Bool("from_default", !found),
	)
}

// find returns the first candidate present in the source.
func (e *Env) find(keys Keys) (string, string, bool) {
	for _, key := range keys {
		val, found := e.source.Lookup(key)
		if found {
			return key, val, true
		}
	}

	return "", "", false
}
