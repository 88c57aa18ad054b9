// Package logging provides structured JSON logging using Go's standard library log/slog,
// with the level read from the environment through a fern.Env.
package logging
