package coerce

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// ErrInvalidInteger is returned when a value is not a base-10 integer.
var ErrInvalidInteger = errors.New("invalid integer")

// ErrInvalidLogLevel is returned when a value is not a known log level name.
var ErrInvalidLogLevel = errors.New("invalid log level")

// Func converts a raw environment string into a value of type T.
type Func[T any] func(string) (T, error)

// Boolean reports false for "", "0", "no", "f", "n" and "false" (case insensitive,
// surrounding whitespace ignored) and true for anything else.
func Boolean(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "no", "f", "n", "false":
		return false, nil
	default:
		return true, nil
	}
}

// CommaList splits s on every comma. Elements are returned untouched, so
// "a, b" yields "a" and " b", and an empty string yields a single empty element.
func CommaList(s string) ([]string, error) {
	return strings.Split(s, ","), nil
}

// TrimmedCommaList splits s on commas and trims whitespace around each element.
// A blank string yields an empty list.
func TrimmedCommaList(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return []string{}, nil
	}

	parts := strings.Split(s, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}

	return parts, nil
}

// Integer parses a base-10 integer.
func Integer(s string) (int, error) {
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInteger, err)
	}

	return val, nil
}

// LogLevel parses debug, info, warn (or warning) and error, ignoring case.
func LogLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
	}
}
