// Package coerce provides string to value conversions for environment variables.
//
// Every conversion has the shape of Func: it receives the raw string exactly as
// it was found in the environment and returns the typed value or an error. Any
// function with that shape can be passed to fern.Lookup, so callers are free to
// add their own.
//
// Boolean and CommaList never fail. Integer, DatabaseURL, LogLevel and the
// decoders returned by YAML report malformed input through the sentinel errors
// declared in this package, wrapped with the underlying cause where one exists.
package coerce
