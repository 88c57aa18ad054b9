// Package source provides the variable tables an accessor reads from.
//
// OS reads the process environment. Map is a fixed table, useful in tests that
// run in parallel and cannot share process-wide state.
package source
