package source

import "os"

// Source looks up a variable by name.
// The boolean reports presence; a present variable may hold an empty string.
type Source interface {
	Lookup(name string) (string, bool)
}

// OS implements Source using the process environment.
type OS struct{}

// Lookup returns the value of the environment variable named by name.
func (OS) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Map implements Source over a static table.
type Map map[string]string

// Lookup returns the value stored under name.
func (m Map) Lookup(name string) (string, bool) {
	val, found := m[name]

	return val, found
}
