package azurestorage

import (
	"os"
	"sort"
)

// Env is the key-value lookup capability the Resolver reads connection
// declarations from.  It exists so resolution can be tested, or driven from a
// source other than the process environment, without global state.
type Env interface {
	// Environ returns all variables as "key=value" strings, in the order the
	// implementation enumerates them.
	Environ() []string

	// Getenv returns the value of the variable named by key, or "" if unset.
	Getenv(key string) string
}

// osEnv reads the real process environment.  Enumeration order follows
// os.Environ and is not guaranteed to be stable across platforms.
type osEnv struct{}

func (osEnv) Environ() []string        { return os.Environ() }
func (osEnv) Getenv(key string) string { return os.Getenv(key) }

// MapEnv is a fixed set of environment variables backed by a map.  Unlike the
// process environment, its enumeration order is deterministic: keys are
// iterated in ascending lexical order, which makes first-match-wins resolution
// reproducible.
type MapEnv map[string]string

// Environ returns the variables as sorted "key=value" strings.
func (m MapEnv) Environ() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	environ := make([]string, 0, len(m))
	for _, k := range keys {
		environ = append(environ, k+"="+m[k])
	}
	return environ
}

// Getenv returns the value for key, or "" if the key is absent.
func (m MapEnv) Getenv(key string) string {
	return m[key]
}
