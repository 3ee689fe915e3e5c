package azurestorage

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// connectionKeyRegexp matches declaration keys only.  The suffixed keys
// (_URL, _CONTAINER) are built by concatenation, never matched by pattern.
var connectionKeyRegexp = regexp.MustCompile(`^AZURE_STORAGE_CONNECTION_(\d+)$`)

// Resolver translates logical connection names into typed client options by
// scanning an Env for AZURE_STORAGE_CONNECTION_* variable groups.  It holds no
// state besides the Env and re-reads it on every call, so options always
// reflect the current environment.  Resolver implements both
// ServiceOptionsSource and ContainerOptionsSource.
type Resolver struct {
	env Env
}

// NewResolver initializes a Resolver reading from env.  A nil env means the
// process environment.
func NewResolver(env Env) *Resolver {
	if env == nil {
		env = osEnv{}
	}
	return &Resolver{env: env}
}

// connectionIndex finds the ordinal index declared for name.  Among all
// declaration keys whose trimmed value equals the trimmed name, the first one
// encountered in enumeration order wins; for the process environment that
// order is platform-dependent.
func (r *Resolver) connectionIndex(name string) (int, error) {
	want := strings.TrimSpace(name)
	if want == "" {
		return 0, &ConnectionNotFoundError{Name: name}
	}

	for _, kv := range r.env.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}

		match := connectionKeyRegexp.FindStringSubmatch(key)
		if match == nil || strings.TrimSpace(value) != want {
			continue
		}

		index, err := strconv.Atoi(match[1])
		if err != nil {
			return 0, &ConnectionNotFoundError{Name: name}
		}
		return index, nil
	}

	return 0, &ConnectionNotFoundError{Name: name}
}

// serviceOptionsAt reads the _URL variable of the given index.  A missing or
// blank value counts as "connection not found", same as a missing declaration.
func (r *Resolver) serviceOptionsAt(index int, name string) (*Options, error) {
	url := strings.TrimSpace(r.env.Getenv(fmt.Sprintf("AZURE_STORAGE_CONNECTION_%d_URL", index)))
	if url == "" {
		return nil, &ConnectionNotFoundError{Name: name}
	}
	return &Options{URL: url}, nil
}

// ServiceOptions resolves service-level client options for the named connection.
func (r *Resolver) ServiceOptions(name string) (*Options, error) {
	index, err := r.connectionIndex(name)
	if err != nil {
		return nil, err
	}
	return r.serviceOptionsAt(index, name)
}

// ContainerOptions resolves container-level client options for the named
// connection.  A non-blank container argument overrides the connection's
// _CONTAINER variable; when neither yields a value, ErrNoContainerDefined is
// returned.
func (r *Resolver) ContainerOptions(name, container string) (*ContainerOptions, error) {
	index, err := r.connectionIndex(name)
	if err != nil {
		return nil, err
	}

	opts, err := r.serviceOptionsAt(index, name)
	if err != nil {
		return nil, err
	}

	effective := strings.TrimSpace(container)
	if effective == "" {
		effective = strings.TrimSpace(r.env.Getenv(fmt.Sprintf("AZURE_STORAGE_CONNECTION_%d_CONTAINER", index)))
	}
	if effective == "" {
		return nil, ErrNoContainerDefined
	}

	return &ContainerOptions{Options: *opts, Container: effective}, nil
}

// ConnectionInfo describes one connection declared in the environment.
type ConnectionInfo struct {
	// Index is the ordinal <N> grouping the connection's variables.
	Index int

	// Name is the logical connection name, trimmed.
	Name string

	// URL is the trimmed _URL value; may be empty for incomplete declarations.
	URL string

	// Container is the trimmed _CONTAINER value; empty when none is declared.
	Container string
}

// ListConnections enumerates every connection declared in env, sorted by
// index.  A nil env means the process environment.  Incomplete declarations
// are included so callers can surface them.
func ListConnections(env Env) []ConnectionInfo {
	if env == nil {
		env = osEnv{}
	}

	var connections []ConnectionInfo
	for _, kv := range env.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}

		match := connectionKeyRegexp.FindStringSubmatch(key)
		if match == nil {
			continue
		}

		index, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}

		connections = append(connections, ConnectionInfo{
			Index:     index,
			Name:      strings.TrimSpace(value),
			URL:       strings.TrimSpace(env.Getenv(fmt.Sprintf("AZURE_STORAGE_CONNECTION_%d_URL", index))),
			Container: strings.TrimSpace(env.Getenv(fmt.Sprintf("AZURE_STORAGE_CONNECTION_%d_CONTAINER", index))),
		})
	}

	sort.Slice(connections, func(i, j int) bool {
		return connections[i].Index < connections[j].Index
	})

	return connections
}
