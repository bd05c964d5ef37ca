// Package secret provides lookup of secret values referenced from resource
// configuration.
//
// The backing store is deliberately abstract; the compiler only depends on
// the Source interface. Static and Env cover the common cases (values passed
// on the command line, values from the process environment) and Chain
// combines sources with a defined precedence.
package secret

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when a source does not hold the requested key.
var ErrNotFound = errors.New("secret not found")

// A Source resolves secret keys to values.
type Source interface {
	// Get returns the value for a key. Returns an error wrapping ErrNotFound
	// if the key is absent.
	Get(key string) (string, error)
}

// Static is an in-memory source backed by a fixed map.
type Static map[string]string

// Get returns the value for key from the map.
func (s Static) Get(key string) (string, error) {
	v, ok := s[key]
	if !ok {
		return "", errors.Wrap(ErrNotFound, key)
	}
	return v, nil
}

// Env resolves secrets from environment variables.
//
// The key is mapped to a variable name by upper casing it and replacing every
// character outside [A-Z0-9_] with an underscore. With Prefix set to
// "STACKPLAN", the key "db/password" resolves from STACKPLAN_DB_PASSWORD.
type Env struct {
	// Prefix is prepended to the mapped variable name with an underscore.
	// Empty means no prefix.
	Prefix string
}

// Get returns the value of the mapped environment variable.
func (e Env) Get(key string) (string, error) {
	name := envName(key)
	if e.Prefix != "" {
		name = e.Prefix + "_" + name
	}
	v, ok := os.LookupEnv(name)
	if !ok {
		return "", errors.Wrap(ErrNotFound, key)
	}
	return v, nil
}

func envName(key string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - ('a' - 'A')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, key)
	return mapped
}

// Chain combines sources. Get asks each source in order and returns the
// first hit.
type Chain []Source

// Get returns the value from the first source holding the key.
func (c Chain) Get(key string) (string, error) {
	for _, src := range c {
		v, err := src.Get(key)
		if err == nil {
			return v, nil
		}
		if errors.Is(err, ErrNotFound) {
			continue
		}
		return "", err
	}
	return "", errors.Wrap(ErrNotFound, key)
}
