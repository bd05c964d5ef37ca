package resource

import (
	"sort"

	"github.com/agext/levenshtein"
)

// A Registry maintains the set of registered resource definitions, keyed by
// type string.
//
// The registry is populated once at startup and is read-only afterwards; it
// may then be shared between concurrent compilations without locking.
type Registry struct {
	defs map[string]Definition
}

// RegistryFromDefinitions creates a registry from a fixed list of
// definitions. It is primarily used in tests.
func RegistryFromDefinitions(defs ...Definition) *Registry {
	r := &Registry{}
	for _, def := range defs {
		r.Register(def)
	}
	return r
}

// Register adds a definition.
//
// Panics if the definition reports an empty type string; this indicates a bug
// in the definition. If another definition with the same type is already
// registered, it is overwritten.
//
// Not safe for concurrent access.
func (r *Registry) Register(def Definition) {
	typename := def.Type()
	if typename == "" {
		panic("Definition has no type")
	}
	if r.defs == nil {
		r.defs = make(map[string]Definition)
	}
	r.defs[typename] = def
}

// Constructor returns the definition registered for a type string.
//
// Returns UnknownResourceTypeError if the type has not been registered. When
// a registered type is a close match, the error carries it as a suggestion.
func (r *Registry) Constructor(typename string) (Definition, error) {
	def, ok := r.defs[typename]
	if !ok {
		return nil, UnknownResourceTypeError{
			Type:       typename,
			Suggestion: suggestType(typename, r.Types()),
		}
	}
	return def, nil
}

// Lookup returns the lookup capability registered for a type string, for
// resources declared as existing.
//
// Returns UnknownResourceTypeError if the type has not been registered and
// NoLookupError if the definition cannot look up existing resources.
func (r *Registry) Lookup(typename string) (Lookuper, error) {
	def, err := r.Constructor(typename)
	if err != nil {
		return nil, err
	}
	lu, ok := def.(Lookuper)
	if !ok {
		return nil, NoLookupError{Type: typename}
	}
	return lu, nil
}

// Types returns the registered type strings, lexicographically sorted.
func (r *Registry) Types() []string {
	tt := make([]string, 0, len(r.defs))
	for k := range r.defs {
		tt = append(tt, k)
	}
	sort.Strings(tt)
	return tt
}

// suggestType returns a registered type that closely matches want, or an
// empty string when nothing is close enough.
func suggestType(want string, candidates []string) string {
	// Allow one differing character per five characters of input.
	maxDist := len(want) / 5
	if maxDist == 0 {
		maxDist = 1
	}

	best := ""
	dist := maxDist + 1
	for _, cand := range candidates {
		if d := levenshtein.Distance(want, cand, nil); d < dist {
			best = cand
			dist = d
		}
	}
	return best
}
