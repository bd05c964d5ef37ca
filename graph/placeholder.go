package graph

import (
	"regexp"

	"github.com/zclconf/go-cty/cty"
)

// Placeholder grammar. Both patterns require a whole-string match; a string
// with surrounding characters is a literal, not a placeholder.
var (
	refPattern    = regexp.MustCompile(`^ref:([A-Za-z0-9_-]+)\.([A-Za-z0-9_]+)$`)
	secretPattern = regexp.MustCompile(`^secret:([A-Za-z0-9_./-]+)$`)
)

// A Ref is a parsed ref placeholder pointing at another node's attribute.
type Ref struct {
	Name      string
	Attribute string
}

// ParseRef parses a ref placeholder. Returns false for any string that is
// not exactly a ref token, including ref-prefixed strings that miss the
// attribute part.
func ParseRef(s string) (Ref, bool) {
	m := refPattern.FindStringSubmatch(s)
	if m == nil {
		return Ref{}, false
	}
	return Ref{Name: m[1], Attribute: m[2]}, true
}

// ParseSecret parses a secret placeholder. Returns false for any string that
// is not exactly a secret token.
func ParseSecret(s string) (string, bool) {
	m := secretPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// References collects all ref placeholders inside a value, in an arbitrary
// order. Used for static validation and dependency analysis; the value is
// not modified.
func References(val cty.Value) []Ref {
	var refs []Ref
	walkStrings(val, func(s string) {
		if ref, ok := ParseRef(s); ok {
			refs = append(refs, ref)
		}
	})
	return refs
}

// Secrets collects all secret placeholder keys inside a value.
func Secrets(val cty.Value) []string {
	var keys []string
	walkStrings(val, func(s string) {
		if key, ok := ParseSecret(s); ok {
			keys = append(keys, key)
		}
	})
	return keys
}

func walkStrings(val cty.Value, fn func(s string)) {
	if val.IsNull() || !val.IsKnown() {
		return
	}
	if val.Type() == cty.String {
		fn(val.AsString())
		return
	}
	if val.CanIterateElements() {
		for it := val.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			walkStrings(ev, fn)
		}
	}
}
