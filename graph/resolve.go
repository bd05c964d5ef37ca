package graph

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/stackplan/stackplan/secret"
	"github.com/zclconf/go-cty/cty"
)

// A LookupFunc resolves a reference to another node's attribute.
type LookupFunc func(name, attribute string) (cty.Value, error)

// Resolve replaces every placeholder inside a value.
//
// The walk is structural: sequences and mappings keep their shape, order and
// keys; non-string scalars pass through untouched. A ref placeholder is
// replaced by the looked-up attribute value, a secret placeholder by the
// secret's value.
//
// Results are not memoized; each call reflects the graph state behind the
// lookup function at that moment.
func Resolve(val cty.Value, lookup LookupFunc, secrets secret.Source) (cty.Value, error) {
	return cty.Transform(val, func(path cty.Path, v cty.Value) (cty.Value, error) {
		if v.IsNull() || !v.IsKnown() || v.Type() != cty.String {
			return v, nil
		}
		s := v.AsString()

		if key, ok := ParseSecret(s); ok {
			resolved, err := secrets.Get(key)
			if err != nil {
				if errors.Is(err, secret.ErrNotFound) {
					return cty.NilVal, errors.Wrap(SecretNotFoundError{Key: key}, pathString(path))
				}
				return cty.NilVal, errors.Wrapf(err, "secret %q at %s", key, pathString(path))
			}
			return cty.StringVal(resolved), nil
		}

		if ref, ok := ParseRef(s); ok {
			resolved, err := lookup(ref.Name, ref.Attribute)
			if err != nil {
				return cty.NilVal, errors.Wrap(err, pathString(path))
			}
			return resolved, nil
		}

		return v, nil
	})
}

// pathString renders a field path for error messages, for example
// "args.subnets[1].vpc_id".
func pathString(path cty.Path) string {
	var b strings.Builder
	b.WriteString("args")
	for _, step := range path {
		switch s := step.(type) {
		case cty.GetAttrStep:
			b.WriteString(".")
			b.WriteString(s.Name)
		case cty.IndexStep:
			switch s.Key.Type() {
			case cty.Number:
				i, _ := s.Key.AsBigFloat().Int64()
				fmt.Fprintf(&b, "[%d]", i)
			case cty.String:
				fmt.Fprintf(&b, ".%s", s.Key.AsString())
			}
		}
	}
	return b.String()
}
