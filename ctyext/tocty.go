// Package ctyext converts between plain Go value trees, as produced by
// decoding YAML or JSON documents, and cty values.
//
// Mappings become objects, sequences become tuples and scalars map to the
// corresponding cty primitive. The conversions are structural; no schema is
// required.
package ctyext

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"
)

// ToCty converts a plain Go value tree to a cty value.
//
// Supported input types are nil, bool, string, the integer and float types
// produced by yaml/json decoders, []interface{} and map[string]interface{}.
// Any other type returns an error.
func ToCty(v interface{}) (cty.Value, error) {
	switch val := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case bool:
		return cty.BoolVal(val), nil
	case string:
		return cty.StringVal(val), nil
	case int:
		return cty.NumberIntVal(int64(val)), nil
	case int64:
		return cty.NumberIntVal(val), nil
	case uint64:
		return cty.NumberUIntVal(val), nil
	case float64:
		return cty.NumberFloatVal(val), nil
	case []interface{}:
		if len(val) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, len(val))
		for i, e := range val {
			ev, err := ToCty(e)
			if err != nil {
				return cty.NilVal, errors.Wrapf(err, "index %d", i)
			}
			elems[i] = ev
		}
		return cty.TupleVal(elems), nil
	case map[string]interface{}:
		if len(val) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(val))
		for k, e := range val {
			ev, err := ToCty(e)
			if err != nil {
				return cty.NilVal, errors.Wrapf(err, "key %q", k)
			}
			attrs[k] = ev
		}
		return cty.ObjectVal(attrs), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported value of type %T", v)
	}
}
