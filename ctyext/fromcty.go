package ctyext

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"
)

// FromCty converts a cty value back to a plain Go value tree.
//
// Objects and maps become map[string]interface{}, tuples and lists become
// []interface{}. Whole numbers become int64, other numbers float64. Null
// values of any type become nil.
//
// The value must be wholly known; unknown values return an error.
func FromCty(v cty.Value) (interface{}, error) {
	if !v.IsWhollyKnown() {
		return nil, errors.New("value is not wholly known")
	}
	if v.IsNull() {
		return nil, nil
	}
	ty := v.Type()
	switch {
	case ty == cty.Bool:
		return v.True(), nil
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Number:
		bf := v.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return i, nil
		}
		f, _ := bf.Float64()
		return f, nil
	case ty.IsTupleType(), ty.IsListType(), ty.IsSetType():
		out := make([]interface{}, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			e, err := FromCty(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}
		return out, nil
	case ty.IsObjectType(), ty.IsMapType():
		out := make(map[string]interface{}, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			kv, ev := it.Element()
			e, err := FromCty(ev)
			if err != nil {
				return nil, errors.Wrapf(err, "key %q", kv.AsString())
			}
			out[kv.AsString()] = e
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported type %s", ty.FriendlyName())
	}
}
