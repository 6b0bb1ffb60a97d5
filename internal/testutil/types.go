// Package testutil defines support code for unit tests.
package testutil

import (
	"fmt"

	"github.com/creachadair/jvalue"
)

// FromAny converts a value decoded by encoding/json (or a compatible decoder)
// into the equivalent jvalue.Value. It panics if v contains a type that such
// a decoder does not produce.
func FromAny(v any) jvalue.Value {
	switch t := v.(type) {
	case nil:
		return jvalue.Null{}
	case bool:
		return jvalue.Bool(t)
	case float64:
		return jvalue.Number(t)
	case string:
		return jvalue.String(t)
	case []any:
		arr := make(jvalue.Array, len(t))
		for i, elt := range t {
			arr[i] = FromAny(elt)
		}
		return arr
	case map[string]any:
		obj := make(jvalue.Object, len(t))
		for key, elt := range t {
			obj[key] = FromAny(elt)
		}
		return obj
	default:
		panic(fmt.Sprintf("unexpected value of type %T", v))
	}
}
