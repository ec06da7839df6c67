package tristate

import (
	"bytes"
	"context"
	"encoding/json"
	"reflect"
)

// Standard-library interop. encoding/json has no per-field omission hook,
// so Undefined and Null both render as the null literal unless the field is
// tagged `json:",omitzero"` (Go 1.24+), which routes through IsZero and
// omits Undefined. The jsoniter extension needs none of this.

var nullLiteral = []byte("null")

// MarshalJSON implements json.Marshaler.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.HasValue() {
		return nullLiteral, nil
	}
	return json.Marshal(v.value)
}

// UnmarshalJSON implements json.Unmarshaler with the same lenient policy
// as the codec: a null token becomes Null, a coercible token becomes a
// value, anything else becomes Undefined and raises SignalCoercionFailed.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, nullLiteral) {
		*v = Null[T]()
		return nil
	}

	var elem T
	if err := json.Unmarshal(data, &elem); err != nil {
		typeName := reflect.TypeOf(*v).String()
		emitCoercionFailed(context.Background(), typeName, "lenient", newCoerceError(typeName, err))
		*v = Value[T]{}
		return nil
	}

	*v = Of(elem)
	return nil
}
