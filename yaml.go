package tristate

import (
	"context"
	"reflect"

	"gopkg.in/yaml.v3"
)

// YAML interop via yaml.v3. On output the full contract holds: the library
// consults IsZero for `,omitempty` fields, so a tagged Undefined field is
// omitted, Null renders as the null scalar, and values render normally.
//
// Input is lossier than JSON: yaml.v3 zeroes the target for null nodes
// before it ever consults an Unmarshaler, so `key: null` cannot be told
// apart from an absent key and both land on Undefined. UnmarshalYAML is
// only reached for non-null nodes. Callers that must preserve explicit
// nulls on input need the JSON surface.

// MarshalYAML implements yaml.Marshaler.
func (v Value[T]) MarshalYAML() (any, error) {
	if !v.HasValue() {
		return nil, nil
	}
	return v.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same lenient coercion
// policy as the JSON paths. It never sees null nodes; see the package note
// above.
func (v *Value[T]) UnmarshalYAML(node *yaml.Node) error {
	var elem T
	if err := node.Decode(&elem); err != nil {
		typeName := reflect.TypeOf(*v).String()
		emitCoercionFailed(context.Background(), typeName, "lenient", newCoerceError(typeName, err))
		*v = Value[T]{}
		return nil
	}

	*v = Of(elem)
	return nil
}
