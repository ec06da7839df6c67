// Package tristate provides a tri-state optional value and the JSON
// machinery to round-trip it losslessly.
//
// A Value[T] distinguishes three states a plain field or pointer cannot:
//
//   - Undefined: the field was never provided (the zero value)
//   - Null: the field was explicitly set to null
//   - a concrete value of T
//
// The distinction is what partial-update (PATCH) APIs need: "leave this
// field alone", "clear this field", and "set this field" must all survive
// serialization.
//
// # Wire Contract
//
// Per field of a struct, serialized through a tri-state API:
//
//	Undefined  -> key omitted entirely
//	Null       -> "key": null
//	value v    -> "key": <serialized v>
//
// and symmetrically on input:
//
//	key absent            -> Undefined
//	"key": null           -> Null
//	"key": coercible      -> value
//	"key": not coercible  -> Undefined (lenient default, see below)
//
// # Basic Usage
//
//	type UserPatch struct {
//	    Name  tristate.Value[string] `json:"name"`
//	    Age   tristate.Value[int]    `json:"age"`
//	    Quota tristate.Value[int64]  `json:"quota"`
//	}
//
//	var patch UserPatch
//	_ = tristate.Unmarshal([]byte(`{"name":null,"age":30}`), &patch)
//
//	patch.Name.IsNull()    // true: clear the name
//	patch.Age.MustGet()    // 30: set the age
//	patch.Quota.IsSet()    // false: leave the quota alone
//
//	out, _ := tristate.Marshal(UserPatch{
//	    Name: tristate.Null[string](),
//	    Age:  tristate.Of(30),
//	})
//	// {"age":30,"name":null} with Quota absent
//
// No omitempty tagging is required; the extension installs the omission
// predicate for every tri-state field it discovers.
//
// # Engine Integration
//
// The package rides json-iterator. NewAPI returns a ready configured
// jsoniter.API; NewExtension exposes the raw extension for registration on
// an API you already own. Handling is cached per wrapper type in a
// process-wide registry that is safe for concurrent first access.
//
// Outside jsoniter the type degrades gracefully: it implements
// json.Marshaler/json.Unmarshaler plus IsZero for encoding/json (tag fields
// `json:",omitzero"` to omit Undefined), and yaml.Marshaler/yaml.Unmarshaler
// plus IsZero for yaml.v3 (tag fields `yaml:",omitempty"`).
//
// # Coercion Policy
//
// A present token that cannot be coerced into the element type becomes
// Undefined and the error is swallowed. This leniency is deliberate wire
// compatibility, but it makes malformed input indistinguishable from an
// absent key; every swallowed token therefore raises SignalCoercionFailed.
// WithStrictCoercion switches a whole API to failing the decode instead.
//
// # Restrictions
//
// T is constrained to comparable. The wrapper targets single-slot value
// fields; reference types and collections are out of scope, and in exchange
// Value[T] is itself comparable and usable as a map key.
package tristate

import (
	"sync"

	jsoniter "github.com/json-iterator/go"
)

// NewAPI returns a jsoniter API configured for standard-library
// compatibility with tri-state handling registered.
func NewAPI(opts ...Option) jsoniter.API {
	api := jsoniter.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
	}.Froze()
	api.RegisterExtension(NewExtension(opts...))
	return api
}

var (
	apiOnce    sync.Once
	lenientAPI jsoniter.API
	strictAPI  jsoniter.API
)

// coerceAPI returns the shared API for the given mode. Codecs use it to
// coerce captured element tokens; the package-level Marshal/Unmarshal
// helpers ride the lenient one. Built lazily so codec construction does not
// depend on package initialization order.
func coerceAPI(strict bool) jsoniter.API {
	apiOnce.Do(func() {
		lenientAPI = NewAPI()
		strictAPI = NewAPI(WithStrictCoercion())
	})
	if strict {
		return strictAPI
	}
	return lenientAPI
}

// Marshal encodes v through the default tri-state API.
func Marshal(v any) ([]byte, error) {
	return coerceAPI(false).Marshal(v)
}

// MarshalToString is Marshal returning a string.
func MarshalToString(v any) (string, error) {
	return coerceAPI(false).MarshalToString(v)
}

// MarshalIndent is Marshal with indentation.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return coerceAPI(false).MarshalIndent(v, prefix, indent)
}

// Unmarshal decodes data through the default tri-state API.
func Unmarshal(data []byte, v any) error {
	return coerceAPI(false).Unmarshal(data, v)
}

// UnmarshalFromString is Unmarshal accepting a string.
func UnmarshalFromString(str string, v any) error {
	return coerceAPI(false).UnmarshalFromString(str, v)
}
