package tristate

import "fmt"

// Value is a tri-state wrapper around a single value of type T.
//
// It distinguishes three states that a plain value or pointer cannot:
//
//   - Undefined: the slot was never set. This is the zero value.
//   - Null: the slot was explicitly set to "no value".
//   - a concrete value of T.
//
// The distinction matters for partial-update payloads, where "leave the
// field alone" (Undefined), "clear the field" (Null), and "set the field"
// must survive a round trip through JSON.
//
// Value is immutable: instances are built by constructors and never
// modified afterwards. T is constrained to comparable, so Value[T] is
// itself comparable: == implements the full state matrix (Undefined only
// equals Undefined, Null only equals Null, values compare by ==) and
// instances can be used as map keys directly.
type Value[T comparable] struct {
	value T
	valid bool
	set   bool
}

// Undefined returns the Undefined state for T.
// It is identical to the zero value of Value[T] and exists for call sites
// where the intent should be spelled out.
func Undefined[T comparable]() Value[T] {
	return Value[T]{}
}

// Null returns the explicit-null state for T: set, but holding no value.
func Null[T comparable]() Value[T] {
	return Value[T]{set: true}
}

// Of wraps a concrete value.
func Of[T comparable](v T) Value[T] {
	return Value[T]{value: v, valid: true, set: true}
}

// FromPtr converts a plain nullable value (a pointer) into a Value.
// The result is always set; a nil pointer yields the Null state.
func FromPtr[T comparable](p *T) Value[T] {
	if p == nil {
		return Null[T]()
	}
	return Of(*p)
}

// IsSet reports whether the slot was set at all, to null or to a value.
// Undefined is the only state for which IsSet is false.
func (v Value[T]) IsSet() bool {
	return v.set
}

// HasValue reports whether the slot holds a concrete value.
func (v Value[T]) HasValue() bool {
	return v.set && v.valid
}

// IsNull reports whether the slot was explicitly set to null.
func (v Value[T]) IsNull() bool {
	return v.set && !v.valid
}

// IsZero reports whether v is Undefined.
//
// The method doubles as the engines' emptiness probe: encoding/json
// consults it for `omitzero` fields (Go 1.24+) and yaml.v3 consults it for
// `omitempty` fields, so Undefined fields disappear from output in both.
func (v Value[T]) IsZero() bool {
	return !v.set
}

// Get returns the wrapped value.
// It returns ErrNoValue when v is Undefined or Null; callers that cannot
// tolerate the error should check HasValue first, mirroring plain-pointer
// discipline.
func (v Value[T]) Get() (T, error) {
	if !v.HasValue() {
		var zero T
		return zero, ErrNoValue
	}
	return v.value, nil
}

// MustGet returns the wrapped value or panics with ErrNoValue.
// It is the conversion back to a plain T.
func (v Value[T]) MustGet() T {
	if !v.HasValue() {
		panic(ErrNoValue)
	}
	return v.value
}

// GetOr returns the wrapped value if present, else fallback.
func (v Value[T]) GetOr(fallback T) T {
	if !v.HasValue() {
		return fallback
	}
	return v.value
}

// GetOrZero returns the wrapped value if present, else the zero value of T.
func (v Value[T]) GetOrZero() T {
	var zero T
	return v.GetOr(zero)
}

// Ptr converts v to its plain nullable counterpart: a pointer to a copy of
// the wrapped value, or nil when v holds no value.
func (v Value[T]) Ptr() *T {
	if !v.HasValue() {
		return nil
	}
	value := v.value
	return &value
}

// String renders the state: "undefined", "null", or the wrapped value.
func (v Value[T]) String() string {
	switch {
	case !v.set:
		return "undefined"
	case !v.valid:
		return "null"
	default:
		return fmt.Sprint(v.value)
	}
}
