package tristate

import "reflect"

// The engine bindings never inspect Value's fields through reflection.
// Instead every Value[T] instantiation carries two unexported capability
// interfaces: a read side on the value receiver and a write side on the
// pointer receiver. Detection of "is this field a tri-state wrapper" is a
// single interface check against the read side, with no walking of type
// ancestry and no generic-definition matching.

// reader is the read-side capability: state queries, the boxed wrapped
// value, and the element type the wrapper was instantiated with.
type reader interface {
	stateSet() bool
	stateValid() bool
	boxed() any
	elemType() reflect.Type
}

// writer is the write-side capability used by decoders. It is the only
// mutation path for a Value and is deliberately unexported: ordinary code
// sees an immutable type.
type writer interface {
	setNull()
	setUndefined()
	setBoxed(ptr any) bool
}

var readerType = reflect.TypeOf((*reader)(nil)).Elem()

// isTriStateType reports whether rt is a Value[T] instantiation.
// Pointer-to-Value fields are left to the engine's default pointer
// handling, so only struct kinds qualify.
func isTriStateType(rt reflect.Type) bool {
	return rt.Kind() == reflect.Struct && rt.Implements(readerType)
}

func (v Value[T]) stateSet() bool   { return v.set }
func (v Value[T]) stateValid() bool { return v.valid }

func (v Value[T]) boxed() any { return v.value }

func (v Value[T]) elemType() reflect.Type { return reflect.TypeFor[T]() }

func (v *Value[T]) setNull() { *v = Null[T]() }

func (v *Value[T]) setUndefined() { *v = Value[T]{} }

// setBoxed assigns the value pointed to by ptr, which must be a *T.
// It reports whether the dynamic type matched; a mismatch is a codec
// construction bug, not input-dependent behavior.
func (v *Value[T]) setBoxed(ptr any) bool {
	p, ok := ptr.(*T)
	if !ok {
		return false
	}
	*v = Of(*p)
	return true
}
