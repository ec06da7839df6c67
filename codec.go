package tristate

import (
	"context"
	"fmt"
	"reflect"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
)

// valueCodec converts one Value[T] instantiation to and from its wire
// tokens. One instance is built per wrapper type and mode, cached by the
// registry for the life of the process, and holds no per-call state.
//
// It implements both jsoniter.ValEncoder and jsoniter.ValDecoder. IsEmpty
// doubles as the per-field omission predicate: the engine consults it
// before writing the field at all, so Undefined slots never produce a key.
type valueCodec struct {
	wrapperType reflect2.Type
	elemType    reflect.Type
	typeName    string
	strict      bool
}

// newValueCodec builds a codec for typ, which must be a Value
// instantiation. The registry guards the call with canHandle; reaching the
// panic means a caller bypassed the guard.
func newValueCodec(typ reflect2.Type, strict bool) *valueCodec {
	rt := typ.Type1()
	if !isTriStateType(rt) {
		panic(fmt.Errorf("tristate: %w: %s", ErrNotTriState, rt))
	}

	c := &valueCodec{
		wrapperType: typ,
		elemType:    reflect.Zero(rt).Interface().(reader).elemType(),
		typeName:    rt.String(),
		strict:      strict,
	}

	emitCodecCreated(context.Background(), c.typeName, c.elemType.String(), c.mode())
	return c
}

func (c *valueCodec) mode() string {
	if c.strict {
		return "strict"
	}
	return "lenient"
}

// IsEmpty reports whether the slot at ptr is Undefined.
func (c *valueCodec) IsEmpty(ptr unsafe.Pointer) bool {
	return !c.wrapperType.UnsafeIndirect(ptr).(reader).stateSet()
}

// Encode writes the null literal for a Null slot and the serialized
// element for a value slot. Undefined slots are filtered out by IsEmpty
// beforehand; at positions where the engine cannot omit (top-level values,
// map and slice elements) they encode as null.
func (c *valueCodec) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	r := c.wrapperType.UnsafeIndirect(ptr).(reader)
	if !r.stateValid() {
		stream.WriteNil()
		return
	}
	stream.WriteVal(r.boxed())
}

// Decode maps the wire token onto a state: the null literal becomes Null,
// a coercible token becomes a value, and a token that fails coercion
// becomes Undefined under the default lenient policy. The engine never
// calls Decode for an absent key, so those slots stay at their zero value,
// which is Undefined.
//
// The lenient fallback deliberately swallows the coercion error, making
// malformed input indistinguishable from an absent key downstream. Every
// swallowed token raises SignalCoercionFailed. In strict mode the error is
// reported to the iterator and fails the whole decode instead.
func (c *valueCodec) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	// PackEFace on the wrapper type packs with the pointer rtype, so this
	// yields a *Value[T] aliasing the slot at ptr.
	w := c.wrapperType.PackEFace(ptr).(writer)

	if iter.ReadNil() {
		w.setNull()
		return
	}

	raw := iter.SkipAndReturnBytes()
	elem := reflect.New(c.elemType).Interface()
	if err := coerceAPI(c.strict).Unmarshal(raw, elem); err != nil {
		cerr := newCoerceError(c.typeName, err)
		emitCoercionFailed(context.Background(), c.typeName, c.mode(), cerr)
		w.setUndefined()
		if c.strict {
			iter.ReportError("tristate", cerr.Error())
		}
		return
	}

	if !w.setBoxed(elem) {
		panic(fmt.Sprintf("tristate: element type mismatch decoding %s", c.typeName))
	}
}
