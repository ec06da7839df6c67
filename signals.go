package tristate

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Signals for tri-state codec events.
var (
	SignalCodecCreated   = capitan.NewSignal("tristate.codec.created", "Tri-state codec built and cached")
	SignalCoercionFailed = capitan.NewSignal("tristate.decode.coercion_failed", "Wire token could not be coerced into the element type")
)

// Keys for typed event data.
var (
	KeyTypeName = capitan.NewStringKey("type_name")
	KeyElemType = capitan.NewStringKey("elem_type")
	KeyMode     = capitan.NewStringKey("mode")
	KeyError    = capitan.NewErrorKey("error")
)

// emitCodecCreated emits an event when a codec is built for a wrapper type.
func emitCodecCreated(ctx context.Context, typeName, elemType, mode string) {
	capitan.Emit(ctx, SignalCodecCreated,
		KeyTypeName.Field(typeName),
		KeyElemType.Field(elemType),
		KeyMode.Field(mode),
	)
}

// emitCoercionFailed emits an event when a token is dropped (lenient mode)
// or rejected (strict mode). The lenient fallback is silent on the wire, so
// this signal is the only way to observe it.
func emitCoercionFailed(ctx context.Context, typeName, mode string, err error) {
	capitan.Error(ctx, SignalCoercionFailed,
		KeyTypeName.Field(typeName),
		KeyMode.Field(mode),
		KeyError.Field(err),
	)
}
