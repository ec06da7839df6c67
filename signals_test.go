package tristate

import (
	"context"
	"errors"
	"testing"
)

func TestEmitCodecCreated(_ *testing.T) {
	// Should not panic
	emitCodecCreated(context.Background(), "tristate.Value[int]", "int", "lenient")
}

func TestEmitCoercionFailed(_ *testing.T) {
	emitCoercionFailed(context.Background(), "tristate.Value[int]", "strict", errors.New("test error"))
}

func TestSignalVariables(t *testing.T) {
	// Verify signals are properly initialized
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalCodecCreated", SignalCodecCreated},
		{"SignalCoercionFailed", SignalCoercionFailed},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("%s is nil", s.name)
		}
	}
}
