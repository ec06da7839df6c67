package tristate

import (
	"errors"
	"testing"
)

func TestCoerceError_Wrapping(t *testing.T) {
	cause := errors.New("readUint64: unexpected character")
	err := newCoerceError("tristate.Value[int]", cause)

	if !errors.Is(err, ErrCoerce) {
		t.Error("errors.Is(err, ErrCoerce) = false, want true")
	}

	var cerr *CoerceError
	if !errors.As(err, &cerr) {
		t.Fatal("errors.As(err, *CoerceError) = false, want true")
	}
	if cerr.TypeName != "tristate.Value[int]" {
		t.Errorf("TypeName = %q", cerr.TypeName)
	}
	if cerr.Cause != cause {
		t.Errorf("Cause = %v, want original error", cerr.Cause)
	}
}

func TestCoerceError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *CoerceError
		want string
	}{
		{
			"with cause",
			&CoerceError{Err: ErrCoerce, TypeName: "tristate.Value[int]", Cause: errors.New("bad token")},
			"coerce failed into tristate.Value[int]: bad token",
		},
		{
			"without cause",
			&CoerceError{Err: ErrCoerce, TypeName: "tristate.Value[int]"},
			"coerce failed into tristate.Value[int]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSentinelMessages(t *testing.T) {
	if ErrNoValue.Error() != "value is null or undefined" {
		t.Errorf("ErrNoValue = %q", ErrNoValue.Error())
	}
}
