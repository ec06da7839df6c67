package tristate_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/tristate"
)

// --- state and constructor tests ---

func TestZeroValue_IsUndefined(t *testing.T) {
	var v tristate.Value[int]

	if v.IsSet() {
		t.Error("zero value IsSet() = true, want false")
	}
	if v.HasValue() {
		t.Error("zero value HasValue() = true, want false")
	}
	if v.IsNull() {
		t.Error("zero value IsNull() = true, want false")
	}
	if !v.IsZero() {
		t.Error("zero value IsZero() = false, want true")
	}
	if v != tristate.Undefined[int]() {
		t.Error("zero value should equal Undefined()")
	}
}

func TestNull_IsSetWithoutValue(t *testing.T) {
	v := tristate.Null[string]()

	if !v.IsSet() {
		t.Error("Null() IsSet() = false, want true")
	}
	if v.HasValue() {
		t.Error("Null() HasValue() = true, want false")
	}
	if !v.IsNull() {
		t.Error("Null() IsNull() = false, want true")
	}
	if v.IsZero() {
		t.Error("Null() IsZero() = true, want false")
	}
}

func TestOf_RoundTrip(t *testing.T) {
	v := tristate.Of(42)

	if !v.IsSet() || !v.HasValue() {
		t.Fatalf("Of(42) state = set:%v hasValue:%v, want both true", v.IsSet(), v.HasValue())
	}
	got, err := v.Get()
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got != 42 {
		t.Errorf("Get() = %d, want 42", got)
	}
}

func TestFromPtr(t *testing.T) {
	n := 7
	v := tristate.FromPtr(&n)
	if v.MustGet() != 7 {
		t.Errorf("FromPtr(&7) = %v, want 7", v)
	}

	nilCase := tristate.FromPtr[int](nil)
	if !nilCase.IsSet() {
		t.Error("FromPtr(nil) IsSet() = false, want true")
	}
	if nilCase.HasValue() {
		t.Error("FromPtr(nil) HasValue() = true, want false")
	}
}

// --- equality and hashing tests ---

func TestEquality_Matrix(t *testing.T) {
	tests := []struct {
		name string
		a, b tristate.Value[int]
		want bool
	}{
		{"undefined == undefined", tristate.Undefined[int](), tristate.Undefined[int](), true},
		{"undefined != null", tristate.Undefined[int](), tristate.Null[int](), false},
		{"undefined != value", tristate.Undefined[int](), tristate.Of(1), false},
		{"null == null", tristate.Null[int](), tristate.Null[int](), true},
		{"null != value", tristate.Null[int](), tristate.Of(1), false},
		{"value(1) == value(1)", tristate.Of(1), tristate.Of(1), true},
		{"value(1) != value(2)", tristate.Of(1), tristate.Of(2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a == tt.b; got != tt.want {
				t.Errorf("%v == %v: got %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// symmetry
			if got := tt.b == tt.a; got != tt.want {
				t.Errorf("%v == %v: got %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestValue_AsMapKey(t *testing.T) {
	m := map[tristate.Value[int]]string{
		tristate.Undefined[int](): "undefined",
		tristate.Null[int]():      "null",
		tristate.Of(1):            "one",
	}

	if len(m) != 3 {
		t.Fatalf("map has %d entries, want 3: states must hash distinctly", len(m))
	}
	if m[tristate.Of(1)] != "one" {
		t.Errorf("m[Of(1)] = %q, want %q", m[tristate.Of(1)], "one")
	}
	if m[tristate.Null[int]()] != "null" {
		t.Errorf("m[Null()] = %q, want %q", m[tristate.Null[int]()], "null")
	}
}

// --- accessor tests ---

func TestGet_FailsWithoutValue(t *testing.T) {
	for _, v := range []tristate.Value[int]{tristate.Undefined[int](), tristate.Null[int]()} {
		if _, err := v.Get(); !errors.Is(err, tristate.ErrNoValue) {
			t.Errorf("Get() on %s: error = %v, want ErrNoValue", v, err)
		}
	}
}

func TestMustGet_PanicsWithoutValue(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustGet() on Null did not panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, tristate.ErrNoValue) {
			t.Errorf("MustGet() panic = %v, want ErrNoValue", r)
		}
	}()
	tristate.Null[int]().MustGet()
}

func TestGetOr(t *testing.T) {
	tests := []struct {
		name string
		v    tristate.Value[int]
		want int
	}{
		{"undefined", tristate.Undefined[int](), -1},
		{"null", tristate.Null[int](), -1},
		{"value", tristate.Of(9), 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.GetOr(-1); got != tt.want {
				t.Errorf("GetOr(-1) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGetOrZero(t *testing.T) {
	if got := tristate.Null[string]().GetOrZero(); got != "" {
		t.Errorf("GetOrZero() = %q, want empty string", got)
	}
	if got := tristate.Of("x").GetOrZero(); got != "x" {
		t.Errorf("GetOrZero() = %q, want %q", got, "x")
	}
}

func TestPtr(t *testing.T) {
	if p := tristate.Undefined[int]().Ptr(); p != nil {
		t.Errorf("Undefined Ptr() = %v, want nil", p)
	}
	if p := tristate.Null[int]().Ptr(); p != nil {
		t.Errorf("Null Ptr() = %v, want nil", p)
	}

	p := tristate.Of(3).Ptr()
	if p == nil || *p != 3 {
		t.Fatalf("Of(3).Ptr() = %v, want pointer to 3", p)
	}
	// Ptr returns a copy; mutating it must not leak anywhere.
	*p = 4
	if tristate.Of(3).Ptr() == p {
		t.Error("Ptr() must return a fresh pointer")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		v    tristate.Value[int]
		want string
	}{
		{tristate.Undefined[int](), "undefined"},
		{tristate.Null[int](), "null"},
		{tristate.Of(5), "5"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
