package jni

import (
	"math"
	"testing"
)

func TestRawBitsSignExtension(t *testing.T) {
	v := IntValue(-7)
	if got := v.RawBits(); got != 0xfffffffffffffff9 {
		t.Errorf("RawBits(-7) = 0x%x", got)
	}

	back := FromRaw(TypeInt, v.RawBits(), nil)
	if back.AsInt() != -7 {
		t.Errorf("round trip = %d, want -7", back.AsInt())
	}
}

func TestRawBitsFloat(t *testing.T) {
	// jfloat lives in the low 32 bits of the D register.
	v := FloatValue(1.5)
	if got := v.RawBits(); got != uint64(math.Float32bits(1.5)) {
		t.Errorf("RawBits(1.5f) = 0x%x", got)
	}

	back := FromRaw(TypeFloat, v.RawBits(), nil)
	if back.AsFloat() != 1.5 {
		t.Errorf("round trip = %v, want 1.5", back.AsFloat())
	}
}

func TestRawBitsDouble(t *testing.T) {
	v := DoubleValue(-2.25)
	back := FromRaw(TypeDouble, v.RawBits(), nil)
	if back.AsDouble() != -2.25 {
		t.Errorf("round trip = %v, want -2.25", back.AsDouble())
	}
}

func TestFromRawResolvesStrings(t *testing.T) {
	resolve := func(ref uint64) (string, bool) {
		if ref == 0x1234 {
			return "tracked", true
		}
		return "", false
	}

	v := FromRaw(TypeString, 0x1234, resolve)
	if !v.IsStr || v.AsString() != "tracked" {
		t.Errorf("FromRaw did not resolve tracked string: %+v", v)
	}

	v = FromRaw(TypeString, 0x9999, resolve)
	if v.IsStr {
		t.Error("untracked reference should stay a raw ref")
	}
	if v.Ref != 0x9999 {
		t.Errorf("Ref = 0x%x, want 0x9999", v.Ref)
	}
}

func TestDefaultOf(t *testing.T) {
	if v := DefaultOf(TypeBoolean); v.AsBool() {
		t.Error("default boolean should be false")
	}
	if v := DefaultOf(TypeInt); v.AsInt() != 0 {
		t.Error("default int should be 0")
	}
	if v := DefaultOf(TypeDouble); v.AsDouble() != 0 {
		t.Error("default double should be 0")
	}
	v := DefaultOf(TypeString)
	if !v.IsNull() {
		t.Errorf("default object should be the null reference: %+v", v)
	}
	if v.Kind != KindObject {
		t.Errorf("default object kind = %v", v.Kind)
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{VoidValue(), "void"},
		{BoolValue(true), "true"},
		{IntValue(-42), "-42"},
		{LongValue(1 << 40), "1099511627776"},
		{DoubleValue(2.5), "2.5"},
		{StringValue("hi"), `"hi"`},
		{DefaultOf(TypeString), "null"},
		{RefValue("com/example/Foo", 0xbeef), "com/example/Foo@0xbeef"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String(%+v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
