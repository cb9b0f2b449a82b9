package jni

import (
	"fmt"
	"math"
	"strconv"
)

// Value is a native value crossing the JNI boundary. Exactly one payload
// field is meaningful, selected by Kind; object values carry either a Go
// string (IsStr) or a raw reference.
type Value struct {
	Kind  Kind
	Num   int64   // Boolean (0/1), Int, Long
	Fp    float64 // Float, Double
	Str   string  // Object: string payload when IsStr
	Ref   uint64  // Object: raw reference when !IsStr
	Class string  // Object: JNI class path
	IsStr bool
}

// VoidValue is the result of a void method.
func VoidValue() Value {
	return Value{Kind: KindVoid}
}

// BoolValue wraps a jboolean.
func BoolValue(b bool) Value {
	v := Value{Kind: KindBoolean}
	if b {
		v.Num = 1
	}
	return v
}

// IntValue wraps a jint.
func IntValue(i int32) Value {
	return Value{Kind: KindInt, Num: int64(i)}
}

// LongValue wraps a jlong.
func LongValue(i int64) Value {
	return Value{Kind: KindLong, Num: i}
}

// FloatValue wraps a jfloat.
func FloatValue(f float32) Value {
	return Value{Kind: KindFloat, Fp: float64(f)}
}

// DoubleValue wraps a jdouble.
func DoubleValue(f float64) Value {
	return Value{Kind: KindDouble, Fp: f}
}

// StringValue wraps a java/lang/String payload.
func StringValue(s string) Value {
	return Value{Kind: KindObject, Str: s, Class: "java/lang/String", IsStr: true}
}

// RefValue wraps a raw object reference of the given class.
func RefValue(class string, ref uint64) Value {
	return Value{Kind: KindObject, Ref: ref, Class: class}
}

// DefaultOf returns the default-constructed result for a return type:
// false, zero, or the null reference.
func DefaultOf(t Type) Value {
	switch t.Kind {
	case KindObject:
		return Value{Kind: KindObject, Class: t.Class}
	default:
		return Value{Kind: t.Kind}
	}
}

// Type returns the signature type of the value.
func (v Value) Type() Type {
	if v.Kind == KindObject {
		class := v.Class
		if class == "" {
			class = "java/lang/Object"
		}
		return ObjectType(class)
	}
	return Type{Kind: v.Kind}
}

// AsBool returns the boolean payload.
func (v Value) AsBool() bool { return v.Num != 0 }

// AsInt returns the jint payload.
func (v Value) AsInt() int32 { return int32(v.Num) }

// AsLong returns the jlong payload.
func (v Value) AsLong() int64 { return v.Num }

// AsFloat returns the jfloat payload.
func (v Value) AsFloat() float32 { return float32(v.Fp) }

// AsDouble returns the jdouble payload.
func (v Value) AsDouble() float64 { return v.Fp }

// AsString returns the string payload of an object value, or "" when the
// value is not a string.
func (v Value) AsString() string { return v.Str }

// IsNull reports whether an object value is the null reference.
func (v Value) IsNull() bool {
	return v.Kind == KindObject && !v.IsStr && v.Ref == 0
}

// RawBits returns the register representation of the value: sign-extended
// 64-bit for integer kinds, IEEE bits for floating-point kinds (jfloat in
// the low 32 bits of the D register), and the reference for objects.
// String objects have no register form until interned by the environment.
func (v Value) RawBits() uint64 {
	switch v.Kind {
	case KindBoolean, KindInt, KindLong:
		return uint64(v.Num)
	case KindFloat:
		return uint64(math.Float32bits(float32(v.Fp)))
	case KindDouble:
		return math.Float64bits(v.Fp)
	case KindObject:
		return v.Ref
	}
	return 0
}

// FromRaw converts a raw register value back into a Value of type t.
// resolveStr maps object references to tracked string payloads; it may be
// nil when string resolution is not wanted.
func FromRaw(t Type, bits uint64, resolveStr func(uint64) (string, bool)) Value {
	switch t.Kind {
	case KindVoid:
		return VoidValue()
	case KindBoolean:
		return BoolValue(bits&1 != 0)
	case KindInt:
		return IntValue(int32(uint32(bits)))
	case KindLong:
		return LongValue(int64(bits))
	case KindFloat:
		return FloatValue(math.Float32frombits(uint32(bits)))
	case KindDouble:
		return DoubleValue(math.Float64frombits(bits))
	case KindObject:
		if resolveStr != nil {
			if s, ok := resolveStr(bits); ok {
				return StringValue(s)
			}
		}
		return RefValue(t.Class, bits)
	}
	return VoidValue()
}

// String renders the value for traces and reports.
func (v Value) String() string {
	switch v.Kind {
	case KindVoid:
		return "void"
	case KindBoolean:
		if v.Num != 0 {
			return "true"
		}
		return "false"
	case KindInt, KindLong:
		return strconv.FormatInt(v.Num, 10)
	case KindFloat:
		return strconv.FormatFloat(float64(float32(v.Fp)), 'g', -1, 32)
	case KindDouble:
		return strconv.FormatFloat(v.Fp, 'g', -1, 64)
	case KindObject:
		if v.IsStr {
			return strconv.Quote(v.Str)
		}
		if v.Ref == 0 {
			return "null"
		}
		return fmt.Sprintf("%s@0x%x", v.Class, v.Ref)
	}
	return "?"
}
