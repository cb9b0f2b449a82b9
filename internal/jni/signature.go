// Package jni implements a fake Android JNI environment in emulated memory.
//
// A JNIEnv function table is installed in the emulator's stub region; each
// slot is a RET instruction with a Go hook handler behind it. Calls made
// through the table resolve against a registry of Go-backed class bindings.
// The package also implements the JNI method signature grammar used to
// disambiguate overloaded methods during lookup.
package jni

import (
	"fmt"
	"strings"
)

// Kind enumerates the native argument/return kinds the environment
// understands: void, boolean, int, long, float, double and object.
type Kind int

const (
	KindVoid Kind = iota
	KindBoolean
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindObject
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindBoolean:
		return "boolean"
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindObject:
		return "object"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// FloatingPoint reports whether values of this kind travel in D registers.
func (k Kind) FloatingPoint() bool {
	return k == KindFloat || k == KindDouble
}

// Type describes a Java type as the signature grammar sees it.
// Class holds the JNI class path for object types, e.g. "java/lang/String".
type Type struct {
	Kind  Kind
	Class string
}

// Common types.
var (
	TypeVoid    = Type{Kind: KindVoid}
	TypeBoolean = Type{Kind: KindBoolean}
	TypeInt     = Type{Kind: KindInt}
	TypeLong    = Type{Kind: KindLong}
	TypeFloat   = Type{Kind: KindFloat}
	TypeDouble  = Type{Kind: KindDouble}
	TypeString  = ObjectType("java/lang/String")
	TypeObject  = ObjectType("java/lang/Object")
)

// ObjectType returns the object type for a JNI class path.
func ObjectType(class string) Type {
	return Type{Kind: KindObject, Class: class}
}

// Descriptor returns the JNI descriptor for the type.
func (t Type) Descriptor() string {
	switch t.Kind {
	case KindVoid:
		return "V"
	case KindBoolean:
		return "Z"
	case KindInt:
		return "I"
	case KindLong:
		return "J"
	case KindFloat:
		return "F"
	case KindDouble:
		return "D"
	case KindObject:
		return "L" + t.Class + ";"
	}
	return "?"
}

// String returns the human-readable name of the type.
func (t Type) String() string {
	if t.Kind == KindObject {
		return t.Class
	}
	return t.Kind.String()
}

// Signature builds a JNI method signature string from the return type and
// the parameter types, per the runtime's textual grammar: "(params)ret".
func Signature(ret Type, params ...Type) string {
	var b strings.Builder
	b.WriteByte('(')
	for _, p := range params {
		b.WriteString(p.Descriptor())
	}
	b.WriteByte(')')
	b.WriteString(ret.Descriptor())
	return b.String()
}

// ParseSignature parses a JNI method signature string into parameter types
// and a return type.
func ParseSignature(sig string) (params []Type, ret Type, err error) {
	if len(sig) < 3 || sig[0] != '(' {
		return nil, Type{}, fmt.Errorf("malformed signature %q", sig)
	}

	rest := sig[1:]
	for len(rest) > 0 && rest[0] != ')' {
		var t Type
		t, rest, err = parseDescriptor(rest)
		if err != nil {
			return nil, Type{}, fmt.Errorf("signature %q: %w", sig, err)
		}
		if t.Kind == KindVoid {
			return nil, Type{}, fmt.Errorf("signature %q: void parameter", sig)
		}
		params = append(params, t)
	}
	if len(rest) == 0 {
		return nil, Type{}, fmt.Errorf("signature %q: missing ')'", sig)
	}

	rest = rest[1:] // skip ')'
	ret, rest, err = parseDescriptor(rest)
	if err != nil {
		return nil, Type{}, fmt.Errorf("signature %q: %w", sig, err)
	}
	if rest != "" {
		return nil, Type{}, fmt.Errorf("signature %q: trailing %q", sig, rest)
	}
	return params, ret, nil
}

// parseDescriptor consumes one type descriptor from the front of s.
func parseDescriptor(s string) (Type, string, error) {
	if s == "" {
		return Type{}, "", fmt.Errorf("empty descriptor")
	}
	switch s[0] {
	case 'V':
		return TypeVoid, s[1:], nil
	case 'Z':
		return TypeBoolean, s[1:], nil
	case 'I':
		return TypeInt, s[1:], nil
	case 'J':
		return TypeLong, s[1:], nil
	case 'F':
		return TypeFloat, s[1:], nil
	case 'D':
		return TypeDouble, s[1:], nil
	case 'L':
		end := strings.IndexByte(s, ';')
		if end < 0 {
			return Type{}, "", fmt.Errorf("unterminated class descriptor %q", s)
		}
		if end == 1 {
			return Type{}, "", fmt.Errorf("empty class descriptor")
		}
		return ObjectType(s[1:end]), s[end+1:], nil
	}
	// B, C, S and arrays are outside the kinds the environment understands.
	return Type{}, "", fmt.Errorf("unsupported descriptor %q", s[:1])
}

// ParseTypeName maps a human-readable type name to a Type. Primitive names
// ("void", "boolean", "int", "long", "float", "double") and the shorthand
// "string" are recognized; anything containing '/' is taken as a JNI class
// path.
func ParseTypeName(name string) (Type, error) {
	switch name {
	case "void":
		return TypeVoid, nil
	case "boolean":
		return TypeBoolean, nil
	case "int":
		return TypeInt, nil
	case "long":
		return TypeLong, nil
	case "float":
		return TypeFloat, nil
	case "double":
		return TypeDouble, nil
	case "string", "String":
		return TypeString, nil
	}
	if strings.ContainsRune(name, '/') {
		return ObjectType(name), nil
	}
	return Type{}, fmt.Errorf("unknown type name %q", name)
}
