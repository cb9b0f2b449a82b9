package jni

import "testing"

func ident(env *Env, args []Value) Value {
	if len(args) == 0 {
		return VoidValue()
	}
	return args[0]
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()
	reg.Register(NewClass("com/example/Foo",
		NewMethod("id", TypeInt, []Type{TypeInt}, ident)))

	cls, ok := reg.Lookup("com/example/Foo")
	if !ok {
		t.Fatal("Lookup failed for registered class")
	}

	if _, ok := cls.Method("id", "(I)I"); !ok {
		t.Error("Method lookup failed for exact signature")
	}
	if _, ok := cls.Method("id", "(J)J"); ok {
		t.Error("Method lookup should miss on signature mismatch")
	}
	if _, ok := reg.Lookup("com/example/Bar"); ok {
		t.Error("Lookup should miss for unknown class")
	}
}

func TestRegistryOverloads(t *testing.T) {
	reg := NewRegistry()
	reg.Register(NewClass("com/example/Foo",
		NewMethod("id", TypeInt, []Type{TypeInt}, ident),
		NewMethod("id", TypeLong, []Type{TypeLong}, ident)))

	cls, _ := reg.Lookup("com/example/Foo")
	if len(cls.Methods()) != 2 {
		t.Fatalf("expected 2 overloads, got %d", len(cls.Methods()))
	}

	m, ok := cls.Method("id", "(J)J")
	if !ok {
		t.Fatal("long overload missing")
	}
	if m.Ret != TypeLong {
		t.Errorf("overload return = %v, want long", m.Ret)
	}
}

func TestRegistryMergeOnReregister(t *testing.T) {
	reg := NewRegistry()
	reg.Register(NewClass("com/example/Foo",
		NewMethod("a", TypeVoid, nil, ident)))
	reg.Register(NewClass("com/example/Foo",
		NewMethod("b", TypeVoid, nil, ident)))

	cls, _ := reg.Lookup("com/example/Foo")
	if len(cls.Methods()) != 2 {
		t.Errorf("re-registering a class should merge methods, got %d", len(cls.Methods()))
	}
	if reg.Count() != 1 {
		t.Errorf("Count = %d, want 1", reg.Count())
	}
}

func TestRegistryMerge(t *testing.T) {
	a := NewRegistry()
	a.Register(NewClass("com/example/A", NewMethod("m", TypeVoid, nil, ident)))

	b := NewRegistry()
	b.Register(NewClass("com/example/B", NewMethod("m", TypeVoid, nil, ident)))

	a.Merge(b)
	if a.Count() != 2 {
		t.Errorf("Count after merge = %d, want 2", a.Count())
	}
}

func TestNewMethodSignature(t *testing.T) {
	m := NewMethod("parse", TypeInt, []Type{TypeString}, ident)
	if m.Sig != "(Ljava/lang/String;)I" {
		t.Errorf("Sig = %q", m.Sig)
	}
}
