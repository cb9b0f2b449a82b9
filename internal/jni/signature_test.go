package jni

import "testing"

func TestSignatureBuild(t *testing.T) {
	tests := []struct {
		ret    Type
		params []Type
		want   string
	}{
		{TypeVoid, nil, "()V"},
		{TypeLong, []Type{TypeInt, TypeInt}, "(II)J"},
		{TypeBoolean, []Type{TypeString}, "(Ljava/lang/String;)Z"},
		{TypeDouble, []Type{TypeFloat, TypeDouble}, "(FD)D"},
		{ObjectType("com/example/Foo"), []Type{TypeLong}, "(J)Lcom/example/Foo;"},
	}
	for _, tt := range tests {
		if got := Signature(tt.ret, tt.params...); got != tt.want {
			t.Errorf("Signature(%v, %v) = %q, want %q", tt.ret, tt.params, got, tt.want)
		}
	}
}

func TestParseSignature(t *testing.T) {
	params, ret, err := ParseSignature("(ILjava/lang/String;D)J")
	if err != nil {
		t.Fatalf("ParseSignature failed: %v", err)
	}
	if ret != TypeLong {
		t.Errorf("return type = %v, want long", ret)
	}
	if len(params) != 3 {
		t.Fatalf("got %d params, want 3", len(params))
	}
	if params[0] != TypeInt {
		t.Errorf("param 0 = %v, want int", params[0])
	}
	if params[1].Kind != KindObject || params[1].Class != "java/lang/String" {
		t.Errorf("param 1 = %v, want java/lang/String", params[1])
	}
	if params[2] != TypeDouble {
		t.Errorf("param 2 = %v, want double", params[2])
	}
}

func TestParseSignatureRejects(t *testing.T) {
	bad := []string{
		"",
		"II)V",          // no opening paren
		"(II",           // no closing paren
		"(V)V",          // void parameter
		"(I)VX",         // trailing characters
		"(Ljava/lang)V", // unterminated class
		"([I)V",         // arrays are out of scope
		"(B)V",          // byte is out of scope
	}
	for _, sig := range bad {
		if _, _, err := ParseSignature(sig); err == nil {
			t.Errorf("ParseSignature(%q) should fail", sig)
		}
	}
}

func TestParseSignatureRoundTrip(t *testing.T) {
	want := "(ZIJFD)Ljava/lang/String;"
	params, ret, err := ParseSignature(want)
	if err != nil {
		t.Fatalf("ParseSignature failed: %v", err)
	}
	if got := Signature(ret, params...); got != want {
		t.Errorf("round trip: %q != %q", got, want)
	}
}

func TestParseTypeName(t *testing.T) {
	tests := []struct {
		name string
		want Type
	}{
		{"void", TypeVoid},
		{"boolean", TypeBoolean},
		{"int", TypeInt},
		{"long", TypeLong},
		{"float", TypeFloat},
		{"double", TypeDouble},
		{"string", TypeString},
		{"String", TypeString},
		{"com/example/Foo", ObjectType("com/example/Foo")},
	}
	for _, tt := range tests {
		got, err := ParseTypeName(tt.name)
		if err != nil {
			t.Errorf("ParseTypeName(%q) failed: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTypeName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	if _, err := ParseTypeName("banana"); err == nil {
		t.Error("ParseTypeName should reject names that are neither primitive nor class path")
	}
}
