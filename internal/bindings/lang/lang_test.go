package lang

import (
	"testing"

	"github.com/zboralski/tarsier/internal/caller"
	"github.com/zboralski/tarsier/internal/emulator"
	"github.com/zboralski/tarsier/internal/jni"
)

func newTestCaller(t *testing.T) *caller.Caller {
	t.Helper()

	emu, err := emulator.New()
	if err != nil {
		t.Fatalf("Failed to create emulator: %v", err)
	}
	t.Cleanup(func() { emu.Close() })

	// The init() of this package binds into DefaultRegistry.
	env := jni.NewEnv(emu, jni.DefaultRegistry)
	env.Install()
	return caller.New(env, &caller.CollectReporter{})
}

func TestMathMax(t *testing.T) {
	c := newTestCaller(t)

	got, err := c.CallStaticInt("java/lang/Math", "max", jni.IntValue(3), jni.IntValue(9))
	if err != nil {
		t.Fatalf("max failed: %v", err)
	}
	if got != 9 {
		t.Errorf("Math.max(3, 9) = %d, want 9", got)
	}
}

func TestMathSqrt(t *testing.T) {
	c := newTestCaller(t)

	got, err := c.CallStaticDouble("java/lang/Math", "sqrt", jni.DoubleValue(144))
	if err != nil {
		t.Fatalf("sqrt failed: %v", err)
	}
	if got != 12 {
		t.Errorf("Math.sqrt(144) = %v, want 12", got)
	}
}

func TestIntegerParseInt(t *testing.T) {
	c := newTestCaller(t)

	got, err := c.CallStaticInt("java/lang/Integer", "parseInt", jni.StringValue("-123"))
	if err != nil {
		t.Fatalf("parseInt failed: %v", err)
	}
	if got != -123 {
		t.Errorf("Integer.parseInt(\"-123\") = %d", got)
	}
}

func TestIntegerToString(t *testing.T) {
	c := newTestCaller(t)

	got, err := c.CallStaticString("java/lang/Integer", "toString", jni.IntValue(77))
	if err != nil {
		t.Fatalf("toString failed: %v", err)
	}
	if got != "77" {
		t.Errorf("Integer.toString(77) = %q", got)
	}
}

func TestBooleanParseBoolean(t *testing.T) {
	c := newTestCaller(t)

	got, err := c.CallStaticBoolean("java/lang/Boolean", "parseBoolean", jni.StringValue("TRUE"))
	if err != nil {
		t.Fatalf("parseBoolean failed: %v", err)
	}
	if !got {
		t.Error("Boolean.parseBoolean(\"TRUE\") should be true")
	}
}

func TestSystemCurrentTimeMillis(t *testing.T) {
	c := newTestCaller(t)

	got, err := c.CallStaticLong("java/lang/System", "currentTimeMillis")
	if err != nil {
		t.Fatalf("currentTimeMillis failed: %v", err)
	}
	if got <= 0 {
		t.Errorf("System.currentTimeMillis() = %d", got)
	}
}
