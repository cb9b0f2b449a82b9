package script

import (
	"testing"

	"github.com/zboralski/tarsier/internal/caller"
	"github.com/zboralski/tarsier/internal/emulator"
	"github.com/zboralski/tarsier/internal/jni"
)

func newTestEngine(t *testing.T) (*Engine, *caller.CollectReporter) {
	t.Helper()

	emu, err := emulator.New()
	if err != nil {
		t.Fatalf("Failed to create emulator: %v", err)
	}
	t.Cleanup(func() { emu.Close() })

	env := jni.NewEnv(emu, jni.NewRegistry())
	env.Install()

	rep := &caller.CollectReporter{}
	return New(caller.New(env, rep)), rep
}

func TestRegisterAndCall(t *testing.T) {
	eng, _ := newTestEngine(t)

	v, err := eng.Run(`
		registerStatic("com/example/Calc", "add", "(II)I", function(a, b) {
			return a + b;
		});
		callStatic("com/example/Calc", "add", "(II)I", 40, 2);
	`)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := v.ToInteger(); got != 42 {
		t.Errorf("add(40, 2) = %d, want 42", got)
	}
}

func TestStringRoundTrip(t *testing.T) {
	eng, _ := newTestEngine(t)

	v, err := eng.Run(`
		registerStatic("com/example/Fmt", "greet", "(Ljava/lang/String;)Ljava/lang/String;",
			function(name) { return "hello " + name; });
		callStatic("com/example/Fmt", "greet", "(Ljava/lang/String;)Ljava/lang/String;", "world");
	`)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := v.String(); got != "hello world" {
		t.Errorf("greet(\"world\") = %q", got)
	}
}

func TestDoubleDispatch(t *testing.T) {
	eng, _ := newTestEngine(t)

	v, err := eng.Run(`
		registerStatic("com/example/Calc", "scale", "(DF)D", function(x, f) {
			return x * f;
		});
		callStatic("com/example/Calc", "scale", "(DF)D", 2.5, 4);
	`)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := v.ToFloat(); got != 10.0 {
		t.Errorf("scale(2.5, 4) = %v, want 10", got)
	}
}

func TestMissProducesDiagnostic(t *testing.T) {
	eng, rep := newTestEngine(t)

	v, err := eng.Run(`callStatic("com/example/Nope", "m", "()I");`)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := v.ToInteger(); got != 0 {
		t.Errorf("miss should yield default int, got %d", got)
	}
	if msgs := rep.Messages(); len(msgs) != 1 {
		t.Errorf("diagnostics = %v", msgs)
	}
}

func TestBadSignatureRejected(t *testing.T) {
	eng, _ := newTestEngine(t)

	if _, err := eng.Run(`callStatic("com/example/X", "m", "(Q)I");`); err == nil {
		t.Error("malformed signature should fail the script")
	}
	if _, err := eng.Run(`callStatic("com/example/X", "m", "(I)I");`); err == nil {
		t.Error("argument count mismatch should fail the script")
	}
}
