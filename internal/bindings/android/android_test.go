package android

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

	env := jni.NewEnv(emu, jni.DefaultRegistry)
	env.Install()
	return caller.New(env, &caller.CollectReporter{})
}

func TestLogD(t *testing.T) {
	c := newTestCaller(t)

	got, err := c.CallStaticInt("android/util/Log", "d",
		jni.StringValue("Tag"), jni.StringValue("message"))
	if err != nil {
		t.Fatalf("Log.d failed: %v", err)
	}
	if got != int32(len("Tag")+len("message")+2) {
		t.Errorf("Log.d returned %d", got)
	}
}

func TestSystemClockUptime(t *testing.T) {
	c := newTestCaller(t)

	got, err := c.CallStaticLong("android/os/SystemClock", "uptimeMillis")
	if err != nil {
		t.Fatalf("uptimeMillis failed: %v", err)
	}
	if got < 0 {
		t.Errorf("uptimeMillis = %d", got)
	}
}
