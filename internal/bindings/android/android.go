// Package android binds the static methods of a few android.* classes.
package android

import (
	"time"

	"github.com/zboralski/tarsier/internal/jni"
	glog "github.com/zboralski/tarsier/internal/log"
)

// bootTime anchors SystemClock so uptime readings are monotonic within
// a harness run.
var bootTime = time.Now()

func init() {
	registerLog()
	registerSystemClock()
}

func registerLog() {
	// Log.d/i/w/e all return the number of bytes written to the log.
	logFn := func(level string) jni.Func {
		return func(env *jni.Env, args []jni.Value) jni.Value {
			tag := args[0].AsString()
			msg := args[1].AsString()
			if glog.L != nil {
				glog.L.TraceSimple("android", "Log."+level, tag+": "+msg)
			}
			return jni.IntValue(int32(len(tag) + len(msg) + 2))
		}
	}

	params := []jni.Type{jni.TypeString, jni.TypeString}
	jni.Register(jni.NewClass("android/util/Log",
		jni.NewMethod("v", jni.TypeInt, params, logFn("v")),
		jni.NewMethod("d", jni.TypeInt, params, logFn("d")),
		jni.NewMethod("i", jni.TypeInt, params, logFn("i")),
		jni.NewMethod("w", jni.TypeInt, params, logFn("w")),
		jni.NewMethod("e", jni.TypeInt, params, logFn("e")),
	))
}

func registerSystemClock() {
	jni.Register(jni.NewClass("android/os/SystemClock",
		jni.NewMethod("uptimeMillis", jni.TypeLong, nil,
			func(env *jni.Env, args []jni.Value) jni.Value {
				return jni.LongValue(time.Since(bootTime).Milliseconds())
			}),
		jni.NewMethod("elapsedRealtime", jni.TypeLong, nil,
			func(env *jni.Env, args []jni.Value) jni.Value {
				return jni.LongValue(time.Since(bootTime).Milliseconds())
			}),
		jni.NewMethod("elapsedRealtimeNanos", jni.TypeLong, nil,
			func(env *jni.Env, args []jni.Value) jni.Value {
				return jni.LongValue(time.Since(bootTime).Nanoseconds())
			}),
	))
}
