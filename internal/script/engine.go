// Package script embeds a JavaScript engine for driving the harness.
//
// Scripts can bind new static methods backed by JavaScript functions and
// dispatch static calls, which makes it cheap to probe resolution and
// dispatch behavior without recompiling.
package script

import (
	"fmt"
	"os"

	"github.com/dop251/goja"

	"github.com/zboralski/tarsier/internal/caller"
	"github.com/zboralski/tarsier/internal/jni"
	glog "github.com/zboralski/tarsier/internal/log"
)

// Engine wraps a goja runtime wired to a caller.
type Engine struct {
	vm *goja.Runtime
	c  *caller.Caller
}

// New creates an engine and installs the harness API:
//
//	registerStatic(class, method, sig, fn)
//	callStatic(class, method, sig, ...args)
//	log(msg)
func New(c *caller.Caller) *Engine {
	e := &Engine{vm: goja.New(), c: c}
	e.vm.Set("registerStatic", e.registerStatic)
	e.vm.Set("callStatic", e.callStatic)
	e.vm.Set("log", func(msg string) {
		if glog.L != nil {
			glog.L.TraceSimple("script", "log", msg)
		}
	})
	return e
}

// Run executes script source.
func (e *Engine) Run(src string) (goja.Value, error) {
	v, err := e.vm.RunString(src)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return v, nil
}

// RunFile executes a script file.
func (e *Engine) RunFile(path string) (goja.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return e.Run(string(data))
}

// registerStatic binds class.method with the given JNI signature to a
// JavaScript function.
func (e *Engine) registerStatic(class, method, sig string, fn goja.Callable) error {
	params, ret, err := jni.ParseSignature(sig)
	if err != nil {
		return err
	}

	e.c.Env().Registry().RegisterMethod(class, jni.NewMethod(method, ret, params,
		func(env *jni.Env, args []jni.Value) jni.Value {
			jsArgs := make([]goja.Value, len(args))
			for i, a := range args {
				jsArgs[i] = e.toJS(a)
			}
			res, err := fn(goja.Undefined(), jsArgs...)
			if err != nil {
				if glog.L != nil {
					glog.L.TraceSimple("script", "error", class+"."+method+": "+err.Error())
				}
				return jni.DefaultOf(ret)
			}
			return fromJS(ret, res)
		}))
	return nil
}

// callStatic dispatches a static call. Arguments are coerced to the
// parameter types of the signature.
func (e *Engine) callStatic(class, method, sig string, args ...goja.Value) (goja.Value, error) {
	params, ret, err := jni.ParseSignature(sig)
	if err != nil {
		return nil, err
	}
	if len(args) != len(params) {
		return nil, fmt.Errorf("callStatic %s.%s: want %d args, got %d", class, method, len(params), len(args))
	}

	vals := make([]jni.Value, len(args))
	for i, a := range args {
		vals[i] = fromJS(params[i], a)
	}

	res, err := e.c.CallStatic(class, method, ret, vals...)
	if err != nil {
		return nil, err
	}
	return e.toJS(res), nil
}

// toJS converts a native value into its JavaScript representation.
func (e *Engine) toJS(v jni.Value) goja.Value {
	switch v.Kind {
	case jni.KindVoid:
		return goja.Undefined()
	case jni.KindBoolean:
		return e.vm.ToValue(v.AsBool())
	case jni.KindInt:
		return e.vm.ToValue(v.AsInt())
	case jni.KindLong:
		return e.vm.ToValue(v.AsLong())
	case jni.KindFloat:
		return e.vm.ToValue(float64(v.AsFloat()))
	case jni.KindDouble:
		return e.vm.ToValue(v.AsDouble())
	case jni.KindObject:
		if v.IsStr {
			return e.vm.ToValue(v.Str)
		}
		if v.Ref == 0 {
			return goja.Null()
		}
		return e.vm.ToValue(v.Ref)
	}
	return goja.Undefined()
}

// fromJS coerces a JavaScript value to a native value of type t.
func fromJS(t jni.Type, v goja.Value) jni.Value {
	switch t.Kind {
	case jni.KindVoid:
		return jni.VoidValue()
	case jni.KindBoolean:
		return jni.BoolValue(v.ToBoolean())
	case jni.KindInt:
		return jni.IntValue(int32(v.ToInteger()))
	case jni.KindLong:
		return jni.LongValue(v.ToInteger())
	case jni.KindFloat:
		return jni.FloatValue(float32(v.ToFloat()))
	case jni.KindDouble:
		return jni.DoubleValue(v.ToFloat())
	case jni.KindObject:
		if goja.IsNull(v) || goja.IsUndefined(v) {
			return jni.DefaultOf(t)
		}
		return jni.StringValue(v.String())
	}
	return jni.VoidValue()
}
