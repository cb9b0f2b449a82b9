// Package caller dispatches static Java method calls through the fake JNI
// environment.
//
// A call names a class, a method, a declared return type and a list of
// argument values. The caller derives the JNI signature from the argument
// and return types, resolves the class and method through the environment,
// and invokes the CallStatic variant matching the declared return type.
// Resolution failures are reported as diagnostics and yield a
// default-constructed result instead of an error.
package caller

import (
	"fmt"

	"github.com/zboralski/tarsier/internal/jni"
)

// Caller resolves and invokes static methods through a JNI environment.
type Caller struct {
	env *jni.Env
	rep Reporter
}

// New creates a Caller. A nil reporter means diagnostics go to the global
// logger.
func New(env *jni.Env, rep Reporter) *Caller {
	if rep == nil {
		rep = LogReporter{}
	}
	return &Caller{env: env, rep: rep}
}

// Env returns the environment behind the caller.
func (c *Caller) Env() *jni.Env {
	return c.env
}

// signatureFor derives the JNI signature of a call from its argument
// values and declared return type.
func signatureFor(ret jni.Type, args []jni.Value) string {
	params := make([]jni.Type, len(args))
	for i, a := range args {
		params[i] = a.Type()
	}
	return jni.Signature(ret, params...)
}

// CallStatic invokes class.method with the given arguments and declared
// return type. Class and method handles are resolved fresh on every call.
// When the class or method cannot be resolved, the diagnostic is reported
// and the default-constructed value of the return type comes back. The
// error return covers environment failures only, never resolution misses.
func (c *Caller) CallStatic(class, method string, ret jni.Type, args ...jni.Value) (jni.Value, error) {
	sig := signatureFor(ret, args)

	gpArgs, fpArgs := 0, 0
	for _, a := range args {
		if a.Kind.FloatingPoint() {
			fpArgs++
		} else {
			gpArgs++
		}
	}
	if gpArgs > 5 || fpArgs > 8 {
		c.rep.InternalError("too many arguments for method [" + method + "] on class [" + class + "], signature [" + sig + "]")
		return jni.DefaultOf(ret), nil
	}

	cls, err := c.env.FindClass(class)
	if err != nil {
		return jni.DefaultOf(ret), fmt.Errorf("find class %s: %w", class, err)
	}
	if cls == 0 {
		c.rep.InternalError("class not found [" + class + "]")
		return jni.DefaultOf(ret), nil
	}

	mid, err := c.env.GetStaticMethodID(cls, method, sig)
	if err != nil {
		return jni.DefaultOf(ret), fmt.Errorf("resolve %s.%s: %w", class, method, err)
	}
	if mid == 0 {
		c.rep.InternalError("method [" + method + "] for class [" + class + "] not found, tried signature [" + sig + "]")
		return jni.DefaultOf(ret), nil
	}

	return c.dispatch(cls, mid, ret, args)
}

// dispatch selects the CallStatic variant for the declared return type and
// converts the raw result back into a Value.
func (c *Caller) dispatch(cls, mid uint64, ret jni.Type, args []jni.Value) (jni.Value, error) {
	switch ret.Kind {
	case jni.KindVoid:
		err := c.env.CallStaticVoidMethod(cls, mid, args...)
		return jni.VoidValue(), err
	case jni.KindBoolean:
		b, err := c.env.CallStaticBooleanMethod(cls, mid, args...)
		return jni.BoolValue(b), err
	case jni.KindInt:
		i, err := c.env.CallStaticIntMethod(cls, mid, args...)
		return jni.IntValue(i), err
	case jni.KindLong:
		i, err := c.env.CallStaticLongMethod(cls, mid, args...)
		return jni.LongValue(i), err
	case jni.KindFloat:
		f, err := c.env.CallStaticFloatMethod(cls, mid, args...)
		return jni.FloatValue(f), err
	case jni.KindDouble:
		f, err := c.env.CallStaticDoubleMethod(cls, mid, args...)
		return jni.DoubleValue(f), err
	case jni.KindObject:
		ref, err := c.env.CallStaticObjectMethod(cls, mid, args...)
		if err != nil {
			return jni.DefaultOf(ret), err
		}
		if s, ok := c.env.LookupString(ref); ok {
			return jni.StringValue(s), nil
		}
		return jni.RefValue(ret.Class, ref), nil
	}
	return jni.VoidValue(), fmt.Errorf("unsupported return kind %v", ret.Kind)
}

// Typed convenience wrappers.

// CallStaticVoid invokes a void static method.
func (c *Caller) CallStaticVoid(class, method string, args ...jni.Value) error {
	_, err := c.CallStatic(class, method, jni.TypeVoid, args...)
	return err
}

// CallStaticBoolean invokes a boolean static method.
func (c *Caller) CallStaticBoolean(class, method string, args ...jni.Value) (bool, error) {
	v, err := c.CallStatic(class, method, jni.TypeBoolean, args...)
	return v.AsBool(), err
}

// CallStaticInt invokes an int static method.
func (c *Caller) CallStaticInt(class, method string, args ...jni.Value) (int32, error) {
	v, err := c.CallStatic(class, method, jni.TypeInt, args...)
	return v.AsInt(), err
}

// CallStaticLong invokes a long static method.
func (c *Caller) CallStaticLong(class, method string, args ...jni.Value) (int64, error) {
	v, err := c.CallStatic(class, method, jni.TypeLong, args...)
	return v.AsLong(), err
}

// CallStaticFloat invokes a float static method.
func (c *Caller) CallStaticFloat(class, method string, args ...jni.Value) (float32, error) {
	v, err := c.CallStatic(class, method, jni.TypeFloat, args...)
	return v.AsFloat(), err
}

// CallStaticDouble invokes a double static method.
func (c *Caller) CallStaticDouble(class, method string, args ...jni.Value) (float64, error) {
	v, err := c.CallStatic(class, method, jni.TypeDouble, args...)
	return v.AsDouble(), err
}

// CallStaticString invokes a static method returning java/lang/String.
// A null result comes back as "".
func (c *Caller) CallStaticString(class, method string, args ...jni.Value) (string, error) {
	v, err := c.CallStatic(class, method, jni.TypeString, args...)
	return v.AsString(), err
}

// CallStaticObject invokes a static method returning an object of the
// given class.
func (c *Caller) CallStaticObject(class, method, retClass string, args ...jni.Value) (jni.Value, error) {
	return c.CallStatic(class, method, jni.ObjectType(retClass), args...)
}
