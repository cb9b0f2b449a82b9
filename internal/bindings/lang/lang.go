// Package lang binds a working subset of java.lang static methods.
package lang

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/zboralski/tarsier/internal/jni"
)

func init() {
	registerMath()
	registerInteger()
	registerLong()
	registerBoolean()
	registerString()
	registerSystem()
}

func registerMath() {
	jni.Register(jni.NewClass("java/lang/Math",
		jni.NewMethod("abs", jni.TypeInt, []jni.Type{jni.TypeInt},
			func(env *jni.Env, args []jni.Value) jni.Value {
				v := args[0].AsInt()
				if v < 0 {
					v = -v
				}
				return jni.IntValue(v)
			}),
		jni.NewMethod("abs", jni.TypeDouble, []jni.Type{jni.TypeDouble},
			func(env *jni.Env, args []jni.Value) jni.Value {
				return jni.DoubleValue(math.Abs(args[0].AsDouble()))
			}),
		jni.NewMethod("max", jni.TypeInt, []jni.Type{jni.TypeInt, jni.TypeInt},
			func(env *jni.Env, args []jni.Value) jni.Value {
				return jni.IntValue(max(args[0].AsInt(), args[1].AsInt()))
			}),
		jni.NewMethod("min", jni.TypeInt, []jni.Type{jni.TypeInt, jni.TypeInt},
			func(env *jni.Env, args []jni.Value) jni.Value {
				return jni.IntValue(min(args[0].AsInt(), args[1].AsInt()))
			}),
		jni.NewMethod("sqrt", jni.TypeDouble, []jni.Type{jni.TypeDouble},
			func(env *jni.Env, args []jni.Value) jni.Value {
				return jni.DoubleValue(math.Sqrt(args[0].AsDouble()))
			}),
		jni.NewMethod("pow", jni.TypeDouble, []jni.Type{jni.TypeDouble, jni.TypeDouble},
			func(env *jni.Env, args []jni.Value) jni.Value {
				return jni.DoubleValue(math.Pow(args[0].AsDouble(), args[1].AsDouble()))
			}),
		jni.NewMethod("floor", jni.TypeDouble, []jni.Type{jni.TypeDouble},
			func(env *jni.Env, args []jni.Value) jni.Value {
				return jni.DoubleValue(math.Floor(args[0].AsDouble()))
			}),
		jni.NewMethod("random", jni.TypeDouble, nil,
			func(env *jni.Env, args []jni.Value) jni.Value {
				return jni.DoubleValue(rand.Float64())
			}),
	))
}

func registerInteger() {
	jni.Register(jni.NewClass("java/lang/Integer",
		jni.NewMethod("parseInt", jni.TypeInt, []jni.Type{jni.TypeString},
			func(env *jni.Env, args []jni.Value) jni.Value {
				// NumberFormatException has no channel here; a bad
				// input parses to zero.
				n, _ := strconv.ParseInt(strings.TrimSpace(args[0].AsString()), 10, 32)
				return jni.IntValue(int32(n))
			}),
		jni.NewMethod("toString", jni.TypeString, []jni.Type{jni.TypeInt},
			func(env *jni.Env, args []jni.Value) jni.Value {
				return jni.StringValue(strconv.FormatInt(int64(args[0].AsInt()), 10))
			}),
		jni.NewMethod("toHexString", jni.TypeString, []jni.Type{jni.TypeInt},
			func(env *jni.Env, args []jni.Value) jni.Value {
				return jni.StringValue(strconv.FormatUint(uint64(uint32(args[0].AsInt())), 16))
			}),
	))
}

func registerLong() {
	jni.Register(jni.NewClass("java/lang/Long",
		jni.NewMethod("parseLong", jni.TypeLong, []jni.Type{jni.TypeString},
			func(env *jni.Env, args []jni.Value) jni.Value {
				n, _ := strconv.ParseInt(strings.TrimSpace(args[0].AsString()), 10, 64)
				return jni.LongValue(n)
			}),
		jni.NewMethod("toString", jni.TypeString, []jni.Type{jni.TypeLong},
			func(env *jni.Env, args []jni.Value) jni.Value {
				return jni.StringValue(strconv.FormatInt(args[0].AsLong(), 10))
			}),
	))
}

func registerBoolean() {
	jni.Register(jni.NewClass("java/lang/Boolean",
		jni.NewMethod("parseBoolean", jni.TypeBoolean, []jni.Type{jni.TypeString},
			func(env *jni.Env, args []jni.Value) jni.Value {
				return jni.BoolValue(strings.EqualFold(args[0].AsString(), "true"))
			}),
	))
}

func registerString() {
	jni.Register(jni.NewClass("java/lang/String",
		jni.NewMethod("valueOf", jni.TypeString, []jni.Type{jni.TypeInt},
			func(env *jni.Env, args []jni.Value) jni.Value {
				return jni.StringValue(strconv.FormatInt(int64(args[0].AsInt()), 10))
			}),
		jni.NewMethod("valueOf", jni.TypeString, []jni.Type{jni.TypeLong},
			func(env *jni.Env, args []jni.Value) jni.Value {
				return jni.StringValue(strconv.FormatInt(args[0].AsLong(), 10))
			}),
		jni.NewMethod("valueOf", jni.TypeString, []jni.Type{jni.TypeDouble},
			func(env *jni.Env, args []jni.Value) jni.Value {
				return jni.StringValue(strconv.FormatFloat(args[0].AsDouble(), 'g', -1, 64))
			}),
		jni.NewMethod("valueOf", jni.TypeString, []jni.Type{jni.TypeBoolean},
			func(env *jni.Env, args []jni.Value) jni.Value {
				if args[0].AsBool() {
					return jni.StringValue("true")
				}
				return jni.StringValue("false")
			}),
	))
}

func registerSystem() {
	jni.Register(jni.NewClass("java/lang/System",
		jni.NewMethod("currentTimeMillis", jni.TypeLong, nil,
			func(env *jni.Env, args []jni.Value) jni.Value {
				return jni.LongValue(time.Now().UnixMilli())
			}),
		jni.NewMethod("nanoTime", jni.TypeLong, nil,
			func(env *jni.Env, args []jni.Value) jni.Value {
				return jni.LongValue(time.Now().UnixNano())
			}),
		jni.NewMethod("lineSeparator", jni.TypeString, nil,
			func(env *jni.Env, args []jni.Value) jni.Value {
				return jni.StringValue("\n")
			}),
		jni.NewMethod("getProperty", jni.TypeString, []jni.Type{jni.TypeString},
			func(env *jni.Env, args []jni.Value) jni.Value {
				switch args[0].AsString() {
				case "os.name":
					return jni.StringValue("Linux")
				case "line.separator":
					return jni.StringValue("\n")
				case "java.vm.name":
					return jni.StringValue("Dalvik")
				}
				return jni.Value{Kind: jni.KindObject, Class: "java/lang/String"}
			}),
	))
}
