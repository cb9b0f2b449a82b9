// Package plan loads declarative harness runs from YAML.
//
// A plan names extra class stubs to bind for the run and a sequence of
// static calls to dispatch. Stub methods answer with a constant result,
// which is enough to exercise resolution, signatures and dispatch against
// classes that have no Go binding.
package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zboralski/tarsier/internal/jni"
)

// Arg is one typed argument or constant result in a plan. Exactly one
// field may be set.
type Arg struct {
	Int    *int32   `yaml:"int,omitempty"`
	Long   *int64   `yaml:"long,omitempty"`
	Float  *float32 `yaml:"float,omitempty"`
	Double *float64 `yaml:"double,omitempty"`
	Bool   *bool    `yaml:"boolean,omitempty"`
	Str    *string  `yaml:"string,omitempty"`
}

// Value converts the argument to a jni.Value.
func (a Arg) Value() (jni.Value, error) {
	set := 0
	var v jni.Value
	if a.Int != nil {
		set++
		v = jni.IntValue(*a.Int)
	}
	if a.Long != nil {
		set++
		v = jni.LongValue(*a.Long)
	}
	if a.Float != nil {
		set++
		v = jni.FloatValue(*a.Float)
	}
	if a.Double != nil {
		set++
		v = jni.DoubleValue(*a.Double)
	}
	if a.Bool != nil {
		set++
		v = jni.BoolValue(*a.Bool)
	}
	if a.Str != nil {
		set++
		v = jni.StringValue(*a.Str)
	}
	if set != 1 {
		return jni.Value{}, fmt.Errorf("argument must set exactly one of int, long, float, double, boolean, string")
	}
	return v, nil
}

// StubMethod declares a constant-result static method on a stub class.
type StubMethod struct {
	Name    string   `yaml:"name"`
	Returns string   `yaml:"returns"`
	Params  []string `yaml:"params,omitempty"`
	Result  *Arg     `yaml:"result,omitempty"`
}

// StubClass declares a class binding local to the plan.
type StubClass struct {
	Class   string       `yaml:"class"`
	Methods []StubMethod `yaml:"methods"`
}

// Call is one static call to dispatch.
type Call struct {
	Class   string `yaml:"class"`
	Method  string `yaml:"method"`
	Returns string `yaml:"returns"`
	Args    []Arg  `yaml:"args,omitempty"`
}

// Plan is a named sequence of stubs and calls.
type Plan struct {
	Name  string      `yaml:"name"`
	Stubs []StubClass `yaml:"stubs,omitempty"`
	Calls []Call      `yaml:"calls,omitempty"`
}

// Load reads and validates a plan file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates plan YAML.
func Parse(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse plan: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Plan) validate() error {
	for i, s := range p.Stubs {
		if s.Class == "" {
			return fmt.Errorf("stub %d: missing class", i)
		}
		for j, m := range s.Methods {
			if m.Name == "" {
				return fmt.Errorf("stub %s: method %d: missing name", s.Class, j)
			}
			if _, err := jni.ParseTypeName(m.Returns); err != nil {
				return fmt.Errorf("stub %s.%s: %w", s.Class, m.Name, err)
			}
			for _, pn := range m.Params {
				t, err := jni.ParseTypeName(pn)
				if err != nil {
					return fmt.Errorf("stub %s.%s: %w", s.Class, m.Name, err)
				}
				if t.Kind == jni.KindVoid {
					return fmt.Errorf("stub %s.%s: void parameter", s.Class, m.Name)
				}
			}
		}
	}
	for i, c := range p.Calls {
		if c.Class == "" || c.Method == "" {
			return fmt.Errorf("call %d: missing class or method", i)
		}
		if _, err := jni.ParseTypeName(c.Returns); err != nil {
			return fmt.Errorf("call %d (%s.%s): %w", i, c.Class, c.Method, err)
		}
		for j, a := range c.Args {
			if _, err := a.Value(); err != nil {
				return fmt.Errorf("call %d (%s.%s): arg %d: %w", i, c.Class, c.Method, j, err)
			}
		}
	}
	return nil
}

// Apply registers the plan's stub classes into the registry. Stub methods
// ignore their arguments and answer with the declared constant, or the
// default value of the return type when no result is given.
func (p *Plan) Apply(reg *jni.Registry) error {
	for _, s := range p.Stubs {
		cls := jni.NewClass(s.Class)
		for _, m := range s.Methods {
			ret, err := jni.ParseTypeName(m.Returns)
			if err != nil {
				return err
			}
			params := make([]jni.Type, len(m.Params))
			for i, pn := range m.Params {
				if params[i], err = jni.ParseTypeName(pn); err != nil {
					return err
				}
			}

			result := jni.DefaultOf(ret)
			if m.Result != nil {
				if result, err = m.Result.Value(); err != nil {
					return fmt.Errorf("stub %s.%s: %w", s.Class, m.Name, err)
				}
			}

			cls.Add(jni.NewMethod(m.Name, ret, params,
				func(env *jni.Env, args []jni.Value) jni.Value {
					return result
				}))
		}
		reg.Register(cls)
	}
	return nil
}
