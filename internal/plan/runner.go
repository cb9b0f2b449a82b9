package plan

import (
	"github.com/zboralski/tarsier/internal/caller"
	"github.com/zboralski/tarsier/internal/jni"
)

// Result is the outcome of one plan call.
type Result struct {
	Class  string
	Method string
	Sig    string
	Value  jni.Value
}

// Run applies the plan's stubs to the caller's registry and dispatches its
// calls in order. Resolution misses surface through the caller's reporter
// and still produce a Result; only environment failures abort the run.
func (p *Plan) Run(c *caller.Caller) ([]Result, error) {
	if err := p.Apply(c.Env().Registry()); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(p.Calls))
	for _, call := range p.Calls {
		ret, err := jni.ParseTypeName(call.Returns)
		if err != nil {
			return results, err
		}
		args := make([]jni.Value, len(call.Args))
		for i, a := range call.Args {
			if args[i], err = a.Value(); err != nil {
				return results, err
			}
		}

		params := make([]jni.Type, len(args))
		for i, a := range args {
			params[i] = a.Type()
		}

		v, err := c.CallStatic(call.Class, call.Method, ret, args...)
		if err != nil {
			return results, err
		}
		results = append(results, Result{
			Class:  call.Class,
			Method: call.Method,
			Sig:    jni.Signature(ret, params...),
			Value:  v,
		})
	}
	return results, nil
}
