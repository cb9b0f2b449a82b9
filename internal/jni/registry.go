package jni

import (
	"sort"
	"sync"

	glog "github.com/zboralski/tarsier/internal/log"
)

// Func implements a static Java method in Go. It receives the environment
// (for interning result strings and reaching the emulator) and the already
// unmarshalled arguments.
type Func func(env *Env, args []Value) Value

// Method is one bound static method: name, exact signature, and the Go
// function that backs it.
type Method struct {
	Class  string
	Name   string
	Sig    string
	Ret    Type
	Params []Type
	Fn     Func
}

// NewMethod builds a Method, computing its signature from the return and
// parameter types.
func NewMethod(name string, ret Type, params []Type, fn Func) *Method {
	return &Method{
		Name:   name,
		Sig:    Signature(ret, params...),
		Ret:    ret,
		Params: params,
		Fn:     fn,
	}
}

// Class groups the static methods bound for one Java class.
type Class struct {
	Name string

	mu      sync.RWMutex
	methods map[string]*Method // keyed by name + signature
}

// NewClass creates a class binding with the given methods.
func NewClass(name string, methods ...*Method) *Class {
	c := &Class{
		Name:    name,
		methods: make(map[string]*Method),
	}
	for _, m := range methods {
		c.Add(m)
	}
	return c
}

// Add binds a method. A method with the same name and signature is replaced.
func (c *Class) Add(m *Method) {
	m.Class = c.Name
	c.mu.Lock()
	defer c.mu.Unlock()
	c.methods[m.Name+m.Sig] = m
}

// Method looks up a method by name and exact signature.
// A signature mismatch is indistinguishable from an unknown method,
// matching GetStaticMethodID semantics.
func (c *Class) Method(name, sig string) (*Method, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.methods[name+sig]
	return m, ok
}

// Methods returns the bound methods sorted by name then signature.
func (c *Class) Methods() []*Method {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Method, 0, len(c.methods))
	for _, m := range c.methods {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Sig < out[j].Sig
	})
	return out
}

// Registry maps Java class names to their bindings. Binding packages
// self-register into DefaultRegistry via init().
type Registry struct {
	mu      sync.RWMutex
	classes map[string]*Class

	// OnCall is invoked for every environment event (for trace collection).
	OnCall func(category, name, detail string)
}

// DefaultRegistry is the global registry used by init() functions.
var DefaultRegistry = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{classes: make(map[string]*Class)}
}

// Register adds a class binding. If the class is already present, the new
// methods are merged into it.
func (r *Registry) Register(c *Class) {
	r.mu.Lock()
	existing, ok := r.classes[c.Name]
	if !ok {
		r.classes[c.Name] = c
		r.mu.Unlock()
	} else {
		r.mu.Unlock()
		for _, m := range c.Methods() {
			existing.Add(m)
		}
	}

	if glog.L != nil {
		for _, m := range c.Methods() {
			glog.L.BindingRegister(c.Name, m.Name, m.Sig)
		}
	}
}

// RegisterMethod binds a single method on a class, creating the class
// binding if needed.
func (r *Registry) RegisterMethod(class string, m *Method) {
	r.mu.Lock()
	c, ok := r.classes[class]
	if !ok {
		c = NewClass(class)
		r.classes[class] = c
	}
	r.mu.Unlock()
	c.Add(m)

	if glog.L != nil {
		glog.L.BindingRegister(class, m.Name, m.Sig)
	}
}

// Lookup finds a class binding by JNI class path.
func (r *Registry) Lookup(name string) (*Class, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.classes[name]
	return c, ok
}

// Classes returns all bindings sorted by class name.
func (r *Registry) Classes() []*Class {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Class, 0, len(r.classes))
	for _, c := range r.classes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Count returns the number of bound classes.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.classes)
}

// Merge copies all bindings from another registry into this one.
func (r *Registry) Merge(other *Registry) {
	for _, c := range other.Classes() {
		for _, m := range c.Methods() {
			r.RegisterMethod(c.Name, m)
		}
	}
}

// Log calls the OnCall callback and logs via zap. This is the primary
// method for environment handlers to report their activity.
func (r *Registry) Log(pc uint64, category, name, detail string) {
	r.mu.RLock()
	cb := r.OnCall
	r.mu.RUnlock()

	if cb != nil {
		cb(category, name, detail)
	}

	if glog.L != nil {
		glog.L.Trace(pc, category, name, detail)
	}
}

// Convenience functions for the default registry.

// Register adds a class binding to the default registry.
func Register(c *Class) {
	DefaultRegistry.Register(c)
}

// RegisterMethod binds a method on a class in the default registry.
func RegisterMethod(class string, m *Method) {
	DefaultRegistry.RegisterMethod(class, m)
}

// Debug enables verbose logging of binding registration.
var Debug = false
