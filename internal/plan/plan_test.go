package plan

import (
	"strings"
	"testing"

	"github.com/zboralski/tarsier/internal/caller"
	"github.com/zboralski/tarsier/internal/emulator"
	"github.com/zboralski/tarsier/internal/jni"
)

const samplePlan = `
name: sample
stubs:
  - class: com/example/Config
    methods:
      - name: version
        returns: int
        result: {int: 3}
      - name: label
        returns: string
        params: [int]
        result: {string: beta}
calls:
  - class: com/example/Config
    method: version
    returns: int
  - class: com/example/Config
    method: label
    returns: string
    args:
      - {int: 7}
  - class: com/example/Gone
    method: anything
    returns: long
`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(samplePlan))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p.Name != "sample" {
		t.Errorf("Name = %q", p.Name)
	}
	if len(p.Stubs) != 1 || len(p.Stubs[0].Methods) != 2 {
		t.Fatalf("unexpected stubs: %+v", p.Stubs)
	}
	if len(p.Calls) != 3 {
		t.Fatalf("got %d calls, want 3", len(p.Calls))
	}
}

func TestParseRejects(t *testing.T) {
	bad := []struct {
		name string
		yaml string
	}{
		{"unknown return type", "calls:\n  - {class: a/B, method: m, returns: banana}\n"},
		{"missing class", "calls:\n  - {method: m, returns: int}\n"},
		{"two arg fields", "calls:\n  - class: a/B\n    method: m\n    returns: int\n    args:\n      - {int: 1, long: 2}\n"},
		{"stub without name", "stubs:\n  - class: a/B\n    methods:\n      - {returns: int}\n"},
		{"void param", "stubs:\n  - class: a/B\n    methods:\n      - {name: m, returns: int, params: [void]}\n"},
	}
	for _, tt := range bad {
		if _, err := Parse([]byte(tt.yaml)); err == nil {
			t.Errorf("%s: Parse should fail", tt.name)
		}
	}
}

func TestArgValue(t *testing.T) {
	n := int32(5)
	v, err := Arg{Int: &n}.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if v.Kind != jni.KindInt || v.AsInt() != 5 {
		t.Errorf("got %+v", v)
	}

	if _, err := (Arg{}).Value(); err == nil {
		t.Error("empty arg should fail")
	}
}

func TestRun(t *testing.T) {
	emu, err := emulator.New()
	if err != nil {
		t.Fatalf("Failed to create emulator: %v", err)
	}
	defer emu.Close()

	reg := jni.NewRegistry()
	env := jni.NewEnv(emu, reg)
	env.Install()

	rep := &caller.CollectReporter{}
	c := caller.New(env, rep)

	p, err := Parse([]byte(samplePlan))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	results, err := p.Run(c)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	if got := results[0].Value.AsInt(); got != 3 {
		t.Errorf("version() = %d, want 3", got)
	}
	if results[0].Sig != "()I" {
		t.Errorf("version sig = %q", results[0].Sig)
	}

	if got := results[1].Value.AsString(); got != "beta" {
		t.Errorf("label(7) = %q, want beta", got)
	}
	if results[1].Sig != "(I)Ljava/lang/String;" {
		t.Errorf("label sig = %q", results[1].Sig)
	}

	// The unbound class still yields a default result plus a diagnostic.
	if got := results[2].Value.AsLong(); got != 0 {
		t.Errorf("missing class call = %d, want 0", got)
	}
	msgs := rep.Messages()
	if len(msgs) != 1 || !strings.Contains(msgs[0], "com/example/Gone") {
		t.Errorf("diagnostics = %v", msgs)
	}
}
