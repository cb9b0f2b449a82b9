package caller

import (
	"sync"

	glog "github.com/zboralski/tarsier/internal/log"
)

// Reporter receives diagnostics for calls that could not be dispatched.
// Resolution failures are reported here and the call still produces a
// default-constructed result, so a broken binding never takes the harness
// down.
type Reporter interface {
	InternalError(msg string)
}

// LogReporter forwards diagnostics to the global logger.
type LogReporter struct{}

// InternalError logs the diagnostic at error level.
func (LogReporter) InternalError(msg string) {
	if glog.L != nil {
		glog.L.Error(msg)
	}
}

// CollectReporter accumulates diagnostics in memory. Used by tests and by
// the report renderer.
type CollectReporter struct {
	mu   sync.Mutex
	msgs []string
}

// InternalError records the diagnostic.
func (r *CollectReporter) InternalError(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

// Messages returns the recorded diagnostics in order.
func (r *CollectReporter) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.msgs))
	copy(out, r.msgs)
	return out
}

// Reset discards recorded diagnostics.
func (r *CollectReporter) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = nil
}

// MultiReporter fans a diagnostic out to several reporters.
type MultiReporter []Reporter

// InternalError forwards the diagnostic to every reporter.
func (m MultiReporter) InternalError(msg string) {
	for _, r := range m {
		r.InternalError(msg)
	}
}
