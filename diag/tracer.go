package diag

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Tracer is an optional execution tracer a host can attach to an
// Interpreter to watch CALL/RET/IMPORT traffic (ABORT is not traced), grounded on
// barn/trace.Tracer (filter patterns, io.Writer sink, enable/disable)
// and generalized from verb names to callee names.
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
}

// NewTracer returns a tracer. If writer is nil, os.Stderr is used.
func NewTracer(enabled bool, filters []string, writer io.Writer) *Tracer {
	if writer == nil {
		writer = os.Stderr
	}
	return &Tracer{enabled: enabled, filters: filters, writer: writer}
}

// Enabled reports whether t will record anything; a nil *Tracer is
// always disabled, so callers need not nil-check before calling.
func (t *Tracer) Enabled() bool {
	return t != nil && t.enabled
}

func (t *Tracer) matches(name string) bool {
	if len(t.filters) == 0 {
		return true
	}
	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// Call logs entry into a function or host function by name.
func (t *Tracer) Call(name string, numArgs int) {
	if !t.Enabled() || !t.matches(name) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.writer, "[TRACE] CALL %s argc=%d\n", name, numArgs)
}

// Return logs a call's return value.
func (t *Tracer) Return(name string, result string) {
	if !t.Enabled() || !t.matches(name) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.writer, "[TRACE] RETURN %s => %s\n", name, result)
}

// Import logs an IMPORT opcode resolving a package name.
func (t *Tracer) Import(name string) {
	if !t.Enabled() {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.writer, "[TRACE] IMPORT %s\n", name)
}
