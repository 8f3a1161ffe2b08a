// Package tracing bundles the tracing setup used across this module's
// tests. Production code selects its tracer directly from schuko; tests
// call SetTestingLog to route all tracing output through the test logger.
package tracing

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// SetTestingLog redirects the core tracer to t's logger for the duration
// of the test.
func SetTestingLog(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	teardown := gotestingadapter.RedirectTracing(t)
	t.Cleanup(teardown)
}

// Debugf traces a debug message to the core tracer.
func Debugf(format string, args ...interface{}) {
	gtrace.CoreTracer.Debugf(format, args...)
}

// Infof traces an info message to the core tracer.
func Infof(format string, args ...interface{}) {
	gtrace.CoreTracer.Infof(format, args...)
}

// Errorf traces an error message to the core tracer.
func Errorf(format string, args ...interface{}) {
	gtrace.CoreTracer.Errorf(format, args...)
}
