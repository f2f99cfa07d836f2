package cargostage

import (
	"testing"
	"time"
)

// TestTracer forwards trace output to the test log.
type TestTracer struct{ T *testing.T }

var _ Tracer = TestTracer{}

func (tr TestTracer) Debug(msg string, args ...any) {
	tr.T.Logf("cargostage-DEBUG: %s %v", msg, args)
}

func (tr TestTracer) Info(msg string, args ...any) {
	tr.T.Logf("cargostage-INFO: %s %v", msg, args)
}

func (tr TestTracer) Warn(msg string, args ...any) {
	tr.T.Logf("cargostage-WARN: %s %v", msg, args)
}

func (tr TestTracer) StartRun(cmd string) {
	tr.T.Logf("cargostage-StartRun: %s", cmd)
}

func (tr TestTracer) DoneRun(cmd string, dt time.Duration) {
	tr.T.Logf("cargostage-DoneRun: %s %s", cmd, dt)
}
