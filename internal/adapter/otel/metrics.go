package otel

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "swarnamitra"

// Metrics holds all SwarnaMitra metric instruments.
type Metrics struct {
	RunsStarted   metric.Int64Counter
	RunsCompleted metric.Int64Counter
	RunsFailed    metric.Int64Counter
	ToolCalls     metric.Int64Counter
	RunDuration   metric.Float64Histogram
}

// NewMetrics creates all metric instruments.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.RunsStarted, err = meter.Int64Counter("swarnamitra.runs.started",
		metric.WithDescription("Number of assistant runs started"))
	if err != nil {
		return nil, err
	}

	m.RunsCompleted, err = meter.Int64Counter("swarnamitra.runs.completed",
		metric.WithDescription("Number of assistant runs completed"))
	if err != nil {
		return nil, err
	}

	m.RunsFailed, err = meter.Int64Counter("swarnamitra.runs.failed",
		metric.WithDescription("Number of assistant runs that ended in a non-success state"))
	if err != nil {
		return nil, err
	}

	m.ToolCalls, err = meter.Int64Counter("swarnamitra.toolcalls",
		metric.WithDescription("Number of local tool invocations"))
	if err != nil {
		return nil, err
	}

	m.RunDuration, err = meter.Float64Histogram("swarnamitra.run.duration_seconds",
		metric.WithDescription("Assistant run duration in seconds"))
	if err != nil {
		return nil, err
	}

	return m, nil
}
