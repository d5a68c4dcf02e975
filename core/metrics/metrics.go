package metrics

import "time"

// Solve outcomes as reported to the sinks.
const (
	OutcomeOK         = "ok"
	OutcomeInvalid    = "invalid_scenario"
	OutcomeInfeasible = "infeasible"
)

// SolveEvent describes one completed solve request.
type SolveEvent struct {
	RequestID string
	Load      float64
	Units     int
	Outcome   string
	Cost      float64
	Duration  time.Duration
	Timestamp time.Time
}

// MetricsSink receives solve events. Implementations must be safe for
// concurrent use.
type MetricsSink interface {
	RecordSolve(ev SolveEvent) error
	Close() error
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordSolve(SolveEvent) error { return nil }
func (NopSink) Close() error                 { return nil }
