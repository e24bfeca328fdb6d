// Package metrics defines interfaces and event types for recording
// estimation results. Sinks like PromSink and InfluxSink record suggestion
// outcomes and solver progress and can be combined with NewMultiSink. The
// factory helpers return a MultiSink automatically when multiple sinks are
// configured.
package metrics

import "time"

// SuggestionEvent captures the outcome of one alternative-energy-system
// sizing run for a single strategy.
type SuggestionEvent struct {
	RunID         string
	Strategy      string
	VesselType    string
	Converged     bool
	Iterations    int
	TotalWeightKg float64
	TotalVolumeM3 float64
	DraftChangeM  float64
	Time          time.Time
}

// MetricsSink records suggestion results for observability purposes.
type MetricsSink interface {
	RecordSuggestion(results []SuggestionEvent) error
}

// SolverIterationEvent is a snapshot of one draft-feedback iteration.
type SolverIterationEvent struct {
	RunID         string
	Strategy      string
	Iteration     int
	EnergyKWh     float64
	MaxPowerKW    float64
	TotalWeightKg float64
	DraftChangeM  float64
	Time          time.Time
}

// IterationRecorder is implemented by sinks able to record per-iteration
// solver progress.
type IterationRecorder interface {
	RecordSolverIteration(ev SolverIterationEvent) error
}

// FuelEstimateEvent captures a baseline fuel consumption estimate.
type FuelEstimateEvent struct {
	RunID         string
	VesselType    string
	FuelType      string
	TotalKg       float64
	AverageLPerNM float64
	Time          time.Time
}

// FuelEstimateRecorder records baseline fuel estimates.
type FuelEstimateRecorder interface {
	RecordFuelEstimate(ev FuelEstimateEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordSuggestion([]SuggestionEvent) error        { return nil }
func (NopSink) RecordSolverIteration(SolverIterationEvent) error { return nil }
func (NopSink) RecordFuelEstimate(FuelEstimateEvent) error       { return nil }
