package metrics

import "io"

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordSuggestion forwards the results to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordSuggestion(results []SuggestionEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordSuggestion(results); err != nil {
			return err
		}
	}
	return nil
}

// RecordSolverIteration forwards iteration snapshots to sinks that support
// them.
func (m *MultiSink) RecordSolverIteration(ev SolverIterationEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(IterationRecorder); ok {
			if err := rec.RecordSolverIteration(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordFuelEstimate forwards fuel estimates to sinks that support them.
func (m *MultiSink) RecordFuelEstimate(ev FuelEstimateEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(FuelEstimateRecorder); ok {
			if err := rec.RecordFuelEstimate(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// Close closes sinks that hold resources, returning the first error.
func (m *MultiSink) Close() error {
	var first error
	for _, s := range m.Sinks {
		if c, ok := s.(io.Closer); ok {
			if err := c.Close(); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}
