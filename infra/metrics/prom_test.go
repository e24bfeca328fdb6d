package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/ceto-project/ceto/core/metrics"
)

func TestPromSinkRecordsSuggestions(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}

	results := []coremetrics.SuggestionEvent{
		{RunID: "r1", Strategy: "battery", VesselType: "ferry", Converged: true, Iterations: 3, TotalWeightKg: 200000, TotalVolumeM3: 180, Time: time.Now()},
		{RunID: "r1", Strategy: "hydrogen-gas", VesselType: "ferry", Converged: true, Iterations: 1, TotalWeightKg: 30000, TotalVolumeM3: 120, Time: time.Now()},
	}
	if err := sink.RecordSuggestion(results); err != nil {
		t.Fatalf("record: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := map[string]bool{}
	for _, f := range families {
		found[f.GetName()] = true
	}
	for _, name := range []string{"energy_system_suggestions_total", "energy_system_weight_kg", "energy_system_volume_m3", "energy_system_solver_iterations"} {
		if !found[name] {
			t.Errorf("metric %s not registered", name)
		}
	}
}

func TestPromSinkDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg); err != nil {
		t.Fatalf("first: %v", err)
	}
	// Reusing a registry must reuse the existing collectors.
	if _, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg); err != nil {
		t.Fatalf("second: %v", err)
	}
}

func TestPromSinkRecordsFuelEstimates(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}
	var rec coremetrics.FuelEstimateRecorder = sink
	if err := rec.RecordFuelEstimate(coremetrics.FuelEstimateEvent{VesselType: "ferry", FuelType: "MDO", TotalKg: 1000, Time: time.Now()}); err != nil {
		t.Fatalf("record: %v", err)
	}
}
