package metrics_test

import (
	"testing"

	"github.com/ceto-project/ceto/core/factory"
	"github.com/ceto-project/ceto/core/metrics"
	_ "github.com/ceto-project/ceto/infra/metrics" // register built-in sinks
)

// TestNewMetricsSink verifies the sink factory behavior:
//   - empty config -> NopSink
//   - one config -> that sink
//   - two configs -> MultiSink with two sub-sinks
func TestNewMetricsSink(t *testing.T) {
	s, err := metrics.NewMetricsSink(nil)
	if err != nil {
		t.Fatalf("empty config: %v", err)
	}
	if _, ok := s.(metrics.NopSink); !ok {
		t.Fatalf("expected NopSink, got %T", s)
	}

	s, err = metrics.NewMetricsSink([]factory.ModuleConfig{{Type: "nop"}})
	if err != nil {
		t.Fatalf("single config: %v", err)
	}
	if _, ok := s.(metrics.NopSink); !ok {
		t.Fatalf("expected NopSink, got %T", s)
	}

	s, err = metrics.NewMetricsSink([]factory.ModuleConfig{{Type: "nop"}, {Type: "nop"}})
	if err != nil {
		t.Fatalf("multiple configs: %v", err)
	}
	m, ok := s.(*metrics.MultiSink)
	if !ok {
		t.Fatalf("expected MultiSink, got %T", s)
	}
	if len(m.Sinks) != 2 {
		t.Fatalf("MultiSink holds %d sinks", len(m.Sinks))
	}
}

func TestNewMetricsSinkUnknownType(t *testing.T) {
	if _, err := metrics.NewMetricsSink([]factory.ModuleConfig{{Type: "statsd"}}); err == nil {
		t.Fatalf("unknown sink type accepted")
	}
}
