package metrics

import (
	"strconv"

	coremetrics "github.com/ceto-project/ceto/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records estimation results in Prometheus metrics.
type PromSink struct {
	suggestions *prometheus.CounterVec
	weight      *prometheus.GaugeVec
	volume      *prometheus.GaugeVec
	iterations  *prometheus.GaugeVec
	fuel        *prometheus.CounterVec
}

// NewPromSink registers estimation metrics on the default Prometheus
// registerer. Serving them is the caller's concern; see StartPromServer.
func NewPromSink(cfg coremetrics.Config) (*PromSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(_ coremetrics.Config, reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	suggestions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "energy_system_suggestions_total",
		Help: "Total number of alternative energy system suggestions",
	}, []string{"strategy", "vessel_type", "converged"})
	weight := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "energy_system_weight_kg",
		Help: "Total weight of the last suggested energy system",
	}, []string{"strategy"})
	volume := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "energy_system_volume_m3",
		Help: "Total volume of the last suggested energy system",
	}, []string{"strategy"})
	iterations := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "energy_system_solver_iterations",
		Help: "Iterations the draft feedback solver took on the last run",
	}, []string{"strategy"})
	fuel := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fuel_estimates_total",
		Help: "Total number of baseline fuel consumption estimates",
	}, []string{"vessel_type", "fuel_type"})

	if err := reg.Register(suggestions); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			suggestions = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(weight); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			weight = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(volume); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			volume = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(iterations); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			iterations = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(fuel); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			fuel = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{
		suggestions: suggestions,
		weight:      weight,
		volume:      volume,
		iterations:  iterations,
		fuel:        fuel,
	}, nil
}

// RecordSuggestion increments the counter and updates the per-strategy
// gauges for each result.
func (s *PromSink) RecordSuggestion(results []coremetrics.SuggestionEvent) error {
	for _, r := range results {
		s.suggestions.WithLabelValues(r.Strategy, r.VesselType, strconv.FormatBool(r.Converged)).Inc()
		s.weight.WithLabelValues(r.Strategy).Set(r.TotalWeightKg)
		s.volume.WithLabelValues(r.Strategy).Set(r.TotalVolumeM3)
		s.iterations.WithLabelValues(r.Strategy).Set(float64(r.Iterations))
	}
	return nil
}

// RecordFuelEstimate increments the fuel estimate counter.
func (s *PromSink) RecordFuelEstimate(ev coremetrics.FuelEstimateEvent) error {
	s.fuel.WithLabelValues(ev.VesselType, ev.FuelType).Inc()
	return nil
}
