// Package app wires the estimation engine to its configuration, logging,
// metrics sinks and progress reporting.
package app

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/ceto-project/ceto/config"
	"github.com/ceto-project/ceto/core/energysystem"
	"github.com/ceto-project/ceto/core/events"
	"github.com/ceto-project/ceto/core/imo"
	coremetrics "github.com/ceto-project/ceto/core/metrics"
	"github.com/ceto-project/ceto/infra/logger"
	_ "github.com/ceto-project/ceto/infra/metrics" // register built-in sinks
	"github.com/ceto-project/ceto/internal/eventbus"
	"github.com/ceto-project/ceto/pkg/export"
)

// Service runs estimations for one configured vessel and voyage. Every
// service instance carries a run ID that tags its log lines and metrics.
type Service struct {
	cfg   *config.Config
	runID string
	log   logger.Logger
	sink  coremetrics.MetricsSink
	bus   *eventbus.Bus[events.SolverIteration]
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	return &Service{
		cfg:   cfg,
		runID: uuid.NewString(),
		log:   logger.New("service"),
		sink:  sink,
		bus:   eventbus.New[events.SolverIteration](),
	}, nil
}

// RunID identifies this service instance in logs and metrics.
func (s *Service) RunID() string { return s.runID }

// EstimateFuel computes the baseline voyage fuel consumption with the
// reporting defaults.
func (s *Service) EstimateFuel() (imo.FuelBreakdown, error) {
	breakdown, err := imo.EstimateFuelConsumption(s.cfg.Vessel, s.cfg.Voyage, imo.DefaultOptions())
	if err != nil {
		return imo.FuelBreakdown{}, err
	}
	s.log.Infof("run %s: estimated %.0f kg of %s over the voyage",
		s.runID, breakdown.TotalKg, s.cfg.Vessel.PropulsionEngineFuelType)
	if rec, ok := s.sink.(coremetrics.FuelEstimateRecorder); ok {
		ev := coremetrics.FuelEstimateEvent{
			RunID:         s.runID,
			VesselType:    string(s.cfg.Vessel.Type),
			FuelType:      string(s.cfg.Vessel.PropulsionEngineFuelType),
			TotalKg:       breakdown.TotalKg,
			AverageLPerNM: breakdown.AtSea.AverageLitersPerNM,
			Time:          time.Now(),
		}
		if err := rec.RecordFuelEstimate(ev); err != nil {
			s.log.Errorf("record fuel estimate: %v", err)
		}
	}
	return breakdown, nil
}

// EstimateEnergy computes the voyage energy demand with the reporting
// defaults.
func (s *Service) EstimateEnergy() (imo.EnergyEstimate, error) {
	energy, err := imo.EstimateEnergyConsumption(s.cfg.Vessel, s.cfg.Voyage, imo.DefaultOptions())
	if err != nil {
		return imo.EnergyEstimate{}, err
	}
	s.log.Infof("run %s: voyage demand %.0f kWh, peak %.0f kW",
		s.runID, energy.TotalKWh, energy.MaxPowerKW)
	return energy, nil
}

// Suggest runs the draft-feedback solver for both alternative energy
// system strategies, streaming per-iteration progress through the event
// bus to the logger and any iteration-capable sinks.
func (s *Service) Suggest() (export.Suggestion, error) {
	if err := s.cfg.Vessel.Validate(); err != nil {
		return export.Suggestion{}, err
	}
	if err := s.cfg.Voyage.Validate(); err != nil {
		return export.Suggestion{}, err
	}
	ref := s.cfg.ReferenceValues()

	sub := s.bus.Subscribe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range sub {
			s.log.Debugw("solver iteration", map[string]any{
				"run_id":            s.runID,
				"strategy":          ev.Strategy,
				"iteration":         ev.Iteration,
				"energy_kwh":        ev.EnergyKWh,
				"total_weight_kg":   ev.TotalWeightKg,
				"change_in_draft_m": ev.DraftChangeM,
			})
			if rec, ok := s.sink.(coremetrics.IterationRecorder); ok {
				iter := coremetrics.SolverIterationEvent{
					RunID:         s.runID,
					Strategy:      ev.Strategy,
					Iteration:     ev.Iteration,
					EnergyKWh:     ev.EnergyKWh,
					MaxPowerKW:    ev.MaxPowerKW,
					TotalWeightKg: ev.TotalWeightKg,
					DraftChangeM:  ev.DraftChangeM,
					Time:          time.Now(),
				}
				if err := rec.RecordSolverIteration(iter); err != nil {
					s.log.Errorf("record solver iteration: %v", err)
				}
			}
		}
	}()

	estimates := make(map[energysystem.Strategy]energysystem.SystemEstimate, len(energysystem.Strategies()))
	for _, strategy := range energysystem.Strategies() {
		solver, err := energysystem.NewSolver(strategy, ref)
		if err != nil {
			s.bus.Close()
			<-done
			return export.Suggestion{}, err
		}
		solver.OnIteration = s.bus.Publish
		solver.OnDone = func(ev events.SolverDone) {
			s.log.Debugw("solver finished", map[string]any{
				"run_id":            s.runID,
				"strategy":          ev.Strategy,
				"iterations":        ev.Iterations,
				"converged":         ev.Converged,
				"change_in_draft_m": ev.DraftChangeM,
			})
		}
		estimate, err := solver.Run(s.cfg.Vessel, s.cfg.Voyage)
		if err != nil {
			s.bus.Close()
			<-done
			return export.Suggestion{}, err
		}
		s.log.Infof("run %s: %s system sized at %.0f kg / %.1f m3 after %d iterations (converged=%t)",
			s.runID, strategy, estimate.TotalWeightKg, estimate.TotalVolumeM3, estimate.Iterations, estimate.Converged)
		estimates[strategy] = estimate
	}
	s.bus.Close()
	<-done

	results := make([]coremetrics.SuggestionEvent, 0, len(estimates))
	for _, strategy := range energysystem.Strategies() {
		est := estimates[strategy]
		results = append(results, coremetrics.SuggestionEvent{
			RunID:         s.runID,
			Strategy:      string(strategy),
			VesselType:    string(s.cfg.Vessel.Type),
			Converged:     est.Converged,
			Iterations:    est.Iterations,
			TotalWeightKg: est.TotalWeightKg,
			TotalVolumeM3: est.TotalVolumeM3,
			DraftChangeM:  est.DraftChangeM,
			Time:          time.Now(),
		})
	}
	if err := s.sink.RecordSuggestion(results); err != nil {
		s.log.Errorf("record suggestion: %v", err)
	}

	return export.Suggestion{
		RunID:           s.runID,
		GaseousHydrogen: estimates[energysystem.StrategyHydrogenGas],
		Battery:         estimates[energysystem.StrategyBattery],
	}, nil
}

// Close releases resources held by the service, including any metrics
// sink that serves or flushes on shutdown.
func (s *Service) Close() error {
	s.bus.Close()
	if c, ok := s.sink.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
