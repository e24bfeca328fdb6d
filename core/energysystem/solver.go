package energysystem

import (
	"math"

	"github.com/ceto-project/ceto/core/events"
	"github.com/ceto-project/ceto/core/imo"
	"github.com/ceto-project/ceto/core/model"
)

// Solver sizing assumptions inherited from the reference methodology: the
// alternative system is sized without steam boilers and without the idle
// cutoff, with design speed reached at 80% MCR.
const solverSpeedPowerCorrection = 0.8

// Solver defaults.
const (
	// MaxIterations caps the draft feedback loop. Hitting the cap returns
	// the last estimate with Converged=false instead of failing.
	MaxIterations = 100
	// ConvergenceToleranceFrac is the draft perturbation threshold as a
	// fraction of design draft.
	ConvergenceToleranceFrac = 0.01
)

// SolverState tracks the phase of a convergence run.
type SolverState int

const (
	StateInitializing SolverState = iota
	StateIterating
	StateConverged
	StateIterationLimitReached
)

func (s SolverState) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateIterating:
		return "iterating"
	case StateConverged:
		return "converged"
	case StateIterationLimitReached:
		return "iteration_limit_reached"
	}
	return "unknown"
}

// Solver runs the draft-feedback fixed-point loop for one estimator
// strategy. It never mutates the caller's voyage profile: each iteration
// derives a fresh draft-adjusted copy.
type Solver struct {
	estimator Estimator
	ref       ReferenceValues

	// OnIteration, when set, receives a progress event per iteration.
	OnIteration func(events.SolverIteration)
	// OnDone, when set, receives a terminal event once the loop ends.
	OnDone func(events.SolverDone)
}

// NewSolver returns a solver for the given strategy.
func NewSolver(strategy Strategy, ref ReferenceValues) (*Solver, error) {
	est, err := NewEstimator(strategy)
	if err != nil {
		return nil, err
	}
	if err := ref.ValidateFor(strategy); err != nil {
		return nil, err
	}
	return &Solver{estimator: est, ref: ref}, nil
}

func (s *Solver) energyOptions() imo.Options {
	dw := solverSpeedPowerCorrection
	return imo.Options{SpeedPowerCorrection: &dw}
}

// Run iterates energy estimation, system sizing and draft adjustment until
// the draft perturbation falls below the tolerance or the iteration cap is
// reached. The returned estimate carries the cumulative draft change
// relative to the as-built combustion system.
func (s *Solver) Run(vessel model.VesselData, voyage model.VoyageProfile) (SystemEstimate, error) {
	state := StateInitializing

	baseline, err := EstimateInternalCombustionSystem(vessel, voyage)
	if err != nil {
		return SystemEstimate{}, err
	}

	referenceWeight := baseline.TotalWeightKg
	profile := voyage
	tolerance := ConvergenceToleranceFrac * vessel.DesignDraftM
	opts := s.energyOptions()

	var estimate SystemEstimate
	var iterations int
	state = StateIterating
	for i := 0; i < MaxIterations; i++ {
		energy, err := imo.EstimateEnergyConsumption(vessel, profile, opts)
		if err != nil {
			return SystemEstimate{}, err
		}
		estimate, err = s.estimator.Estimate(Requirements{
			EnergyKWh:   energy.TotalKWh,
			PowerKW:     energy.MaxPowerKW,
			Engines:     vessel.NumberOfPropulsionEngines,
			DoubleEnded: vessel.DoubleEnded,
		}, s.ref)
		if err != nil {
			return SystemEstimate{}, err
		}

		draftDelta := EstimateDraftChange(vessel, estimate.TotalWeightKg-referenceWeight)
		iterations = i + 1
		if s.OnIteration != nil {
			s.OnIteration(events.SolverIteration{
				Strategy:      string(s.estimator.Strategy()),
				Iteration:     iterations,
				EnergyKWh:     energy.TotalKWh,
				MaxPowerKW:    energy.MaxPowerKW,
				TotalWeightKg: estimate.TotalWeightKg,
				DraftChangeM:  draftDelta,
			})
		}

		if math.Abs(draftDelta) < tolerance {
			state = StateConverged
			break
		}
		profile = profile.WithDraftDelta(draftDelta)
		referenceWeight = estimate.TotalWeightKg
	}
	if state != StateConverged {
		state = StateIterationLimitReached
	}

	estimate.Converged = state == StateConverged
	estimate.Iterations = iterations
	estimate.DraftChangeM = EstimateDraftChange(vessel, estimate.TotalWeightKg-baseline.TotalWeightKg)
	if s.OnDone != nil {
		s.OnDone(events.SolverDone{
			Strategy:     string(s.estimator.Strategy()),
			Iterations:   iterations,
			Converged:    estimate.Converged,
			DraftChangeM: estimate.DraftChangeM,
		})
	}
	return estimate, nil
}

// SuggestAlternativeEnergySystems runs the full convergence solver for the
// gaseous-hydrogen and battery strategies. Inputs are validated up front;
// the two runs are independent and share no state.
func SuggestAlternativeEnergySystems(vessel model.VesselData, voyage model.VoyageProfile, ref ReferenceValues) (gas, battery SystemEstimate, err error) {
	if err := vessel.Validate(); err != nil {
		return SystemEstimate{}, SystemEstimate{}, err
	}
	if err := voyage.Validate(); err != nil {
		return SystemEstimate{}, SystemEstimate{}, err
	}
	for _, strategy := range Strategies() {
		if err := ref.ValidateFor(strategy); err != nil {
			return SystemEstimate{}, SystemEstimate{}, err
		}
	}

	gasSolver, err := NewSolver(StrategyHydrogenGas, ref)
	if err != nil {
		return SystemEstimate{}, SystemEstimate{}, err
	}
	if gas, err = gasSolver.Run(vessel, voyage); err != nil {
		return SystemEstimate{}, SystemEstimate{}, err
	}

	batterySolver, err := NewSolver(StrategyBattery, ref)
	if err != nil {
		return SystemEstimate{}, SystemEstimate{}, err
	}
	if battery, err = batterySolver.Run(vessel, voyage); err != nil {
		return SystemEstimate{}, SystemEstimate{}, err
	}
	return gas, battery, nil
}
