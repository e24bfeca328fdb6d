// Package events defines the progress events the convergence solver emits.
package events

// SolverIteration is emitted once per draft-feedback iteration.
type SolverIteration struct {
	Strategy      string
	Iteration     int
	EnergyKWh     float64
	MaxPowerKW    float64
	TotalWeightKg float64
	DraftChangeM  float64
}

// SolverDone is emitted when a solver run terminates.
type SolverDone struct {
	Strategy     string
	Iterations   int
	Converged    bool
	DraftChangeM float64
}
