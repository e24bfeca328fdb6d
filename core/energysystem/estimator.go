// Package energysystem sizes alternative propulsion systems against a
// vessel's energy demand and converges the draft feedback between system
// weight and hull resistance.
package energysystem

import (
	"math"

	"github.com/ceto-project/ceto/core/errs"
	"github.com/ceto-project/ceto/core/imo"
	"github.com/ceto-project/ceto/core/model"
)

// Strategy tags an alternative energy system estimator.
type Strategy string

const (
	StrategyBattery     Strategy = "battery"
	StrategyHydrogenGas Strategy = "hydrogen-gas"
)

// Strategies lists the registered estimator strategies.
func Strategies() []Strategy { return []Strategy{StrategyHydrogenGas, StrategyBattery} }

// Requirements is the demand an alternative system must cover.
type Requirements struct {
	EnergyKWh   float64
	PowerKW     float64
	Engines     int
	DoubleEnded bool
}

// ElectricalEngines describes the electrical propulsion motors shared by
// every strategy.
type ElectricalEngines struct {
	Count             int     `json:"count"`
	PowerPerEngineKW  float64 `json:"power_per_engine_kw"`
	WeightPerEngineKg float64 `json:"weight_per_engine_kg"`
	VolumePerEngineM3 float64 `json:"volume_per_engine_m3"`
}

// BatteryPacks describes the storage component of the battery strategy.
type BatteryPacks struct {
	CapacityKWh float64 `json:"capacity_kwh"`
	WeightKg    float64 `json:"weight_kg"`
	VolumeM3    float64 `json:"volume_m3"`
}

// FuelCellSystem describes the conversion component of the hydrogen
// strategy.
type FuelCellSystem struct {
	PowerKW  float64 `json:"power_kw"`
	WeightKg float64 `json:"weight_kg"`
	VolumeM3 float64 `json:"volume_m3"`
}

// GasTanks describes the pressurised storage of the hydrogen strategy.
type GasTanks struct {
	HydrogenKg float64 `json:"hydrogen_kg"`
	WeightKg   float64 `json:"weight_kg"`
	VolumeM3   float64 `json:"volume_m3"`
}

// Components is the constituent breakdown of a system estimate. Only the
// components of the producing strategy are set.
type Components struct {
	ElectricalEngines ElectricalEngines `json:"electrical_engines"`
	BatteryPacks      *BatteryPacks     `json:"battery_packs,omitempty"`
	FuelCellSystem    *FuelCellSystem   `json:"fuel_cell_system,omitempty"`
	GasTanks          *GasTanks         `json:"gas_tanks,omitempty"`
}

// SystemEstimate is the sized alternative energy system. DraftChangeM,
// Converged and Iterations are filled in by the solver; a one-shot
// estimate leaves them zero.
type SystemEstimate struct {
	Strategy      Strategy   `json:"strategy"`
	TotalWeightKg float64    `json:"total_weight_kg"`
	TotalVolumeM3 float64    `json:"total_volume_m3"`
	Components    Components `json:"components"`
	DraftChangeM  float64    `json:"change_in_draft_m"`
	Converged     bool       `json:"converged"`
	Iterations    int        `json:"iterations"`
}

// Estimator sizes one kind of alternative energy system for a required
// energy/power pair. Implementations are pure functions of their inputs.
type Estimator interface {
	Strategy() Strategy
	Estimate(req Requirements, ref ReferenceValues) (SystemEstimate, error)
}

// NewEstimator returns the estimator registered for the strategy tag.
func NewEstimator(strategy Strategy) (Estimator, error) {
	switch strategy {
	case StrategyBattery:
		return BatteryEstimator{}, nil
	case StrategyHydrogenGas:
		return HydrogenGasEstimator{}, nil
	}
	return nil, errs.Configurationf("energy system: unknown strategy %q", string(strategy))
}

// sizeElectricalEngines applies the shared motor sizing rule: per-shaft
// power is the required power over the engine count, with the count halved
// first on double-ended hulls whose shafts work in push-pull pairs. The
// result is rounded up to the next 10 kW increment.
func sizeElectricalEngines(req Requirements, ref ReferenceValues) ElectricalEngines {
	engines := float64(req.Engines)
	if req.DoubleEnded {
		engines /= 2
	}
	perEngine := math.Ceil(req.PowerKW/engines/10) * 10
	return ElectricalEngines{
		Count:             req.Engines,
		PowerPerEngineKW:  perEngine,
		WeightPerEngineKg: perEngine / ref.ElectricalEngineGravimetricPowerDensityKWPerKg,
		VolumePerEngineM3: perEngine / ref.ElectricalEngineVolumetricPowerDensityKWPerM3,
	}
}

// Estimate sizes an alternative energy system for an already computed
// energy estimate, without running the draft feedback loop.
func Estimate(energy imo.EnergyEstimate, vessel model.VesselData, strategy Strategy, ref ReferenceValues) (SystemEstimate, error) {
	if err := vessel.Validate(); err != nil {
		return SystemEstimate{}, err
	}
	est, err := NewEstimator(strategy)
	if err != nil {
		return SystemEstimate{}, err
	}
	req := Requirements{
		EnergyKWh:   energy.TotalKWh,
		PowerKW:     energy.MaxPowerKW,
		Engines:     vessel.NumberOfPropulsionEngines,
		DoubleEnded: vessel.DoubleEnded,
	}
	return est.Estimate(req, ref)
}
