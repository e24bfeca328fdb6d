package energysystem

import (
	"math"

	"github.com/ceto-project/ceto/core/errs"
	"github.com/ceto-project/ceto/core/imo"
	"github.com/ceto-project/ceto/core/model"
)

// ICE weight/volume regression bounds (Dev & Saha 2021 data range).
const (
	minICEPowerKW = 50.0
	maxICEPowerKW = 2000.0
)

// CombustionComponent is one weight/volume entry of the baseline system.
type CombustionComponent struct {
	WeightKg float64 `json:"weight_kg"`
	VolumeM3 float64 `json:"volume_m3"`
}

// CombustionSystem is the as-built internal combustion system the
// alternative estimates are compared against. Steam boilers are not part
// of the system.
type CombustionSystem struct {
	TotalWeightKg     float64             `json:"total_weight_kg"`
	TotalVolumeM3     float64             `json:"total_volume_m3"`
	PropulsionEngines CombustionComponent `json:"propulsion_engines"`
	Gearboxes         CombustionComponent `json:"gearboxes"`
	AuxiliaryEngines  CombustionComponent `json:"auxiliary_engines"`
	Fuel              CombustionComponent `json:"fuel"`
}

// EstimateInternalCombustionEngine estimates a marine diesel engine's
// weight and volume from its MCR power via power-law regressions.
func EstimateInternalCombustionEngine(powerKW float64) (CombustionComponent, error) {
	if powerKW < minICEPowerKW || powerKW > maxICEPowerKW {
		return CombustionComponent{}, errs.Validationf(
			"combustion engine: power %.0f kW outside regression range [%.0f, %.0f]", powerKW, minICEPowerKW, maxICEPowerKW)
	}
	return CombustionComponent{
		WeightKg: 38.946 * math.Pow(powerKW, 0.5865),
		VolumeM3: 0.0353 * math.Pow(powerKW, 0.6409),
	}, nil
}

// EstimateMainEngineWeight estimates a main engine's weight in kg from its
// MCR power, using the rpm class to pick the regression when known
// (Dev & Saha 2021, figs. 68/70/72).
func EstimateMainEngineWeight(powerKW float64, rpm *float64) (float64, error) {
	if powerKW < 0 || powerKW > 90000 {
		return 0, errs.Validationf("main engine weight: power %.0f kW outside [0, 90000]", powerKW)
	}
	if rpm == nil {
		return 0.00753 * math.Pow(powerKW, 1.139) * 1000, nil
	}
	if *rpm < 0 || *rpm > 5000 {
		return 0, errs.Validationf("main engine weight: rpm %.0f outside [0, 5000]", *rpm)
	}
	switch {
	case *rpm <= 400:
		return 0.0206 * math.Pow(powerKW, 1.0432) * 1000, nil
	case *rpm < 1000:
		return 0.0061 * math.Pow(powerKW, 1.0905) * 1000, nil
	default:
		return 0.0032 * math.Pow(powerKW, 1.0938) * 1000, nil
	}
}

// EstimateInternalCombustionSystem estimates the baseline combustion
// system weight and volume for a vessel and voyage: propulsion engines,
// gearboxes (slow-speed diesels are direct drive and carry none), two
// auxiliary gensets each sized to the peak auxiliary demand, and the fuel
// carried for the voyage.
func EstimateInternalCombustionSystem(vessel model.VesselData, voyage model.VoyageProfile) (CombustionSystem, error) {
	var out CombustionSystem

	engine, err := EstimateInternalCombustionEngine(vessel.PropulsionEnginePowerKW)
	if err != nil {
		return out, err
	}
	n := float64(vessel.NumberOfPropulsionEngines)
	out.PropulsionEngines = CombustionComponent{WeightKg: engine.WeightKg * n, VolumeM3: engine.VolumeM3 * n}

	// Gearboxes at 1/5 of the engine weight and volume.
	if vessel.PropulsionEngineType != model.EngineSSD {
		out.Gearboxes = CombustionComponent{
			WeightKg: out.PropulsionEngines.WeightKg / 5,
			VolumeM3: out.PropulsionEngines.VolumeM3 / 5,
		}
	}

	// Two gensets, each able to cover the whole auxiliary demand. Demand
	// below the regression floor means no dedicated gensets are fitted.
	var peakAuxKW float64
	for _, mode := range model.OperationModes {
		engineKW, _, err := imo.EstimateAuxiliaryPowerDemand(vessel, mode)
		if err != nil {
			return CombustionSystem{}, err
		}
		peakAuxKW = math.Max(peakAuxKW, engineKW)
	}
	if peakAuxKW >= minICEPowerKW {
		genset, err := EstimateInternalCombustionEngine(peakAuxKW)
		if err != nil {
			return CombustionSystem{}, err
		}
		out.AuxiliaryEngines = CombustionComponent{WeightKg: genset.WeightKg * 2, VolumeM3: genset.VolumeM3 * 2}
	}

	fc, err := imo.EstimateFuelConsumption(vessel, voyage, combustionFuelOptions())
	if err != nil {
		return CombustionSystem{}, err
	}
	fuelVolume, err := imo.FuelVolumeM3(fc.TotalKg, vessel.PropulsionEngineFuelType)
	if err != nil {
		return CombustionSystem{}, err
	}
	out.Fuel = CombustionComponent{WeightKg: fc.TotalKg, VolumeM3: fuelVolume}

	out.TotalWeightKg = out.PropulsionEngines.WeightKg + out.Gearboxes.WeightKg + out.AuxiliaryEngines.WeightKg + out.Fuel.WeightKg
	out.TotalVolumeM3 = out.PropulsionEngines.VolumeM3 + out.Gearboxes.VolumeM3 + out.AuxiliaryEngines.VolumeM3 + out.Fuel.VolumeM3
	return out, nil
}

// combustionFuelOptions mirror the sizing assumptions of the solver: no
// boilers, no idle cutoff, design speed reached at 80% MCR.
func combustionFuelOptions() imo.Options {
	dw := solverSpeedPowerCorrection
	return imo.Options{SpeedPowerCorrection: &dw}
}
