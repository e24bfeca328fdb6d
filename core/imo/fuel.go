package imo

import (
	"github.com/ceto-project/ceto/core/errs"
	"github.com/ceto-project/ceto/core/model"
	"github.com/ceto-project/ceto/internal/units"
)

// SevenPercentLoadThreshold is the load fraction below which a leg's
// propulsion contribution is treated as idle when the rule is applied.
const SevenPercentLoadThreshold = 0.07

// Options tune the fuel and energy aggregators.
type Options struct {
	// IncludeSteamBoilers adds boiler demand to totals and peaks.
	IncludeSteamBoilers bool
	// ApplySevenPercentRule zeroes propulsion contributions of legs at or
	// below the 7% load threshold.
	ApplySevenPercentRule bool
	// SpeedPowerCorrection overrides the default speed-power correction
	// factor when non-nil.
	SpeedPowerCorrection *float64
}

// DefaultOptions mirror the reporting defaults: boilers included, 7% rule
// applied, tabulated speed-power correction.
func DefaultOptions() Options {
	return Options{IncludeSteamBoilers: true, ApplySevenPercentRule: true}
}

// ModeFuel is the fuel consumed during one operation mode.
type ModeFuel struct {
	SubTotalKg         float64 `json:"sub_total_kg"`
	AuxiliaryEngineKg  float64 `json:"auxiliary_engine_kg"`
	SteamBoilerKg      float64 `json:"steam_boiler_kg,omitempty"`
	PropulsionKg       float64 `json:"propulsion_kg,omitempty"`
	AverageLitersPerNM float64 `json:"average_fuel_consumption_l_per_nm,omitempty"`
}

// FuelBreakdown is the voyage fuel total with its per-mode split.
// AverageLitersPerNM is only populated for the sailing modes and is a
// downstream reporting convenience.
type FuelBreakdown struct {
	TotalKg     float64  `json:"total_kg"`
	AtBerth     ModeFuel `json:"at_berth"`
	Anchored    ModeFuel `json:"anchored"`
	Manoeuvring ModeFuel `json:"manoeuvring"`
	AtSea       ModeFuel `json:"at_sea"`
}

// FuelVolumeM3 converts a fuel mass in kg to bunkered volume in m3.
func FuelVolumeM3(massKg float64, fuel model.FuelType) (float64, error) {
	density, err := fuel.DensityKgPerM3()
	if err != nil {
		return 0, err
	}
	return massKg / density, nil
}

// FuelMassKg converts a bunkered fuel volume in m3 to mass in kg.
func FuelMassKg(volumeM3 float64, fuel model.FuelType) (float64, error) {
	density, err := fuel.DensityKgPerM3()
	if err != nil {
		return 0, err
	}
	return volumeM3 * density, nil
}

// legDurationH returns the time spent on a leg in hours.
func legDurationH(mode model.OperationMode, i int, leg model.Leg) (float64, error) {
	if leg.SpeedKn == 0 {
		return 0, errs.Computationf("legs_%s[%d]: leg speed must be non-zero", string(mode), i)
	}
	return leg.DistanceNM / leg.SpeedKn, nil
}

// modeDurationH sums leg durations for a sailing mode.
func modeDurationH(mode model.OperationMode, legs []model.Leg) (float64, error) {
	var total float64
	for i, leg := range legs {
		t, err := legDurationH(mode, i, leg)
		if err != nil {
			return 0, err
		}
		total += t
	}
	return total, nil
}

// auxiliaryFuelKg estimates the fuel burned by the auxiliary engines and
// steam boilers over a mode. Both are assumed to share the propulsion
// engines' fuel type and age, running at their rated point.
func auxiliaryFuelKg(vessel model.VesselData, mode model.OperationMode, timeH float64) (engineKg, boilerKg float64, err error) {
	enginePower, boilerPower, err := EstimateAuxiliaryPowerDemand(vessel, mode)
	if err != nil {
		return 0, 0, err
	}
	engineSFC, err := EstimateSpecificFuelConsumption(1.0, model.EngineAuxiliary, vessel.PropulsionEngineFuelType, vessel.PropulsionEngineAge)
	if err != nil {
		return 0, 0, err
	}
	boilerSFC, err := EstimateSpecificFuelConsumption(1.0, model.EngineSteamBoiler, vessel.PropulsionEngineFuelType, vessel.PropulsionEngineAge)
	if err != nil {
		return 0, 0, err
	}
	return enginePower * engineSFC * timeH, boilerPower * boilerSFC * timeH, nil
}

// propulsionFuelKg walks a sailing mode's legs, running the SFC model at
// each leg's specific load.
func propulsionFuelKg(vessel model.VesselData, mode model.OperationMode, legs []model.Leg, opts Options) (float64, error) {
	installed := vessel.InstalledPowerKW()
	var total float64
	for i, leg := range legs {
		load, err := EstimatePropulsionEngineLoad(leg.SpeedKn, leg.DraftM, vessel, opts.SpeedPowerCorrection)
		if err != nil {
			return 0, err
		}
		if opts.ApplySevenPercentRule && load <= SevenPercentLoadThreshold {
			continue
		}
		sfc, err := EstimateSpecificFuelConsumption(load, vessel.PropulsionEngineType, vessel.PropulsionEngineFuelType, vessel.PropulsionEngineAge)
		if err != nil {
			return 0, err
		}
		timeH, err := legDurationH(mode, i, leg)
		if err != nil {
			return 0, err
		}
		total += installed * load * sfc * timeH
	}
	return total, nil
}

// averageLitersPerNM reports a sailing mode's fuel volume per distance.
// Zero distance yields zero rather than an error; the figure is reporting
// only.
func averageLitersPerNM(massKg, distanceNM float64, fuel model.FuelType) (float64, error) {
	if distanceNM == 0 {
		return 0, nil
	}
	volumeM3, err := FuelVolumeM3(massKg, fuel)
	if err != nil {
		return 0, err
	}
	return units.M3ToLiters(volumeM3) / distanceNM, nil
}

// EstimateFuelConsumption estimates the voyage fuel consumption of a
// vessel, split by operating mode and subsystem.
func EstimateFuelConsumption(vessel model.VesselData, voyage model.VoyageProfile, opts Options) (FuelBreakdown, error) {
	var out FuelBreakdown
	if err := vessel.Validate(); err != nil {
		return out, err
	}
	if err := voyage.Validate(); err != nil {
		return out, err
	}

	stationary := []struct {
		mode  model.OperationMode
		timeH float64
		dst   *ModeFuel
	}{
		{model.ModeAtBerth, voyage.TimeAtBerthH, &out.AtBerth},
		{model.ModeAnchored, voyage.TimeAnchoredH, &out.Anchored},
	}
	for _, s := range stationary {
		engineKg, boilerKg, err := auxiliaryFuelKg(vessel, s.mode, s.timeH)
		if err != nil {
			return FuelBreakdown{}, err
		}
		s.dst.AuxiliaryEngineKg = engineKg
		s.dst.SubTotalKg = engineKg
		if opts.IncludeSteamBoilers {
			s.dst.SteamBoilerKg = boilerKg
			s.dst.SubTotalKg += boilerKg
		}
	}

	sailing := []struct {
		mode model.OperationMode
		legs []model.Leg
		dst  *ModeFuel
	}{
		{model.ModeManoeuvring, voyage.Manoeuvring, &out.Manoeuvring},
		{model.ModeAtSea, voyage.AtSea, &out.AtSea},
	}
	for _, s := range sailing {
		timeH, err := modeDurationH(s.mode, s.legs)
		if err != nil {
			return FuelBreakdown{}, err
		}
		engineKg, boilerKg, err := auxiliaryFuelKg(vessel, s.mode, timeH)
		if err != nil {
			return FuelBreakdown{}, err
		}
		propKg, err := propulsionFuelKg(vessel, s.mode, s.legs, opts)
		if err != nil {
			return FuelBreakdown{}, err
		}

		s.dst.AuxiliaryEngineKg = engineKg
		s.dst.PropulsionKg = propKg
		s.dst.SubTotalKg = engineKg + propKg
		if opts.IncludeSteamBoilers {
			s.dst.SteamBoilerKg = boilerKg
			s.dst.SubTotalKg += boilerKg
		}

		var distanceNM float64
		for _, leg := range s.legs {
			distanceNM += leg.DistanceNM
		}
		avg, err := averageLitersPerNM(s.dst.SubTotalKg, distanceNM, vessel.PropulsionEngineFuelType)
		if err != nil {
			return FuelBreakdown{}, err
		}
		s.dst.AverageLitersPerNM = avg
	}

	out.TotalKg = out.AtBerth.SubTotalKg + out.Anchored.SubTotalKg + out.Manoeuvring.SubTotalKg + out.AtSea.SubTotalKg
	return out, nil
}
