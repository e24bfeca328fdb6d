package imo

import (
	"gonum.org/v1/gonum/floats"

	"github.com/ceto-project/ceto/core/errs"
	"github.com/ceto-project/ceto/core/model"
)

// SubsystemDemand pairs an energy total with the steady power draw that
// produced it.
type SubsystemDemand struct {
	EnergyKWh float64 `json:"energy_kwh"`
	PowerKW   float64 `json:"power_kw"`
}

// ModeEnergy is the demand during one operation mode. Propulsion figures
// are kept per leg; stationary modes leave them empty.
type ModeEnergy struct {
	AuxiliaryEngine     SubsystemDemand `json:"auxiliary_engine"`
	SteamBoiler         SubsystemDemand `json:"steam_boiler,omitempty"`
	PropulsionEnergyKWh []float64       `json:"propulsion_energy_kwh,omitempty"`
	PropulsionPowerKW   []float64       `json:"propulsion_power_kw,omitempty"`
}

// EnergyEstimate is the aggregated voyage energy demand. MaxPowerKW is the
// maximum across modes of the concurrent auxiliary, boiler and propulsion
// draws; modes are temporally disjoint so their peaks are never summed.
type EnergyEstimate struct {
	TotalKWh    float64    `json:"total_kwh"`
	MaxPowerKW  float64    `json:"maximum_required_total_power_kw"`
	AtBerth     ModeEnergy `json:"at_berth"`
	Anchored    ModeEnergy `json:"anchored"`
	Manoeuvring ModeEnergy `json:"manoeuvring"`
	AtSea       ModeEnergy `json:"at_sea"`
}

// propulsionDemand computes per-leg propulsion energy and power for a
// sailing mode. Legs silenced by the 7% rule contribute explicit zeros so
// the slices stay aligned with the profile's legs.
func propulsionDemand(vessel model.VesselData, mode model.OperationMode, legs []model.Leg, opts Options) (energy, power []float64, err error) {
	installed := vessel.InstalledPowerKW()
	energy = make([]float64, 0, len(legs))
	power = make([]float64, 0, len(legs))
	for i, leg := range legs {
		load, err := EstimatePropulsionEngineLoad(leg.SpeedKn, leg.DraftM, vessel, opts.SpeedPowerCorrection)
		if err != nil {
			return nil, nil, err
		}
		if opts.ApplySevenPercentRule && load <= SevenPercentLoadThreshold {
			energy = append(energy, 0)
			power = append(power, 0)
			continue
		}
		timeH, err := legDurationH(mode, i, leg)
		if err != nil {
			return nil, nil, err
		}
		energy = append(energy, installed*load*timeH)
		power = append(power, installed*load)
	}
	return energy, power, nil
}

// EstimateEnergyConsumption estimates the voyage energy demand of a vessel
// and the maximum concurrent power it requires. Sailing modes must have at
// least one leg; an empty leg list leaves the mode's peak propulsion power
// undefined.
func EstimateEnergyConsumption(vessel model.VesselData, voyage model.VoyageProfile, opts Options) (EnergyEstimate, error) {
	var out EnergyEstimate
	if err := vessel.Validate(); err != nil {
		return out, err
	}
	if err := voyage.Validate(); err != nil {
		return out, err
	}

	modes := []struct {
		mode model.OperationMode
		legs []model.Leg
		dst  *ModeEnergy
	}{
		{model.ModeAtBerth, nil, &out.AtBerth},
		{model.ModeAnchored, nil, &out.Anchored},
		{model.ModeManoeuvring, voyage.Manoeuvring, &out.Manoeuvring},
		{model.ModeAtSea, voyage.AtSea, &out.AtSea},
	}

	peaks := make([]float64, 0, len(modes))
	for _, m := range modes {
		enginePower, boilerPower, err := EstimateAuxiliaryPowerDemand(vessel, m.mode)
		if err != nil {
			return EnergyEstimate{}, err
		}

		var timeH float64
		switch m.mode {
		case model.ModeAtBerth:
			timeH = voyage.TimeAtBerthH
		case model.ModeAnchored:
			timeH = voyage.TimeAnchoredH
		default:
			if timeH, err = modeDurationH(m.mode, m.legs); err != nil {
				return EnergyEstimate{}, err
			}
		}

		m.dst.AuxiliaryEngine = SubsystemDemand{EnergyKWh: enginePower * timeH, PowerKW: enginePower}
		peak := enginePower
		out.TotalKWh += m.dst.AuxiliaryEngine.EnergyKWh

		if opts.IncludeSteamBoilers {
			m.dst.SteamBoiler = SubsystemDemand{EnergyKWh: boilerPower * timeH, PowerKW: boilerPower}
			out.TotalKWh += m.dst.SteamBoiler.EnergyKWh
			peak += boilerPower
		}

		if m.mode == model.ModeManoeuvring || m.mode == model.ModeAtSea {
			if len(m.legs) == 0 {
				return EnergyEstimate{}, errs.Computationf(
					"energy: no legs in mode %s; peak propulsion power is undefined", string(m.mode))
			}
			energy, power, err := propulsionDemand(vessel, m.mode, m.legs, opts)
			if err != nil {
				return EnergyEstimate{}, err
			}
			m.dst.PropulsionEnergyKWh = energy
			m.dst.PropulsionPowerKW = power
			out.TotalKWh += floats.Sum(energy)
			peak += floats.Max(power)
		}

		peaks = append(peaks, peak)
	}

	out.MaxPowerKW = floats.Max(peaks)
	return out, nil
}
