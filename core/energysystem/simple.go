package energysystem

import (
	"github.com/ceto-project/ceto/core/errs"
	"github.com/ceto-project/ceto/core/model"
)

// fuelEnergyDensityKWhPerL is the energy content of bunker fuels per litre.
var fuelEnergyDensityKWhPerL = map[model.FuelType]float64{
	model.FuelHFO:  33.4 * 3.6,
	model.FuelMDO:  36.0 * 3.6,
	model.FuelMeOH: 16.0 * 3.6,
	model.FuelLNG:  21.2 * 3.6,
}

// SimpleInput describes a vessel by its observed average fuel consumption
// instead of a full voyage profile.
type SimpleInput struct {
	AverageFuelConsumptionLPerNM float64        `json:"average_fuel_consumption_lpnm"`
	FuelType                     model.FuelType `json:"propulsion_engine_fuel_type"`
	NumberOfPropulsionEngines    int            `json:"number_of_propulsion_engines"`
	PropulsionEnginePowerKW      float64        `json:"propulsion_engine_power_kw"`
	DoubleEnded                  bool           `json:"double_ended"`
	TotalVoyageLengthNM          float64        `json:"total_voyage_length_nm"`
}

// SuggestAlternativeEnergySystemsSimple sizes both alternative systems
// from an average fuel consumption figure, skipping the draft feedback
// loop. The required energy is the energy content of the fuel burned over
// the voyage; the required power is the installed propulsion power, halved
// for double-ended hulls.
func SuggestAlternativeEnergySystemsSimple(in SimpleInput, ref ReferenceValues) (gas, battery SystemEstimate, err error) {
	density, ok := fuelEnergyDensityKWhPerL[in.FuelType]
	if !ok {
		return SystemEstimate{}, SystemEstimate{}, errs.Lookupf("simple suggestion: no energy density tabulated for fuel type %q", string(in.FuelType))
	}
	if in.NumberOfPropulsionEngines != 1 && in.NumberOfPropulsionEngines != 2 {
		return SystemEstimate{}, SystemEstimate{}, errs.Validationf("simple suggestion: number_of_propulsion_engines must be 1 or 2, got %d", in.NumberOfPropulsionEngines)
	}

	totalFuelL := in.AverageFuelConsumptionLPerNM * in.TotalVoyageLengthNM
	req := Requirements{
		EnergyKWh:   density * totalFuelL,
		PowerKW:     in.PropulsionEnginePowerKW * float64(in.NumberOfPropulsionEngines),
		Engines:     in.NumberOfPropulsionEngines,
		DoubleEnded: in.DoubleEnded,
	}
	if in.DoubleEnded {
		req.PowerKW /= 2
	}

	if gas, err = (HydrogenGasEstimator{}).Estimate(req, ref); err != nil {
		return SystemEstimate{}, SystemEstimate{}, err
	}
	if battery, err = (BatteryEstimator{}).Estimate(req, ref); err != nil {
		return SystemEstimate{}, SystemEstimate{}, err
	}
	return gas, battery, nil
}
