// Package imo implements the fuel and energy estimation models of the
// IMO 4th GHG study: specific fuel consumption baselines, tabulated
// auxiliary power demand, the admiralty-style propulsion load model, and
// the voyage aggregators built on top of them.
package imo

import (
	"github.com/ceto-project/ceto/core/errs"
	"github.com/ceto-project/ceto/core/model"
)

// MaxEngineLoad bounds the load fraction accepted by the SFC model.
// Values above 1 cover short-term overload.
const MaxEngineLoad = 1.5

// sfcBaselines holds baseline specific fuel consumption in g/kWh keyed by
// engine type, fuel type and engine age (Table 19, IMO 4th GHG study).
// The dual-fuel categories LNG-Otto-SS and LNG-Diesel are not tabulated.
var sfcBaselines = map[model.EngineType]map[model.FuelType]map[model.EngineAge]float64{
	model.EngineSSD: {
		model.FuelHFO:  {model.AgeBefore1983: 205, model.Age1984To2000: 185, model.AgeAfter2001: 175},
		model.FuelMDO:  {model.AgeBefore1983: 190, model.Age1984To2000: 175, model.AgeAfter2001: 165},
		model.FuelMeOH: {model.AgeAfter2001: 350},
	},
	model.EngineMSD: {
		model.FuelHFO:  {model.AgeBefore1983: 215, model.Age1984To2000: 195, model.AgeAfter2001: 185},
		model.FuelMDO:  {model.AgeBefore1983: 200, model.Age1984To2000: 185, model.AgeAfter2001: 175},
		model.FuelMeOH: {model.AgeAfter2001: 370},
	},
	model.EngineHSD: {
		model.FuelHFO: {model.AgeBefore1983: 225, model.Age1984To2000: 205, model.AgeAfter2001: 195},
		model.FuelMDO: {model.AgeBefore1983: 210, model.Age1984To2000: 190, model.AgeAfter2001: 185},
	},
	model.EngineLNGOttoMS: {
		model.FuelLNG: {model.Age1984To2000: 173, model.AgeAfter2001: 156},
	},
	model.EngineLBSI: {
		model.FuelLNG: {model.Age1984To2000: 156, model.AgeAfter2001: 156},
	},
	model.EngineGasTurbine: {
		model.FuelHFO: {model.AgeBefore1983: 305, model.Age1984To2000: 305, model.AgeAfter2001: 305},
		model.FuelMDO: {model.AgeBefore1983: 300, model.Age1984To2000: 300, model.AgeAfter2001: 300},
		model.FuelLNG: {model.AgeAfter2001: 203},
	},
	model.EngineSteamTurbine: {
		model.FuelHFO: {model.AgeBefore1983: 340, model.Age1984To2000: 340, model.AgeAfter2001: 340},
		model.FuelMDO: {model.AgeBefore1983: 320, model.Age1984To2000: 320, model.AgeAfter2001: 320},
		model.FuelLNG: {model.AgeBefore1983: 285, model.Age1984To2000: 285, model.AgeAfter2001: 285},
	},
	model.EngineSteamBoiler: {
		model.FuelHFO: {model.AgeBefore1983: 340, model.Age1984To2000: 340, model.AgeAfter2001: 340},
		model.FuelMDO: {model.AgeBefore1983: 320, model.Age1984To2000: 320, model.AgeAfter2001: 320},
		model.FuelLNG: {model.AgeBefore1983: 285, model.Age1984To2000: 285, model.AgeAfter2001: 285},
	},
	model.EngineAuxiliary: {
		model.FuelHFO: {model.AgeBefore1983: 225, model.Age1984To2000: 205, model.AgeAfter2001: 195},
		model.FuelMDO: {model.AgeBefore1983: 210, model.Age1984To2000: 190, model.AgeAfter2001: 185},
		model.FuelLNG: {model.AgeAfter2001: 156},
	},
}

// loadIndependent marks the engine categories whose SFC does not vary
// with load.
var loadIndependent = map[model.EngineType]bool{
	model.EngineGasTurbine:   true,
	model.EngineSteamTurbine: true,
	model.EngineSteamBoiler:  true,
	model.EngineAuxiliary:    true,
}

// EstimateSpecificFuelConsumption returns the specific fuel consumption in
// kg/kWh for the given load fraction, engine category, fuel type and engine
// age. The load is clamped to [0, MaxEngineLoad] before lookup. For
// reciprocating engines the baseline is corrected by a quadratic load
// polynomial; turbines, boilers and auxiliary engines use the baseline
// as-is.
func EstimateSpecificFuelConsumption(load float64, engine model.EngineType, fuel model.FuelType, age model.EngineAge) (float64, error) {
	if !fuel.Valid() {
		return 0, errs.Validationf("sfc: unknown fuel type %q", string(fuel))
	}
	if !age.Valid() {
		return 0, errs.Validationf("sfc: unknown engine age %q", string(age))
	}

	baseline, err := lookupSFCBaseline(engine, fuel, age)
	if err != nil {
		return 0, err
	}

	if loadIndependent[engine] {
		return baseline / 1000, nil
	}

	if load < 0 {
		load = 0
	}
	if load > MaxEngineLoad {
		load = MaxEngineLoad
	}
	return baseline * (0.455*load*load - 0.710*load + 1.280) / 1000, nil
}

func lookupSFCBaseline(engine model.EngineType, fuel model.FuelType, age model.EngineAge) (float64, error) {
	byFuel, ok := sfcBaselines[engine]
	if !ok {
		return 0, errs.Lookupf("sfc: no baseline table for engine type %q", string(engine))
	}
	byAge, ok := byFuel[fuel]
	if !ok {
		return 0, errs.Lookupf("sfc: no baseline for %s burning %s", string(engine), string(fuel))
	}
	baseline, ok := byAge[age]
	if !ok {
		return 0, errs.Lookupf("sfc: no baseline for %s, %s, %s", string(engine), string(fuel), string(age))
	}
	return baseline, nil
}
