package model

import (
	"github.com/ceto-project/ceto/core/errs"
)

// VesselType is one of the vessel categories of the IMO 4th GHG study.
type VesselType string

const (
	VesselBulkCarrier        VesselType = "bulk_carrier"
	VesselChemicalTanker     VesselType = "chemical_tanker"
	VesselContainer          VesselType = "container"
	VesselGeneralCargo       VesselType = "general_cargo"
	VesselLiquifiedGasTanker VesselType = "liquified_gas_tanker"
	VesselOilTanker          VesselType = "oil_tanker"
	VesselOtherLiquidsTanker VesselType = "other_liquids_tanker"
	VesselFerry              VesselType = "ferry"
	VesselCruise             VesselType = "cruise"
	VesselRopax              VesselType = "ropax"
	VesselRefrigeratedCargo  VesselType = "refrigerated_cargo"
	VesselRoro               VesselType = "roro"
	VesselVehicleCarrier     VesselType = "vehicle"
	VesselYacht              VesselType = "yacht"
	VesselFishing            VesselType = "miscellaneous-fishing"
	VesselTug                VesselType = "service-tug"
	VesselOffshore           VesselType = "offshore"
	VesselServiceOther       VesselType = "service-other"
	VesselMiscOther          VesselType = "miscellaneous-other"
)

// VesselTypes lists every recognised vessel type. The size unit depends on
// the type: DWT for dry/liquid cargo carriers, TEU for container ships,
// CBM for gas tankers, GT for passenger and service vessels, and car count
// for vehicle carriers.
var VesselTypes = []VesselType{
	VesselBulkCarrier, VesselChemicalTanker, VesselContainer,
	VesselGeneralCargo, VesselLiquifiedGasTanker, VesselOilTanker,
	VesselOtherLiquidsTanker, VesselFerry, VesselCruise, VesselRopax,
	VesselRefrigeratedCargo, VesselRoro, VesselVehicleCarrier, VesselYacht,
	VesselFishing, VesselTug, VesselOffshore, VesselServiceOther,
	VesselMiscOther,
}

// nilSizeVesselTypes are the types whose auxiliary-power table has a single
// size-independent row; only these may omit the size field.
var nilSizeVesselTypes = map[VesselType]bool{
	VesselYacht:        true,
	VesselTug:          true,
	VesselFishing:      true,
	VesselOffshore:     true,
	VesselServiceOther: true,
	VesselMiscOther:    true,
}

// Valid reports whether t is a recognised vessel type.
func (t VesselType) Valid() bool {
	for _, v := range VesselTypes {
		if t == v {
			return true
		}
	}
	return false
}

// AllowsNilSize reports whether vessels of this type may omit the size field.
func (t VesselType) AllowsNilSize() bool { return nilSizeVesselTypes[t] }

// FuelType identifies the fuel burned by an engine.
type FuelType string

const (
	FuelHFO  FuelType = "HFO"
	FuelMDO  FuelType = "MDO"
	FuelMeOH FuelType = "MeOH"
	FuelLNG  FuelType = "LNG"
)

// FuelTypes lists every recognised fuel type.
var FuelTypes = []FuelType{FuelHFO, FuelMDO, FuelMeOH, FuelLNG}

// Valid reports whether f is a recognised fuel type.
func (f FuelType) Valid() bool {
	for _, v := range FuelTypes {
		if f == v {
			return true
		}
	}
	return false
}

// DensityKgPerM3 returns the fuel density used to convert between fuel mass
// and bunkered volume (Table 10, IMO 4th GHG study).
func (f FuelType) DensityKgPerM3() (float64, error) {
	switch f {
	case FuelHFO:
		return 1001, nil
	case FuelMDO:
		return 895, nil
	case FuelLNG:
		return 450, nil
	case FuelMeOH:
		return 790, nil
	}
	return 0, errs.Lookupf("no density tabulated for fuel type %q", string(f))
}

// EngineType identifies an engine category for SFC lookups.
type EngineType string

const (
	EngineSSD          EngineType = "SSD"
	EngineMSD          EngineType = "MSD"
	EngineHSD          EngineType = "HSD"
	EngineLNGOttoMS    EngineType = "LNG-Otto-MS"
	EngineLBSI         EngineType = "LBSI"
	EngineGasTurbine   EngineType = "gas_turbine"
	EngineSteamTurbine EngineType = "steam_turbine"

	// EngineSteamBoiler and EngineAuxiliary are auxiliary-system categories.
	// They appear in the SFC table but are not valid propulsion engine types.
	EngineSteamBoiler EngineType = "steam_boiler"
	EngineAuxiliary   EngineType = "auxiliary_engine"
)

// PropulsionEngineTypes lists the engine types a vessel's main engines
// may be declared as.
var PropulsionEngineTypes = []EngineType{
	EngineSSD, EngineMSD, EngineHSD, EngineLNGOttoMS, EngineLBSI,
	EngineGasTurbine, EngineSteamTurbine,
}

// ValidPropulsion reports whether e may drive a propulsion shaft.
func (e EngineType) ValidPropulsion() bool {
	for _, v := range PropulsionEngineTypes {
		if e == v {
			return true
		}
	}
	return false
}

// EngineAge selects the SFC baseline generation of an engine.
type EngineAge string

const (
	AgeBefore1983 EngineAge = "before_1983"
	Age1984To2000 EngineAge = "1984-2000"
	AgeAfter2001  EngineAge = "after_2001"
)

// EngineAges lists every recognised engine age bracket.
var EngineAges = []EngineAge{AgeBefore1983, Age1984To2000, AgeAfter2001}

// Valid reports whether a is a recognised engine age bracket.
func (a EngineAge) Valid() bool {
	for _, v := range EngineAges {
		if a == v {
			return true
		}
	}
	return false
}

// Physical validation bounds for vessel data.
const (
	MaxVesselSpeedKn = 50.0
	MinVesselDraftM  = 0.1
	MaxVesselDraftM  = 25.0
	MinEnginePowerKW = 5.0
	MaxEnginePowerKW = 60000.0
	MaxVesselSize    = 500000.0
)

// VesselData describes a vessel's as-built configuration. It is immutable
// for the duration of a solver run.
type VesselData struct {
	Type                      VesselType `json:"type"`
	Size                      *float64   `json:"size"`
	LengthM                   float64    `json:"length"`
	BeamM                     float64    `json:"beam"`
	DesignDraftM              float64    `json:"design_draft"`
	DesignSpeedKn             float64    `json:"design_speed"`
	NumberOfPropulsionEngines int        `json:"number_of_propulsion_engines"`
	DoubleEnded               bool       `json:"double_ended"`
	PropulsionEnginePowerKW   float64    `json:"propulsion_engine_power"`
	PropulsionEngineType      EngineType `json:"propulsion_engine_type"`
	PropulsionEngineFuelType  FuelType   `json:"propulsion_engine_fuel_type"`
	PropulsionEngineAge       EngineAge  `json:"propulsion_engine_age"`
}

// SizeValue returns the vessel size, or 0 when the size is omitted.
func (v VesselData) SizeValue() float64 {
	if v.Size == nil {
		return 0
	}
	return *v.Size
}

// InstalledPowerKW returns the total installed propulsion power.
func (v VesselData) InstalledPowerKW() float64 {
	return float64(v.NumberOfPropulsionEngines) * v.PropulsionEnginePowerKW
}

// Validate checks the vessel data against the closed enum sets and the
// physical bounds. It returns a validation-kind error naming the first
// offending field.
func (v VesselData) Validate() error {
	if !v.Type.Valid() {
		return errs.Validationf("vessel_data: unknown vessel type %q", string(v.Type))
	}
	if v.Size == nil {
		if !v.Type.AllowsNilSize() {
			return errs.Validationf("vessel_data: size may only be omitted for size-independent vessel types, not %q", string(v.Type))
		}
	} else if *v.Size < 0 || *v.Size > MaxVesselSize {
		return errs.Validationf("vessel_data: size %.0f outside [0, %.0f]", *v.Size, MaxVesselSize)
	}
	if v.DesignSpeedKn <= 0 || v.DesignSpeedKn > MaxVesselSpeedKn {
		return errs.Validationf("vessel_data: design_speed %.2f kn outside (0, %.0f]", v.DesignSpeedKn, MaxVesselSpeedKn)
	}
	if v.DesignDraftM <= 0 || v.DesignDraftM > MaxVesselDraftM {
		return errs.Validationf("vessel_data: design_draft %.2f m outside (0, %.0f]", v.DesignDraftM, MaxVesselDraftM)
	}
	if v.NumberOfPropulsionEngines != 1 && v.NumberOfPropulsionEngines != 2 {
		return errs.Validationf("vessel_data: number_of_propulsion_engines must be 1 or 2, got %d", v.NumberOfPropulsionEngines)
	}
	if v.PropulsionEnginePowerKW < MinEnginePowerKW || v.PropulsionEnginePowerKW > MaxEnginePowerKW {
		return errs.Validationf("vessel_data: propulsion_engine_power %.0f kW outside [%.0f, %.0f]",
			v.PropulsionEnginePowerKW, MinEnginePowerKW, MaxEnginePowerKW)
	}
	if !v.PropulsionEngineType.ValidPropulsion() {
		return errs.Validationf("vessel_data: unknown propulsion_engine_type %q", string(v.PropulsionEngineType))
	}
	if !v.PropulsionEngineFuelType.Valid() {
		return errs.Validationf("vessel_data: unknown propulsion_engine_fuel_type %q", string(v.PropulsionEngineFuelType))
	}
	if !v.PropulsionEngineAge.Valid() {
		return errs.Validationf("vessel_data: unknown propulsion_engine_age %q", string(v.PropulsionEngineAge))
	}
	return nil
}
