package imo

import (
	"math"

	"github.com/ceto-project/ceto/core/errs"
	"github.com/ceto-project/ceto/core/model"
)

// FoulingFactor is the fixed hull/propeller fouling correction.
const FoulingFactor = 0.917

// Weather correction groups. Some types threshold on size at fixed
// breakpoints, the rest carry a fixed factor.
var (
	weatherSizeThreshold10k = map[model.VesselType]bool{
		model.VesselBulkCarrier:    true,
		model.VesselChemicalTanker: true,
		model.VesselGeneralCargo:   true,
		model.VesselOilTanker:      true,
	}
	weatherFixed867 = map[model.VesselType]bool{
		model.VesselYacht:              true,
		model.VesselVehicleCarrier:     true,
		model.VesselRefrigeratedCargo:  true,
		model.VesselOtherLiquidsTanker: true,
	}
	weatherFixed909 = map[model.VesselType]bool{
		model.VesselTug:          true,
		model.VesselFishing:      true,
		model.VesselOffshore:     true,
		model.VesselServiceOther: true,
		model.VesselMiscOther:    true,
		model.VesselRopax:        true,
		model.VesselFerry:        true,
	}
)

func weatherCorrectionFactor(vessel model.VesselData) (float64, error) {
	size := vessel.SizeValue()
	switch {
	case weatherSizeThreshold10k[vessel.Type]:
		if size < 10000 {
			return 0.909, nil
		}
		return 0.867, nil
	case weatherFixed867[vessel.Type]:
		return 0.867, nil
	case weatherFixed909[vessel.Type]:
		return 0.909, nil
	case vessel.Type == model.VesselContainer:
		if size < 1000 {
			return 0.900, nil
		}
		return 0.867, nil
	case vessel.Type == model.VesselCruise:
		if size < 2000 {
			return 0.909, nil
		}
		return 0.867, nil
	case vessel.Type == model.VesselRoro:
		if size < 5000 {
			return 0.909, nil
		}
		return 0.867, nil
	}
	return 0, errs.Lookupf("engine load: no weather correction factor tabulated for vessel type %q", string(vessel.Type))
}

func speedPowerCorrectionFactor(vessel model.VesselData, override *float64) (float64, error) {
	if override != nil {
		if *override < 0 || *override > 1 {
			return 0, errs.Validationf("engine load: speed-power correction override %.3f outside [0, 1]", *override)
		}
		return *override, nil
	}
	if vessel.Type == model.VesselContainer && vessel.SizeValue() > 14500 {
		return 0.75, nil
	}
	if vessel.Type == model.VesselCruise {
		return 0.70, nil
	}
	return 1.0, nil
}

// EstimatePropulsionEngineLoad estimates the propulsion engine load
// fraction at the given speed and draft. The model is an admiralty-style
// approximation: power scales with the cube of relative speed and the
// two-thirds power of relative displacement, using draft as displacement
// proxy, divided by fouling and weather corrections. deltaW overrides the
// speed-power correction factor when non-nil.
func EstimatePropulsionEngineLoad(speedKn, draftM float64, vessel model.VesselData, deltaW *float64) (float64, error) {
	if speedKn < 0 || speedKn > model.MaxVesselSpeedKn {
		return 0, errs.Validationf("engine load: speed %.2f kn outside [0, %.0f]", speedKn, model.MaxVesselSpeedKn)
	}
	if draftM < model.MinVesselDraftM || draftM > model.MaxVesselDraftM {
		return 0, errs.Validationf("engine load: draft %.2f m outside [%.1f, %.0f]", draftM, model.MinVesselDraftM, model.MaxVesselDraftM)
	}
	if err := vessel.Validate(); err != nil {
		return 0, err
	}

	etaW, err := weatherCorrectionFactor(vessel)
	if err != nil {
		return 0, err
	}
	dw, err := speedPowerCorrectionFactor(vessel, deltaW)
	if err != nil {
		return 0, err
	}

	relDraft := math.Pow(draftM/vessel.DesignDraftM, 2.0/3.0)
	relSpeed := math.Pow(speedKn/vessel.DesignSpeedKn, 3)
	return dw * relDraft * relSpeed / (FoulingFactor * etaW), nil
}
