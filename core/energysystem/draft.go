package energysystem

import (
	"math"

	"github.com/ceto-project/ceto/core/model"
	"github.com/ceto-project/ceto/internal/units"
)

// SeawaterDensityKgPerM3 is the reference seawater density.
const SeawaterDensityKgPerM3 = 1025.0

// EstimateDraftChange estimates the change in draft caused by a change in
// carried load, assuming a constant waterplane area.
//
// The waterplane area is approximated from the design block coefficient
// (a function of the design Froude number) and the waterplane-area
// coefficient Cwp = (1+2Cb)/3 (MAN, Basic Principles of Ship Propulsion;
// Schneekluth & Bertram, Ship Design for Efficiency and Economy).
func EstimateDraftChange(vessel model.VesselData, loadChangeKg float64) float64 {
	lengthWaterline := vessel.LengthM * 0.98
	beamWaterline := vessel.BeamM

	froude := units.KnotsToMs(vessel.DesignSpeedKn) / math.Sqrt(9.81*lengthWaterline)
	blockCoeff := 0.7 + math.Atan((23-100*froude)/4)/8
	waterplaneCoeff := (1 + 2*blockCoeff) / 3
	waterplaneArea := waterplaneCoeff * lengthWaterline * beamWaterline

	return loadChangeKg / (waterplaneArea * SeawaterDensityKgPerM3)
}
