package imo

import (
	"fmt"

	"github.com/ceto-project/ceto/core/errs"
	"github.com/ceto-project/ceto/core/model"
)

// Installed-power regime bounds for auxiliary demand (Table 17, IMO 4th
// GHG study). Below the lower bound the tabulated regime does not apply
// and demand is zero; between the bounds auxiliary demand is a fixed
// fraction of installed power.
const (
	auxTableMinInstalledKW   = 150.0
	auxTableFullInstalledKW  = 500.0
	auxSmallVesselEngineFrac = 0.05
)

// auxPowerRow is one size bucket of the auxiliary demand table. Columns
// are indexed by operation mode in the order at_berth, anchored,
// manoeuvring, at_sea.
type auxPowerRow struct {
	minSize float64
	boiler  [4]float64
	engine  [4]float64
}

var auxModeIndex = map[model.OperationMode]int{
	model.ModeAtBerth:     0,
	model.ModeAnchored:    1,
	model.ModeManoeuvring: 2,
	model.ModeAtSea:       3,
}

// auxPowerTable reproduces Table 17 of the IMO 4th GHG study. Buckets are
// sorted ascending by lower size bound; lookups pick the row with the
// largest bound not exceeding the vessel size.
var auxPowerTable = map[model.VesselType][]auxPowerRow{
	model.VesselBulkCarrier: {
		{0, [4]float64{70, 70, 60, 0}, [4]float64{110, 180, 500, 190}},
		{10000, [4]float64{70, 70, 60, 0}, [4]float64{110, 180, 500, 190}},
		{35000, [4]float64{130, 130, 120, 0}, [4]float64{150, 250, 680, 260}},
		{60000, [4]float64{260, 260, 240, 0}, [4]float64{240, 400, 1100, 410}},
		{100000, [4]float64{260, 260, 240, 0}, [4]float64{240, 400, 1100, 410}},
		{200000, [4]float64{260, 260, 240, 0}, [4]float64{240, 400, 1100, 410}},
	},
	model.VesselChemicalTanker: {
		{0, [4]float64{670, 160, 130, 0}, [4]float64{110, 170, 190, 200}},
		{5000, [4]float64{670, 160, 130, 0}, [4]float64{330, 490, 560, 580}},
		{10000, [4]float64{1000, 240, 200, 0}, [4]float64{330, 490, 560, 580}},
		{20000, [4]float64{1350, 320, 270, 0}, [4]float64{790, 550, 900, 660}},
		{40000, [4]float64{1350, 320, 270, 0}, [4]float64{790, 550, 900, 660}},
	},
	model.VesselContainer: {
		{0, [4]float64{250, 250, 240, 0}, [4]float64{370, 450, 790, 410}},
		{1000, [4]float64{340, 340, 310, 0}, [4]float64{820, 910, 1750, 900}},
		{2000, [4]float64{460, 450, 430, 0}, [4]float64{610, 910, 1900, 920}},
		{3000, [4]float64{480, 480, 430, 0}, [4]float64{1100, 1350, 2500, 1400}},
		{5000, [4]float64{590, 580, 550, 0}, [4]float64{1100, 1400, 2800, 1450}},
		{8000, [4]float64{620, 620, 540, 0}, [4]float64{1150, 1600, 2900, 1800}},
		{12000, [4]float64{630, 630, 630, 0}, [4]float64{1300, 1800, 3250, 2050}},
		{14500, [4]float64{630, 630, 630, 0}, [4]float64{1400, 1950, 3600, 2300}},
		{20000, [4]float64{700, 700, 700, 0}, [4]float64{1400, 1950, 3600, 2300}},
	},
	model.VesselGeneralCargo: {
		{0, [4]float64{0, 0, 0, 0}, [4]float64{90, 50, 180, 60}},
		{5000, [4]float64{110, 110, 100, 0}, [4]float64{240, 130, 490, 180}},
		{10000, [4]float64{150, 150, 130, 0}, [4]float64{720, 370, 1450, 520}},
		{20000, [4]float64{150, 150, 130, 0}, [4]float64{720, 370, 1450, 520}},
	},
	model.VesselLiquifiedGasTanker: {
		{0, [4]float64{1000, 200, 200, 100}, [4]float64{240, 240, 360, 240}},
		{20000, [4]float64{1000, 200, 200, 100}, [4]float64{1700, 1700, 2600, 1700}},
		{50000, [4]float64{1500, 300, 300, 150}, [4]float64{2500, 2000, 2300, 2650}},
		{100000, [4]float64{3000, 600, 600, 300}, [4]float64{6750, 7200, 7200, 6750}},
	},
	model.VesselOilTanker: {
		{0, [4]float64{500, 100, 100, 0}, [4]float64{250, 250, 375, 250}},
		{5000, [4]float64{750, 150, 150, 0}, [4]float64{375, 375, 560, 375}},
		{10000, [4]float64{1250, 250, 250, 0}, [4]float64{690, 500, 580, 490}},
		{20000, [4]float64{2700, 270, 270, 270}, [4]float64{720, 520, 600, 510}},
		{60000, [4]float64{3250, 360, 360, 280}, [4]float64{620, 490, 770, 560}},
		{80000, [4]float64{4000, 400, 400, 280}, [4]float64{800, 640, 910, 690}},
		{120000, [4]float64{6500, 500, 500, 300}, [4]float64{2500, 770, 1300, 860}},
		{200000, [4]float64{7000, 600, 600, 300}, [4]float64{2500, 770, 1300, 860}},
	},
	model.VesselOtherLiquidsTanker: {
		{0, [4]float64{1000, 200, 200, 100}, [4]float64{500, 500, 750, 500}},
		{1000, [4]float64{1000, 200, 200, 100}, [4]float64{500, 500, 750, 500}},
	},
	model.VesselFerry: {
		{0, [4]float64{0, 0, 0, 0}, [4]float64{190, 190, 190, 190}},
		{300, [4]float64{0, 0, 0, 0}, [4]float64{190, 190, 190, 190}},
		{1000, [4]float64{0, 0, 0, 0}, [4]float64{190, 190, 190, 190}},
		{2000, [4]float64{0, 0, 0, 0}, [4]float64{520, 520, 520, 520}},
	},
	model.VesselCruise: {
		{0, [4]float64{1100, 950, 980, 0}, [4]float64{450, 450, 580, 450}},
		{2000, [4]float64{1100, 950, 980, 0}, [4]float64{450, 450, 580, 450}},
		{10000, [4]float64{1100, 950, 980, 0}, [4]float64{3500, 3500, 5500, 3500}},
		{60000, [4]float64{1100, 950, 980, 0}, [4]float64{11500, 11500, 14900, 11500}},
		{100000, [4]float64{1100, 950, 980, 0}, [4]float64{11500, 11500, 14900, 11500}},
		{150000, [4]float64{1100, 950, 980, 0}, [4]float64{11500, 11500, 14900, 11500}},
	},
	model.VesselRopax: {
		{0, [4]float64{260, 250, 170, 0}, [4]float64{105, 105, 105, 105}},
		{2000, [4]float64{260, 250, 170, 0}, [4]float64{330, 330, 330, 330}},
		{5000, [4]float64{260, 250, 170, 0}, [4]float64{670, 670, 670, 670}},
		{10000, [4]float64{390, 380, 260, 0}, [4]float64{1100, 1100, 1100, 1000}},
		{20000, [4]float64{390, 380, 260, 0}, [4]float64{1950, 1950, 1950, 1950}},
	},
	model.VesselRefrigeratedCargo: {
		{0, [4]float64{270, 270, 270, 0}, [4]float64{520, 570, 560, 570}},
		{2000, [4]float64{270, 270, 270, 0}, [4]float64{1100, 1200, 1150, 1200}},
		{6000, [4]float64{270, 270, 270, 0}, [4]float64{1500, 1650, 1600, 1650}},
		{10000, [4]float64{270, 270, 270, 0}, [4]float64{2850, 3100, 3000, 3100}},
	},
	model.VesselRoro: {
		{0, [4]float64{260, 250, 170, 0}, [4]float64{750, 430, 1300, 430}},
		{5000, [4]float64{260, 250, 170, 0}, [4]float64{1100, 680, 2100, 680}},
		{10000, [4]float64{390, 380, 260, 0}, [4]float64{1200, 950, 2700, 950}},
		{15000, [4]float64{390, 380, 260, 0}, [4]float64{1200, 950, 2700, 950}},
	},
	model.VesselVehicleCarrier: {
		{0, [4]float64{310, 300, 250, 0}, [4]float64{800, 500, 1100, 500}},
		{10000, [4]float64{310, 300, 250, 0}, [4]float64{850, 550, 1400, 510}},
		{20000, [4]float64{310, 300, 250, 0}, [4]float64{850, 550, 1400, 510}},
	},
	model.VesselYacht: {
		{0, [4]float64{0, 0, 0, 0}, [4]float64{130, 130, 130, 130}},
	},
	model.VesselTug: {
		{0, [4]float64{0, 0, 0, 0}, [4]float64{100, 80, 210, 80}},
	},
	model.VesselFishing: {
		{0, [4]float64{0, 0, 0, 0}, [4]float64{200, 200, 200, 200}},
	},
	model.VesselOffshore: {
		{0, [4]float64{0, 0, 0, 0}, [4]float64{320, 320, 320, 320}},
	},
	model.VesselServiceOther: {
		{0, [4]float64{0, 0, 0, 0}, [4]float64{220, 220, 220, 220}},
	},
	model.VesselMiscOther: {
		{0, [4]float64{110, 110, 90, 0}, [4]float64{150, 150, 430, 410}},
	},
}

// init validates the auxiliary table once at startup: every vessel type
// must have at least one bucket starting at size 0, sorted ascending.
func init() {
	for _, t := range model.VesselTypes {
		rows, ok := auxPowerTable[t]
		if !ok || len(rows) == 0 {
			panic(fmt.Sprintf("imo: auxiliary power table missing vessel type %q", t))
		}
		if rows[0].minSize != 0 {
			panic(fmt.Sprintf("imo: auxiliary power table for %q does not start at size 0", t))
		}
		for i := 1; i < len(rows); i++ {
			if rows[i].minSize <= rows[i-1].minSize {
				panic(fmt.Sprintf("imo: auxiliary power table for %q is not sorted", t))
			}
		}
	}
}

// EstimateAuxiliaryPowerDemand returns the auxiliary engine and steam
// boiler power demand in kW for the vessel in the given operation mode.
// Vessels with less than 150 kW of installed propulsion power fall outside
// the tabulated regime and draw nothing; between 150 and 500 kW the
// auxiliary engine demand is 5% of installed power while the boiler demand
// is tabulated.
func EstimateAuxiliaryPowerDemand(vessel model.VesselData, mode model.OperationMode) (engineKW, boilerKW float64, err error) {
	if !mode.Valid() {
		return 0, 0, errs.Configurationf("auxiliary power: unknown operation mode %q", string(mode))
	}
	if err := vessel.Validate(); err != nil {
		return 0, 0, err
	}

	rows, ok := auxPowerTable[vessel.Type]
	if !ok {
		return 0, 0, errs.Configurationf("auxiliary power: no table for vessel type %q", string(vessel.Type))
	}

	row := rows[0]
	size := vessel.SizeValue()
	for _, r := range rows {
		if size >= r.minSize {
			row = r
		}
	}
	col := auxModeIndex[mode]

	installed := vessel.InstalledPowerKW()
	switch {
	case installed < auxTableMinInstalledKW:
		return 0, 0, nil
	case installed < auxTableFullInstalledKW:
		return auxSmallVesselEngineFrac * installed, row.boiler[col], nil
	default:
		return row.engine[col], row.boiler[col], nil
	}
}
