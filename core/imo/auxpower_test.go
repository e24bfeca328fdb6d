package imo

import (
	"testing"

	"github.com/ceto-project/ceto/core/errs"
	"github.com/ceto-project/ceto/core/model"
)

func testVessel(vtype model.VesselType, size float64) model.VesselData {
	v := model.VesselData{
		Type:                      vtype,
		Size:                      &size,
		LengthM:                   80,
		BeamM:                     16,
		DesignDraftM:              3,
		DesignSpeedKn:             14,
		NumberOfPropulsionEngines: 2,
		PropulsionEnginePowerKW:   1500,
		PropulsionEngineType:      model.EngineMSD,
		PropulsionEngineFuelType:  model.FuelMDO,
		PropulsionEngineAge:       model.AgeAfter2001,
	}
	if vtype.AllowsNilSize() {
		v.Size = nil
	}
	return v
}

func TestAuxPowerTabulated(t *testing.T) {
	v := testVessel(model.VesselFerry, 2000)
	engine, boiler, err := EstimateAuxiliaryPowerDemand(v, model.ModeAtSea)
	if err != nil {
		t.Fatalf("aux demand: %v", err)
	}
	if engine != 520 {
		t.Errorf("ferry 2000 GT at sea: engine %.0f kW, want 520", engine)
	}
	if boiler != 0 {
		t.Errorf("ferry carries no boiler demand, got %.0f kW", boiler)
	}
}

func TestAuxPowerBucketsMonotone(t *testing.T) {
	small := testVessel(model.VesselBulkCarrier, 5000)
	large := testVessel(model.VesselBulkCarrier, 70000)
	smallKW, _, err := EstimateAuxiliaryPowerDemand(small, model.ModeAtSea)
	if err != nil {
		t.Fatalf("small: %v", err)
	}
	largeKW, _, err := EstimateAuxiliaryPowerDemand(large, model.ModeAtSea)
	if err != nil {
		t.Fatalf("large: %v", err)
	}
	if largeKW <= smallKW {
		t.Fatalf("demand did not grow with size: %.0f kW vs %.0f kW", smallKW, largeKW)
	}
}

func TestAuxPowerSmallInstalledRegimes(t *testing.T) {
	// Below 150 kW installed the tabulated regime does not apply at all.
	v := testVessel(model.VesselFerry, 2000)
	v.NumberOfPropulsionEngines = 1
	v.PropulsionEnginePowerKW = 100
	engine, boiler, err := EstimateAuxiliaryPowerDemand(v, model.ModeAtBerth)
	if err != nil {
		t.Fatalf("tiny vessel: %v", err)
	}
	if engine != 0 || boiler != 0 {
		t.Errorf("tiny vessel demand = %.1f/%.1f kW, want 0/0", engine, boiler)
	}

	// Between 150 and 500 kW the engine demand is 5% of installed power.
	v.PropulsionEnginePowerKW = 300
	engine, _, err = EstimateAuxiliaryPowerDemand(v, model.ModeAtBerth)
	if err != nil {
		t.Fatalf("small vessel: %v", err)
	}
	if engine != 15 {
		t.Errorf("small vessel engine demand = %.1f kW, want 15", engine)
	}
}

func TestAuxPowerSizeIndependentTypes(t *testing.T) {
	v := testVessel(model.VesselOffshore, 0)
	for _, mode := range model.OperationModes {
		engine, _, err := EstimateAuxiliaryPowerDemand(v, mode)
		if err != nil {
			t.Fatalf("%s: %v", mode, err)
		}
		if engine != 320 {
			t.Errorf("offshore %s: engine %.0f kW, want 320", mode, engine)
		}
	}
}

func TestAuxPowerUnknownMode(t *testing.T) {
	v := testVessel(model.VesselFerry, 2000)
	_, _, err := EstimateAuxiliaryPowerDemand(v, "submerged")
	if !errs.IsKind(err, errs.KindConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestAuxPowerTableCoversAllTypes(t *testing.T) {
	for _, vtype := range model.VesselTypes {
		v := testVessel(vtype, 1000)
		if _, _, err := EstimateAuxiliaryPowerDemand(v, model.ModeAtSea); err != nil {
			t.Errorf("%s: %v", vtype, err)
		}
	}
}
