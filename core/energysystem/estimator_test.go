package energysystem

import (
	"testing"

	"github.com/ceto-project/ceto/core/errs"
	"github.com/ceto-project/ceto/core/model"
)

func testVessel() model.VesselData {
	size := 2000.0
	return model.VesselData{
		Type:                      model.VesselFerry,
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
}

func testVoyage() model.VoyageProfile {
	return model.VoyageProfile{
		TimeAtBerthH:  10,
		TimeAnchoredH: 2,
		Manoeuvring:   []model.Leg{{DistanceNM: 2, SpeedKn: 5, DraftM: 3}},
		AtSea:         []model.Leg{{DistanceNM: 30, SpeedKn: 12, DraftM: 3}},
	}
}

func TestNewEstimator(t *testing.T) {
	for _, strategy := range Strategies() {
		est, err := NewEstimator(strategy)
		if err != nil {
			t.Fatalf("%s: %v", strategy, err)
		}
		if est.Strategy() != strategy {
			t.Errorf("estimator for %s reports %s", strategy, est.Strategy())
		}
	}
	if _, err := NewEstimator("cold-fusion"); !errs.IsKind(err, errs.KindConfiguration) {
		t.Fatalf("unknown strategy accepted: %v", err)
	}
}

func TestElectricalEngineRounding(t *testing.T) {
	ref := DefaultReferenceValues()
	motors := sizeElectricalEngines(Requirements{PowerKW: 1001, Engines: 2}, ref)
	// 1001/2 = 500.5 rounds up to the next 10 kW step.
	if motors.PowerPerEngineKW != 510 {
		t.Fatalf("per-engine power = %.0f kW, want 510", motors.PowerPerEngineKW)
	}
	if motors.Count != 2 {
		t.Fatalf("count = %d, want 2", motors.Count)
	}
	if motors.WeightPerEngineKg <= 0 || motors.VolumePerEngineM3 <= 0 {
		t.Fatalf("non-positive motor weight/volume")
	}
}

func TestElectricalEngineDoubleEnded(t *testing.T) {
	ref := DefaultReferenceValues()
	req := Requirements{PowerKW: 1000, Engines: 2}
	symmetric := sizeElectricalEngines(req, ref)

	req.DoubleEnded = true
	doubleEnded := sizeElectricalEngines(req, ref)

	// A double-ended hull only ever drives half its shafts, so each motor
	// covers the demand of the working pair.
	if doubleEnded.PowerPerEngineKW != 2*symmetric.PowerPerEngineKW {
		t.Fatalf("double-ended per-engine power = %.0f kW, want %.0f",
			doubleEnded.PowerPerEngineKW, 2*symmetric.PowerPerEngineKW)
	}
	if doubleEnded.Count != 2 {
		t.Fatalf("double-ended count = %d, want 2", doubleEnded.Count)
	}
}

func TestEstimateOneShot(t *testing.T) {
	energy, err := estimateTestEnergy()
	if err != nil {
		t.Fatalf("energy: %v", err)
	}
	est, err := Estimate(energy, testVessel(), StrategyBattery, DefaultReferenceValues())
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if est.TotalWeightKg <= 0 || est.TotalVolumeM3 <= 0 {
		t.Fatalf("non-positive totals: %.1f kg / %.2f m3", est.TotalWeightKg, est.TotalVolumeM3)
	}
	if est.Iterations != 0 || est.Converged {
		t.Fatalf("one-shot estimate carries solver state")
	}
}
