package imo

import (
	"math"
	"testing"

	"github.com/ceto-project/ceto/core/errs"
	"github.com/ceto-project/ceto/core/model"
)

func testVoyage() model.VoyageProfile {
	return model.VoyageProfile{
		TimeAtBerthH:  10,
		TimeAnchoredH: 2,
		Manoeuvring:   []model.Leg{{DistanceNM: 2, SpeedKn: 5, DraftM: 3}},
		AtSea:         []model.Leg{{DistanceNM: 30, SpeedKn: 12, DraftM: 3}},
	}
}

func TestFuelConsumptionBreakdown(t *testing.T) {
	v := testVessel(model.VesselFerry, 2000)
	fc, err := EstimateFuelConsumption(v, testVoyage(), DefaultOptions())
	if err != nil {
		t.Fatalf("fuel: %v", err)
	}
	if fc.TotalKg <= 0 {
		t.Fatalf("non-positive total %.1f kg", fc.TotalKg)
	}
	sum := fc.AtBerth.SubTotalKg + fc.Anchored.SubTotalKg + fc.Manoeuvring.SubTotalKg + fc.AtSea.SubTotalKg
	if math.Abs(fc.TotalKg-sum) > 1e-9 {
		t.Fatalf("total %.3f != sum of modes %.3f", fc.TotalKg, sum)
	}
	if fc.AtSea.PropulsionKg <= 0 {
		t.Errorf("sea passage burned no propulsion fuel")
	}
	if fc.AtBerth.PropulsionKg != 0 {
		t.Errorf("berth phase burned propulsion fuel: %.1f kg", fc.AtBerth.PropulsionKg)
	}
	if fc.AtSea.AverageLitersPerNM <= 0 {
		t.Errorf("sea passage average consumption not reported")
	}
}

func TestSevenPercentRuleSilencesIdleLegs(t *testing.T) {
	v := testVessel(model.VesselFerry, 2000)
	voyage := testVoyage()
	// 3 kn on a 14 kn design gives roughly 1% load, well under the cutoff.
	voyage.AtSea = []model.Leg{{DistanceNM: 30, SpeedKn: 3, DraftM: 3}}

	withRule, err := EstimateFuelConsumption(v, voyage, DefaultOptions())
	if err != nil {
		t.Fatalf("with rule: %v", err)
	}
	if withRule.AtSea.PropulsionKg != 0 {
		t.Fatalf("idle leg burned %.1f kg despite the 7%% rule", withRule.AtSea.PropulsionKg)
	}

	opts := DefaultOptions()
	opts.ApplySevenPercentRule = false
	withoutRule, err := EstimateFuelConsumption(v, voyage, opts)
	if err != nil {
		t.Fatalf("without rule: %v", err)
	}
	if withoutRule.AtSea.PropulsionKg <= 0 {
		t.Fatalf("idle leg silenced with the rule disabled")
	}
}

func TestSevenPercentRuleBoundaryLeg(t *testing.T) {
	v := testVessel(model.VesselFerry, 2000)
	voyage := testVoyage()
	// Sailing at the design point puts the draft and speed ratios at one,
	// so the speed-power correction override sets the load directly:
	// load = dw / (fouling * weather). The ferry weather factor is 0.909.
	dw := SevenPercentLoadThreshold * FoulingFactor * 0.909
	voyage.AtSea = []model.Leg{{DistanceNM: 28, SpeedKn: v.DesignSpeedKn, DraftM: v.DesignDraftM}}

	load, err := EstimatePropulsionEngineLoad(v.DesignSpeedKn, v.DesignDraftM, v, &dw)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if load > SevenPercentLoadThreshold {
		t.Fatalf("constructed load %.17g above the threshold", load)
	}

	opts := DefaultOptions()
	opts.SpeedPowerCorrection = &dw
	withRule, err := EstimateFuelConsumption(v, voyage, opts)
	if err != nil {
		t.Fatalf("with rule: %v", err)
	}
	if withRule.AtSea.PropulsionKg != 0 {
		t.Errorf("leg at the cutoff burned %.3f kg of propulsion fuel", withRule.AtSea.PropulsionKg)
	}

	opts.ApplySevenPercentRule = false
	withoutRule, err := EstimateFuelConsumption(v, voyage, opts)
	if err != nil {
		t.Fatalf("without rule: %v", err)
	}
	if withoutRule.AtSea.PropulsionKg <= 0 {
		t.Errorf("rule off: propulsion fuel %.3f kg", withoutRule.AtSea.PropulsionKg)
	}
}

func TestBoilerExclusion(t *testing.T) {
	// Cruise ships carry large tabulated boiler demand.
	v := testVessel(model.VesselCruise, 20000)
	v.PropulsionEnginePowerKW = 8000

	with, err := EstimateFuelConsumption(v, testVoyage(), DefaultOptions())
	if err != nil {
		t.Fatalf("with boilers: %v", err)
	}
	opts := DefaultOptions()
	opts.IncludeSteamBoilers = false
	without, err := EstimateFuelConsumption(v, testVoyage(), opts)
	if err != nil {
		t.Fatalf("without boilers: %v", err)
	}
	if with.AtBerth.SteamBoilerKg <= 0 {
		t.Fatalf("cruise ship at berth burned no boiler fuel")
	}
	if without.AtBerth.SteamBoilerKg != 0 {
		t.Fatalf("boiler fuel reported with boilers excluded")
	}
	if without.TotalKg >= with.TotalKg {
		t.Fatalf("excluding boilers did not reduce the total")
	}
}

func TestZeroSpeedLegIsComputationError(t *testing.T) {
	v := testVessel(model.VesselFerry, 2000)
	voyage := testVoyage()
	voyage.AtSea = []model.Leg{{DistanceNM: 30, SpeedKn: 0, DraftM: 3}}
	_, err := EstimateFuelConsumption(v, voyage, DefaultOptions())
	if !errs.IsKind(err, errs.KindComputation) {
		t.Fatalf("expected computation error, got %v", err)
	}
}

func TestFuelVolumeMassRoundTrip(t *testing.T) {
	vol, err := FuelVolumeM3(895, model.FuelMDO)
	if err != nil {
		t.Fatalf("volume: %v", err)
	}
	if math.Abs(vol-1) > 1e-9 {
		t.Fatalf("895 kg of MDO = %.6f m3, want 1", vol)
	}
	mass, err := FuelMassKg(vol, model.FuelMDO)
	if err != nil {
		t.Fatalf("mass: %v", err)
	}
	if math.Abs(mass-895) > 1e-9 {
		t.Fatalf("round trip gave %.3f kg", mass)
	}
}

func TestFuelRejectsInvalidVessel(t *testing.T) {
	v := testVessel(model.VesselFerry, 2000)
	v.DesignSpeedKn = 0
	_, err := EstimateFuelConsumption(v, testVoyage(), DefaultOptions())
	if !errs.IsKind(err, errs.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
