package imo

import (
	"testing"

	"github.com/ceto-project/ceto/core/errs"
	"github.com/ceto-project/ceto/core/model"
)

func TestSFCBaselineLookup(t *testing.T) {
	got, err := EstimateSpecificFuelConsumption(1.0, model.EngineSSD, model.FuelHFO, model.AgeAfter2001)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	// 175 g/kWh * (0.455 - 0.710 + 1.280) = 179.375 g/kWh
	want := 0.179375
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("SFC at full load = %.6f kg/kWh, want %.6f", got, want)
	}
}

func TestSFCPolynomialMinimumNearOptimalLoad(t *testing.T) {
	at := func(load float64) float64 {
		v, err := EstimateSpecificFuelConsumption(load, model.EngineMSD, model.FuelMDO, model.Age1984To2000)
		if err != nil {
			t.Fatalf("load %.2f: %v", load, err)
		}
		return v
	}
	// The load correction parabola bottoms out near 78% load; both idle
	// and full load burn more per kWh.
	optimum := at(0.78)
	if at(0.2) <= optimum {
		t.Errorf("SFC at 20%% load (%.6f) not above optimum (%.6f)", at(0.2), optimum)
	}
	if at(1.0) <= optimum {
		t.Errorf("SFC at full load (%.6f) not above optimum (%.6f)", at(1.0), optimum)
	}
}

func TestSFCLoadClamped(t *testing.T) {
	atCap, err := EstimateSpecificFuelConsumption(MaxEngineLoad, model.EngineHSD, model.FuelMDO, model.AgeAfter2001)
	if err != nil {
		t.Fatalf("at cap: %v", err)
	}
	over, err := EstimateSpecificFuelConsumption(4.2, model.EngineHSD, model.FuelMDO, model.AgeAfter2001)
	if err != nil {
		t.Fatalf("over cap: %v", err)
	}
	if over != atCap {
		t.Errorf("load above %.1f not clamped: %.6f != %.6f", MaxEngineLoad, over, atCap)
	}

	atZero, err := EstimateSpecificFuelConsumption(0, model.EngineHSD, model.FuelMDO, model.AgeAfter2001)
	if err != nil {
		t.Fatalf("at zero: %v", err)
	}
	under, err := EstimateSpecificFuelConsumption(-0.5, model.EngineHSD, model.FuelMDO, model.AgeAfter2001)
	if err != nil {
		t.Fatalf("under zero: %v", err)
	}
	if under != atZero {
		t.Errorf("negative load not clamped to zero: %.6f != %.6f", under, atZero)
	}
}

func TestSFCLoadIndependentCategories(t *testing.T) {
	for _, engine := range []model.EngineType{model.EngineSteamTurbine, model.EngineGasTurbine, model.EngineSteamBoiler, model.EngineAuxiliary} {
		low, err := EstimateSpecificFuelConsumption(0.1, engine, model.FuelHFO, model.Age1984To2000)
		if err != nil {
			t.Fatalf("%s low: %v", engine, err)
		}
		high, err := EstimateSpecificFuelConsumption(1.0, engine, model.FuelHFO, model.Age1984To2000)
		if err != nil {
			t.Fatalf("%s high: %v", engine, err)
		}
		if low != high {
			t.Errorf("%s: SFC varies with load (%.6f vs %.6f)", engine, low, high)
		}
	}
}

func TestSFCMissingBaselineIsLookupError(t *testing.T) {
	// SSD engines burning LNG are not tabulated.
	_, err := EstimateSpecificFuelConsumption(0.8, model.EngineSSD, model.FuelLNG, model.AgeAfter2001)
	if !errs.IsKind(err, errs.KindLookup) {
		t.Fatalf("expected lookup error, got %v", err)
	}
	// MeOH only has a modern-age baseline.
	_, err = EstimateSpecificFuelConsumption(0.8, model.EngineSSD, model.FuelMeOH, model.AgeBefore1983)
	if !errs.IsKind(err, errs.KindLookup) {
		t.Fatalf("expected lookup error for old MeOH engine, got %v", err)
	}
}

func TestSFCRejectsUnknownEnums(t *testing.T) {
	if _, err := EstimateSpecificFuelConsumption(0.8, model.EngineSSD, "coal", model.AgeAfter2001); !errs.IsKind(err, errs.KindValidation) {
		t.Errorf("unknown fuel: expected validation error, got %v", err)
	}
	if _, err := EstimateSpecificFuelConsumption(0.8, model.EngineSSD, model.FuelHFO, "1700s"); !errs.IsKind(err, errs.KindValidation) {
		t.Errorf("unknown age: expected validation error, got %v", err)
	}
}
