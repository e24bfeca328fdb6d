package energysystem

import "github.com/ceto-project/ceto/core/errs"

// ReferenceValues bundles the physical constants the alternative-system
// estimators size against. Zero or negative values are treated as missing.
//
// Defaults correspond to PowerCellution 30/100 fuel cell systems, Corvus
// Energy battery packs, and the 350 bar gas tank figures of Minnehan &
// Pratt (2017), SAND-2017-12665.
type ReferenceValues struct {
	BatteryPackVolumetricEnergyDensityKWhPerM3  float64 `json:"battery_packs_volumetric_energy_density_kwhpm3"`
	BatteryPackGravimetricEnergyDensityKWhPerKg float64 `json:"battery_packs_gravimetric_energy_density_kwhpkg"`
	BatteryDepthOfDischargePct                  float64 `json:"battery_depth_of_discharge_pct"`

	ElectricalEngineVolumetricPowerDensityKWPerM3  float64 `json:"electrical_engine_volumetric_power_density_kwpm3"`
	ElectricalEngineGravimetricPowerDensityKWPerKg float64 `json:"electrical_engine_gravimetric_power_density_kwpkg"`

	FuelCellVolumetricPowerDensityKWPerM3  float64 `json:"fuel_cell_system_volumetric_power_density_kwpm3"`
	FuelCellGravimetricPowerDensityKWPerKg float64 `json:"fuel_cell_system_gravimetric_power_density_kwpkg"`
	FuelCellEfficiencyPct                  float64 `json:"fuel_cell_efficiency_pct"`

	HydrogenGravimetricEnergyDensityKWhPerKg float64 `json:"hydrogen_gravimetric_energy_density_kwhpkg"`
	HydrogenTankWeightToContentRatioKgPerKg  float64 `json:"hydrogen_gas_tank_container_weight_to_content_weight_ratio_kgpkg"`
	HydrogenTankVolumeToContentRatioLPerKg   float64 `json:"hydrogen_gas_tank_container_volume_to_content_weight_ratio_lpkg"`
}

// DefaultReferenceValues returns the built-in constant bundle.
func DefaultReferenceValues() ReferenceValues {
	return ReferenceValues{
		BatteryPackVolumetricEnergyDensityKWhPerM3:  88,
		BatteryPackGravimetricEnergyDensityKWhPerKg: 0.077,
		BatteryDepthOfDischargePct:                  80,

		ElectricalEngineVolumetricPowerDensityKWPerM3:  1 / 0.0006,
		ElectricalEngineGravimetricPowerDensityKWPerKg: 1 / 1.1183,

		FuelCellVolumetricPowerDensityKWPerM3:  139,
		FuelCellGravimetricPowerDensityKWPerKg: 0.2,
		FuelCellEfficiencyPct:                  45,

		// 119.96 MJ/kg / 3.6 MJ/kWh
		HydrogenGravimetricEnergyDensityKWhPerKg: 33.322,
		HydrogenTankWeightToContentRatioKgPerKg:  17.92,
		HydrogenTankVolumeToContentRatioLPerKg:   93.7,
	}
}

type referenceKey struct {
	name  string
	value float64
}

func (r ReferenceValues) electricalEngineKeys() []referenceKey {
	return []referenceKey{
		{"electrical_engine_volumetric_power_density_kwpm3", r.ElectricalEngineVolumetricPowerDensityKWPerM3},
		{"electrical_engine_gravimetric_power_density_kwpkg", r.ElectricalEngineGravimetricPowerDensityKWPerKg},
	}
}

func (r ReferenceValues) batteryKeys() []referenceKey {
	return append([]referenceKey{
		{"battery_packs_volumetric_energy_density_kwhpm3", r.BatteryPackVolumetricEnergyDensityKWhPerM3},
		{"battery_packs_gravimetric_energy_density_kwhpkg", r.BatteryPackGravimetricEnergyDensityKWhPerKg},
		{"battery_depth_of_discharge_pct", r.BatteryDepthOfDischargePct},
	}, r.electricalEngineKeys()...)
}

func (r ReferenceValues) hydrogenKeys() []referenceKey {
	return append([]referenceKey{
		{"fuel_cell_system_volumetric_power_density_kwpm3", r.FuelCellVolumetricPowerDensityKWPerM3},
		{"fuel_cell_system_gravimetric_power_density_kwpkg", r.FuelCellGravimetricPowerDensityKWPerKg},
		{"fuel_cell_efficiency_pct", r.FuelCellEfficiencyPct},
		{"hydrogen_gravimetric_energy_density_kwhpkg", r.HydrogenGravimetricEnergyDensityKWhPerKg},
		{"hydrogen_gas_tank_container_weight_to_content_weight_ratio_kgpkg", r.HydrogenTankWeightToContentRatioKgPerKg},
		{"hydrogen_gas_tank_container_volume_to_content_weight_ratio_lpkg", r.HydrogenTankVolumeToContentRatioLPerKg},
	}, r.electricalEngineKeys()...)
}

// ValidateFor checks that every constant the strategy needs is present and
// positive, before any sizing arithmetic runs.
func (r ReferenceValues) ValidateFor(strategy Strategy) error {
	var keys []referenceKey
	switch strategy {
	case StrategyBattery:
		keys = r.batteryKeys()
	case StrategyHydrogenGas:
		keys = r.hydrogenKeys()
	default:
		return errs.Configurationf("reference values: unknown strategy %q", string(strategy))
	}
	for _, k := range keys {
		if k.value <= 0 {
			return errs.Configurationf("reference values: missing or non-positive %q for strategy %q", k.name, string(strategy))
		}
	}
	return nil
}
