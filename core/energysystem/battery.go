package energysystem

// BatteryEstimator sizes a battery-electric propulsion system: battery
// packs oversized by the usable depth of discharge, plus electrical
// propulsion motors.
type BatteryEstimator struct{}

// Strategy implements Estimator.
func (BatteryEstimator) Strategy() Strategy { return StrategyBattery }

// Estimate implements Estimator.
func (e BatteryEstimator) Estimate(req Requirements, ref ReferenceValues) (SystemEstimate, error) {
	if err := ref.ValidateFor(StrategyBattery); err != nil {
		return SystemEstimate{}, err
	}

	capacityKWh := req.EnergyKWh / (ref.BatteryDepthOfDischargePct / 100)
	packs := BatteryPacks{
		CapacityKWh: capacityKWh,
		WeightKg:    capacityKWh / ref.BatteryPackGravimetricEnergyDensityKWhPerKg,
		VolumeM3:    capacityKWh / ref.BatteryPackVolumetricEnergyDensityKWhPerM3,
	}
	motors := sizeElectricalEngines(req, ref)

	n := float64(motors.Count)
	return SystemEstimate{
		Strategy:      StrategyBattery,
		TotalWeightKg: packs.WeightKg + motors.WeightPerEngineKg*n,
		TotalVolumeM3: packs.VolumeM3 + motors.VolumePerEngineM3*n,
		Components: Components{
			ElectricalEngines: motors,
			BatteryPacks:      &packs,
		},
	}, nil
}
