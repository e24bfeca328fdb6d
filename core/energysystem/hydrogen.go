package energysystem

import "github.com/ceto-project/ceto/internal/units"

// HydrogenGasEstimator sizes a gaseous-hydrogen fuel cell system:
// compressed hydrogen covering the demand through the fuel cell
// efficiency, pressurised tanks scaled by tank-to-content ratios, a fuel
// cell conversion system, and electrical propulsion motors.
type HydrogenGasEstimator struct{}

// Strategy implements Estimator.
func (HydrogenGasEstimator) Strategy() Strategy { return StrategyHydrogenGas }

// Estimate implements Estimator.
func (e HydrogenGasEstimator) Estimate(req Requirements, ref ReferenceValues) (SystemEstimate, error) {
	if err := ref.ValidateFor(StrategyHydrogenGas); err != nil {
		return SystemEstimate{}, err
	}

	hydrogenKg := (req.EnergyKWh / (ref.FuelCellEfficiencyPct / 100)) / ref.HydrogenGravimetricEnergyDensityKWhPerKg
	tanks := GasTanks{
		HydrogenKg: hydrogenKg,
		WeightKg:   hydrogenKg * ref.HydrogenTankWeightToContentRatioKgPerKg,
		VolumeM3:   units.LitersToM3(hydrogenKg * ref.HydrogenTankVolumeToContentRatioLPerKg),
	}
	cell := FuelCellSystem{
		PowerKW:  req.PowerKW,
		WeightKg: req.PowerKW / ref.FuelCellGravimetricPowerDensityKWPerKg,
		VolumeM3: req.PowerKW / ref.FuelCellVolumetricPowerDensityKWPerM3,
	}
	motors := sizeElectricalEngines(req, ref)

	n := float64(motors.Count)
	return SystemEstimate{
		Strategy:      StrategyHydrogenGas,
		TotalWeightKg: hydrogenKg + tanks.WeightKg + cell.WeightKg + motors.WeightPerEngineKg*n,
		TotalVolumeM3: tanks.VolumeM3 + cell.VolumeM3 + motors.VolumePerEngineM3*n,
		Components: Components{
			ElectricalEngines: motors,
			FuelCellSystem:    &cell,
			GasTanks:          &tanks,
		},
	}, nil
}
