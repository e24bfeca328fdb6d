package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ceto-project/ceto/app"
	"github.com/ceto-project/ceto/config"
	"github.com/ceto-project/ceto/pkg/export"
)

var energyCmd = &cobra.Command{
	Use:   "energy",
	Short: "Estimate the voyage energy demand of the configured vessel",
	RunE:  runEnergy,
}

func init() {
	rootCmd.AddCommand(energyCmd)
}

func runEnergy(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	energy, err := svc.EstimateEnergy()
	if err != nil {
		return err
	}

	out, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}
	defer out.Close()
	if cfg.Output.Format == "csv" {
		return export.WriteEnergyCSV(out, energy)
	}
	return export.WriteEnergyJSON(out, energy)
}
