package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ceto-project/ceto/app"
	"github.com/ceto-project/ceto/config"
	"github.com/ceto-project/ceto/pkg/export"
)

var fuelCmd = &cobra.Command{
	Use:   "fuel",
	Short: "Estimate the voyage fuel consumption of the configured vessel",
	RunE:  runFuel,
}

func init() {
	rootCmd.AddCommand(fuelCmd)
}

func runFuel(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	breakdown, err := svc.EstimateFuel()
	if err != nil {
		return err
	}

	out, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}
	defer out.Close()
	if cfg.Output.Format == "csv" {
		return export.WriteFuelCSV(out, breakdown)
	}
	return export.WriteFuelJSON(out, breakdown)
}
