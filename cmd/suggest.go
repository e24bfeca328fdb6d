package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ceto-project/ceto/app"
	"github.com/ceto-project/ceto/config"
	"github.com/ceto-project/ceto/infra/logger"
	"github.com/ceto-project/ceto/pkg/export"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Size battery and gaseous hydrogen systems for the configured vessel",
	RunE:  runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()

	suggestion, err := svc.Suggest()
	if err != nil {
		return err
	}

	out, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}
	defer out.Close()
	if cfg.Output.Format == "csv" {
		return export.WriteSuggestionCSV(out, suggestion)
	}
	return export.WriteSuggestionJSON(out, suggestion)
}
