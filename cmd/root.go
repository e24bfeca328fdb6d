// Package cmd implements the ceto command line interface.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ceto-project/ceto/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "ceto",
	Short: "Ship fuel, energy and alternative propulsion estimation",
	RunE:  runSuggest,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// openOutput returns the destination writer for results. The caller owns
// the returned closer; stdout gets a no-op closer.
func openOutput(cfg config.OutputConfig) (io.WriteCloser, error) {
	if cfg.Path == "" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open output: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
