// Package config loads the estimation run configuration from a JSON or
// YAML file, with optional environment variable overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ceto-project/ceto/core/energysystem"
	"github.com/ceto-project/ceto/core/metrics"
	"github.com/ceto-project/ceto/core/model"
)

// Config describes one estimation run: the vessel, its voyage profile, the
// reference values used to size alternative energy systems, and the
// ambient concerns around the run.
type Config struct {
	Vessel model.VesselData    `json:"vessel"`
	Voyage model.VoyageProfile `json:"voyage"`
	// Reference is optional; when absent the published reference values
	// are used.
	Reference *energysystem.ReferenceValues `json:"reference"`
	Metrics   metrics.Config                `json:"metrics"`
	Logging   LoggingConfig                 `json:"logging"`
	Output    OutputConfig                  `json:"output"`
}

// ReferenceValues returns the configured reference values, falling back to
// the published defaults.
func (c *Config) ReferenceValues() energysystem.ReferenceValues {
	if c.Reference != nil {
		return *c.Reference
	}
	return energysystem.DefaultReferenceValues()
}

// Load reads the configuration at path. The parser is chosen by file
// extension; CETO__-prefixed environment variables override file values.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("CETO_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "ceto_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Logging.SetDefaults()
	cfg.Output.SetDefaults()
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Output.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
