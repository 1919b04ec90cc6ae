package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the optional configuration file schema.
type FileConfig struct {
	Format  string `yaml:"format" json:"format"`
	Verbose bool   `yaml:"verbose" json:"verbose"`

	Start struct {
		MinLen  int    `yaml:"minLen" json:"minLen"`
		MaxLen  int    `yaml:"maxLen" json:"maxLen"`
		Pattern string `yaml:"pattern" json:"pattern"`
	} `yaml:"start" json:"start"`

	End struct {
		Markers       []string `yaml:"markers" json:"markers"`
		MinContentLen int      `yaml:"minContentLen" json:"minContentLen"`
	} `yaml:"end" json:"end"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset in cfg, so explicit flags keep precedence.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.Format == "" || cfg.Format == FormatLines) && fc.Format != "" {
		cfg.Format = fc.Format
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
	if cfg.MinTitleLen == 0 && fc.Start.MinLen > 0 {
		cfg.MinTitleLen = fc.Start.MinLen
	}
	if cfg.MaxTitleLen == 0 && fc.Start.MaxLen > 0 {
		cfg.MaxTitleLen = fc.Start.MaxLen
	}
	if cfg.ProsePattern == "" && fc.Start.Pattern != "" {
		cfg.ProsePattern = fc.Start.Pattern
	}
	if len(cfg.MetadataMarkers) == 0 && len(fc.End.Markers) > 0 {
		cfg.MetadataMarkers = append([]string{}, fc.End.Markers...)
	}
	if cfg.MinContentLen == 0 && fc.End.MinContentLen > 0 {
		cfg.MinContentLen = fc.End.MinContentLen
	}
}
