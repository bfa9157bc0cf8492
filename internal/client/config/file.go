package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/payscope/internal/timex"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape. Pointer fields distinguish "absent" from
// zero so a file only overrides what it names.
type fileConfig struct {
	APIBaseURL     *string         `json:"api_base_url" yaml:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	DatabasePath   *string         `json:"database_path" yaml:"database_path"`
	Ephemeral      *bool           `json:"ephemeral" yaml:"ephemeral"`
	Log            *struct {
		Backend string `json:"backend" yaml:"backend"`
		Format  string `json:"format" yaml:"format"`
		Level   string `json:"level" yaml:"level"`
	} `json:"log" yaml:"log"`
}

// parseFile overlays cfg with the values present in the file at path.
func parseFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.APIBaseURL != nil {
		cfg.APIBaseURL = *fc.APIBaseURL
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.DatabasePath != nil {
		cfg.DatabasePath = *fc.DatabasePath
	}
	if fc.Ephemeral != nil {
		cfg.Ephemeral = *fc.Ephemeral
	}
	if fc.Log != nil {
		if fc.Log.Backend != "" {
			cfg.Log.Backend = fc.Log.Backend
		}
		if fc.Log.Format != "" {
			cfg.Log.Format = fc.Log.Format
		}
		if fc.Log.Level != "" {
			cfg.Log.Level = fc.Log.Level
		}
	}
	return nil
}
