package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested sections
// map naturally to flags.
type FileConfig struct {
	Cache struct {
		Dir     string        `yaml:"dir" json:"dir"`
		Backend string        `yaml:"backend" json:"backend"`
		TTL     time.Duration `yaml:"ttl" json:"ttl"`
	} `yaml:"cache" json:"cache"`

	Pretty  bool `yaml:"pretty" json:"pretty"`
	Verbose bool `yaml:"verbose" json:"verbose"`
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

// ApplyFileConfig overlays values from FileConfig into cfg for any fields the
// caller left at their flag defaults. Flags should already have been parsed;
// this lets the file supply defaults while explicit flags win.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.CacheDir == "" || cfg.CacheDir == DefaultCacheDir) && fc.Cache.Dir != "" {
		cfg.CacheDir = fc.Cache.Dir
	}
	if (cfg.CacheBackend == "" || cfg.CacheBackend == DefaultCacheBackend) && fc.Cache.Backend != "" {
		cfg.CacheBackend = fc.Cache.Backend
	}
	if (cfg.CacheTTL == 0 || cfg.CacheTTL == DefaultCacheTTL) && fc.Cache.TTL > 0 {
		cfg.CacheTTL = fc.Cache.TTL
	}
	if !cfg.Pretty && fc.Pretty {
		cfg.Pretty = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
