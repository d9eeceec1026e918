// Package app holds runtime configuration for the hitcount CLI.
package app

import (
	"errors"
	"time"
)

// Cache backend names accepted by the CLI and config file.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Defaults mirrored by flag registration.
const (
	DefaultCacheDir     = ".hitcount-cache"
	DefaultCacheBackend = BackendFile
	DefaultCacheTTL     = time.Hour
)

// Config holds runtime configuration for one invocation.
type Config struct {
	// Cache
	CacheDir     string
	CacheBackend string
	CacheTTL     time.Duration
	NoCache      bool

	// Output
	Pretty  bool
	Verbose bool
}

// ValidateConfig performs minimal schema validation.
func ValidateConfig(cfg Config) error {
	switch cfg.CacheBackend {
	case BackendMemory, BackendFile, BackendSQLite:
	default:
		return errors.New("config: cache backend must be memory, file, or sqlite")
	}
	if cfg.CacheTTL < 0 {
		return errors.New("config: negative cache TTL is not allowed")
	}
	if !cfg.NoCache && cfg.CacheBackend != BackendMemory && cfg.CacheDir == "" {
		return errors.New("config: cache dir is required for file and sqlite backends")
	}
	return nil
}
