package main

import (
	"fmt"
	"path/filepath"

	"hitcount/internal/app"
	"hitcount/internal/cache"
)

// openStore builds the configured cache backend. The returned closer is safe
// to call unconditionally. A nil Store means caching is disabled.
func openStore(cfg app.Config) (cache.Store, func(), error) {
	noop := func() {}
	if cfg.NoCache {
		return nil, noop, nil
	}
	switch cfg.CacheBackend {
	case app.BackendMemory:
		return cache.NewMemStore(), noop, nil
	case app.BackendFile:
		return &cache.FileStore{Dir: cfg.CacheDir}, noop, nil
	case app.BackendSQLite:
		st, err := cache.OpenSQLStore(filepath.Join(cfg.CacheDir, "hitcount.db"))
		if err != nil {
			return nil, noop, fmt.Errorf("open cache store: %w", err)
		}
		return st, func() { _ = st.Close() }, nil
	default:
		return nil, noop, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}
}
