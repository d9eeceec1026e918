package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hitcount/internal/app"
	"hitcount/internal/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the extraction result cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached extraction result",
	RunE:  runCacheClear,
}

var purgeFlags struct {
	maxAge time.Duration
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove file-backend entries older than --max-age",
	RunE:  runCachePurge,
}

func init() {
	cachePurgeCmd.Flags().DurationVar(&purgeFlags.maxAge, "max-age", 0, "Remove entries older than this (required)")
	_ = cachePurgeCmd.MarkFlagRequired("max-age")

	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cachePurgeCmd)
}

func runCacheClear(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	configureLogging(cfg.Verbose)

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	if store == nil {
		return fmt.Errorf("caching is disabled, nothing to clear")
	}
	if err := cache.ClearAll(cmd.Context(), store); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	log.Info().Str("backend", cfg.CacheBackend).Msg("cache cleared")
	return nil
}

func runCachePurge(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	configureLogging(cfg.Verbose)

	if cfg.CacheBackend != app.BackendFile {
		return fmt.Errorf("purge applies to the file backend only (have %q)", cfg.CacheBackend)
	}
	fs := &cache.FileStore{Dir: cfg.CacheDir}
	n, err := fs.PurgeByAge(purgeFlags.maxAge)
	if err != nil {
		return fmt.Errorf("purge cache: %w", err)
	}
	log.Info().Int("removed", n).Msg("cache purged")
	return nil
}
