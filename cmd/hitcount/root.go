// hitcount extracts the numeric view count from a rendered stats HTML
// fragment and caches the result by content hash.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hitcount/internal/app"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	configPath   string
	cacheDir     string
	cacheBackend string
	cacheTTL     time.Duration
	noCache      bool
	pretty       bool
	verbose      bool
}

var rootCmd = &cobra.Command{
	Use:   "hitcount",
	Short: "Extract a view count from a rendered stats HTML fragment",
	Long: "hitcount parses the server-rendered HTML of a blog stats block,\n" +
		"recovers the integer view count inside it, and memoizes the result\n" +
		"keyed by a hash of the fragment.",
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.configPath, "config", "", "Path to YAML/JSON config file")
	pf.StringVar(&rootFlags.cacheDir, "cache.dir", app.DefaultCacheDir, "Cache directory path")
	pf.StringVar(&rootFlags.cacheBackend, "cache.backend", app.DefaultCacheBackend, "Cache backend: memory, file, or sqlite")
	pf.DurationVar(&rootFlags.cacheTTL, "cache.ttl", app.DefaultCacheTTL, "How long extracted values stay cached")
	pf.BoolVar(&rootFlags.noCache, "no-cache", false, "Disable caching entirely")
	pf.BoolVar(&rootFlags.pretty, "pretty", false, "Print the value with digit grouping")
	pf.BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Verbose logging")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.Version = version
}

// loggingConfigured guards one-time logger setup; loadConfig may run once per
// subcommand plus once for flag validation.
var loggingConfigured bool

func configureLogging(verbose bool) {
	if loggingConfigured {
		return
	}
	loggingConfigured = true
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// loadConfig folds flags and the optional config file into one Config.
// Explicit flags win over file values.
func loadConfig() (app.Config, error) {
	cfg := app.Config{
		CacheDir:     rootFlags.cacheDir,
		CacheBackend: rootFlags.cacheBackend,
		CacheTTL:     rootFlags.cacheTTL,
		NoCache:      rootFlags.noCache,
		Pretty:       rootFlags.pretty,
		Verbose:      rootFlags.verbose,
	}
	if rootFlags.configPath != "" {
		fc, err := app.LoadConfigFile(rootFlags.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	if err := app.ValidateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
