package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"hitcount/internal/extract"
)

// errNoValue keeps stdout clean for shell callers: they see the integer or
// nothing, and the exit code tells them to leave the original content alone.
var errNoValue = errors.New("no confident value found")

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract the view count from an HTML fragment (file or stdin)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	configureLogging(cfg.Verbose)

	var raw []byte
	if len(args) == 1 && args[0] != "-" {
		raw, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read fragment: %w", err)
		}
	} else {
		raw, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	ex := &extract.Extractor{Store: store, TTL: cfg.CacheTTL, Log: log.Logger}
	v, ok := ex.Extract(cmd.Context(), string(raw))
	if !ok {
		return errNoValue
	}
	if cfg.Pretty {
		p := message.NewPrinter(language.English)
		_, _ = p.Fprintf(cmd.OutOrStdout(), "%d\n", v)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}
