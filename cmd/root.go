// Package cmd implements the ecotrack CLI commands.
package cmd

import (
	"io"
	"os"

	"github.com/theirongolddev/ecotrack/internal/config"
	"github.com/theirongolddev/ecotrack/internal/journal"
	"github.com/theirongolddev/ecotrack/internal/store"

	"github.com/spf13/cobra"
)

var flagDataFile string

var rootCmd = &cobra.Command{
	Use:   "ecotrack",
	Short: "Personal carbon-footprint journal",
	Long:  "Record daily driving, transit, electricity, and diet; track the estimated CO₂.",
	RunE:  runMenu,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataFile, "data-file", "f", "", "Entry store path (overrides config)")
}

// loadConfig returns the effective configuration with flag overrides applied.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagDataFile != "" {
		cfg.Storage.DataFile = flagDataFile
	}
	return cfg, nil
}

// newJournal wires a Journal over stdin/stdout with the configured store.
// The returned closer releases the store (a no-op for the JSON backend).
func newJournal() (*journal.Journal, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	st, err := store.Open(cfg)
	if err != nil {
		return nil, nil, err
	}

	closer := func() {}
	if c, ok := st.(io.Closer); ok {
		closer = func() { _ = c.Close() }
	}

	return journal.New(os.Stdin, os.Stdout, st, config.EffectiveFactors(cfg)), closer, nil
}

func runMenu(_ *cobra.Command, _ []string) error {
	j, closer, err := newJournal()
	if err != nil {
		return err
	}
	defer closer()

	j.Run()
	return nil
}
