package cmd

import (
	"fmt"

	"github.com/theirongolddev/ecotrack/internal/config"
	"github.com/theirongolddev/ecotrack/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Start from the existing config or defaults.
	cfg, _ := config.Load()

	themeOptions := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOptions = append(themeOptions, huh.NewOption(t.Name, t.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Entry data file").
				Description("Where journal entries are stored.").
				Value(&cfg.Storage.DataFile),

			huh.NewSelect[string]().
				Title("Storage backend").
				Description("JSON keeps the store human-readable.").
				Options(
					huh.NewOption("JSON file", config.BackendJSON),
					huh.NewOption("SQLite database", config.BackendSQLite),
				).
				Value(&cfg.Storage.Backend),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOptions...).
				Value(&cfg.Appearance.Theme),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `ecotrack setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
