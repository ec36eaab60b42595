package cmd

import (
	"fmt"

	"github.com/theirongolddev/ecotrack/internal/config"
	"github.com/theirongolddev/ecotrack/internal/model"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Storage]")
	fmt.Printf("    Backend:   %s\n", cfg.Storage.Backend)
	fmt.Printf("    Data file: %s\n", cfg.Storage.DataFile)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	f := config.EffectiveFactors(cfg)
	fmt.Println("  [Emission factors]")
	fmt.Printf("    Car:         %.3f kg/mile%s\n", f.CarPerMile, overrideMark(cfg.Factors.CarPerMile))
	fmt.Printf("    Transit:     %.3f kg/mile%s\n", f.TransitPerMile, overrideMark(cfg.Factors.TransitPerMile))
	fmt.Printf("    Electricity: %.3f kg/kWh%s\n", f.ElecPerKWh, overrideMark(cfg.Factors.ElecPerKWh))
	fmt.Printf("    Omnivore:    %.1f kg/day%s\n", f.DietPerDay[model.DietOmnivore], overrideMark(cfg.Factors.OmnivorePerDay))
	fmt.Printf("    Vegetarian:  %.1f kg/day%s\n", f.DietPerDay[model.DietVegetarian], overrideMark(cfg.Factors.VegetarianPerDay))
	fmt.Printf("    Vegan:       %.1f kg/day%s\n", f.DietPerDay[model.DietVegan], overrideMark(cfg.Factors.VeganPerDay))
	fmt.Println()

	fmt.Println("  Run `ecotrack setup` to reconfigure.")
	return nil
}

func overrideMark(o *float64) string {
	if o != nil {
		return " (override)"
	}
	return ""
}
