package config

import "github.com/theirongolddev/ecotrack/internal/model"

// Factors holds the linear emission factors used to convert recorded
// activity into kg of CO2. Changing a factor only affects entries recorded
// afterwards; stored breakdowns are snapshots and are never recomputed.
type Factors struct {
	CarPerMile     float64 // kg CO2 per mile driven
	TransitPerMile float64 // kg CO2 per mile on public transit
	ElecPerKWh     float64 // kg CO2 per kWh
	DietPerDay     map[model.Diet]float64
}

// FactorOverrides allows user-defined emission factors in the config file.
type FactorOverrides struct {
	CarPerMile       *float64 `toml:"car_per_mile,omitempty"`
	TransitPerMile   *float64 `toml:"transit_per_mile,omitempty"`
	ElecPerKWh       *float64 `toml:"elec_per_kwh,omitempty"`
	OmnivorePerDay   *float64 `toml:"omnivore_per_day,omitempty"`
	VegetarianPerDay *float64 `toml:"vegetarian_per_day,omitempty"`
	VeganPerDay      *float64 `toml:"vegan_per_day,omitempty"`
}

// DefaultFactors returns the built-in emission factor table.
func DefaultFactors() Factors {
	return Factors{
		CarPerMile:     0.411,
		TransitPerMile: 0.089,
		ElecPerKWh:     0.42,
		DietPerDay: map[model.Diet]float64{
			model.DietOmnivore:   5.0,
			model.DietVegetarian: 3.5,
			model.DietVegan:      2.5,
		},
	}
}

// EffectiveFactors returns the default table with any config overrides applied.
func EffectiveFactors(cfg Config) Factors {
	f := DefaultFactors()
	o := cfg.Factors

	if o.CarPerMile != nil {
		f.CarPerMile = *o.CarPerMile
	}
	if o.TransitPerMile != nil {
		f.TransitPerMile = *o.TransitPerMile
	}
	if o.ElecPerKWh != nil {
		f.ElecPerKWh = *o.ElecPerKWh
	}
	if o.OmnivorePerDay != nil {
		f.DietPerDay[model.DietOmnivore] = *o.OmnivorePerDay
	}
	if o.VegetarianPerDay != nil {
		f.DietPerDay[model.DietVegetarian] = *o.VegetarianPerDay
	}
	if o.VeganPerDay != nil {
		f.DietPerDay[model.DietVegan] = *o.VeganPerDay
	}

	return f
}
