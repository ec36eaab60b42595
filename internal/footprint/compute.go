// Package footprint computes CO2 emission breakdowns and advisory tips.
package footprint

import (
	"fmt"

	"github.com/theirongolddev/ecotrack/internal/config"
	"github.com/theirongolddev/ecotrack/internal/model"
)

// ElecTierKWh maps the 3-way electricity tier choice to its representative
// daily usage in kWh.
var ElecTierKWh = map[string]float64{
	"1": 10.0, // light
	"2": 25.0, // moderate
	"3": 40.0, // heavy
}

// Inputs are the raw activity quantities for one day.
type Inputs struct {
	CarMiles     float64
	TransitMiles float64
	ElecKWh      float64
	Diet         model.Diet
}

// Compute converts raw inputs into an emission breakdown using the given
// factor table. Pure and deterministic. It fails only when the diet code is
// not one of the recognized categories, which upstream validation prevents
// in normal operation.
func Compute(in Inputs, f config.Factors) (model.Breakdown, error) {
	dietKg, ok := f.DietPerDay[in.Diet]
	if !ok {
		return model.Breakdown{}, fmt.Errorf("unknown diet code %q", string(in.Diet))
	}

	b := model.Breakdown{
		Car:     in.CarMiles * f.CarPerMile,
		Transit: in.TransitMiles * f.TransitPerMile,
		Elec:    in.ElecKWh * f.ElecPerKWh,
		Diet:    dietKg,
	}
	b.Total = b.Car + b.Transit + b.Elec + b.Diet
	return b, nil
}

// Summary aggregates the stored breakdowns of an entry sequence.
type Summary struct {
	Count      int
	GrandTotal float64
	Average    float64
}

// Summarize totals the stored emission snapshots. It reads the persisted
// breakdowns as-is rather than recomputing them, so entries recorded under
// older factor tables keep their original values.
func Summarize(entries []model.Entry) Summary {
	s := Summary{Count: len(entries)}
	for _, e := range entries {
		s.GrandTotal += e.Emissions.Total
	}
	if s.Count > 0 {
		s.Average = s.GrandTotal / float64(s.Count)
	}
	return s
}
