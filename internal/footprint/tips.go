package footprint

import "github.com/theirongolddev/ecotrack/internal/model"

// Tip thresholds, evaluated against the most recent entry.
const (
	tipCarMilesAbove     = 20.0
	tipTransitMilesBelow = 5.0
	tipElecKWhAbove      = 30.0
)

// Encouragement is printed when no tip rule fires.
const Encouragement = "Nice work! Keep up the eco-friendly habits."

// Tips evaluates the four advisory rules against one entry, in fixed order.
// Rules are independent; several can fire together. An empty result means
// the caller should print Encouragement instead.
func Tips(e model.Entry) []string {
	var tips []string
	if e.CarMiles > tipCarMilesAbove {
		tips = append(tips, "Try carpooling or grouping errands together.")
	}
	if e.TransitMiles < tipTransitMilesBelow {
		tips = append(tips, "Could you swap a drive for the bus or train?")
	}
	if e.ElecKWh > tipElecKWhAbove {
		tips = append(tips, "Turn off unused lights/appliances.")
	}
	if e.Diet == model.DietOmnivore {
		tips = append(tips, "Maybe try a meatless meal now and then.")
	}
	return tips
}
