// Package model defines the journal's core data types.
package model

// DateFormat is the calendar date layout used for entry dates.
const DateFormat = "2006-01-02"

// Diet is the categorical diet code as stored on disk ("1"/"2"/"3").
type Diet string

// Diet codes. The numeric codes are the on-disk representation and match
// the menu choices presented during entry collection.
const (
	DietOmnivore   Diet = "1"
	DietVegetarian Diet = "2"
	DietVegan      Diet = "3"
)

// Valid reports whether d is one of the three recognized diet codes.
func (d Diet) Valid() bool {
	switch d {
	case DietOmnivore, DietVegetarian, DietVegan:
		return true
	}
	return false
}

// Label returns the human-readable diet name, or "Unknown" for bad codes.
func (d Diet) Label() string {
	switch d {
	case DietOmnivore:
		return "Omnivore"
	case DietVegetarian:
		return "Vegetarian"
	case DietVegan:
		return "Vegan"
	}
	return "Unknown"
}

// Breakdown holds the CO2 emission components for one entry, in kg.
type Breakdown struct {
	Car     float64 `json:"car"`
	Transit float64 `json:"transit"`
	Elec    float64 `json:"elec"`
	Diet    float64 `json:"diet"`
	Total   float64 `json:"total"`
}

// Entry is one day's recorded activity plus its computed emissions.
// The breakdown is a snapshot taken at entry time; reports display the
// stored values and never recompute them against current factors.
type Entry struct {
	Date         string    `json:"date"`
	CarMiles     float64   `json:"car_miles"`
	TransitMiles float64   `json:"transit_miles"`
	ElecKWh      float64   `json:"elec_kwh"`
	Diet         Diet      `json:"diet"`
	Emissions    Breakdown `json:"emissions"`
}
