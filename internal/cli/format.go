// Package cli provides formatting and rendering utilities for terminal output.
package cli

import "fmt"

// FormatKg formats a kg-CO2 value with two decimals.
// e.g., 19.788 -> "19.79 kg"
func FormatKg(kg float64) string {
	return fmt.Sprintf("%.2f kg", kg)
}

// FormatMiles formats a mileage value, trimming a trailing ".0".
func FormatMiles(miles float64) string {
	if miles == float64(int64(miles)) {
		return fmt.Sprintf("%d mi", int64(miles))
	}
	return fmt.Sprintf("%.1f mi", miles)
}

// FormatKWh formats an electricity quantity.
func FormatKWh(kwh float64) string {
	if kwh == float64(int64(kwh)) {
		return fmt.Sprintf("%d kWh", int64(kwh))
	}
	return fmt.Sprintf("%.1f kWh", kwh)
}
