package pipeline

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is rendered wherever a value is undefined: empty-view
// aggregates and NaN purchasing-power scores.
const Placeholder = "—"

var usd = message.NewPrinter(language.English)

// Dollars formats a monthly amount as grouped whole dollars, "$1,500".
func Dollars(v float64) string {
	if math.IsNaN(v) {
		return Placeholder
	}
	return usd.Sprintf("$%.0f", v)
}

// Index formats a cost-of-living index to one decimal.
func Index(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// Power formats a purchasing-power score to two decimals, with the
// placeholder for the NaN sentinel.
func Power(v float64) string {
	if math.IsNaN(v) {
		return Placeholder
	}
	return fmt.Sprintf("%.2f", v)
}

// Count formats a row count with thousands grouping.
func Count(n int) string {
	return usd.Sprintf("%d", n)
}

// BestCity passes a best-city name through, substituting the placeholder
// when no row qualified.
func BestCity(name string) string {
	if name == "" {
		return Placeholder
	}
	return name
}
