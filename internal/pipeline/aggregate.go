package pipeline

import "math"

// Stats are the KPI aggregates shown above the charts. AvgRent and
// AvgSalary are NaN for an empty view; BestCity is empty when the view is
// empty or every row has the NaN purchasing-power sentinel. The display
// layer renders those as placeholders.
type Stats struct {
	Count     int
	AvgRent   float64
	AvgSalary float64
	BestCity  string
}

// Aggregate computes the KPI stats for a view with a single pass.
func Aggregate(v View) Stats {
	stats := Stats{Count: len(v.Records)}
	if v.Empty() {
		stats.AvgRent = math.NaN()
		stats.AvgSalary = math.NaN()
		return stats
	}

	var rentSum, salarySum float64
	bestPower := math.Inf(-1)
	for _, r := range v.Records {
		rentSum += r.RentCityCenter
		salarySum += r.NetSalary

		// NaN rows never win; ties keep the first occurrence.
		if !math.IsNaN(r.PurchasingPower) && r.PurchasingPower > bestPower {
			bestPower = r.PurchasingPower
			stats.BestCity = r.City
		}
	}

	n := float64(len(v.Records))
	stats.AvgRent = rentSum / n
	stats.AvgSalary = salarySum / n
	return stats
}
