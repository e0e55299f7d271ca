// Package dataset loads and caches the cost-of-living dataset.
//
// The dataset is a fixed-schema table of US cities: one row per city with
// geographic coordinates, a cost-of-living index (NYC = 100), and monthly
// USD estimates for rent, groceries, dining, and net salary. Two columns
// are derived at load time and the loaded sequence is immutable afterwards.
package dataset

import (
	"math"
	"sort"
)

// Raw column names, in schema order. Sources must carry exactly these.
var Columns = []string{
	"City",
	"State",
	"Lat",
	"Lon",
	"Cost_of_Living_Index",
	"Rent_1BR_City_Center",
	"Rent_1BR_Outside_Center",
	"Avg_Monthly_Net_Salary",
	"Groceries_Monthly_Est",
	"Dining_Monthly_Est",
}

// Record is one city row, augmented with the derived fields.
type Record struct {
	City              string
	State             string
	Lat               float64
	Lon               float64
	CostOfLivingIndex float64
	RentCityCenter    float64
	RentOutsideCenter float64
	NetSalary         float64
	Groceries         float64
	Dining            float64

	// Derived at load time.
	PurchasingPower float64 // NaN when the expense denominator is not positive
	CityState       string  // "City, State"
}

// derive fills the computed columns. Purchasing power is net salary over
// monthly expenses (center rent + groceries + dining), rounded to two
// decimals. A non-positive denominator yields NaN rather than a panic or a
// misleading negative score; display layers render it as a placeholder.
func (r *Record) derive() {
	expenses := r.RentCityCenter + r.Groceries + r.Dining
	if expenses <= 0 {
		r.PurchasingPower = math.NaN()
	} else {
		r.PurchasingPower = math.Round(r.NetSalary/expenses*100) / 100
	}
	r.CityState = r.City + ", " + r.State
}

// States returns the sorted distinct states present in records.
func States(records []Record) []string {
	seen := make(map[string]struct{}, len(records))
	var states []string
	for _, r := range records {
		if _, ok := seen[r.State]; ok {
			continue
		}
		seen[r.State] = struct{}{}
		states = append(states, r.State)
	}
	sort.Strings(states)
	return states
}

// IndexRange returns the observed min and max of the cost-of-living index.
// Both are zero when records is empty.
func IndexRange(records []Record) (min, max float64) {
	if len(records) == 0 {
		return 0, 0
	}
	min, max = records[0].CostOfLivingIndex, records[0].CostOfLivingIndex
	for _, r := range records[1:] {
		if r.CostOfLivingIndex < min {
			min = r.CostOfLivingIndex
		}
		if r.CostOfLivingIndex > max {
			max = r.CostOfLivingIndex
		}
	}
	return min, max
}
