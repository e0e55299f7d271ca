package pipeline

import (
	"math"
	"sort"

	"github.com/cityindex-labs/costmap/internal/dataset"
)

// MapPoint is one city on the map: position, index for size and color, and
// the hover fields.
type MapPoint struct {
	Lat       float64
	Lon       float64
	Index     float64
	CityState string
	Rent      float64
	Salary    float64
}

// MapPoints projects the view onto the map, keeping view order.
func MapPoints(v View) []MapPoint {
	points := make([]MapPoint, 0, len(v.Records))
	for _, r := range v.Records {
		points = append(points, MapPoint{
			Lat:       r.Lat,
			Lon:       r.Lon,
			Index:     r.CostOfLivingIndex,
			CityState: r.CityState,
			Rent:      r.RentCityCenter,
			Salary:    r.NetSalary,
		})
	}
	return points
}

// RentPair holds the paired bars of the rent comparison chart.
type RentPair struct {
	City        string
	CenterRent  float64
	OutsideRent float64
}

// RentComparison projects the view onto paired rent bars, sorted ascending
// by city-center rent. The sort is stable so equal rents keep load order.
func RentComparison(v View) []RentPair {
	records := sortedCopy(v.Records, func(a, b dataset.Record) bool {
		return a.RentCityCenter < b.RentCityCenter
	})
	pairs := make([]RentPair, 0, len(records))
	for _, r := range records {
		pairs = append(pairs, RentPair{
			City:        r.CityState,
			CenterRent:  r.RentCityCenter,
			OutsideRent: r.RentOutsideCenter,
		})
	}
	return pairs
}

// ScatterPoint is one city in the salary-vs-cost scatter; Power drives both
// marker size and color and may be NaN.
type ScatterPoint struct {
	Index     float64
	Salary    float64
	Power     float64
	CityState string
}

// SalaryScatter projects the view onto the scatter, keeping view order.
func SalaryScatter(v View) []ScatterPoint {
	points := make([]ScatterPoint, 0, len(v.Records))
	for _, r := range v.Records {
		points = append(points, ScatterPoint{
			Index:     r.CostOfLivingIndex,
			Salary:    r.NetSalary,
			Power:     r.PurchasingPower,
			CityState: r.CityState,
		})
	}
	return points
}

// RankEntry is one horizontal bar of the purchasing-power ranking.
type RankEntry struct {
	City  string
	Power float64
}

// PowerRanking projects the view onto the ranking, sorted ascending by
// purchasing power. NaN sentinels order before every real value, which puts
// undefined scores at the bottom of the desirability scale deterministically.
func PowerRanking(v View) []RankEntry {
	records := sortedCopy(v.Records, func(a, b dataset.Record) bool {
		return powerLess(a.PurchasingPower, b.PurchasingPower)
	})
	entries := make([]RankEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, RankEntry{City: r.CityState, Power: r.PurchasingPower})
	}
	return entries
}

// powerLess orders purchasing-power values with NaN below all real values.
func powerLess(a, b float64) bool {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return false
	case aNaN:
		return true
	case bNaN:
		return false
	default:
		return a < b
	}
}

// TableRow is one formatted row of the data table. All fields are display
// strings; see format.go for the formatting rules.
type TableRow struct {
	City        string
	State       string
	Index       string
	RentCenter  string
	RentOutside string
	Salary      string
	Groceries   string
	Dining      string
	Power       string
}

// TableRows projects the view onto the formatted table, sorted descending
// by cost-of-living index.
func TableRows(v View) []TableRow {
	records := sortedCopy(v.Records, func(a, b dataset.Record) bool {
		return a.CostOfLivingIndex > b.CostOfLivingIndex
	})
	rows := make([]TableRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, TableRow{
			City:        r.City,
			State:       r.State,
			Index:       Index(r.CostOfLivingIndex),
			RentCenter:  Dollars(r.RentCityCenter),
			RentOutside: Dollars(r.RentOutsideCenter),
			Salary:      Dollars(r.NetSalary),
			Groceries:   Dollars(r.Groceries),
			Dining:      Dollars(r.Dining),
			Power:       Power(r.PurchasingPower),
		})
	}
	return rows
}

// sortedCopy stable-sorts a copy of records, leaving the view untouched.
func sortedCopy(records []dataset.Record, less func(a, b dataset.Record) bool) []dataset.Record {
	out := make([]dataset.Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
