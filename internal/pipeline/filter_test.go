package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityindex-labs/costmap/internal/dataset"
)

func testRecords() []dataset.Record {
	// Matches the worked example: Austin 4500/(1500+400+300) = 2.05,
	// Dallas 4300/(1300+380+290) = 2.18.
	records := []dataset.Record{
		{City: "Austin", State: "TX", CostOfLivingIndex: 100, RentCityCenter: 1500, RentOutsideCenter: 1200, NetSalary: 4500, Groceries: 400, Dining: 300},
		{City: "Dallas", State: "TX", CostOfLivingIndex: 95, RentCityCenter: 1300, RentOutsideCenter: 1000, NetSalary: 4300, Groceries: 380, Dining: 290},
		{City: "Boise", State: "ID", CostOfLivingIndex: 62.5, RentCityCenter: 1100, RentOutsideCenter: 900, NetSalary: 3800, Groceries: 320, Dining: 220},
		{City: "New York", State: "NY", CostOfLivingIndex: 100, RentCityCenter: 3800, RentOutsideCenter: 2600, NetSalary: 6500, Groceries: 600, Dining: 550},
	}
	for i := range records {
		records[i].PurchasingPower = derivedPower(records[i])
		records[i].CityState = records[i].City + ", " + records[i].State
	}
	return records
}

// derivedPower mirrors the loader's derivation for fixtures built in-memory.
func derivedPower(r dataset.Record) float64 {
	return math.Round(r.NetSalary/(r.RentCityCenter+r.Groceries+r.Dining)*100) / 100
}

func cities(v View) []string {
	names := make([]string, 0, len(v.Records))
	for _, r := range v.Records {
		names = append(names, r.City)
	}
	return names
}

func TestApply(t *testing.T) {
	records := testRecords()

	tests := []struct {
		name string
		sel  Selection
		want []string
	}{
		{
			name: "worked example: TX within 90..100",
			sel:  Selection{States: []string{"TX"}, Min: 90, Max: 100},
			want: []string{"Austin", "Dallas"},
		},
		{
			name: "range bounds are inclusive",
			sel:  Selection{States: []string{"TX", "ID", "NY"}, Min: 62.5, Max: 95},
			want: []string{"Dallas", "Boise"},
		},
		{
			name: "conjunction of both predicates",
			sel:  Selection{States: []string{"ID"}, Min: 90, Max: 100},
			want: nil,
		},
		{
			name: "no states selected",
			sel:  Selection{States: nil, Min: 0, Max: 200},
			want: nil,
		},
		{
			name: "inverted range is empty, not an error",
			sel:  Selection{States: []string{"TX"}, Min: 100, Max: 90},
			want: nil,
		},
		{
			name: "unknown state matches nothing",
			sel:  Selection{States: []string{"ZZ"}, Min: 0, Max: 200},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(records, tt.sel)
			if tt.want == nil {
				assert.True(t, got.Empty())
				return
			}
			assert.Equal(t, tt.want, cities(got))
		})
	}
}

func TestApply_IsPureAndIdempotent(t *testing.T) {
	records := testRecords()
	sel := Selection{States: []string{"TX", "NY"}, Min: 90, Max: 100}

	first := Apply(records, sel)
	second := Apply(records, sel)

	assert.Equal(t, first, second)
	// Source untouched.
	assert.Equal(t, testRecords(), records)
}

func TestApply_FullSelectionIsIdentity(t *testing.T) {
	records := testRecords()

	got := Apply(records, AllOf(records))

	require.Len(t, got.Records, len(records))
	assert.Equal(t, records, got.Records)
}

func TestAllOf(t *testing.T) {
	sel := AllOf(testRecords())

	assert.Equal(t, []string{"ID", "NY", "TX"}, sel.States)
	assert.InDelta(t, 62.5, sel.Min, 1e-9)
	assert.InDelta(t, 100, sel.Max, 1e-9)
}
