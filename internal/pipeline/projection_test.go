package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityindex-labs/costmap/internal/dataset"
)

func TestMapPoints(t *testing.T) {
	v := Apply(testRecords(), AllOf(testRecords()))

	points := MapPoints(v)

	require.Len(t, points, 4)
	// View order is preserved.
	assert.Equal(t, "Austin, TX", points[0].CityState)
	assert.InDelta(t, 100, points[0].Index, 1e-9)
	assert.InDelta(t, 1500, points[0].Rent, 1e-9)
	assert.InDelta(t, 4500, points[0].Salary, 1e-9)
}

func TestRentComparison_SortsAscendingByCenterRent(t *testing.T) {
	v := Apply(testRecords(), AllOf(testRecords()))

	pairs := RentComparison(v)

	require.Len(t, pairs, 4)
	assert.Equal(t, "Boise, ID", pairs[0].City)
	assert.Equal(t, "Dallas, TX", pairs[1].City)
	assert.Equal(t, "Austin, TX", pairs[2].City)
	assert.Equal(t, "New York, NY", pairs[3].City)
	assert.InDelta(t, 900, pairs[0].OutsideRent, 1e-9)
}

func TestRentComparison_StableOnTies(t *testing.T) {
	v := View{Records: []dataset.Record{
		{CityState: "A", RentCityCenter: 1000},
		{CityState: "B", RentCityCenter: 1000},
		{CityState: "C", RentCityCenter: 900},
	}}

	pairs := RentComparison(v)

	assert.Equal(t, "C", pairs[0].City)
	assert.Equal(t, "A", pairs[1].City)
	assert.Equal(t, "B", pairs[2].City)
}

func TestSalaryScatter(t *testing.T) {
	v := Apply(testRecords(), AllOf(testRecords()))

	points := SalaryScatter(v)

	require.Len(t, points, 4)
	assert.Equal(t, "Austin, TX", points[0].CityState)
	assert.InDelta(t, 2.05, points[0].Power, 1e-9)
}

func TestPowerRanking_AscendingWithNaNFirst(t *testing.T) {
	v := View{Records: []dataset.Record{
		{CityState: "Mid", PurchasingPower: 1.5},
		{CityState: "Undefined", PurchasingPower: math.NaN()},
		{CityState: "Low", PurchasingPower: 0.9},
		{CityState: "High", PurchasingPower: 2.2},
	}}

	entries := PowerRanking(v)

	require.Len(t, entries, 4)
	assert.Equal(t, "Undefined", entries[0].City)
	assert.Equal(t, "Low", entries[1].City)
	assert.Equal(t, "Mid", entries[2].City)
	assert.Equal(t, "High", entries[3].City)
}

func TestPowerRanking_DoesNotMutateView(t *testing.T) {
	records := testRecords()
	v := View{Records: records}

	_ = PowerRanking(v)

	assert.Equal(t, testRecords(), records)
}

func TestTableRows_SortedDescendingWithFormatting(t *testing.T) {
	v := Apply(testRecords(), AllOf(testRecords()))

	rows := TableRows(v)

	require.Len(t, rows, 4)
	// Austin and New York tie at 100; stable sort keeps Austin first.
	assert.Equal(t, "Austin", rows[0].City)
	assert.Equal(t, "New York", rows[1].City)
	assert.Equal(t, "Dallas", rows[2].City)
	assert.Equal(t, "Boise", rows[3].City)

	assert.Equal(t, "100.0", rows[0].Index)
	assert.Equal(t, "62.5", rows[3].Index)
	assert.Equal(t, "$3,800", rows[1].RentCenter)
	assert.Equal(t, "$6,500", rows[1].Salary)
	assert.Equal(t, "2.05", rows[0].Power)
}

func TestTableRows_NaNPowerPlaceholder(t *testing.T) {
	v := View{Records: []dataset.Record{
		{City: "Freetown", State: "XX", PurchasingPower: math.NaN()},
	}}

	rows := TableRows(v)

	require.Len(t, rows, 1)
	assert.Equal(t, Placeholder, rows[0].Power)
}

func TestProjections_EmptyView(t *testing.T) {
	v := View{}

	assert.Empty(t, MapPoints(v))
	assert.Empty(t, RentComparison(v))
	assert.Empty(t, SalaryScatter(v))
	assert.Empty(t, PowerRanking(v))
	assert.Empty(t, TableRows(v))
}
