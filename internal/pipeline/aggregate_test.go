package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cityindex-labs/costmap/internal/dataset"
)

func TestAggregate(t *testing.T) {
	v := Apply(testRecords(), Selection{States: []string{"TX"}, Min: 90, Max: 100})

	stats := Aggregate(v)

	assert.Equal(t, 2, stats.Count)
	assert.InDelta(t, 1400, stats.AvgRent, 1e-9)   // (1500+1300)/2
	assert.InDelta(t, 4400, stats.AvgSalary, 1e-9) // (4500+4300)/2
	assert.Equal(t, "Dallas", stats.BestCity)      // 2.18 > 2.05
}

func TestAggregate_EmptyView(t *testing.T) {
	stats := Aggregate(View{})

	assert.Zero(t, stats.Count)
	assert.True(t, math.IsNaN(stats.AvgRent))
	assert.True(t, math.IsNaN(stats.AvgSalary))
	assert.Empty(t, stats.BestCity)
}

func TestAggregate_BestCityTieKeepsFirst(t *testing.T) {
	v := View{Records: []dataset.Record{
		{City: "First", PurchasingPower: 2.00},
		{City: "Second", PurchasingPower: 2.00},
	}}

	assert.Equal(t, "First", Aggregate(v).BestCity)
}

func TestAggregate_SkipsNaNPower(t *testing.T) {
	v := View{Records: []dataset.Record{
		{City: "Undefined", PurchasingPower: math.NaN()},
		{City: "Real", PurchasingPower: 0.5},
	}}

	assert.Equal(t, "Real", Aggregate(v).BestCity)
}

func TestAggregate_AllNaNPower(t *testing.T) {
	v := View{Records: []dataset.Record{
		{City: "A", PurchasingPower: math.NaN()},
		{City: "B", PurchasingPower: math.NaN()},
	}}

	stats := Aggregate(v)
	assert.Equal(t, 2, stats.Count)
	assert.Empty(t, stats.BestCity)
}
