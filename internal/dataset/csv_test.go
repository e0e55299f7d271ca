package dataset

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHeader = "City,State,Lat,Lon,Cost_of_Living_Index,Rent_1BR_City_Center,Rent_1BR_Outside_Center,Avg_Monthly_Net_Salary,Groceries_Monthly_Est,Dining_Monthly_Est\n"

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cities.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t, testHeader+
		"Austin,TX,30.27,-97.74,100,1500,1200,4500,400,300\n"+
		"Dallas,TX,32.78,-96.80,95,1300,1000,4300,380,290\n")

	records, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	austin := records[0]
	assert.Equal(t, "Austin", austin.City)
	assert.Equal(t, "TX", austin.State)
	assert.Equal(t, "Austin, TX", austin.CityState)
	assert.InDelta(t, 30.27, austin.Lat, 1e-9)
	assert.InDelta(t, 100, austin.CostOfLivingIndex, 1e-9)

	// 4500 / (1500 + 400 + 300) = 2.045... rounds to 2.05
	assert.InDelta(t, 2.05, austin.PurchasingPower, 1e-9)

	dallas := records[1]
	assert.Equal(t, "Dallas, TX", dallas.CityState)
	// 4300 / (1300 + 380 + 290) = 2.182... rounds to 2.18
	assert.InDelta(t, 2.18, dallas.PurchasingPower, 1e-9)
}

func TestLoadCSV_PreservesOrderAndDuplicates(t *testing.T) {
	path := writeCSV(t, testHeader+
		"Springfield,IL,39.78,-89.65,80,900,800,3500,300,200\n"+
		"Springfield,MO,37.21,-93.29,75,850,700,3300,280,180\n"+
		"Springfield,IL,39.78,-89.65,80,900,800,3500,300,200\n")

	records, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Duplicate rows stay distinct and in file order.
	assert.Equal(t, "IL", records[0].State)
	assert.Equal(t, "MO", records[1].State)
	assert.Equal(t, "IL", records[2].State)
}

func TestLoadCSV_ZeroDenominator(t *testing.T) {
	path := writeCSV(t, testHeader+
		"Freetown,XX,40.0,-90.0,50,0,0,2000,0,0\n")

	records, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, math.IsNaN(records[0].PurchasingPower),
		"zero expense denominator should yield the NaN sentinel")
}

func TestLoadCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "empty file",
			content: "",
			wantErr: "empty file",
		},
		{
			name:    "missing column",
			content: "City,State,Lat,Lon\nAustin,TX,30.27,-97.74\n",
			wantErr: "missing required column",
		},
		{
			name:    "malformed number",
			content: testHeader + "Austin,TX,30.27,-97.74,abc,1500,1200,4500,400,300\n",
			wantErr: "Cost_of_Living_Index",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, tt.content)

			_, err := LoadCSV(path)
			require.Error(t, err)

			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStates(t *testing.T) {
	records := []Record{
		{State: "TX"}, {State: "CA"}, {State: "TX"}, {State: "NY"},
	}
	assert.Equal(t, []string{"CA", "NY", "TX"}, States(records))
	assert.Nil(t, States(nil))
}

func TestIndexRange(t *testing.T) {
	records := []Record{
		{CostOfLivingIndex: 95},
		{CostOfLivingIndex: 62.5},
		{CostOfLivingIndex: 100},
	}
	min, max := IndexRange(records)
	assert.InDelta(t, 62.5, min, 1e-9)
	assert.InDelta(t, 100, max, 1e-9)

	min, max = IndexRange(nil)
	assert.Zero(t, min)
	assert.Zero(t, max)
}
