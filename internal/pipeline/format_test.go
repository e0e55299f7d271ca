package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDollars(t *testing.T) {
	assert.Equal(t, "$1,500", Dollars(1500))
	assert.Equal(t, "$900", Dollars(900))
	assert.Equal(t, "$12,346", Dollars(12345.6))
	assert.Equal(t, Placeholder, Dollars(math.NaN()))
}

func TestIndex(t *testing.T) {
	assert.Equal(t, "100.0", Index(100))
	assert.Equal(t, "62.5", Index(62.5))
}

func TestPower(t *testing.T) {
	assert.Equal(t, "2.05", Power(2.05))
	assert.Equal(t, "0.90", Power(0.9))
	assert.Equal(t, Placeholder, Power(math.NaN()))
}

func TestCount(t *testing.T) {
	assert.Equal(t, "142", Count(142))
	assert.Equal(t, "1,042", Count(1042))
	assert.Equal(t, "0", Count(0))
}

func TestBestCity(t *testing.T) {
	assert.Equal(t, "Austin", BestCity("Austin"))
	assert.Equal(t, Placeholder, BestCity(""))
}
