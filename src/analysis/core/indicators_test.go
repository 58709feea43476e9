package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------

func TestEMAInsufficientData(t *testing.T) {
	assert.Nil(t, EMA([]float64{1, 2, 3}, 5))
	assert.Nil(t, EMA([]float64{}, 20))
	assert.Nil(t, EMA([]float64{1, 2, 3}, 0))
}

// -----------------------------------------------------------------------------

func TestEMAConstantSeries(t *testing.T) {
	prices := make([]float64, 30)
	for i := range prices {
		prices[i] = 100.0
	}

	ema := EMA(prices, 20)
	require.NotNil(t, ema)
	assert.Equal(t, 100.0, *ema)
}

// -----------------------------------------------------------------------------

func TestEMAKnownValue(t *testing.T) {
	// k = 0.5, seed 1: 1 -> 1.5 -> 2.25
	ema := EMA([]float64{1, 2, 3}, 3)
	require.NotNil(t, ema)
	assert.Equal(t, 2.25, *ema)
}

// -----------------------------------------------------------------------------

func TestRSIInsufficientData(t *testing.T) {
	// Needs period+1 observations
	prices := []float64{1, 2, 3, 4, 5}
	assert.Nil(t, RSI(prices, 14))
	assert.Nil(t, RSI(prices, 5))
	assert.NotNil(t, RSI(prices, 4))
}

// -----------------------------------------------------------------------------

func TestRSIAllGainsSaturates(t *testing.T) {
	prices := make([]float64, 15)
	for i := range prices {
		prices[i] = 100.0 + float64(i)
	}

	rsi := RSI(prices, 14)
	require.NotNil(t, rsi)
	assert.Equal(t, 100.0, *rsi)
}

// -----------------------------------------------------------------------------

func TestRSIFlatSeriesSaturates(t *testing.T) {
	// No losses on a flat series, index saturates
	rsi := RSI([]float64{10, 10, 10}, 2)
	require.NotNil(t, rsi)
	assert.Equal(t, 100.0, *rsi)
}

// -----------------------------------------------------------------------------

func TestRSIBalancedMoves(t *testing.T) {
	// One gain of 1, one loss of 1 -> RS = 1 -> RSI = 50
	rsi := RSI([]float64{10, 11, 10}, 2)
	require.NotNil(t, rsi)
	assert.Equal(t, 50.0, *rsi)
}

// -----------------------------------------------------------------------------

func TestRSIStaysInRange(t *testing.T) {
	prices := []float64{100, 102, 99, 104, 101, 103, 98, 105, 102, 106,
		101, 107, 103, 108, 104, 109}

	rsi := RSI(prices, 14)
	require.NotNil(t, rsi)
	assert.GreaterOrEqual(t, *rsi, 0.0)
	assert.LessOrEqual(t, *rsi, 100.0)
}
