package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// -----------------------------------------------------------------------------

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.2345))
	assert.Equal(t, 1.24, Round2(1.236))
	assert.Equal(t, -2.5, Round2(-2.499))
	assert.Equal(t, 0.0, Round2(0))
}

// -----------------------------------------------------------------------------

func TestCalculateMeanStd(t *testing.T) {
	mean, std := CalculateMeanStd([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.Equal(t, 5.0, mean)
	assert.Equal(t, 2.0, std) // population std

	mean, std = CalculateMeanStd([]float64{42})
	assert.Equal(t, 42.0, mean)
	assert.Equal(t, 0.0, std)

	mean, std = CalculateMeanStd([]float64{})
	assert.Equal(t, 0.0, mean)
	assert.Equal(t, 0.0, std)
}

// -----------------------------------------------------------------------------

func TestCalculateChangePercent(t *testing.T) {
	assert.Equal(t, 5.0, CalculateChangePercent(105, 100))
	assert.Equal(t, -50.0, CalculateChangePercent(50, 100))
	assert.Equal(t, 0.0, CalculateChangePercent(100, 0))
}

// -----------------------------------------------------------------------------

func TestSimpleReturns(t *testing.T) {
	returns := SimpleReturns([]float64{100, 110, 99})
	assert.Equal(t, []float64{0.1, -0.1}, returns)

	// Zero previous price contributes a zero return
	returns = SimpleReturns([]float64{0, 10})
	assert.Equal(t, []float64{0}, returns)

	assert.Empty(t, SimpleReturns([]float64{100}))
}
