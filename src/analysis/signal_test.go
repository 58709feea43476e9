package analysis

import (
	"testing"

	"stock-dashboard/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Combined Signal
// -----------------------------------------------------------------------------

func TestCombinedSignalBuyCase(t *testing.T) {
	prices := []float64{100, 102, 104, 103, 105}
	volumes := []float64{1e6, 1e6, 1e6, 1e6, 1e6}

	result := CombinedSignal(prices, volumes, 105)

	// setup 0.8*0.20 + flow 0.75*0.25 + vwap 1.0*0.20 + micro 0*0.15 + vol 1.0*0.20
	assert.Equal(t, SignalBuy, result.Signal)
	assert.Equal(t, 0.75, result.CombinedScore)
	assert.Equal(t, 0.75, result.Confidence)

	assert.Equal(t, 0.75, result.Components.OrderFlow.BuyPressure)
	require.NotNil(t, result.Components.VWAPPrice)
	assert.Equal(t, 102.8, *result.Components.VWAPPrice)
	assert.Equal(t, 2.14, result.Components.VWAPDistance)
	assert.Equal(t, 80, result.Components.MarketOpenSetup.SetupStrength)
}

// -----------------------------------------------------------------------------

func TestCombinedSignalStrongSellCase(t *testing.T) {
	prices := []float64{105, 103, 101, 102, 100}
	volumes := []float64{1e6, 1e6, 1e6, 1e6, 1e6}

	result := CombinedSignal(prices, volumes, 100)

	assert.Equal(t, SignalStrongSell, result.Signal)
	assert.Equal(t, 0.24, result.CombinedScore)
	assert.Equal(t, 0.76, result.Confidence)
}

// -----------------------------------------------------------------------------

func TestCombinedSignalEmptyInputDefaultsToHold(t *testing.T) {
	result := CombinedSignal([]float64{}, []float64{}, 182.5)

	assert.Equal(t, SignalHold, result.Signal)
	assert.Equal(t, 0.5, result.Confidence)
	assert.Equal(t, 0.5, result.CombinedScore)

	require.NotNil(t, result.Components.VWAPPrice)
	assert.Equal(t, 182.5, *result.Components.VWAPPrice)
	assert.Equal(t, 182.5, result.Components.VolumeProfile.POC)
	assert.Equal(t, []float64{182.5}, result.Components.VolumeProfile.ValueArea)
	assert.Equal(t, 1.0, result.Components.OrderFlow.Ratio)
}

// -----------------------------------------------------------------------------

func TestCombinedSignalSingleObservationDefaultsToHold(t *testing.T) {
	result := CombinedSignal([]float64{180}, []float64{5e6}, 180)
	assert.Equal(t, SignalHold, result.Signal)
}

// -----------------------------------------------------------------------------

func TestCombinedSignalLabelOrdering(t *testing.T) {
	// A rising tape must never score below a falling one
	rising := CombinedSignal(
		[]float64{100, 102, 104, 103, 105},
		[]float64{1e6, 1e6, 1e6, 1e6, 1e6},
		105,
	)
	falling := CombinedSignal(
		[]float64{105, 103, 101, 102, 100},
		[]float64{1e6, 1e6, 1e6, 1e6, 1e6},
		100,
	)

	assert.Greater(t, rising.CombinedScore, falling.CombinedScore)
}

// -----------------------------------------------------------------------------
// RSI Signal
// -----------------------------------------------------------------------------

func TestRSISignalBrackets(t *testing.T) {
	oversold := 20.0
	overbought := 80.0
	neutral := 50.0

	buy := RSISignal(&oversold)
	assert.Equal(t, SignalBuy, buy.Signal)
	assert.Equal(t, 0.33, buy.Confidence)

	sell := RSISignal(&overbought)
	assert.Equal(t, SignalSell, sell.Signal)
	assert.Equal(t, 0.33, sell.Confidence)

	hold := RSISignal(&neutral)
	assert.Equal(t, SignalHold, hold.Signal)
	assert.Equal(t, 0.5, hold.Confidence)
}

// -----------------------------------------------------------------------------

func TestRSISignalWaitsWithoutData(t *testing.T) {
	result := RSISignal(nil)
	assert.Equal(t, SignalWait, result.Signal)
	assert.Equal(t, 0.0, result.Confidence)
}

// -----------------------------------------------------------------------------
// Facade
// -----------------------------------------------------------------------------

func TestAnalyzeSymbolEmptyHistory(t *testing.T) {
	facade := NewAnalysisFacade("ERROR")

	state := facade.AnalyzeSymbol(models.MSnapshot{Symbol: "AAPL"}, []float64{}, []float64{})

	assert.Nil(t, state.Indicators.EMA20)
	assert.Nil(t, state.Indicators.EMA50)
	assert.Nil(t, state.Indicators.RSI14)
	assert.Equal(t, SignalWait, state.Indicators.RSISignal.Signal)
	assert.Equal(t, SignalHold, state.SignalAnalysis.Signal)
}

// -----------------------------------------------------------------------------

func TestAnalyzeAllCoversEverySymbol(t *testing.T) {
	facade := NewAnalysisFacade("ERROR")

	price := 105.0
	read := func(symbol string) (models.MSnapshot, []float64, []float64) {
		return models.MSnapshot{Symbol: symbol, Price: &price},
			[]float64{100, 102, 104, 103, 105},
			[]float64{1e6, 1e6, 1e6, 1e6, 1e6}
	}

	states := facade.AnalyzeAll([]string{"AAPL", "MSFT"}, read)

	require.Len(t, states, 2)
	assert.Equal(t, SignalBuy, states["AAPL"].SignalAnalysis.Signal)
	assert.Equal(t, SignalBuy, states["MSFT"].SignalAnalysis.Signal)
}
