package analysis

import (
	"stock-dashboard/src/analysis/core"
	"stock-dashboard/src/models"
)

// -----------------------------------------------------------------------------
// Signal composition weights and thresholds.
// These are policy constants, not derived values - tune here, nowhere else.
// Weights must sum to 1.0.
// -----------------------------------------------------------------------------

const (
	WeightSetup  = 0.20
	WeightFlow   = 0.25
	WeightVWAP   = 0.20
	WeightMicro  = 0.15
	WeightVolume = 0.20
)

// Label thresholds on the combined score, exclusive lower bounds.
const (
	ThresholdStrongBuy = 0.75
	ThresholdBuy       = 0.60
	ThresholdHold      = 0.40
	ThresholdSell      = 0.25
)

// Signal labels.
const (
	SignalStrongBuy  = "STRONG BUY"
	SignalBuy        = "BUY"
	SignalHold       = "HOLD"
	SignalSell       = "SELL"
	SignalStrongSell = "STRONG SELL"
	SignalWait       = "WAIT"
)

// VolumeProfileBins is the bucket count used for dashboard volume profiles.
const VolumeProfileBins = 10

// -----------------------------------------------------------------------------

// CombinedSignal reduces the full indicator set to one categorical trading
// signal with a confidence score. Each sub-indicator is normalized to [0,1],
// weighted, and the weighted sum is mapped onto the label brackets.
// Histories shorter than 2 observations yield the neutral HOLD default.
func CombinedSignal(prices, volumes []float64, currentPrice float64) models.MCombinedSignal {
	if len(prices) < 2 || len(volumes) < 2 {
		return holdDefault(currentPrice)
	}

	setup := core.MarketOpenSetup(prices, volumes)
	flow := core.OrderFlow(prices, volumes)
	vwapPrice := core.VWAP(prices, volumes)
	micro := core.Microstructure(prices, volumes)
	volProfile := core.VolumeProfile(prices, volumes, VolumeProfileBins)

	// VWAP positioning: binary above/below, 0.5 when VWAP is undefined
	vwapDistance := 0.0
	aboveVWAP := 0.5
	if vwapPrice != nil {
		vwapDistance = core.Round2((currentPrice - *vwapPrice) / *vwapPrice * 100)
		if currentPrice > *vwapPrice {
			aboveVWAP = 1.0
		} else {
			aboveVWAP = 0.0
		}
	}

	// Normalize all signals to the 0-1 range
	setupScore := float64(setup.SetupStrength) / 100
	flowScore := flow.BuyPressure
	vwapScore := clamp01(0.5 + (aboveVWAP-0.5)*2)
	microScore := micro.Efficiency
	volScore := clamp01(0.5 + micro.Imbalance)

	combined := setupScore*WeightSetup +
		flowScore*WeightFlow +
		vwapScore*WeightVWAP +
		microScore*WeightMicro +
		volScore*WeightVolume

	var signal string
	var confidence float64

	switch {
	case combined > ThresholdStrongBuy:
		signal = SignalStrongBuy
		confidence = combined
	case combined > ThresholdBuy:
		signal = SignalBuy
		confidence = combined
	case combined > ThresholdHold:
		signal = SignalHold
		confidence = 0.5
	case combined > ThresholdSell:
		signal = SignalSell
		confidence = 1 - combined
	default:
		signal = SignalStrongSell
		confidence = 1 - combined
	}

	return models.MCombinedSignal{
		Signal:        signal,
		Confidence:    core.Round2(confidence),
		CombinedScore: core.Round2(combined),
		Components: models.MSignalComponents{
			MarketOpenSetup: setup,
			OrderFlow:       flow,
			VWAPPrice:       vwapPrice,
			VWAPDistance:    vwapDistance,
			Microstructure:  micro,
			VolumeProfile:   volProfile,
		},
	}
}

// -----------------------------------------------------------------------------

// holdDefault is the documented neutral signal for insufficient history.
// The current price is echoed as VWAP and POC placeholders.
func holdDefault(currentPrice float64) models.MCombinedSignal {
	vwap := currentPrice
	return models.MCombinedSignal{
		Signal:        SignalHold,
		Confidence:    0.5,
		CombinedScore: 0.5,
		Components: models.MSignalComponents{
			MarketOpenSetup: models.MOpenSetup{},
			OrderFlow:       models.MOrderFlow{BuyPressure: 0.5, SellPressure: 0.5, Ratio: 1.0},
			VWAPPrice:       &vwap,
			VWAPDistance:    0,
			Microstructure:  models.MMicrostructure{Volatility: 0, Imbalance: 0.5, Efficiency: 0.5},
			VolumeProfile:   models.MVolumeProfile{POC: currentPrice, ValueArea: []float64{currentPrice}},
		},
	}
}

// -----------------------------------------------------------------------------

// RSISignal maps an RSI reading onto the classic oversold/overbought brackets.
// A nil RSI (insufficient history) yields WAIT with zero confidence.
func RSISignal(rsi *float64) models.MRSISignal {
	if rsi == nil {
		return models.MRSISignal{Signal: SignalWait, Confidence: 0.0}
	}

	switch {
	case *rsi < 30:
		return models.MRSISignal{Signal: SignalBuy, Confidence: core.Round2((30 - *rsi) / 30)}
	case *rsi > 70:
		return models.MRSISignal{Signal: SignalSell, Confidence: core.Round2((*rsi - 70) / 30)}
	default:
		return models.MRSISignal{Signal: SignalHold, Confidence: 0.5}
	}
}

// -----------------------------------------------------------------------------

func clamp01(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
