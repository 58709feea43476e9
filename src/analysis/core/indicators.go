package core

// -----------------------------------------------------------------------------
// Momentum indicators. All functions are pure and tolerate short inputs by
// returning nil instead of panicking.
// -----------------------------------------------------------------------------

// EMA calculates the exponential moving average of a price series.
// Returns nil when fewer than period observations exist.
// Seeded with the first price, smoothing k = 2/(period+1).
func EMA(prices []float64, period int) *float64 {
	if period <= 0 || len(prices) < period {
		return nil
	}

	k := 2.0 / float64(period+1)
	ema := prices[0]

	for _, price := range prices[1:] {
		ema = price*k + ema*(1-k)
	}

	result := Round2(ema)
	return &result
}

// -----------------------------------------------------------------------------

// RSI calculates the Relative Strength Index over the last period deltas,
// iterating from the most recent observation backward.
// Returns nil when fewer than period+1 observations exist.
// When the average loss is zero the index saturates at 100.
func RSI(prices []float64, period int) *float64 {
	if period <= 0 || len(prices) < period+1 {
		return nil
	}

	gainSum := 0.0
	lossSum := 0.0

	n := len(prices)
	for i := 1; i <= period; i++ {
		delta := prices[n-i] - prices[n-i-1]
		if delta > 0 {
			gainSum += delta
		} else {
			lossSum += -delta
		}
	}

	avgGain := gainSum / float64(period)
	avgLoss := lossSum / float64(period)

	if avgLoss == 0 {
		result := 100.0
		return &result
	}

	rs := avgGain / avgLoss
	result := Round2(100 - (100 / (1 + rs)))
	return &result
}
